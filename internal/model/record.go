package model

// Fallback values substituted when an analysis step fails; FallbackProcessing
// replaces the summary when the whole run fails.
const (
	FallbackSummary    = "Error generating summary"
	FallbackSentiment  = "Neutral"
	FallbackProcessing = "Error processing transcript"
)

type CallRecord struct {
	Transcript string
	Summary    string
	Sentiment  string
}

type LogStats struct {
	Total               int
	MostCommonSentiment string
	UniqueSentiments    int
}
