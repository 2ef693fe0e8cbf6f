package handler

type TranscriptRequest struct {
	Transcript string `json:"transcript"`
}

type TranscriptResponse struct {
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
	Sentiment  string `json:"sentiment"`
	Success    bool   `json:"success"`
}

type AnalysisResponse struct {
	Transcript string `json:"transcript"`
	Summary    string `json:"summary"`
	Sentiment  string `json:"sentiment"`
}

type HistoryResponse struct {
	Analyses []AnalysisResponse `json:"analyses"`
	Total    int                `json:"total"`
	Limit    int                `json:"limit"`
	Offset   int                `json:"offset"`
}

type StatsResponse struct {
	TotalAnalyses       int    `json:"total_analyses"`
	MostCommonSentiment string `json:"most_common_sentiment"`
	UniqueSentiments    int    `json:"unique_sentiments"`
}

type SampleResponse struct {
	Name       string `json:"name"`
	Transcript string `json:"transcript"`
}
