package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"callsight/internal/model"
	"callsight/pkg/llm"
)

// ErrAnalysisFailed reports a run that aborted; the record returned with it
// carries the processing fallbacks.
var ErrAnalysisFailed = errors.New("transcript analysis failed")

type RecordStore interface {
	Append(record model.CallRecord) error
}

type Analyzer struct {
	llm   llm.Client
	store RecordStore
}

func NewAnalyzer(client llm.Client, store RecordStore) *Analyzer {
	return &Analyzer{llm: client, store: store}
}

// Run sequences summary, sentiment, then persistence over one record. A
// failed step degrades its field to a fallback and the run continues; only
// a panic aborts, returning an unpersisted fallback record.
func (a *Analyzer) Run(ctx context.Context, transcript string) (record model.CallRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("analysis aborted", "panic", fmt.Sprint(r))
			record = model.CallRecord{
				Transcript: transcript,
				Summary:    model.FallbackProcessing,
				Sentiment:  model.FallbackSentiment,
			}
			err = ErrAnalysisFailed
		}
	}()

	record = model.CallRecord{Transcript: transcript}
	record.Summary = a.summarize(ctx, transcript)
	record.Sentiment = a.analyzeSentiment(ctx, transcript)

	if err := a.store.Append(record); err != nil {
		slog.Error("failed to append analysis record", "error", err)
	}

	return record, nil
}

func (a *Analyzer) summarize(ctx context.Context, transcript string) string {
	summary, err := a.llm.Infer(ctx, llm.Request{
		System: summarySystemPrompt,
		User:   fmt.Sprintf("Transcript to summarize:\n\n%s", transcript),
		Field:  "summary",
	})
	if err != nil {
		slog.Error("summary step failed", "model", a.llm.Name(), "error", err)
		return model.FallbackSummary
	}
	return summary
}

func (a *Analyzer) analyzeSentiment(ctx context.Context, transcript string) string {
	sentiment, err := a.llm.Infer(ctx, llm.Request{
		System: sentimentSystemPrompt,
		User:   fmt.Sprintf("Transcript to analyze:\n\n%s", transcript),
		Field:  "sentiment",
	})
	if err != nil {
		slog.Error("sentiment step failed", "model", a.llm.Name(), "error", err)
		return model.FallbackSentiment
	}
	return sentiment
}
