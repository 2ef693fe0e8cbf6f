package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"callsight/internal/config"
	"callsight/internal/pipeline"
	"callsight/internal/repository"
	"callsight/pkg/llm"
)

type transcript struct {
	source string
	text   string
}

// Each argument is a transcript file; stdin is read when none are given.
func main() {

	cfg := config.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	var client llm.Client
	switch {
	case cfg.GroqAPIKey != "":
		client = llm.NewGroqClient(cfg.GroqAPIKey, cfg.GroqModel)
	case cfg.AnthropicAPIKey != "":
		client = llm.NewAnthropicClient(cfg.AnthropicAPIKey)
	default:
		log.Fatalf("no inference API key configured: set GROQ_API_KEY or ANTHROPIC_API_KEY")
	}

	recordRepo := repository.NewRecordRepository(cfg.CSVPath)
	analyzer := pipeline.NewAnalyzer(client, recordRepo)

	transcripts, err := readTranscripts(os.Args[1:])
	if err != nil {
		log.Fatalf("error reading transcripts: %v", err)
	}

	var analyzed, skipped, failed int

	for _, t := range transcripts {
		if utf8.RuneCountInString(strings.TrimSpace(t.text)) < cfg.MinTranscriptChars {
			slog.Warn("transcript too short, skipping", "source", t.source)
			skipped++
			continue
		}

		record, err := analyzer.Run(context.Background(), t.text)
		if err != nil {
			slog.Error("analysis failed", "source", t.source, "error", err)
			failed++
			continue
		}

		analyzed++
		slog.Info("transcript analyzed", "source", t.source, "summary", record.Summary, "sentiment", record.Sentiment)
	}

	slog.Info("batch complete", "analyzed", analyzed, "skipped", skipped, "failed", failed)
}

func readTranscripts(paths []string) ([]transcript, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return []transcript{{source: "stdin", text: string(data)}}, nil
	}

	transcripts := make([]transcript, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		transcripts = append(transcripts, transcript{source: path, text: string(data)})
	}
	return transcripts, nil
}
