package main

import (
	"log"
	"log/slog"
	"os"

	"callsight/internal/config"
	"callsight/internal/handler"
	"callsight/internal/pipeline"
	"callsight/internal/repository"
	"callsight/pkg/llm"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

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

	slog.Info("inference client ready", "model", client.Name())

	recordRepo := repository.NewRecordRepository(cfg.CSVPath)
	analyzer := pipeline.NewAnalyzer(client, recordRepo)

	analyzeHandler := handler.NewAnalyzeHandler(analyzer, cfg.MinTranscriptChars)
	historyHandler := handler.NewHistoryHandler(recordRepo)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/", analyzeHandler.GetRoot)
	r.POST("/api/analyze-transcript", analyzeHandler.AnalyzeTranscript)
	r.GET("/api/health", analyzeHandler.GetHealth)
	r.GET("/api/analyses", historyHandler.GetAnalyses)
	r.GET("/api/analyses/stats", historyHandler.GetStats)
	r.GET("/api/analyses/export", historyHandler.ExportCSV)
	r.GET("/api/samples", historyHandler.GetSamples)

	err := r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
