package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"callsight/internal/model"

	"github.com/gin-gonic/gin"
)

type TranscriptAnalyzer interface {
	Run(ctx context.Context, transcript string) (model.CallRecord, error)
}

type AnalyzeHandler struct {
	analyzer TranscriptAnalyzer
	minChars int
}

func NewAnalyzeHandler(analyzer TranscriptAnalyzer, minChars int) *AnalyzeHandler {
	return &AnalyzeHandler{analyzer: analyzer, minChars: minChars}
}

func (h *AnalyzeHandler) AnalyzeTranscript(c *gin.Context) {
	var req TranscriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("invalid analyze request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	trimmed := strings.TrimSpace(req.Transcript)
	if trimmed == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Transcript cannot be empty"})
		return
	}
	if utf8.RuneCountInString(trimmed) < h.minChars {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Transcript too short for meaningful analysis"})
		return
	}

	record, err := h.analyzer.Run(c.Request.Context(), req.Transcript)
	if err != nil {
		slog.Error("transcript analysis failed", "error", err)
		c.JSON(http.StatusInternalServerError, TranscriptResponse{
			Transcript: record.Transcript,
			Summary:    record.Summary,
			Sentiment:  record.Sentiment,
			Success:    false,
		})
		return
	}

	c.JSON(http.StatusOK, TranscriptResponse{
		Transcript: record.Transcript,
		Summary:    record.Summary,
		Sentiment:  record.Sentiment,
		Success:    true,
	})
}

func (h *AnalyzeHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "Healthy",
		"message": "Call Transcript Analyzer API is running",
	})
}

func (h *AnalyzeHandler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Call Transcript Analyzer API",
		"health":  "/api/health",
	})
}
