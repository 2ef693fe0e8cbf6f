package handler

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"callsight/internal/model"

	"github.com/gin-gonic/gin"
)

type AnalysisStore interface {
	List(limit, offset int) ([]model.CallRecord, int, error)
	Stats() (model.LogStats, error)
	Path() string
}

type HistoryHandler struct {
	store AnalysisStore
}

func NewHistoryHandler(store AnalysisStore) *HistoryHandler {
	return &HistoryHandler{store: store}
}

func (h *HistoryHandler) GetAnalyses(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	records, total, err := h.store.List(limit, offset)
	if err != nil {
		slog.Error("error reading analysis log", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Log error"})
		return
	}

	analyses := make([]AnalysisResponse, 0, len(records))
	for _, rec := range records {
		analyses = append(analyses, AnalysisResponse{
			Transcript: rec.Transcript,
			Summary:    rec.Summary,
			Sentiment:  rec.Sentiment,
		})
	}

	c.JSON(http.StatusOK, HistoryResponse{
		Analyses: analyses,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

func (h *HistoryHandler) GetStats(c *gin.Context) {
	stats, err := h.store.Stats()
	if err != nil {
		slog.Error("error aggregating analysis log", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Log error"})
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		TotalAnalyses:       stats.Total,
		MostCommonSentiment: stats.MostCommonSentiment,
		UniqueSentiments:    stats.UniqueSentiments,
	})
}

func (h *HistoryHandler) ExportCSV(c *gin.Context) {
	path := h.store.Path()
	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No analysis data yet"})
		return
	}

	c.FileAttachment(path, filepath.Base(path))
}

func (h *HistoryHandler) GetSamples(c *gin.Context) {
	c.JSON(http.StatusOK, sampleTranscripts)
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}
