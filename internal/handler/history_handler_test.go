package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"callsight/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/assert/v2"
)

type fakeLogStore struct {
	records   []model.CallRecord
	total     int
	stats     model.LogStats
	path      string
	err       error
	gotLimit  int
	gotOffset int
}

func (f *fakeLogStore) List(limit, offset int) ([]model.CallRecord, int, error) {
	f.gotLimit = limit
	f.gotOffset = offset
	return f.records, f.total, f.err
}

func (f *fakeLogStore) Stats() (model.LogStats, error) {
	return f.stats, f.err
}

func (f *fakeLogStore) Path() string {
	return f.path
}

func newHistoryRouter(store AnalysisStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHistoryHandler(store)
	r.GET("/api/analyses", h.GetAnalyses)
	r.GET("/api/analyses/stats", h.GetStats)
	r.GET("/api/analyses/export", h.ExportCSV)
	r.GET("/api/samples", h.GetSamples)
	return r
}

func TestGetAnalyses_ReturnsRecords(t *testing.T) {
	store := &fakeLogStore{
		records: []model.CallRecord{
			{Transcript: "call two", Summary: "refund issued", Sentiment: "Satisfied"},
			{Transcript: "call one", Summary: "bill explained", Sentiment: "Confused"},
		},
		total: 5,
	}
	r := newHistoryRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/analyses?limit=2&offset=0", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res HistoryResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 2, len(res.Analyses))
	assert.Equal(t, "call two", res.Analyses[0].Transcript)
	assert.Equal(t, "Satisfied", res.Analyses[0].Sentiment)
}

func TestGetAnalyses_ClampsLimit(t *testing.T) {
	store := &fakeLogStore{}
	r := newHistoryRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/analyses?limit=500", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 100, store.gotLimit)
}

func TestGetAnalyses_DefaultLimitAndOffset(t *testing.T) {
	store := &fakeLogStore{}
	r := newHistoryRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/analyses", nil)
	r.ServeHTTP(w, req)

	var res HistoryResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 10, res.Limit)
	assert.Equal(t, 0, res.Offset)
}

func TestGetAnalyses_LogError(t *testing.T) {
	store := &fakeLogStore{err: errors.New("log unreadable")}
	r := newHistoryRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/analyses", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetStats(t *testing.T) {
	store := &fakeLogStore{
		stats: model.LogStats{Total: 7, MostCommonSentiment: "Frustrated", UniqueSentiments: 4},
	}
	r := newHistoryRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/analyses/stats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res StatsResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 7, res.TotalAnalyses)
	assert.Equal(t, "Frustrated", res.MostCommonSentiment)
	assert.Equal(t, 4, res.UniqueSentiments)
}

func TestExportCSV_NoData(t *testing.T) {
	store := &fakeLogStore{path: filepath.Join(t.TempDir(), "call_analysis.csv")}
	r := newHistoryRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/analyses/export", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var res map[string]string
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, "No analysis data yet", res["error"])
}

func TestExportCSV_ServesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "call_analysis.csv")
	content := "Transcript,Summary,Sentiment\ncall,short,Happy\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store := &fakeLogStore{path: path}
	r := newHistoryRouter(store)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/analyses/export", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, content, w.Body.String())

	disposition := w.Header().Get("Content-Disposition")
	if !strings.Contains(disposition, "attachment") {
		t.Errorf("Content-Disposition = %q, want an attachment", disposition)
	}
}

func TestGetSamples(t *testing.T) {
	r := newHistoryRouter(&fakeLogStore{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/api/samples", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var res []SampleResponse
	json.Unmarshal(w.Body.Bytes(), &res)
	assert.Equal(t, 5, len(res))
	for _, sample := range res {
		assert.NotEqual(t, "", sample.Name)
		assert.NotEqual(t, "", sample.Transcript)
	}
}
