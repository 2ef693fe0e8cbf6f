package repository

import (
	"encoding/csv"
	"fmt"
	"os"

	"callsight/internal/model"
)

var csvHeader = []string{"Transcript", "Summary", "Sentiment"}

// RecordRepository stores analysis records as rows of a CSV file, created
// with a header row on the first append.
type RecordRepository struct {
	path string
}

func NewRecordRepository(path string) *RecordRepository {
	return &RecordRepository{path: path}
}

func (r *RecordRepository) Path() string {
	return r.path
}

func (r *RecordRepository) Append(record model.CallRecord) error {
	needHeader := false
	info, err := os.Stat(r.path)
	switch {
	case os.IsNotExist(err):
		needHeader = true
	case err != nil:
		return fmt.Errorf("stat csv log: %w", err)
	case info.Size() == 0:
		needHeader = true
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open csv log: %w", err)
	}

	rows := make([][]string, 0, 2)
	if needHeader {
		rows = append(rows, csvHeader)
	}
	rows = append(rows, []string{record.Transcript, record.Summary, record.Sentiment})

	if err := csv.NewWriter(f).WriteAll(rows); err != nil {
		f.Close()
		return fmt.Errorf("write csv log: %w", err)
	}

	return f.Close()
}

// List returns records newest first, plus the total number of records.
// A log that does not exist yet reads as empty.
func (r *RecordRepository) List(limit, offset int) ([]model.CallRecord, int, error) {
	records, err := r.readAll()
	if err != nil {
		return nil, 0, err
	}

	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}

	total := len(records)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return records[offset:end], total, nil
}

// Stats aggregates the whole log. A tie on the most common sentiment goes to
// the label seen earliest.
func (r *RecordRepository) Stats() (model.LogStats, error) {
	records, err := r.readAll()
	if err != nil {
		return model.LogStats{}, err
	}

	counts := make(map[string]int)
	var order []string
	for _, rec := range records {
		if _, seen := counts[rec.Sentiment]; !seen {
			order = append(order, rec.Sentiment)
		}
		counts[rec.Sentiment]++
	}

	stats := model.LogStats{
		Total:            len(records),
		UniqueSentiments: len(counts),
	}

	best := 0
	for _, sentiment := range order {
		if counts[sentiment] > best {
			stats.MostCommonSentiment = sentiment
			best = counts[sentiment]
		}
	}

	return stats, nil
}

func (r *RecordRepository) readAll() ([]model.CallRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open csv log: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv log: %w", err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	records := make([]model.CallRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, model.CallRecord{
			Transcript: row[0],
			Summary:    row[1],
			Sentiment:  row[2],
		})
	}
	return records, nil
}
