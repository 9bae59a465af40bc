// Package sales loads the store sales export and derives the revenue series
// shown on the dashboard: daily and cumulative totals, monthly totals with
// month-over-month growth, top products and per-store splits. Forecast model
// training is out of scope here; this is descriptive only.
package sales

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pivolan/go_utils"
	"go.uber.org/zap"

	"github.com/ulamatta/grind-dashboard/domain/models"
)

// The export uses US-style timestamps with an AM/PM marker.
const paidAtLayout = "1/2/2006 3:04:05 PM"

var requiredColumns = []string{"Record #", "Date Paid", "Amt Paid", "Title", "Store"}

// LoadCSV reads the sales export. A missing or unreadable file, or a missing
// required column, is a *models.MissingInputError and fatal for the sales
// surface: with no data there is nothing to show. Individual bad rows
// (unparseable date, non-positive amount) are skipped, matching the source
// system which emits refunds and unpaid rows we do not chart.
func LoadCSV(path string) ([]models.SaleRecord, error) {
	dataPath, err := MaybeUnpack(path)
	if err != nil {
		return nil, &models.MissingInputError{Path: path, Err: err}
	}

	f, err := os.Open(dataPath)
	if err != nil {
		return nil, &models.MissingInputError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	headers, err := r.Read()
	if err != nil {
		return nil, &models.MissingInputError{Path: path, Err: err}
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	index := map[string]int{}
	for i, h := range headers {
		index[h] = i
	}
	for _, col := range requiredColumns {
		if !go_utils.InArray(col, headers) {
			return nil, &models.MissingInputError{Path: path, Column: col}
		}
	}

	var (
		records []models.SaleRecord
		skipped int
	)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		rec, ok := parseRow(row, index)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	zap.S().Infow("sales export loaded", "path", path, "rows", len(records), "skipped", skipped)
	return records, nil
}

func parseRow(row []string, index map[string]int) (models.SaleRecord, bool) {
	field := func(name string) string {
		i := index[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rawDate := field("Date Paid")
	if rawDate == "" {
		return models.SaleRecord{}, false
	}
	paidAt, err := time.Parse(paidAtLayout, rawDate)
	if err != nil {
		return models.SaleRecord{}, false
	}

	amount, err := parseAmount(field("Amt Paid"))
	if err != nil || amount <= 0 {
		return models.SaleRecord{}, false
	}

	return models.SaleRecord{
		RecordID: field("Record #"),
		PaidAt:   paidAt,
		Amount:   amount,
		Title:    field("Title"),
		Store:    field("Store"),
	}, true
}

func parseAmount(raw string) (float64, error) {
	raw = strings.TrimPrefix(raw, "$")
	raw = strings.ReplaceAll(raw, ",", "")
	return strconv.ParseFloat(raw, 64)
}
