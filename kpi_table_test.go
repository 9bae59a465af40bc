package main

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ulamatta/grind-dashboard/domain/models"
)

func TestGenerateKPITable(t *testing.T) {
	kpis := []models.KPIRecord{
		{Sample: "Ditting", D10: 45.8, D50: 456, D90: 827, Span: 1.71, FinesPct: 16.88, OversizePct: 3.49},
		{Sample: "Degenerate", D10: 0, D50: 0, D90: 8, Span: math.NaN(), FinesPct: 100, OversizePct: 0},
	}

	out := GenerateKPITable(kpis)
	assert.Contains(t, out, "Ditting")
	assert.Contains(t, out, "45.8")
	assert.Contains(t, out, "456")
	assert.Contains(t, out, "16.88")
	// The NaN span sentinel renders as N/A, it must never leak as "NaN".
	assert.Contains(t, out, "N/A")
	assert.NotContains(t, out, "NaN")
}

func TestGenerateSampleErrorsNote(t *testing.T) {
	assert.Empty(t, GenerateSampleErrorsNote(nil))

	note := GenerateSampleErrorsNote(map[string]error{
		"Colombini Test 1": errors.New("sizes and undersize must have same length: 34 vs 33"),
	})
	assert.Contains(t, note, "Colombini Test 1")
	assert.Contains(t, note, "34 vs 33")
}

func TestGenerateMonthlyTable(t *testing.T) {
	out := GenerateMonthlyTable([]models.MonthlyPoint{
		{Month: "2024-01", Total: 1200, GrowthPct: math.NaN()},
		{Month: "2024-02", Total: 900, GrowthPct: -25},
	})
	assert.Contains(t, out, "2024-01")
	assert.Contains(t, out, "$1200.00")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "-25.00%")
}

func TestGenerateStoreAndProductTables(t *testing.T) {
	products := GenerateTopProductsTable([]models.ProductTotal{{Title: "Espresso Pods", Total: 99.5}})
	assert.Contains(t, products, "Espresso Pods")
	assert.Contains(t, products, "$99.50")

	stores := GenerateStoreTable([]models.StoreTotal{{Store: "Main St", Total: 154.5}})
	assert.Contains(t, stores, "Main St")
	assert.Contains(t, stores, "$154.50")
}
