package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ulamatta/grind-dashboard/domain/models"
)

func TestGenerateExecutiveBriefMarginal(t *testing.T) {
	baseline := models.KPIRecord{Sample: "Ditting", D50: 456, Span: 1.71, FinesPct: 16.88, OversizePct: 3.49}
	summary := models.ComparisonSummary{
		Baseline:         "Ditting",
		Candidates:       []string{"Colombini Test 1", "Colombini Test 2"},
		Mean:             models.KPIRecord{D50: 442, Span: 1.69, FinesPct: 14.1, OversizePct: 3.3},
		DeltaFines:       2.78,
		DeltaOversize:    0.19,
		DeltaSpan:        0.02,
		AbsDeltaFines:    2.78,
		AbsDeltaOversize: 0.19,
		AbsDeltaSpan:     0.02,
	}

	brief := GenerateExecutiveBrief(baseline, summary)
	assert.Contains(t, brief, "Ditting vs Colombini Test 1, Colombini Test 2")
	assert.Contains(t, brief, "~456 µm")
	assert.Contains(t, brief, "2.8 pp")
	assert.Contains(t, brief, "+0.02")
	assert.Contains(t, brief, "status quo remains")
}

func TestGenerateExecutiveBriefMaterialDifference(t *testing.T) {
	baseline := models.KPIRecord{Sample: "Ditting", D50: 456, Span: 1.71, FinesPct: 16.88}
	summary := models.ComparisonSummary{
		Baseline:      "Ditting",
		Candidates:    []string{"Prototype"},
		Mean:          models.KPIRecord{D50: 200, Span: 1.0, FinesPct: 40},
		DeltaFines:    -23.12,
		DeltaSpan:     0.71,
		AbsDeltaFines: 23.12,
		AbsDeltaSpan:  0.71,
	}

	brief := GenerateExecutiveBrief(baseline, summary)
	assert.Contains(t, brief, "fewer")
	assert.Contains(t, brief, "differ materially")
}

func TestGenerateExecutiveBriefNaNSpanDelta(t *testing.T) {
	baseline := models.KPIRecord{Sample: "base"}
	summary := models.ComparisonSummary{
		Baseline:   "base",
		Candidates: []string{"c"},
		DeltaSpan:  math.NaN(),
	}

	brief := GenerateExecutiveBrief(baseline, summary)
	assert.Contains(t, brief, "N/A")
	assert.NotContains(t, brief, "NaN")
}
