package grind

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulamatta/grind-dashboard/domain/models"
)

func TestCompareToBaseline(t *testing.T) {
	baseline := models.KPIRecord{Sample: "Ditting", Span: 1.7, FinesPct: 16.9, OversizePct: 3.5}
	candidates := []models.KPIRecord{
		{Sample: "Colombini Test 1", Span: 1.6, FinesPct: 12.5, OversizePct: 4.7},
		{Sample: "Colombini Test 2", Span: 1.8, FinesPct: 15.7, OversizePct: 1.9},
	}

	summary, err := CompareToBaseline(baseline, candidates)
	require.NoError(t, err)

	assert.Equal(t, "Ditting", summary.Baseline)
	assert.Equal(t, []string{"Colombini Test 1", "Colombini Test 2"}, summary.Candidates)
	assert.InDelta(t, 14.1, summary.Mean.FinesPct, 1e-9)
	assert.InDelta(t, 3.3, summary.Mean.OversizePct, 1e-9)
	assert.InDelta(t, 1.7, summary.Mean.Span, 1e-9)

	// Signed deltas keep direction, absolute ones drop it.
	assert.InDelta(t, 2.8, summary.DeltaFines, 1e-9)
	assert.InDelta(t, 0.2, summary.DeltaOversize, 1e-9)
	assert.InDelta(t, 0.0, summary.DeltaSpan, 1e-9)
	assert.InDelta(t, 2.8, summary.AbsDeltaFines, 1e-9)
	assert.GreaterOrEqual(t, summary.AbsDeltaOversize, 0.0)
	assert.GreaterOrEqual(t, summary.AbsDeltaSpan, 0.0)
}

func TestCompareToBaselineNegativeDeltaStaysSigned(t *testing.T) {
	baseline := models.KPIRecord{Sample: "base", FinesPct: 10}
	candidates := []models.KPIRecord{{Sample: "c", FinesPct: 14}}

	summary, err := CompareToBaseline(baseline, candidates)
	require.NoError(t, err)
	assert.InDelta(t, -4.0, summary.DeltaFines, 1e-9)
	assert.InDelta(t, 4.0, summary.AbsDeltaFines, 1e-9)
}

func TestCompareToBaselineEmptyCandidates(t *testing.T) {
	baseline := models.KPIRecord{Sample: "Ditting"}

	_, err := CompareToBaseline(baseline, nil)
	require.Error(t, err)

	var empty *models.EmptyCandidateSetError
	require.True(t, errors.As(err, &empty))
	assert.Equal(t, "Ditting", empty.Baseline)
}
