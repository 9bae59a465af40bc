package grind

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/ulamatta/grind-dashboard/domain/models"
)

// CompareToBaseline averages the candidate KPI records and reports deltas of
// the baseline against that mean for fines, oversize and span. Signed deltas
// keep the direction (baseline minus candidate mean); absolute values are
// carried alongside because the brief text alternates between the two.
//
// An empty candidate set is a *models.EmptyCandidateSetError: averaging
// nothing would render a confident recommendation out of thin air.
func CompareToBaseline(baseline models.KPIRecord, candidates []models.KPIRecord) (models.ComparisonSummary, error) {
	if len(candidates) == 0 {
		return models.ComparisonSummary{}, &models.EmptyCandidateSetError{Baseline: baseline.Sample}
	}

	names := make([]string, len(candidates))
	d10 := make([]float64, len(candidates))
	d50 := make([]float64, len(candidates))
	d90 := make([]float64, len(candidates))
	span := make([]float64, len(candidates))
	fines := make([]float64, len(candidates))
	oversize := make([]float64, len(candidates))
	for i, c := range candidates {
		names[i] = c.Sample
		d10[i] = c.D10
		d50[i] = c.D50
		d90[i] = c.D90
		span[i] = c.Span
		fines[i] = c.FinesPct
		oversize[i] = c.OversizePct
	}

	mean := models.KPIRecord{
		Sample:      "candidate mean",
		D10:         stat.Mean(d10, nil),
		D50:         stat.Mean(d50, nil),
		D90:         stat.Mean(d90, nil),
		Span:        stat.Mean(span, nil),
		FinesPct:    stat.Mean(fines, nil),
		OversizePct: stat.Mean(oversize, nil),
	}

	deltaFines := baseline.FinesPct - mean.FinesPct
	deltaOversize := baseline.OversizePct - mean.OversizePct
	deltaSpan := baseline.Span - mean.Span

	return models.ComparisonSummary{
		Baseline:   baseline.Sample,
		Candidates: names,
		Mean:       mean,

		DeltaFines:    deltaFines,
		DeltaOversize: deltaOversize,
		DeltaSpan:     deltaSpan,

		AbsDeltaFines:    math.Abs(deltaFines),
		AbsDeltaOversize: math.Abs(deltaOversize),
		AbsDeltaSpan:     math.Abs(deltaSpan),
	}, nil
}
