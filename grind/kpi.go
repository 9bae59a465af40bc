package grind

import (
	"fmt"
	"math"
	"sort"

	"github.com/ulamatta/grind-dashboard/domain/models"
)

// Fixed abscissas for the fines/oversize KPIs (µm).
const (
	finesCutoff    = 100.0
	oversizeCutoff = 1000.0
)

// interpolate evaluates y(x) by linear interpolation over the tabulated
// (xs, ys) pairs. xs must be sorted ascending (ties allowed). Outside the
// table it clamps to the first/last y, never extrapolates.
func interpolate(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	i := sort.SearchFloat64s(xs, x) // first index with xs[i] >= x
	if xs[i] == x {
		return ys[i]
	}
	x0, x1 := xs[i-1], xs[i]
	y0, y1 := ys[i-1], ys[i]
	if x1 == x0 {
		return y0
	}
	return y0 + (x-x0)*(y1-y0)/(x1-x0)
}

// ComputeKPI derives the KPI record for one sample. Pure function: same
// sample in, same record out, no state touched.
//
// D10/D50/D90 interpolate size as a function of cumulative undersize, using
// the sample's own table. Span is (D90-D10)/D50 and comes back NaN when D50
// is zero, which no physical sample produces, but a bad table must not panic.
func ComputeKPI(s Sample) (models.KPIRecord, error) {
	if s.Len() < 2 {
		return models.KPIRecord{}, fmt.Errorf("sample %q: need at least 2 points for KPIs, have %d", s.name, s.Len())
	}

	d10 := interpolate(s.undersize, s.sizes, 10)
	d50 := interpolate(s.undersize, s.sizes, 50)
	d90 := interpolate(s.undersize, s.sizes, 90)

	span := math.NaN()
	if d50 != 0 {
		span = (d90 - d10) / d50
	}

	fines := interpolate(s.sizes, s.undersize, finesCutoff)
	oversize := 100 - interpolate(s.sizes, s.undersize, oversizeCutoff)

	return models.KPIRecord{
		Sample:      s.name,
		D10:         d10,
		D50:         d50,
		D90:         d90,
		Span:        span,
		FinesPct:    fines,
		OversizePct: oversize,
	}, nil
}

// ComputeAllKPIs runs the extractor over a batch. One broken sample must not
// take the table down with it: errors are collected per sample name and the
// rest of the batch proceeds.
func ComputeAllKPIs(samples []Sample) ([]models.KPIRecord, map[string]error) {
	records := make([]models.KPIRecord, 0, len(samples))
	errs := map[string]error{}
	for _, s := range samples {
		rec, err := ComputeKPI(s)
		if err != nil {
			errs[s.Name()] = err
			continue
		}
		records = append(records, rec)
	}
	return records, errs
}
