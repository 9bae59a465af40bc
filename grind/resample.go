package grind

import "github.com/ulamatta/grind-dashboard/domain/models"

// CumulativeCurve passes the tabulated cumulative curve through as plot-ready
// points. Identity transform, kept so both chart series come from one place.
func CumulativeCurve(s Sample) []models.CurvePoint {
	points := make([]models.CurvePoint, s.Len())
	for i := range s.sizes {
		points[i] = models.CurvePoint{
			Sample:    s.name,
			Size:      s.sizes[i],
			Undersize: s.undersize[i],
		}
	}
	return points
}

// DensityCurve approximates the distribution density by finite differences:
// for each gap between adjacent bins, the midpoint size and the slope
// Δundersize/Δsize. This is not a true PDF — nothing is normalized, the
// values do not integrate to 1 — it only exists for the density chart.
//
// A one-point sample yields an empty series, which is valid.
func DensityCurve(s Sample) []models.DensityPoint {
	if s.Len() < 2 {
		return nil
	}
	points := make([]models.DensityPoint, 0, s.Len()-1)
	for i := 0; i+1 < s.Len(); i++ {
		points = append(points, models.DensityPoint{
			Sample:  s.name,
			Size:    (s.sizes[i] + s.sizes[i+1]) / 2,
			Density: (s.undersize[i+1] - s.undersize[i]) / (s.sizes[i+1] - s.sizes[i]),
		})
	}
	return points
}
