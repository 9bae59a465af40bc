// Package grind is the particle-size metrics engine behind the grinder audit
// dashboard. It turns named cumulative undersize tables into KPI records
// (D10/D50/D90, span, fines, oversize), chart series, and baseline-vs-candidate
// comparison summaries. Everything here is a pure in-memory computation.
package grind

import (
	"fmt"

	"github.com/ulamatta/grind-dashboard/domain/models"
)

// Sample is one named particle-size distribution: particle sizes in µm and
// the cumulative %-undersize measured at each size. Constructed once,
// immutable afterwards; all derived values are recomputed from it.
type Sample struct {
	name      string
	sizes     []float64
	undersize []float64
}

// NewSample validates and copies the input tables. A length mismatch is a
// *models.DataIntegrityError; ordering and range violations are plain errors
// because they point at a broken export rather than a truncated one.
func NewSample(name string, sizes, undersize []float64) (Sample, error) {
	if len(sizes) != len(undersize) {
		return Sample{}, &models.DataIntegrityError{
			Sample:       name,
			SizesLen:     len(sizes),
			UndersizeLen: len(undersize),
		}
	}
	if len(sizes) == 0 {
		return Sample{}, fmt.Errorf("sample %q: no data points", name)
	}
	for i := 1; i < len(sizes); i++ {
		if sizes[i] <= sizes[i-1] {
			return Sample{}, fmt.Errorf("sample %q: sizes must be strictly increasing (index %d: %v after %v)",
				name, i, sizes[i], sizes[i-1])
		}
		if undersize[i] < undersize[i-1] {
			return Sample{}, fmt.Errorf("sample %q: undersize must be non-decreasing (index %d: %v after %v)",
				name, i, undersize[i], undersize[i-1])
		}
	}
	for i, u := range undersize {
		if u < 0 || u > 100 {
			return Sample{}, fmt.Errorf("sample %q: undersize out of [0,100] at index %d: %v", name, i, u)
		}
	}

	s := Sample{
		name:      name,
		sizes:     make([]float64, len(sizes)),
		undersize: make([]float64, len(undersize)),
	}
	copy(s.sizes, sizes)
	copy(s.undersize, undersize)
	return s, nil
}

func (s Sample) Name() string { return s.name }

func (s Sample) Len() int { return len(s.sizes) }

// Sizes returns a copy; the sample itself never changes after construction.
func (s Sample) Sizes() []float64 {
	out := make([]float64, len(s.sizes))
	copy(out, s.sizes)
	return out
}

func (s Sample) Undersize() []float64 {
	out := make([]float64, len(s.undersize))
	copy(out, s.undersize)
	return out
}
