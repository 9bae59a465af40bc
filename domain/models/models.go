package models

import "time"

// KPIRecord is the derived, read-only summary for one distribution sample.
// Span is NaN when D50 is zero, callers must guard before formatting.
type KPIRecord struct {
	Sample      string
	D10         float64
	D50         float64
	D90         float64
	Span        float64
	FinesPct    float64 // % volume under 100 µm
	OversizePct float64 // % volume over 1000 µm
}

// CurvePoint is one tabulated point of the cumulative undersize curve.
type CurvePoint struct {
	Sample    string
	Size      float64
	Undersize float64
}

// DensityPoint is a finite-difference slope of the undersize curve over one
// gap between adjacent size bins. Not a normalized PDF.
type DensityPoint struct {
	Sample  string
	Size    float64 // midpoint of the gap
	Density float64 // Δundersize / Δsize
}

// ComparisonSummary holds baseline-vs-candidates deltas for the executive brief.
// Deltas are baseline minus candidate mean; both signed and absolute values are
// kept because the narrative text alternates between them.
type ComparisonSummary struct {
	Baseline   string
	Candidates []string
	Mean       KPIRecord // Sample field holds a synthetic label

	DeltaFines    float64
	DeltaOversize float64
	DeltaSpan     float64

	AbsDeltaFines    float64
	AbsDeltaOversize float64
	AbsDeltaSpan     float64
}

type SaleRecord struct {
	RecordID string
	PaidAt   time.Time
	Amount   float64
	Title    string
	Store    string
}

type DailyPoint struct {
	Date  time.Time
	Total float64
}

type MonthlyPoint struct {
	Month     string // 2006-01
	Total     float64
	GrowthPct float64 // NaN for the first month
}

type ProductTotal struct {
	Title string
	Total float64
}

type StoreTotal struct {
	Store string
	Total float64
}

// SalesOverview is the headline block of the sales surface.
type SalesOverview struct {
	TotalSales float64
	AvgDaily   float64
	FirstDate  time.Time
	LastDate   time.Time
	DayCount   int
}
