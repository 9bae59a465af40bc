package main

import (
	"fmt"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/ulamatta/grind-dashboard/domain/models"
)

// GenerateKPITable renders the key grind metrics, one row per sample.
func GenerateKPITable(kpis []models.KPIRecord) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Grinder", "D10 µm", "D50 µm", "D90 µm", "Span", "% <100 µm", "% >1000 µm"})

	for _, k := range kpis {
		t.AppendRow(table.Row{
			k.Sample,
			fmt.Sprintf("%.1f", k.D10),
			fmt.Sprintf("%.0f", k.D50),
			fmt.Sprintf("%.0f", k.D90),
			formatSpan(k.Span),
			fmt.Sprintf("%.2f", k.FinesPct),
			fmt.Sprintf("%.2f", k.OversizePct),
		})
	}

	t.SetStyle(table.StyleDefault)
	return t.Render()
}

// formatSpan guards the NaN sentinel a zero D50 produces.
func formatSpan(span float64) string {
	if math.IsNaN(span) {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", span)
}

// GenerateSampleErrorsNote lists samples that failed validation, so partial
// failures are visible next to the table instead of swallowed.
func GenerateSampleErrorsNote(errs map[string]error) string {
	if len(errs) == 0 {
		return ""
	}
	out := "Skipped samples:\n"
	for name, err := range errs {
		out += fmt.Sprintf("  %s: %v\n", name, err)
	}
	return out
}

// GenerateTopProductsTable renders the top-N products by revenue.
func GenerateTopProductsTable(products []models.ProductTotal) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Title", "Total Sales"})
	for _, p := range products {
		t.AppendRow(table.Row{p.Title, fmt.Sprintf("$%.2f", p.Total)})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}

// GenerateMonthlyTable renders monthly totals with month-over-month growth.
func GenerateMonthlyTable(monthly []models.MonthlyPoint) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Month", "Sales", "Growth"})
	for _, m := range monthly {
		growth := "N/A"
		if !math.IsNaN(m.GrowthPct) {
			growth = fmt.Sprintf("%.2f%%", m.GrowthPct)
		}
		t.AppendRow(table.Row{m.Month, fmt.Sprintf("$%.2f", m.Total), growth})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}

// GenerateStoreTable renders per-store revenue totals.
func GenerateStoreTable(stores []models.StoreTotal) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Store", "Total Sales"})
	for _, s := range stores {
		t.AppendRow(table.Row{s.Store, fmt.Sprintf("$%.2f", s.Total)})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}
