package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/ulamatta/grind-dashboard/domain/models"
)

// GenerateExecutiveBrief writes the board-level takeaway: baseline vs the
// candidate mean. Directional statements use the signed deltas, magnitude
// statements the absolute ones. Must only be called with a summary the
// aggregator actually produced — an empty candidate set never gets this far.
func GenerateExecutiveBrief(baseline models.KPIRecord, summary models.ComparisonSummary) string {
	b := &strings.Builder{}

	fmt.Fprintf(b, "Executive takeaway — %s vs %s\n\n",
		summary.Baseline, strings.Join(summary.Candidates, ", "))
	fmt.Fprintf(b, "* Median size (D50) is ~%.0f µm on the %s vs ~%.0f µm on the candidate mean.\n",
		baseline.D50, summary.Baseline, summary.Mean.D50)
	fmt.Fprintf(b, "* Fines (<100 µm) differ by %.1f pp (%s has %s).\n",
		summary.AbsDeltaFines, summary.Baseline, moreOrFewer(summary.DeltaFines, "more", "fewer"))
	fmt.Fprintf(b, "* Oversized (>1 mm) particles shift by %.1f pp.\n", summary.AbsDeltaOversize)
	fmt.Fprintf(b, "* Overall uniformity (span) changes by %s.\n", formatSignedSpan(summary.DeltaSpan))

	b.WriteString("\nRecommendation: ")
	if summary.AbsDeltaSpan < 0.1 && summary.AbsDeltaFines < 5 {
		fmt.Fprintf(b, "the candidate grinders yield marginal lab-scale gains over %s; "+
			"the status quo remains the cost-effective choice.\n", summary.Baseline)
	} else {
		fmt.Fprintf(b, "the candidate grinders differ materially from %s; "+
			"review the distribution charts before deciding.\n", summary.Baseline)
	}
	return b.String()
}

func moreOrFewer(signed float64, positive, negative string) string {
	if signed >= 0 {
		return positive
	}
	return negative
}

func formatSignedSpan(delta float64) string {
	if math.IsNaN(delta) {
		return "N/A"
	}
	return fmt.Sprintf("%+.2f", delta)
}
