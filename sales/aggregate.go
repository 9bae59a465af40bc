package sales

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/ulamatta/grind-dashboard/domain/models"
)

// DailySales groups paid orders by calendar day. The export carries one row
// per line item, so rows are de-duplicated per record identifier first (first
// occurrence wins) — a multi-item order counts once, with its order total.
func DailySales(records []models.SaleRecord) []models.DailyPoint {
	perDay := map[time.Time]float64{}
	seen := map[string]bool{}
	for _, rec := range records {
		if rec.RecordID != "" {
			if seen[rec.RecordID] {
				continue
			}
			seen[rec.RecordID] = true
		}
		day := normalizeDay(rec.PaidAt)
		perDay[day] += rec.Amount
	}
	return sortedDaily(perDay)
}

// ProductDailySales is DailySales restricted to one product title.
func ProductDailySales(records []models.SaleRecord, title string) []models.DailyPoint {
	filtered := make([]models.SaleRecord, 0, len(records))
	for _, rec := range records {
		if rec.Title == title {
			filtered = append(filtered, rec)
		}
	}
	return DailySales(filtered)
}

// CumulativeDaily converts a daily series into a running total.
func CumulativeDaily(daily []models.DailyPoint) []models.DailyPoint {
	out := make([]models.DailyPoint, len(daily))
	sum := 0.0
	for i, p := range daily {
		sum += p.Total
		out[i] = models.DailyPoint{Date: p.Date, Total: sum}
	}
	return out
}

// MonthlySales sums every row per calendar month and attaches month-over-month
// growth. All rows count here, line items included — the monthly view tracks
// revenue, not order counts. Growth for the first month is NaN.
func MonthlySales(records []models.SaleRecord) []models.MonthlyPoint {
	perMonth := map[string]float64{}
	for _, rec := range records {
		perMonth[rec.PaidAt.Format("2006-01")] += rec.Amount
	}

	months := make([]string, 0, len(perMonth))
	for m := range perMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	out := make([]models.MonthlyPoint, len(months))
	for i, m := range months {
		growth := math.NaN()
		if i > 0 {
			prev := perMonth[months[i-1]]
			if prev != 0 {
				growth = (perMonth[m] - prev) / prev * 100
			}
		}
		out[i] = models.MonthlyPoint{Month: m, Total: perMonth[m], GrowthPct: growth}
	}
	return out
}

// TopProducts returns the n best-selling titles by revenue, descending.
func TopProducts(records []models.SaleRecord, n int) []models.ProductTotal {
	perTitle := map[string]float64{}
	for _, rec := range records {
		perTitle[rec.Title] += rec.Amount
	}

	out := make([]models.ProductTotal, 0, len(perTitle))
	for title, total := range perTitle {
		out = append(out, models.ProductTotal{Title: title, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Title < out[j].Title
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// StoreSales sums revenue per store, descending.
func StoreSales(records []models.SaleRecord) []models.StoreTotal {
	perStore := map[string]float64{}
	for _, rec := range records {
		perStore[rec.Store] += rec.Amount
	}

	out := make([]models.StoreTotal, 0, len(perStore))
	for store, total := range perStore {
		out = append(out, models.StoreTotal{Store: store, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Store < out[j].Store
	})
	return out
}

// Overview derives the headline numbers from the de-duplicated daily series.
func Overview(daily []models.DailyPoint) models.SalesOverview {
	if len(daily) == 0 {
		return models.SalesOverview{}
	}
	totals := make([]float64, len(daily))
	sum := 0.0
	for i, p := range daily {
		totals[i] = p.Total
		sum += p.Total
	}
	return models.SalesOverview{
		TotalSales: sum,
		AvgDaily:   stat.Mean(totals, nil),
		FirstDate:  daily[0].Date,
		LastDate:   daily[len(daily)-1].Date,
		DayCount:   len(daily),
	}
}

func normalizeDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func sortedDaily(perDay map[time.Time]float64) []models.DailyPoint {
	out := make([]models.DailyPoint, 0, len(perDay))
	for day, total := range perDay {
		out = append(out, models.DailyPoint{Date: day, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
