package sales

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulamatta/grind-dashboard/domain/models"
)

func testRecords() []models.SaleRecord {
	jan15 := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	return []models.SaleRecord{
		{RecordID: "A", PaidAt: jan15, Amount: 25.5, Title: "Espresso Pods", Store: "Main St"},
		// Second line item of the same order: counts for monthly revenue and
		// product totals, not for the per-order daily series.
		{RecordID: "A", PaidAt: jan15, Amount: 99, Title: "Grinder Bundle", Store: "Main St"},
		{RecordID: "B", PaidAt: jan15.Add(8 * time.Hour), Amount: 10, Title: "Espresso Pods", Store: "Web"},
		{RecordID: "C", PaidAt: time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC), Amount: 30, Title: "Filter Blend", Store: "Main St"},
	}
}

func TestDailySalesDedupesOrders(t *testing.T) {
	daily := DailySales(testRecords())
	require.Len(t, daily, 2)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), daily[0].Date)
	assert.InDelta(t, 35.5, daily[0].Total, 1e-9)
	assert.InDelta(t, 30.0, daily[1].Total, 1e-9)
}

func TestCumulativeDaily(t *testing.T) {
	cumulative := CumulativeDaily(DailySales(testRecords()))
	require.Len(t, cumulative, 2)
	assert.InDelta(t, 35.5, cumulative[0].Total, 1e-9)
	assert.InDelta(t, 65.5, cumulative[1].Total, 1e-9)
}

func TestMonthlySalesGrowth(t *testing.T) {
	monthly := MonthlySales(testRecords())
	require.Len(t, monthly, 2)

	assert.Equal(t, "2024-01", monthly[0].Month)
	assert.InDelta(t, 134.5, monthly[0].Total, 1e-9)
	assert.True(t, math.IsNaN(monthly[0].GrowthPct))

	assert.Equal(t, "2024-02", monthly[1].Month)
	assert.InDelta(t, 30.0, monthly[1].Total, 1e-9)
	assert.InDelta(t, (30.0-134.5)/134.5*100, monthly[1].GrowthPct, 1e-9)
}

func TestTopProducts(t *testing.T) {
	top := TopProducts(testRecords(), 2)
	require.Len(t, top, 2)
	assert.Equal(t, "Grinder Bundle", top[0].Title)
	assert.InDelta(t, 99.0, top[0].Total, 1e-9)
	assert.Equal(t, "Espresso Pods", top[1].Title)
	assert.InDelta(t, 35.5, top[1].Total, 1e-9)
}

func TestProductDailySales(t *testing.T) {
	daily := ProductDailySales(testRecords(), "Espresso Pods")
	require.Len(t, daily, 1)
	assert.InDelta(t, 35.5, daily[0].Total, 1e-9)
}

func TestStoreSales(t *testing.T) {
	stores := StoreSales(testRecords())
	require.Len(t, stores, 2)
	assert.Equal(t, "Main St", stores[0].Store)
	assert.InDelta(t, 154.5, stores[0].Total, 1e-9)
	assert.Equal(t, "Web", stores[1].Store)
	assert.InDelta(t, 10.0, stores[1].Total, 1e-9)
}

func TestOverview(t *testing.T) {
	overview := Overview(DailySales(testRecords()))
	assert.InDelta(t, 65.5, overview.TotalSales, 1e-9)
	assert.InDelta(t, 32.75, overview.AvgDaily, 1e-9)
	assert.Equal(t, 2, overview.DayCount)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), overview.LastDate)
}

func TestOverviewEmpty(t *testing.T) {
	overview := Overview(nil)
	assert.Zero(t, overview.TotalSales)
	assert.Zero(t, overview.DayCount)
}
