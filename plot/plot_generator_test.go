package plot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ulamatta/grind-dashboard/domain/models"
)

func testSeries() []Series {
	return []Series{
		{Name: "Ditting", X: []float64{10, 100, 1000}, Y: []float64{0, 50, 100}},
		{Name: "Colombini Test 1", X: []float64{10, 100, 1000}, Y: []float64{0, 40, 100}},
	}
}

func TestDrawCumulativePlot(t *testing.T) {
	png, err := DrawCumulativePlot(testSeries())
	require.NoError(t, err)
	assert.NotEmpty(t, png)
	// PNG magic bytes
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestDrawDensityPlot(t *testing.T) {
	png, err := DrawDensityPlot([]Series{
		{Name: "Ditting", X: []float64{55, 550}, Y: []float64{0.55, 0.055}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestDrawLinesNoSeries(t *testing.T) {
	_, err := DrawCumulativePlot(nil)
	assert.Error(t, err)
}

func TestDrawPlotBarMonthly(t *testing.T) {
	data := NewDataMonthForGraph([]models.MonthlyPoint{
		{Month: "2024-01", Total: 1200},
		{Month: "2024-02", Total: 900},
		{Month: "2024-03", Total: 1500},
	}, "Sales ($)", "Monthly Sales")

	png, err := DrawPlotBar(data)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestDrawPlotBarDaily(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	points := make([]models.DailyPoint, 5)
	for i := range points {
		points[i] = models.DailyPoint{Date: base.AddDate(0, 0, i), Total: float64(100 + 10*i)}
	}

	png, err := DrawPlotBar(NewDataDateForGraph(points, "Sales ($)", "Daily Sales"))
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
