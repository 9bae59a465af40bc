package plot

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ulamatta/grind-dashboard/domain/models"
)

type dataDateForGraph struct {
	points    []models.DailyPoint
	nameYAxis string
	nameGraph string
}

// NewDataDateForGraph prepares a daily series (per-day or cumulative revenue)
// for the bar chart.
func NewDataDateForGraph(points []models.DailyPoint, nameYAxis, nameGraph string) dataDateForGraph {
	return dataDateForGraph{
		points:    points,
		nameYAxis: nameYAxis,
		nameGraph: nameGraph,
	}
}

func (d dataDateForGraph) GetNameGraph() string {
	return d.nameGraph
}
func (d dataDateForGraph) getNameYAxis() string {
	return d.nameYAxis
}
func (d dataDateForGraph) getYValues() []float64 {
	y := make([]float64, len(d.points))
	for i, p := range d.points {
		y[i] = p.Total
	}
	return y
}
func (d dataDateForGraph) lenXValues() int {
	return len(d.points)
}

func (d dataDateForGraph) calculateChartDimensions(minBarWidth float64) (width, height int) {
	return barChartDimensions(d.lenXValues(), len(d.getYValues()), minBarWidth)
}

func (d dataDateForGraph) generateBarValues() []chart.Value {
	var bars []chart.Value
	for _, p := range d.points {
		bars = append(bars, chart.Value{
			Value: p.Total,
			Label: p.Date.Format("2006-01-02"),
			Style: chart.Style{
				FillColor:         drawing.ColorLime.WithAlpha(40),
				TextVerticalAlign: 100,
			},
		})
	}
	return bars
}

func (d dataDateForGraph) generateGrid() []chart.Tick {
	var ticks []chart.Tick
	max := findMaxValue(d.getYValues())
	gridStep := calculateGridStep(max)
	if gridStep <= 0 {
		return nil
	}
	for i := 0.0; i <= max; i += gridStep {
		ticks = append(ticks, chart.Tick{
			Value: i,
			Label: fmt.Sprintf("%.1f", i),
		})
	}
	return ticks
}
