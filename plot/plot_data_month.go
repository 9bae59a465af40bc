package plot

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ulamatta/grind-dashboard/domain/models"
)

type dataMonthForGraph struct {
	points    []models.MonthlyPoint
	nameYAxis string
	nameGraph string
}

// NewDataMonthForGraph prepares the monthly revenue series for the bar chart.
func NewDataMonthForGraph(points []models.MonthlyPoint, nameYAxis, nameGraph string) dataMonthForGraph {
	return dataMonthForGraph{
		points:    points,
		nameYAxis: nameYAxis,
		nameGraph: nameGraph,
	}
}

func (d dataMonthForGraph) GetNameGraph() string {
	return d.nameGraph
}
func (d dataMonthForGraph) getNameYAxis() string {
	return d.nameYAxis
}
func (d dataMonthForGraph) getYValues() []float64 {
	y := make([]float64, len(d.points))
	for i, p := range d.points {
		y[i] = p.Total
	}
	return y
}
func (d dataMonthForGraph) lenXValues() int {
	return len(d.points)
}

func (d dataMonthForGraph) calculateChartDimensions(minBarWidth float64) (width, height int) {
	return barChartDimensions(d.lenXValues(), len(d.getYValues()), minBarWidth)
}

func (d dataMonthForGraph) generateBarValues() []chart.Value {
	var bars []chart.Value
	for _, p := range d.points {
		bars = append(bars, chart.Value{
			Value: p.Total,
			Label: p.Month,
			Style: chart.Style{
				FillColor: drawing.ColorPurple.WithAlpha(100),
			},
		})
	}
	return bars
}

func (d dataMonthForGraph) generateGrid() []chart.Tick {
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

// barChartDimensions sizes a bar chart so labels stay readable regardless of
// how many bars there are.
func barChartDimensions(lenX, lenY int, minBarWidth float64) (width, height int) {
	if lenY == 0 || lenX <= 0 || minBarWidth <= 0 {
		return 0, 0
	}
	x := 1.1
	if lenX < 2 {
		x = 10.0
	} else if lenX < 10 {
		x = 3.0
	}

	const (
		paddingY     = 100
		spacingRatio = 0.2
		aspectRatio  = 9.0 / 16.0
	)

	barSpacing := minBarWidth * spacingRatio
	totalWidth := (minBarWidth+barSpacing)*float64(lenX) + paddingY
	width = int(totalWidth*x) + paddingY
	height = int(float64(width) * aspectRatio)
	return width, height
}
