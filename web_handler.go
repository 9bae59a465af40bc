package main

import (
	"html/template"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"go.uber.org/zap"

	"github.com/ulamatta/grind-dashboard/domain/models"
	"github.com/ulamatta/grind-dashboard/plot"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>Grinder Audit — Eximius Coffee</title></head>
<body>
<h1>Grinder Audit — Eximius Coffee</h1>
<h2>Key Grind Metrics</h2>
<pre>{{.KPITable}}</pre>
{{if .SampleErrors}}<pre>{{.SampleErrors}}</pre>{{end}}
<h2>Executive Takeaway</h2>
<pre>{{.Brief}}</pre>
<p><a href="/charts">Interactive charts</a></p>
<img src="/png/cumulative.png" width="900"/>
<img src="/png/density.png" width="900"/>
{{if .HasSales}}
<h2>Sales</h2>
<pre>{{.MonthlyTable}}</pre>
<pre>{{.TopProductsTable}}</pre>
<pre>{{.StoreTable}}</pre>
<img src="/png/monthly.png" width="900"/>
<img src="/png/daily.png" width="900"/>
{{end}}
</body>
</html>`))

type indexData struct {
	KPITable         string
	SampleErrors     string
	Brief            string
	HasSales         bool
	MonthlyTable     string
	TopProductsTable string
	StoreTable       string
}

func handleIndex(d *Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := d.Grind()
		if err != nil {
			http.Error(w, "cannot build grind report: "+err.Error(), http.StatusInternalServerError)
			return
		}

		data := indexData{
			KPITable:     GenerateKPITable(report.KPIs),
			SampleErrors: GenerateSampleErrorsNote(report.SampleErrors),
		}
		if report.Summary != nil {
			if baseline, ok := findKPI(report, report.Summary.Baseline); ok {
				data.Brief = GenerateExecutiveBrief(baseline, *report.Summary)
			}
		} else if report.SummaryErr != nil {
			data.Brief = "No comparison available: " + report.SummaryErr.Error()
		}

		salesReport, err := d.Sales()
		if err != nil {
			// Sales is fatal at startup; if the file went bad later we keep
			// serving the grind surface and say so.
			data.Brief += "\n\nSales data unavailable: " + err.Error()
		} else if salesReport != nil {
			data.HasSales = true
			data.MonthlyTable = GenerateMonthlyTable(salesReport.Monthly)
			data.TopProductsTable = GenerateTopProductsTable(salesReport.TopProducts)
			data.StoreTable = GenerateStoreTable(salesReport.Stores)
		}

		if err := indexTemplate.Execute(w, data); err != nil {
			zap.S().Errorw("render index", "error", err)
		}
	}
}

func handleCharts(d *Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := d.Grind()
		if err != nil {
			http.Error(w, "cannot build grind report: "+err.Error(), http.StatusInternalServerError)
			return
		}

		page := components.NewPage()
		page.AddCharts(
			curveLineChart("Cumulative Grind Distribution", "Vol % < size", report.Cumulative),
			curveLineChart("Approximate Particle Density", "Density (Δ% / Δµm)", report.Density),
		)

		if salesReport, err := d.Sales(); err == nil && salesReport != nil {
			page.AddCharts(
				monthlyBarChart(salesReport),
				storePieChart(salesReport),
			)
		}

		if err := page.Render(w); err != nil {
			zap.S().Errorw("render charts", "error", err)
		}
	}
}

func curveLineChart(title, yName string, series []plot.Series) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Particle size (µm)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName}),
	)
	for _, s := range series {
		data := make([]opts.LineData, len(s.X))
		for i := range s.X {
			data[i] = opts.LineData{Value: []interface{}{s.X[i], s.Y[i]}}
		}
		line.AddSeries(s.Name, data)
	}
	return line
}

func monthlyBarChart(report *SalesReport) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Monthly Sales"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Sales ($)"}),
	)
	months := make([]string, len(report.Monthly))
	data := make([]opts.BarData, len(report.Monthly))
	for i, m := range report.Monthly {
		months[i] = m.Month
		data[i] = opts.BarData{Value: m.Total}
	}
	bar.SetXAxis(months).AddSeries("Sales", data)
	return bar
}

func storePieChart(report *SalesReport) *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Sales Distribution by Store"}))
	data := make([]opts.PieData, len(report.Stores))
	for i, s := range report.Stores {
		data[i] = opts.PieData{Name: s.Store, Value: s.Total}
	}
	pie.AddSeries("Stores", data)
	return pie
}

func handlePNG(d *Dashboard, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		png, err := renderPNG(d, kind)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(png)
	}
}

func renderPNG(d *Dashboard, kind string) ([]byte, error) {
	switch kind {
	case "cumulative", "density":
		report, err := d.Grind()
		if err != nil {
			return nil, err
		}
		if kind == "cumulative" {
			return plot.DrawCumulativePlot(report.Cumulative)
		}
		return plot.DrawDensityPlot(report.Density)
	case "monthly", "daily":
		report, err := d.Sales()
		if err != nil {
			return nil, err
		}
		if report == nil {
			return nil, &noSalesError{}
		}
		if kind == "monthly" {
			return plot.DrawPlotBar(plot.NewDataMonthForGraph(report.Monthly, "Sales ($)", "Monthly Sales"))
		}
		return plot.DrawPlotBar(plot.NewDataDateForGraph(report.Daily, "Sales ($)", "Daily Sales"))
	}
	return nil, &noSalesError{}
}

type noSalesError struct{}

func (*noSalesError) Error() string { return "no sales data configured" }

func findKPI(report *GrindReport, name string) (models.KPIRecord, bool) {
	for _, k := range report.KPIs {
		if k.Sample == name {
			return k, true
		}
	}
	return models.KPIRecord{}, false
}
