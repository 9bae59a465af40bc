package main

import (
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"go.uber.org/zap"

	"github.com/ulamatta/grind-dashboard/config"
)

func main() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
	defer zap.L().Sync()

	cfg := config.GetConfig()
	dash := NewDashboard(cfg)

	// Build the grind report up front; a configured but broken samples file
	// should fail the run immediately, not at the first request.
	report, err := dash.Grind()
	if err != nil {
		zap.S().Fatalw("cannot load grind samples", "error", err)
	}
	fmt.Println(GenerateKPITable(report.KPIs))
	if note := GenerateSampleErrorsNote(report.SampleErrors); note != "" {
		fmt.Println(note)
	}
	if report.Summary != nil {
		if baseline, ok := findKPI(report, report.Summary.Baseline); ok {
			fmt.Println(GenerateExecutiveBrief(baseline, *report.Summary))
		}
	} else if report.SummaryErr != nil {
		zap.S().Warnw("no baseline comparison", "error", report.SummaryErr)
	}

	// Same for the sales export: configured means required.
	if _, err := dash.Sales(); err != nil {
		zap.S().Fatalw("cannot load sales export", "path", cfg.SalesCSV, "error", err)
	}

	if cfg.TgToken != "" && cfg.TgChatID != 0 {
		go sendBrief(cfg, dash, report)
	}

	http.HandleFunc("/", handleIndex(dash))
	http.HandleFunc("/charts", handleCharts(dash))
	http.HandleFunc("/png/cumulative.png", handlePNG(dash, "cumulative"))
	http.HandleFunc("/png/density.png", handlePNG(dash, "density"))
	http.HandleFunc("/png/monthly.png", handlePNG(dash, "monthly"))
	http.HandleFunc("/png/daily.png", handlePNG(dash, "daily"))

	zap.S().Infow("dashboard listening", "addr", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, nil); err != nil {
		zap.S().Fatalw("http server stopped", "error", err)
	}
}

func sendBrief(cfg *config.Config, dash *Dashboard, report *GrindReport) {
	api, err := tgbotapi.NewBotAPI(cfg.TgToken)
	if err != nil {
		zap.S().Errorw("telegram init failed", "error", err)
		return
	}

	graphs := map[string][]byte{}
	for _, kind := range []string{"cumulative", "density", "monthly", "daily"} {
		png, err := renderPNG(dash, kind)
		if err != nil {
			continue
		}
		graphs[kind] = png
	}

	brief := ""
	if report.Summary != nil {
		if baseline, ok := findKPI(report, report.Summary.Baseline); ok {
			brief = GenerateExecutiveBrief(baseline, *report.Summary)
		}
	}
	SendBoardBrief(api, cfg.TgChatID, GenerateKPITable(report.KPIs), brief, graphs)
}
