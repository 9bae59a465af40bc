package main

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ulamatta/grind-dashboard/config"
	"github.com/ulamatta/grind-dashboard/domain/models"
	"github.com/ulamatta/grind-dashboard/grind"
	"github.com/ulamatta/grind-dashboard/plot"
	"github.com/ulamatta/grind-dashboard/sales"
)

// GrindReport is everything the grind surface renders: KPI rows, per-sample
// errors from the batch, chart series and the baseline comparison.
type GrindReport struct {
	Samples      []grind.Sample
	KPIs         []models.KPIRecord
	SampleErrors map[string]error
	Cumulative   []plot.Series
	Density      []plot.Series
	Summary      *models.ComparisonSummary
	SummaryErr   error
}

// SalesReport is the derived state of the sales surface.
type SalesReport struct {
	Overview    models.SalesOverview
	Daily       []models.DailyPoint
	Cumulative  []models.DailyPoint
	Monthly     []models.MonthlyPoint
	TopProducts []models.ProductTotal
	Stores      []models.StoreTotal
}

// Dashboard owns the derived reports and their cache. The engine computations
// stay pure; caching and invalidation live here, keyed by input identity
// (source path + mtime), exactly so a changed input recomputes and an
// unchanged one does not.
type Dashboard struct {
	cfg *config.Config

	mu         sync.Mutex
	grindKey   string
	grindCache *GrindReport
	salesKey   string
	salesCache *SalesReport
}

func NewDashboard(cfg *config.Config) *Dashboard {
	return &Dashboard{cfg: cfg}
}

// Invalidate drops both cached reports; the next access recomputes.
func (d *Dashboard) Invalidate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.grindKey, d.grindCache = "", nil
	d.salesKey, d.salesCache = "", nil
}

func sourceKey(path string) string {
	if path == "" {
		return "builtin"
	}
	info, err := os.Stat(path)
	if err != nil {
		return path
	}
	return fmt.Sprintf("%s@%d", path, info.ModTime().UnixNano())
}

// Grind returns the grind report, rebuilding it when the sample source
// changed. A configured but unloadable samples file is fatal; a broken sample
// inside a loadable file is reported per sample and the rest render.
func (d *Dashboard) Grind() (*GrindReport, error) {
	key := sourceKey(d.cfg.SamplesYAML)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.grindCache != nil && d.grindKey == key {
		return d.grindCache, nil
	}

	report, err := d.buildGrind()
	if err != nil {
		return nil, err
	}
	d.grindKey, d.grindCache = key, report
	return report, nil
}

func (d *Dashboard) buildGrind() (*GrindReport, error) {
	var samples []grind.Sample
	sampleErrors := map[string]error{}

	if d.cfg.SamplesYAML != "" {
		loaded, errs, err := grind.LoadSamplesFile(d.cfg.SamplesYAML)
		if err != nil {
			return nil, err
		}
		samples = loaded
		for name, e := range errs {
			sampleErrors[name] = e
		}
	} else {
		samples = grind.BuiltinSamples()
	}

	kpis, kpiErrs := grind.ComputeAllKPIs(samples)
	for name, e := range kpiErrs {
		sampleErrors[name] = e
	}
	for name, e := range sampleErrors {
		zap.S().Warnw("sample skipped", "sample", name, "error", e)
	}

	report := &GrindReport{
		Samples:      samples,
		KPIs:         kpis,
		SampleErrors: sampleErrors,
	}

	for _, s := range samples {
		if _, broken := sampleErrors[s.Name()]; broken {
			continue
		}
		cum := grind.CumulativeCurve(s)
		cx := make([]float64, len(cum))
		cy := make([]float64, len(cum))
		for i, p := range cum {
			cx[i], cy[i] = p.Size, p.Undersize
		}
		report.Cumulative = append(report.Cumulative, plot.Series{Name: s.Name(), X: cx, Y: cy})

		dens := grind.DensityCurve(s)
		dx := make([]float64, len(dens))
		dy := make([]float64, len(dens))
		for i, p := range dens {
			dx[i], dy[i] = p.Size, p.Density
		}
		report.Density = append(report.Density, plot.Series{Name: s.Name(), X: dx, Y: dy})
	}

	report.Summary, report.SummaryErr = d.compareBaseline(kpis)
	return report, nil
}

func (d *Dashboard) compareBaseline(kpis []models.KPIRecord) (*models.ComparisonSummary, error) {
	byName := map[string]models.KPIRecord{}
	for _, k := range kpis {
		byName[k.Sample] = k
	}

	baseline, ok := byName[d.cfg.Baseline]
	if !ok {
		return nil, fmt.Errorf("baseline sample %q not in computed KPIs", d.cfg.Baseline)
	}

	var candidates []models.KPIRecord
	for _, name := range strings.Split(d.cfg.Candidates, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if k, ok := byName[name]; ok {
			candidates = append(candidates, k)
		}
	}

	summary, err := grind.CompareToBaseline(baseline, candidates)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// Sales returns the sales report, or (nil, nil) when no export is configured.
// A configured export that fails to load is fatal for the run: no data,
// nothing to show.
func (d *Dashboard) Sales() (*SalesReport, error) {
	if d.cfg.SalesCSV == "" {
		return nil, nil
	}
	key := sourceKey(d.cfg.SalesCSV)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.salesCache != nil && d.salesKey == key {
		return d.salesCache, nil
	}

	records, err := sales.LoadCSV(d.cfg.SalesCSV)
	if err != nil {
		return nil, err
	}

	daily := sales.DailySales(records)
	report := &SalesReport{
		Overview:    sales.Overview(daily),
		Daily:       daily,
		Cumulative:  sales.CumulativeDaily(daily),
		Monthly:     sales.MonthlySales(records),
		TopProducts: sales.TopProducts(records, 10),
		Stores:      sales.StoreSales(records),
	}

	if d.cfg.DbDsn != "" {
		go d.archive(records)
	}

	d.salesKey, d.salesCache = key, report
	return report, nil
}

func (d *Dashboard) archive(records []models.SaleRecord) {
	db, err := sales.OpenArchive(d.cfg.DbDsn)
	if err != nil {
		zap.S().Errorw("archive connect failed", "error", err)
		return
	}
	if _, err := sales.Archive(db, records); err != nil {
		zap.S().Errorw("archive failed", "error", err)
	}
}
