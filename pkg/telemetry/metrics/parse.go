package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "meridian"

// ParseMetrics tracks metrics for sequence configuration parsing.
//
// Metrics:
//   - meridian_parses_total: Total parse count by result
//   - meridian_parse_errors_total: Parse error count by error type
//   - meridian_parse_duration_seconds: Parse duration histogram
//   - meridian_parse_mediators: Mediator count per successful parse
type ParseMetrics struct {
	parsesTotal   *prometheus.CounterVec
	parseErrors   *prometheus.CounterVec
	parseDuration prometheus.Histogram
	mediatorCount prometheus.Histogram
}

// NewParseMetrics creates and registers parse metrics with the provided
// registry. If registry is nil a new one is created.
func NewParseMetrics(registry *prometheus.Registry) *ParseMetrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	pm := &ParseMetrics{
		parsesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "parses_total",
				Help:      "Total number of sequence configuration parses",
			},
			[]string{"result"},
		),

		parseErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "parse_errors_total",
				Help:      "Total number of parse errors by error type",
			},
			[]string{"type"},
		),

		parseDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "parse_duration_seconds",
				Help:      "Duration of sequence configuration parses in seconds",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
		),

		mediatorCount: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "parse_mediators",
				Help:      "Number of mediators per successfully parsed configuration",
				Buckets:   []float64{1, 2, 5, 10, 25, 50, 100},
			},
		),
	}

	registry.MustRegister(
		pm.parsesTotal,
		pm.parseErrors,
		pm.parseDuration,
		pm.mediatorCount,
	)

	return pm
}

// RecordParse records a completed parse attempt.
//
// Parameters:
//   - result: "success" or "failure"
//   - duration: Parse duration
func (pm *ParseMetrics) RecordParse(result string, duration time.Duration) {
	pm.parsesTotal.WithLabelValues(result).Inc()
	pm.parseDuration.Observe(duration.Seconds())
}

// RecordError records a parse error of the given type. The type is the
// stable error-type string, e.g. "unsupported-mediator".
func (pm *ParseMetrics) RecordError(errorType string) {
	pm.parseErrors.WithLabelValues(errorType).Inc()
}

// RecordMediators records the mediator count of a successful parse.
func (pm *ParseMetrics) RecordMediators(count int) {
	pm.mediatorCount.Observe(float64(count))
}

// WatchMetrics tracks metrics for the file-watching reparse service.
//
// Metrics:
//   - meridian_watched_files: Number of files currently tracked
//   - meridian_reloads_total: Total reload count by trigger
type WatchMetrics struct {
	watchedFiles prometheus.Gauge
	reloadsTotal *prometheus.CounterVec
}

// NewWatchMetrics creates and registers watch metrics with the provided
// registry. If registry is nil a new one is created.
func NewWatchMetrics(registry *prometheus.Registry) *WatchMetrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	wm := &WatchMetrics{
		watchedFiles: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "watched_files",
				Help:      "Number of sequence configuration files currently tracked",
			},
		),

		reloadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reloads_total",
				Help:      "Total number of file reloads by trigger",
			},
			[]string{"trigger"},
		),
	}

	registry.MustRegister(wm.watchedFiles, wm.reloadsTotal)

	return wm
}

// SetWatchedFiles updates the number of tracked files.
func (wm *WatchMetrics) SetWatchedFiles(n int) {
	wm.watchedFiles.Set(float64(n))
}

// RecordReload records a reload. The trigger is "event" for file-system
// events or "rescan" for scheduled full rescans.
func (wm *WatchMetrics) RecordReload(trigger string) {
	wm.reloadsTotal.WithLabelValues(trigger).Inc()
}
