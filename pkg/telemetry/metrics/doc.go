/*
Package metrics exposes Prometheus metrics for sequence parsing and the
watch service.

All metrics are registered against a caller-supplied registry so tests and
embedders stay isolated from the default registry:

	registry := prometheus.NewRegistry()
	pm := metrics.NewParseMetrics(registry)
	pm.RecordParse("success", duration)

Metric names use the meridian namespace, e.g. meridian_parses_total.
*/
package metrics
