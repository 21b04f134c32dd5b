package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestParseMetricsRecordParse(t *testing.T) {
	registry := prometheus.NewRegistry()
	pm := NewParseMetrics(registry)

	pm.RecordParse("success", 2*time.Millisecond)
	pm.RecordParse("success", 3*time.Millisecond)
	pm.RecordParse("failure", time.Millisecond)

	if got, want := testutil.ToFloat64(pm.parsesTotal.WithLabelValues("success")), 2.0; got != want {
		t.Errorf("parses_total{result=success} = %v, want %v", got, want)
	}
	if got, want := testutil.ToFloat64(pm.parsesTotal.WithLabelValues("failure")), 1.0; got != want {
		t.Errorf("parses_total{result=failure} = %v, want %v", got, want)
	}
}

func TestParseMetricsRecordError(t *testing.T) {
	registry := prometheus.NewRegistry()
	pm := NewParseMetrics(registry)

	pm.RecordError("unsupported-mediator")
	pm.RecordError("unsupported-mediator")
	pm.RecordError("malformed-log")

	if got, want := testutil.ToFloat64(pm.parseErrors.WithLabelValues("unsupported-mediator")), 2.0; got != want {
		t.Errorf("parse_errors_total{type=unsupported-mediator} = %v, want %v", got, want)
	}
	if got, want := testutil.ToFloat64(pm.parseErrors.WithLabelValues("malformed-log")), 1.0; got != want {
		t.Errorf("parse_errors_total{type=malformed-log} = %v, want %v", got, want)
	}
}

func TestParseMetricsRegistersWithRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()
	pm := NewParseMetrics(registry)
	pm.RecordParse("success", time.Millisecond)
	pm.RecordMediators(3)

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}

	for _, want := range []string{
		"meridian_parses_total",
		"meridian_parse_duration_seconds",
		"meridian_parse_mediators",
	} {
		if !names[want] {
			t.Errorf("registry missing metric %q", want)
		}
	}
}

func TestWatchMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	wm := NewWatchMetrics(registry)

	wm.SetWatchedFiles(7)
	wm.RecordReload("event")
	wm.RecordReload("event")
	wm.RecordReload("rescan")

	if got, want := testutil.ToFloat64(wm.watchedFiles), 7.0; got != want {
		t.Errorf("watched_files = %v, want %v", got, want)
	}
	if got, want := testutil.ToFloat64(wm.reloadsTotal.WithLabelValues("event")), 2.0; got != want {
		t.Errorf("reloads_total{trigger=event} = %v, want %v", got, want)
	}
	if got, want := testutil.ToFloat64(wm.reloadsTotal.WithLabelValues("rescan")), 1.0; got != want {
		t.Errorf("reloads_total{trigger=rescan} = %v, want %v", got, want)
	}
}

func TestNewParseMetricsNilRegistry(t *testing.T) {
	pm := NewParseMetrics(nil)
	pm.RecordParse("success", time.Millisecond)

	if got, want := testutil.ToFloat64(pm.parsesTotal.WithLabelValues("success")), 1.0; got != want {
		t.Errorf("parses_total{result=success} = %v, want %v", got, want)
	}
}
