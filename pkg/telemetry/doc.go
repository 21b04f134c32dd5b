// Package telemetry groups the observability subsystems of the meridian
// toolkit: structured logging and Prometheus metrics.
package telemetry
