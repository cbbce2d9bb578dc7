// Package pkgtrace is a thin wrapper around OpenTelemetry tracing.
//
// Init installs a global tracer provider backed by the stdout exporter. Until
// it is called, StartSpan returns no-op spans, so instrumented code never has
// to check whether tracing is enabled.
package pkgtrace
