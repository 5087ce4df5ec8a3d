// Package observability groups the logging and tracing infrastructure.
//
// Subpackages:
//   - logging: structured logging utilities with slog
//   - tracing: OpenTelemetry tracing integration
//
// Prometheus metrics live next to the code they measure (HTTP handler
// package, pagination engine, rate limiter, auth) rather than here.
package observability
