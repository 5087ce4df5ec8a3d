// Package tracing provides OpenTelemetry tracing integration.
//
// It ships an HTTP middleware that extracts W3C trace context from inbound
// requests, opens a server span per request, and echoes the trace ID in the
// X-Trace-Id response header, plus a tracer provider initializer for process
// startup.
//
// Example usage:
//
//	func main() {
//	    shutdown, err := tracing.Init(ctx, "mongodb-news-api")
//	    if err != nil { ... }
//	    defer shutdown(ctx)
//	}
//
//	func processRequest(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "process-request")
//	    defer span.End()
//	    // ... process request ...
//	}
package tracing
