// Package server provides the MCP server context, the streamable HTTP
// transport wrapper, and the dedicated metrics server for mailgate.
//
// # Key Components
//
// ServerContext manages per-account Gmail clients with lazy initialization
// and caching. Clients are created from tokens already stored on disk; an
// account without a token simply yields no client. The context also carries
// the metrics recorder and audit logger consumed by instrumented tool
// handlers.
//
// HTTPServer serves the MCP streamable HTTP transport on /mcp, with request
// metrics and health check endpoints (/healthz, /readyz, /healthz/detailed)
// on the same listener.
//
// MetricsServer exposes Prometheus metrics on a dedicated port, isolated
// from MCP traffic so operational metrics never share a listener with the
// tool surface.
//
// HealthChecker backs the Kubernetes-style liveness and readiness probes.
// Readiness flips off once the server context begins shutting down.
package server
