// Package http provides the HTTP API of the demo service.
//
// The public server exposes:
//   - GET /        greeting
//   - GET /health  liveness with uptime
//
// Every other path falls through to gin's default 404. Prometheus metrics,
// when enabled, are served by a separate MetricsServer on its own port.
package http
