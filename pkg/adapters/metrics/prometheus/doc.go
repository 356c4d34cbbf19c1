// Package prometheus adapts the HTTP service's request accounting to
// Prometheus. Every Collector owns a private registry, so several can coexist
// in one process (tests build one per case).
package prometheus
