// Package metrics exposes Prometheus counters and gauges for the UE
// solver's outer iterations and column-pool size, and for the
// simulation engine's per-interval throughput: package-scoped
// collectors registered once against a private registry,
// cheap no-lock Inc/Set calls on the hot path, and a text-format dump
// on demand rather than a long-lived HTTP endpoint — a DTA run is a
// single batch process, not a server.
package metrics
