// Package metrics exposes Prometheus instrumentation and process health for
// Folio: counters for store writes and slot recoveries, login outcomes,
// snapshot import/export, and HTTP traffic, plus a JSON /healthz handler fed
// by component registrations.
package metrics
