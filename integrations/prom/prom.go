// Package prom exposes Prometheus instrumentation for classified
// failures. The single collector counts failures by their stable error
// code, which keeps label cardinality fixed at the size of the kind
// registry.
package prom

import (
	svcfault "github.com/blackwell-systems/svc-fault"
	"github.com/prometheus/client_golang/prometheus"
)

// failures counts failures written at the response boundary, labeled by
// stable error code (ERR001..ERR005).
var failures = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "svcfault_failures_total",
		Help: "Total classified failures written to responses, by stable error code.",
	},
	[]string{"error_code"},
)

func init() {
	prometheus.MustRegister(failures)
}

// Observe increments the failure counter for a kind. Wire it in during
// startup:
//
//	svcfault.SetObserver(prom.Observe)
func Observe(k svcfault.Kind) {
	failures.WithLabelValues(k.Code()).Inc()
}
