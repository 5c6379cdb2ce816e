package store

import "github.com/prometheus/client_golang/prometheus"

var (
	registry = prometheus.NewRegistry()

	transitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "academia_store_transitions_total",
		Help: "State transitions applied, labelled by operation and outcome code",
	}, []string{"op", "outcome"})
)

func init() {
	registry.MustRegister(transitionsTotal)
}

// MetricsRegistry exposes the store's private Prometheus registry for
// embedders that want to scrape or inspect transition counters.
func MetricsRegistry() *prometheus.Registry {
	return registry
}
