// Package metrics defines the application's Prometheus counters and the
// /metrics handler.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector exposed on /metrics.
var Registry = prometheus.NewRegistry()

var (
	QuotesExported = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "consher",
		Name:      "quotes_exported_total",
		Help:      "Materials quotes downloaded, by format.",
	}, []string{"format"})

	QuoteExportsRejected = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Namespace: "consher",
		Name:      "quote_export_rejected_total",
		Help:      "Quote downloads refused because no material was priced.",
	})

	HouseViews = promauto.With(Registry).NewCounter(prometheus.CounterOpts{
		Namespace: "consher",
		Name:      "house_views_total",
		Help:      "Public house detail page views.",
	})

	ProjectEntries = promauto.With(Registry).NewCounterVec(prometheus.CounterOpts{
		Namespace: "consher",
		Name:      "project_entries_total",
		Help:      "Entries added to project ledgers, by kind.",
	}, []string{"kind"})
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
