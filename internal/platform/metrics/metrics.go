package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the name sorting service.
type Metrics struct {
	registry *prometheus.Registry

	NamesSorted      prometheus.Counter
	SortRequests     *prometheus.CounterVec
	NameListsCreated prometheus.Counter
}

// New creates and registers all metrics on a dedicated registry, so several
// instances can coexist in one process (tests build one per router).
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		NamesSorted: factory.NewCounter(prometheus.CounterOpts{
			Name: "name_sorter_names_sorted_total",
			Help: "Total number of names sorted across all requests",
		}),
		SortRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "name_sorter_sort_requests_total",
			Help: "Total number of sort requests by endpoint",
		}, []string{"endpoint"}),
		NameListsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "name_sorter_name_lists_created_total",
			Help: "Total number of name lists stored",
		}),
	}
}

// ObserveSort records one sort request on endpoint that ordered n names.
func (m *Metrics) ObserveSort(endpoint string, n int) {
	m.SortRequests.WithLabelValues(endpoint).Inc()
	m.NamesSorted.Add(float64(n))
}

// IncrementNameListsCreated increments the name lists created counter by 1.
func (m *Metrics) IncrementNameListsCreated() {
	m.NameListsCreated.Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
