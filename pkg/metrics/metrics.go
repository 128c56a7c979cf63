package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every collector registered by this package.
const Namespace = "ticketing"

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// Collector records gateway probes, metadata fetches and uploads.
// It satisfies gateway.Observer, metadata.FetchObserver and storage.UploadObserver.
type Collector struct {
	probes  *prometheus.CounterVec
	fetches *prometheus.CounterVec
	uploads *prometheus.CounterVec
}

// ObserveProbe counts one probe of the given gateway.
func (c *Collector) ObserveProbe(gateway string, err error) {
	c.probes.WithLabelValues(gateway, outcome(err)).Inc()
}

// ObserveFetch counts one metadata document fetch.
func (c *Collector) ObserveFetch(err error) {
	c.fetches.WithLabelValues(outcome(err)).Inc()
}

// ObserveUpload counts one upload to the storage network.
func (c *Collector) ObserveUpload(err error) {
	c.uploads.WithLabelValues(outcome(err)).Inc()
}

func outcome(err error) string {
	if err != nil {
		return outcomeFailure
	}
	return outcomeSuccess
}

// NewCollector creates the collectors and registers them in the registry.
// Panics if the registration fails.
func NewCollector(registry prometheus.Registerer) *Collector {
	c := &Collector{
		probes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "gateway",
			Name:      "probes_total",
			Help:      "Gateway probes by gateway and outcome",
		}, []string{"gateway", "outcome"}),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "metadata",
			Name:      "fetches_total",
			Help:      "Metadata document fetches by outcome",
		}, []string{"outcome"}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "storage",
			Name:      "uploads_total",
			Help:      "Uploads to the storage network by outcome",
		}, []string{"outcome"}),
	}

	registry.MustRegister(c.probes, c.fetches, c.uploads)
	return c
}
