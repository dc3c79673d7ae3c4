package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "apod_gallery"

// Metrics holds the Prometheus collectors of the gallery service
type Metrics struct {
	FetchTotal           *prometheus.CounterVec
	FetchDuration        prometheus.Histogram
	CardsRendered        *prometheus.CounterVec
	PlaceholdersRendered *prometheus.CounterVec
	SupersededResponses  prometheus.Counter
	RateLimited          prometheus.Counter
}

// NewRegistry creates a registry with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// New registers the service collectors on reg.
func New(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		FetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "archive",
				Name:      "fetch_total",
				Help:      "Archive range fetches by outcome",
			},
			[]string{"outcome"},
		),
		FetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "archive",
				Name:      "fetch_duration_seconds",
				Help:      "Archive range fetch duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
		CardsRendered: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "gallery",
				Name:      "cards_total",
				Help:      "Gallery records by media type, including skipped ones",
			},
			[]string{"media_type"},
		),
		PlaceholdersRendered: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "gallery",
				Name:      "placeholders_total",
				Help:      "Gallery renders that ended in the no-results placeholder",
			},
			[]string{"reason"},
		),
		SupersededResponses: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "gallery",
				Name:      "superseded_total",
				Help:      "Gallery responses dropped because a newer request started",
			},
		),
		RateLimited: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "gallery",
				Name:      "rate_limited_total",
				Help:      "Gallery requests refused by the per-client rate limit",
			},
		),
	}
}
