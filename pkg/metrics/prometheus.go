package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics for the itinerary engine.
type Metrics struct {
	StopsInserted        prometheus.Counter
	StopsReordered       prometheus.Counter
	ActivitiesInserted   prometheus.Counter
	CascadeDeletes       prometheus.Counter
	MovementsInvalidated prometheus.Counter
	TimelinesExpanded    prometheus.Counter
	RequestDuration      prometheus.Histogram
	ErrorsCount          *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics registered in the default
// registry.
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		StopsInserted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stops_inserted_total",
			Help:      "The total number of stops added to trips",
		}),
		StopsReordered: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stops_reordered_total",
			Help:      "The total number of stop reorder operations",
		}),
		ActivitiesInserted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "activities_inserted_total",
			Help:      "The total number of activities added to stops",
		}),
		CascadeDeletes: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stop_cascade_deletes_total",
			Help:      "The total number of stop removals with cascade",
		}),
		MovementsInvalidated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "movements_invalidated_total",
			Help:      "The total number of movements deleted by invalidation",
		}),
		TimelinesExpanded: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "timelines_expanded_total",
			Help:      "The total number of timeline expansions served",
		}),
		RequestDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Time taken to serve HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
