// Package metrics exposes prometheus collectors for the record cache and the record store.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "commonfiles"

// Collectors groups all metrics collected by commonfiles
type Collectors struct {
	CacheHits     prometheus.Counter
	CacheMisses   prometheus.Counter
	CacheFailures prometheus.Counter

	StoreQueries       *prometheus.CounterVec
	StoreQueryDuration prometheus.Histogram

	Resolutions *prometheus.CounterVec
}

var (
	defaultCollectors *Collectors
	defaultOnce       sync.Once
)

// Default collectors, registered with the prometheus default registerer
func Default() *Collectors {
	defaultOnce.Do(func() {
		defaultCollectors = New(prometheus.DefaultRegisterer)
	})
	return defaultCollectors
}

// New builds collectors registered with reg.
//
// A nil reg builds unregistered collectors.
func New(reg prometheus.Registerer) *Collectors {
	factory := promauto.With(reg)

	return &Collectors{
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "hits_total",
			Help:      "Number of file record lookups served from the cache",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "misses_total",
			Help:      "Number of file record lookups sent to the record store",
		}),
		CacheFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "cache",
			Name:      "failures_total",
			Help:      "Number of file record lookups which could not be served",
		}),
		StoreQueries: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "queries_total",
			Help:      "Number of record store queries",
		}, []string{"status"}),
		StoreQueryDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "query_duration_seconds",
			Help:      "Record store query duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
		Resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "resolver",
			Name:      "resolutions_total",
			Help:      "Number of resolved instances, by outcome",
		}, []string{"outcome"}),
	}
}
