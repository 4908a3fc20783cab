// Package metrics exposes Prometheus collectors for the data layer:
// cache traffic, loader commits, and navigation churn. It implements
// the observer interfaces of pkg/cache and pkg/nav so neither package
// depends on Prometheus directly.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the console's collectors.
type Metrics struct {
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	cacheJoins       prometheus.Counter
	cacheInvalidated prometheus.Counter
	cacheFetchErrors prometheus.Counter
	navigations      prometheus.Counter
	navsSuperseded   prometheus.Counter
	loaderDurations  *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "waybill_cache_hits_total",
			Help: "Reads served from a fresh cache entry without a fetch.",
		}),
		cacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "waybill_cache_misses_total",
			Help: "Reads that started a network fetch.",
		}),
		cacheJoins: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "waybill_cache_joins_total",
			Help: "Reads that joined an already in-flight fetch.",
		}),
		cacheInvalidated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "waybill_cache_invalidations_total",
			Help: "Cache entries marked stale by invalidation.",
		}),
		cacheFetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "waybill_cache_fetch_errors_total",
			Help: "Fetches recorded as errors in the cache.",
		}),
		navigations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "waybill_navigations_total",
			Help: "Navigations started.",
		}),
		navsSuperseded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "waybill_navigations_superseded_total",
			Help: "Navigations whose results were discarded because a newer one started.",
		}),
		loaderDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "waybill_loader_duration_seconds",
			Help:    "Route loader wall time until commit.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}

	reg.MustRegister(
		m.cacheHits, m.cacheMisses, m.cacheJoins,
		m.cacheInvalidated, m.cacheFetchErrors,
		m.navigations, m.navsSuperseded, m.loaderDurations,
	)
	return m
}

// cache.Observer

func (m *Metrics) Hit()              { m.cacheHits.Inc() }
func (m *Metrics) Miss()             { m.cacheMisses.Inc() }
func (m *Metrics) Join()             { m.cacheJoins.Inc() }
func (m *Metrics) Invalidated(n int) { m.cacheInvalidated.Add(float64(n)) }
func (m *Metrics) FetchFailed()      { m.cacheFetchErrors.Inc() }

// nav.Observer

func (m *Metrics) Navigation() { m.navigations.Inc() }
func (m *Metrics) Superseded() { m.navsSuperseded.Inc() }
func (m *Metrics) LoaderCommitted(route string, duration time.Duration) {
	m.loaderDurations.WithLabelValues(route).Observe(duration.Seconds())
}
