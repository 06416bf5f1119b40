package loader

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of a Loader and its cache. A nil *Metrics records nothing.
type Metrics struct {
	CacheHitsTotal      *prometheus.CounterVec
	CacheMissesTotal    prometheus.Counter
	CacheEvictionsTotal *prometheus.CounterVec
	LoadsTotal          *prometheus.CounterVec
	LoadDuration        prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg, if it is not nil
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CacheHitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dataset_payload_cache_hits_total",
				Help: "Payload cache hits by tier (raw, compressed).",
			},
			[]string{"tier"},
		),
		CacheMissesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "dataset_payload_cache_misses_total",
				Help: "Payload cache misses.",
			},
		),
		CacheEvictionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dataset_payload_cache_evictions_total",
				Help: "Payloads evicted from a cache tier (raw entries move to the compressed tier, compressed entries are dropped).",
			},
			[]string{"tier"},
		),
		LoadsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dataset_payload_loads_total",
				Help: "Payload loads by payload name and result (ok, error).",
			},
			[]string{"payload", "result"},
		),
		LoadDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dataset_payload_load_duration_seconds",
				Help:    "Time spent in payload load operations.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
			},
		),
	}
	if reg != nil {
		reg.MustRegister(
			m.CacheHitsTotal,
			m.CacheMissesTotal,
			m.CacheEvictionsTotal,
			m.LoadsTotal,
			m.LoadDuration,
		)
	}
	return m
}

func (m *Metrics) hit(tier string) {
	if m != nil {
		m.CacheHitsTotal.WithLabelValues(tier).Inc()
	}
}

func (m *Metrics) miss() {
	if m != nil {
		m.CacheMissesTotal.Inc()
	}
}

func (m *Metrics) evict(tier string) {
	if m != nil {
		m.CacheEvictionsTotal.WithLabelValues(tier).Inc()
	}
}

func (m *Metrics) load(payload string, started time.Time, err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.LoadsTotal.WithLabelValues(payload, result).Inc()
	m.LoadDuration.Observe(time.Since(started).Seconds())
}
