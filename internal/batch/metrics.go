package batch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records batch executor activity
type Metrics struct {
	items    *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewMetrics creates the executor collectors and registers them on reg
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		items: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "probcalc",
			Subsystem: "batch",
			Name:      "items_total",
			Help:      "Batch items processed, partitioned by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "probcalc",
			Subsystem: "batch",
			Name:      "duration_seconds",
			Help:      "Wall time of a batch from dispatch to the last worker finishing.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}

	for _, c := range []prometheus.Collector{m.items, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(succeeded, failed int, duration time.Duration) {
	m.items.WithLabelValues("success").Add(float64(succeeded))
	m.items.WithLabelValues("failure").Add(float64(failed))
	m.duration.Observe(duration.Seconds())
}
