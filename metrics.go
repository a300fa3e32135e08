package lawalgebra

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports verification counters to Prometheus.
type Metrics struct {
	laws     *prometheus.CounterVec
	tuples   prometheus.Counter
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		laws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lawalgebra",
			Name:      "laws_checked_total",
			Help:      "Law results reported, by structure and outcome.",
		}, []string{"structure", "outcome"}),
		tuples: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lawalgebra",
			Name:      "tuples_evaluated_total",
			Help:      "Value tuples evaluated against law predicates.",
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lawalgebra",
			Name:      "verify_duration_seconds",
			Help:      "Wall time of Verify calls, by claimed structure.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"structure"}),
	}
	for _, c := range []prometheus.Collector{m.laws, m.tuples, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(r *Report, outcomes map[string]outcome) {
	for _, res := range r.Results {
		result := "pass"
		if !res.Passed {
			result = "fail"
		}
		m.laws.WithLabelValues(res.Structure, result).Inc()
	}
	// Tuples are counted once per evaluated law, not per attributed result.
	var n int
	for _, out := range outcomes {
		n += out.checked
	}
	m.tuples.Add(float64(n))
	m.duration.WithLabelValues(r.Structure).Observe(r.Duration.Seconds())
}
