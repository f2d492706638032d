package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	solves   *prometheus.CounterVec
	duration prometheus.Histogram
	spans    prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "linetemp_solves_total",
			Help: "Heat balance solve requests by status.",
		}, []string{"status"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "linetemp_solve_duration_seconds",
			Help:    "Time spent solving one scenario.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
		spans: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "linetemp_spans_solved_total",
			Help: "Spans whose equilibrium temperature was computed.",
		}),
	}
	reg.MustRegister(m.solves, m.duration, m.spans)
	return m
}
