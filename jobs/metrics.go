package jobs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	submitted *prometheus.CounterVec
	finished  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	queued    prometheus.Gauge
	running   prometheus.Gauge
	rows      prometheus.Counter
	gaps      prometheus.Counter
}

var metricsSingleton = sync.OnceValue(func() *metrics {
	return &metrics{
		submitted: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "polingest",
			Subsystem: "jobs",
			Name:      "submitted_total",
			Help:      "Total number of ingestion job submissions.",
		}, []string{"result"}),
		finished: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "polingest",
			Subsystem: "jobs",
			Name:      "finished_total",
			Help:      "Total number of ingestion jobs that reached a terminal status.",
		}, []string{"status"}),
		duration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "polingest",
			Subsystem: "jobs",
			Name:      "duration_seconds",
			Help:      "Run time of ingestion jobs.",
			Buckets: []float64{
				0.01, 0.05, 0.1, 0.5,
				1, 2, 5, 10, 30, 60, 120,
			},
		}, []string{"status"}),
		queued: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "polingest",
			Subsystem: "jobs",
			Name:      "queued",
			Help:      "Current number of jobs waiting for a worker.",
		}),
		running: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "polingest",
			Subsystem: "jobs",
			Name:      "running",
			Help:      "Current number of jobs being processed.",
		}),
		rows: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "polingest",
			Subsystem: "ingest",
			Name:      "rows_total",
			Help:      "Total number of rows ingested by successful jobs.",
		}),
		gaps: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "polingest",
			Subsystem: "ingest",
			Name:      "resolution_gaps_total",
			Help:      "Total number of unresolved references and values reported by successful jobs.",
		}),
	}
})

func getMetrics() *metrics {
	return metricsSingleton()
}
