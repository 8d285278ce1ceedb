package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchesEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wayfinder_searches_enqueued_total",
		Help: "Total number of search requests placed on the work queue.",
	})

	SearchesDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wayfinder_searches_dropped_total",
		Help: "Total number of search requests rejected due to a full queue.",
	})

	SearchesCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wayfinder_searches_completed_total",
		Help: "Total number of completed searches, labelled by strategy and outcome.",
	}, []string{"strategy", "outcome"})

	NodesExpanded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wayfinder_nodes_expanded_total",
		Help: "Total number of node expansions across all searches.",
	})

	SearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wayfinder_search_duration_ms",
		Help:    "End-to-end search latency in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
	})

	QueueUtilization = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "wayfinder_queue_utilization_ratio",
		Help: "Current search queue utilization (0–1).",
	})
)
