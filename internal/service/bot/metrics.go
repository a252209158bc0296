package bot

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	searchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "connect4_bot_searches_total",
		Help: "Total negamax searches run by the bot",
	})

	searchNodesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "connect4_bot_search_nodes_total",
		Help: "Total game tree nodes visited by the bot",
	})

	searchNodes = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "connect4_bot_search_nodes",
		Help:    "Nodes visited per search by depth",
		Buckets: prometheus.ExponentialBuckets(10, 10, 8),
	}, []string{"depth"})

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "connect4_bot_search_duration_seconds",
		Help:    "Duration of a full search",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60},
	})
)

func observeSearch(r Result) {
	searchesTotal.Inc()
	searchNodesTotal.Add(float64(r.Nodes))
	searchNodes.WithLabelValues(strconv.Itoa(r.Depth)).Observe(float64(r.Nodes))
	searchDuration.Observe(r.Elapsed.Seconds())
}
