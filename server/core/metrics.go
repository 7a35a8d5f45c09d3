package core

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/automoto/robots/shared/kdtree"
)

// Metrics with bounded cardinality (no per-player labels)
var (
	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "robots_tick_duration_seconds",
		Help:    "Time spent in one server tick",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05},
	})

	rangeCandidates = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "robots_range_candidates",
		Help:    "Boxes returned by one tree range query",
		Buckets: []float64{0, 1, 2, 4, 8, 16, 32, 64, 128, 256},
	})

	entityCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "robots_entities",
		Help: "Live entities by kind",
	}, []string{"kind"}) // Bounded: "player", "enemy"

	treeLeaves = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "robots_tree_leaves",
		Help: "Leaves in the level's k-d tree",
	})

	treeDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "robots_tree_depth",
		Help: "Depth of the level's k-d tree",
	})

	treeStoredBoxes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "robots_tree_stored_boxes",
		Help: "Boxes stored across all leaves, duplicates included",
	})

	wsConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "robots_websocket_connections_active",
		Help: "Currently active spectator WebSocket connections",
	})

	syncClientsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "robots_sync_clients_active",
		Help: "Currently connected players on the replication transport",
	})

	connectionRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "robots_connection_rejected_total",
		Help: "Connections rejected by the rate limiter or connection cap",
	}, []string{"reason"}) // Bounded: "rate_limit", "ws_total_limit"
)

func RecordTreeStats(s kdtree.Stats) {
	treeLeaves.Set(float64(s.Leaves))
	treeDepth.Set(float64(s.Depth))
	treeStoredBoxes.Set(float64(s.Stored))
}

func RecordEntities(players, enemies int) {
	entityCount.WithLabelValues("player").Set(float64(players))
	entityCount.WithLabelValues("enemy").Set(float64(enemies))
}

func RecordConnectionRejected(reason string) {
	connectionRejected.WithLabelValues(reason).Inc()
}

func UpdateWSConnections(count int) {
	wsConnectionsActive.Set(float64(count))
}

func UpdateSyncClients(count int) {
	syncClientsActive.Set(float64(count))
}
