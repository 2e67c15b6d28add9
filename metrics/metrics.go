// Package metrics exposes Prometheus instruments for the realtime and AI layers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ActiveSubscriptions broji otvorene pretplatničke kanale (ne streamove;
	// više kanala deli jedan stream).
	ActiveSubscriptions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "zenithpm_active_subscriptions",
		Help: "Number of open live-query subscription channels.",
	})

	// SnapshotsDelivered broji isporučene snapshote po kolekciji.
	SnapshotsDelivered = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zenithpm_snapshots_delivered_total",
		Help: "Total collection snapshots delivered to subscribers.",
	}, []string{"collection"})

	// ConnectedClients broji aktivne WebSocket konekcije.
	ConnectedClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "zenithpm_ws_clients",
		Help: "Number of connected WebSocket clients.",
	})

	// LLMRequests broji pozive ka LLM servisu po toku i ishodu.
	LLMRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "zenithpm_llm_requests_total",
		Help: "Total LLM prompt flow invocations.",
	}, []string{"flow", "outcome"})
)
