// Package metrics holds the prometheus instruments exported at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "teamchat_messages_created_total",
		Help: "Number of chat messages appended to rooms.",
	})

	SimulatedReplies = promauto.NewCounter(prometheus.CounterOpts{
		Name: "teamchat_simulated_replies_total",
		Help: "Number of synthetic replies injected by the response simulator.",
	})

	SnapshotSaves = promauto.NewCounter(prometheus.CounterOpts{
		Name: "teamchat_snapshot_saves_total",
		Help: "Number of successful write-through snapshot saves.",
	})

	SnapshotFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "teamchat_snapshot_failures_total",
		Help: "Number of snapshot saves that failed and were dropped.",
	})
)
