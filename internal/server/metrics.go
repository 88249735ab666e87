package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var syncEntriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dailypuzzle_sync_entries_total",
	Help: "Sync entries processed, labeled by outcome.",
}, []string{"status"})
