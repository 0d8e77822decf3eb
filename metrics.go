package treedex

import "github.com/prometheus/client_golang/prometheus"

// Collectors are package-level so hosts can register the ones they
// scrape. Nothing here registers itself.

var UpdateCount = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "treedex",
	Subsystem: "index",
	Name:      "updates",
}, []string{"result"})

var RemoveCount = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "treedex",
	Subsystem: "index",
	Name:      "removes",
}, []string{"result"})

var RemovedEntries = prometheus.NewCounter(prometheus.CounterOpts{
	Namespace: "treedex",
	Subsystem: "index",
	Name:      "removed_entries",
})

var EntryCount = prometheus.NewGauge(prometheus.GaugeOpts{
	Namespace: "treedex",
	Subsystem: "index",
	Name:      "entries",
})
