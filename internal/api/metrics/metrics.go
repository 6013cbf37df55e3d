// Package metrics defines and registers all custom Prometheus metrics for the
// fixtures API. It is the single source of truth for metric names, labels,
// and help strings. Metrics self-register with the default registry via
// promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "fixtures"

// FixturesCreatedTotal counts newly scheduled fixtures.
var FixturesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "created_total",
		Help:      "Total number of fixtures created.",
	},
)

// CacheLookupsTotal counts cache decisions on the full-list read path.
// Label:
//   - result: "hit" (served from cache) or "miss" (served from the store)
var CacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "list_cache_lookups_total",
		Help:      "Total number of fixture list cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ScoreUpdatesTotal counts score write attempts.
// Label:
//   - result: "applied" or "rejected" (fixture had not kicked off)
var ScoreUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "score_updates_total",
		Help:      "Total number of fixture score updates, labelled by result (applied/rejected).",
	},
	[]string{"result"},
)
