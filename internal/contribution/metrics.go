// AngelaMos | 2026
// metrics.go

package contribution

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	submittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memorial_contributions_submitted_total",
			Help: "Contributions submitted by type",
		},
		[]string{"type"},
	)

	resolvedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "memorial_contributions_resolved_total",
			Help: "Contributions resolved by outcome",
		},
		[]string{"status"},
	)
)
