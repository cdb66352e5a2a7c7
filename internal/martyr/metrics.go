// AngelaMos | 2026
// metrics.go

package martyr

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var cacheLookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "memorial_martyr_cache_total",
		Help: "Martyr cache lookups by result",
	},
	[]string{"result"},
)

const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)
