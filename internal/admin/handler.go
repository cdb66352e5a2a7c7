// AngelaMos | 2026
// handler.go

package admin

import (
	"context"
	"database/sql"
	"net/http"
	"runtime"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/angelamos/memorial/internal/contribution"
	"github.com/angelamos/memorial/internal/core"
	"github.com/angelamos/memorial/internal/martyr"
	"github.com/angelamos/memorial/internal/middleware"
	"github.com/angelamos/memorial/internal/permission"
)

type ArchiveAnalytics interface {
	Analytics(ctx context.Context, actorID string) (*martyr.AnalyticsResponse, error)
}

type ReviewQueue interface {
	StatusCounts(ctx context.Context, actorID string) ([]contribution.StatusCount, error)
}

type Handler struct {
	archive    ArchiveAnalytics
	queue      ReviewQueue
	dbStats    func() sql.DBStats
	redisStats func() *redis.PoolStats
	dbPing     func(ctx context.Context) error
	redisPing  func(ctx context.Context) error
}

type HandlerConfig struct {
	Archive    ArchiveAnalytics
	Queue      ReviewQueue
	DBStats    func() sql.DBStats
	RedisStats func() *redis.PoolStats
	DBPing     func(ctx context.Context) error
	RedisPing  func(ctx context.Context) error
}

func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		archive:    cfg.Archive,
		queue:      cfg.Queue,
		dbStats:    cfg.DBStats,
		redisStats: cfg.RedisStats,
		dbPing:     cfg.DBPing,
		redisPing:  cfg.RedisPing,
	}
}

// RegisterRoutes mounts the dashboard. The action gates run on token
// claims; the services re-check the actor against the database.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(authenticator)
		r.Use(middleware.RequireAction(permission.AccessAdminPanel))

		r.With(middleware.RequireAction(permission.ViewAnalytics)).
			Get("/analytics", h.GetAnalytics)
		r.With(middleware.RequireAction(permission.ManageSystemSettings)).
			Get("/system", h.GetSystemStats)
	})
}

func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	actorID := middleware.GetUserID(ctx)

	archive, err := h.archive.Analytics(ctx, actorID)
	if err != nil {
		core.HandleError(w, err, "analytics")
		return
	}

	counts, err := h.queue.StatusCounts(ctx, actorID)
	if err != nil {
		core.HandleError(w, err, "analytics")
		return
	}

	byStatus := make(map[contribution.Status]int, len(counts))
	for _, c := range counts {
		byStatus[c.Status] = c.Count
	}

	core.OK(w, AnalyticsResponse{
		AnalyticsResponse: *archive,
		Contributions: ContributionSummary{
			Pending:  byStatus[contribution.StatusPending],
			Approved: byStatus[contribution.StatusApproved],
			Rejected: byStatus[contribution.StatusRejected],
		},
	})
}

func (h *Handler) GetSystemStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	core.OK(w, SystemStatsResponse{
		Database: DatabaseStatus{
			Healthy: healthy(ctx, h.dbPing),
			Stats:   h.getDBStats(),
		},
		Redis: RedisStatus{
			Healthy: healthy(ctx, h.redisPing),
			Stats:   h.getRedisStats(),
		},
		Runtime: RuntimeStats{
			GoVersion:    runtime.Version(),
			NumGoroutine: runtime.NumGoroutine(),
			MemAlloc:     memStats.Alloc,
			NumGC:        memStats.NumGC,
		},
	})
}

func healthy(ctx context.Context, ping func(ctx context.Context) error) bool {
	if ping == nil {
		return false
	}
	return ping(ctx) == nil
}

func (h *Handler) getDBStats() *DBPoolStats {
	if h.dbStats == nil {
		return nil
	}

	stats := h.dbStats()
	return &DBPoolStats{
		OpenConnections: stats.OpenConnections,
		InUse:           stats.InUse,
		Idle:            stats.Idle,
		WaitCount:       stats.WaitCount,
		WaitDuration:    stats.WaitDuration.String(),
	}
}

func (h *Handler) getRedisStats() *RedisPoolStats {
	if h.redisStats == nil {
		return nil
	}

	stats := h.redisStats()
	if stats == nil {
		return nil
	}
	return &RedisPoolStats{
		Hits:       stats.Hits,
		Misses:     stats.Misses,
		Timeouts:   stats.Timeouts,
		TotalConns: stats.TotalConns,
		IdleConns:  stats.IdleConns,
	}
}

type AnalyticsResponse struct {
	martyr.AnalyticsResponse
	Contributions ContributionSummary `json:"contributions"`
}

type ContributionSummary struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type SystemStatsResponse struct {
	Database DatabaseStatus `json:"database"`
	Redis    RedisStatus    `json:"redis"`
	Runtime  RuntimeStats   `json:"runtime"`
}

type DatabaseStatus struct {
	Healthy bool         `json:"healthy"`
	Stats   *DBPoolStats `json:"stats,omitempty"`
}

type RedisStatus struct {
	Healthy bool            `json:"healthy"`
	Stats   *RedisPoolStats `json:"stats,omitempty"`
}

type DBPoolStats struct {
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    string `json:"wait_duration"`
}

type RedisPoolStats struct {
	Hits       uint32 `json:"hits"`
	Misses     uint32 `json:"misses"`
	Timeouts   uint32 `json:"timeouts"`
	TotalConns uint32 `json:"total_conns"`
	IdleConns  uint32 `json:"idle_conns"`
}

type RuntimeStats struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutine"`
	MemAlloc     uint64 `json:"mem_alloc_bytes"`
	NumGC        uint32 `json:"num_gc"`
}
