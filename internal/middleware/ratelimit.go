// AngelaMos | 2026
// ratelimit.go

package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/angelamos/memorial/internal/core"
	"github.com/angelamos/memorial/internal/permission"
)

type RateLimitConfig struct {
	Limit      redis_rate.Limit
	KeyFunc    func(*http.Request) string
	FailOpen   bool
	BypassFunc func(*http.Request) bool
	OnLimited  func(http.ResponseWriter, *http.Request, *redis_rate.Result)
}

// budget spends tokens from redis and falls back to an in-process
// bucket per key whenever redis is absent or failing.
type budget struct {
	remote *redis_rate.Limiter
	local  *localLimiter
}

func newBudget(rdb *redis.Client) *budget {
	b := &budget{local: newLocalLimiter()}
	if rdb != nil {
		b.remote = redis_rate.NewLimiter(rdb)
	}
	return b
}

func (b *budget) take(
	ctx context.Context,
	key string,
	limit redis_rate.Limit,
) (*redis_rate.Result, error) {
	if b.remote != nil {
		res, err := b.remote.Allow(ctx, key, limit)
		if err == nil {
			return res, nil
		}
		slog.Debug("redis rate limit unavailable, using local bucket",
			"error", err,
		)
	}
	return b.local.allow(key, limit)
}

type RateLimiter struct {
	budget *budget
	config RateLimitConfig
}

func NewRateLimiter(rdb *redis.Client, cfg RateLimitConfig) *RateLimiter {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = KeyByIP
	}
	if cfg.OnLimited == nil {
		cfg.OnLimited = func(w http.ResponseWriter, _ *http.Request, res *redis_rate.Result) {
			writeRateLimitExceeded(w, res)
		}
	}
	return &RateLimiter{budget: newBudget(rdb), config: cfg}
}

func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.config.BypassFunc != nil && rl.config.BypassFunc(r) {
			next.ServeHTTP(w, r)
			return
		}

		key := rl.config.KeyFunc(r)
		res, err := rl.budget.take(r.Context(), key, rl.config.Limit)
		if err != nil {
			if !rl.config.FailOpen {
				http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
				return
			}
			slog.Warn("rate limiter error, failing open",
				"error", err,
				"key", key,
			)
			next.ServeHTTP(w, r)
			return
		}

		setRateLimitHeaders(w, res, rl.config.Limit)
		if res.Allowed == 0 {
			rl.config.OnLimited(w, r, res)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type RoleLimit struct {
	RequestsPerMinute int
	BurstSize         int
}

// DefaultRoleLimits applies to authenticated callers; anonymous callers
// share the USER budget keyed by IP.
var DefaultRoleLimits = map[permission.Role]RoleLimit{
	permission.RoleUser:      {RequestsPerMinute: 60, BurstSize: 10},
	permission.RoleModerator: {RequestsPerMinute: 300, BurstSize: 50},
	permission.RoleAdmin:     {RequestsPerMinute: 1200, BurstSize: 200},
}

// RoleRateLimiter sizes the budget by the role on the token claims, so it
// must run after OptionalAuth or Authenticator.
func RoleRateLimiter(
	rdb *redis.Client,
	limits map[permission.Role]RoleLimit,
) func(http.Handler) http.Handler {
	b := newBudget(rdb)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := GetUserRole(r.Context())
			tier, ok := limits[role]
			if !ok {
				role = permission.RoleUser
				tier = limits[role]
			}

			limit := PerMinute(tier.RequestsPerMinute, tier.BurstSize)
			res, err := b.take(r.Context(), KeyByUser(r), limit)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Role", string(role))
			setRateLimitHeaders(w, res, limit)

			if res.Allowed == 0 {
				writeRateLimitExceeded(w, res)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP trusts the last X-Forwarded-For hop, the one appended by our
// own proxy, before X-Real-IP and the socket address.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		hops := strings.Split(xff, ",")
		return strings.TrimSpace(hops[len(hops)-1])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func KeyByIP(r *http.Request) string {
	return "ratelimit:ip:" + ClientIP(r)
}

func KeyByUser(r *http.Request) string {
	if userID := GetUserID(r.Context()); userID != "" {
		return "ratelimit:user:" + userID
	}
	return KeyByIP(r)
}

// KeyByUserAndEndpoint gives every form action its own budget, so a burst
// of logins does not starve contributions from the same caller.
func KeyByUserAndEndpoint(r *http.Request) string {
	return KeyByUser(r) + ":endpoint:" + normalizeEndpoint(r.URL.Path)
}

// normalizeEndpoint collapses ids so /v1/martyrs/<uuid> and
// /v1/martyrs/<other uuid> share one key.
func normalizeEndpoint(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, part := range parts {
		if isUUID(part) || isNumeric(part) {
			parts[i] = "{id}"
		}
	}
	return "/" + strings.Join(parts, "/")
}

func isUUID(s string) bool {
	return len(s) == 36 && s[8] == '-' && s[13] == '-' && s[18] == '-' && s[23] == '-'
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func setRateLimitHeaders(
	w http.ResponseWriter,
	res *redis_rate.Result,
	limit redis_rate.Limit,
) {
	h := w.Header()
	resetSecs := int(res.ResetAfter.Seconds())

	h.Set("X-RateLimit-Limit", strconv.Itoa(limit.Rate))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(res.ResetAfter).Unix(), 10))
	h.Set("RateLimit-Policy", fmt.Sprintf("%d;w=%d", limit.Rate, int(limit.Period.Seconds())))
	h.Set("RateLimit", fmt.Sprintf("%d;t=%d", res.Remaining, resetSecs))
}

func writeRateLimitExceeded(w http.ResponseWriter, res *redis_rate.Result) {
	retryAfter := max(int(res.RetryAfter.Seconds()), 1)

	w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
	core.JSONError(w, core.NewAppError(
		core.ErrRateLimited,
		fmt.Sprintf("Rate limit exceeded. Retry after %d seconds.", retryAfter),
		http.StatusTooManyRequests,
		"RATE_LIMITED",
	))
}

const (
	cleanupInterval = 5 * time.Minute
	entryTTL        = 10 * time.Minute
)

type localEntry struct {
	bucket   *rate.Limiter
	lastSeen atomic.Int64
}

type localLimiter struct {
	entries sync.Map
}

func newLocalLimiter() *localLimiter {
	l := &localLimiter{}
	go l.evictIdle()
	return l
}

func (l *localLimiter) evictIdle() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-entryTTL).Unix()
		l.entries.Range(func(key, value any) bool {
			if e, ok := value.(*localEntry); ok && e.lastSeen.Load() < cutoff {
				l.entries.Delete(key)
			}
			return true
		})
	}
}

func (l *localLimiter) allow(
	key string,
	limit redis_rate.Limit,
) (*redis_rate.Result, error) {
	perSecond := float64(limit.Rate) / limit.Period.Seconds()
	interval := time.Duration(float64(time.Second) / perSecond)

	value, ok := l.entries.Load(key)
	if !ok {
		value, _ = l.entries.LoadOrStore(key, &localEntry{
			bucket: rate.NewLimiter(rate.Limit(perSecond), limit.Burst),
		})
	}
	entry, ok := value.(*localEntry)
	if !ok {
		return nil, fmt.Errorf("local rate limiter: unexpected entry %T", value)
	}
	entry.lastSeen.Store(time.Now().Unix())

	res := &redis_rate.Result{
		Limit:      limit,
		RetryAfter: -1,
		ResetAfter: interval,
	}
	if entry.bucket.Allow() {
		res.Allowed = 1
	} else {
		res.RetryAfter = interval
	}
	res.Remaining = max(int(entry.bucket.Tokens()), 0)

	return res, nil
}

func PerMinute(rate, burst int) redis_rate.Limit {
	return redis_rate.Limit{Rate: rate, Burst: burst, Period: time.Minute}
}

func PerHour(rate, burst int) redis_rate.Limit {
	return redis_rate.Limit{Rate: rate, Burst: burst, Period: time.Hour}
}
