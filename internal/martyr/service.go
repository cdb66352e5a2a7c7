// AngelaMos | 2026
// service.go

package martyr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/angelamos/memorial/internal/core"
	"github.com/angelamos/memorial/internal/permission"
	"github.com/angelamos/memorial/internal/user"
)

//go:generate moq -out authorizer_mock_test.go . Authorizer

// Authorizer loads the acting user and checks the permission matrix.
type Authorizer interface {
	Authorize(
		ctx context.Context,
		actorID string,
		action permission.Action,
	) (*user.User, error)
}

const topLocationsLimit = 10

func CacheKey(id string) string {
	return "martyr:" + id
}

type Service struct {
	repo     Repository
	authz    Authorizer
	cache    *core.Redis
	cacheTTL time.Duration
	logger   *slog.Logger
}

func NewService(
	repo Repository,
	authz Authorizer,
	cache *core.Redis,
	cacheTTL time.Duration,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:     repo,
		authz:    authz,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

func (s *Service) List(ctx context.Context, limit, offset *int) ([]Martyr, error) {
	return s.repo.List(ctx, ListParams{Limit: limit, Offset: offset})
}

func (s *Service) Search(ctx context.Context, query string) ([]Martyr, error) {
	return s.repo.Search(ctx, query)
}

// Get reads through the cache. A missing record yields (nil, nil).
func (s *Service) Get(ctx context.Context, id string) (*Martyr, error) {
	key := CacheKey(id)

	var cached Martyr
	err := s.cache.GetJSON(ctx, key, &cached)
	switch {
	case err == nil:
		cacheLookups.WithLabelValues(cacheHit).Inc()
		return &cached, nil
	case errors.Is(err, core.ErrCacheMiss):
		if s.cache.Enabled() {
			cacheLookups.WithLabelValues(cacheMiss).Inc()
		}
	default:
		cacheLookups.WithLabelValues(cacheError).Inc()
		s.logger.WarnContext(ctx, "martyr cache read failed", "id", id, "error", err)
	}

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, nil
	}

	if err := s.cache.SetJSON(ctx, key, m, s.cacheTTL); err != nil {
		s.logger.WarnContext(ctx, "martyr cache write failed", "id", id, "error", err)
	}

	return m, nil
}

// Invalidate drops the cached copy of a record after it changed.
func (s *Service) Invalidate(ctx context.Context, ids ...string) {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			keys = append(keys, CacheKey(id))
		}
	}

	if err := s.cache.Delete(ctx, keys...); err != nil {
		s.logger.WarnContext(ctx, "martyr cache invalidation failed", "ids", ids, "error", err)
	}
}

func (s *Service) Create(
	ctx context.Context,
	actorID string,
	req CreateMartyrRequest,
) (*Martyr, error) {
	if _, err := s.authz.Authorize(ctx, actorID, permission.EditMartyrs); err != nil {
		return nil, err
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		return nil, core.NewValidationError("date", MsgInvalidDate)
	}

	m := &Martyr{
		Name:         strings.TrimSpace(req.Name),
		Date:         date,
		Location:     strings.TrimSpace(req.Location),
		Cause:        req.Cause,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		Age:          req.Age,
		Occupation:   req.Occupation,
		FamilyStatus: req.FamilyStatus,
		IsVerified:   req.IsVerified != nil && *req.IsVerified,
	}
	if req.Gender != nil {
		g := ParseGender(*req.Gender)
		m.Gender = &g
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "martyr created",
		"id", m.ID,
		"actor_id", actorID,
		"verified", m.IsVerified,
	)

	return m, nil
}

func (s *Service) Update(
	ctx context.Context,
	actorID, id string,
	req UpdateMartyrRequest,
) (*Martyr, error) {
	if _, err := s.authz.Authorize(ctx, actorID, permission.EditMartyrs); err != nil {
		return nil, err
	}

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("update martyr: %w", core.ErrNotFound)
	}

	if req.Name != nil {
		m.Name = strings.TrimSpace(*req.Name)
	}
	if req.Date != nil {
		date, err := ParseDate(*req.Date)
		if err != nil {
			return nil, core.NewValidationError("date", MsgInvalidDate)
		}
		m.Date = date
	}
	if req.Location != nil {
		m.Location = strings.TrimSpace(*req.Location)
	}
	if req.Cause != nil {
		m.Cause = req.Cause
	}
	if req.Description != nil {
		m.Description = req.Description
	}
	if req.ImageURL != nil {
		m.ImageURL = req.ImageURL
	}
	if req.Age != nil {
		m.Age = req.Age
	}
	if req.Gender != nil {
		g := ParseGender(*req.Gender)
		m.Gender = &g
	}
	if req.Occupation != nil {
		m.Occupation = req.Occupation
	}
	if req.FamilyStatus != nil {
		m.FamilyStatus = req.FamilyStatus
	}

	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}

	s.Invalidate(ctx, id)

	return m, nil
}

func (s *Service) SetVerified(
	ctx context.Context,
	actorID, id string,
	verified bool,
) (*Martyr, error) {
	if _, err := s.authz.Authorize(ctx, actorID, permission.VerifyMartyrs); err != nil {
		return nil, err
	}

	if err := s.repo.SetVerified(ctx, id, verified); err != nil {
		return nil, err
	}

	s.Invalidate(ctx, id)

	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("set martyr verified: %w", core.ErrNotFound)
	}

	return m, nil
}

func (s *Service) Delete(ctx context.Context, actorID, id string) error {
	if _, err := s.authz.Authorize(ctx, actorID, permission.DeleteMartyrs); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.Invalidate(ctx, id)

	s.logger.InfoContext(ctx, "martyr deleted", "id", id, "actor_id", actorID)

	return nil
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	return s.repo.Stats(ctx)
}

func (s *Service) Analytics(
	ctx context.Context,
	actorID string,
) (*AnalyticsResponse, error) {
	if _, err := s.authz.Authorize(ctx, actorID, permission.ViewAnalytics); err != nil {
		return nil, err
	}

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	byYear, err := s.repo.CountByYear(ctx)
	if err != nil {
		return nil, err
	}

	byLocation, err := s.repo.CountByLocation(ctx)
	if err != nil {
		return nil, err
	}

	top, err := s.repo.TopLocations(ctx, topLocationsLimit)
	if err != nil {
		return nil, err
	}

	return &AnalyticsResponse{
		Stats:        stats,
		ByYear:       byYear,
		ByLocation:   byLocation,
		TopLocations: top,
	}, nil
}
