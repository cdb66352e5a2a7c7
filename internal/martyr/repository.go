// AngelaMos | 2026
// repository.go

package martyr

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/angelamos/memorial/internal/core"
)

//go:generate moq -out repository_mock_test.go . Repository

type Repository interface {
	List(ctx context.Context, params ListParams) ([]Martyr, error)
	GetByID(ctx context.Context, id string) (*Martyr, error)
	Search(ctx context.Context, query string) ([]Martyr, error)
	Create(ctx context.Context, m *Martyr) error
	Update(ctx context.Context, m *Martyr) error
	Delete(ctx context.Context, id string) error
	SetVerified(ctx context.Context, id string, verified bool) error
	SetImage(ctx context.Context, id, imageURL string) error
	CreateTestimonial(ctx context.Context, t *Testimonial) error
	CreateSource(ctx context.Context, s *Source) error
	CountByYear(ctx context.Context) ([]YearCount, error)
	CountByLocation(ctx context.Context) ([]LocationCount, error)
	TopLocations(ctx context.Context, n int) ([]LocationCount, error)
	Stats(ctx context.Context) (*Stats, error)
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var martyrColumns = []string{
	"id", "name", "date", "location", "cause", "description", "image_url",
	"age", "gender", "occupation", "family_status", "is_verified",
	"created_at", "updated_at",
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) q(ctx context.Context) core.DBTX {
	return core.Querier(ctx, r.db)
}

func (r *repository) List(
	ctx context.Context,
	params ListParams,
) ([]Martyr, error) {
	builder := psql.Select(martyrColumns...).
		From("martyrs").
		OrderBy("date DESC", "created_at DESC")

	if params.Limit != nil && *params.Limit >= 0 {
		builder = builder.Limit(uint64(*params.Limit)) //nolint:gosec // checked non-negative
	}
	if params.Offset != nil && *params.Offset > 0 {
		builder = builder.Offset(uint64(*params.Offset)) //nolint:gosec // checked positive
	}

	return r.selectWithRelations(ctx, builder, "list martyrs")
}

// GetByID returns (nil, nil) when no record matches, including for ids that
// are not valid UUIDs.
func (r *repository) GetByID(ctx context.Context, id string) (*Martyr, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	query, args, err := psql.Select(martyrColumns...).
		From("martyrs").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get martyr: %w", err)
	}

	var m Martyr
	err = r.q(ctx).GetContext(ctx, &m, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get martyr: %w", err)
	}

	list := []Martyr{m}
	if err := r.attachRelations(ctx, list); err != nil {
		return nil, err
	}

	return &list[0], nil
}

func (r *repository) Search(
	ctx context.Context,
	query string,
) ([]Martyr, error) {
	pattern := "%" + core.EscapeLike(query) + "%"

	builder := psql.Select(martyrColumns...).
		From("martyrs").
		Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"location": pattern},
			sq.ILike{"description": pattern},
			sq.ILike{"occupation": pattern},
		}).
		OrderBy("date DESC", "created_at DESC")

	return r.selectWithRelations(ctx, builder, "search martyrs")
}

func (r *repository) selectWithRelations(
	ctx context.Context,
	builder sq.SelectBuilder,
	op string,
) ([]Martyr, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	martyrs := []Martyr{}
	if err := r.q(ctx).SelectContext(ctx, &martyrs, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.attachRelations(ctx, martyrs); err != nil {
		return nil, err
	}

	return martyrs, nil
}

// attachRelations loads verified testimonials and all sources for the given
// records with one IN query each.
func (r *repository) attachRelations(ctx context.Context, martyrs []Martyr) error {
	if len(martyrs) == 0 {
		return nil
	}

	ids := make([]string, 0, len(martyrs))
	index := make(map[string]int, len(martyrs))
	for i := range martyrs {
		ids = append(ids, martyrs[i].ID)
		index[martyrs[i].ID] = i
		martyrs[i].Testimonials = []Testimonial{}
		martyrs[i].Sources = []Source{}
	}

	tQuery, tArgs, err := psql.
		Select(
			"id", "content", "author", "relationship", "date", "is_verified",
			"martyr_id", "user_id", "created_at",
		).
		From("testimonials").
		Where(sq.Eq{"martyr_id": ids, "is_verified": true}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return fmt.Errorf("build load testimonials: %w", err)
	}

	var testimonials []Testimonial
	if err := r.q(ctx).SelectContext(ctx, &testimonials, tQuery, tArgs...); err != nil {
		return fmt.Errorf("load testimonials: %w", err)
	}

	for _, t := range testimonials {
		if t.MartyrID == nil {
			continue
		}
		if i, ok := index[*t.MartyrID]; ok {
			martyrs[i].Testimonials = append(martyrs[i].Testimonials, t)
		}
	}

	sQuery, sArgs, err := psql.
		Select("id", "name", "url", "date", "type", "martyr_id", "created_at").
		From("sources").
		Where(sq.Eq{"martyr_id": ids}).
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		return fmt.Errorf("build load sources: %w", err)
	}

	var sources []Source
	if err := r.q(ctx).SelectContext(ctx, &sources, sQuery, sArgs...); err != nil {
		return fmt.Errorf("load sources: %w", err)
	}

	for _, s := range sources {
		if s.MartyrID == nil {
			continue
		}
		if i, ok := index[*s.MartyrID]; ok {
			martyrs[i].Sources = append(martyrs[i].Sources, s)
		}
	}

	return nil
}

func (r *repository) Create(ctx context.Context, m *Martyr) error {
	if err := m.Validate(); err != nil {
		return err
	}

	if m.ID == "" {
		m.ID = uuid.New().String()
	}

	query, args, err := psql.
		Insert("martyrs").
		Columns(
			"id", "name", "date", "location", "cause", "description",
			"image_url", "age", "gender", "occupation", "family_status",
			"is_verified",
		).
		Values(
			m.ID, m.Name, m.Date, m.Location, m.Cause, m.Description,
			m.ImageURL, m.Age, m.Gender, m.Occupation, m.FamilyStatus,
			m.IsVerified,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert martyr: %w", err)
	}

	row := r.q(ctx).QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&m.CreatedAt, &m.UpdatedAt); err != nil {
		return fmt.Errorf("create martyr: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, m *Martyr) error {
	if err := m.Validate(); err != nil {
		return err
	}

	query, args, err := psql.
		Update("martyrs").
		SetMap(map[string]any{
			"name":          m.Name,
			"date":          m.Date,
			"location":      m.Location,
			"cause":         m.Cause,
			"description":   m.Description,
			"image_url":     m.ImageURL,
			"age":           m.Age,
			"gender":        m.Gender,
			"occupation":    m.Occupation,
			"family_status": m.FamilyStatus,
			"is_verified":   m.IsVerified,
			"updated_at":    sq.Expr("NOW()"),
		}).
		Where(sq.Eq{"id": m.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build update martyr: %w", err)
	}

	err = r.q(ctx).GetContext(ctx, &m.UpdatedAt, query, args...)
	if errors.Is(err, sql.ErrNoRows) || core.IsInvalidUUID(err) {
		return fmt.Errorf("update martyr: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update martyr: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.execOne(ctx, "delete martyr", `DELETE FROM martyrs WHERE id = $1`, id)
}

func (r *repository) SetVerified(
	ctx context.Context,
	id string,
	verified bool,
) error {
	query := `
		UPDATE martyrs
		SET is_verified = $2, updated_at = NOW()
		WHERE id = $1`

	return r.execOne(ctx, "set martyr verified", query, id, verified)
}

func (r *repository) SetImage(ctx context.Context, id, imageURL string) error {
	query := `
		UPDATE martyrs
		SET image_url = $2, updated_at = NOW()
		WHERE id = $1`

	return r.execOne(ctx, "set martyr image", query, id, imageURL)
}

func (r *repository) CreateTestimonial(ctx context.Context, t *Testimonial) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}

	query, args, err := psql.
		Insert("testimonials").
		Columns(
			"id", "content", "author", "relationship", "date", "is_verified",
			"martyr_id", "user_id",
		).
		Values(
			t.ID, t.Content, t.Author, t.Relationship, t.Date, t.IsVerified,
			t.MartyrID, t.UserID,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert testimonial: %w", err)
	}

	if err := r.q(ctx).GetContext(ctx, &t.CreatedAt, query, args...); err != nil {
		return fmt.Errorf("create testimonial: %w", err)
	}

	return nil
}

func (r *repository) CreateSource(ctx context.Context, s *Source) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Type == "" {
		s.Type = SourceOther
	}

	query, args, err := psql.
		Insert("sources").
		Columns("id", "name", "url", "date", "type", "martyr_id").
		Values(s.ID, s.Name, s.URL, s.Date, s.Type, s.MartyrID).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert source: %w", err)
	}

	if err := r.q(ctx).GetContext(ctx, &s.CreatedAt, query, args...); err != nil {
		return fmt.Errorf("create source: %w", err)
	}

	return nil
}

func (r *repository) CountByYear(ctx context.Context) ([]YearCount, error) {
	query := `
		SELECT EXTRACT(YEAR FROM date)::int AS year, COUNT(*) AS count
		FROM martyrs
		GROUP BY year
		ORDER BY year DESC`

	counts := []YearCount{}
	if err := r.q(ctx).SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("count martyrs by year: %w", err)
	}

	return counts, nil
}

func (r *repository) CountByLocation(ctx context.Context) ([]LocationCount, error) {
	return r.countByLocation(ctx, nil)
}

func (r *repository) TopLocations(
	ctx context.Context,
	n int,
) ([]LocationCount, error) {
	if n <= 0 {
		n = 10
	}
	return r.countByLocation(ctx, &n)
}

func (r *repository) countByLocation(
	ctx context.Context,
	limit *int,
) ([]LocationCount, error) {
	builder := psql.Select("location", "COUNT(*) AS count").
		From("martyrs").
		GroupBy("location").
		OrderBy("count DESC", "location ASC")

	if limit != nil {
		builder = builder.Limit(uint64(*limit)) //nolint:gosec // callers pass positive n
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build count by location: %w", err)
	}

	counts := []LocationCount{}
	if err := r.q(ctx).SelectContext(ctx, &counts, query, args...); err != nil {
		return nil, fmt.Errorf("count martyrs by location: %w", err)
	}

	return counts, nil
}

func (r *repository) Stats(ctx context.Context) (*Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM martyrs) AS martyrs,
			(SELECT COUNT(*) FROM users WHERE deleted_at IS NULL) AS users,
			(SELECT COUNT(*) FROM testimonials) AS testimonials,
			(SELECT COUNT(*) FROM sources) AS sources,
			(SELECT COUNT(*) FROM contributions) AS contributions`

	var stats Stats
	if err := r.q(ctx).GetContext(ctx, &stats, query); err != nil {
		return nil, fmt.Errorf("database stats: %w", err)
	}

	return &stats, nil
}

func (r *repository) execOne(
	ctx context.Context,
	op, query string,
	args ...any,
) error {
	result, err := r.q(ctx).ExecContext(ctx, query, args...)
	if core.IsInvalidUUID(err) {
		return fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if rows == 0 {
		return fmt.Errorf("%s: %w", op, core.ErrNotFound)
	}

	return nil
}
