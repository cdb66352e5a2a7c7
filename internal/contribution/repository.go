// AngelaMos | 2026
// repository.go

package contribution

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
	Create(ctx context.Context, c *Contribution) error
	GetByID(ctx context.Context, id string) (*Contribution, error)
	GetForUpdate(ctx context.Context, id string) (*Contribution, error)
	ListPending(ctx context.Context, limit, offset int) ([]Contribution, int, error)
	ListByUser(ctx context.Context, userID string) ([]Contribution, error)
	SetMartyr(ctx context.Context, id, martyrID string) error
	Resolve(
		ctx context.Context,
		id string,
		status Status,
		reviewerID string,
		reviewNotes *string,
	) error
	CountByStatus(ctx context.Context) ([]StatusCount, error)
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var contributionColumns = []string{
	"c.id", "c.type", "c.status", "c.content", "c.notes", "c.review_notes", "c.user_id",
	"c.martyr_id", "c.reviewed_by", "c.reviewed_at", "c.created_at",
	"c.updated_at", "u.name AS submitter_name", "u.email AS submitter_email",
	"m.name AS martyr_name",
}

func selectContributions() sq.SelectBuilder {
	return psql.Select(contributionColumns...).
		From("contributions c").
		Join("users u ON u.id = c.user_id").
		LeftJoin("martyrs m ON m.id = c.martyr_id")
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

func (r *repository) Create(ctx context.Context, c *Contribution) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	query, args, err := psql.
		Insert("contributions").
		Columns("id", "type", "status", "content", "notes", "user_id", "martyr_id").
		Values(c.ID, c.Type, c.Status, c.Content, c.Notes, c.UserID, c.MartyrID).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert contribution: %w", err)
	}

	row := r.q(ctx).QueryRowxContext(ctx, query, args...)
	if err := row.Scan(&c.CreatedAt, &c.UpdatedAt); err != nil {
		return fmt.Errorf("create contribution: %w", err)
	}

	return nil
}

func (r *repository) GetByID(
	ctx context.Context,
	id string,
) (*Contribution, error) {
	return r.getOne(ctx, id, "")
}

// GetForUpdate locks the contribution row until the surrounding
// transaction ends.
func (r *repository) GetForUpdate(
	ctx context.Context,
	id string,
) (*Contribution, error) {
	return r.getOne(ctx, id, "FOR UPDATE OF c")
}

func (r *repository) getOne(
	ctx context.Context,
	id, suffix string,
) (*Contribution, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("get contribution: %w", core.ErrNotFound)
	}

	builder := selectContributions().Where(sq.Eq{"c.id": id})
	if suffix != "" {
		builder = builder.Suffix(suffix)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get contribution: %w", err)
	}

	var c Contribution
	err = r.q(ctx).GetContext(ctx, &c, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get contribution: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get contribution: %w", err)
	}

	return &c, nil
}

func (r *repository) ListPending(
	ctx context.Context,
	limit, offset int,
) ([]Contribution, int, error) {
	countSQL, countArgs, err := psql.Select("COUNT(*)").
		From("contributions").
		Where(sq.Eq{"status": StatusPending}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count pending: %w", err)
	}

	var total int
	if err := r.q(ctx).GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count pending contributions: %w", err)
	}

	listSQL, listArgs, err := selectContributions().
		Where(sq.Eq{"c.status": StatusPending}).
		OrderBy("c.created_at ASC").
		Limit(uint64(limit)).   //nolint:gosec // normalized by caller
		Offset(uint64(offset)). //nolint:gosec // normalized by caller
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list pending: %w", err)
	}

	items := []Contribution{}
	if err := r.q(ctx).SelectContext(ctx, &items, listSQL, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list pending contributions: %w", err)
	}

	return items, total, nil
}

func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]Contribution, error) {
	query, args, err := selectContributions().
		Where(sq.Eq{"c.user_id": userID}).
		OrderBy("c.created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list user contributions: %w", err)
	}

	items := []Contribution{}
	if err := r.q(ctx).SelectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("list user contributions: %w", err)
	}

	return items, nil
}

func (r *repository) SetMartyr(ctx context.Context, id, martyrID string) error {
	query := `
		UPDATE contributions
		SET martyr_id = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.q(ctx).ExecContext(ctx, query, id, martyrID)
	if err != nil {
		return fmt.Errorf("link contribution martyr: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("link contribution martyr: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("link contribution martyr: %w", core.ErrNotFound)
	}

	return nil
}

// Resolve moves a pending contribution to its terminal status and records
// the reviewer's note beside the submitter's. Rows that are no longer
// pending are left untouched and reported as already resolved.
func (r *repository) Resolve(
	ctx context.Context,
	id string,
	status Status,
	reviewerID string,
	reviewNotes *string,
) error {
	query := `
		UPDATE contributions
		SET status = $2, reviewed_by = $3, reviewed_at = NOW(),
		    review_notes = $4, updated_at = NOW()
		WHERE id = $1 AND status = 'PENDING'`

	result, err := r.q(ctx).ExecContext(ctx, query, id, status, reviewerID, reviewNotes)
	if err != nil {
		return fmt.Errorf("resolve contribution: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("resolve contribution: %w", err)
	}
	if rows == 0 {
		return ErrAlreadyResolved
	}

	return nil
}

func (r *repository) CountByStatus(ctx context.Context) ([]StatusCount, error) {
	query := `
		SELECT status, COUNT(*) AS count
		FROM contributions
		GROUP BY status
		ORDER BY status`

	counts := []StatusCount{}
	if err := r.q(ctx).SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("count contributions by status: %w", err)
	}

	return counts, nil
}
