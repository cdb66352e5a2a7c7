// AngelaMos | 2026
// repository.go

package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/angelamos/memorial/internal/core"
)

//go:generate moq -out repository_mock_test.go . Repository

type Repository interface {
	Create(ctx context.Context, token *RefreshToken) error
	FindByHash(ctx context.Context, tokenHash string) (*RefreshToken, error)
	FindByID(ctx context.Context, id string) (*RefreshToken, error)
	MarkAsUsed(ctx context.Context, id, replacedByID string) error
	RevokeByID(ctx context.Context, id string) error
	RevokeByFamilyID(ctx context.Context, familyID string) error
	RevokeAllForUser(ctx context.Context, userID string) error
	GetActiveSessionsForUser(
		ctx context.Context,
		userID string,
	) ([]RefreshToken, error)
	DeleteExpired(ctx context.Context, olderThan time.Duration) (int64, error)
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var tokenColumns = []string{
	"id", "user_id", "token_hash", "family_id", "expires_at", "created_at",
	"is_used", "used_at", "revoked_at", "replaced_by_id", "user_agent",
	"ip_address",
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

func (r *repository) Create(ctx context.Context, token *RefreshToken) error {
	query, args, err := psql.
		Insert("refresh_tokens").
		Columns(
			"id", "user_id", "token_hash", "family_id", "expires_at",
			"user_agent", "ip_address",
		).
		Values(
			token.ID, token.UserID, token.TokenHash, token.FamilyID,
			token.ExpiresAt, token.UserAgent, token.IPAddress,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert refresh token: %w", err)
	}

	if err := r.q(ctx).GetContext(ctx, &token.CreatedAt, query, args...); err != nil {
		return fmt.Errorf("create refresh token: %w", err)
	}

	return nil
}

func (r *repository) FindByHash(
	ctx context.Context,
	tokenHash string,
) (*RefreshToken, error) {
	return r.findOne(ctx, sq.Eq{"token_hash": tokenHash})
}

func (r *repository) FindByID(
	ctx context.Context,
	id string,
) (*RefreshToken, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *repository) findOne(
	ctx context.Context,
	where sq.Eq,
) (*RefreshToken, error) {
	query, args, err := psql.
		Select(tokenColumns...).
		From("refresh_tokens").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find refresh token: %w", err)
	}

	var token RefreshToken
	err = r.q(ctx).GetContext(ctx, &token, query, args...)
	if errors.Is(err, sql.ErrNoRows) || core.IsInvalidUUID(err) {
		return nil, fmt.Errorf("find refresh token: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find refresh token: %w", err)
	}

	return &token, nil
}

func (r *repository) MarkAsUsed(
	ctx context.Context,
	id, replacedByID string,
) error {
	query := `
		UPDATE refresh_tokens
		SET is_used = true, used_at = NOW(), replaced_by_id = $2
		WHERE id = $1 AND is_used = false`

	return r.execOne(ctx, "mark refresh token as used", query, id, replacedByID)
}

func (r *repository) RevokeByID(ctx context.Context, id string) error {
	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE id = $1 AND revoked_at IS NULL`

	return r.execOne(ctx, "revoke refresh token", query, id)
}

func (r *repository) RevokeByFamilyID(
	ctx context.Context,
	familyID string,
) error {
	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE family_id = $1 AND revoked_at IS NULL`

	if _, err := r.q(ctx).ExecContext(ctx, query, familyID); err != nil {
		return fmt.Errorf("revoke token family: %w", err)
	}

	return nil
}

func (r *repository) RevokeAllForUser(
	ctx context.Context,
	userID string,
) error {
	query := `
		UPDATE refresh_tokens
		SET revoked_at = NOW()
		WHERE user_id = $1 AND revoked_at IS NULL`

	if _, err := r.q(ctx).ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("revoke all user tokens: %w", err)
	}

	return nil
}

func (r *repository) GetActiveSessionsForUser(
	ctx context.Context,
	userID string,
) ([]RefreshToken, error) {
	query, args, err := psql.
		Select(tokenColumns...).
		From("refresh_tokens").
		Where(sq.Eq{"user_id": userID, "revoked_at": nil, "is_used": false}).
		Where("expires_at > NOW()").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build active sessions: %w", err)
	}

	tokens := []RefreshToken{}
	if err := r.q(ctx).SelectContext(ctx, &tokens, query, args...); err != nil {
		return nil, fmt.Errorf("get active sessions: %w", err)
	}

	return tokens, nil
}

func (r *repository) DeleteExpired(
	ctx context.Context,
	olderThan time.Duration,
) (int64, error) {
	query := `DELETE FROM refresh_tokens WHERE expires_at < $1`

	result, err := r.q(ctx).ExecContext(ctx, query, time.Now().Add(-olderThan))
	if err != nil {
		return 0, fmt.Errorf("delete expired tokens: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete expired tokens: %w", err)
	}

	return rows, nil
}

func (r *repository) execOne(
	ctx context.Context,
	op, query string,
	args ...any,
) error {
	result, err := r.q(ctx).ExecContext(ctx, query, args...)
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
