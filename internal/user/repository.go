// AngelaMos | 2026
// repository.go

package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"

	"github.com/angelamos/memorial/internal/core"
)

//go:generate moq -out repository_mock_test.go . Repository

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	FindOrCreateByEmail(ctx context.Context, email, name string) (*User, error)
	ClaimPlaceholder(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	IncrementTokenVersion(ctx context.Context, id string) error
	RecordLogin(ctx context.Context, id string) error
	GetByVerificationToken(ctx context.Context, tokenHash string) (*User, error)
	MarkVerified(ctx context.Context, id string) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, params ListUsersParams) ([]User, int, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	UpsertProfile(ctx context.Context, profile *Profile) error
}

const userColumns = `id, email, password_hash, name, role, is_verified,
	verification_token, verification_expires, last_login_at, token_version,
	created_at, updated_at, deleted_at`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) q(ctx context.Context) core.DBTX {
	return core.Querier(ctx, r.db)
}

func (r *repository) Create(ctx context.Context, user *User) error {
	query := `
		INSERT INTO users (
			id, email, password_hash, name, role, is_verified,
			verification_token, verification_expires
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at, token_version`

	row := r.q(ctx).QueryRowxContext(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Role,
		user.IsVerified,
		user.VerificationToken,
		user.VerificationExpires,
	)
	err := row.Scan(&user.CreatedAt, &user.UpdatedAt, &user.TokenVersion)
	if err != nil {
		if core.IsUniqueViolation(err) {
			return fmt.Errorf("create user: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND deleted_at IS NULL`

	var user User
	err := r.q(ctx).GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) || core.IsInvalidUUID(err) {
		return nil, fmt.Errorf("get user: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE email = $1 AND deleted_at IS NULL`

	var user User
	err := r.q(ctx).GetContext(ctx, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by email: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	return &user, nil
}

// FindOrCreateByEmail returns the live account for email, inserting a
// placeholder in the same statement when none exists. The no-op update makes
// RETURNING yield the existing row on conflict.
func (r *repository) FindOrCreateByEmail(
	ctx context.Context,
	email, name string,
) (*User, error) {
	query := `
		INSERT INTO users (id, email, password_hash, name, role)
		VALUES ($1, $2, $3, $4, 'USER')
		ON CONFLICT (email) WHERE deleted_at IS NULL
		DO UPDATE SET email = EXCLUDED.email
		RETURNING ` + userColumns

	var user User
	err := r.q(ctx).GetContext(ctx, &user, query,
		uuid.New().String(),
		email,
		core.UnusablePassword,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("find or create user: %w", err)
	}

	return &user, nil
}

func (r *repository) ClaimPlaceholder(ctx context.Context, user *User) error {
	query := `
		UPDATE users
		SET password_hash = $2, name = $3, is_verified = $4,
		    verification_token = $5, verification_expires = $6,
		    updated_at = NOW()
		WHERE id = $1 AND password_hash = $7 AND deleted_at IS NULL
		RETURNING updated_at, token_version`

	row := r.q(ctx).QueryRowxContext(ctx, query,
		user.ID,
		user.PasswordHash,
		user.Name,
		user.IsVerified,
		user.VerificationToken,
		user.VerificationExpires,
		core.UnusablePassword,
	)
	err := row.Scan(&user.UpdatedAt, &user.TokenVersion)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("claim account: %w", core.ErrDuplicateKey)
	}
	if err != nil {
		return fmt.Errorf("claim account: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, user *User) error {
	query := `
		UPDATE users
		SET name = $2, role = $3, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at`

	err := r.q(ctx).GetContext(ctx, &user.UpdatedAt, query,
		user.ID,
		user.Name,
		user.Role,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update user: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	return nil
}

func (r *repository) UpdatePassword(
	ctx context.Context,
	id, passwordHash string,
) error {
	query := `
		UPDATE users
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	return r.execOne(ctx, "update password", query, id, passwordHash)
}

func (r *repository) IncrementTokenVersion(
	ctx context.Context,
	id string,
) error {
	query := `
		UPDATE users
		SET token_version = token_version + 1, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	return r.execOne(ctx, "increment token version", query, id)
}

func (r *repository) RecordLogin(ctx context.Context, id string) error {
	query := `
		UPDATE users
		SET last_login_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	return r.execOne(ctx, "record login", query, id)
}

func (r *repository) GetByVerificationToken(
	ctx context.Context,
	tokenHash string,
) (*User, error) {
	query := `SELECT ` + userColumns + `
		FROM users
		WHERE verification_token = $1 AND deleted_at IS NULL`

	var user User
	err := r.q(ctx).GetContext(ctx, &user, query, tokenHash)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user by verification token: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user by verification token: %w", err)
	}

	return &user, nil
}

func (r *repository) MarkVerified(ctx context.Context, id string) error {
	query := `
		UPDATE users
		SET is_verified = TRUE, verification_token = NULL,
		    verification_expires = NULL, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	return r.execOne(ctx, "mark verified", query, id)
}

func (r *repository) SoftDelete(ctx context.Context, id string) error {
	query := `
		UPDATE users
		SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL`

	return r.execOne(ctx, "delete user", query, id)
}

func (r *repository) List(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	params.Normalize()

	where := sq.And{sq.Expr("deleted_at IS NULL")}

	if params.Search != "" {
		pattern := "%" + core.EscapeLike(params.Search) + "%"
		where = append(where, sq.Or{
			sq.ILike{"email": pattern},
			sq.ILike{"name": pattern},
		})
	}

	if params.Role != "" {
		where = append(where, sq.Eq{"role": params.Role})
	}

	countSQL, countArgs, err := psql.Select("COUNT(*)").
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count users: %w", err)
	}

	var total int
	if err := r.q(ctx).GetContext(ctx, &total, countSQL, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	listSQL, listArgs, err := psql.Select(userColumns).
		From("users").
		Where(where).
		OrderBy("created_at DESC").
		Limit(uint64(params.PageSize)).  //nolint:gosec // normalized to 1..100
		Offset(uint64(params.Offset())). //nolint:gosec // never negative after Normalize
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list users: %w", err)
	}

	var users []User
	if err := r.q(ctx).SelectContext(ctx, &users, listSQL, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}

	return users, total, nil
}

func (r *repository) ExistsByEmail(
	ctx context.Context,
	email string,
) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 AND deleted_at IS NULL)`

	var exists bool
	if err := r.q(ctx).GetContext(ctx, &exists, query, email); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}

func (r *repository) GetProfile(
	ctx context.Context,
	userID string,
) (*Profile, error) {
	query := `
		SELECT user_id, bio, avatar, location, website, social_links,
		       created_at, updated_at
		FROM profiles
		WHERE user_id = $1`

	var profile Profile
	err := r.q(ctx).GetContext(ctx, &profile, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get profile: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &profile, nil
}

func (r *repository) UpsertProfile(ctx context.Context, profile *Profile) error {
	if len(profile.SocialLinks) == 0 {
		profile.SocialLinks = types.JSONText("{}")
	}

	query := `
		INSERT INTO profiles (user_id, bio, avatar, location, website, social_links)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			bio = EXCLUDED.bio,
			avatar = EXCLUDED.avatar,
			location = EXCLUDED.location,
			website = EXCLUDED.website,
			social_links = EXCLUDED.social_links,
			updated_at = NOW()
		RETURNING created_at, updated_at`

	row := r.q(ctx).QueryRowxContext(ctx, query,
		profile.UserID,
		profile.Bio,
		profile.Avatar,
		profile.Location,
		profile.Website,
		profile.SocialLinks,
	)
	if err := row.Scan(&profile.CreatedAt, &profile.UpdatedAt); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	return nil
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
