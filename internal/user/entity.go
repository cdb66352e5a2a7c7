// AngelaMos | 2026
// entity.go

package user

import (
	"time"

	"github.com/jmoiron/sqlx/types"

	"github.com/angelamos/memorial/internal/core"
	"github.com/angelamos/memorial/internal/permission"
)

type User struct {
	ID                  string          `db:"id"`
	Email               string          `db:"email"`
	PasswordHash        string          `db:"password_hash"`
	Name                string          `db:"name"`
	Role                permission.Role `db:"role"`
	IsVerified          bool            `db:"is_verified"`
	VerificationToken   *string         `db:"verification_token"`
	VerificationExpires *time.Time      `db:"verification_expires"`
	LastLoginAt         *time.Time      `db:"last_login_at"`
	TokenVersion        int             `db:"token_version"`
	CreatedAt           time.Time       `db:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at"`
	DeletedAt           *time.Time      `db:"deleted_at"`
}

func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

func (u *User) IsAdmin() bool {
	return u.Role == permission.RoleAdmin
}

// IsPlaceholder reports accounts provisioned for anonymous contributions.
func (u *User) IsPlaceholder() bool {
	return u.PasswordHash == core.UnusablePassword
}

func (u *User) Can(action permission.Action) bool {
	return permission.Allowed(action, u.Role, u.IsVerified)
}

type Profile struct {
	UserID      string         `db:"user_id"`
	Bio         *string        `db:"bio"`
	Avatar      *string        `db:"avatar"`
	Location    *string        `db:"location"`
	Website     *string        `db:"website"`
	SocialLinks types.JSONText `db:"social_links"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}
