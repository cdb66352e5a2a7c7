// AngelaMos | 2026
// entity.go

package auth

import (
	"time"

	"github.com/angelamos/memorial/internal/core"
)

// RefreshToken is one link in a rotation family. Each link can be spent
// once; the family id ties every rotation of one login together.
type RefreshToken struct {
	ID           string     `db:"id"`
	UserID       string     `db:"user_id"`
	TokenHash    string     `db:"token_hash"`
	FamilyID     string     `db:"family_id"`
	ExpiresAt    time.Time  `db:"expires_at"`
	CreatedAt    time.Time  `db:"created_at"`
	IsUsed       bool       `db:"is_used"`
	UsedAt       *time.Time `db:"used_at"`
	RevokedAt    *time.Time `db:"revoked_at"`
	ReplacedByID *string    `db:"replaced_by_id"`
	UserAgent    string     `db:"user_agent"`
	IPAddress    string     `db:"ip_address"`
}

// Exchangeable reports why the token can no longer be traded for a new
// pair. A spent token yields ErrTokenReuse and outranks every other state.
func (t *RefreshToken) Exchangeable(now time.Time) error {
	switch {
	case t.IsUsed:
		return ErrTokenReuse
	case t.RevokedAt != nil:
		return core.ErrTokenRevoked
	case !now.Before(t.ExpiresAt):
		return core.ErrTokenExpired
	}
	return nil
}

func (t *RefreshToken) session() SessionInfo {
	return SessionInfo{
		ID:        t.ID,
		UserAgent: t.UserAgent,
		IPAddress: t.IPAddress,
		CreatedAt: t.CreatedAt,
		ExpiresAt: t.ExpiresAt,
	}
}
