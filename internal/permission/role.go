// AngelaMos | 2026
// role.go

package permission

import "strings"

type Role string

const (
	RoleUser      Role = "USER"
	RoleModerator Role = "MODERATOR"
	RoleAdmin     Role = "ADMIN"
)

var ranks = map[Role]int{
	RoleUser:      1,
	RoleModerator: 2,
	RoleAdmin:     3,
}

var roleOrder = []Role{RoleUser, RoleModerator, RoleAdmin}

// Rank is 0 for roles outside the hierarchy.
func Rank(r Role) int {
	return ranks[r]
}

func (r Role) Valid() bool {
	_, ok := ranks[r]
	return ok
}

func (r Role) String() string {
	return string(r)
}

func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", false
	}
	return r, true
}

// HasRole reports whether userRole ranks at or above required.
func HasRole(userRole, required Role) bool {
	rank := Rank(userRole)
	return rank > 0 && rank >= Rank(required)
}

// AvailableRoles lists the roles an actor with current may see in a role picker.
func AvailableRoles(current Role) []Role {
	rank := Rank(current)
	out := make([]Role, 0, len(roleOrder))
	for _, r := range roleOrder {
		if Rank(r) <= rank {
			out = append(out, r)
		}
	}
	return out
}

// CanAssignRole requires the actor to outrank the role being granted.
func CanAssignRole(current, target Role) bool {
	return Rank(current) > Rank(target) && target.Valid()
}

func DisplayName(r Role) string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleModerator:
		return "Moderator"
	case RoleUser:
		return "User"
	default:
		return "Unknown"
	}
}

func Description(r Role) string {
	switch r {
	case RoleAdmin:
		return "Full access to all features and administrative functions"
	case RoleModerator:
		return "Can moderate content, approve contributions, and manage users"
	case RoleUser:
		return "Can submit contributions and view content"
	default:
		return "Unknown role"
	}
}
