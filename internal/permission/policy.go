// AngelaMos | 2026
// policy.go

package permission

type Action string

const (
	ViewUsers            Action = "VIEW_USERS"
	EditUsers            Action = "EDIT_USERS"
	DeleteUsers          Action = "DELETE_USERS"
	AssignRoles          Action = "ASSIGN_ROLES"
	ViewAllContributions Action = "VIEW_ALL_CONTRIBUTIONS"
	ApproveContributions Action = "APPROVE_CONTRIBUTIONS"
	RejectContributions  Action = "REJECT_CONTRIBUTIONS"
	EditMartyrs          Action = "EDIT_MARTYRS"
	DeleteMartyrs        Action = "DELETE_MARTYRS"
	VerifyMartyrs        Action = "VERIFY_MARTYRS"
	AccessAdminPanel     Action = "ACCESS_ADMIN_PANEL"
	ViewAnalytics        Action = "VIEW_ANALYTICS"
	ManageSystemSettings Action = "MANAGE_SYSTEM_SETTINGS"
	SubmitContributions  Action = "SUBMIT_CONTRIBUTIONS"
	EditOwnProfile       Action = "EDIT_OWN_PROFILE"
	ViewOwnContributions Action = "VIEW_OWN_CONTRIBUTIONS"
)

type rule struct {
	minRole      Role
	needVerified bool
	always       bool
}

var rules = map[Action]rule{
	ViewUsers:            {minRole: RoleModerator},
	EditUsers:            {minRole: RoleModerator},
	DeleteUsers:          {minRole: RoleAdmin},
	AssignRoles:          {minRole: RoleModerator},
	ViewAllContributions: {minRole: RoleModerator},
	ApproveContributions: {minRole: RoleModerator},
	RejectContributions:  {minRole: RoleModerator},
	EditMartyrs:          {minRole: RoleModerator},
	DeleteMartyrs:        {minRole: RoleAdmin},
	VerifyMartyrs:        {minRole: RoleModerator},
	AccessAdminPanel:     {minRole: RoleModerator},
	ViewAnalytics:        {minRole: RoleModerator},
	ManageSystemSettings: {minRole: RoleAdmin},
	SubmitContributions:  {needVerified: true},
	EditOwnProfile:       {always: true},
	ViewOwnContributions: {always: true},
}

// Allowed is the single authorization decision for every action.
// Unknown actions are denied.
func Allowed(action Action, role Role, verified bool) bool {
	r, ok := rules[action]
	if !ok {
		return false
	}

	if r.always {
		return true
	}

	if r.needVerified && !verified {
		return false
	}

	if r.minRole == "" {
		return true
	}

	return HasRole(role, r.minRole)
}

func Actions() []Action {
	out := make([]Action, 0, len(rules))
	for a := range rules {
		out = append(out, a)
	}
	return out
}

// MinRole reports the lowest role that passes the role part of the rule.
func MinRole(action Action) (Role, bool) {
	r, ok := rules[action]
	if !ok {
		return "", false
	}
	if r.minRole == "" {
		return RoleUser, true
	}
	return r.minRole, true
}

func CanViewUsers(role Role) bool { return Allowed(ViewUsers, role, false) }
func CanEditUsers(role Role) bool { return Allowed(EditUsers, role, false) }
func CanDeleteUsers(role Role) bool { return Allowed(DeleteUsers, role, false) }
func CanAssignRoles(role Role) bool { return Allowed(AssignRoles, role, false) }
func CanViewAllContributions(role Role) bool { return Allowed(ViewAllContributions, role, false) }
func CanApproveContributions(role Role) bool { return Allowed(ApproveContributions, role, false) }
func CanRejectContributions(role Role) bool { return Allowed(RejectContributions, role, false) }
func CanEditMartyrs(role Role) bool { return Allowed(EditMartyrs, role, false) }
func CanDeleteMartyrs(role Role) bool { return Allowed(DeleteMartyrs, role, false) }
func CanVerifyMartyrs(role Role) bool { return Allowed(VerifyMartyrs, role, false) }
func CanAccessAdminPanel(role Role) bool { return Allowed(AccessAdminPanel, role, false) }
func CanViewAnalytics(role Role) bool { return Allowed(ViewAnalytics, role, false) }
func CanManageSystemSettings(role Role) bool { return Allowed(ManageSystemSettings, role, false) }
func CanSubmitContributions(verified bool) bool {
	return Allowed(SubmitContributions, "", verified)
}
