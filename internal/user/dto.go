// AngelaMos | 2026
// dto.go

package user

import (
	"encoding/json"
	"time"

	"github.com/angelamos/memorial/internal/permission"
)

type UpdateUserRequest struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=USER MODERATOR ADMIN"`
}

type UpdateProfileRequest struct {
	Bio         *string           `json:"bio,omitempty"          validate:"omitempty,max=2000"`
	Avatar      *string           `json:"avatar,omitempty"       validate:"omitempty,url,max=500"`
	Location    *string           `json:"location,omitempty"     validate:"omitempty,max=200"`
	Website     *string           `json:"website,omitempty"      validate:"omitempty,url,max=500"`
	SocialLinks map[string]string `json:"social_links,omitempty" validate:"omitempty,max=10,dive,url"`
}

type UserResponse struct {
	ID          string          `json:"id"`
	Email       string          `json:"email"`
	Name        string          `json:"name"`
	Role        permission.Role `json:"role"`
	RoleName    string          `json:"role_name"`
	IsVerified  bool            `json:"is_verified"`
	LastLoginAt *time.Time      `json:"last_login_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ProfileResponse struct {
	UserID      string          `json:"user_id"`
	Bio         *string         `json:"bio,omitempty"`
	Avatar      *string         `json:"avatar,omitempty"`
	Location    *string         `json:"location,omitempty"`
	Website     *string         `json:"website,omitempty"`
	SocialLinks json.RawMessage `json:"social_links,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type RolesResponse struct {
	Current   permission.Role   `json:"current"`
	Available []permission.Role `json:"available"`
}

type ListUsersParams struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Search   string `json:"search"`
	Role     string `json:"role"`
}

func (p *ListUsersParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 20
	}
	if p.PageSize > 100 {
		p.PageSize = 100
	}
}

func (p *ListUsersParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func ToUserResponse(u *User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Role:        u.Role,
		RoleName:    permission.DisplayName(u.Role),
		IsVerified:  u.IsVerified,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func ToUserResponseList(users []User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, ToUserResponse(&users[i]))
	}
	return responses
}

func ToProfileResponse(p *Profile) ProfileResponse {
	return ProfileResponse{
		UserID:      p.UserID,
		Bio:         p.Bio,
		Avatar:      p.Avatar,
		Location:    p.Location,
		Website:     p.Website,
		SocialLinks: json.RawMessage(p.SocialLinks),
		UpdatedAt:   p.UpdatedAt,
	}
}
