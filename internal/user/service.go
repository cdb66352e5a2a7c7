// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"

	"github.com/angelamos/memorial/internal/auth"
	"github.com/angelamos/memorial/internal/core"
	"github.com/angelamos/memorial/internal/permission"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(
	ctx context.Context,
	id string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) GetByEmail(
	ctx context.Context,
	email string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByEmail(ctx, core.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) Create(
	ctx context.Context,
	in auth.NewUser,
) (*auth.UserInfo, error) {
	user := &User{
		ID:                  uuid.New().String(),
		Email:               core.NormalizeEmail(in.Email),
		PasswordHash:        in.PasswordHash,
		Name:                strings.TrimSpace(in.Name),
		Role:                permission.RoleUser,
		IsVerified:          in.IsVerified,
		VerificationToken:   in.VerificationTokenHash,
		VerificationExpires: in.VerificationExpires,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

// ClaimPlaceholder turns an auto-provisioned account into a real one.
func (s *Service) ClaimPlaceholder(
	ctx context.Context,
	id string,
	in auth.NewUser,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = in.PasswordHash
	user.Name = strings.TrimSpace(in.Name)
	user.IsVerified = in.IsVerified
	user.VerificationToken = in.VerificationTokenHash
	user.VerificationExpires = in.VerificationExpires

	if err := s.repo.ClaimPlaceholder(ctx, user); err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) IncrementTokenVersion(
	ctx context.Context,
	userID string,
) error {
	return s.repo.IncrementTokenVersion(ctx, userID)
}

func (s *Service) UpdatePassword(
	ctx context.Context,
	userID, passwordHash string,
) error {
	return s.repo.UpdatePassword(ctx, userID, passwordHash)
}

func (s *Service) RecordLogin(ctx context.Context, userID string) error {
	return s.repo.RecordLogin(ctx, userID)
}

func (s *Service) GetByVerificationToken(
	ctx context.Context,
	tokenHash string,
) (*auth.UserInfo, error) {
	user, err := s.repo.GetByVerificationToken(ctx, tokenHash)
	if err != nil {
		return nil, err
	}

	return toUserInfo(user), nil
}

func (s *Service) MarkVerified(ctx context.Context, userID string) error {
	return s.repo.MarkVerified(ctx, userID)
}

// FindOrCreateByEmail resolves the submitter of an anonymous contribution.
func (s *Service) FindOrCreateByEmail(
	ctx context.Context,
	email, name string,
) (*User, error) {
	return s.repo.FindOrCreateByEmail(
		ctx,
		core.NormalizeEmail(email),
		strings.TrimSpace(name),
	)
}

func (s *Service) GetUser(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetByEmail(ctx, core.NormalizeEmail(email))
}

// Authorize loads the actor and checks action against its stored role.
func (s *Service) Authorize(
	ctx context.Context,
	actorID string,
	action permission.Action,
) (*User, error) {
	if actorID == "" {
		return nil, fmt.Errorf("authorize %s: %w", action, core.ErrUnauthorized)
	}

	actor, err := s.repo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("authorize %s: %w", action, core.ErrUnauthorized)
		}
		return nil, err
	}

	if !actor.Can(action) {
		return nil, fmt.Errorf("authorize %s: %w", action, core.ErrForbidden)
	}

	return actor, nil
}

func (s *Service) UpdateUser(
	ctx context.Context,
	id string,
	req UpdateUserRequest,
) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) AdminUpdateUser(
	ctx context.Context,
	actorID, id string,
	req UpdateUserRequest,
) (*User, error) {
	if _, err := s.Authorize(ctx, actorID, permission.EditUsers); err != nil {
		return nil, err
	}

	return s.UpdateUser(ctx, id, req)
}

// UpdateUserRole changes a role when the actor outranks both the target's
// current role and the role being granted.
func (s *Service) UpdateUserRole(
	ctx context.Context,
	actorID, id, role string,
) (*User, error) {
	newRole, ok := permission.ParseRole(role)
	if !ok {
		return nil, fmt.Errorf(
			"update role: invalid role %q: %w",
			role,
			core.ErrInvalidInput,
		)
	}

	actor, err := s.Authorize(ctx, actorID, permission.AssignRoles)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !permission.CanAssignRole(actor.Role, user.Role) ||
		!permission.CanAssignRole(actor.Role, newRole) {
		return nil, fmt.Errorf("update role: %w", core.ErrForbidden)
	}

	user.Role = newRole

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := s.repo.IncrementTokenVersion(ctx, user.ID); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) AvailableRoles(
	ctx context.Context,
	actorID string,
) (*RolesResponse, error) {
	actor, err := s.Authorize(ctx, actorID, permission.AssignRoles)
	if err != nil {
		return nil, err
	}

	return &RolesResponse{
		Current:   actor.Role,
		Available: permission.AvailableRoles(actor.Role),
	}, nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.repo.SoftDelete(ctx, id)
}

func (s *Service) ListUsers(
	ctx context.Context,
	actorID string,
	params ListUsersParams,
) ([]User, int, error) {
	if _, err := s.Authorize(ctx, actorID, permission.ViewUsers); err != nil {
		return nil, 0, err
	}

	return s.repo.List(ctx, params)
}

func (s *Service) GetUserAsAdmin(
	ctx context.Context,
	actorID, id string,
) (*User, error) {
	if _, err := s.Authorize(ctx, actorID, permission.ViewUsers); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetMe(ctx context.Context, userID string) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("get me: %w", core.ErrUnauthorized)
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) UpdateMe(
	ctx context.Context,
	userID string,
	req UpdateUserRequest,
) (*User, error) {
	if userID == "" {
		return nil, fmt.Errorf("update me: %w", core.ErrUnauthorized)
	}

	return s.UpdateUser(ctx, userID, req)
}

func (s *Service) DeleteMe(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("delete me: %w", core.ErrUnauthorized)
	}

	return s.repo.SoftDelete(ctx, userID)
}

// GetProfile returns an empty profile for users who never saved one.
func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	if _, err := s.repo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	profile, err := s.repo.GetProfile(ctx, userID)
	if errors.Is(err, core.ErrNotFound) {
		return &Profile{UserID: userID, SocialLinks: types.JSONText("{}")}, nil
	}
	if err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *Service) UpdateProfile(
	ctx context.Context,
	userID string,
	req UpdateProfileRequest,
) (*Profile, error) {
	if _, err := s.Authorize(ctx, userID, permission.EditOwnProfile); err != nil {
		return nil, err
	}

	links := req.SocialLinks
	if links == nil {
		links = map[string]string{}
	}

	encoded, err := json.Marshal(links)
	if err != nil {
		return nil, fmt.Errorf("encode social links: %w", err)
	}

	profile := &Profile{
		UserID:      userID,
		Bio:         req.Bio,
		Avatar:      req.Avatar,
		Location:    req.Location,
		Website:     req.Website,
		SocialLinks: types.JSONText(encoded),
	}

	if err := s.repo.UpsertProfile(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

func (s *Service) EmailExists(
	ctx context.Context,
	email string,
) (bool, error) {
	exists, err := s.repo.ExistsByEmail(ctx, core.NormalizeEmail(email))
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (s *Service) CanDeleteUser(
	ctx context.Context,
	requesterID, targetID string,
) error {
	if requesterID == targetID {
		return nil
	}

	if _, err := s.Authorize(ctx, requesterID, permission.DeleteUsers); err != nil {
		return err
	}

	target, err := s.repo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	if target.IsAdmin() {
		return fmt.Errorf("cannot delete admin users: %w", core.ErrForbidden)
	}

	return nil
}

func toUserInfo(u *User) *auth.UserInfo {
	return &auth.UserInfo{
		ID:                  u.ID,
		Email:               u.Email,
		Name:                u.Name,
		PasswordHash:        u.PasswordHash,
		Role:                u.Role,
		IsVerified:          u.IsVerified,
		IsPlaceholder:       u.IsPlaceholder(),
		VerificationExpires: u.VerificationExpires,
		TokenVersion:        u.TokenVersion,
		CreatedAt:           u.CreatedAt,
	}
}

var _ auth.UserProvider = (*Service)(nil)
