// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/angelamos/memorial/internal/config"
	"github.com/angelamos/memorial/internal/core"
	"github.com/angelamos/memorial/internal/middleware"
	"github.com/angelamos/memorial/internal/permission"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTokenReuse          = errors.New("token reuse detected")
	ErrEmailExists         = errors.New("email already exists")
	ErrVerificationInvalid = errors.New("invalid verification token")
	ErrVerificationExpired = errors.New("verification token expired")
)

const (
	MsgNameTooShort     = "Name must be at least 2 characters"
	MsgInvalidEmail     = "Please enter a valid email"
	MsgPasswordMismatch = "Passwords do not match"
	MsgEmailTaken       = "An account with this email already exists"
)

type UserInfo struct {
	ID                  string
	Email               string
	Name                string
	PasswordHash        string
	Role                permission.Role
	IsVerified          bool
	IsPlaceholder       bool
	VerificationExpires *time.Time
	TokenVersion        int
	CreatedAt           time.Time
}

type NewUser struct {
	Email                 string
	Name                  string
	PasswordHash          string
	IsVerified            bool
	VerificationTokenHash *string
	VerificationExpires   *time.Time
}

//go:generate moq -out user_provider_mock_test.go . UserProvider

type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*UserInfo, error)
	GetByID(ctx context.Context, id string) (*UserInfo, error)
	Create(ctx context.Context, in NewUser) (*UserInfo, error)
	ClaimPlaceholder(ctx context.Context, id string, in NewUser) (*UserInfo, error)
	IncrementTokenVersion(ctx context.Context, userID string) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	RecordLogin(ctx context.Context, userID string) error
	GetByVerificationToken(ctx context.Context, tokenHash string) (*UserInfo, error)
	MarkVerified(ctx context.Context, userID string) error
}

type Service struct {
	repo         Repository
	jwt          *JWTManager
	userProvider UserProvider
	redis        *redis.Client
	cfg          config.AuthConfig
	logger       *slog.Logger
	now          func() time.Time
}

func NewService(
	repo Repository,
	jwt *JWTManager,
	userProvider UserProvider,
	redisClient *redis.Client,
	cfg config.AuthConfig,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		repo:         repo,
		jwt:          jwt,
		userProvider: userProvider,
		redis:        redisClient,
		cfg:          cfg,
		logger:       logger,
		now:          time.Now,
	}
}

// Login answers ErrInvalidCredentials for every failure a caller could
// use to probe which accounts exist.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
	userAgent, ipAddress string,
) (*AuthResponse, error) {
	user, err := s.userProvider.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			//nolint:errcheck // timing attack prevention - always verify to prevent enumeration
			_, _ = core.VerifyPasswordTimingSafe(req.Password, nil)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	valid, err := core.VerifyPasswordTimingSafe(req.Password, &user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}

	if !valid || user.IsPlaceholder {
		return nil, ErrInvalidCredentials
	}

	// A pending verification token locks the account even when verification
	// is optional; claimed placeholders always carry one.
	if !user.IsVerified && (s.cfg.RequireEmailVerification || user.VerificationExpires != nil) {
		return nil, ErrInvalidCredentials
	}

	if core.NeedsRehash(user.PasswordHash) {
		if newHash, hashErr := core.HashPassword(req.Password); hashErr == nil {
			//nolint:errcheck // best-effort rehash upgrade
			_ = s.userProvider.UpdatePassword(ctx, user.ID, newHash)
		}
	}

	if err := s.userProvider.RecordLogin(ctx, user.ID); err != nil {
		s.logger.WarnContext(ctx, "record login failed",
			"user_id", user.ID,
			"error", err,
		)
	}

	return s.createAuthResponse(ctx, user, userAgent, ipAddress, "", nil)
}

// ValidateSignup collects every rule the form breaks, in form order.
func ValidateSignup(req SignupRequest) *core.ValidationError {
	ve := &core.ValidationError{}

	if len(strings.TrimSpace(req.Name)) < 2 {
		ve.Add("name", MsgNameTooShort)
	}

	if !core.ValidateEmail(strings.TrimSpace(req.Email)) {
		ve.Add("email", MsgInvalidEmail)
	}

	for _, msg := range core.ValidatePassword(req.Password).Errors {
		ve.Add("password", msg)
	}

	if req.Password != req.ConfirmPassword {
		ve.Add("confirmPassword", MsgPasswordMismatch)
	}

	return ve
}

// Signup creates an account or claims the placeholder left by an anonymous
// contribution under the same email.
func (s *Service) Signup(
	ctx context.Context,
	req SignupRequest,
) (*SignupResult, error) {
	if err := ValidateSignup(req).Err(); err != nil {
		return nil, err
	}

	email := core.NormalizeEmail(req.Email)

	existing, err := s.userProvider.GetByEmail(ctx, email)
	switch {
	case err == nil && !existing.IsPlaceholder:
		return nil, core.NewValidationError("email", MsgEmailTaken)
	case err != nil && !errors.Is(err, core.ErrNotFound):
		return nil, fmt.Errorf("check email: %w", err)
	}

	passwordHash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// Claiming an anonymous contributor's history always goes through the
	// mailbox, whatever the global setting.
	verify := s.cfg.RequireEmailVerification || existing != nil

	in := NewUser{
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: passwordHash,
		IsVerified:   !verify,
	}

	var rawToken string
	if verify {
		vt, genErr := core.GenerateVerificationToken(s.now(), s.cfg.VerificationTTL)
		if genErr != nil {
			return nil, genErr
		}
		rawToken = vt.Token
		in.VerificationTokenHash = &vt.Hash
		in.VerificationExpires = &vt.ExpiresAt
	}

	var user *UserInfo
	if existing != nil {
		user, err = s.userProvider.ClaimPlaceholder(ctx, existing.ID, in)
	} else {
		user, err = s.userProvider.Create(ctx, in)
	}
	if err != nil {
		if errors.Is(err, core.ErrDuplicateKey) {
			return nil, core.NewValidationError("email", MsgEmailTaken)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if rawToken != "" {
		s.logger.DebugContext(ctx, "verification token issued",
			"user_id", user.ID,
			"email", user.Email,
			"token", rawToken,
		)
	}

	s.logger.InfoContext(ctx, "user signed up",
		"user_id", user.ID,
		"claimed_placeholder", existing != nil,
	)

	return &SignupResult{
		User:                 toUserResponse(user),
		VerificationRequired: verify,
		VerificationToken:    rawToken,
	}, nil
}

func (s *Service) VerifyEmail(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrVerificationInvalid
	}

	user, err := s.userProvider.GetByVerificationToken(ctx, core.HashToken(token))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return ErrVerificationInvalid
		}
		return fmt.Errorf("find verification token: %w", err)
	}

	if user.VerificationExpires == nil || !s.now().Before(*user.VerificationExpires) {
		return ErrVerificationExpired
	}

	if err := s.userProvider.MarkVerified(ctx, user.ID); err != nil {
		return fmt.Errorf("mark verified: %w", err)
	}

	return nil
}

func (s *Service) Refresh(
	ctx context.Context,
	refreshToken, userAgent, ipAddress string,
) (*AuthResponse, error) {
	tokenHash := core.HashToken(refreshToken)

	storedToken, err := s.repo.FindByHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil, fmt.Errorf("refresh: %w", core.ErrTokenInvalid)
		}
		return nil, fmt.Errorf("find token: %w", err)
	}

	if err := storedToken.Exchangeable(s.now()); err != nil {
		if errors.Is(err, ErrTokenReuse) {
			//nolint:errcheck // security revocation continues regardless
			_ = s.repo.RevokeByFamilyID(ctx, storedToken.FamilyID)
			return nil, err
		}
		return nil, fmt.Errorf("refresh: %w", err)
	}

	user, err := s.userProvider.GetByID(ctx, storedToken.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	return s.createAuthResponse(
		ctx,
		user,
		userAgent,
		ipAddress,
		storedToken.FamilyID,
		&storedToken.ID,
	)
}

func (s *Service) Logout(
	ctx context.Context,
	refreshToken, userID string,
) error {
	storedToken, err := s.repo.FindByHash(ctx, core.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("find token: %w", err)
	}

	if storedToken.UserID != userID {
		return fmt.Errorf("logout: %w", core.ErrForbidden)
	}

	if err := s.repo.RevokeByID(ctx, storedToken.ID); err != nil &&
		!errors.Is(err, core.ErrNotFound) {
		return fmt.Errorf("revoke token: %w", err)
	}

	return nil
}

func (s *Service) LogoutAll(ctx context.Context, userID string) error {
	if err := s.repo.RevokeAllForUser(ctx, userID); err != nil {
		return fmt.Errorf("revoke all tokens: %w", err)
	}

	if err := s.userProvider.IncrementTokenVersion(ctx, userID); err != nil {
		return fmt.Errorf("increment token version: %w", err)
	}

	return nil
}

func (s *Service) RevokeAccessToken(
	ctx context.Context,
	jti string,
	expiresAt time.Time,
) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 || s.redis == nil {
		return nil
	}

	if err := s.redis.Set(ctx, "blacklist:"+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}

	return nil
}

func (s *Service) IsAccessTokenBlacklisted(
	ctx context.Context,
	jti string,
) (bool, error) {
	if s.redis == nil {
		return false, nil
	}

	exists, err := s.redis.Exists(ctx, "blacklist:"+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check blacklist: %w", err)
	}

	return exists > 0, nil
}

// VerifyAccessToken layers revocation on top of the signature check: a
// token signed out through Logout, or minted before the user's token
// version was bumped (logout-all, password change, role change), is
// refused even though it has not expired.
func (s *Service) VerifyAccessToken(
	ctx context.Context,
	raw string,
) (*middleware.AccessTokenClaims, error) {
	claims, err := s.jwt.VerifyAccessToken(ctx, raw)
	if err != nil {
		return nil, err
	}

	revoked, err := s.IsAccessTokenBlacklisted(ctx, claims.TokenID)
	if err != nil {
		s.logger.Warn("token blacklist unavailable",
			"error", err,
			"user_id", claims.UserID,
		)
	}
	if revoked {
		return nil, fmt.Errorf("verify token: %w", core.ErrTokenRevoked)
	}

	if err := s.ValidateTokenVersion(ctx, claims.UserID, claims.TokenVersion); err != nil {
		return nil, err
	}

	return claims, nil
}

func (s *Service) GetActiveSessions(
	ctx context.Context,
	userID string,
) ([]SessionInfo, error) {
	tokens, err := s.repo.GetActiveSessionsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get sessions: %w", err)
	}

	sessions := make([]SessionInfo, 0, len(tokens))
	for i := range tokens {
		sessions = append(sessions, tokens[i].session())
	}

	return sessions, nil
}

func (s *Service) RevokeSession(
	ctx context.Context,
	userID, sessionID string,
) error {
	token, err := s.repo.FindByID(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("find session: %w", err)
	}

	if token.UserID != userID {
		return fmt.Errorf("revoke session: %w", core.ErrForbidden)
	}

	if err := s.repo.RevokeByID(ctx, sessionID); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}

	return nil
}

func (s *Service) ChangePassword(
	ctx context.Context,
	userID, currentPassword, newPassword string,
) error {
	user, err := s.userProvider.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	valid, err := core.VerifyPassword(currentPassword, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("verify password: %w", err)
	}

	if !valid {
		return ErrInvalidCredentials
	}

	if check := core.ValidatePassword(newPassword); !check.Valid {
		ve := &core.ValidationError{}
		for _, msg := range check.Errors {
			ve.Add("new_password", msg)
		}
		return ve
	}

	newHash, err := core.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.userProvider.UpdatePassword(ctx, userID, newHash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}

	if err := s.LogoutAll(ctx, userID); err != nil {
		return fmt.Errorf("logout all: %w", err)
	}

	return nil
}

func (s *Service) ValidateTokenVersion(
	ctx context.Context,
	userID string,
	tokenVersion int,
) error {
	user, err := s.userProvider.GetByID(ctx, userID)
	if errors.Is(err, core.ErrNotFound) {
		return fmt.Errorf("validate token version: %w", core.ErrTokenRevoked)
	}
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	if tokenVersion < user.TokenVersion {
		return fmt.Errorf("validate token version: %w", core.ErrTokenRevoked)
	}

	return nil
}

func (s *Service) GetCurrentUser(
	ctx context.Context,
	userID string,
) (*UserResponse, error) {
	user, err := s.userProvider.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *Service) createAuthResponse(
	ctx context.Context,
	user *UserInfo,
	userAgent, ipAddress, familyID string,
	oldTokenID *string,
) (*AuthResponse, error) {
	accessToken, err := s.jwt.CreateAccessToken(AccessTokenClaims{
		UserID:       user.ID,
		Role:         user.Role,
		Verified:     user.IsVerified,
		TokenVersion: user.TokenVersion,
	})
	if err != nil {
		return nil, fmt.Errorf("create access token: %w", err)
	}

	refreshData, err := s.jwt.CreateRefreshToken(user.ID, familyID)
	if err != nil {
		return nil, fmt.Errorf("create refresh token: %w", err)
	}

	newTokenID := uuid.New().String()

	refreshTokenEntity := &RefreshToken{
		ID:        newTokenID,
		UserID:    user.ID,
		TokenHash: refreshData.Hash,
		FamilyID:  refreshData.FamilyID,
		ExpiresAt: refreshData.ExpiresAt,
		UserAgent: userAgent,
		IPAddress: ipAddress,
	}

	if err := s.repo.Create(ctx, refreshTokenEntity); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	if oldTokenID != nil {
		//nolint:errcheck // best-effort token chain tracking
		_ = s.repo.MarkAsUsed(ctx, *oldTokenID, newTokenID)
	}

	ttl := s.jwt.AccessTokenTTL()
	now := s.now()

	return &AuthResponse{
		User: toUserResponse(user),
		Tokens: TokenResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshData.Token,
			TokenType:    "Bearer",
			ExpiresIn:    int(ttl / time.Second),
			ExpiresAt:    now.Add(ttl),
		},
	}, nil
}
