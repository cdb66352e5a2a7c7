// AngelaMos | 2026
// action.go

package action

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/angelamos/memorial/internal/auth"
	"github.com/angelamos/memorial/internal/contribution"
	"github.com/angelamos/memorial/internal/core"
	"github.com/angelamos/memorial/internal/martyr"
)

const (
	MsgSubmitted      = "Thank you for your contribution. It has been submitted for review."
	MsgSubmitFailed   = "An error occurred while submitting your contribution. Please try again."
	MsgProfileSaved   = "Thank you for submitting this profile. It has been saved and will be reviewed before being published."
	MsgProfileFailed  = "An error occurred while submitting the profile. Please try again."
	MsgSignupVerify   = "Account created successfully. Please check your email to verify your account."
	MsgSignupReady    = "Account created successfully. You can now log in."
	MsgSignupFailed   = "An error occurred during signup. Please try again."
	MsgCredentialsReq = "Email and password are required"
	MsgInvalidLogin   = "Invalid email or password"
	MsgLoginSuccess   = "Login successful"
	MsgLoginFailed    = "An error occurred during login. Please try again."
	MsgTokenInvalid   = "Invalid verification token"
	MsgTokenExpired   = "Verification token has expired"
	MsgEmailVerified  = "Email verified successfully. You can now log in."
	MsgVerifyFailed   = "An error occurred during verification. Please try again."
	MsgSystemAccount  = "System error: Admin user not found"

	defaultUserAgent = "server-action"
)

// Result is what every mutating action hands back to its caller. Errors
// never escape as Go errors past this point.
type Result struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
	Data    any      `json:"data,omitempty"`
}

func success(message string, data any) Result {
	return Result{Success: true, Message: message, Data: data}
}

func fail(message string) Result {
	return Result{Message: message}
}

func invalid(ve *core.ValidationError) Result {
	msgs := ve.Messages()
	if len(msgs) == 0 {
		return Result{Message: "Invalid input"}
	}
	return Result{Message: msgs[0], Errors: msgs}
}

//go:generate moq -out martyrs_mock_test.go . Martyrs
//go:generate moq -out contributions_mock_test.go . Contributions
//go:generate moq -out accounts_mock_test.go . Accounts

type Martyrs interface {
	List(ctx context.Context, limit, offset *int) ([]martyr.Martyr, error)
	Get(ctx context.Context, id string) (*martyr.Martyr, error)
	Search(ctx context.Context, query string) ([]martyr.Martyr, error)
}

type Contributions interface {
	Submit(
		ctx context.Context,
		actorID string,
		in contribution.SubmitInput,
	) (*contribution.Contribution, error)
	AddMartyr(
		ctx context.Context,
		actorID string,
		in contribution.AddMartyrInput,
	) (*contribution.Contribution, error)
}

type Accounts interface {
	Signup(ctx context.Context, req auth.SignupRequest) (*auth.SignupResult, error)
	Login(
		ctx context.Context,
		req auth.LoginRequest,
		userAgent, ipAddress string,
	) (*auth.AuthResponse, error)
	VerifyEmail(ctx context.Context, token string) error
}

type Service struct {
	martyrs       Martyrs
	contributions Contributions
	accounts      Accounts
	logger        *slog.Logger
}

func NewService(
	martyrs Martyrs,
	contributions Contributions,
	accounts Accounts,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		martyrs:       martyrs,
		contributions: contributions,
		accounts:      accounts,
		logger:        logger,
	}
}

// GetMartyrs never fails; a store error yields an empty list.
func (s *Service) GetMartyrs(ctx context.Context, limit, offset *int) []martyr.Martyr {
	items, err := s.martyrs.List(ctx, limit, offset)
	if err != nil {
		s.logger.ErrorContext(ctx, "fetch martyrs failed", "error", err)
		return []martyr.Martyr{}
	}
	if items == nil {
		return []martyr.Martyr{}
	}
	return items
}

func (s *Service) GetMartyrByID(ctx context.Context, id string) *martyr.Martyr {
	m, err := s.martyrs.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "fetch martyr failed", "id", id, "error", err)
		return nil
	}
	return m
}

func (s *Service) SearchMartyrs(ctx context.Context, query string) []martyr.Martyr {
	if strings.TrimSpace(query) == "" {
		return s.GetMartyrs(ctx, nil, nil)
	}

	items, err := s.martyrs.Search(ctx, query)
	if err != nil {
		s.logger.ErrorContext(ctx, "search martyrs failed", "query", query, "error", err)
		return []martyr.Martyr{}
	}
	if items == nil {
		return []martyr.Martyr{}
	}
	return items
}

func (s *Service) SubmitContribution(
	ctx context.Context,
	actorID string,
	form contribution.SubmitInput,
) Result {
	c, err := s.contributions.Submit(ctx, actorID, form)
	if err != nil {
		if ve, ok := core.AsValidationError(err); ok {
			return invalid(ve)
		}
		s.logger.ErrorContext(ctx, "submit contribution failed", "error", err)
		return fail(MsgSubmitFailed)
	}

	return success(MsgSubmitted, contribution.ToContributionResponse(c))
}

func (s *Service) AddMartyr(
	ctx context.Context,
	actorID string,
	form contribution.AddMartyrInput,
) Result {
	c, err := s.contributions.AddMartyr(ctx, actorID, form)
	if err != nil {
		if ve, ok := core.AsValidationError(err); ok {
			return invalid(ve)
		}
		s.logger.ErrorContext(ctx, "add martyr failed", "error", err)
		if errors.Is(err, contribution.ErrSystemAccountMissing) {
			return fail(MsgSystemAccount)
		}
		return fail(MsgProfileFailed)
	}

	return success(MsgProfileSaved, map[string]any{
		"contributionId": c.ID,
		"martyrId":       c.MartyrID,
	})
}

func (s *Service) Signup(ctx context.Context, form auth.SignupRequest) Result {
	res, err := s.accounts.Signup(ctx, form)
	if err != nil {
		if ve, ok := core.AsValidationError(err); ok {
			return invalid(ve)
		}
		s.logger.ErrorContext(ctx, "signup failed", "error", err)
		return fail(MsgSignupFailed)
	}

	if res.VerificationRequired {
		return success(MsgSignupVerify, res.User)
	}
	return success(MsgSignupReady, res.User)
}

func (s *Service) LoginUser(ctx context.Context, email, password string) Result {
	return s.login(ctx, email, password, defaultUserAgent, "")
}

func (s *Service) login(
	ctx context.Context,
	email, password, userAgent, ipAddress string,
) Result {
	if strings.TrimSpace(email) == "" || password == "" {
		return fail(MsgCredentialsReq)
	}

	resp, err := s.accounts.Login(ctx, auth.LoginRequest{
		Email:    core.NormalizeEmail(email),
		Password: password,
	}, userAgent, ipAddress)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return fail(MsgInvalidLogin)
		}
		s.logger.ErrorContext(ctx, "login failed", "error", err)
		return fail(MsgLoginFailed)
	}

	return success(MsgLoginSuccess, resp)
}

func (s *Service) VerifyEmail(ctx context.Context, token string) Result {
	err := s.accounts.VerifyEmail(ctx, token)
	switch {
	case err == nil:
		return success(MsgEmailVerified, nil)
	case errors.Is(err, auth.ErrVerificationInvalid):
		return fail(MsgTokenInvalid)
	case errors.Is(err, auth.ErrVerificationExpired):
		return fail(MsgTokenExpired)
	}

	s.logger.ErrorContext(ctx, "verify email failed", "error", err)
	return fail(MsgVerifyFailed)
}
