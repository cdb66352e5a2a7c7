// AngelaMos | 2026
// handler.go

package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/memorial/internal/core"
	"github.com/angelamos/memorial/internal/middleware"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// RegisterRoutes mounts the token API used by the moderation CLI and any
// non-form client. The form flow lives under /api/actions.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)
		r.Post("/verify-email", h.VerifyEmail)
		r.Post("/refresh", h.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)
			r.Get("/me", h.GetMe)
			r.Post("/logout", h.Logout)
			r.Post("/logout-all", h.LogoutAll)
			r.Get("/sessions", h.GetSessions)
			r.Delete("/sessions/{sessionID}", h.RevokeSession)
			r.Post("/change-password", h.ChangePassword)
		})
	})
}

// bind decodes the body into dst and runs the struct tags. It answers 400
// itself and reports whether the handler may continue.
func (h *Handler) bind(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		core.BadRequest(w, "invalid request body")
		return false
	}
	if err := h.validator.Struct(dst); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return false
	}
	return true
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.bind(w, r, &req) {
		return
	}

	resp, err := h.service.Login(r.Context(), req, r.UserAgent(), middleware.ClientIP(r))
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		core.JSONError(w, core.UnauthorizedError("invalid email or password"))
	case err != nil:
		core.InternalServerError(w, err)
	default:
		core.OK(w, resp)
	}
}

// Register takes the signup form as JSON. Password and confirmation rules
// are the service's, so it skips the struct validator.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	resp, err := h.service.Signup(r.Context(), req)
	if err != nil {
		core.HandleError(w, err, "user")
		return
	}

	core.Created(w, resp)
}

func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req VerifyEmailRequest
	if !h.bind(w, r, &req) {
		return
	}

	err := h.service.VerifyEmail(r.Context(), req.Token)
	switch {
	case errors.Is(err, ErrVerificationInvalid):
		core.JSONError(w, core.NewAppError(
			err, "invalid verification token", http.StatusBadRequest, "VERIFICATION_INVALID",
		))
	case errors.Is(err, ErrVerificationExpired):
		core.JSONError(w, core.NewAppError(
			err, "verification token has expired", http.StatusGone, "VERIFICATION_EXPIRED",
		))
	case err != nil:
		core.InternalServerError(w, err)
	default:
		core.NoContent(w)
	}
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if !h.bind(w, r, &req) {
		return
	}

	resp, err := h.service.Refresh(
		r.Context(),
		req.RefreshToken,
		r.UserAgent(),
		middleware.ClientIP(r),
	)
	if err != nil {
		core.JSONError(w, refreshError(err))
		return
	}

	core.OK(w, resp)
}

func refreshError(err error) error {
	switch {
	case errors.Is(err, ErrTokenReuse):
		return core.NewAppError(
			core.ErrTokenRevoked,
			"security alert: token reuse detected, all sessions revoked",
			http.StatusUnauthorized,
			"TOKEN_REUSE_DETECTED",
		)
	case errors.Is(err, core.ErrTokenExpired):
		return core.TokenExpiredError()
	case errors.Is(err, core.ErrTokenRevoked):
		return core.TokenRevokedError()
	case errors.Is(err, core.ErrTokenInvalid):
		return core.TokenInvalidError()
	}
	return err
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if !h.bind(w, r, &req) {
		return
	}

	ctx := r.Context()
	err := h.service.Logout(ctx, req.RefreshToken, middleware.GetUserID(ctx))
	if err == nil {
		if claims := middleware.ClaimsFromContext(ctx); claims != nil {
			err = h.service.RevokeAccessToken(ctx, claims.TokenID, claims.ExpiresAt)
		}
	}

	switch {
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "cannot revoke another user's token")
	case err != nil:
		core.InternalServerError(w, err)
	default:
		core.NoContent(w)
	}
}

func (h *Handler) LogoutAll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.LogoutAll(r.Context(), middleware.GetUserID(r.Context())); err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.NoContent(w)
}

func (h *Handler) GetSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.GetActiveSessions(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		core.InternalServerError(w, err)
		return
	}

	core.OK(w, SessionsResponse{Sessions: sessions})
}

func (h *Handler) RevokeSession(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	sessionID := chi.URLParam(r, "sessionID")

	err := h.service.RevokeSession(r.Context(), userID, sessionID)
	switch {
	case errors.Is(err, core.ErrForbidden):
		core.Forbidden(w, "cannot revoke another user's session")
	case err != nil:
		core.HandleError(w, err, "session")
	default:
		core.NoContent(w)
	}
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if !h.bind(w, r, &req) {
		return
	}

	err := h.service.ChangePassword(
		r.Context(),
		middleware.GetUserID(r.Context()),
		req.CurrentPassword,
		req.NewPassword,
	)
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		core.JSONError(w, core.UnauthorizedError("current password is incorrect"))
	case err != nil:
		core.HandleError(w, err, "user")
	default:
		core.NoContent(w)
	}
}

func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetCurrentUser(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		core.HandleError(w, err, "user")
		return
	}

	core.OK(w, user)
}
