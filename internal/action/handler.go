// AngelaMos | 2026
// handler.go

package action

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/angelamos/memorial/internal/auth"
	"github.com/angelamos/memorial/internal/contribution"
	"github.com/angelamos/memorial/internal/core"
	"github.com/angelamos/memorial/internal/middleware"
)

const maxActionBody = 1 << 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the form actions. Every action answers 200 with a
// Result; only a malformed body is rejected outright.
func (h *Handler) RegisterRoutes(
	r chi.Router,
	optionalAuth func(http.Handler) http.Handler,
) {
	r.Route("/actions", func(r chi.Router) {
		r.Use(optionalAuth)

		r.Post("/contribute", h.Contribute)
		r.Post("/add-martyr", h.AddMartyr)
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
		r.Post("/verify-email", h.VerifyEmail)
	})
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxActionBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		core.BadRequest(w, "invalid request body")
		return false
	}
	return true
}

func (h *Handler) Contribute(w http.ResponseWriter, r *http.Request) {
	var form contribution.SubmitInput
	if !decode(w, r, &form) {
		return
	}

	res := h.service.SubmitContribution(
		r.Context(),
		middleware.GetUserID(r.Context()),
		form,
	)
	core.JSON(w, http.StatusOK, res)
}

func (h *Handler) AddMartyr(w http.ResponseWriter, r *http.Request) {
	var form contribution.AddMartyrInput
	if !decode(w, r, &form) {
		return
	}

	res := h.service.AddMartyr(
		r.Context(),
		middleware.GetUserID(r.Context()),
		form,
	)
	core.JSON(w, http.StatusOK, res)
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var form auth.SignupRequest
	if !decode(w, r, &form) {
		return
	}

	core.JSON(w, http.StatusOK, h.service.Signup(r.Context(), form))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var form auth.LoginRequest
	if !decode(w, r, &form) {
		return
	}

	res := h.service.login(
		r.Context(),
		form.Email,
		form.Password,
		r.UserAgent(),
		middleware.ClientIP(r),
	)
	core.JSON(w, http.StatusOK, res)
}

func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var form auth.VerifyEmailRequest
	if !decode(w, r, &form) {
		return
	}

	core.JSON(w, http.StatusOK, h.service.VerifyEmail(r.Context(), form.Token))
}
