// AngelaMos | 2026
// handler.go

package contribution

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/angelamos/memorial/internal/core"
	"github.com/angelamos/memorial/internal/middleware"
	"github.com/angelamos/memorial/internal/permission"
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

func (h *Handler) RegisterRoutes(
	r chi.Router,
	authenticator func(http.Handler) http.Handler,
) {
	r.Route("/contributions", func(r chi.Router) {
		r.Use(authenticator)

		r.With(middleware.RequireAction(permission.ViewAllContributions)).
			Get("/pending", h.ListPending)
		r.Get("/mine", h.ListMine)
		r.Get("/{contributionID}", h.Get)
		r.With(middleware.RequireAction(permission.ApproveContributions)).
			Post("/{contributionID}/approve", h.Approve)
		r.With(middleware.RequireAction(permission.RejectContributions)).
			Post("/{contributionID}/reject", h.Reject)
	})
}

func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	params := ListPendingParams{
		Page:     parseIntQuery(r, "page", 1),
		PageSize: parseIntQuery(r, "page_size", 20),
	}
	params.Normalize()

	items, total, err := h.service.ListPending(
		r.Context(),
		middleware.GetUserID(r.Context()),
		params,
	)
	if err != nil {
		core.HandleError(w, err, "contribution")
		return
	}

	core.Paginated(
		w,
		ToContributionResponseList(items),
		params.Page,
		params.PageSize,
		total,
	)
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListMine(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		core.HandleError(w, err, "contribution")
		return
	}

	core.OK(w, ToContributionResponseList(items))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Get(
		r.Context(),
		middleware.GetUserID(r.Context()),
		chi.URLParam(r, "contributionID"),
	)
	if err != nil {
		core.HandleError(w, err, "contribution")
		return
	}

	core.OK(w, ToContributionResponse(c))
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.service.Approve)
}

func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.service.Reject)
}

type reviewFunc func(
	ctx context.Context,
	actorID, id string,
	notes *string,
) (*Contribution, error)

func (h *Handler) review(w http.ResponseWriter, r *http.Request, fn reviewFunc) {
	var req ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	c, err := fn(
		r.Context(),
		middleware.GetUserID(r.Context()),
		chi.URLParam(r, "contributionID"),
		req.Notes,
	)
	if err != nil {
		core.HandleError(w, err, "contribution")
		return
	}

	core.OK(w, ToContributionResponse(c))
}

func parseIntQuery(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}
