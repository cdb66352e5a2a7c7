// AngelaMos | 2026
// handler.go

package martyr

import (
	"encoding/json"
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
	r.Route("/martyrs", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/search", h.Search)
		r.Get("/{martyrID}", h.Get)

		r.Group(func(r chi.Router) {
			r.Use(authenticator)

			r.With(middleware.RequireAction(permission.EditMartyrs)).
				Post("/", h.Create)
			r.With(middleware.RequireAction(permission.EditMartyrs)).
				Put("/{martyrID}", h.Update)
			r.With(middleware.RequireAction(permission.VerifyMartyrs)).
				Put("/{martyrID}/verify", h.Verify)
			r.With(middleware.RequireAction(permission.DeleteMartyrs)).
				Delete("/{martyrID}", h.Delete)
		})
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	martyrs, err := h.service.List(
		r.Context(),
		optionalIntQuery(r, "limit"),
		optionalIntQuery(r, "offset"),
	)
	if err != nil {
		core.HandleError(w, err, "martyr")
		return
	}

	core.OK(w, ToMartyrResponseList(martyrs))
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	martyrs, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		core.HandleError(w, err, "martyr")
		return
	}

	core.OK(w, ToMartyrResponseList(martyrs))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	m, err := h.service.Get(r.Context(), chi.URLParam(r, "martyrID"))
	if err != nil {
		core.HandleError(w, err, "martyr")
		return
	}
	if m == nil {
		core.NotFound(w, "martyr")
		return
	}

	core.OK(w, ToMartyrResponse(m))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMartyrRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	m, err := h.service.Create(
		r.Context(),
		middleware.GetUserID(r.Context()),
		req,
	)
	if err != nil {
		core.HandleError(w, err, "martyr")
		return
	}

	core.Created(w, ToMartyrResponse(m))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateMartyrRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return
	}

	m, err := h.service.Update(
		r.Context(),
		middleware.GetUserID(r.Context()),
		chi.URLParam(r, "martyrID"),
		req,
	)
	if err != nil {
		core.HandleError(w, err, "martyr")
		return
	}

	core.OK(w, ToMartyrResponse(m))
}

func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyMartyrRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		core.BadRequest(w, "invalid request body")
		return
	}

	m, err := h.service.SetVerified(
		r.Context(),
		middleware.GetUserID(r.Context()),
		chi.URLParam(r, "martyrID"),
		req.IsVerified,
	)
	if err != nil {
		core.HandleError(w, err, "martyr")
		return
	}

	core.OK(w, ToMartyrResponse(m))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(
		r.Context(),
		middleware.GetUserID(r.Context()),
		chi.URLParam(r, "martyrID"),
	)
	if err != nil {
		core.HandleError(w, err, "martyr")
		return
	}

	core.NoContent(w)
}

func optionalIntQuery(r *http.Request, key string) *int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil
	}

	parsed, err := strconv.Atoi(val)
	if err != nil || parsed < 0 {
		return nil
	}

	return &parsed
}
