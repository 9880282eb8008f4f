package planning

import (
	"context"
	"net/http"

	"github.com/frahmantamala/timeclock/internal"
	"github.com/frahmantamala/timeclock/internal/auth"
	"github.com/frahmantamala/timeclock/internal/transport"
	"github.com/frahmantamala/timeclock/pkg/logger"
)

type ServiceAPI interface {
	List(ctx context.Context, f Filter) ([]*Planning, error)
	Create(ctx context.Context, dto PlanningDTO) (*Planning, error)
	Update(ctx context.Context, id int64, dto PlanningDTO) (*Planning, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	ABAC    *auth.ABACPolicy
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.LoggerWrapper()),
		Service:     service,
		ABAC:        &auth.ABACPolicy{},
	}
}

// List returns schedule entries. Employees only ever see their own.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	requested, ok := h.QueryID(w, r, "user_id")
	if !ok {
		return
	}
	u, _ := auth.UserFromContext(r.Context())
	userID, err := h.ABAC.ScopeEmployee(u, requested)
	if err != nil {
		h.WriteAppError(w, internal.ErrAccessDenied)
		return
	}

	q := r.URL.Query()
	plannings, err := h.Service.List(r.Context(), Filter{
		UserID: userID,
		Date:   q.Get("date"),
		Month:  q.Get("month"),
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, PlanningsResponse{Plannings: plannings})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto PlanningDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	p, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r, "id")
	if !ok {
		return
	}
	var dto PlanningDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	p, err := h.Service.Update(r.Context(), id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Service.Delete(r.Context(), id); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Planning deleted"})
}
