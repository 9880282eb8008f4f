package pointage

import (
	"context"
	"net/http"

	"github.com/frahmantamala/timeclock/internal"
	"github.com/frahmantamala/timeclock/internal/attendance"
	"github.com/frahmantamala/timeclock/internal/auth"
	"github.com/frahmantamala/timeclock/internal/transport"
	"github.com/frahmantamala/timeclock/pkg/logger"
)

type ServiceAPI interface {
	Record(ctx context.Context, employeeID int64, kind attendance.Kind, geo Geo) (*Pointage, error)
	RecordAuto(ctx context.Context, employeeID int64, geo Geo) (*Pointage, error)
	List(ctx context.Context, f Filter) ([]*Pointage, error)
	ListByEmployee(ctx context.Context, employeeID int64) ([]*Pointage, error)
	ListToday(ctx context.Context, employeeID int64) ([]*Pointage, error)
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

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	requested, ok := h.QueryID(w, r, "employee_id")
	if !ok {
		return
	}
	u, _ := auth.UserFromContext(r.Context())
	employeeID, err := h.ABAC.ScopeEmployee(u, requested)
	if err != nil {
		h.WriteAppError(w, internal.ErrAccessDenied)
		return
	}

	q := r.URL.Query()
	pointages, err := h.Service.List(r.Context(), Filter{
		EmployeeID: employeeID,
		Date:       q.Get("date"),
		Month:      q.Get("month"),
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, PointagesResponse{Pointages: pointages})
}

func (h *Handler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r, "id")
	if !ok {
		return
	}
	pointages, err := h.Service.ListByEmployee(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, PointagesResponse{Pointages: pointages})
}

func (h *Handler) ListToday(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r, "id")
	if !ok {
		return
	}
	pointages, err := h.Service.ListToday(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, PointagesResponse{Pointages: pointages})
}

// Create records an explicit arrival or departure. Employees may only punch
// for themselves.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto PunchDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteAppError(w, err)
		return
	}

	employeeID := int64(dto.EmployeeID)
	u, _ := auth.UserFromContext(r.Context())
	if err := h.ABAC.CanAccessEmployee(u, employeeID); err != nil {
		h.Logger.WarnContext(r.Context(), "punch for another employee refused", "employee_id", employeeID)
		h.WriteAppError(w, internal.ErrAccessDenied)
		return
	}

	kind, _ := attendance.ParseKind(dto.Type)
	p, err := h.Service.Record(r.Context(), employeeID, kind, dto.Geo())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, p)
}

// RecordQR is the unauthenticated badge-scan endpoint.
func (h *Handler) RecordQR(w http.ResponseWriter, r *http.Request) {
	var dto QRPunchDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteAppError(w, err)
		return
	}

	p, err := h.Service.RecordAuto(r.Context(), int64(dto.EmployeeID), dto.Geo())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, p)
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
	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Pointage deleted"})
}
