package employee

import (
	"context"
	"net/http"
	"strconv"

	"github.com/frahmantamala/timeclock/internal/transport"
	"github.com/frahmantamala/timeclock/pkg/logger"
)

type ServiceAPI interface {
	List(ctx context.Context) ([]*Employee, error)
	Get(ctx context.Context, id int64) (*Employee, error)
	Create(ctx context.Context, dto EmployeeDTO) (*CreateEmployeeResponse, error)
	Update(ctx context.Context, id int64, dto EmployeeDTO) (*Employee, error)
	Delete(ctx context.Context, id int64) error
	Badge(ctx context.Context, id int64) ([]byte, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: transport.NewBaseHandler(logger.LoggerWrapper()),
		Service:     service,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.List(r.Context())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, EmployeesResponse{Employees: employees})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r, "id")
	if !ok {
		return
	}
	e, err := h.Service.Get(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto EmployeeDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	resp, err := h.Service.Create(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, resp)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r, "id")
	if !ok {
		return
	}
	var dto EmployeeDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	e, err := h.Service.Update(r.Context(), id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, e)
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
	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "Employee deleted"})
}

// Badge serves the QR code PNG of the personal punch link.
func (h *Handler) Badge(w http.ResponseWriter, r *http.Request) {
	id, ok := h.PathID(w, r, "id")
	if !ok {
		return
	}
	png, err := h.Service.Badge(r.Context(), id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "private, max-age=3600")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.Logger.Error("failed to write badge", "error", err, "employee_id", id)
	}
}
