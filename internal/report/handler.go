package report

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/frahmantamala/timeclock/internal"
	"github.com/frahmantamala/timeclock/internal/auth"
	"github.com/frahmantamala/timeclock/internal/report/export"
	"github.com/frahmantamala/timeclock/internal/transport"
	"github.com/frahmantamala/timeclock/pkg/logger"
)

type ServiceAPI interface {
	Sessions(ctx context.Context, f Filter) (*SessionsResponse, error)
	Timesheet(ctx context.Context, employeeID int64, month string) (*Timesheet, error)
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

func (h *Handler) Sessions(w http.ResponseWriter, r *http.Request) {
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
	resp, err := h.Service.Sessions(r.Context(), Filter{
		EmployeeID: employeeID,
		Date:       q.Get("date"),
		Month:      q.Get("month"),
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, resp)
}

// ExportTimesheet streams the monthly timesheet as a PDF or XLSX download.
func (h *Handler) ExportTimesheet(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := h.PathID(w, r, "employee_id")
	if !ok {
		return
	}
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		h.WriteAppError(w, internal.NewValidationFieldError("format", "format must be pdf or xlsx", internal.ErrCodeInvalidFormat))
		return
	}

	ts, err := h.Service.Timesheet(r.Context(), employeeID, r.URL.Query().Get("month"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	body, err := export.Render(format, ts.Sheet())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ts.Filename(format)))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.Logger.Error("failed to write export", "error", err, "employee_id", employeeID)
	}
}
