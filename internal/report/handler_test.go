package report_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/frahmantamala/timeclock/internal"
	"github.com/frahmantamala/timeclock/internal/attendance"
	"github.com/frahmantamala/timeclock/internal/auth"
	"github.com/frahmantamala/timeclock/internal/report"
	"github.com/frahmantamala/timeclock/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type stubService struct {
	filter report.Filter
	month  string
}

func (s *stubService) Sessions(_ context.Context, f report.Filter) (*report.SessionsResponse, error) {
	s.filter = f
	return &report.SessionsResponse{Sessions: []attendance.Session{}}, nil
}

func (s *stubService) Timesheet(_ context.Context, employeeID int64, month string) (*report.Timesheet, error) {
	s.month = month
	if employeeID != 1 {
		return nil, internal.ErrEmployeeNotFound
	}
	return &report.Timesheet{EmployeeID: 1, EmployeeName: "Alice Martin", Month: "2024-05", Total: 8 * time.Hour}, nil
}

var _ = Describe("Report Handler", func() {
	var (
		svc    *stubService
		router *chi.Mux
		user   *auth.User
	)

	BeforeEach(func() {
		svc = &stubService{}
		user = &auth.User{ID: 1, EmployeeID: 1, Role: auth.RoleEmployee}
		handler := &report.Handler{
			BaseHandler: &transport.BaseHandler{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))},
			Service:     svc,
			ABAC:        &auth.ABACPolicy{},
		}
		router = chi.NewRouter()
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(auth.ContextWithUser(r.Context(), user)))
			})
		})
		router.Get("/sessions", handler.Sessions)
		router.Get("/exports/timesheet/{employee_id}", handler.ExportTimesheet)
	})

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	It("scopes sessions to the caller", func() {
		w := get("/sessions?month=2024-05")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(svc.filter).To(Equal(report.Filter{EmployeeID: 1, Month: "2024-05"}))
	})

	It("forbids another employee's sessions", func() {
		Expect(get("/sessions?employee_id=2").Code).To(Equal(http.StatusForbidden))
	})

	It("streams a PDF by default", func() {
		w := get("/exports/timesheet/1?month=2024-05")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(Equal("application/pdf"))
		Expect(w.Header().Get("Content-Disposition")).To(ContainSubstring("timesheet_1_2024-05.pdf"))
		Expect(bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-"))).To(BeTrue())
		Expect(svc.month).To(Equal("2024-05"))
	})

	It("streams a workbook on request", func() {
		w := get("/exports/timesheet/1?month=2024-05&format=xlsx")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Disposition")).To(ContainSubstring(".xlsx"))
		Expect(bytes.HasPrefix(w.Body.Bytes(), []byte("PK"))).To(BeTrue())
	})

	It("rejects unknown formats", func() {
		Expect(get("/exports/timesheet/1?format=csv").Code).To(Equal(http.StatusBadRequest))
	})

	It("maps an unknown employee to 404", func() {
		Expect(get("/exports/timesheet/2?month=2024-05").Code).To(Equal(http.StatusNotFound))
	})
})
