package pointage_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/frahmantamala/timeclock/internal"
	"github.com/frahmantamala/timeclock/internal/attendance"
	"github.com/frahmantamala/timeclock/internal/auth"
	"github.com/frahmantamala/timeclock/internal/pointage"
	"github.com/frahmantamala/timeclock/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type stubService struct {
	recorded   attendance.Kind
	autoFor    int64
	filter     pointage.Filter
	autoResult error
}

func (s *stubService) Record(_ context.Context, employeeID int64, kind attendance.Kind, _ pointage.Geo) (*pointage.Pointage, error) {
	s.recorded = kind
	return &pointage.Pointage{ID: 1, EmployeeID: employeeID, Type: string(kind)}, nil
}

func (s *stubService) RecordAuto(_ context.Context, employeeID int64, _ pointage.Geo) (*pointage.Pointage, error) {
	s.autoFor = employeeID
	if s.autoResult != nil {
		return nil, s.autoResult
	}
	return &pointage.Pointage{ID: 2, EmployeeID: employeeID, Type: string(attendance.Arrival)}, nil
}

func (s *stubService) List(_ context.Context, f pointage.Filter) ([]*pointage.Pointage, error) {
	s.filter = f
	return nil, nil
}

func (s *stubService) ListByEmployee(context.Context, int64) ([]*pointage.Pointage, error) {
	return nil, nil
}

func (s *stubService) ListToday(context.Context, int64) ([]*pointage.Pointage, error) {
	return nil, nil
}

func (s *stubService) Delete(context.Context, int64) error {
	return internal.ErrPointageNotFound
}

var _ = Describe("Pointage Handler", func() {
	var (
		svc    *stubService
		router *chi.Mux
		user   *auth.User
	)

	BeforeEach(func() {
		svc = &stubService{}
		user = &auth.User{ID: 3, EmployeeID: 3, Role: auth.RoleEmployee}
		handler := &pointage.Handler{
			BaseHandler: &transport.BaseHandler{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))},
			Service:     svc,
			ABAC:        &auth.ABACPolicy{},
		}

		router = chi.NewRouter()
		router.Post("/pointages/qr", handler.RecordQR)
		router.Group(func(r chi.Router) {
			r.Use(func(next http.Handler) http.Handler {
				return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
					next.ServeHTTP(w, req.WithContext(auth.ContextWithUser(req.Context(), user)))
				})
			})
			r.Get("/pointages", handler.List)
			r.Post("/pointages", handler.Create)
			r.Delete("/pointages/{id}", handler.Delete)
		})
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("records a punch for the caller", func() {
		w := do(http.MethodPost, "/pointages", `{"employee_id": 3, "type_pointage": "Départ"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(svc.recorded).To(Equal(attendance.Departure))
	})

	It("refuses a punch on behalf of someone else", func() {
		w := do(http.MethodPost, "/pointages", `{"employee_id": 4, "type_pointage": "arrivee"}`)
		Expect(w.Code).To(Equal(http.StatusForbidden))
		Expect(svc.recorded).To(BeEmpty())
	})

	It("validates the punch kind", func() {
		w := do(http.MethodPost, "/pointages", `{"employee_id": 3, "type_pointage": "pause"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("accepts a QR punch without a token and a string id", func() {
		w := do(http.MethodPost, "/pointages/qr", `{"employee_id": "8", "latitude": 48.85, "longitude": 2.35}`)
		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(svc.autoFor).To(Equal(int64(8)))

		var body map[string]interface{}
		Expect(json.Unmarshal(w.Body.Bytes(), &body)).To(Succeed())
		Expect(body["type_pointage"]).To(Equal("arrivee"))
	})

	It("reports a complete day as a 400", func() {
		svc.autoResult = internal.ErrPunchCycleComplete
		w := do(http.MethodPost, "/pointages/qr", `{"employee_id": 8}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(w.Body.String()).To(ContainSubstring(string(internal.ErrCodePunchCycleComplete)))
	})

	It("scopes listings to the caller", func() {
		w := do(http.MethodGet, "/pointages?date=2024-05-02", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(svc.filter).To(Equal(pointage.Filter{EmployeeID: 3, Date: "2024-05-02"}))
	})

	It("maps a missing row to 404", func() {
		w := do(http.MethodDelete, "/pointages/5", "")
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
