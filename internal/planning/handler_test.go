package planning_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/frahmantamala/timeclock/internal"
	"github.com/frahmantamala/timeclock/internal/auth"
	"github.com/frahmantamala/timeclock/internal/planning"
	"github.com/frahmantamala/timeclock/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type stubService struct {
	filter  planning.Filter
	created planning.PlanningDTO
}

func (s *stubService) List(_ context.Context, f planning.Filter) ([]*planning.Planning, error) {
	s.filter = f
	return []*planning.Planning{{ID: 1, UserID: f.UserID}}, nil
}

func (s *stubService) Create(_ context.Context, dto planning.PlanningDTO) (*planning.Planning, error) {
	s.created = dto
	return &planning.Planning{ID: 7, UserID: dto.UserID}, nil
}

func (s *stubService) Update(_ context.Context, id int64, dto planning.PlanningDTO) (*planning.Planning, error) {
	return &planning.Planning{ID: id, UserID: dto.UserID}, nil
}

func (s *stubService) Delete(_ context.Context, id int64) error {
	if id != 7 {
		return internal.ErrPlanningNotFound
	}
	return nil
}

var _ = Describe("Planning Handler", func() {
	var (
		svc    *stubService
		router *chi.Mux
		user   *auth.User
	)

	BeforeEach(func() {
		svc = &stubService{}
		user = &auth.User{ID: 3, EmployeeID: 3, Role: auth.RoleEmployee}
		handler := &planning.Handler{
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
		router.Get("/plannings", handler.List)
		router.Post("/plannings", handler.Create)
		router.Delete("/plannings/{id}", handler.Delete)
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("pins employees to their own schedule", func() {
		w := do(http.MethodGet, "/plannings?month=2024-05", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(svc.filter).To(Equal(planning.Filter{UserID: 3, Month: "2024-05"}))
	})

	It("forbids employees from reading someone else", func() {
		w := do(http.MethodGet, "/plannings?user_id=4", "")
		Expect(w.Code).To(Equal(http.StatusForbidden))
	})

	It("lets admins list everyone", func() {
		user = &auth.User{ID: 1, EmployeeID: 1, Role: auth.RoleAdmin}
		w := do(http.MethodGet, "/plannings?date=2024-05-02", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(svc.filter).To(Equal(planning.Filter{Date: "2024-05-02"}))
	})

	It("rejects a malformed user_id", func() {
		w := do(http.MethodGet, "/plannings?user_id=abc", "")
		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("creates from a JSON body", func() {
		w := do(http.MethodPost, "/plannings", `{"user_id":3,"date":"2024-05-02","start_time":"08:00","end_time":"12:00"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(svc.created.UserID).To(Equal(int64(3)))
	})

	It("maps a missing entry to 404", func() {
		w := do(http.MethodDelete, "/plannings/9", "")
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})
})
