package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/frahmantamala/timeclock/internal/transport"
	"github.com/go-chi/chi"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Auth HTTP", func() {
	var (
		router   *chi.Mux
		tokenGen *JWTTokenGenerator
	)

	ginkgo.BeforeEach(func() {
		tokenGen = NewJWTTokenGenerator(testSecret, time.Hour)
		svc := NewService(newMockRepository(), tokenGen, silentLogger())
		h := &Handler{BaseHandler: transport.NewBaseHandler(silentLogger()), Service: svc}
		rbac := NewRBACAuthorization(NewPermissionChecker(), silentLogger())
		abac := &ABACPolicy{}

		router = chi.NewRouter()
		router.Post("/login", h.Login)
		router.Group(func(r chi.Router) {
			r.Use(h.AuthMiddleware)
			r.Get("/api/user", h.CurrentUser)
			r.With(rbac.RequireAdmin()).Get("/api/admin", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			r.With(RequireSelfOrAdmin(abac, h.BaseHandler, "id")).Get("/api/employees/{id}", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
		})
	})

	bearer := func(u User) string {
		token, _, err := tokenGen.GenerateAccessToken(u)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		return "Bearer " + token
	}

	do := func(method, path, auth, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if auth != "" {
			req.Header.Set("Authorization", auth)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	ginkgo.It("logs in and returns token plus user", func() {
		w := do(http.MethodPost, "/login", "", `{"email":"alice@example.com","password":"correct_password"}`)
		gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

		var resp LoginResponse
		gomega.Expect(json.NewDecoder(w.Body).Decode(&resp)).To(gomega.Succeed())
		gomega.Expect(resp.Token).ToNot(gomega.BeEmpty())
		gomega.Expect(resp.User.Email).To(gomega.Equal("alice@example.com"))
	})

	ginkgo.It("answers 401 on bad credentials", func() {
		w := do(http.MethodPost, "/login", "", `{"email":"alice@example.com","password":"bad"}`)
		gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
	})

	ginkgo.It("answers 401 when the token is missing", func() {
		w := do(http.MethodGet, "/api/user", "", "")
		gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
	})

	ginkgo.It("answers 403 when the token is invalid", func() {
		w := do(http.MethodGet, "/api/user", "Bearer abc.def.ghi", "")
		gomega.Expect(w.Code).To(gomega.Equal(http.StatusForbidden))
	})

	ginkgo.It("echoes the current user", func() {
		w := do(http.MethodGet, "/api/user", bearer(User{ID: 5, Email: "alice@example.com", Role: RoleEmployee, Name: "Alice Martin"}), "")
		gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

		var u User
		gomega.Expect(json.NewDecoder(w.Body).Decode(&u)).To(gomega.Succeed())
		gomega.Expect(u.ID).To(gomega.Equal(int64(5)))
		gomega.Expect(u.Name).To(gomega.Equal("Alice Martin"))
	})

	ginkgo.It("rejects non-admins on admin routes with 403", func() {
		w := do(http.MethodGet, "/api/admin", bearer(User{ID: 5, Role: RoleEmployee}), "")
		gomega.Expect(w.Code).To(gomega.Equal(http.StatusForbidden))

		w = do(http.MethodGet, "/api/admin", bearer(User{ID: 1, Role: RoleAdmin}), "")
		gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
	})

	ginkgo.It("lets employees read only their own record", func() {
		w := do(http.MethodGet, "/api/employees/5", bearer(User{ID: 5, Role: RoleEmployee}), "")
		gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))

		w = do(http.MethodGet, "/api/employees/6", bearer(User{ID: 5, Role: RoleEmployee}), "")
		gomega.Expect(w.Code).To(gomega.Equal(http.StatusForbidden))
	})
})
