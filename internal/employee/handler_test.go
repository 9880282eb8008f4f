package employee_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	employeeDatamodel "github.com/frahmantamala/timeclock/internal/core/datamodel/employee"
	"github.com/frahmantamala/timeclock/internal/employee"
	employeePostgres "github.com/frahmantamala/timeclock/internal/employee/postgres"
	"github.com/frahmantamala/timeclock/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Employee Handler Integration", func() {
	var (
		db     *gorm.DB
		router *chi.Mux
	)

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(io.Discard, nil))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(db.AutoMigrate(&employeeDatamodel.Employee{})).To(Succeed())

		repo := employeePostgres.NewEmployeeRepository(db)
		service := employee.NewService(repo, bcrypt.MinCost, employee.NewBadgeRenderer("http://localhost:8080"), slogger)
		handler := &employee.Handler{BaseHandler: &transport.BaseHandler{Logger: slogger}, Service: service}

		router = chi.NewRouter()
		router.Get("/employees", handler.List)
		router.Post("/employees", handler.Create)
		router.Get("/employees/{id}", handler.Get)
		router.Put("/employees/{id}", handler.Update)
		router.Delete("/employees/{id}", handler.Delete)
		router.Get("/employees/{id}/badge.png", handler.Badge)
	})

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("creates, lists and deletes an employee", func() {
		w := do(http.MethodPost, "/employees", `{"nom":"Martin","prenom":"Alice","email":"alice@example.com","poste":"Caissière"}`)
		Expect(w.Code).To(Equal(http.StatusCreated))

		var created map[string]interface{}
		Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
		Expect(created["initial_password"]).NotTo(BeEmpty())
		Expect(created).NotTo(HaveKey("password_hash"))

		w = do(http.MethodGet, "/employees", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		var list employee.EmployeesResponse
		Expect(json.NewDecoder(w.Body).Decode(&list)).To(Succeed())
		Expect(list.Employees).To(HaveLen(1))
		Expect(list.Employees[0].Position).To(Equal("Caissière"))

		w = do(http.MethodDelete, "/employees/1", "")
		Expect(w.Code).To(Equal(http.StatusOK))

		w = do(http.MethodDelete, "/employees/1", "")
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("answers 400 on missing fields", func() {
		w := do(http.MethodPost, "/employees", `{"email":"alice@example.com"}`)
		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var body map[string]map[string]interface{}
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		Expect(body["error"]["type"]).To(Equal("VALIDATION_ERROR"))
	})

	It("answers 409 on a duplicate email", func() {
		Expect(do(http.MethodPost, "/employees", `{"nom":"A","prenom":"B","email":"dup@example.com"}`).Code).To(Equal(http.StatusCreated))
		Expect(do(http.MethodPost, "/employees", `{"nom":"C","prenom":"D","email":"dup@example.com"}`).Code).To(Equal(http.StatusConflict))
	})

	It("answers 404 on unknown ids and 400 on malformed ones", func() {
		Expect(do(http.MethodGet, "/employees/77", "").Code).To(Equal(http.StatusNotFound))
		Expect(do(http.MethodGet, "/employees/abc", "").Code).To(Equal(http.StatusBadRequest))
	})

	It("serves the QR badge", func() {
		Expect(do(http.MethodPost, "/employees", `{"nom":"A","prenom":"B","email":"b@example.com"}`).Code).To(Equal(http.StatusCreated))
		w := do(http.MethodGet, "/employees/1/badge.png", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Header().Get("Content-Type")).To(Equal("image/png"))
	})
})
