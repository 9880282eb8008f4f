package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/timeclock/internal"
	"github.com/frahmantamala/timeclock/internal/auth"
	"github.com/frahmantamala/timeclock/internal/employee"
	"github.com/frahmantamala/timeclock/internal/planning"
	"github.com/frahmantamala/timeclock/internal/pointage"
	"github.com/frahmantamala/timeclock/internal/report"
	"github.com/frahmantamala/timeclock/internal/transport"
	"github.com/frahmantamala/timeclock/internal/transport/middleware"
	"github.com/frahmantamala/timeclock/internal/transport/openapi"
	"github.com/frahmantamala/timeclock/internal/transport/swagger"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

type Handlers struct {
	Auth     *auth.Handler
	Employee *employee.Handler
	Planning *planning.Handler
	Pointage *pointage.Handler
	Report   *report.Handler
}

type Options struct {
	AllowedOrigins []string
	OpenAPIPath    string
	// Validator is optional; when set every documented request is checked
	// against the API description.
	Validator *openapi.Validator
	Clock     internal.Clock
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, opts Options, logger *slog.Logger) {
	base := transport.NewBaseHandler(logger)
	health := NewHealthHandler(base, db, opts.Clock)
	rbac := auth.NewRBACAuthorization(auth.NewPermissionChecker(), logger)
	abac := &auth.ABACPolicy{}
	selfOrAdmin := func(param string) func(http.Handler) http.Handler {
		return auth.RequireSelfOrAdmin(abac, base, param)
	}

	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))
	if opts.Validator != nil {
		router.Use(opts.Validator.Middleware)
	}

	openAPIPath := opts.OpenAPIPath
	if openAPIPath == "" {
		openAPIPath = internal.DefaultOpenAPIPath
	}
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, openAPIPath)
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Post("/login", h.Auth.Login)

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", health.Health)
		r.Get("/ping", health.Ping)
		r.Post("/login", h.Auth.Login)

		// badge scans carry no token
		r.Post("/pointages/qr", h.Pointage.RecordQR)

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/user", h.Auth.CurrentUser)

			pr.Get("/plannings", h.Planning.List)
			pr.Get("/pointages", h.Pointage.List)
			pr.Post("/pointages", h.Pointage.Create)
			pr.Get("/sessions", h.Report.Sessions)

			pr.Group(func(sr chi.Router) {
				sr.Use(selfOrAdmin("id"))
				sr.Get("/employees/{id}", h.Employee.Get)
				sr.Get("/employees/{id}/badge.png", h.Employee.Badge)
				sr.Get("/pointages/employee/{id}", h.Pointage.ListByEmployee)
				sr.Get("/pointages/today/{id}", h.Pointage.ListToday)
			})

			pr.With(selfOrAdmin("employee_id")).Get("/exports/timesheet/{employee_id}", h.Report.ExportTimesheet)

			pr.Group(func(ar chi.Router) {
				ar.Use(rbac.RequireAdmin())
				ar.Get("/employees", h.Employee.List)
				ar.Post("/employees", h.Employee.Create)
				ar.Put("/employees/{id}", h.Employee.Update)
				ar.Delete("/employees/{id}", h.Employee.Delete)

				ar.Post("/plannings", h.Planning.Create)
				ar.Put("/plannings/{id}", h.Planning.Update)
				ar.Delete("/plannings/{id}", h.Planning.Delete)

				ar.Delete("/pointages/{id}", h.Pointage.Delete)
			})
		})
	})
}
