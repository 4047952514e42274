package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/org-directory/internal/auth"
	"github.com/frahmantamala/org-directory/internal/employee"
	"github.com/frahmantamala/org-directory/internal/hierarchy"
	"github.com/frahmantamala/org-directory/internal/transport/middleware"
	"github.com/frahmantamala/org-directory/internal/transport/swagger"
)

// RegisterAllRoutes wires the directory's HTTP surface. Signup and login are
// public; every other directory route requires a valid session token.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	employeeHandler *employee.Handler,
	hierarchyHandler *hierarchy.Handler,
	allowedOrigins string,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI spec at root, swagger UI beside it
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Post("/auth/login", authHandler.Login)

		// signup is open; everything below needs a token
		r.Post("/employees", employeeHandler.Create)

		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Get("/employees", employeeHandler.ListAll)
			pr.Get("/employees/{id}", employeeHandler.GetByID)
			pr.Put("/employees/{id}", employeeHandler.Update)
			pr.Delete("/employees/{id}", employeeHandler.Delete)

			pr.Get("/employees/{id}/reports", hierarchyHandler.Reports)
			pr.Get("/departments/{id}/managers", employeeHandler.ManagersOfDepartment)

			pr.Group(func(ar chi.Router) {
				ar.Use(authHandler.RequireRole(
					string(employee.RoleSuperAdmin),
					string(employee.RoleAdmin),
				))
				ar.Get("/organisation", hierarchyHandler.OrgSummaryHandler)
			})
		})
	})
}
