package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/report-catalog/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, withLogging, withMetrics)
	router.Use(middleware.Recoverer)

	// service endpoints
	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)
	router.Handle("/metrics", metrics.Handler())

	// catalog pages
	router.Group(func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}
		r.Use(withGZip, h.withSession)

		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)

		r.With(requireLogin).Get("/", h.listRecords)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)

			r.Get("/new", h.newRecordPage)
			r.Post("/new", h.createRecord)
			r.Get("/edit/{id}", h.editRecordPage)
			r.Post("/edit/{id}", h.updateRecord)
			r.Post("/delete/{id}", h.deleteRecord)

			r.Get("/users", h.listUsers)
			r.Get("/users/new", h.newUserPage)
			r.Post("/users/new", h.createUser)
			r.Get("/edit_user/{id}", h.editUserPage)
			r.Post("/edit_user/{id}", h.updateUser)

			r.Get("/admin_roles", h.rolesPage)
			r.Post("/admin_roles/update", h.updateRoles)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
