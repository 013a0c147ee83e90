package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/fortuna/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	if h.trustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Method("GET", "/metrics", metrics.Handler(h.gatherer))

	router.Route("/api", func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/version", h.getServerVersion)

		// routes without authorization
		r.Route("/auth", func(r chi.Router) {
			r.With(h.withRateLimit).Post("/signup", h.signup)
			r.With(h.withRateLimit).Post("/login", h.login)
			r.Get("/valid", h.valid)
			r.Get("/sessions", h.sessions)
			r.Post("/logout", h.logout)
			r.With(h.requireSession).Delete("/sessions/{sessionKey}", h.revokeSession)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.requireSession)

			r.Get("/workspaces", h.listWorkspaces)
			r.Post("/workspaces", h.createWorkspace)
			r.Get("/workspaces/{workspaceID}/users", h.listMembers)
			r.Post("/workspaces/{workspaceID}/users", h.addMember)
			r.Delete("/workspaces/{workspaceID}/users/{userID}", h.removeMember)
			r.Get("/workspaces/{workspaceID}/experiments", h.listExperiments)
			r.Post("/workspaces/{workspaceID}/experiments", h.createExperiment)

			r.Get("/experiments/{experimentID}", h.getExperiment)
			r.Post("/experiments/{experimentID}/outcomes", h.addOutcome)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
