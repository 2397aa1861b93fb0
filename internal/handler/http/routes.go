package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
		MaxAge:         300,
	}))
	router.Use(h.withTraceID, h.withLogging)
	router.Use(middleware.Compress(5, "application/json"))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/health", h.health)
	router.Get("/api/version", h.getServerVersion)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/api/users", func(r chi.Router) {
			r.Get("/{id}", h.showUserInfo)
			r.Get("/me", h.getMe)
			r.Patch("/me", h.updateMe)
			r.Delete("/me", h.deleteMe)
		})

		r.Route("/api/circles", func(r chi.Router) {
			r.Post("/", h.createCircle)
			r.Get("/default", h.getDefaultCircle)
			r.Delete("/{id}", h.deleteCircle)
			r.Patch("/{id}/name", h.updateCircleName)
			r.Patch("/{id}/allowed-info", h.updateAllowedInfo)

			r.Get("/{id}/contacts/{contactID}", h.hasContact)
			r.Put("/{id}/contacts/{contactID}", h.addContact)
			r.Delete("/{id}/contacts/{contactID}", h.removeContact)
		})

		r.Route("/api/handshakes", func(r chi.Router) {
			r.Post("/", h.createHandshake)
			r.Post("/{id}/accept", h.acceptHandshake)
			r.Delete("/{id}", h.deleteHandshake)
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
