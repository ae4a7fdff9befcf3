package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/roamly/places-api/internal/config"
	"github.com/roamly/places-api/internal/pkg/httputil"
)

// SetupRoutes configures all API routes.
func SetupRoutes(h *Handlers, hc *HealthChecker, corsCfg config.CORSConfig) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	// CORS - the API serves exactly one configured frontend origin
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{corsCfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", hc.HandleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/places", func(r chi.Router) {
			r.Post("/", h.CreatePlace)
			r.Get("/user/{userId}", h.GetPlacesByUser)
			r.Get("/{placeId}", h.GetPlace)
			r.Patch("/{placeId}", h.UpdatePlace)
			r.Delete("/{placeId}", h.DeletePlace)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.ListUsers)
			r.Post("/signup", h.Signup)
			r.Post("/login", h.Login)
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httputil.NotFound(w, "could not find this route")
	})

	return r
}
