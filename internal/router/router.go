package router

import (
	"net/http"

	"bakery-api/internal/handler"
	"bakery-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	customerHandler *handler.CustomerHandler,
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	statsHandler *handler.StatsHandler,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware in order: Recovery -> Logging -> CORS
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	// Health check endpoint outside the API prefix
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Post("/", customerHandler.Create)
			r.Get("/", customerHandler.GetAll)
			r.Get("/{id}", customerHandler.GetByID)
			r.Put("/{id}", customerHandler.Update)
			r.Delete("/{id}", customerHandler.Delete)
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", productHandler.Create)
			r.Get("/", productHandler.GetAll)
			r.Get("/{id}", productHandler.GetByID)
			r.Put("/{id}", productHandler.Update)
			r.Delete("/{id}", productHandler.Delete)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", orderHandler.Create)
			r.Get("/", orderHandler.GetAll)
			r.Get("/{id}", orderHandler.GetByID)
			r.Put("/{id}/status", orderHandler.UpdateStatus)
			r.Delete("/{id}", orderHandler.Delete)
		})

		r.Get("/dashboard/stats", statsHandler.Get)
	})

	return r
}
