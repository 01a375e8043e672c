package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/gowthamsai117/financial-app/internal/middleware"
)

func (s *Server) RegisterRoutes() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(s.logger))
	r.Use(chimw.Recoverer)
	r.Use(s.corsHandler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/transactions", s.listTransactions)
		r.Post("/transactions", s.createTransaction)
		r.Get("/transactions/{id}", s.getTransaction)
		r.Put("/transactions/{id}", s.updateTransaction)
		r.Delete("/transactions/{id}", s.deleteTransaction)

		r.Get("/reports/summary", s.getSummary)
		r.Get("/health", s.health)
	})

	return r
}

// corsHandler allows the configured origins. A "*" entry allows any origin
// and reflects it back so credentialed requests still work.
func (s *Server) corsHandler() func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           600,
	}

	allowAll := len(s.allowedOrigins) == 0
	for _, origin := range s.allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
	}
	if allowAll {
		opts.AllowOriginFunc = func(r *http.Request, origin string) bool { return true }
	} else {
		opts.AllowedOrigins = s.allowedOrigins
	}

	return cors.Handler(opts)
}
