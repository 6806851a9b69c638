// Package http provides the HTTP delivery layer for the URL shortener service.
// This package contains the HTTP handlers and related types used for processing
// incoming requests, validating input, and formatting responses.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/vadimbarashkov/shorturl/docs"
)

// NewRouter initializes and returns a new Chi router configured with middleware and routes for the URL shortener API.
// Metrics are served from gatherer; requests running longer than requestTimeout are cancelled.
func NewRouter(
	logger *httplog.Logger,
	gatherer prometheus.Gatherer,
	requestTimeout time.Duration,
	urlUseCase urlUseCase,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           84600,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httplog.RequestLogger(logger))
	r.Use(recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/ping", handlePing)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/swagger.yml"),
	))

	r.Get("/docs/swagger.yml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(docs.Swagger)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/hello", handleHello)

		r.Route("/shorturl", func(r chi.Router) {
			h := newURLHandler(urlUseCase, validator.New())

			r.Post("/new", h.shortenURL)
			r.Get("/{shortURL}", h.resolveShortCode)
		})
	})

	return r
}
