package daemon

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-logr/logr"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ToderitaLoredana/PlaneBooking/internal/config"
	"github.com/ToderitaLoredana/PlaneBooking/internal/metrics"
	"github.com/ToderitaLoredana/PlaneBooking/internal/search"
)

// Server exposes the search service over HTTP.
type Server struct {
	config config.Config
	search *search.Service
	logger logr.Logger
}

func NewServer(cfg config.Config, svc *search.Service, logger logr.Logger) *Server {
	return &Server{
		config: cfg,
		search: svc,
		logger: logger.WithName("http"),
	}
}

// Routes returns the HTTP handler for all endpoints.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(s.logRequestMiddleware)
	r.Use(middleware.Recoverer)

	// CORS for the frontend origin. Preflight replies under /api/data are
	// finished by handlePreflight so the allowed lists are reported in full.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:     []string{s.config.CORS.AllowedOrigin},
		AllowedMethods:     s.config.CORS.AllowedMethods,
		AllowedHeaders:     s.config.CORS.AllowedHeaders,
		ExposedHeaders:     []string{headerEngineOutcome, headerEngineExitCode, headerResultStatus},
		AllowCredentials:   s.config.CORS.AllowCredentials,
		OptionsPassthrough: true,
	}))

	// Swagger docs
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Config, health and metrics
	r.Get("/health", s.handleHealth)
	r.Get("/config", s.handleConfig)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Flight search
	r.Route("/api/data", func(r chi.Router) {
		r.Get("/", s.handleSearchInfo)
		r.Post("/", s.handleSearch)
		r.Options("/", s.handlePreflight)
		r.Get("/latest", s.handleLatest)
		r.Options("/latest", s.handlePreflight)
	})

	return r
}
