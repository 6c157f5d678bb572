package api

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/flowpbx/ivrdemo/internal/api/middleware"
	"github.com/flowpbx/ivrdemo/internal/config"
	"github.com/flowpbx/ivrdemo/internal/intent"
	"github.com/flowpbx/ivrdemo/internal/metrics"
	"github.com/flowpbx/ivrdemo/internal/responder"
	"github.com/flowpbx/ivrdemo/internal/web"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Server holds HTTP handler dependencies and the chi router.
type Server struct {
	router    *chi.Mux
	cfg       *config.Config
	detector  intent.Detector
	responses *responder.Table
	tally     *metrics.Tally
	metrics   http.Handler
	limiter   *middleware.IPRateLimiter
	static    http.Handler
	logger    *slog.Logger
}

// NewServer creates the HTTP handler with all routes mounted. metricsHandler
// may be nil, in which case /metrics is not served.
func NewServer(cfg *config.Config, responses *responder.Table, tally *metrics.Tally, metricsHandler http.Handler, logger *slog.Logger) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		cfg:       cfg,
		responses: responses,
		tally:     tally,
		metrics:   metricsHandler,
		logger:    logger.With("component", "api"),
	}

	if cfg.RateLimitEnabled() {
		s.limiter = middleware.NewIPRateLimiter(
			middleware.NewRateLimitConfig(cfg.RateLimit, cfg.RateBurst),
			s.logger,
		)
	}

	if dist, err := fs.Sub(web.DistFS, "dist"); err == nil {
		s.static = http.FileServer(http.FS(dist))
	} else {
		s.logger.Warn("embedded dialpad page unavailable", "error", err)
	}

	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Close releases background resources held by the server.
func (s *Server) Close() {
	if s.limiter != nil {
		s.limiter.Stop()
	}
}

// routes configures all middleware and mounts all route groups.
func (s *Server) routes() {
	r := s.router

	// Global middleware stack.
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.StructuredLogger(s.logger))
	r.Use(middleware.Recoverer(s.logger))
	r.Use(middleware.SecurityHeaders(s.cfg.TLSEnabled()))
	r.Use(middleware.CORS(middleware.ParseCORSOrigins(s.cfg.CORSOrigins)))

	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	r.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(middleware.RateLimit(s.limiter))
		}

		// Browser-facing routes; bodies are not enveloped.
		r.Post("/ivr/request", s.handleIVRRequest)
		r.Post("/conversation/process", s.handleConversation)
		r.Post("/acs/process", s.handleServiceProcess(intent.ServiceACS))
		r.Post("/bap/process", s.handleServiceProcess(intent.ServiceBAP))

		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/health", s.handleHealth)
			r.Get("/intents", s.handleListIntents)
			r.Post("/detect", s.handleDetect)
			r.Get("/responses/{digit}", s.handleGetResponse)
			r.Post("/sessions", s.handleCreateSession)
			r.NotFound(func(w http.ResponseWriter, r *http.Request) {
				writeError(w, http.StatusNotFound, "not found")
			})
		})
	})

	r.NotFound(s.handleSPAFallback)

	s.logger.Info("api routes mounted")
}

// handleSPAFallback serves the embedded dialpad page for non-API GET routes.
func (s *Server) handleSPAFallback(w http.ResponseWriter, r *http.Request) {
	if s.static == nil || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	// Unknown paths get the index page so client-side links keep working.
	if r.URL.Path != "/" && !strings.Contains(r.URL.Path, ".") {
		r = r.Clone(r.Context())
		r.URL.Path = "/"
	}
	s.static.ServeHTTP(w, r)
}
