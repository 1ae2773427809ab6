package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/lingo/internal/backend"
	"github.com/dmitrymomot/lingo/pkg/i18n"
	"github.com/dmitrymomot/lingo/pkg/logger"
)

const defaultHealthTimeout = 5 * time.Second

// ErrNilResolver is returned by New without a resolver.
var ErrNilResolver = errors.New("server: resolver is nil")

// LanguageSource lists the languages a deployment serves, default first.
type LanguageSource func(ctx context.Context) ([]string, error)

// Server exposes an i18n resolver over HTTP.
type Server struct {
	svc           *i18n.I18n[string]
	languages     LanguageSource
	checks        map[string]backend.CheckFunc
	logger        *slog.Logger
	healthTimeout time.Duration
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLanguageSource replaces the resolver's static language list, e.g. with
// a store that can gain languages at runtime.
func WithLanguageSource(src LanguageSource) Option {
	return func(s *Server) {
		if src != nil {
			s.languages = src
		}
	}
}

// WithCheck adds a named readiness check.
func WithCheck(name string, check backend.CheckFunc) Option {
	return func(s *Server) {
		if check != nil {
			s.checks[name] = check
		}
	}
}

// WithHealthTimeout bounds the readiness checks. Default: 5s.
func WithHealthTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.healthTimeout = d
		}
	}
}

// New creates a Server for svc.
func New(svc *i18n.I18n[string], opts ...Option) (*Server, error) {
	if svc == nil {
		return nil, ErrNilResolver
	}

	s := &Server{
		svc:           svc,
		checks:        make(map[string]backend.CheckFunc),
		logger:        logger.NewNope(),
		healthTimeout: defaultHealthTimeout,
	}
	s.languages = func(context.Context) ([]string, error) {
		return svc.Languages(), nil
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Handler returns the HTTP routes:
//
//	GET /health                 liveness
//	GET /health/ready           readiness checks
//	GET /v1/languages           default and available languages
//	GET /v1/translate/{key}     ?lang=&count=&p.name=value
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID, s.recoverer, s.accessLog)

	r.Get("/health", s.liveness)
	r.Get("/health/ready", s.readiness)

	r.Route("/v1", func(r chi.Router) {
		r.Use(s.language)
		r.Get("/languages", s.listLanguages)
		r.Get("/translate/{key}", s.translate)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	return r
}

type errorResponse struct {
	Error string `json:"error"`
	Key   string `json:"key,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
