package server

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/lingo/pkg/i18n"
)

const paramPrefix = "p."

// TranslateResponse is the body of GET /v1/translate/{key}.
type TranslateResponse struct {
	Key  string `json:"key"`
	Lang string `json:"lang"`
	Text string `json:"text"`
}

// LanguagesResponse is the body of GET /v1/languages.
type LanguagesResponse struct {
	Default   string   `json:"default"`
	Languages []string `json:"languages"`
}

func (s *Server) translate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	key := chi.URLParam(r, "key")
	lang := i18n.TranslatorFromContext[string](ctx).Language()

	query := r.URL.Query()
	params := make(i18n.M)
	for name, values := range query {
		if after, ok := strings.CutPrefix(name, paramPrefix); ok && after != "" && len(values) > 0 {
			params[after] = values[len(values)-1]
		}
	}

	req := i18n.Request[string]{Key: key, Lang: &lang, Params: i18n.FromMap(params)}
	if raw := query.Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "count must be an integer")
			return
		}
		req.Value = &n
	}

	text, err := s.svc.Resolve(ctx, req)
	if err != nil {
		s.logger.WarnContext(ctx, "malformed choice message",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error(), Key: key})
		return
	}

	writeJSON(w, http.StatusOK, TranslateResponse{Key: key, Lang: lang, Text: text})
}

func (s *Server) listLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LanguagesResponse{
		Default:   s.svc.DefaultLanguage(),
		Languages: s.available(r.Context()),
	})
}

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// HealthResponse is the body of the health endpoints.
type HealthResponse struct {
	Checks map[string]HealthCheck `json:"checks,omitempty"`
	Status string                 `json:"status"`
}

// HealthCheck is the result of one readiness check.
type HealthCheck struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func (s *Server) liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusHealthy})
}

// readiness runs every check in parallel under the health timeout.
func (s *Server) readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.healthTimeout)
	defer cancel()

	resp := HealthResponse{Status: statusHealthy, Checks: make(map[string]HealthCheck, len(s.checks))}
	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	for name, check := range s.checks {
		g.Go(func() error {
			result := HealthCheck{Status: statusHealthy}
			if err := check(ctx); err != nil {
				result = HealthCheck{Status: statusUnhealthy, Error: err.Error()}
				s.logger.WarnContext(ctx, "health check failed",
					slog.String("check", name),
					slog.String("error", err.Error()),
				)
			}

			mu.Lock()
			defer mu.Unlock()
			resp.Checks[name] = result
			if result.Status == statusUnhealthy {
				resp.Status = statusUnhealthy
			}
			return nil
		})
	}
	_ = g.Wait()

	status := http.StatusOK
	if resp.Status == statusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}
