// Package httpapi exposes the action bridge over HTTP. Every bridge
// action is reachable through the generic POST /actions/{name} route;
// the read-side GET routes are conveniences over the same dispatch path.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/voyantic/sojourn/pkg/bridge"
	"github.com/voyantic/sojourn/pkg/domain"
	"github.com/voyantic/sojourn/pkg/schema"
)

// Server routes HTTP requests into a Bridge.
type Server struct {
	bridge  *bridge.Bridge
	logger  *slog.Logger
	version string
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithVersion sets the version reported by GET /info.
func WithVersion(v string) Option {
	return func(s *Server) { s.version = v }
}

// NewHandler builds the full HTTP handler, including /metrics when a
// gatherer is given. Pass nil to skip the metrics route.
func NewHandler(b *bridge.Bridge, gatherer prometheus.Gatherer, opts ...Option) http.Handler {
	s := &Server{bridge: b, logger: slog.Default(), version: "dev"}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/health", s.health)
	r.Get("/info", s.info)
	r.Post("/actions/{name}", s.dispatch)
	r.Get("/quote", s.currentQuote)
	r.Get("/plans", s.listPlans)
	r.Post("/quote", s.getQuote)
	r.Post("/policies", s.purchasePolicy)
	r.Get("/policies", s.listPolicies)
	r.Post("/claims", s.fileClaim)
	r.Get("/claims", s.listClaims)
	r.Get("/claims/{id}", s.claimStatus)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// dispatch handles POST /actions/{name} with a JSON object body of
// action arguments. It is the uniform entry point equivalent to the
// tool channel.
func (s *Server) dispatch(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	args := map[string]any{}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			s.logger.Warn("dispatch: invalid request body", "action", name, "err", err)
			return
		}
	}
	s.invoke(w, r, name, args)
}

func (s *Server) getQuote(w http.ResponseWriter, r *http.Request) {
	var args map[string]any
	if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("getQuote: invalid request body", "err", err)
		return
	}
	s.invoke(w, r, bridge.ActionGetQuote, args)
}

// listPlans handles GET /plans with optional boolean query params
// visa_compliant and zero_deductible.
func (s *Server) listPlans(w http.ResponseWriter, r *http.Request) {
	args := map[string]any{}
	for _, key := range []string{"visa_compliant", "zero_deductible"} {
		raw := r.URL.Query().Get(key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("Invalid query param %s: %v", key, err), http.StatusBadRequest)
			return
		}
		args[key] = v
	}
	s.invoke(w, r, bridge.ActionListPlans, args)
}

func (s *Server) purchasePolicy(w http.ResponseWriter, r *http.Request) {
	var args map[string]any
	if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("purchasePolicy: invalid request body", "err", err)
		return
	}
	s.invoke(w, r, bridge.ActionPurchasePolicy, args)
}

func (s *Server) fileClaim(w http.ResponseWriter, r *http.Request) {
	var args map[string]any
	if err := json.NewDecoder(r.Body).Decode(&args); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("fileClaim: invalid request body", "err", err)
		return
	}
	s.invoke(w, r, bridge.ActionFileClaim, args)
}

func (s *Server) claimStatus(w http.ResponseWriter, r *http.Request) {
	args := map[string]any{"claim_id": chi.URLParam(r, "id")}
	s.invoke(w, r, bridge.ActionCheckClaimStatus, args)
}

func (s *Server) currentQuote(w http.ResponseWriter, r *http.Request) {
	q, err := s.bridge.CurrentQuote(r.Context())
	if err != nil {
		s.writeError(w, "current-quote", err)
		return
	}
	writeJSON(w, s.logger, q)
}

func (s *Server) listPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := s.bridge.Policies(r.Context())
	if err != nil {
		s.writeError(w, "list-policies", err)
		return
	}
	writeJSON(w, s.logger, policies)
}

func (s *Server) listClaims(w http.ResponseWriter, r *http.Request) {
	claims, err := s.bridge.Claims(r.Context())
	if err != nil {
		s.writeError(w, "list-claims", err)
		return
	}
	writeJSON(w, s.logger, claims)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{"status": "ok"})
}

func (s *Server) info(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{
		"app":     "sojourn-http",
		"version": strings.TrimSpace(s.version),
	})
}

func (s *Server) invoke(w http.ResponseWriter, r *http.Request, name string, args map[string]any) {
	result, err := s.bridge.Dispatch(r.Context(), name, args)
	if err != nil {
		s.writeError(w, name, err)
		return
	}
	writeJSON(w, s.logger, result)
}

// writeError maps the bridge error taxonomy onto HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, action string, err error) {
	status := http.StatusInternalServerError
	switch {
	case schema.IsValidation(err):
		status = http.StatusBadRequest
	case domain.NotFound(err), errors.Is(err, domain.ErrNoCurrentQuote):
		status = http.StatusNotFound
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("action failed", "action", action, "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := map[string]string{"error": err.Error()}
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		s.logger.Error("error response encode failed", "err", encErr)
	}
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "err", err)
	}
}
