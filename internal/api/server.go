// Package api provides the HTTP query surface over the engine: a thin
// facade offering areGoalsSatisfied, singleStep, enabledTransitions, and
// generateActionPlan as JSON endpoints on a net/http.ServeMux with
// method+path patterns, a CORS middleware, and a structured APIError
// response body.
package api

import (
	"context"
	"net/http"
)

// Server wraps an HTTP server exposing the four query operations.
type Server struct {
	httpServer *http.Server
}

// NewServer creates a Server that binds to the given address.
func NewServer(h *Handler, listenAddr string) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/health", h.Health)
	mux.HandleFunc("POST /api/v1/goals-satisfied", h.GoalsSatisfied)
	mux.HandleFunc("POST /api/v1/single-step", h.SingleStep)
	mux.HandleFunc("POST /api/v1/enabled-transitions", h.EnabledTransitions)
	mux.HandleFunc("POST /api/v1/plan", h.GeneratePlan)

	srv := &http.Server{
		Addr:    listenAddr,
		Handler: corsMiddleware(mux),
	}

	return &Server{httpServer: srv}
}

// Start begins listening for HTTP connections. Blocks until the server stops.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
