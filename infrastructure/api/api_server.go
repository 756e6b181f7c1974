// Package api wires the HTTP API on top of an xact Client.
package api

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/helixml/xact"
	"github.com/helixml/xact/infrastructure/api/middleware"
	v1 "github.com/helixml/xact/infrastructure/api/v1"
)

// RequestTimeout bounds the handling time of every /api/v1 request.
const RequestTimeout = 30 * time.Second

// APIServer provides an HTTP API backed by an xact Client.
type APIServer struct {
	client      *xact.Client
	auth        middleware.AuthConfig
	corsOrigins []string

	mu     sync.Mutex
	server *Server
}

// NewAPIServer creates a new APIServer wired to the given Client.
// apiKeys configures write-protection: mutating lap endpoints require a
// valid key. The calculator endpoints stay open.
func NewAPIServer(client *xact.Client, apiKeys []string, corsOrigins []string) *APIServer {
	return &APIServer{
		client:      client,
		auth:        middleware.NewAuthConfigWithKeys(apiKeys),
		corsOrigins: corsOrigins,
	}
}

// MountRoutes wires up the health check and all v1 API routes on router.
func (a *APIServer) MountRoutes(router chi.Router) {
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		middleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(chimiddleware.Timeout(RequestTimeout))

		r.Mount("/timespans", v1.NewTimespansRouter(a.client).Routes())
		r.Mount("/text", v1.NewTextRouter(a.client).Routes())

		r.Group(func(r chi.Router) {
			r.Use(middleware.WriteProtect(a.auth))
			r.Mount("/laps", v1.NewLapsRouter(a.client).Routes())
		})
	})
}

// Handler returns a fully wired http.Handler without starting a listener.
func (a *APIServer) Handler() http.Handler {
	server := NewServer("", a.client.Logger(), a.corsOrigins...)
	a.MountRoutes(server.Router())
	return server.Handler()
}

// ListenAndServe starts the HTTP server on addr and blocks until it stops.
func (a *APIServer) ListenAndServe(addr string) error {
	server := NewServer(addr, a.client.Logger(), a.corsOrigins...)
	a.MountRoutes(server.Router())

	a.mu.Lock()
	a.server = &server
	a.mu.Unlock()

	return server.Start()
}

// Shutdown gracefully shuts down the server. It is a no-op when the server
// was never started.
func (a *APIServer) Shutdown(ctx context.Context) error {
	a.mu.Lock()
	server := a.server
	a.mu.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}
