package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/foliokit/folio/pkg/auth"
	"github.com/foliokit/folio/pkg/log"
	"github.com/foliokit/folio/pkg/metrics"
	"github.com/foliokit/folio/pkg/notify"
	"github.com/foliokit/folio/pkg/snapshot"
	"github.com/foliokit/folio/pkg/store"
)

// Server exposes the domain store over HTTP/JSON: public reads for every
// entity, authenticated writes, auth operations, snapshot export/import
// and notification polling.
type Server struct {
	store     *store.Store
	gate      *auth.Gate
	snapshots *snapshot.Manager
	bus       *notify.Bus
	sessions  *sessions
	logger    zerolog.Logger

	http *http.Server
}

// NewServer wires the API over an already constructed store, gate and
// snapshot manager. sessionTTL bounds how long an issued token stays
// valid without re-login.
func NewServer(s *store.Store, gate *auth.Gate, snapshots *snapshot.Manager, bus *notify.Bus, sessionTTL time.Duration) (*Server, error) {
	sess, err := newSessions(sessionTTL)
	if err != nil {
		return nil, err
	}

	return &Server{
		store:     s,
		gate:      gate,
		snapshots: snapshots,
		bus:       bus,
		sessions:  sess,
		logger:    log.WithComponent("api"),
	}, nil
}

// Router builds the chi router with all routes mounted.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/healthz", metrics.HealthHandler().ServeHTTP)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", s.handleLogin)
		r.Get("/auth/session", s.handleSession)
		r.Get("/notification", s.handleNotification)
		r.Get("/content/{entity}", s.handleGetEntity)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/auth/logout", s.handleLogout)
			r.Post("/auth/password", s.handleChangePassword)
			r.Post("/auth/editing", s.handleToggleEditing)
			r.Put("/content/{entity}", s.handlePutEntity)
			r.Get("/snapshot", s.handleExport)
			r.Post("/snapshot", s.handleImport)
		})
	})

	return r
}

// Start begins serving on addr and blocks until the server stops.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.logger.Info().Str("addr", addr).Msg("HTTP API listening")
	metrics.RegisterComponent("api", true, "listening")

	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		metrics.UpdateComponent("api", false, err.Error())
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
