package auth

import (
	"errors"
	"strings"
	"sync"

	"github.com/foliokit/folio/pkg/log"
	"github.com/foliokit/folio/pkg/metrics"
	"github.com/foliokit/folio/pkg/notify"
	"github.com/foliokit/folio/pkg/store"
	"github.com/rs/zerolog"
)

// ErrNotAuthenticated is returned by operations that require an
// authenticated session.
var ErrNotAuthenticated = errors.New("not authenticated")

// Gate validates the owner's credentials against the profile email and
// the stored admin secret, and tracks the transient session state:
// authenticated and editing flags. Editing can only be true while
// authenticated. Session state is never persisted.
//
// Single-user local-trust model: no lockout, no rate limiting, no
// attempt counting.
type Gate struct {
	store  *store.Store
	bus    *notify.Bus
	logger zerolog.Logger

	mu            sync.Mutex
	authenticated bool
	editing       bool
}

// NewGate creates an anonymous gate over the given store.
func NewGate(s *store.Store, bus *notify.Bus) *Gate {
	return &Gate{
		store:  s,
		bus:    bus,
		logger: log.WithComponent("auth"),
	}
}

// Login validates the credential pair. On success the session becomes
// authenticated with editing enabled. On failure session state is
// unchanged. Email comparison is case-insensitive; the secret must match
// exactly.
func (g *Gate) Login(email, password string) bool {
	profile := g.store.Profile()
	ok := strings.EqualFold(email, profile.Email) && password == g.store.AdminSecret()

	g.mu.Lock()
	if ok {
		g.authenticated = true
		g.editing = true
	}
	g.mu.Unlock()

	if ok {
		g.bus.Success("Welcome back, " + profile.Name)
		g.logger.Info().Msg("login succeeded")
		metrics.LoginAttempts.WithLabelValues("success").Inc()
	} else {
		g.bus.Error("Invalid email or password")
		g.logger.Warn().Msg("login failed")
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
	}
	return ok
}

// Logout clears the session. Safe to call while anonymous.
func (g *Gate) Logout() {
	g.mu.Lock()
	wasAuthenticated := g.authenticated
	g.authenticated = false
	g.editing = false
	g.mu.Unlock()

	if wasAuthenticated {
		g.bus.Info("Logged out")
		g.logger.Info().Msg("logout")
	}
}

// ChangePassword overwrites the stored admin secret. The gate performs
// no session check here; exposing this only to authenticated sessions is
// the caller's responsibility.
func (g *Gate) ChangePassword(secret string) error {
	if err := g.store.SetAdminSecret(secret); err != nil {
		g.bus.Error("Could not save the new password")
		return err
	}
	g.bus.Success("Password updated")
	g.logger.Info().Msg("admin secret changed")
	return nil
}

// ToggleEditing flips the editing flag. A no-op while unauthenticated.
func (g *Gate) ToggleEditing() {
	g.mu.Lock()
	if !g.authenticated {
		g.mu.Unlock()
		return
	}
	g.editing = !g.editing
	editing := g.editing
	g.mu.Unlock()

	if editing {
		g.bus.Info("Editing enabled")
	} else {
		g.bus.Info("Editing disabled")
	}
}

// Require returns ErrNotAuthenticated while the session is anonymous.
// Callers that need an authenticated session branch on it with errors.Is.
func (g *Gate) Require() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.authenticated {
		return ErrNotAuthenticated
	}
	return nil
}

// Authenticated reports whether the session is authenticated.
func (g *Gate) Authenticated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.authenticated
}

// Editing reports whether editing affordances should be shown.
func (g *Gate) Editing() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.editing
}
