package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliokit/folio/pkg/defaults"
	"github.com/foliokit/folio/pkg/notify"
	"github.com/foliokit/folio/pkg/storage"
	"github.com/foliokit/folio/pkg/store"
	"github.com/foliokit/folio/pkg/types"
)

func newTestGate(t *testing.T) (*Gate, *store.Store, *notify.Bus) {
	t.Helper()
	backing, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { backing.Close() })

	s := store.New(backing, defaults.New())
	bus := notify.NewBus()
	return NewGate(s, bus), s, bus
}

func TestLoginSuccess(t *testing.T) {
	g, s, bus := newTestGate(t)

	ok := g.Login(s.Profile().Email, defaults.AdminSecret)
	require.True(t, ok)
	assert.True(t, g.Authenticated())
	assert.True(t, g.Editing())

	n, pending := bus.Consume()
	require.True(t, pending)
	assert.Equal(t, types.NotifySuccess, n.Kind)
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	g, _, _ := newTestGate(t)

	assert.True(t, g.Login("ADA@Example.EDU", defaults.AdminSecret))
	assert.True(t, g.Authenticated())
}

func TestRequireBranchesOnSessionState(t *testing.T) {
	g, s, _ := newTestGate(t)

	require.ErrorIs(t, g.Require(), ErrNotAuthenticated)

	require.True(t, g.Login(s.Profile().Email, defaults.AdminSecret))
	assert.NoError(t, g.Require())

	g.Logout()
	assert.ErrorIs(t, g.Require(), ErrNotAuthenticated)
}

func TestLoginFailureLeavesStateUnchanged(t *testing.T) {
	g, s, bus := newTestGate(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", s.Profile().Email, "wrong"},
		{"wrong email", "stranger@example.com", defaults.AdminSecret},
		{"both wrong", "stranger@example.com", "wrong"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, g.Login(tt.email, tt.password))
			assert.False(t, g.Authenticated())
			assert.False(t, g.Editing())

			n, pending := bus.Consume()
			require.True(t, pending)
			assert.Equal(t, types.NotifyError, n.Kind)
		})
	}
}

func TestChangePasswordRotatesSecret(t *testing.T) {
	g, s, _ := newTestGate(t)
	require.True(t, g.Login(s.Profile().Email, defaults.AdminSecret))

	require.NoError(t, g.ChangePassword("new-secret"))

	g.Logout()
	assert.False(t, g.Login(s.Profile().Email, defaults.AdminSecret), "old secret must stop working")
	assert.True(t, g.Login(s.Profile().Email, "new-secret"))
}

func TestToggleEditing(t *testing.T) {
	g, s, bus := newTestGate(t)

	// no-op while anonymous
	g.ToggleEditing()
	assert.False(t, g.Editing())
	_, pending := bus.Consume()
	assert.False(t, pending, "anonymous toggle must not notify")

	require.True(t, g.Login(s.Profile().Email, defaults.AdminSecret))
	assert.True(t, g.Editing())

	g.ToggleEditing()
	assert.False(t, g.Editing())
	assert.True(t, g.Authenticated(), "toggling editing keeps the session")

	g.ToggleEditing()
	assert.True(t, g.Editing())
}

func TestLogoutClearsSession(t *testing.T) {
	g, s, _ := newTestGate(t)
	require.True(t, g.Login(s.Profile().Email, defaults.AdminSecret))

	g.Logout()
	assert.False(t, g.Authenticated())
	assert.False(t, g.Editing())

	// editing cannot be re-enabled without logging back in
	g.ToggleEditing()
	assert.False(t, g.Editing())
}
