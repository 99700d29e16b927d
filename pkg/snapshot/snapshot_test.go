package snapshot

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliokit/folio/pkg/defaults"
	"github.com/foliokit/folio/pkg/notify"
	"github.com/foliokit/folio/pkg/storage"
	"github.com/foliokit/folio/pkg/store"
	"github.com/foliokit/folio/pkg/types"
)

func newTestManager(t *testing.T) (*Manager, *store.Store, *notify.Bus) {
	t.Helper()
	backing, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { backing.Close() })

	s := store.New(backing, defaults.New())
	bus := notify.NewBus()
	return NewManager(s, bus), s, bus
}

func TestExportStampsVersionAndTimestamp(t *testing.T) {
	m, s, bus := newTestManager(t)

	doc := m.Export()
	assert.Equal(t, Version, doc.Version)

	ts, err := time.Parse(time.RFC3339, doc.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)

	require.NotNil(t, doc.Profile)
	assert.Equal(t, s.Profile(), *doc.Profile)
	assert.Equal(t, s.Publications(), doc.Publications)

	n, ok := bus.Consume()
	require.True(t, ok)
	assert.Equal(t, types.NotifySuccess, n.Kind)
}

func TestImportMalformedMutatesNothing(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ``},
		{"not json", `this is not json`},
		{"truncated", `{"profile":{"name":`},
		{"array top level", `[{"id":"p1"}]`},
		{"string top level", `"backup"`},
		{"null top level", `null`},
		{"wrong entity shape", `{"publications":{"id":"p1"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, s, bus := newTestManager(t)
			before := m.Export()
			bus.Consume()

			err := m.Import([]byte(tt.raw))
			require.ErrorIs(t, err, ErrMalformed)

			assert.Equal(t, *before.Profile, s.Profile())
			assert.Equal(t, before.Publications, s.Publications())
			assert.Equal(t, before.Timeline, s.Timeline())

			n, ok := bus.Consume()
			require.True(t, ok)
			assert.Equal(t, types.NotifyError, n.Kind)
		})
	}
}

func TestExportImportRoundTripIsIdempotent(t *testing.T) {
	m, s, _ := newTestManager(t)

	before := m.Export()
	raw, err := json.Marshal(before)
	require.NoError(t, err)

	require.NoError(t, m.Import(raw))

	after := m.Export()
	assert.Equal(t, before.Profile, after.Profile)
	assert.Equal(t, before.Publications, after.Publications)
	assert.Equal(t, before.Timeline, after.Timeline)
	assert.Equal(t, before.Gallery, after.Gallery)
	assert.Equal(t, s.Profile(), *after.Profile)
}

func TestImportPartialDocumentLeavesOthersUntouched(t *testing.T) {
	m, s, _ := newTestManager(t)

	require.NoError(t, s.SetPublications([]types.Publication{{ID: "p1", Citations: 5}}))
	profileBefore := s.Profile()

	raw := []byte(`{
		"publications": [{"id":"p1","citations":5},{"id":"p2","citations":0}],
		"version": "1.0",
		"timestamp": "2024-01-01T00:00:00Z"
	}`)
	require.NoError(t, m.Import(raw))

	pubs := s.Publications()
	require.Len(t, pubs, 2)
	assert.Equal(t, "p1", pubs[0].ID)
	assert.Equal(t, "p2", pubs[1].ID)
	assert.Equal(t, profileBefore, s.Profile(), "profile absent from document must stay unchanged")
}

func TestImportMergesProfileAgainstCurrent(t *testing.T) {
	m, s, _ := newTestManager(t)

	// the owner customized a setting the backup does not mention
	current := s.Profile()
	current.UISettings["accentColor"] = "#00ff00"
	require.NoError(t, s.SetProfile(current))

	raw := []byte(`{"profile":{"name":"From Backup","sectionVisibility":{"blog":false}},"version":"1.0","timestamp":"2024-01-01T00:00:00Z"}`)
	require.NoError(t, m.Import(raw))

	p := s.Profile()
	assert.Equal(t, "From Backup", p.Name)
	assert.False(t, p.SectionVisibility[defaults.SectionBlogs])
	assert.Equal(t, "#00ff00", p.UISettings["accentColor"], "unmentioned custom config survives a partial backup")
	assert.Equal(t, current.Email, p.Email)
}

func TestImportEmptyCollectionOverwrites(t *testing.T) {
	m, s, _ := newTestManager(t)
	require.NotEmpty(t, s.News())

	require.NoError(t, m.Import([]byte(`{"news":[],"version":"1.0","timestamp":"2024-01-01T00:00:00Z"}`)))
	assert.Empty(t, s.News())
}

func TestImportPersistsDurably(t *testing.T) {
	backing, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	defer backing.Close()

	s := store.New(backing, defaults.New())
	m := NewManager(s, notify.NewBus())

	require.NoError(t, m.Import([]byte(`{"gallery":["/images/a.jpg"],"version":"1.0","timestamp":"2024-01-01T00:00:00Z"}`)))

	reloaded := store.New(backing, defaults.New())
	assert.Equal(t, []string{"/images/a.jpg"}, reloaded.Gallery())
}
