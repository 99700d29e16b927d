package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliokit/folio/pkg/defaults"
	"github.com/foliokit/folio/pkg/storage"
	"github.com/foliokit/folio/pkg/types"
)

func newTestStore(t *testing.T) (*Store, *storage.Backing) {
	t.Helper()
	backing, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { backing.Close() })
	return New(backing, defaults.New()), backing
}

func TestFreshStoreServesDefaults(t *testing.T) {
	s, backing := newTestStore(t)

	assert.Equal(t, defaults.Profile(), s.Profile())
	assert.Equal(t, defaults.AdminSecret, s.AdminSecret())
	assert.Equal(t, defaults.Publications(), s.Publications())

	// defaults are served without being written back
	raw, err := backing.Get(storage.KeyProfile)
	require.NoError(t, err)
	assert.Nil(t, raw, "loading defaults must not write to the backing")
}

func TestSetPersistsAcrossReload(t *testing.T) {
	backing, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	defer backing.Close()

	s := New(backing, defaults.New())
	pubs := append(s.Publications(), types.Publication{ID: types.NewID(), Title: "New preprint", Year: 2025})
	require.NoError(t, s.SetPublications(pubs))

	p := s.Profile()
	p.Name = "Renamed Owner"
	require.NoError(t, s.SetProfile(p))

	// a second store over the same backing sees the persisted state
	reloaded := New(backing, defaults.New())
	assert.Equal(t, pubs, reloaded.Publications())
	assert.Equal(t, "Renamed Owner", reloaded.Profile().Name)
}

func TestCorruptSlotFallsBackToDefault(t *testing.T) {
	backing, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	defer backing.Close()

	require.NoError(t, backing.Put(storage.KeySkills, []byte(`{not json`)))
	require.NoError(t, backing.Put(storage.KeyProfile, []byte(`[1,2,3]`)))

	s := New(backing, defaults.New())
	assert.Equal(t, defaults.Skills(), s.Skills())
	assert.Equal(t, defaults.Profile(), s.Profile())

	// recovery is read-only: the corrupt bytes stay until the next Set
	raw, err := backing.Get(storage.KeySkills)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{not json`), raw)
}

func TestStoredPartialProfileIsReconciled(t *testing.T) {
	backing, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	defer backing.Close()

	require.NoError(t, backing.Put(storage.KeyProfile, []byte(`{"sectionVisibility":{"blog":false}}`)))

	s := New(backing, defaults.New())
	p := s.Profile()

	assert.False(t, p.SectionVisibility[defaults.SectionBlogs])
	def := defaults.Profile()
	for k, v := range def.SectionVisibility {
		if k == defaults.SectionBlogs {
			continue
		}
		assert.Equal(t, v, p.SectionVisibility[k], "visibility key %q should keep its default", k)
	}
	assert.Equal(t, def.Name, p.Name, "absent top-level fields take defaults")
}

func TestSetPartialProfileBackfillsDefaults(t *testing.T) {
	backing, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	defer backing.Close()

	s := New(backing, defaults.New())
	require.NoError(t, s.SetProfile(types.Profile{Name: "Partial"}))

	def := defaults.Profile()
	p := s.Profile()
	assert.Equal(t, "Partial", p.Name)
	for k := range def.SectionVisibility {
		assert.Contains(t, p.SectionVisibility, k, "visibility key %q must survive a partial set", k)
	}
	for k := range def.UISettings {
		assert.Contains(t, p.UISettings, k, "ui settings key %q must survive a partial set", k)
	}
	for k := range def.SectionText {
		assert.Contains(t, p.SectionText, k, "section text key %q must survive a partial set", k)
	}
	assert.NotNil(t, p.CustomSocials)

	// the persisted bytes carry the same normalized value, so a reload
	// observes exactly what the writer observed
	reloaded := New(backing, defaults.New())
	assert.Equal(t, p, reloaded.Profile())
}

func TestNonProfileSlotsAreNotReconciled(t *testing.T) {
	backing, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	defer backing.Close()

	// a deliberately empty stored collection stays empty, defaults do not leak in
	require.NoError(t, backing.Put(storage.KeyAwards, []byte(`[]`)))

	s := New(backing, defaults.New())
	assert.Empty(t, s.Awards())
}

func TestSetSurfacesWriteFailure(t *testing.T) {
	backing, err := storage.Open(t.TempDir())
	require.NoError(t, err)

	s := New(backing, defaults.New())
	backing.Close()

	err = s.SetNews([]types.NewsItem{{ID: "news-9", Title: "unwritable"}})
	require.ErrorIs(t, err, storage.ErrUnavailable)

	// failed write leaves the in-memory value unchanged
	assert.Equal(t, defaults.News(), s.News())
}

func TestApplySnapshotIsSelective(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.Profile()

	newPubs := []types.Publication{
		{ID: "p1", Title: "Kept", Citations: 5},
		{ID: "p2", Title: "Added", Citations: 0},
	}
	require.NoError(t, s.ApplySnapshot(Staged{Publications: newPubs}))

	assert.Equal(t, newPubs, s.Publications())
	assert.Equal(t, before, s.Profile(), "entities absent from the snapshot stay untouched")
	assert.Equal(t, defaults.Timeline(), s.Timeline())
}

func TestApplySnapshotPersists(t *testing.T) {
	backing, err := storage.Open(t.TempDir())
	require.NoError(t, err)
	defer backing.Close()

	s := New(backing, defaults.New())
	gallery := []string{"/images/one.jpg"}
	require.NoError(t, s.ApplySnapshot(Staged{Gallery: gallery}))

	reloaded := New(backing, defaults.New())
	assert.Equal(t, gallery, reloaded.Gallery())
}

func TestResetRestoresDefaults(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.SetSkills(nil))
	require.NoError(t, s.SetAdminSecret("changed"))

	require.NoError(t, s.Reset(defaults.New()))
	assert.Equal(t, defaults.Skills(), s.Skills())
	assert.Equal(t, defaults.AdminSecret, s.AdminSecret())
}
