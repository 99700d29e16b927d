package storage

import (
	"bytes"
	"errors"
	"testing"
)

func openTestBacking(t *testing.T) *Backing {
	t.Helper()
	b, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b
}

// TestGetMissingKey tests that a never-written key reads as nil, nil
func TestGetMissingKey(t *testing.T) {
	b := openTestBacking(t)

	raw, err := b.Get(KeyProfile)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if raw != nil {
		t.Errorf("Get() = %q, want nil", raw)
	}
}

// TestPutGetRoundTrip tests basic write/read across keys
func TestPutGetRoundTrip(t *testing.T) {
	b := openTestBacking(t)

	tests := []struct {
		key   string
		value []byte
	}{
		{KeyProfile, []byte(`{"name":"Ada"}`)},
		{KeyPublications, []byte(`[{"id":"pub-1"}]`)},
		{KeyAdminSecret, []byte(`"s3cret"`)},
		{KeyGallery, []byte(`[]`)},
	}

	for _, tt := range tests {
		if err := b.Put(tt.key, tt.value); err != nil {
			t.Fatalf("Put(%s) error: %v", tt.key, err)
		}
	}

	for _, tt := range tests {
		got, err := b.Get(tt.key)
		if err != nil {
			t.Fatalf("Get(%s) error: %v", tt.key, err)
		}
		if !bytes.Equal(got, tt.value) {
			t.Errorf("Get(%s) = %q, want %q", tt.key, got, tt.value)
		}
	}
}

// TestPutOverwrites tests that the last write wins
func TestPutOverwrites(t *testing.T) {
	b := openTestBacking(t)

	if err := b.Put(KeyNews, []byte(`[1]`)); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	if err := b.Put(KeyNews, []byte(`[2]`)); err != nil {
		t.Fatalf("Put() error: %v", err)
	}

	got, err := b.Get(KeyNews)
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if string(got) != `[2]` {
		t.Errorf("Get() = %q, want [2]", got)
	}
}

// TestPutAllAtomic tests that PutAll lands every key
func TestPutAllAtomic(t *testing.T) {
	b := openTestBacking(t)

	values := map[string][]byte{
		KeyTimeline: []byte(`[{"id":"timeline-1"}]`),
		KeySkills:   []byte(`[{"id":"skill-1"}]`),
		KeyAwards:   []byte(`[]`),
	}
	if err := b.PutAll(values); err != nil {
		t.Fatalf("PutAll() error: %v", err)
	}

	for key, want := range values {
		got, err := b.Get(key)
		if err != nil {
			t.Fatalf("Get(%s) error: %v", key, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("Get(%s) = %q, want %q", key, got, want)
		}
	}
}

// TestClosedBackingSurfacesErrUnavailable tests the error sentinel
func TestClosedBackingSurfacesErrUnavailable(t *testing.T) {
	b, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	b.Close()

	if err := b.Put(KeyProfile, []byte(`{}`)); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Put() after Close = %v, want ErrUnavailable", err)
	}
	if _, err := b.Get(KeyProfile); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Get() after Close = %v, want ErrUnavailable", err)
	}
}

// TestKeysCoverEveryEntity tests the key registry size
func TestKeysCoverEveryEntity(t *testing.T) {
	if len(Keys) != 14 {
		t.Errorf("len(Keys) = %d, want 14", len(Keys))
	}
	seen := make(map[string]bool)
	for _, k := range Keys {
		if seen[k] {
			t.Errorf("duplicate key %q", k)
		}
		seen[k] = true
	}
}
