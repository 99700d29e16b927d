package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/foliokit/folio/pkg/log"
	"github.com/foliokit/folio/pkg/metrics"
	"github.com/foliokit/folio/pkg/storage"
)

// decoder turns stored bytes into a slot value, applying whatever
// reconciliation the entity needs.
type decoder[T any] func(raw []byte) (T, error)

// Slot binds one entity to its durable key. It loads a default-merged
// value at construction and re-persists the full value on every change.
// Each slot owns exactly one key in the backing; no two slots share one.
type Slot[T any] struct {
	key     string
	backing *storage.Backing

	mu    sync.RWMutex
	value T
}

// newSlot loads the slot's current value from the backing. Missing or
// unparsable bytes fall back to def without writing anything back.
func newSlot[T any](backing *storage.Backing, key string, def T, decode decoder[T]) *Slot[T] {
	s := &Slot[T]{key: key, backing: backing, value: def}
	logger := log.WithEntity(key)

	raw, err := backing.Get(key)
	if err != nil {
		logger.Warn().Err(err).Msg("backing unreadable, using defaults")
		metrics.SlotRecoveries.WithLabelValues(key).Inc()
		return s
	}
	if raw == nil {
		// first run, nothing persisted yet
		return s
	}

	v, err := decode(raw)
	if err != nil {
		logger.Warn().Err(err).Msg("stored bytes unparsable, using defaults")
		metrics.SlotRecoveries.WithLabelValues(key).Inc()
		return s
	}
	s.value = v
	return s
}

// jsonDecoder decodes stored bytes as-is, with no reconciliation. The
// non-profile collections are self-describing arrays of records.
func jsonDecoder[T any](key string) decoder[T] {
	return func(raw []byte) (T, error) {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			var zero T
			return zero, fmt.Errorf("decode %s: %w", key, err)
		}
		return v, nil
	}
}

// Get returns the slot's current in-memory value.
func (s *Slot[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set persists v under the slot's key, then updates the in-memory value.
// On a write failure the in-memory value is left unchanged and the error
// is returned to the caller.
func (s *Slot[T]) Set(v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backing.Put(s.key, raw); err != nil {
		metrics.StoreWriteFailures.WithLabelValues(s.key).Inc()
		return err
	}
	s.value = v
	metrics.StoreWrites.WithLabelValues(s.key).Inc()
	return nil
}

// restore swaps the in-memory value without touching the backing. The
// snapshot import uses it after its atomic commit has already made the
// new values durable.
func (s *Slot[T]) restore(v T) {
	s.mu.Lock()
	s.value = v
	s.mu.Unlock()
}

// Key returns the slot's durable key.
func (s *Slot[T]) Key() string {
	return s.key
}
