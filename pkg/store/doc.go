/*
Package store implements Folio's domain store: one sticky slot per entity,
composed behind typed accessors.

A slot binds one entity to one durable key. At startup it reads the stored
bytes and reconciles them against the schema defaults; on every mutation it
re-persists the full value synchronously. N mutations produce N durable
writes; there is no batching or debounce.

# Architecture

	┌───────────────────── DOMAIN STORE ──────────────────────┐
	│                                                          │
	│   typed accessors: Profile()/SetProfile(), Skills()/...  │
	│                          │                               │
	│  ┌───────────────────────▼───────────────────────┐      │
	│  │          Slot[T]  (one per entity)             │      │
	│  │  load:  Get key → decode → reconcile/defaults  │      │
	│  │  set:   encode → Put key → swap memory         │      │
	│  │  get:   in-memory value under RLock            │      │
	│  └───────────────────────┬───────────────────────┘      │
	│                          │                               │
	│                 storage.Backing (bbolt)                  │
	│                                                          │
	└──────────────────────────────────────────────────────────┘

# Reconciliation

Only the profile slot reconciles: stored bytes are merged over the default
profile, and the three nested configuration blocks (sectionVisibility,
uiSettings, sectionText) are merged key by key so that a key introduced by a
newer build is always present in the value handed to callers, while every
key the stored bytes do carry wins. The other collections are
self-describing arrays of records and decode as-is.

# Failure Semantics

Load failures (missing key, corrupt bytes, unreadable backing) recover to
defaults with a warning log; nothing is written back and nothing propagates.
Write failures surface to the caller as storage.ErrUnavailable-wrapped
errors with the in-memory value left unchanged.

ApplySnapshot commits a staged set of entity values in one backing
transaction, then swaps slot memory. It is the commit half of snapshot
import; see the snapshot package.
*/
package store
