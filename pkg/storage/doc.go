/*
Package storage provides the BoltDB-backed durable key-value surface for
Folio's content store.

Every entity slot in the domain store owns exactly one fixed string key in a
single bucket, with the full entity value serialized as one JSON document.
There is no per-record keying: a collection is read and written whole, which
matches the access pattern of a single-owner content site and keeps slot
writes trivially isolated from one another.

# Architecture

	┌──────────────────── BOLTDB BACKING ─────────────────────┐
	│                                                          │
	│  ┌───────────────────────────────────────────┐          │
	│  │             Backing                        │          │
	│  │  - File: <dataDir>/folio.db                │          │
	│  │  - One bucket: "content"                   │          │
	│  │  - One JSON value per fixed key            │          │
	│  └──────────────────┬────────────────────────┘          │
	│                     │                                    │
	│  ┌──────────────────▼────────────────────────┐          │
	│  │              Key Layout                    │          │
	│  │  admin_password_key   profile_data         │          │
	│  │  timeline_data        projects_data        │          │
	│  │  publications_data    skills_data          │          │
	│  │  blogs_data           news_data            │          │
	│  │  awards_data          resources_data       │          │
	│  │  gallery_data         personal_dev_data    │          │
	│  │  testimonials_data    affiliations_data    │          │
	│  └──────────────────┬────────────────────────┘          │
	│                     │                                    │
	│  ┌──────────────────▼────────────────────────┐          │
	│  │        Transaction Management              │          │
	│  │  - Get:    db.View(), value copied out     │          │
	│  │  - Put:    db.Update(), one key            │          │
	│  │  - PutAll: db.Update(), all-or-nothing     │          │
	│  └───────────────────────────────────────────┘          │
	│                                                          │
	└──────────────────────────────────────────────────────────┘

# Error Handling

All database failures are wrapped in ErrUnavailable so callers can branch on
a single sentinel regardless of the underlying cause (disk full, closed
database, I/O error). A Get of a never-written key returns (nil, nil); absent
is not an error, it means "fall back to defaults" one layer up.

# Usage Example

	backing, err := storage.Open("/var/lib/folio")
	if err != nil {
		return err
	}
	defer backing.Close()

	raw, err := backing.Get(storage.KeyProfile)
	if err != nil {
		return err
	}
	if raw == nil {
		// first run, no persisted profile yet
	}
*/
package storage
