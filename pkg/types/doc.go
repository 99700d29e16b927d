/*
Package types defines the core data structures shared across Folio components.

This package contains the domain model for the content store: the singleton
Profile record, the twelve ordered content collections (timeline, projects,
publications, skills, blogs, news, awards, resources, gallery, personal
development, testimonials, affiliations), the Snapshot export/import wire
format, and the transient Notification type.

# Design Principles

  - Pure data: No business logic, only type definitions and deep-copy helpers
  - JSON-stable: Field tags match the persisted layout and the snapshot wire
    format, so stored bytes from older backups keep decoding
  - Stable identifiers: A record ID is assigned once at creation and never
    reused; seeded records carry "<prefix>-<index>" IDs, runtime records a
    time-derived token from NewID

# Usage Example

	p := types.Profile{Name: "Ada Lovelace", Email: "ada@example.org"}
	copy := p.Clone() // safe to mutate independently

	item := types.NewsItem{ID: types.NewID(), Title: "New preprint"}
*/
package types
