package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/foliokit/folio/pkg/log"
	"github.com/foliokit/folio/pkg/metrics"
	"github.com/foliokit/folio/pkg/notify"
	"github.com/foliokit/folio/pkg/store"
	"github.com/foliokit/folio/pkg/types"
	"github.com/rs/zerolog"
)

// Version is the snapshot document version tag stamped on exports.
const Version = "1.0"

// ErrMalformed marks an import document that could not be parsed. The
// store is guaranteed untouched when Import returns it.
var ErrMalformed = errors.New("malformed snapshot")

// document is the import-side view of the wire format. The profile stays
// raw so its nested blocks can be merged key by key against the current
// profile; collections decode directly, with nil meaning "absent, leave
// the store value alone".
type document struct {
	Profile      json.RawMessage         `json:"profile"`
	AdminSecret  *string                 `json:"adminSecret"`
	Timeline     []types.TimelineItem    `json:"timeline"`
	Projects     []types.Project         `json:"projects"`
	Publications []types.Publication     `json:"publications"`
	Skills       []types.Skill           `json:"skills"`
	Blogs        []types.BlogPost        `json:"blogs"`
	News         []types.NewsItem        `json:"news"`
	Awards       []types.Award           `json:"awards"`
	Resources    []types.Resource        `json:"resources"`
	Gallery      []string                `json:"gallery"`
	PersonalDev  []types.PersonalDevItem `json:"personalDev"`
	Testimonials []types.Testimonial     `json:"testimonials"`
	Affiliations []types.Affiliation     `json:"affiliations"`
}

// Manager serializes the whole store to a snapshot document and restores
// one back, merge-safely.
type Manager struct {
	store  *store.Store
	bus    *notify.Bus
	logger zerolog.Logger
}

// NewManager creates a snapshot manager over the given store.
func NewManager(s *store.Store, bus *notify.Bus) *Manager {
	return &Manager{
		store:  s,
		bus:    bus,
		logger: log.WithComponent("snapshot"),
	}
}

// Export returns a document containing a copy of every entity, stamped
// with the version tag and the creation time.
func (m *Manager) Export() types.Snapshot {
	profile := m.store.Profile()

	doc := types.Snapshot{
		Profile:      &profile,
		Timeline:     m.store.Timeline(),
		Projects:     m.store.Projects(),
		Publications: m.store.Publications(),
		Skills:       m.store.Skills(),
		Blogs:        m.store.Blogs(),
		News:         m.store.News(),
		Awards:       m.store.Awards(),
		Resources:    m.store.Resources(),
		Gallery:      m.store.Gallery(),
		PersonalDev:  m.store.PersonalDev(),
		Testimonials: m.store.Testimonials(),
		Affiliations: m.store.Affiliations(),
		Version:      Version,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}

	metrics.SnapshotExports.Inc()
	m.bus.Success("Backup exported")
	m.logger.Info().Msg("snapshot exported")
	return doc
}

// Import restores raw into the store. Parsing is all-or-nothing: on any
// decode failure the store is left exactly as it was and ErrMalformed is
// returned. On success every entity present in the document overwrites
// its store slot in one atomic commit; absent entities stay untouched,
// and a present profile is merged block by block against the current
// profile so a partial backup never erases unrelated configuration.
func (m *Manager) Import(raw []byte) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return m.reject(fmt.Errorf("%w: top level is not an object", ErrMalformed))
	}

	var doc document
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return m.reject(fmt.Errorf("%w: %v", ErrMalformed, err))
	}

	staged := store.Staged{
		AdminSecret:  doc.AdminSecret,
		Timeline:     doc.Timeline,
		Projects:     doc.Projects,
		Publications: doc.Publications,
		Skills:       doc.Skills,
		Blogs:        doc.Blogs,
		News:         doc.News,
		Awards:       doc.Awards,
		Resources:    doc.Resources,
		Gallery:      doc.Gallery,
		PersonalDev:  doc.PersonalDev,
		Testimonials: doc.Testimonials,
		Affiliations: doc.Affiliations,
	}

	if present(doc.Profile) {
		merged, err := store.ReconcileProfile(m.store.Profile(), doc.Profile)
		if err != nil {
			return m.reject(fmt.Errorf("%w: %v", ErrMalformed, err))
		}
		staged.Profile = &merged
	}

	if err := m.store.ApplySnapshot(staged); err != nil {
		metrics.SnapshotImports.WithLabelValues("failure").Inc()
		m.bus.Error("Backup restore failed: could not write to storage")
		return err
	}

	metrics.SnapshotImports.WithLabelValues("success").Inc()
	m.bus.Success("Backup restored")
	m.logger.Info().Msg("snapshot imported")
	return nil
}

// reject records a parse failure without mutating anything.
func (m *Manager) reject(err error) error {
	metrics.SnapshotImports.WithLabelValues("malformed").Inc()
	m.bus.Error("Backup restore failed: invalid backup file")
	m.logger.Warn().Err(err).Msg("snapshot rejected")
	return err
}

// present reports whether a raw JSON field carries a value. JSON null
// counts as absent.
func present(raw json.RawMessage) bool {
	return len(raw) > 0 && !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
