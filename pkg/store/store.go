package store

import (
	"encoding/json"
	"fmt"

	"github.com/foliokit/folio/pkg/defaults"
	"github.com/foliokit/folio/pkg/log"
	"github.com/foliokit/folio/pkg/metrics"
	"github.com/foliokit/folio/pkg/storage"
	"github.com/foliokit/folio/pkg/types"
	"github.com/rs/zerolog"
)

// Store composes one sticky slot per entity and exposes typed accessors.
// It is constructed once at startup and passed by reference; there is no
// package-level instance. Setters take a full replacement value; partial
// updates are the caller's job (map over the collection, replace the one
// record, set the result).
type Store struct {
	backing        *storage.Backing
	logger         zerolog.Logger
	defaultProfile types.Profile

	profile      *Slot[types.Profile]
	adminSecret  *Slot[string]
	timeline     *Slot[[]types.TimelineItem]
	projects     *Slot[[]types.Project]
	publications *Slot[[]types.Publication]
	skills       *Slot[[]types.Skill]
	blogs        *Slot[[]types.BlogPost]
	news         *Slot[[]types.NewsItem]
	awards       *Slot[[]types.Award]
	resources    *Slot[[]types.Resource]
	gallery      *Slot[[]string]
	personalDev  *Slot[[]types.PersonalDevItem]
	testimonials *Slot[[]types.Testimonial]
	affiliations *Slot[[]types.Affiliation]
}

// New builds the domain store on top of backing, loading every slot and
// reconciling stored values against reg. A fresh backing yields a store
// populated from the defaults without writing anything.
func New(backing *storage.Backing, reg defaults.Registry) *Store {
	logger := log.WithComponent("store")

	defProfile := reg.Profile
	s := &Store{backing: backing, logger: logger, defaultProfile: defProfile.Clone()}

	s.profile = newSlot(backing, storage.KeyProfile, reg.Profile, func(raw []byte) (types.Profile, error) {
		return ReconcileProfile(defProfile, raw)
	})
	s.adminSecret = newSlot(backing, storage.KeyAdminSecret, reg.AdminSecret,
		jsonDecoder[string](storage.KeyAdminSecret))
	s.timeline = newSlot(backing, storage.KeyTimeline, reg.Timeline,
		jsonDecoder[[]types.TimelineItem](storage.KeyTimeline))
	s.projects = newSlot(backing, storage.KeyProjects, reg.Projects,
		jsonDecoder[[]types.Project](storage.KeyProjects))
	s.publications = newSlot(backing, storage.KeyPublications, reg.Publications,
		jsonDecoder[[]types.Publication](storage.KeyPublications))
	s.skills = newSlot(backing, storage.KeySkills, reg.Skills,
		jsonDecoder[[]types.Skill](storage.KeySkills))
	s.blogs = newSlot(backing, storage.KeyBlogs, reg.Blogs,
		jsonDecoder[[]types.BlogPost](storage.KeyBlogs))
	s.news = newSlot(backing, storage.KeyNews, reg.News,
		jsonDecoder[[]types.NewsItem](storage.KeyNews))
	s.awards = newSlot(backing, storage.KeyAwards, reg.Awards,
		jsonDecoder[[]types.Award](storage.KeyAwards))
	s.resources = newSlot(backing, storage.KeyResources, reg.Resources,
		jsonDecoder[[]types.Resource](storage.KeyResources))
	s.gallery = newSlot(backing, storage.KeyGallery, reg.Gallery,
		jsonDecoder[[]string](storage.KeyGallery))
	s.personalDev = newSlot(backing, storage.KeyPersonalDev, reg.PersonalDev,
		jsonDecoder[[]types.PersonalDevItem](storage.KeyPersonalDev))
	s.testimonials = newSlot(backing, storage.KeyTestimonials, reg.Testimonials,
		jsonDecoder[[]types.Testimonial](storage.KeyTestimonials))
	s.affiliations = newSlot(backing, storage.KeyAffiliations, reg.Affiliations,
		jsonDecoder[[]types.Affiliation](storage.KeyAffiliations))

	return s
}

// Profile returns the current profile. Every nested configuration key
// present in the schema defaults is present in the returned value.
func (s *Store) Profile() types.Profile { return s.profile.Get() }

// SetProfile replaces the profile. The value is normalized before it is
// persisted: nested configuration keys absent from p are backfilled from
// the schema defaults, so the stored bytes and the in-memory value always
// satisfy the same guarantee the load path gives.
func (s *Store) SetProfile(p types.Profile) error {
	p = p.Clone()
	fillProfileDefaults(&p, s.defaultProfile)
	return s.profile.Set(p)
}

// AdminSecret returns the current admin secret.
func (s *Store) AdminSecret() string { return s.adminSecret.Get() }

// SetAdminSecret replaces the admin secret.
func (s *Store) SetAdminSecret(secret string) error { return s.adminSecret.Set(secret) }

func (s *Store) Timeline() []types.TimelineItem { return s.timeline.Get() }
func (s *Store) SetTimeline(v []types.TimelineItem) error { return s.timeline.Set(v) }

func (s *Store) Projects() []types.Project { return s.projects.Get() }
func (s *Store) SetProjects(v []types.Project) error { return s.projects.Set(v) }

func (s *Store) Publications() []types.Publication { return s.publications.Get() }
func (s *Store) SetPublications(v []types.Publication) error { return s.publications.Set(v) }

func (s *Store) Skills() []types.Skill { return s.skills.Get() }
func (s *Store) SetSkills(v []types.Skill) error { return s.skills.Set(v) }

func (s *Store) Blogs() []types.BlogPost { return s.blogs.Get() }
func (s *Store) SetBlogs(v []types.BlogPost) error { return s.blogs.Set(v) }

func (s *Store) News() []types.NewsItem { return s.news.Get() }
func (s *Store) SetNews(v []types.NewsItem) error { return s.news.Set(v) }

func (s *Store) Awards() []types.Award { return s.awards.Get() }
func (s *Store) SetAwards(v []types.Award) error { return s.awards.Set(v) }

func (s *Store) Resources() []types.Resource { return s.resources.Get() }
func (s *Store) SetResources(v []types.Resource) error { return s.resources.Set(v) }

func (s *Store) Gallery() []string { return s.gallery.Get() }
func (s *Store) SetGallery(v []string) error { return s.gallery.Set(v) }

func (s *Store) PersonalDev() []types.PersonalDevItem { return s.personalDev.Get() }
func (s *Store) SetPersonalDev(v []types.PersonalDevItem) error { return s.personalDev.Set(v) }

func (s *Store) Testimonials() []types.Testimonial { return s.testimonials.Get() }
func (s *Store) SetTestimonials(v []types.Testimonial) error { return s.testimonials.Set(v) }

func (s *Store) Affiliations() []types.Affiliation { return s.affiliations.Get() }
func (s *Store) SetAffiliations(v []types.Affiliation) error { return s.affiliations.Set(v) }

// Staged holds the entity values computed for a snapshot import. A nil
// field means the document did not mention that entity and the current
// value is kept. Collections decoded from an explicit empty array are
// non-nil and do overwrite.
type Staged struct {
	Profile      *types.Profile
	AdminSecret  *string
	Timeline     []types.TimelineItem
	Projects     []types.Project
	Publications []types.Publication
	Skills       []types.Skill
	Blogs        []types.BlogPost
	News         []types.NewsItem
	Awards       []types.Award
	Resources    []types.Resource
	Gallery      []string
	PersonalDev  []types.PersonalDevItem
	Testimonials []types.Testimonial
	Affiliations []types.Affiliation
}

// ApplySnapshot commits every staged entity in one backing transaction,
// then swaps the in-memory slot values. Either the whole snapshot becomes
// durable or none of it does; a crash mid-import cannot leave the store
// half-applied.
func (s *Store) ApplySnapshot(st Staged) error {
	values := make(map[string][]byte)

	stage := func(key string, v any) error {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		values[key] = raw
		return nil
	}

	if st.Profile != nil {
		if err := stage(storage.KeyProfile, st.Profile); err != nil {
			return err
		}
	}
	if st.AdminSecret != nil {
		if err := stage(storage.KeyAdminSecret, st.AdminSecret); err != nil {
			return err
		}
	}
	if st.Timeline != nil {
		if err := stage(storage.KeyTimeline, st.Timeline); err != nil {
			return err
		}
	}
	if st.Projects != nil {
		if err := stage(storage.KeyProjects, st.Projects); err != nil {
			return err
		}
	}
	if st.Publications != nil {
		if err := stage(storage.KeyPublications, st.Publications); err != nil {
			return err
		}
	}
	if st.Skills != nil {
		if err := stage(storage.KeySkills, st.Skills); err != nil {
			return err
		}
	}
	if st.Blogs != nil {
		if err := stage(storage.KeyBlogs, st.Blogs); err != nil {
			return err
		}
	}
	if st.News != nil {
		if err := stage(storage.KeyNews, st.News); err != nil {
			return err
		}
	}
	if st.Awards != nil {
		if err := stage(storage.KeyAwards, st.Awards); err != nil {
			return err
		}
	}
	if st.Resources != nil {
		if err := stage(storage.KeyResources, st.Resources); err != nil {
			return err
		}
	}
	if st.Gallery != nil {
		if err := stage(storage.KeyGallery, st.Gallery); err != nil {
			return err
		}
	}
	if st.PersonalDev != nil {
		if err := stage(storage.KeyPersonalDev, st.PersonalDev); err != nil {
			return err
		}
	}
	if st.Testimonials != nil {
		if err := stage(storage.KeyTestimonials, st.Testimonials); err != nil {
			return err
		}
	}
	if st.Affiliations != nil {
		if err := stage(storage.KeyAffiliations, st.Affiliations); err != nil {
			return err
		}
	}

	if len(values) == 0 {
		return nil
	}

	if err := s.backing.PutAll(values); err != nil {
		return err
	}

	// Durable now; swap slot memory so every consumer observes the new
	// state without a reload.
	if st.Profile != nil {
		s.profile.restore(*st.Profile)
	}
	if st.AdminSecret != nil {
		s.adminSecret.restore(*st.AdminSecret)
	}
	if st.Timeline != nil {
		s.timeline.restore(st.Timeline)
	}
	if st.Projects != nil {
		s.projects.restore(st.Projects)
	}
	if st.Publications != nil {
		s.publications.restore(st.Publications)
	}
	if st.Skills != nil {
		s.skills.restore(st.Skills)
	}
	if st.Blogs != nil {
		s.blogs.restore(st.Blogs)
	}
	if st.News != nil {
		s.news.restore(st.News)
	}
	if st.Awards != nil {
		s.awards.restore(st.Awards)
	}
	if st.Resources != nil {
		s.resources.restore(st.Resources)
	}
	if st.Gallery != nil {
		s.gallery.restore(st.Gallery)
	}
	if st.PersonalDev != nil {
		s.personalDev.restore(st.PersonalDev)
	}
	if st.Testimonials != nil {
		s.testimonials.restore(st.Testimonials)
	}
	if st.Affiliations != nil {
		s.affiliations.restore(st.Affiliations)
	}

	for key := range values {
		metrics.StoreWrites.WithLabelValues(key).Inc()
	}
	s.logger.Info().Int("entities", len(values)).Msg("snapshot applied")
	return nil
}

// Reset writes the defaults from reg back into every slot. Durable keys
// are overwritten, never removed.
func (s *Store) Reset(reg defaults.Registry) error {
	secret := reg.AdminSecret
	return s.ApplySnapshot(Staged{
		Profile:      &reg.Profile,
		AdminSecret:  &secret,
		Timeline:     reg.Timeline,
		Projects:     reg.Projects,
		Publications: reg.Publications,
		Skills:       reg.Skills,
		Blogs:        reg.Blogs,
		News:         reg.News,
		Awards:       reg.Awards,
		Resources:    reg.Resources,
		Gallery:      reg.Gallery,
		PersonalDev:  reg.PersonalDev,
		Testimonials: reg.Testimonials,
		Affiliations: reg.Affiliations,
	})
}
