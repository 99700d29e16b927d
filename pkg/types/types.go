package types

import (
	"strconv"
	"time"
)

// Profile is the singleton record describing the site owner. The three
// nested configuration blocks are reconciled against schema defaults on
// load: a key present in the defaults is always present in the value
// handed to callers.
type Profile struct {
	Name          string         `json:"name"`
	Title         string         `json:"title"`
	Email         string         `json:"email"`
	Initials      string         `json:"initials"`
	Bio           string         `json:"bio"`
	PhotoURL      string         `json:"photoUrl"`
	Location      string         `json:"location"`
	SocialLinks   SocialLinks    `json:"socialLinks"`
	CustomSocials []CustomSocial `json:"customSocials"`

	SectionVisibility map[string]bool        `json:"sectionVisibility"`
	UISettings        map[string]any         `json:"uiSettings"`
	SectionText       map[string]SectionText `json:"sectionText"`
}

// SocialLinks holds the fixed set of social profile URLs.
type SocialLinks struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Scholar  string `json:"scholar"`
	Twitter  string `json:"twitter"`
	Website  string `json:"website"`
}

// CustomSocial is an owner-defined social link beyond the fixed set.
type CustomSocial struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
}

// SectionText carries the editable heading copy for one site section.
type SectionText struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Clone returns a deep copy of the profile. Loading and importing merge
// stored bytes over a copy, so the maps must never be shared with the
// source value.
func (p Profile) Clone() Profile {
	out := p

	out.SectionVisibility = make(map[string]bool, len(p.SectionVisibility))
	for k, v := range p.SectionVisibility {
		out.SectionVisibility[k] = v
	}

	out.UISettings = make(map[string]any, len(p.UISettings))
	for k, v := range p.UISettings {
		out.UISettings[k] = v
	}

	out.SectionText = make(map[string]SectionText, len(p.SectionText))
	for k, v := range p.SectionText {
		out.SectionText[k] = v
	}

	out.CustomSocials = make([]CustomSocial, len(p.CustomSocials))
	copy(out.CustomSocials, p.CustomSocials)

	return out
}

// TimelineItem is one entry in the career timeline.
type TimelineItem struct {
	ID           string `json:"id"`
	Year         string `json:"year"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Description  string `json:"description"`
}

// Project is one portfolio project.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Link        string   `json:"link"`
	ImageURL    string   `json:"imageUrl"`
	Featured    bool     `json:"featured"`
}

// Publication is one research publication. Citations is a display value
// refreshed best-effort from external citation services; the stored count
// is what gets rendered, nothing downstream depends on it.
type Publication struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Authors   string `json:"authors"`
	Venue     string `json:"venue"`
	Year      int    `json:"year"`
	DOI       string `json:"doi"`
	Link      string `json:"link"`
	Citations int    `json:"citations"`
	Abstract  string `json:"abstract"`
}

// Skill is one skill entry.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Level    int    `json:"level"` // 0-100
}

// BlogPost is one blog entry.
type BlogPost struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Date    string   `json:"date"`
	Summary string   `json:"summary"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// NewsItem is one news/announcement entry.
type NewsItem struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// Award is one honor or award entry.
type Award struct {
	ID           string `json:"id"`
	Year         string `json:"year"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Description  string `json:"description"`
}

// Resource is one shared resource (dataset, slides, code, reading).
type Resource struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

// PersonalDevItem is one personal development entry (courses,
// certifications, reading goals).
type PersonalDevItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Date     string `json:"date"`
	Notes    string `json:"notes"`
}

// Testimonial is one quote from a colleague or collaborator.
type Testimonial struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Text     string `json:"text"`
	PhotoURL string `json:"photoUrl"`
}

// Affiliation is one institutional affiliation or membership.
type Affiliation struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Period  string `json:"period"`
	Link    string `json:"link"`
	LogoURL string `json:"logoUrl"`
}

// NotificationKind classifies a notification for presentation.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyInfo    NotificationKind = "info"
)

// Notification is a transient user-visible message. At most one is
// pending at a time; it is never persisted.
type Notification struct {
	Message string           `json:"message"`
	Kind    NotificationKind `json:"kind"`
}

// Snapshot is the export wire format: a copy of every entity plus a
// version tag and creation timestamp. On the import path every entity
// field is optional; see the snapshot package.
type Snapshot struct {
	Profile      *Profile          `json:"profile,omitempty"`
	Timeline     []TimelineItem    `json:"timeline,omitempty"`
	Projects     []Project         `json:"projects,omitempty"`
	Publications []Publication     `json:"publications,omitempty"`
	Skills       []Skill           `json:"skills,omitempty"`
	Blogs        []BlogPost        `json:"blogs,omitempty"`
	News         []NewsItem        `json:"news,omitempty"`
	Awards       []Award           `json:"awards,omitempty"`
	Resources    []Resource        `json:"resources,omitempty"`
	Gallery      []string          `json:"gallery,omitempty"`
	PersonalDev  []PersonalDevItem `json:"personalDev,omitempty"`
	Testimonials []Testimonial     `json:"testimonials,omitempty"`
	Affiliations []Affiliation     `json:"affiliations,omitempty"`

	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// NewID returns an identifier for a record created at runtime. Seeded
// records use "<prefix>-<index>" identifiers; runtime records get a
// time-derived token that is unique within a single-writer store.
func NewID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 36)
}
