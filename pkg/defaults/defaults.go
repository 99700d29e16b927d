package defaults

import (
	"github.com/foliokit/folio/pkg/types"
)

// AdminSecret is the well-known initial admin secret. It is replaced
// through the auth gate once the owner logs in for the first time.
const AdminSecret = "admin123"

// Section keys used by sectionVisibility and sectionText. Adding a
// section means adding it here and to Profile() below; reconciliation
// then backfills it into every previously stored profile.
const (
	SectionAbout        = "about"
	SectionTimeline     = "timeline"
	SectionProjects     = "projects"
	SectionPublications = "publications"
	SectionSkills       = "skills"
	SectionBlogs        = "blog"
	SectionNews         = "news"
	SectionAwards       = "awards"
	SectionResources    = "resources"
	SectionGallery      = "gallery"
	SectionPersonalDev  = "personalDev"
	SectionTestimonials = "testimonials"
	SectionAffiliations = "affiliations"
)

// Registry holds the default value for every entity in the domain store.
// Loaded data is reconciled against these; a fresh store is seeded from
// them.
type Registry struct {
	AdminSecret  string
	Profile      types.Profile
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

// New returns the full defaults registry. Every call returns fresh
// values; mutating the result never affects a later call.
func New() Registry {
	return Registry{
		AdminSecret:  AdminSecret,
		Profile:      Profile(),
		Timeline:     Timeline(),
		Projects:     Projects(),
		Publications: Publications(),
		Skills:       Skills(),
		Blogs:        Blogs(),
		News:         News(),
		Awards:       Awards(),
		Resources:    Resources(),
		Gallery:      Gallery(),
		PersonalDev:  PersonalDev(),
		Testimonials: Testimonials(),
		Affiliations: Affiliations(),
	}
}

// Profile returns the default profile. Every section key has an entry in
// SectionVisibility and SectionText; reconciliation guarantees those keys
// survive into any loaded profile.
func Profile() types.Profile {
	return types.Profile{
		Name:     "Ada Researcher",
		Title:    "Assistant Professor of Computer Science",
		Email:    "ada@example.edu",
		Initials: "AR",
		Bio:      "I study distributed systems and teach programming.",
		PhotoURL: "/images/profile.jpg",
		Location: "Cambridge, MA",
		SocialLinks: types.SocialLinks{
			GitHub:   "https://github.com/ada",
			LinkedIn: "https://linkedin.com/in/ada",
			Scholar:  "https://scholar.google.com/citations?user=ada",
		},
		CustomSocials: []types.CustomSocial{},
		SectionVisibility: map[string]bool{
			SectionAbout:        true,
			SectionTimeline:     true,
			SectionProjects:     true,
			SectionPublications: true,
			SectionSkills:       true,
			SectionBlogs:        true,
			SectionNews:         true,
			SectionAwards:       true,
			SectionResources:    true,
			SectionGallery:      true,
			SectionPersonalDev:  false,
			SectionTestimonials: true,
			SectionAffiliations: true,
		},
		UISettings: map[string]any{
			"accentColor": "#0f62fe",
			"font":        "Inter",
			"density":     "comfortable",
			"animations":  true,
			"darkMode":    "system",
		},
		SectionText: map[string]types.SectionText{
			SectionAbout:        {Title: "About", Description: "Who I am and what I work on"},
			SectionTimeline:     {Title: "Timeline", Description: "Career milestones"},
			SectionProjects:     {Title: "Projects", Description: "Selected work"},
			SectionPublications: {Title: "Publications", Description: "Peer-reviewed research"},
			SectionSkills:       {Title: "Skills", Description: "Tools and topics"},
			SectionBlogs:        {Title: "Blog", Description: "Occasional writing"},
			SectionNews:         {Title: "News", Description: "Recent announcements"},
			SectionAwards:       {Title: "Awards", Description: "Honors and recognition"},
			SectionResources:    {Title: "Resources", Description: "Datasets, slides and code"},
			SectionGallery:      {Title: "Gallery", Description: "Photos from talks and travel"},
			SectionPersonalDev:  {Title: "Learning", Description: "Courses and certifications"},
			SectionTestimonials: {Title: "Testimonials", Description: "Kind words from collaborators"},
			SectionAffiliations: {Title: "Affiliations", Description: "Institutions and memberships"},
		},
	}
}

// Timeline returns the seeded career timeline.
func Timeline() []types.TimelineItem {
	return []types.TimelineItem{
		{ID: "timeline-1", Year: "2021", Title: "Assistant Professor", Organization: "Example University", Description: "Joined the systems group."},
		{ID: "timeline-2", Year: "2017", Title: "PhD in Computer Science", Organization: "Example Institute", Description: "Thesis on consistency in edge storage."},
	}
}

// Projects returns the seeded project list.
func Projects() []types.Project {
	return []types.Project{
		{ID: "project-1", Title: "EdgeStore", Description: "A reconciling key-value store for intermittently connected devices.", Tags: []string{"storage", "go"}, Link: "https://github.com/ada/edgestore", Featured: true},
		{ID: "project-2", Title: "Syllabus Builder", Description: "Course planning tooling for teaching staff.", Tags: []string{"teaching"}, Link: "https://github.com/ada/syllabus"},
	}
}

// Publications returns the seeded publication list.
func Publications() []types.Publication {
	return []types.Publication{
		{ID: "pub-1", Title: "Reconciling Stale Replicas Without Coordination", Authors: "A. Researcher, B. Colleague", Venue: "SOSP", Year: 2023, DOI: "10.1000/182", Citations: 42},
		{ID: "pub-2", Title: "Schema Evolution for Offline-First Applications", Authors: "A. Researcher", Venue: "VLDB", Year: 2021, DOI: "10.1000/183", Citations: 17},
	}
}

// Skills returns the seeded skill list.
func Skills() []types.Skill {
	return []types.Skill{
		{ID: "skill-1", Name: "Distributed Systems", Category: "Research", Level: 95},
		{ID: "skill-2", Name: "Go", Category: "Engineering", Level: 90},
		{ID: "skill-3", Name: "Technical Writing", Category: "Communication", Level: 80},
	}
}

// Blogs returns the seeded blog posts.
func Blogs() []types.BlogPost {
	return []types.BlogPost{
		{ID: "blog-1", Title: "Why Your Backup Format Should Be Boring", Date: "2024-03-02", Summary: "Partial backups, forward compatibility, and the case for plain JSON.", Tags: []string{"storage"}},
	}
}

// News returns the seeded news items.
func News() []types.NewsItem {
	return []types.NewsItem{
		{ID: "news-1", Date: "2024-05-10", Title: "Paper accepted at SOSP", Description: "Our replica reconciliation work was accepted."},
	}
}

// Awards returns the seeded awards.
func Awards() []types.Award {
	return []types.Award{
		{ID: "award-1", Year: "2023", Title: "Distinguished Paper Award", Organization: "SOSP"},
	}
}

// Resources returns the seeded resources.
func Resources() []types.Resource {
	return []types.Resource{
		{ID: "resource-1", Title: "Edge consistency benchmark suite", Type: "dataset", Link: "https://example.edu/bench"},
	}
}

// Gallery returns the seeded gallery image URLs.
func Gallery() []string {
	return []string{"/images/gallery/keynote.jpg", "/images/gallery/lab.jpg"}
}

// PersonalDev returns the seeded personal development items.
func PersonalDev() []types.PersonalDevItem {
	return []types.PersonalDevItem{
		{ID: "dev-1", Title: "Rust for Systems Programmers", Category: "course", Status: "in-progress", Date: "2024-01-15"},
	}
}

// Testimonials returns the seeded testimonials.
func Testimonials() []types.Testimonial {
	return []types.Testimonial{
		{ID: "testimonial-1", Name: "B. Colleague", Role: "Professor, Example Institute", Text: "A rigorous and generous collaborator."},
	}
}

// Affiliations returns the seeded affiliations.
func Affiliations() []types.Affiliation {
	return []types.Affiliation{
		{ID: "affiliation-1", Name: "ACM", Role: "Member", Period: "2017-present", Link: "https://acm.org"},
	}
}
