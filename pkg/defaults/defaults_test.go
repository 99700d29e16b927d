package defaults

import "testing"

// TestRegistryIsFresh tests that New returns independent values per call
func TestRegistryIsFresh(t *testing.T) {
	a := New()
	b := New()

	a.Profile.SectionVisibility[SectionBlogs] = false
	if !b.Profile.SectionVisibility[SectionBlogs] {
		t.Error("mutating one registry leaked into another")
	}

	a.Publications[0].Citations = 999
	if b.Publications[0].Citations == 999 {
		t.Error("mutating one registry's publications leaked into another")
	}
}

// TestProfileCoversEverySection tests the section-key invariant
func TestProfileCoversEverySection(t *testing.T) {
	sections := []string{
		SectionAbout, SectionTimeline, SectionProjects, SectionPublications,
		SectionSkills, SectionBlogs, SectionNews, SectionAwards,
		SectionResources, SectionGallery, SectionPersonalDev,
		SectionTestimonials, SectionAffiliations,
	}

	p := Profile()
	for _, s := range sections {
		if _, ok := p.SectionVisibility[s]; !ok {
			t.Errorf("SectionVisibility missing key %q", s)
		}
		txt, ok := p.SectionText[s]
		if !ok {
			t.Errorf("SectionText missing key %q", s)
			continue
		}
		if txt.Title == "" {
			t.Errorf("SectionText[%q] has empty title", s)
		}
	}
}

// TestSeededIDsAreStable tests the "<prefix>-<index>" convention
func TestSeededIDsAreStable(t *testing.T) {
	if got := Timeline()[0].ID; got != "timeline-1" {
		t.Errorf("Timeline()[0].ID = %q, want timeline-1", got)
	}
	if got := Publications()[1].ID; got != "pub-2" {
		t.Errorf("Publications()[1].ID = %q, want pub-2", got)
	}
}

// TestCustomSocialsDefaultsEmpty tests that CustomSocials is non-nil
func TestCustomSocialsDefaultsEmpty(t *testing.T) {
	p := Profile()
	if p.CustomSocials == nil {
		t.Error("CustomSocials should default to an empty slice, not nil")
	}
	if len(p.CustomSocials) != 0 {
		t.Errorf("CustomSocials should be empty, got %d entries", len(p.CustomSocials))
	}
}
