package specjson

import (
	"slices"
	"strings"
)

// Section names a top-level key of GeneratedSpec.
type Section string

const (
	SectionHero         Section = "hero"
	SectionBenefits     Section = "benefits"
	SectionFeatures     Section = "features"
	SectionAbout        Section = "about"
	SectionTestimonials Section = "testimonials"
	SectionStats        Section = "stats"
	SectionFAQ          Section = "faq"
	SectionCTA          Section = "cta"
	SectionLogo         Section = "logo"
	SectionPalette      Section = "palette"
	SectionDesign       Section = "design"
)

// Sections lists every known section in output order.
var Sections = []Section{
	SectionHero,
	SectionBenefits,
	SectionFeatures,
	SectionAbout,
	SectionTestimonials,
	SectionStats,
	SectionFAQ,
	SectionCTA,
	SectionLogo,
	SectionPalette,
	SectionDesign,
}

// ParseSection maps a raw name onto a known section.
func ParseSection(name string) (Section, bool) {
	s := Section(strings.ToLower(strings.TrimSpace(name)))
	if slices.Contains(Sections, s) {
		return s, true
	}
	return "", false
}

// SectionSet is an unordered set of sections.
type SectionSet map[Section]struct{}

// NewSectionSet builds a set from the given sections.
func NewSectionSet(sections ...Section) SectionSet {
	set := make(SectionSet, len(sections))
	for _, s := range sections {
		set[s] = struct{}{}
	}
	return set
}

func (s SectionSet) Has(section Section) bool {
	_, ok := s[section]
	return ok
}

// Intersect returns the sections present in both sets, in output order.
func (s SectionSet) Intersect(other SectionSet) []Section {
	var out []Section
	for _, section := range Sections {
		if s.Has(section) && other.Has(section) {
			out = append(out, section)
		}
	}
	return out
}

// Sorted returns the known sections of the set in output order.
func (s SectionSet) Sorted() []Section {
	var out []Section
	for _, section := range Sections {
		if s.Has(section) {
			out = append(out, section)
		}
	}
	return out
}
