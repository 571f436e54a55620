package specjson

import "slices"

// GeneratedSpec is the content and design payload produced by the model.
// Bounds live in the validate tags and are mirrored by Limits.
type GeneratedSpec struct {
	Hero         *Hero         `json:"hero" validate:"required"`
	Benefits     []Benefit     `json:"benefits" validate:"required,min=3,max=4,dive"`
	Features     []Feature     `json:"features" validate:"required,min=3,max=6,dive"`
	About        *About        `json:"about" validate:"required"`
	Testimonials []Testimonial `json:"testimonials" validate:"required,min=2,max=4,dive"`
	Stats        []Stat        `json:"stats" validate:"required,len=4,dive"`
	FAQ          []FAQItem     `json:"faq" validate:"required,min=4,max=8,dive"`
	CTA          *CTA          `json:"cta" validate:"required"`
	Logo         *Logo         `json:"logo,omitempty" validate:"omitempty"`
	Palette      *Palette      `json:"palette,omitempty" validate:"omitempty"`
	Design       *Design       `json:"design" validate:"required"`
}

type Hero struct {
	Headline     string `json:"headline" validate:"required,min=16,max=60"`
	Subheadline  string `json:"subheadline" validate:"required,min=24,max=120"`
	Description  string `json:"description" validate:"required,min=40,max=160"`
	CTA          string `json:"cta" validate:"required,min=2,max=40"`
	SecondaryCTA string `json:"secondaryCta,omitempty" validate:"omitempty,min=2,max=40"`
}

type Benefit struct {
	Title       string `json:"title" validate:"required,min=3,max=80"`
	Description string `json:"description" validate:"required,min=30,max=250"`
}

type Feature struct {
	Title       string `json:"title" validate:"required,min=3,max=80"`
	Description string `json:"description" validate:"required,min=30,max=300"`
	Icon        string `json:"icon,omitempty" validate:"omitempty,min=1,max=50"`
}

type About struct {
	Title       string `json:"title" validate:"required,min=3,max=80"`
	Description string `json:"description" validate:"required,min=160,max=500"`
	Mission     string `json:"mission,omitempty" validate:"omitempty,min=50,max=300"`
	Vision      string `json:"vision,omitempty" validate:"omitempty,min=50,max=300"`
}

type Testimonial struct {
	Quote   string `json:"quote" validate:"required,min=50,max=400"`
	Author  string `json:"author" validate:"required,min=2,max=60"`
	Role    string `json:"role" validate:"required,min=2,max=80"`
	Company string `json:"company,omitempty" validate:"omitempty,min=2,max=60"`
}

type Stat struct {
	Value string `json:"value" validate:"required,min=1,max=20"`
	Label string `json:"label" validate:"required,min=3,max=50"`
}

type FAQItem struct {
	Question string `json:"question" validate:"required,min=10,max=150"`
	Answer   string `json:"answer" validate:"required,min=30,max=400"`
}

type CTA struct {
	Headline        string `json:"headline" validate:"required,min=10,max=100"`
	Description     string `json:"description" validate:"required,min=30,max=200"`
	PrimaryButton   string `json:"primaryButton" validate:"required,min=2,max=40"`
	SecondaryButton string `json:"secondaryButton,omitempty" validate:"omitempty,min=2,max=40"`
}

type Logo struct {
	IconName string `json:"iconName" validate:"required,min=1,max=50"`
}

type Palette struct {
	Primary    string `json:"primary" validate:"required,hexcolor6"`
	Background string `json:"background,omitempty" validate:"omitempty,hexcolor6"`
	Accent     string `json:"accent,omitempty" validate:"omitempty,hexcolor6"`
}

// Design holds the visual choices. Leaf fields are pointers: nil means the
// model left the field unset, which the enricher fills from the defaults
// table. A present but empty value is a validation failure.
type Design struct {
	Typography  Typography  `json:"typography"`
	Layout      Layout      `json:"layout"`
	Backgrounds Backgrounds `json:"backgrounds"`
	Industry    *Industry   `json:"industry,omitempty" validate:"omitempty,oneof=saas ecommerce restaurant healthcare education finance creative consulting technology other"`
}

type Typography struct {
	Preset      *TypographyPreset `json:"preset,omitempty" validate:"omitempty,oneof=modern-sans classic-serif tech-mono elegant-display minimal-clean"`
	HeadingFont *string           `json:"headingFont,omitempty" validate:"omitempty,min=1,max=50"`
	BodyFont    *string           `json:"bodyFont,omitempty" validate:"omitempty,min=1,max=50"`
}

type Layout struct {
	HeroVariant *HeroVariant `json:"heroVariant,omitempty" validate:"omitempty,oneof=centered split-left split-right minimal-banner"`
}

type Backgrounds struct {
	HeroPattern *HeroPattern `json:"heroPattern,omitempty" validate:"omitempty,oneof=gradient-mesh geometric-grid organic-blobs tech-lines minimal-clean"`
	CTAPattern  *CTAPattern  `json:"ctaPattern,omitempty" validate:"omitempty,oneof=gradient-radial geometric-shapes flowing-waves tech-grid minimal-solid"`
}

// Complete reports whether every design field carries a value.
func (d *Design) Complete() bool {
	if d == nil {
		return false
	}
	return d.Industry != nil &&
		d.Typography.Preset != nil &&
		d.Typography.HeadingFont != nil &&
		d.Typography.BodyFont != nil &&
		d.Layout.HeroVariant != nil &&
		d.Backgrounds.HeroPattern != nil &&
		d.Backgrounds.CTAPattern != nil
}

// Clone returns a deep copy so callers can derive a new spec without
// touching the receiver.
func (s *GeneratedSpec) Clone() *GeneratedSpec {
	if s == nil {
		return nil
	}
	out := &GeneratedSpec{
		Benefits:     slices.Clone(s.Benefits),
		Features:     slices.Clone(s.Features),
		Testimonials: slices.Clone(s.Testimonials),
		Stats:        slices.Clone(s.Stats),
		FAQ:          slices.Clone(s.FAQ),
	}
	if s.Hero != nil {
		h := *s.Hero
		out.Hero = &h
	}
	if s.About != nil {
		a := *s.About
		out.About = &a
	}
	if s.CTA != nil {
		c := *s.CTA
		out.CTA = &c
	}
	if s.Logo != nil {
		l := *s.Logo
		out.Logo = &l
	}
	if s.Palette != nil {
		p := *s.Palette
		out.Palette = &p
	}
	if s.Design != nil {
		out.Design = s.Design.clone()
	}
	return out
}

func (d *Design) clone() *Design {
	return &Design{
		Typography: Typography{
			Preset:      clonePtr(d.Typography.Preset),
			HeadingFont: clonePtr(d.Typography.HeadingFont),
			BodyFont:    clonePtr(d.Typography.BodyFont),
		},
		Layout: Layout{HeroVariant: clonePtr(d.Layout.HeroVariant)},
		Backgrounds: Backgrounds{
			HeroPattern: clonePtr(d.Backgrounds.HeroPattern),
			CTAPattern:  clonePtr(d.Backgrounds.CTAPattern),
		},
		Industry: clonePtr(d.Industry),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
