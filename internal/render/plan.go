package render

import (
	"pagecraft/internal/design"
	"pagecraft/internal/domain"
	"pagecraft/internal/domain/specjson"
)

// Block is a region of the rendered page in display order.
type Block string

const (
	BlockNavbar       Block = "navbar"
	BlockHero         Block = "hero"
	BlockBenefits     Block = "benefits"
	BlockFeatures     Block = "features"
	BlockAbout        Block = "about"
	BlockStats        Block = "stats"
	BlockTestimonials Block = "testimonials"
	BlockFAQ          Block = "faq"
	BlockCTA          Block = "cta"
	BlockFooter       Block = "footer"
)

var blockOrder = []Block{
	BlockNavbar,
	BlockHero,
	BlockBenefits,
	BlockFeatures,
	BlockAbout,
	BlockStats,
	BlockTestimonials,
	BlockFAQ,
	BlockCTA,
	BlockFooter,
}

type Typography struct {
	Preset      specjson.TypographyPreset `json:"preset"`
	HeadingFont string                    `json:"headingFont"`
	BodyFont    string                    `json:"bodyFont"`
}

// Plan is everything the presentation layer needs to draw a page.
// LogoFallback is set when the uploaded image may fail to load.
type Plan struct {
	PageID         string                  `json:"pageId"`
	BusinessName   string                  `json:"businessName"`
	Typography     Typography              `json:"typography"`
	HeroLayout     HeroLayout              `json:"heroLayout"`
	HeroBackground specjson.HeroPattern    `json:"heroBackground"`
	CTABackground  specjson.CTAPattern     `json:"ctaBackground"`
	Logo           Logo                    `json:"logo"`
	LogoFallback   *Logo                   `json:"logoFallback,omitempty"`
	PrimaryColor   string                  `json:"primaryColor"`
	PrimaryRGB     RGB                     `json:"primaryRgb"`
	Blocks         []Block                 `json:"blocks"`
	Spec           *specjson.GeneratedSpec `json:"spec"`
}

// BuildPlan selects every render variant for a stored page. Pages stored
// before enrichment existed still render because every selector has a
// default arm.
func BuildPlan(page *domain.Page) Plan {
	spec := page.Spec
	if spec == nil {
		spec = &specjson.GeneratedSpec{}
	}
	d := spec.Design
	if d == nil {
		d = &specjson.Design{}
	}

	in := LogoInput{
		UploadedURL:  page.Answers.LogoURL,
		BusinessName: page.BusinessName,
	}
	if spec.Logo != nil {
		in.IconName = spec.Logo.IconName
	}
	logo := SelectLogo(in)
	var fallback *Logo
	if logo.Kind == LogoUploaded {
		in.UploadFailed = true
		alt := SelectLogo(in)
		fallback = &alt
	}

	color := PrimaryColor(spec, page.Answers.PrimaryColor)
	return Plan{
		PageID:         page.ID,
		BusinessName:   page.BusinessName,
		Typography:     selectTypography(d.Typography),
		HeroLayout:     SelectHeroLayout(d.Layout.HeroVariant),
		HeroBackground: SelectHeroBackground(d.Backgrounds.HeroPattern),
		CTABackground:  SelectCTABackground(d.Backgrounds.CTAPattern),
		Logo:           logo,
		LogoFallback:   fallback,
		PrimaryColor:   color,
		PrimaryRGB:     HexToRGB(color),
		Blocks:         append([]Block(nil), blockOrder...),
		Spec:           spec,
	}
}

func selectTypography(t specjson.Typography) Typography {
	preset := specjson.PresetModernSans
	if t.Preset != nil && t.Preset.Valid() {
		preset = *t.Preset
	}
	heading, body, _ := design.FontsFor(preset)
	if t.HeadingFont != nil && *t.HeadingFont != "" {
		heading = *t.HeadingFont
	}
	if t.BodyFont != nil && *t.BodyFont != "" {
		body = *t.BodyFont
	}
	return Typography{Preset: preset, HeadingFont: heading, BodyFont: body}
}
