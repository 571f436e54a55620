// Package render maps a render-complete spec onto the concrete variants the
// presentation layer draws.
package render

import "pagecraft/internal/domain/specjson"

// HeroLayout describes how the hero region is arranged.
type HeroLayout struct {
	Variant   specjson.HeroVariant `json:"variant"`
	TextAlign string               `json:"textAlign"`
	// Media is where the product visual sits: "none", "left" or "right".
	Media   string `json:"media"`
	Compact bool   `json:"compact"`
}

var heroLayouts = map[specjson.HeroVariant]HeroLayout{
	specjson.HeroCentered:      {Variant: specjson.HeroCentered, TextAlign: "center", Media: "none"},
	specjson.HeroSplitLeft:     {Variant: specjson.HeroSplitLeft, TextAlign: "left", Media: "right"},
	specjson.HeroSplitRight:    {Variant: specjson.HeroSplitRight, TextAlign: "left", Media: "left"},
	specjson.HeroMinimalBanner: {Variant: specjson.HeroMinimalBanner, TextAlign: "center", Media: "none", Compact: true},
}

// SelectHeroLayout returns the layout for variant. Missing or unknown
// variants render as centered.
func SelectHeroLayout(variant *specjson.HeroVariant) HeroLayout {
	if variant != nil {
		if layout, ok := heroLayouts[*variant]; ok {
			return layout
		}
	}
	return heroLayouts[specjson.HeroCentered]
}

// SelectHeroBackground defaults to gradient-mesh.
func SelectHeroBackground(pattern *specjson.HeroPattern) specjson.HeroPattern {
	if pattern != nil && pattern.Valid() {
		return *pattern
	}
	return specjson.HeroPatternGradientMesh
}

// SelectCTABackground defaults to gradient-radial.
func SelectCTABackground(pattern *specjson.CTAPattern) specjson.CTAPattern {
	if pattern != nil && pattern.Valid() {
		return *pattern
	}
	return specjson.CTAPatternGradientRadial
}

type LogoKind string

const (
	LogoUploaded  LogoKind = "uploaded"
	LogoGenerated LogoKind = "generated"
	LogoGlyph     LogoKind = "glyph"
)

const (
	glyphIcon        = "sparkles"
	defaultBrandName = "Brand"
)

// Logo is the selected brand mark.
type Logo struct {
	Kind     LogoKind `json:"kind"`
	URL      string   `json:"url,omitempty"`
	IconName string   `json:"iconName,omitempty"`
	Text     string   `json:"text,omitempty"`
}

type LogoInput struct {
	UploadedURL string
	// UploadFailed is set once the uploaded image could not be loaded.
	UploadFailed bool
	IconName     string
	BusinessName string
}

// SelectLogo picks the uploaded image, then the generated icon with the
// business name, then the static glyph. The chain always ends at the glyph.
func SelectLogo(in LogoInput) Logo {
	if in.UploadedURL != "" && !in.UploadFailed {
		return Logo{Kind: LogoUploaded, URL: in.UploadedURL, Text: in.BusinessName}
	}
	if in.IconName != "" && in.BusinessName != "" {
		return Logo{Kind: LogoGenerated, IconName: in.IconName, Text: in.BusinessName}
	}
	text := in.BusinessName
	if text == "" {
		text = defaultBrandName
	}
	return Logo{Kind: LogoGlyph, IconName: glyphIcon, Text: text}
}
