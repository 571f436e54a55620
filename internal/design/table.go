package design

import (
	"fmt"
	"maps"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"pagecraft/internal/domain/specjson"
)

// Preset is the bundle of visual choices tied to one industry.
type Preset struct {
	Typography  specjson.TypographyPreset `yaml:"typography"`
	HeadingFont string                    `yaml:"heading_font"`
	BodyFont    string                    `yaml:"body_font"`
	HeroVariant specjson.HeroVariant      `yaml:"hero_variant"`
	HeroPattern specjson.HeroPattern      `yaml:"hero_pattern"`
	CTAPattern  specjson.CTAPattern       `yaml:"cta_pattern"`
}

// Table maps industries to their preset bundle. It is built once at start
// up and only read afterwards.
type Table map[specjson.Industry]Preset

type fontPair struct {
	heading string
	body    string
}

var presetFonts = map[specjson.TypographyPreset]fontPair{
	specjson.PresetModernSans:     {"Inter", "Inter"},
	specjson.PresetClassicSerif:   {"Playfair Display", "Source Serif 4"},
	specjson.PresetTechMono:       {"Space Grotesk", "DM Sans"},
	specjson.PresetElegantDisplay: {"Playfair Display", "DM Sans"},
	specjson.PresetMinimalClean:   {"Poppins", "Inter"},
}

// FontsFor returns the canonical heading and body fonts of a preset.
func FontsFor(preset specjson.TypographyPreset) (heading, body string, ok bool) {
	pair, ok := presetFonts[preset]
	return pair.heading, pair.body, ok
}

func bundle(preset specjson.TypographyPreset, hero specjson.HeroVariant, heroBg specjson.HeroPattern, ctaBg specjson.CTAPattern) Preset {
	fonts := presetFonts[preset]
	return Preset{
		Typography:  preset,
		HeadingFont: fonts.heading,
		BodyFont:    fonts.body,
		HeroVariant: hero,
		HeroPattern: heroBg,
		CTAPattern:  ctaBg,
	}
}

var builtinTable = Table{
	specjson.IndustrySaaS:       bundle(specjson.PresetModernSans, specjson.HeroSplitLeft, specjson.HeroPatternGradientMesh, specjson.CTAPatternGradientRadial),
	specjson.IndustryEcommerce:  bundle(specjson.PresetModernSans, specjson.HeroSplitRight, specjson.HeroPatternGradientMesh, specjson.CTAPatternGeometricShapes),
	specjson.IndustryRestaurant: bundle(specjson.PresetElegantDisplay, specjson.HeroSplitRight, specjson.HeroPatternOrganicBlobs, specjson.CTAPatternFlowingWaves),
	specjson.IndustryHealthcare: bundle(specjson.PresetMinimalClean, specjson.HeroCentered, specjson.HeroPatternMinimalClean, specjson.CTAPatternMinimalSolid),
	specjson.IndustryEducation:  bundle(specjson.PresetMinimalClean, specjson.HeroSplitLeft, specjson.HeroPatternOrganicBlobs, specjson.CTAPatternFlowingWaves),
	specjson.IndustryFinance:    bundle(specjson.PresetClassicSerif, specjson.HeroSplitLeft, specjson.HeroPatternGeometricGrid, specjson.CTAPatternGeometricShapes),
	specjson.IndustryCreative:   bundle(specjson.PresetElegantDisplay, specjson.HeroSplitRight, specjson.HeroPatternOrganicBlobs, specjson.CTAPatternFlowingWaves),
	specjson.IndustryConsulting: bundle(specjson.PresetClassicSerif, specjson.HeroCentered, specjson.HeroPatternGeometricGrid, specjson.CTAPatternGeometricShapes),
	specjson.IndustryTechnology: bundle(specjson.PresetTechMono, specjson.HeroSplitLeft, specjson.HeroPatternTechLines, specjson.CTAPatternTechGrid),
	specjson.IndustryOther:      bundle(specjson.PresetModernSans, specjson.HeroCentered, specjson.HeroPatternGradientMesh, specjson.CTAPatternGradientRadial),
}

// DefaultTable returns a copy of the built-in defaults.
func DefaultTable() Table {
	return maps.Clone(builtinTable)
}

// For returns the bundle for industry, falling back to the "other" entry.
func (t Table) For(industry specjson.Industry) Preset {
	if p, ok := t[industry]; ok {
		return p
	}
	if p, ok := t[specjson.IndustryOther]; ok {
		return p
	}
	return builtinTable[specjson.IndustryOther]
}

// LoadTable returns the built-in table with the overrides from the YAML file
// at path applied field by field. An empty path yields the built-in table.
//
//	restaurant:
//	  hero_variant: centered
//	  cta_pattern: minimal-solid
func LoadTable(path string) (Table, error) {
	table := DefaultTable()
	if strings.TrimSpace(path) == "" {
		return table, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("design: read defaults: %w", err)
	}
	var overrides map[string]Preset
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		return nil, fmt.Errorf("design: parse defaults: %w", err)
	}
	for key, override := range overrides {
		industry := specjson.Industry(strings.ToLower(strings.TrimSpace(key)))
		if !industry.Valid() {
			return nil, fmt.Errorf("design: unknown industry %q", key)
		}
		merged, err := merge(table[industry], override)
		if err != nil {
			return nil, fmt.Errorf("design: industry %s: %w", industry, err)
		}
		table[industry] = merged
	}
	return table, nil
}

func merge(base, override Preset) (Preset, error) {
	if override.Typography != "" {
		if !override.Typography.Valid() {
			return Preset{}, fmt.Errorf("unknown typography preset %q", override.Typography)
		}
		base.Typography = override.Typography
		if heading, body, ok := FontsFor(override.Typography); ok {
			base.HeadingFont, base.BodyFont = heading, body
		}
	}
	if override.HeadingFont != "" {
		base.HeadingFont = override.HeadingFont
	}
	if override.BodyFont != "" {
		base.BodyFont = override.BodyFont
	}
	if override.HeroVariant != "" {
		if !override.HeroVariant.Valid() {
			return Preset{}, fmt.Errorf("unknown hero variant %q", override.HeroVariant)
		}
		base.HeroVariant = override.HeroVariant
	}
	if override.HeroPattern != "" {
		if !override.HeroPattern.Valid() {
			return Preset{}, fmt.Errorf("unknown hero pattern %q", override.HeroPattern)
		}
		base.HeroPattern = override.HeroPattern
	}
	if override.CTAPattern != "" {
		if !override.CTAPattern.Valid() {
			return Preset{}, fmt.Errorf("unknown cta pattern %q", override.CTAPattern)
		}
		base.CTAPattern = override.CTAPattern
	}
	return base, nil
}
