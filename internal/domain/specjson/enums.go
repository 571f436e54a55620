package specjson

import "slices"

// Industry is the business category used to pick design defaults.
type Industry string

const (
	IndustrySaaS       Industry = "saas"
	IndustryEcommerce  Industry = "ecommerce"
	IndustryRestaurant Industry = "restaurant"
	IndustryHealthcare Industry = "healthcare"
	IndustryEducation  Industry = "education"
	IndustryFinance    Industry = "finance"
	IndustryCreative   Industry = "creative"
	IndustryConsulting Industry = "consulting"
	IndustryTechnology Industry = "technology"
	IndustryOther      Industry = "other"
)

// Industries lists every category in detection precedence order.
var Industries = []Industry{
	IndustrySaaS,
	IndustryEcommerce,
	IndustryRestaurant,
	IndustryHealthcare,
	IndustryEducation,
	IndustryFinance,
	IndustryCreative,
	IndustryConsulting,
	IndustryTechnology,
	IndustryOther,
}

func (i Industry) Valid() bool { return slices.Contains(Industries, i) }

type TypographyPreset string

const (
	PresetModernSans     TypographyPreset = "modern-sans"
	PresetClassicSerif   TypographyPreset = "classic-serif"
	PresetTechMono       TypographyPreset = "tech-mono"
	PresetElegantDisplay TypographyPreset = "elegant-display"
	PresetMinimalClean   TypographyPreset = "minimal-clean"
)

var TypographyPresets = []TypographyPreset{
	PresetModernSans,
	PresetClassicSerif,
	PresetTechMono,
	PresetElegantDisplay,
	PresetMinimalClean,
}

func (p TypographyPreset) Valid() bool { return slices.Contains(TypographyPresets, p) }

type HeroVariant string

const (
	HeroCentered      HeroVariant = "centered"
	HeroSplitLeft     HeroVariant = "split-left"
	HeroSplitRight    HeroVariant = "split-right"
	HeroMinimalBanner HeroVariant = "minimal-banner"
)

var HeroVariants = []HeroVariant{HeroCentered, HeroSplitLeft, HeroSplitRight, HeroMinimalBanner}

func (v HeroVariant) Valid() bool { return slices.Contains(HeroVariants, v) }

type HeroPattern string

const (
	HeroPatternGradientMesh  HeroPattern = "gradient-mesh"
	HeroPatternGeometricGrid HeroPattern = "geometric-grid"
	HeroPatternOrganicBlobs  HeroPattern = "organic-blobs"
	HeroPatternTechLines     HeroPattern = "tech-lines"
	HeroPatternMinimalClean  HeroPattern = "minimal-clean"
)

var HeroPatterns = []HeroPattern{
	HeroPatternGradientMesh,
	HeroPatternGeometricGrid,
	HeroPatternOrganicBlobs,
	HeroPatternTechLines,
	HeroPatternMinimalClean,
}

func (p HeroPattern) Valid() bool { return slices.Contains(HeroPatterns, p) }

type CTAPattern string

const (
	CTAPatternGradientRadial  CTAPattern = "gradient-radial"
	CTAPatternGeometricShapes CTAPattern = "geometric-shapes"
	CTAPatternFlowingWaves    CTAPattern = "flowing-waves"
	CTAPatternTechGrid        CTAPattern = "tech-grid"
	CTAPatternMinimalSolid    CTAPattern = "minimal-solid"
)

var CTAPatterns = []CTAPattern{
	CTAPatternGradientRadial,
	CTAPatternGeometricShapes,
	CTAPatternFlowingWaves,
	CTAPatternTechGrid,
	CTAPatternMinimalSolid,
}

func (p CTAPattern) Valid() bool { return slices.Contains(CTAPatterns, p) }
