package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagecraft/internal/domain"
	"pagecraft/internal/domain/specjson"
	"pagecraft/internal/domain/specjson/specjsontest"
)

func ptr[T any](v T) *T { return &v }

func TestSelectHeroLayout(t *testing.T) {
	assert.Equal(t, specjson.HeroCentered, SelectHeroLayout(nil).Variant)
	assert.Equal(t, specjson.HeroCentered, SelectHeroLayout(ptr(specjson.HeroVariant("unknown-value"))).Variant)

	split := SelectHeroLayout(ptr(specjson.HeroSplitLeft))
	assert.Equal(t, "left", split.TextAlign)
	assert.Equal(t, "right", split.Media)

	banner := SelectHeroLayout(ptr(specjson.HeroMinimalBanner))
	assert.True(t, banner.Compact)
}

func TestSelectBackgrounds(t *testing.T) {
	assert.Equal(t, specjson.HeroPatternGradientMesh, SelectHeroBackground(nil))
	assert.Equal(t, specjson.HeroPatternGradientMesh, SelectHeroBackground(ptr(specjson.HeroPattern("plaid"))))
	assert.Equal(t, specjson.HeroPatternTechLines, SelectHeroBackground(ptr(specjson.HeroPatternTechLines)))

	assert.Equal(t, specjson.CTAPatternGradientRadial, SelectCTABackground(nil))
	assert.Equal(t, specjson.CTAPatternFlowingWaves, SelectCTABackground(ptr(specjson.CTAPatternFlowingWaves)))
}

func TestSelectLogoPriority(t *testing.T) {
	tests := []struct {
		name string
		in   LogoInput
		want Logo
	}{
		{
			name: "uploaded",
			in:   LogoInput{UploadedURL: "https://cdn.test/logo.png", IconName: "store", BusinessName: "Acme"},
			want: Logo{Kind: LogoUploaded, URL: "https://cdn.test/logo.png", Text: "Acme"},
		},
		{
			name: "uploaded failed",
			in:   LogoInput{UploadedURL: "https://cdn.test/logo.png", UploadFailed: true, IconName: "store", BusinessName: "Acme"},
			want: Logo{Kind: LogoGenerated, IconName: "store", Text: "Acme"},
		},
		{
			name: "generated",
			in:   LogoInput{IconName: "store", BusinessName: "Acme"},
			want: Logo{Kind: LogoGenerated, IconName: "store", Text: "Acme"},
		},
		{
			name: "icon without name",
			in:   LogoInput{IconName: "store"},
			want: Logo{Kind: LogoGlyph, IconName: "sparkles", Text: "Brand"},
		},
		{
			name: "nothing",
			in:   LogoInput{BusinessName: "Acme"},
			want: Logo{Kind: LogoGlyph, IconName: "sparkles", Text: "Acme"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SelectLogo(tt.in))
		})
	}
}

func TestHexToRGB(t *testing.T) {
	assert.Equal(t, RGB{R: 37, G: 99, B: 235}, HexToRGB("#2563eb"))
	assert.Equal(t, RGB{R: 255, G: 0, B: 16}, HexToRGB("FF0010"))
	assert.Equal(t, RGB{R: 59, G: 130, B: 246}, HexToRGB("#fff"))
	assert.Equal(t, RGB{R: 59, G: 130, B: 246}, HexToRGB("blue"))
}

func TestPrimaryColor(t *testing.T) {
	spec := specjsontest.Valid()
	spec.Palette = &specjson.Palette{Primary: "#112233"}
	assert.Equal(t, "#112233", PrimaryColor(spec, "#445566"))

	spec.Palette = nil
	assert.Equal(t, "#445566", PrimaryColor(spec, "445566"))
	assert.Equal(t, DefaultPrimaryColor, PrimaryColor(nil, ""))
	assert.Equal(t, RGB{R: 0x11, G: 0x22, B: 0x33}, PrimaryRGB(nil, "#112233"))
}

func TestGeneratedLogoSVG(t *testing.T) {
	svg := GeneratedLogoSVG("store", "Acme", "#0f766e")
	// 28 icon + 12 gap + 4*12 text + 2*12 padding
	assert.Contains(t, svg, `width="112" height="52"`)
	assert.Contains(t, svg, `stroke="#0f766e"`)
	assert.Contains(t, svg, `x="52" y="26"`)
	assert.Contains(t, svg, ">Acme</text>")
	assert.Contains(t, svg, "M15 22v-4")
}

func TestGeneratedLogoSVGFallbacks(t *testing.T) {
	svg := GeneratedLogoSVG("rocket-ship", "Tom & Jerry's Really Long Bakery", "nope")
	assert.Contains(t, svg, iconPaths["building"])
	assert.Contains(t, svg, `stroke="#2563eb"`)
	assert.Contains(t, svg, "Tom &amp; Jerry&#39;s Really...")
	assert.False(t, strings.Contains(svg, "Bakery"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Acme", DisplayName("Acme"))
	assert.Equal(t, "abcdefghijklmnopqrst", DisplayName("abcdefghijklmnopqrst"))
	assert.Equal(t, "abcdefghijklmnopqrst...", DisplayName("abcdefghijklmnopqrstu"))
}

func TestBuildPlanDefaults(t *testing.T) {
	spec := specjsontest.Valid()
	spec.Logo = nil
	page := &domain.Page{
		ID:           "page-1",
		BusinessName: "Acme Bottles",
		Answers:      domain.WizardAnswers{PrimaryColor: "#0f766e"},
		Spec:         spec,
	}
	plan := BuildPlan(page)

	assert.Equal(t, Typography{Preset: specjson.PresetModernSans, HeadingFont: "Inter", BodyFont: "Inter"}, plan.Typography)
	assert.Equal(t, specjson.HeroCentered, plan.HeroLayout.Variant)
	assert.Equal(t, specjson.HeroPatternGradientMesh, plan.HeroBackground)
	assert.Equal(t, specjson.CTAPatternGradientRadial, plan.CTABackground)
	assert.Equal(t, Logo{Kind: LogoGlyph, IconName: "sparkles", Text: "Acme Bottles"}, plan.Logo)
	assert.Nil(t, plan.LogoFallback)
	assert.Equal(t, "#0f766e", plan.PrimaryColor)
	assert.Equal(t, []Block{
		BlockNavbar, BlockHero, BlockBenefits, BlockFeatures, BlockAbout,
		BlockStats, BlockTestimonials, BlockFAQ, BlockCTA, BlockFooter,
	}, plan.Blocks)
}

func TestBuildPlanUsesDesignAndUpload(t *testing.T) {
	spec := specjsontest.Valid()
	spec.Logo = &specjson.Logo{IconName: "utensils"}
	spec.Design = &specjson.Design{
		Typography: specjson.Typography{
			Preset:      ptr(specjson.PresetClassicSerif),
			HeadingFont: ptr("Lora"),
		},
		Layout:      specjson.Layout{HeroVariant: ptr(specjson.HeroSplitRight)},
		Backgrounds: specjson.Backgrounds{CTAPattern: ptr(specjson.CTAPatternTechGrid)},
	}
	page := &domain.Page{
		BusinessName: "Casa Verde",
		Answers:      domain.WizardAnswers{LogoURL: "https://cdn.test/casa.png"},
		Spec:         spec,
	}
	plan := BuildPlan(page)

	assert.Equal(t, "Lora", plan.Typography.HeadingFont)
	assert.Equal(t, "Source Serif 4", plan.Typography.BodyFont)
	assert.Equal(t, specjson.HeroSplitRight, plan.HeroLayout.Variant)
	assert.Equal(t, specjson.CTAPatternTechGrid, plan.CTABackground)
	assert.Equal(t, LogoUploaded, plan.Logo.Kind)
	require.NotNil(t, plan.LogoFallback)
	assert.Equal(t, Logo{Kind: LogoGenerated, IconName: "utensils", Text: "Casa Verde"}, *plan.LogoFallback)
}

func TestBuildPlanWithoutSpec(t *testing.T) {
	plan := BuildPlan(&domain.Page{})
	assert.Equal(t, specjson.HeroCentered, plan.HeroLayout.Variant)
	assert.Equal(t, Logo{Kind: LogoGlyph, IconName: "sparkles", Text: "Brand"}, plan.Logo)
	assert.Equal(t, RGB{R: 37, G: 99, B: 235}, plan.PrimaryRGB)
}
