package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"pagecraft/internal/domain"
	"pagecraft/internal/domain/specjson"
)

func sampleAnswers() domain.WizardAnswers {
	return domain.WizardAnswers{
		BusinessName: "Acme Bottles",
		Product:      "eco-friendly water bottles",
		Audience:     "busy commuters",
		Goal:         domain.GoalSales,
		Tone:         domain.ToneProfessional,
		PrimaryColor: "#0f766e",
	}
}

func TestBuildBusinessContext(t *testing.T) {
	a := sampleAnswers()
	a.ReferenceURL = "https://example.com/inspo"
	p := Build(a)

	for _, want := range []string{
		"BUSINESS CONTEXT",
		"- Business name: Acme Bottles",
		"- Product/service: eco-friendly water bottles",
		"- Target audience: busy commuters",
		"- Goal: Sales",
		"- Tone: Professional",
		"https://example.com/inspo",
		"Return ONLY valid JSON with NO markdown fences or commentary",
	} {
		assert.Contains(t, p, want)
	}
}

func TestBuildOmitsEmptyReferenceURL(t *testing.T) {
	assert.NotContains(t, Build(sampleAnswers()), "Reference website")
}

func TestBuildQuotesValidatorBounds(t *testing.T) {
	p := Build(sampleAnswers())
	for _, want := range []string{
		"headline (16-60 chars)",
		"benefits: 3-4 items",
		"features: 3-6 items",
		"about: title (3-80 chars), description (160-500 chars)",
		"testimonials: 2-4 items",
		"stats: exactly 4 items",
		"faq: 4-8 items",
		"primaryButton (2-40 chars)",
		"one of centered, split-left, split-right, minimal-banner",
		"one of gradient-radial, geometric-shapes, flowing-waves, tech-grid, minimal-solid",
	} {
		assert.Contains(t, p, want)
	}
}

func TestBuildLogoInstruction(t *testing.T) {
	withoutLogo := Build(sampleAnswers())
	assert.Contains(t, withoutLogo, `"iconName"`)
	assert.Contains(t, withoutLogo, "graduation-cap")
	assert.Contains(t, withoutLogo, "cta, logo, palette, design")
	assert.NotContains(t, withoutLogo, "Logo will be uploaded by user")

	a := sampleAnswers()
	a.LogoURL = "https://cdn.example.com/logo.png"
	withLogo := Build(a)
	assert.Contains(t, withLogo, "Logo will be uploaded by user")
	assert.NotContains(t, withLogo, `"iconName"`)
	assert.Contains(t, withLogo, "cta, palette, design")
}

func TestBuildIndustryInstruction(t *testing.T) {
	assert.Contains(t, Build(sampleAnswers()), "Auto-detect design.industry")

	a := sampleAnswers()
	a.Industry = specjson.IndustryEcommerce
	p := Build(a)
	assert.Contains(t, p, `Use provided industry "ecommerce"`)
	assert.NotContains(t, p, "Auto-detect")
}

func TestBuildWritingGuidelines(t *testing.T) {
	p := Build(sampleAnswers())
	assert.Contains(t, p, "Write in a professional tone.")
	assert.Contains(t, p, "Address pain points of busy commuters.")
	assert.Contains(t, p, "FAQ should handle real objections.")
	assert.Contains(t, p, `No generic buzzwords like "revolutionary" or "cutting-edge"`)
	assert.Contains(t, p, "driving direct sales")
}

func TestBuildIsDeterministic(t *testing.T) {
	assert.Equal(t, Build(sampleAnswers()), Build(sampleAnswers()))
}

func TestBuildRepair(t *testing.T) {
	base := Build(sampleAnswers())
	repair := BuildRepair(base, []specjson.Section{specjson.SectionAbout, specjson.SectionTestimonials})

	assert.True(t, strings.HasPrefix(repair, strings.TrimRight(base, "\n")))
	assert.Contains(t, repair, "missing or invalid: about, testimonials.")
	assert.Contains(t, repair, "ALL sections")
}
