package design

import (
	"pagecraft/internal/domain"
	"pagecraft/internal/domain/specjson"
)

// Enricher completes the design block of a validated spec.
type Enricher struct {
	table Table
}

// NewEnricher builds an Enricher over table. A nil table uses the built-in
// defaults.
func NewEnricher(table Table) *Enricher {
	if table == nil {
		table = DefaultTable()
	}
	return &Enricher{table: table}
}

// Enrich returns a copy of spec whose design fields are all set. The
// industry always comes from the answers (explicit or detected). Every other
// field keeps the model's value when present and otherwise takes the same
// field of the industry bundle. spec is not modified.
func (e *Enricher) Enrich(spec *specjson.GeneratedSpec, answers domain.WizardAnswers) *specjson.GeneratedSpec {
	out := spec.Clone()
	if out == nil {
		out = &specjson.GeneratedSpec{}
	}
	if out.Design == nil {
		out.Design = &specjson.Design{}
	}
	d := out.Design

	industry := DetectIndustry(answers.Product, answers.BusinessName, answers.Industry)
	defaults := e.table.For(industry)
	d.Industry = &industry

	d.Typography.Preset = resolve(d.Typography.Preset, defaults.Typography)
	d.Typography.HeadingFont = resolve(d.Typography.HeadingFont, defaults.HeadingFont)
	d.Typography.BodyFont = resolve(d.Typography.BodyFont, defaults.BodyFont)
	d.Layout.HeroVariant = resolve(d.Layout.HeroVariant, defaults.HeroVariant)
	d.Backgrounds.HeroPattern = resolve(d.Backgrounds.HeroPattern, defaults.HeroPattern)
	d.Backgrounds.CTAPattern = resolve(d.Backgrounds.CTAPattern, defaults.CTAPattern)
	return out
}

// resolve keeps a value the model set, even an empty one, and only falls
// back when the field is absent.
func resolve[T any](model *T, fallback T) *T {
	if model != nil {
		return model
	}
	return &fallback
}
