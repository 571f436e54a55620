package specjson

import "fmt"

// Range is an inclusive bound. For strings it counts characters, for lists
// it counts items.
type Range struct {
	Min int
	Max int
}

func (r Range) String() string {
	if r.Min == r.Max {
		return fmt.Sprintf("exactly %d", r.Min)
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Limits mirrors the validate tags of GeneratedSpec, keyed by json path.
// List element fields drop the index: "benefits.title".
var Limits = map[string]Range{
	"hero.headline":     {16, 60},
	"hero.subheadline":  {24, 120},
	"hero.description":  {40, 160},
	"hero.cta":          {2, 40},
	"hero.secondaryCta": {2, 40},

	"benefits":             {3, 4},
	"benefits.title":       {3, 80},
	"benefits.description": {30, 250},

	"features":             {3, 6},
	"features.title":       {3, 80},
	"features.description": {30, 300},
	"features.icon":        {1, 50},

	"about.title":       {3, 80},
	"about.description": {160, 500},
	"about.mission":     {50, 300},
	"about.vision":      {50, 300},

	"testimonials":         {2, 4},
	"testimonials.quote":   {50, 400},
	"testimonials.author":  {2, 60},
	"testimonials.role":    {2, 80},
	"testimonials.company": {2, 60},

	"stats":       {4, 4},
	"stats.value": {1, 20},
	"stats.label": {3, 50},

	"faq":          {4, 8},
	"faq.question": {10, 150},
	"faq.answer":   {30, 400},

	"cta.headline":        {10, 100},
	"cta.description":     {30, 200},
	"cta.primaryButton":   {2, 40},
	"cta.secondaryButton": {2, 40},

	"logo.iconName": {1, 50},

	"design.typography.headingFont": {1, 50},
	"design.typography.bodyFont":    {1, 50},
}

// Limit returns the bound registered for path. It panics on an unknown path
// so a typo in a prompt template fails loudly in tests.
func Limit(path string) Range {
	r, ok := Limits[path]
	if !ok {
		panic("specjson: no limit for " + path)
	}
	return r
}
