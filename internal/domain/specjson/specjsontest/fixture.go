// Package specjsontest builds valid GeneratedSpec values for tests.
package specjsontest

import (
	"encoding/json"
	"strings"

	"pagecraft/internal/domain/specjson"
)

// Text returns s repeated and cut to exactly n characters.
func Text(s string, n int) string {
	if n <= 0 || s == "" {
		return ""
	}
	r := []rune(strings.Repeat(s, n/len([]rune(s))+1))
	return string(r[:n])
}

// Valid returns a spec that satisfies every bound and leaves the design
// fields unset.
func Valid() *specjson.GeneratedSpec {
	benefit := specjson.Benefit{
		Title:       "Stays cold all day",
		Description: Text("Double wall insulation keeps water cold. ", 60),
	}
	feature := specjson.Feature{
		Title:       "Leak proof lid",
		Description: Text("A silicone seal that never drips in a bag. ", 60),
		Icon:        "shield",
	}
	testimonial := specjson.Testimonial{
		Quote:  Text("I take this bottle everywhere and it still looks new. ", 80),
		Author: "Dana Reyes",
		Role:   "Trail runner",
	}
	stat := specjson.Stat{Value: "10k+", Label: "Happy customers"}
	faq := specjson.FAQItem{
		Question: "Is the bottle dishwasher safe?",
		Answer:   Text("Yes, the body and lid are safe on the top rack. ", 60),
	}
	return &specjson.GeneratedSpec{
		Hero: &specjson.Hero{
			Headline:    Text("Cold water, anywhere you go ", 30),
			Subheadline: Text("Insulated bottles built for daily use ", 40),
			Description: Text("Steel bottles that keep drinks cold for a full day. ", 80),
			CTA:         "Shop now",
		},
		Benefits:     []specjson.Benefit{benefit, benefit, benefit},
		Features:     []specjson.Feature{feature, feature, feature, feature},
		About: &specjson.About{
			Title:       "Our story",
			Description: Text("We started in a garage with one idea: stop single use plastic. ", 200),
		},
		Testimonials: []specjson.Testimonial{testimonial, testimonial},
		Stats:        []specjson.Stat{stat, stat, stat, stat},
		FAQ:          []specjson.FAQItem{faq, faq, faq, faq},
		CTA: &specjson.CTA{
			Headline:      "Ready to ditch plastic?",
			Description:   Text("Order today and get free shipping on your first bottle. ", 60),
			PrimaryButton: "Get yours",
		},
		Design: &specjson.Design{},
	}
}

// Without returns the JSON encoding of Valid with the given top-level
// sections removed.
func Without(sections ...specjson.Section) []byte {
	raw, err := json.Marshal(Valid())
	if err != nil {
		panic(err)
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		panic(err)
	}
	for _, s := range sections {
		delete(top, string(s))
	}
	out, err := json.Marshal(top)
	if err != nil {
		panic(err)
	}
	return out
}

// JSON returns the JSON encoding of Valid.
func JSON() []byte {
	return Without()
}
