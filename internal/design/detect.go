// Package design infers the industry of a business and fills the visual
// choices a generated spec left open.
package design

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"pagecraft/internal/domain/specjson"
)

type keywordSet struct {
	industry specjson.Industry
	keywords []string
}

// industryKeywords is checked top to bottom; the first category with a hit
// wins. IndustryOther has no keywords and is the fallthrough.
var industryKeywords = []keywordSet{
	{specjson.IndustrySaaS, []string{"software", "saas", "app", "platform", "subscription", "dashboard", "crm"}},
	{specjson.IndustryEcommerce, []string{"ecommerce", "e-commerce", "online store", "store", "shop", "retail", "marketplace", "boutique"}},
	{specjson.IndustryRestaurant, []string{"restaurant", "food", "cafe", "coffee", "bakery", "catering", "dining", "bistro", "pizza", "kitchen"}},
	{specjson.IndustryHealthcare, []string{"health", "healthcare", "medical", "clinic", "doctor", "dental", "dentist", "therapy", "wellness", "hospital", "pharmacy"}},
	{specjson.IndustryEducation, []string{"education", "school", "course", "learning", "tutor", "tutoring", "academy", "training"}},
	{specjson.IndustryFinance, []string{"finance", "financial", "bank", "banking", "investment", "accounting", "insurance", "loan", "wealth", "tax"}},
	{specjson.IndustryCreative, []string{"design", "designer", "creative", "studio", "photography", "photographer", "artist", "art", "music"}},
	{specjson.IndustryConsulting, []string{"consulting", "consultant", "advisory", "strategy", "coaching", "coach"}},
	{specjson.IndustryTechnology, []string{"tech", "technology", "developer", "coding", "api", "cloud", "cyber", "cybersecurity", "hardware", "ai", "devops", "robotics"}},
}

// DetectIndustry returns explicit when it is set. Otherwise it scans the
// lowercased product and business name for whole-word keywords (a trailing
// plural "s" is allowed) and returns the first matching category, or
// IndustryOther.
func DetectIndustry(product, businessName string, explicit specjson.Industry) specjson.Industry {
	if strings.TrimSpace(string(explicit)) != "" {
		return explicit
	}
	text := strings.ToLower(product + " " + businessName)
	for _, set := range industryKeywords {
		for _, kw := range set.keywords {
			if containsWord(text, kw) {
				return set.industry
			}
		}
	}
	return specjson.IndustryOther
}

func containsWord(text, word string) bool {
	for offset := 0; offset < len(text); {
		idx := strings.Index(text[offset:], word)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(word)
		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			return true
		}
		offset = start + 1
	}
	return false
}

func boundaryBefore(text string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:i])
	return !isWordRune(r)
}

func boundaryAfter(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, size := utf8.DecodeRuneInString(text[i:])
	if r == 's' {
		return boundaryAfterPlural(text, i+size)
	}
	return !isWordRune(r)
}

func boundaryAfterPlural(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
