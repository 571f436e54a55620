package prompt

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pagecraft/internal/domain"
	"pagecraft/internal/domain/specjson"
)

var lower = cases.Lower(language.English)

var goalFocus = map[domain.Goal]string{
	domain.GoalLeads:      "capturing qualified leads",
	domain.GoalSales:      "driving direct sales",
	domain.GoalNewsletter: "growing newsletter signups",
}

// Build renders the generation instruction for answers. Every bound quoted
// here comes from specjson.Limits so the prompt and the validator agree.
func Build(answers domain.WizardAnswers) string {
	sb := &strings.Builder{}
	sb.WriteString("You are a senior conversion copywriter and brand designer. Write the content and choose the design system for a single landing page.\n\n")

	sb.WriteString("BUSINESS CONTEXT\n")
	fmt.Fprintf(sb, "- Business name: %s\n", answers.BusinessName)
	fmt.Fprintf(sb, "- Product/service: %s\n", answers.Product)
	fmt.Fprintf(sb, "- Target audience: %s\n", answers.Audience)
	fmt.Fprintf(sb, "- Goal: %s\n", answers.Goal)
	fmt.Fprintf(sb, "- Tone: %s\n", answers.Tone)
	if answers.ReferenceURL != "" {
		fmt.Fprintf(sb, "- Reference website for style inspiration: %s\n", answers.ReferenceURL)
	}
	sb.WriteString("\n")

	sb.WriteString("Return ONLY valid JSON with NO markdown fences or commentary. ")
	sb.WriteString("Use exactly these top-level keys and no others: ")
	sb.WriteString(topLevelKeys(answers.LogoURL == ""))
	sb.WriteString(".\n\n")

	sb.WriteString("REQUIRED SECTIONS\n")
	for i, line := range sectionLines(answers) {
		fmt.Fprintf(sb, "%d. %s\n", i+1, line)
	}
	sb.WriteString("\n")

	sb.WriteString("LOGO\n")
	if answers.LogoURL == "" {
		fmt.Fprintf(sb, "- Add \"logo\": {\"iconName\": string (%s chars)} choosing the icon that best represents the business from: %s.\n",
			specjson.Limit("logo.iconName"), strings.Join(specjson.LogoIcons, ", "))
	} else {
		sb.WriteString("- Logo will be uploaded by user. Do not include a \"logo\" key.\n")
	}
	sb.WriteString("\n")

	sb.WriteString("INDUSTRY\n")
	if answers.Industry != "" {
		fmt.Fprintf(sb, "- Use provided industry %q for design.industry.\n", answers.Industry)
	} else {
		fmt.Fprintf(sb, "- Auto-detect design.industry from the business context. Allowed values: %s.\n", joinValues(specjson.Industries))
	}
	sb.WriteString("\n")

	sb.WriteString("DESIGN GUIDELINES\n")
	sb.WriteString("- modern-sans suits software and online stores, classic-serif suits finance and consulting, tech-mono suits developer tools, elegant-display suits food and creative brands, minimal-clean suits health and education.\n")
	sb.WriteString("- Use split-left or split-right hero layouts when the product benefits from a visual, centered for trust-driven services, minimal-banner for bold single-message pages.\n")
	sb.WriteString("- Background patterns must echo the typography preset: tech-lines with tech-grid, organic-blobs with flowing-waves, geometric-grid with geometric-shapes.\n")
	fmt.Fprintf(sb, "- Build the palette around the brand color %s.\n", answers.PrimaryColor)
	sb.WriteString("\n")

	sb.WriteString("WRITING GUIDELINES\n")
	fmt.Fprintf(sb, "- Write in a %s tone.\n", lower.String(string(answers.Tone)))
	fmt.Fprintf(sb, "- Address pain points of %s.\n", answers.Audience)
	if focus, ok := goalFocus[answers.Goal]; ok {
		fmt.Fprintf(sb, "- Every call to action should focus on %s.\n", focus)
	}
	sb.WriteString("- FAQ should handle real objections.\n")
	sb.WriteString("- Stats should use concrete, believable numbers.\n")
	sb.WriteString("- No generic buzzwords like \"revolutionary\" or \"cutting-edge\".\n")
	return sb.String()
}

// BuildRepair appends a corrective clause to base that names the sections
// the previous attempt got wrong and asks for the whole object again.
func BuildRepair(base string, sections []specjson.Section) string {
	names := make([]string, 0, len(sections))
	for _, s := range sections {
		names = append(names, string(s))
	}
	list := strings.Join(names, ", ")

	sb := &strings.Builder{}
	sb.WriteString(strings.TrimRight(base, "\n"))
	sb.WriteString("\n\nCORRECTION\n")
	fmt.Fprintf(sb, "- Your previous response was rejected because these sections were missing or invalid: %s.\n", list)
	sb.WriteString("- Regenerate the COMPLETE JSON object with ALL sections, not only the missing ones.\n")
	fmt.Fprintf(sb, "- Make sure %s satisfy every count and length rule above.\n", list)
	return sb.String()
}

func sectionLines(answers domain.WizardAnswers) []string {
	return []string{
		fmt.Sprintf("hero: headline (%s chars), subheadline (%s chars), description (%s chars), cta (%s chars), optional secondaryCta (%s chars)",
			specjson.Limit("hero.headline"), specjson.Limit("hero.subheadline"), specjson.Limit("hero.description"),
			specjson.Limit("hero.cta"), specjson.Limit("hero.secondaryCta")),
		fmt.Sprintf("benefits: %s items, each with title (%s chars) and description (%s chars)",
			specjson.Limit("benefits"), specjson.Limit("benefits.title"), specjson.Limit("benefits.description")),
		fmt.Sprintf("features: %s items, each with title (%s chars), description (%s chars) and optional icon (%s chars, from the icon list)",
			specjson.Limit("features"), specjson.Limit("features.title"), specjson.Limit("features.description"), specjson.Limit("features.icon")),
		fmt.Sprintf("about: title (%s chars), description (%s chars), optional mission (%s chars), optional vision (%s chars)",
			specjson.Limit("about.title"), specjson.Limit("about.description"), specjson.Limit("about.mission"), specjson.Limit("about.vision")),
		fmt.Sprintf("testimonials: %s items, each with quote (%s chars), author (%s chars), role (%s chars), optional company (%s chars)",
			specjson.Limit("testimonials"), specjson.Limit("testimonials.quote"), specjson.Limit("testimonials.author"),
			specjson.Limit("testimonials.role"), specjson.Limit("testimonials.company")),
		fmt.Sprintf("stats: %s items, each with value (%s chars) and label (%s chars)",
			specjson.Limit("stats"), specjson.Limit("stats.value"), specjson.Limit("stats.label")),
		fmt.Sprintf("faq: %s items, each with question (%s chars) and answer (%s chars)",
			specjson.Limit("faq"), specjson.Limit("faq.question"), specjson.Limit("faq.answer")),
		fmt.Sprintf("cta: headline (%s chars), description (%s chars), primaryButton (%s chars), optional secondaryButton (%s chars)",
			specjson.Limit("cta.headline"), specjson.Limit("cta.description"), specjson.Limit("cta.primaryButton"), specjson.Limit("cta.secondaryButton")),
		fmt.Sprintf("palette (optional): primary, background, accent as 6-digit hex colors; primary should be %s", answers.PrimaryColor),
		fmt.Sprintf("design: typography {preset: one of %s, headingFont (%s chars), bodyFont (%s chars)}, layout {heroVariant: one of %s}, backgrounds {heroPattern: one of %s, ctaPattern: one of %s}, industry",
			joinValues(specjson.TypographyPresets), specjson.Limit("design.typography.headingFont"), specjson.Limit("design.typography.bodyFont"),
			joinValues(specjson.HeroVariants), joinValues(specjson.HeroPatterns), joinValues(specjson.CTAPatterns)),
	}
}

func topLevelKeys(withLogo bool) string {
	keys := make([]string, 0, len(specjson.Sections))
	for _, s := range specjson.Sections {
		if s == specjson.SectionLogo && !withLogo {
			continue
		}
		keys = append(keys, string(s))
	}
	return strings.Join(keys, ", ")
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
