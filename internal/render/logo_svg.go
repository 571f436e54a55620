package render

import (
	"fmt"
	"html"
	"strings"
	"unicode/utf8"
)

const (
	logoIconSize    = 28
	logoFontSize    = 20
	logoPadding     = 12
	logoGap         = 12
	logoMaxNameLen  = 20
	logoDefaultIcon = "building"
)

// iconPaths holds the stroke paths for the icons the SVG renderer can draw.
// Other catalogue icons fall back to building.
var iconPaths = map[string]string{
	"building":       `<path d="M6 22V4a2 2 0 0 1 2-2h8a2 2 0 0 1 2 2v18Z"/><path d="M6 12h4v6h4v-6h4"/>`,
	"building-2":     `<path d="M6 22V4a2 2 0 0 1 2-2h8a2 2 0 0 1 2 2v18Z"/><path d="M6 12h4v6h4v-6h4"/><path d="M6 6h12"/><path d="M6 18h12"/>`,
	"store":          `<path d="m2 7 4.41-4.41A2 2 0 0 1 7.83 2h8.34a2 2 0 0 1 1.42.59L22 7"/><path d="M4 12v8a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2v-8"/><path d="M15 22v-4a2 2 0 0 0-2-2h-2a2 2 0 0 0-2 2v4"/><path d="M2 7h20"/>`,
	"laptop":         `<path d="M20 16V7a2 2 0 0 0-2-2H6a2 2 0 0 0-2 2v9m16 0H4m16 0 1.28 2.55a1 1 0 0 1-.9 1.45H3.62a1 1 0 0 1-.9-1.45L4 16"/>`,
	"heart":          `<path d="M19 14c1.49-1.46 3-3.21 3-5.5A5.5 5.5 0 0 0 16.5 3c-1.76 0-3 .5-4.5 2-1.5-1.5-2.74-2-4.5-2A5.5 5.5 0 0 0 2 8.5c0 2.29 1.51 4.04 3 5.5l7 7Z"/>`,
	"graduation-cap": `<path d="M21.42 10.922a1 1 0 0 0-.019-1.838L12.83 5.18a2 2 0 0 0-1.66 0L2.6 9.08a1 1 0 0 0 0 1.832l8.57 3.908a2 2 0 0 0 1.66 0z"/><path d="M22 10v6"/><path d="M6 12.5V16a6 3 0 0 0 12 0v-3.5"/>`,
	"camera":         `<path d="M14.5 4h-5L7 7H4a2 2 0 0 0-2 2v9a2 2 0 0 0 2 2h16a2 2 0 0 0 2-2V9a2 2 0 0 0-2-2h-3l-2.5-3Z"/><circle cx="12" cy="13" r="3"/>`,
	"utensils":       `<path d="M3 2v7c0 1.1.9 2 2 2h4a2 2 0 0 0 2-2V2"/><path d="M7 2v20"/><path d="M21 15V2v0a5 5 0 0 0-5 5v6c0 1.1.9 2 2 2h3Zm0 0v7"/>`,
	"users":          `<path d="M16 21v-2a4 4 0 0 0-4-4H6a4 4 0 0 0-4 4v2"/><circle cx="9" cy="7" r="4"/><path d="M22 21v-2a4 4 0 0 0-3-3.87"/><path d="M16 3.13a4 4 0 0 1 0 7.75"/>`,
	"briefcase":      `<rect width="20" height="14" x="2" y="7" rx="2" ry="2"/><path d="M16 21V5a2 2 0 0 0-2-2h-4a2 2 0 0 0-2 2v16"/>`,
	"sparkles":       `<path d="m12 3-1.912 5.813a2 2 0 0 1-1.275 1.275L3 12l5.813 1.912a2 2 0 0 1 1.275 1.275L12 21l1.912-5.813a2 2 0 0 1 1.275-1.275L21 12l-5.813-1.912a2 2 0 0 1-1.275-1.275L12 3Z"/><path d="M5 3v4"/><path d="M19 17v4"/><path d="M3 5h4"/><path d="M17 19h4"/>`,
}

// DisplayName shortens long business names for the logo mark.
func DisplayName(name string) string {
	if utf8.RuneCountInString(name) <= logoMaxNameLen {
		return name
	}
	return string([]rune(name)[:logoMaxNameLen]) + "..."
}

// GeneratedLogoSVG draws the icon next to the business name in color.
// The width is estimated from the character count.
func GeneratedLogoSVG(icon, businessName, color string) string {
	paths, ok := iconPaths[icon]
	if !ok {
		paths = iconPaths[logoDefaultIcon]
	}
	color = strings.TrimSpace(color)
	if !hexTriplet.MatchString(color) {
		color = DefaultPrimaryColor
	} else if !strings.HasPrefix(color, "#") {
		color = "#" + color
	}
	name := DisplayName(businessName)
	textWidth := utf8.RuneCountInString(name) * logoFontSize * 6 / 10
	width := logoIconSize + logoGap + textWidth + logoPadding*2
	height := max(logoIconSize, logoFontSize) + logoPadding*2

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" viewBox="0 0 %d %d" xmlns="http://www.w3.org/2000/svg">`, width, height, width, height)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="transparent" rx="8"/>`, width, height)
	fmt.Fprintf(&b, `<g transform="translate(%d, %d)">`, logoPadding, (height-logoIconSize)/2)
	fmt.Fprintf(&b, `<svg width="%d" height="%d" viewBox="0 0 24 24" fill="none" stroke="%s" stroke-width="2" stroke-linecap="round" stroke-linejoin="round">%s</svg>`,
		logoIconSize, logoIconSize, color, paths)
	b.WriteString(`</g>`)
	fmt.Fprintf(&b, `<text x="%d" y="%d" font-family="Inter, system-ui, sans-serif" font-size="%d" font-weight="600" fill="%s" dominant-baseline="middle">%s</text>`,
		logoPadding+logoIconSize+logoGap, height/2, logoFontSize, color, html.EscapeString(name))
	b.WriteString(`</svg>`)
	return b.String()
}
