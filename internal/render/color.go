package render

import (
	"regexp"
	"strconv"
	"strings"

	"pagecraft/internal/domain/specjson"
)

// DefaultPrimaryColor is used when neither the spec nor the answers carry a
// brand color.
const DefaultPrimaryColor = "#2563eb"

// RGB is a primary color triple.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// fallbackRGB is returned for a color that does not parse.
var fallbackRGB = RGB{R: 59, G: 130, B: 246}

var hexTriplet = regexp.MustCompile(`^#?([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})$`)

// PrimaryColor returns the palette primary, else answerColor, else
// DefaultPrimaryColor, always with a leading '#'.
func PrimaryColor(spec *specjson.GeneratedSpec, answerColor string) string {
	color := ""
	if spec != nil && spec.Palette != nil {
		color = strings.TrimSpace(spec.Palette.Primary)
	}
	if color == "" {
		color = strings.TrimSpace(answerColor)
	}
	if color == "" {
		color = DefaultPrimaryColor
	}
	if !strings.HasPrefix(color, "#") {
		color = "#" + color
	}
	return color
}

// HexToRGB parses a six digit hex color.
func HexToRGB(hex string) RGB {
	m := hexTriplet.FindStringSubmatch(strings.TrimSpace(hex))
	if m == nil {
		return fallbackRGB
	}
	var out [3]uint8
	for i := range out {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return fallbackRGB
		}
		out[i] = uint8(v)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}
}

// PrimaryRGB resolves the primary color and converts it for tinting.
func PrimaryRGB(spec *specjson.GeneratedSpec, answerColor string) RGB {
	return HexToRGB(PrimaryColor(spec, answerColor))
}
