package design

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagecraft/internal/domain/specjson"
)

func TestDefaultTableCoversEveryIndustry(t *testing.T) {
	table := DefaultTable()
	for _, industry := range specjson.Industries {
		p, ok := table[industry]
		require.True(t, ok, "missing %s", industry)
		assert.True(t, p.Typography.Valid())
		assert.True(t, p.HeroVariant.Valid())
		assert.True(t, p.HeroPattern.Valid())
		assert.True(t, p.CTAPattern.Valid())
		heading, body, ok := FontsFor(p.Typography)
		require.True(t, ok)
		assert.Equal(t, heading, p.HeadingFont)
		assert.Equal(t, body, p.BodyFont)
	}
}

func TestTableForFallsBackToOther(t *testing.T) {
	table := DefaultTable()
	got := table.For("mining")
	assert.Equal(t, table[specjson.IndustryOther], got)
	assert.Equal(t, Preset{
		Typography:  specjson.PresetModernSans,
		HeadingFont: "Inter",
		BodyFont:    "Inter",
		HeroVariant: specjson.HeroCentered,
		HeroPattern: specjson.HeroPatternGradientMesh,
		CTAPattern:  specjson.CTAPatternGradientRadial,
	}, got)

	assert.Equal(t, got, Table{}.For(specjson.IndustrySaaS))
}

func TestDefaultTableIsACopy(t *testing.T) {
	table := DefaultTable()
	table[specjson.IndustryOther] = Preset{}
	assert.Equal(t, specjson.PresetModernSans, DefaultTable()[specjson.IndustryOther].Typography)
}

func TestLoadTableOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
restaurant:
  hero_variant: centered
  cta_pattern: minimal-solid
saas:
  typography: tech-mono
`), 0o644))

	table, err := LoadTable(path)
	require.NoError(t, err)

	restaurant := table[specjson.IndustryRestaurant]
	assert.Equal(t, specjson.HeroCentered, restaurant.HeroVariant)
	assert.Equal(t, specjson.CTAPatternMinimalSolid, restaurant.CTAPattern)
	assert.Equal(t, specjson.PresetElegantDisplay, restaurant.Typography)

	saas := table[specjson.IndustrySaaS]
	assert.Equal(t, specjson.PresetTechMono, saas.Typography)
	assert.Equal(t, "Space Grotesk", saas.HeadingFont)
	assert.Equal(t, "DM Sans", saas.BodyFont)
}

func TestLoadTableRejectsUnknownValues(t *testing.T) {
	cases := map[string]string{
		"industry": "mining:\n  hero_variant: centered\n",
		"variant":  "saas:\n  hero_variant: diagonal\n",
		"pattern":  "saas:\n  cta_pattern: stripes\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "defaults.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := LoadTable(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadTableEmptyPath(t *testing.T) {
	table, err := LoadTable("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTable(), table)
}
