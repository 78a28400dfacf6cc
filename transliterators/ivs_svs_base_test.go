package transliterators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIvsSvsBase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		options  map[string]any
	}{
		{
			"forward adds IVS selectors",
			"逸為",
			"逸\U000e0100為\U000e0100",
			map[string]any{"mode": "ivs-or-svs"},
		},
		{
			"forward picks the 2004 glyph sequence",
			"辻",
			"辻\U000e0101",
			map[string]any{"mode": "ivs-or-svs"},
		},
		{
			"forward picks the 90 glyph sequence for unijis_90",
			"辻",
			"辻\U000e0100",
			map[string]any{"mode": "ivs-or-svs", "charset": "unijis_90"},
		},
		{
			"forward prefers SVS when requested and available",
			"為",
			"為︀",
			map[string]any{"mode": "ivs-or-svs", "prefer_svs": true},
		},
		{
			"forward leaves unmapped characters",
			"hello時",
			"hello時",
			map[string]any{"mode": "ivs-or-svs"},
		},
		{
			"base removes selectors",
			"逸\U000e0100為\U000e0100",
			"逸為",
			map[string]any{"mode": "base"},
		},
		{
			"base removes selector from 2004 glyph",
			"辻\U000e0101",
			"辻",
			map[string]any{"mode": "base"},
		},
		{
			"base keeps the 90-only glyph sequence",
			"辻\U000e0100",
			"辻\U000e0100",
			map[string]any{"mode": "base"},
		},
		{
			"base resolves the 90-only glyph under unijis_90",
			"辻\U000e0100",
			"辻",
			map[string]any{"mode": "base", "charset": "unijis_90"},
		},
		{
			"base maps SVS back too",
			"為︀",
			"為",
			map[string]any{"mode": "base"},
		},
		{
			"drop selectors altogether strips unmapped sequences",
			"辻\U000e0100",
			"辻",
			map[string]any{"mode": "base", "drop_selectors_altogether": true},
		},
		{
			"drop selectors strips selectors with no record at all",
			"時\U000e0105",
			"時",
			map[string]any{"mode": "base", "drop_selectors_altogether": true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, process(t, "ivs-svs-base", tt.options, tt.input))
		})
	}
}

func TestIvsSvsForwardReverseRoundTrip(t *testing.T) {
	forward, err := New("ivs-svs-base", map[string]any{"mode": "ivs-or-svs"})
	assert.NoError(t, err)
	reverse, err := New("ivs-svs-base", map[string]any{"mode": "base", "charset": "unijis_2004"})
	assert.NoError(t, err)

	for base := range baseToVariantsMappings("unijis_2004") {
		assert.Equal(t, base, chainStages(base, forward, reverse), "round trip for %q", base)
	}
}

func TestKanjiOldNew(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"hinoki with selector", "檜\U000e0100", "桧\U000e0100"},
		{"tsuji glyph change", "辻\U000e0101", "辻\U000e0100"},
		{"old form without selector is untouched", "檜", "檜"},
		{"plain text untouched", "旧字体のまま", "旧字体のまま"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, process(t, "kanji-old-new", nil, tt.input))
		})
	}
}

func TestKanjiOldNewFullPipeline(t *testing.T) {
	// The recipe compiler brackets kanji-old-new with ivs-svs-base stages;
	// reproduce that chain here.
	forward, err := New("ivs-svs-base", map[string]any{"mode": "ivs-or-svs"})
	assert.NoError(t, err)
	oldNew, err := New("kanji-old-new", nil)
	assert.NoError(t, err)
	reverse, err := New("ivs-svs-base", map[string]any{"mode": "base", "charset": "unijis_2004"})
	assert.NoError(t, err)

	tests := []struct {
		input    string
		expected string
	}{
		{"舊字體の變換", "旧字体の変換"},
		{"學校", "学校"},
		{"檜", "桧"},
		{"新字体はそのまま", "新字体はそのまま"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, chainStages(tt.input, forward, oldNew, reverse))
	}
}
