package transliterators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJisx0201FullwidthToHalfwidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		options  map[string]any
	}{
		{
			"fullwidth alphanumerics",
			"ＡＢＣ１２３", "ABC123", nil,
		},
		{
			"fullwidth symbols",
			"！＃＄％＆（）", "!#$%&()", nil,
		},
		{
			"ideographic space",
			"Ａ　Ｂ", "A B", nil,
		},
		{
			"katakana to halfwidth",
			"カタカナ", "ｶﾀｶﾅ", nil,
		},
		{
			"voiced katakana decomposes",
			"ガギグゲゴ", "ｶﾞｷﾞｸﾞｹﾞｺﾞ", nil,
		},
		{
			"semi-voiced katakana decomposes",
			"パピプペポ", "ﾊﾟﾋﾟﾌﾟﾍﾟﾎﾟ", nil,
		},
		{
			"japanese punctuation",
			"、。「」・ー", "､｡｢｣･ｰ", nil,
		},
		{
			"small katakana",
			"ァィゥェォッャュョ", "ｧｨｩｪｫｯｬｭｮ", nil,
		},
		{
			"hiragana untouched without convert_hiraganas",
			"ひらがな", "ひらがな", nil,
		},
		{
			"hiragana converts when requested",
			"あがぱ", "ｱｶﾞﾊﾟ",
			map[string]any{"convert_hiraganas": true},
		},
		{
			"GL disabled leaves ascii range",
			"ＡＢＣカタカナ", "ＡＢＣｶﾀｶﾅ",
			map[string]any{"convert_gl": false},
		},
		{
			"GR disabled leaves katakana",
			"ＡＢＣカタカナ", "ABCカタカナ",
			map[string]any{"convert_gr": false},
		},
		{
			"yen sign default",
			"￥１００", "\\100", nil,
		},
		{
			"u00a5 as yen sign overrides u005c",
			"￥", "¥",
			map[string]any{"u00a5_as_yen_sign": true},
		},
		{
			"fullwidth tilde and wave dash",
			"～〜", "~~", nil,
		},
		{
			"double hyphen converts by default",
			"゠", "=", nil,
		},
		{
			"unsafe specials disabled",
			"゠", "゠",
			map[string]any{"convert_unsafe_specials": false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, process(t, "jisx0201-and-alike", tt.options, tt.input))
		})
	}
}

func TestJisx0201HalfwidthToFullwidth(t *testing.T) {
	base := map[string]any{"fullwidth_to_halfwidth": false}
	withOptions := func(extra map[string]any) map[string]any {
		options := map[string]any{"fullwidth_to_halfwidth": false}
		for k, v := range extra {
			options[k] = v
		}
		return options
	}

	tests := []struct {
		name     string
		input    string
		expected string
		options  map[string]any
	}{
		{
			"ascii alphanumerics",
			"ABC123", "ＡＢＣ１２３", base,
		},
		{
			"space to ideographic space",
			"A B", "Ａ　Ｂ", base,
		},
		{
			"halfwidth katakana",
			"ｶﾀｶﾅ", "カタカナ", base,
		},
		{
			"voiced marks combine by default",
			"ｶﾞｷﾞｳﾞ", "ガギヴ", base,
		},
		{
			"semi-voiced marks combine by default",
			"ﾊﾟﾋﾟ", "パピ", base,
		},
		{
			"voiced marks kept separate when disabled",
			"ｶﾞ", "カ゛",
			withOptions(map[string]any{"combine_voiced_sound_marks": false}),
		},
		{
			"lone voiced mark",
			"ﾞﾟ", "゛゜", base,
		},
		{
			"mark after non-composable base",
			"ｱﾞ", "ア゛", base,
		},
		{
			"halfwidth punctuation",
			"｡｢｣､･ｰ", "。「」、・ー", base,
		},
		{
			"backslash to yen sign by default",
			"\\", "￥", base,
		},
		{
			"backslash verbatim when requested",
			"\\", "＼",
			withOptions(map[string]any{"u005c_as_backslash": true}),
		},
		{
			"yen sign to fullwidth yen by default",
			"¥", "￥", base,
		},
		{
			"tilde to fullwidth tilde by default",
			"~", "～", base,
		},
		{
			"tilde to wave dash when requested",
			"~", "〜",
			withOptions(map[string]any{"u007e_as_wave_dash": true}),
		},
		{
			"equals to fullwidth equals",
			"=", "＝", base,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, process(t, "jisx0201-and-alike", tt.options, tt.input))
		})
	}
}

func TestJisx0201RoundTrip(t *testing.T) {
	toHalf, err := New("jisx0201-and-alike", map[string]any{"fullwidth_to_halfwidth": true})
	assert.NoError(t, err)
	toFull, err := New("jisx0201-and-alike", map[string]any{"fullwidth_to_halfwidth": false})
	assert.NoError(t, err)

	input := "カタカナガパ、。ー"
	assert.Equal(t, input, chainStages(input, toHalf, toFull))
}
