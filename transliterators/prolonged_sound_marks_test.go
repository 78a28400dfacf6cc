package transliterators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProlongedSoundMarks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		options  map[string]any
	}{
		{
			"fullwidth hyphen-minus to prolonged sound mark",
			"イ－ハト－ヴォ", "イーハトーヴォ", nil,
		},
		{
			"fullwidth hyphen-minus at end of word",
			"カトラリ－", "カトラリー", nil,
		},
		{
			"ascii hyphen-minus to prolonged sound mark",
			"イ-ハト-ヴォ", "イーハトーヴォ", nil,
		},
		{
			"don't replace between prolonged sound marks",
			"1ー－2ー3", "1ー－2ー3", nil,
		},
		{
			"replace prolonged marks between alphanumerics",
			"1ー－2ー3", "1--2-3",
			map[string]any{"replace_prolonged_marks_following_alnums": true},
		},
		{
			"replace prolonged marks between fullwidth alphanumerics",
			"１ー－２ー３", "１－－２－３",
			map[string]any{"replace_prolonged_marks_following_alnums": true},
		},
		{
			"don't prolong sokuon by default",
			"ウッ－ウン－", "ウッ－ウン－", nil,
		},
		{
			"allow prolonged sokuon",
			"ウッ－ウン－", "ウッーウン－",
			map[string]any{"allow_prolonged_sokuon": true},
		},
		{
			"allow prolonged hatsuon",
			"ウッ－ウン－", "ウッ－ウンー",
			map[string]any{"allow_prolonged_hatsuon": true},
		},
		{
			"allow both prolonged sokuon and hatsuon",
			"ウッ－ウン－", "ウッーウンー",
			map[string]any{"allow_prolonged_sokuon": true, "allow_prolonged_hatsuon": true},
		},
		{
			"mixed hiragana and katakana with hyphens",
			"あいう-かきく－", "あいうーかきくー", nil,
		},
		{
			"halfwidth katakana gets halfwidth prolonged mark",
			"ｱｲｳ-", "ｱｲｳｰ", nil,
		},
		{
			"halfwidth katakana with fullwidth hyphen",
			"ｱｲｳ－", "ｱｲｳｰ", nil,
		},
		{
			"hyphen after non-Japanese characters",
			"ABC-123－", "ABC-123－", nil,
		},
		{
			"multiple hyphens in sequence",
			"ア---イ", "アーーーイ", nil,
		},
		{
			"various hyphen types",
			"ア-イ‐ウ—エ―オ−カ－", "アーイーウーエーオーカー", nil,
		},
		{
			"prolonged sound mark after fullwidth alphabet unchanged",
			"アーＡｰＢ", "アーＡｰＢ", nil,
		},
		{
			"prolonged sound mark after hatsuon unchanged",
			"アーンｰウ", "アーンｰウ", nil,
		},
		{
			"empty string", "", "", nil,
		},
		{
			"no hyphens", "こんにちは世界", "こんにちは世界", nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, process(t, "prolonged-sound-marks", tt.options, tt.input))
		})
	}
}
