package transliterators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yosina-lib/yosina-go/chars"
)

func TestJapaneseIterationMarks(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"kanji repetition", "時々", "時時"},
		{"kanji repetition in context", "人々の色々な考え", "人人の色色な考え"},
		{"hiragana voiced mark", "いすゞ", "いすず"},
		{"voiced sound mark after voiced kana is not an iteration mark", "いすず゛", "いすず゛"},
		{"hiragana repetition", "こゝろ", "こころ"},
		{"hiragana voiced repetition", "つゞく", "つづく"},
		{"voiced previous with unvoiced mark", "づゝ", "づつ"},
		{"voiced previous with voiced mark", "づゞ", "づづ"},
		{"katakana repetition", "サヽキ", "ササキ"},
		{"katakana voiced repetition", "ハヾ", "ハバ"},
		{"katakana wa voicing", "ワヾ", "ワヷ"},
		{"vertical hiragana repetition", "こ〱", "ここ"},
		{"vertical hiragana voiced repetition", "つ〲", "つづ"},
		{"vertical katakana repetition", "サ〳", "ササ"},
		{"vertical katakana voiced repetition", "ハ〴", "ハバ"},
		{"mark after hatsuon passes through", "ん々", "ん々"},
		{"mark after sokuon passes through", "っゝ", "っゝ"},
		{"mark after semi-voiced passes through", "ぱゝ", "ぱゝ"},
		{"hiragana mark after katakana passes through", "アゝ", "アゝ"},
		{"katakana mark after hiragana passes through", "あヽ", "あヽ"},
		{"kanji mark after kana passes through", "かな々", "かな々"},
		{"mark at start passes through", "々あ", "々あ"},
		{"marks cascade over replacements", "かゝゝ", "かかか"},
		{"no marks", "これはテストです", "これはテストです"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, process(t, "japanese-iteration-marks", nil, tt.input))
		})
	}
}

func TestJapaneseIterationMarksSkipTransliterated(t *testing.T) {
	// A mark that was itself produced by an earlier stage is left alone
	// when the option is set.
	source := &chars.Char{C: "ゞ", Offset: 0}
	input := []*chars.Char{
		{C: "か", Offset: 0},
		{C: "ゝ", Offset: 3, Source: source},
		{C: "", Offset: 6},
	}

	stage, err := New("japanese-iteration-marks", map[string]any{
		"skip_already_transliterated_chars": true,
	})
	require.NoError(t, err)
	assert.Equal(t, "かゝ", chars.FromChars(stage.Transliterate(input)))

	stage, err = New("japanese-iteration-marks", nil)
	require.NoError(t, err)
	assert.Equal(t, "かか", chars.FromChars(stage.Transliterate(input)))
}
