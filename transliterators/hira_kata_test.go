package transliterators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHiraToKata(t *testing.T) {
	options := map[string]any{"mode": "hira-to-kata"}
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain hiragana", "ひらがな", "ヒラガナ"},
		{"voiced", "がぎぐげご", "ガギグゲゴ"},
		{"semi-voiced", "ぱぴぷぺぽ", "パピプペポ"},
		{"small kana", "っゃゅょ", "ッャュョ"},
		{"vu", "ゔ", "ヴ"},
		{"archaic wi we", "ゐゑ", "ヰヱ"},
		{"mixed text", "あいうえお123カキク", "アイウエオ123カキク"},
		{"katakana unchanged", "カタカナ", "カタカナ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, process(t, "hira-kata", options, tt.input))
		})
	}
}

func TestKataToHira(t *testing.T) {
	options := map[string]any{"mode": "kata-to-hira"}
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain katakana", "カタカナ", "かたかな"},
		{"voiced", "ガギグゲゴ", "がぎぐげご"},
		{"semi-voiced", "パピプペポ", "ぱぴぷぺぽ"},
		{"small kana", "ッャュョ", "っゃゅょ"},
		{"vu", "ヴ", "ゔ"},
		{"special voiced katakana have no hiragana", "ヷヸヹヺ", "ヷヸヹヺ"},
		{"hiragana unchanged", "ひらがな", "ひらがな"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, process(t, "hira-kata", options, tt.input))
		})
	}
}

func TestHiraKataRoundTrip(t *testing.T) {
	// Every hiragana in the table must survive the round trip.
	input := "あいうえおかがきぎくぐけげこごさざしじすずせぜそぞただちぢつづてでとどなにぬねのはばぱひびぴふぶぷへべぺほぼぽまみむめもやゆよらりるれろわゐゑをんゔぁぃぅぇぉっゃゅょゎゕゖ"
	toKata, err := New("hira-kata", map[string]any{"mode": "hira-to-kata"})
	assert.NoError(t, err)
	toHira, err := New("hira-kata", map[string]any{"mode": "kata-to-hira"})
	assert.NoError(t, err)
	result := chainStages(input, toKata, toHira)
	assert.Equal(t, input, result)
}

func TestHiraKataDefaultsToHiraToKata(t *testing.T) {
	assert.Equal(t, "アイウ", process(t, "hira-kata", nil, "あいう"))
}

func TestHiraKataRejectsUnknownMode(t *testing.T) {
	_, err := New("hira-kata", map[string]any{"mode": "kata-to-kata"})
	assert.ErrorContains(t, err, "unknown hira-kata mode")
}
