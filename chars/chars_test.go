package chars

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCharList(t *testing.T) {
	result := BuildCharList("hello")
	require.Len(t, result, 6)
	assert.Equal(t, "h", result[0].C)
	assert.Equal(t, 0, result[0].Offset)
	assert.Equal(t, "o", result[4].C)
	assert.Equal(t, 4, result[4].Offset)
	assert.True(t, result[5].IsSentinel())
}

func TestBuildCharListEmpty(t *testing.T) {
	result := BuildCharList("")
	require.Len(t, result, 1)
	assert.True(t, result[0].IsSentinel())
	assert.Equal(t, 0, result[0].Offset)
}

func TestBuildCharListBundlesVariationSelectors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "IVS selector bundles with the preceding kanji",
			input:    "辻\U000e0100あ",
			expected: []string{"辻\U000e0100", "あ", ""},
		},
		{
			name:     "SVS selector bundles with the preceding kanji",
			input:    "辻︀",
			expected: []string{"辻︀", ""},
		},
		{
			name:     "trailing selector stays bundled",
			input:    "あ辻\U000e0101",
			expected: []string{"あ", "辻\U000e0101", ""},
		},
		{
			name:     "lone selector is its own char",
			input:    "︀",
			expected: []string{"︀", ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BuildCharList(tt.input)
			require.Len(t, result, len(tt.expected))
			for i, expected := range tt.expected {
				assert.Equal(t, expected, result[i].C)
			}
		})
	}
}

func TestBuildCharListOffsets(t *testing.T) {
	result := BuildCharList("aあ辻\U000e0100")
	offset := 0
	for _, c := range result {
		assert.Equal(t, offset, c.Offset)
		offset += len(c.C)
	}
}

func TestFromCharsRoundTrip(t *testing.T) {
	inputs := []string{"", "hello", "こんにちは", "葛\U000e0100飾区", "テスト123"}
	for _, input := range inputs {
		assert.Equal(t, input, FromChars(BuildCharList(input)))
	}
}

func TestIsTransliterated(t *testing.T) {
	original := &Char{C: "a", Offset: 0}
	assert.False(t, original.IsTransliterated())

	moved := original.WithOffset(3)
	assert.False(t, moved.IsTransliterated())

	replaced := &Char{C: "b", Offset: 0, Source: original}
	assert.True(t, replaced.IsTransliterated())

	relocated := replaced.WithOffset(5)
	assert.True(t, relocated.IsTransliterated())
}
