package transliterators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yosina-lib/yosina-go/chars"
)

// process runs a single stage over a string and re-serializes the result.
func process(t *testing.T, name string, options map[string]any, input string) string {
	t.Helper()
	stage, err := New(name, options)
	require.NoError(t, err)
	return chars.FromChars(stage.Transliterate(chars.BuildCharList(input)))
}

func TestUnknownTransliterator(t *testing.T) {
	_, err := New("no-such-stage", nil)
	assert.ErrorContains(t, err, "transliterator not found")
}

func TestNamesCoversAllFactories(t *testing.T) {
	names := Names()
	assert.Len(t, names, 15)
	for _, name := range names {
		_, err := New(name, nil)
		assert.NoError(t, err, name)
	}
}

func TestOffsetsAndProvenance(t *testing.T) {
	// Every stage must keep offsets contiguous and source chars pointing
	// into its input.
	inputs := []string{
		"hello　world",
		"①②③ ㍿ ⺀ ㆖ Ⅲ 𝐀",
		"ガキ゚ｱｲｳﾞ",
		"1ー－2ー3 ア- 時々いすゞ",
	}
	for _, name := range Names() {
		for _, input := range inputs {
			stage, err := New(name, nil)
			require.NoError(t, err)
			inputChars := chars.BuildCharList(input)
			inputSet := make(map[*chars.Char]bool, len(inputChars))
			for _, c := range inputChars {
				inputSet[c] = true
			}
			offset := 0
			for _, c := range stage.Transliterate(inputChars) {
				assert.Equal(t, offset, c.Offset, "%s on %q", name, input)
				offset += len(c.C)
				if c.Source != nil && !inputSet[c.Source] {
					// Derived chars may chain through intermediates, but
					// the chain must end in the stage's input.
					s := c.Source
					for s != nil && !inputSet[s] {
						s = s.Source
					}
					assert.NotNil(t, s, "%s fabricated a source on %q", name, input)
				}
			}
		}
	}
}

func TestSentinelPreserved(t *testing.T) {
	for _, name := range Names() {
		stage, err := New(name, nil)
		require.NoError(t, err)
		result := stage.Transliterate(chars.BuildCharList("テスト①"))
		require.NotEmpty(t, result, name)
		assert.True(t, result[len(result)-1].IsSentinel(), name)
	}
}
