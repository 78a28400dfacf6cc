package transliterators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yosina-lib/yosina-go/chars"
)

// chainStages runs a string through a sequence of stages.
func chainStages(input string, stages ...Transliterator) string {
	cs := chars.BuildCharList(input)
	for _, stage := range stages {
		cs = stage.Transliterate(cs)
	}
	return chars.FromChars(cs)
}

func TestHiraKataComposition(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		options  map[string]any
	}{
		{
			"katakana with combining voiced marks",
			"\u30ab\u3099\u30ac\u30ad\u30ad\u3099\u30af",
			"\u30ac\u30ac\u30ad\u30ae\u30af",
			nil,
		},
		{
			"katakana with combining semi-voiced marks",
			"\u30cf\u30cf\u3099\u30cf\u309a\u30d2\u30d5\u30d8\u30db",
			"\u30cf\u30d0\u30d1\u30d2\u30d5\u30d8\u30db",
			nil,
		},
		{
			"hiragana with combining voiced marks",
			"\u304b\u3099\u304c\u304d\u304d\u3099\u304f",
			"\u304c\u304c\u304d\u304e\u304f",
			nil,
		},
		{
			"hiragana with combining semi-voiced marks",
			"\u306f\u306f\u3099\u306f\u309a\u3072\u3075\u3078\u307b",
			"\u306f\u3070\u3071\u3072\u3075\u3078\u307b",
			nil,
		},
		{
			"non-combining marks compose when enabled",
			"\u30cf\u30cf\u309b\u30cf\u309c\u30d2\u30d5\u30d8\u30db",
			"\u30cf\u30d0\u30d1\u30d2\u30d5\u30d8\u30db",
			map[string]any{"compose_non_combining_marks": true},
		},
		{
			"non-combining marks don't compose by default",
			"\u30cf\u309b",
			"\u30cf\u309b",
			nil,
		},
		{
			"hiragana iteration mark with voiced mark",
			"\u309d\u3099",
			"\u309e",
			nil,
		},
		{
			"katakana iteration mark with voiced mark",
			"\u30fd\u3099",
			"\u30fe",
			nil,
		},
		{
			"vertical iteration marks with voiced mark",
			"\u3031\u3099\u3033\u3099",
			"\u3032\u3034",
			nil,
		},
		{
			"special katakana wa row",
			"\u30ef\u3099\u30f0\u3099\u30f1\u3099\u30f2\u3099",
			"\u30f7\u30f8\u30f9\u30fa",
			nil,
		},
		{
			"u with dakuten",
			"\u3046\u3099\u30a6\u3099",
			"\u3094\u30f4",
			nil,
		},
		{
			"mark with no pending base passes through",
			"\u3099\u3042",
			"\u3099\u3042",
			nil,
		},
		{
			"uncomposable base keeps the mark",
			"\u3042\u3041\u3099",
			"\u3042\u3041\u3099",
			nil,
		},
		{
			"empty string",
			"",
			"",
			nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, process(t, "hira-kata-composition", tt.options, tt.input))
		})
	}
}
