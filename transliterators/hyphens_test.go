package transliterators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHyphensDefaultPrecedence(t *testing.T) {
	// The stage default targets the JIS X 0208-90 repertoire.
	tests := []struct {
		input    string
		expected string
	}{
		{"2019—2020", "2019—2020"}, // em dash maps to itself in jisx0208_90
		{"A–B", "A―B"},             // en dash to horizontal bar
		{"A-B", "A−B"},             // hyphen-minus to minus sign
		{"ー", "ー"},                  // prolonged sound mark kept
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, process(t, "hyphens", nil, tt.input))
	}
}

func TestHyphensWindowsPrecedence(t *testing.T) {
	options := map[string]any{"precedence": []string{"jisx0208_90_windows", "jisx0201"}}
	tests := []struct {
		input    string
		expected string
	}{
		{"—", "―"},   // em dash to horizontal bar
		{"~", "～"},   // tilde to fullwidth tilde
		{"−", "－"},   // minus sign to fullwidth hyphen-minus
		{"￤", "￤"},   // fullwidth broken bar maps to itself
		{"⸺", "――"},  // two-em dash doubles
		{"⸻", "―――"}, // three-em dash triples
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, process(t, "hyphens", options, tt.input))
	}
}

func TestHyphensASCIIPrecedence(t *testing.T) {
	options := map[string]any{"precedence": []string{"ascii"}}
	tests := []struct {
		input    string
		expected string
	}{
		{"—", "-"},
		{"–", "-"},
		{"゠", "="},
		{"′", "'"},
		{"″", "\""},
		{"・", "・"}, // no ascii variant, passes through
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, process(t, "hyphens", options, tt.input))
	}
}

func TestHyphensFallsBackThroughPrecedence(t *testing.T) {
	// ￤ has a jisx0201 variant ("|"), which wins when jisx0201 comes first.
	options := map[string]any{"precedence": []string{"jisx0201", "jisx0208_90_windows"}}
	assert.Equal(t, "|", process(t, "hyphens", options, "￤"))
	// ・ has no ascii variant; jisx0201 comes next.
	options = map[string]any{"precedence": []string{"ascii", "jisx0201"}}
	assert.Equal(t, "･", process(t, "hyphens", options, "・"))
}

func TestHyphensRejectsUnknownVariant(t *testing.T) {
	_, err := New("hyphens", map[string]any{"precedence": []string{"jisx0212"}})
	assert.ErrorContains(t, err, "unknown hyphens mapping variant")
}

func TestHyphensUnmappedPassThrough(t *testing.T) {
	assert.Equal(t, "hello world", process(t, "hyphens", nil, "hello world"))
}
