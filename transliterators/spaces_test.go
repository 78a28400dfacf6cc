package transliterators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpaces(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"ideographic space", "hello　world", "hello world"},
		{"no-break space", "A B", "A B"},
		{"en and em spaces", "A B C", "A B C"},
		{"zero width space becomes plain space", "A​B", "A B"},
		{"BOM is removed", "\ufeffhello", "hello"},
		{"mongolian vowel separator is removed", "A᠎B", "AB"},
		{"plain text unchanged", "hello world", "hello world"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, process(t, "spaces", nil, tt.input))
		})
	}
}

func TestIdeographicAnnotations(t *testing.T) {
	assert.Equal(t, "上下", process(t, "ideographic-annotations", nil, "㆖㆘"))
	assert.Equal(t, "一二三四", process(t, "ideographic-annotations", nil, "㆒㆓㆔㆕"))
	assert.Equal(t, "天地人", process(t, "ideographic-annotations", nil, "㆝㆞㆟"))
}

func TestMathematicalAlphanumerics(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bold capitals", "\U0001d400\U0001d401\U0001d402", "ABC"},
		{"bold digits", "\U0001d7cf\U0001d7d0\U0001d7d1", "123"},
		{"monospace smalls", "\U0001d68a\U0001d68b\U0001d68c", "abc"},
		{"double-struck capitals", "\U0001d538\U0001d539", "AB"},
		{"mixed with plain text", "x = \U0001d465", "x = x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, process(t, "mathematical-alphanumerics", nil, tt.input))
		})
	}
}

func TestRomanNumerals(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Ⅰ", "I"},
		{"Ⅲ", "III"},
		{"Ⅷ", "VIII"},
		{"Ⅻ", "XII"},
		{"ⅸ", "ix"},
		{"ⅿ", "m"},
		{"第Ⅱ章", "第II章"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, process(t, "roman-numerals", nil, tt.input))
	}
}
