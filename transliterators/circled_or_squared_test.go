package transliterators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircledOrSquared(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"circled number", "①②③④⑤", "(1)(2)(3)(4)(5)"},
		{"circled number twenty", "⑳", "(20)"},
		{"circled zero", "⓪", "(0)"},
		{"circled large numbers", "㊱㊲㊳", "(36)(37)(38)"},
		{"circled fifty", "㊿", "(50)"},
		{"circled capital letters", "ⒶⒷⒸ", "(A)(B)(C)"},
		{"circled small letters", "ⓐⓩ", "(a)(z)"},
		{"circled kanji", "㊀㊁㊂㊃㊄", "(一)(二)(三)(四)(五)"},
		{"circled kanji weekday", "㊊", "(月)"},
		{"circled katakana", "㋐㋾", "(ア)(ヲ)"},
		{"squared letter", "🅰", "[A]"},
		{"negative squared sequence", "🆂🅾🆂", "[S][O][S]"},
		{"regional indicators", "🇦🇿", "[A][Z]"},
		{"squared letters plain", "🄴🅂", "[E][S]"},
		{"emoji squared not processed by default", "🆘", "🆘"},
		{"mixed content", "Hello ① World Ⓐ Test", "Hello (1) World (A) Test"},
		{"sentence with circled items", "項目①は重要で、項目②は補足です。", "項目(1)は重要で、項目(2)は補足です。"},
		{"unmapped characters pass through", "hello world 123 abc こんにちは", "hello world 123 abc こんにちは"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, process(t, "circled-or-squared", nil, tt.input))
		})
	}
}

func TestCircledOrSquaredIncludeEmojis(t *testing.T) {
	options := map[string]any{"include_emojis": true}
	assert.Equal(t, "[SOS]", process(t, "circled-or-squared", options, "🆘"))
	assert.Equal(t, "[OK][NG]", process(t, "circled-or-squared", options, "🆗🆖"))
}

func TestCircledOrSquaredCustomTemplates(t *testing.T) {
	options := map[string]any{
		"templates": map[string]any{
			"circle": "〔?〕",
			"square": "【?】",
		},
	}
	assert.Equal(t, "〔1〕", process(t, "circled-or-squared", options, "①"))
	assert.Equal(t, "【A】", process(t, "circled-or-squared", options, "🅰"))
	assert.Equal(t, "〔一〕", process(t, "circled-or-squared", options, "㊀"))
}

func TestCombined(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"control pictures", "␀␁␂␃␄", "NULSOHSTXETXEOT"},
		{"backspace and tab", "␈␉", "BSHT"},
		{"space and delete", "␠␡", "SPDEL"},
		{"parenthesized numbers", "⑴⑸⑽⒇", "(1)(5)(10)(20)"},
		{"period numbers", "⒈⒑⒛", "1.10.20."},
		{"parenthesized letters", "⒜⒵", "(a)(z)"},
		{"parenthesized ideographs", "㈠㈪㈱", "(一)(月)(株)"},
		{"japanese months", "㋀㋁㋂", "1月2月3月"},
		{"japanese units", "㌀㌁㌂", "アパートアルファアンペア"},
		{"era names", "㍻㍼㍽㍾", "平成昭和大正明治"},
		{"reiwa era", "㋿", "令和"},
		{"company", "㍿", "株式会社"},
		{"scientific units", "㍱㎑㎏", "hPakHzkg"},
		{"mixed with text", "Hello ⑴ World ␉", "Hello (1) World HT"},
		{"unmapped characters pass through", "hello world 123 abc こんにちは", "hello world 123 abc こんにちは"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, process(t, "combined", nil, tt.input))
		})
	}
}
