package transliterators

import (
	"fmt"

	"github.com/yosina-lib/yosina-go/chars"
)

// hyphensRecord holds the candidate replacements for one hyphen-like
// character, one per target repertoire.
type hyphensRecord struct {
	ascii             string
	jisx0201          string
	jisx0208_90       string
	jisx0208_90Windows string
	jisx0208Verbatim  string
}

// Default precedence when the stage is instantiated directly.
var defaultHyphensPrecedence = []string{"jisx0208_90"}

// hyphensTransliterator substitutes commoner counterparts for hyphens and
// a number of symbols, picking the first variant available in the
// configured precedence order.
type hyphensTransliterator struct {
	precedence []string
}

func newHyphens(options map[string]any) (Transliterator, error) {
	precedence, err := stringListOption(options, "precedence")
	if err != nil {
		return nil, err
	}
	if precedence == nil {
		precedence = defaultHyphensPrecedence
	}
	for _, variant := range precedence {
		switch variant {
		case "ascii", "jisx0201", "jisx0208_90", "jisx0208_90_windows", "jisx0208_verbatim":
		default:
			return nil, fmt.Errorf("unknown hyphens mapping variant: %s", variant)
		}
	}
	return &hyphensTransliterator{precedence: precedence}, nil
}

func (t *hyphensTransliterator) Transliterate(input []*chars.Char) []*chars.Char {
	result := make([]*chars.Char, 0, len(input))
	offset := 0
	for _, c := range input {
		if record, ok := hyphensTable[c.C]; ok {
			replacement := t.replacement(record)
			if replacement != "" && replacement != c.C {
				result = append(result, &chars.Char{C: replacement, Offset: offset, Source: c})
				offset += len(replacement)
				continue
			}
		}
		result = append(result, c.WithOffset(offset))
		offset += len(c.C)
	}
	return result
}

func (t *hyphensTransliterator) replacement(record hyphensRecord) string {
	for _, variant := range t.precedence {
		var candidate string
		switch variant {
		case "ascii":
			candidate = record.ascii
		case "jisx0201":
			candidate = record.jisx0201
		case "jisx0208_90":
			candidate = record.jisx0208_90
		case "jisx0208_90_windows":
			candidate = record.jisx0208_90Windows
		case "jisx0208_verbatim":
			candidate = record.jisx0208Verbatim
		}
		if candidate != "" {
			return candidate
		}
	}
	return ""
}
