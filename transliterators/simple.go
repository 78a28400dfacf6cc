package transliterators

import "github.com/yosina-lib/yosina-go/chars"

// mappedTransliterator replaces each character that has an entry in its
// table with a single replacement character. Used by the stages whose rules
// are a plain one-to-one (or one-to-sequence-kept-whole) lookup.
type mappedTransliterator struct {
	table map[string]string
}

func (t *mappedTransliterator) Transliterate(input []*chars.Char) []*chars.Char {
	result := make([]*chars.Char, 0, len(input))
	offset := 0
	for _, c := range input {
		if replacement, ok := t.table[c.C]; ok {
			result = append(result, &chars.Char{C: replacement, Offset: offset, Source: c})
			offset += len(replacement)
		} else {
			result = append(result, c.WithOffset(offset))
			offset += len(c.C)
		}
	}
	return result
}

// expandingTransliterator replaces each character that has an entry in its
// table with one output character per rune of the replacement. Used by the
// stages that decompose a single codepoint into several characters.
type expandingTransliterator struct {
	table map[string]string
}

func (t *expandingTransliterator) Transliterate(input []*chars.Char) []*chars.Char {
	result := make([]*chars.Char, 0, len(input))
	offset := 0
	for _, c := range input {
		if replacement, ok := t.table[c.C]; ok {
			for _, r := range replacement {
				s := string(r)
				result = append(result, &chars.Char{C: s, Offset: offset, Source: c})
				offset += len(s)
			}
		} else {
			result = append(result, c.WithOffset(offset))
			offset += len(c.C)
		}
	}
	return result
}

func newSpaces(map[string]any) (Transliterator, error) {
	return &mappedTransliterator{table: spacesTable}, nil
}

func newRadicals(map[string]any) (Transliterator, error) {
	return &mappedTransliterator{table: radicalsTable}, nil
}

func newIdeographicAnnotations(map[string]any) (Transliterator, error) {
	return &mappedTransliterator{table: ideographicAnnotationsTable}, nil
}

func newMathematicalAlphanumerics(map[string]any) (Transliterator, error) {
	return &mappedTransliterator{table: mathematicalAlphanumericsData}, nil
}

func newKanjiOldNew(map[string]any) (Transliterator, error) {
	return &mappedTransliterator{table: kanjiOldNewTable()}, nil
}

func newCombined(map[string]any) (Transliterator, error) {
	return &expandingTransliterator{table: combinedTable}, nil
}

func newRomanNumerals(map[string]any) (Transliterator, error) {
	return &expandingTransliterator{table: romanNumeralsTable}, nil
}
