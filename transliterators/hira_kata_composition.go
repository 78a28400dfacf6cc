package transliterators

import "github.com/yosina-lib/yosina-go/chars"

// hiraKataCompositionTransliterator combines a kana with a following voice
// mark into the composed codepoint, e.g. か + U+3099 becomes が. It holds
// one character of pending input.
type hiraKataCompositionTransliterator struct {
	// mark character to the composition table it selects
	table map[string]map[string]string
}

func newHiraKataComposition(options map[string]any) (Transliterator, error) {
	composeNonCombining, err := boolOption(options, "compose_non_combining_marks", false)
	if err != nil {
		return nil, err
	}
	voiced, semiVoiced := voicedCompositionTables()
	table := map[string]map[string]string{
		"\u3099": voiced,     // combining voiced mark
		"\u309a": semiVoiced, // combining semi-voiced mark
	}
	if composeNonCombining {
		table["\u309b"] = voiced     // non-combining voiced mark
		table["\u309c"] = semiVoiced // non-combining semi-voiced mark
	}
	return &hiraKataCompositionTransliterator{table: table}, nil
}

func (t *hiraKataCompositionTransliterator) Transliterate(input []*chars.Char) []*chars.Char {
	result := make([]*chars.Char, 0, len(input))
	offset := 0
	var pending *chars.Char

	for _, c := range input {
		if pending != nil {
			if markTable, ok := t.table[c.C]; ok {
				if composed, ok := markTable[pending.C]; ok {
					result = append(result, &chars.Char{C: composed, Offset: offset, Source: pending})
					offset += len(composed)
					pending = nil
					continue
				}
			}
			result = append(result, pending.WithOffset(offset))
			offset += len(pending.C)
		}
		pending = c
	}

	if pending != nil {
		result = append(result, pending.WithOffset(offset))
	}
	return result
}
