package transliterators

import (
	"strings"

	"github.com/yosina-lib/yosina-go/chars"
)

// circledOrSquaredTransliterator replaces circled or squared characters
// with a rendering of their content wrapped in the configured templates.
type circledOrSquaredTransliterator struct {
	circleTemplate string
	squareTemplate string
	includeEmojis  bool
}

func newCircledOrSquared(options map[string]any) (Transliterator, error) {
	includeEmojis, err := boolOption(options, "include_emojis", false)
	if err != nil {
		return nil, err
	}
	templates, err := stringMapOption(options, "templates")
	if err != nil {
		return nil, err
	}
	circle := templates["circle"]
	if circle == "" {
		circle = "(?)"
	}
	square := templates["square"]
	if square == "" {
		square = "[?]"
	}
	return &circledOrSquaredTransliterator{
		circleTemplate: circle,
		squareTemplate: square,
		includeEmojis:  includeEmojis,
	}, nil
}

func (t *circledOrSquaredTransliterator) Transliterate(input []*chars.Char) []*chars.Char {
	result := make([]*chars.Char, 0, len(input))
	offset := 0
	for _, c := range input {
		record, ok := circledOrSquaredTable[c.C]
		if ok && (!record.emoji || t.includeEmojis) {
			template := t.circleTemplate
			if record.square {
				template = t.squareTemplate
			}
			replacement := strings.ReplaceAll(template, "?", record.rendering)
			for _, r := range replacement {
				s := string(r)
				result = append(result, &chars.Char{C: s, Offset: offset, Source: c})
				offset += len(s)
			}
			continue
		}
		result = append(result, c.WithOffset(offset))
		offset += len(c.C)
	}
	return result
}
