package transliterators

import (
	"unicode/utf8"

	"github.com/yosina-lib/yosina-go/chars"
)

// charType classifies a codepoint for the prolonged sound mark rules: a
// family in the upper bits combined with modifier flags in the lower bits.
type charType uint8

const (
	ctHalfwidth          charType = 1 << 0
	ctVowelEnded         charType = 1 << 1
	ctHatsuon            charType = 1 << 2
	ctSokuon             charType = 1 << 3
	ctProlongedSoundMark charType = 1 << 4

	ctOther    charType = 0x00
	ctHiragana charType = 0x20
	ctKatakana charType = 0x40
	ctAlphabet charType = 0x60
	ctDigit    charType = 0x80
	ctEither   charType = 0xa0

	ctFamilyMask charType = 0xe0
)

func (t charType) isAlnum() bool {
	family := t & ctFamilyMask
	return family == ctAlphabet || family == ctDigit
}

func (t charType) isHalfwidth() bool {
	return t&ctHalfwidth != 0
}

// Characters that need classification beyond their block.
var specialCharTypes = map[rune]charType{
	0xff70: ctKatakana | ctProlongedSoundMark | ctHalfwidth, // ｰ
	0x30fc: ctEither | ctProlongedSoundMark,                 // ー
	0x3063: ctHiragana | ctSokuon,                           // っ
	0x3093: ctHiragana | ctHatsuon,                          // ん
	0x30c3: ctKatakana | ctSokuon,                           // ッ
	0x30f3: ctKatakana | ctHatsuon,                          // ン
	0xff6f: ctKatakana | ctSokuon | ctHalfwidth,             // ｯ
	0xff9d: ctKatakana | ctHatsuon | ctHalfwidth,            // ﾝ
}

func charTypeOf(r rune) charType {
	switch {
	case r >= 0x30 && r <= 0x39:
		return ctDigit | ctHalfwidth
	case r >= 0xff10 && r <= 0xff19:
		return ctDigit
	case (r >= 0x41 && r <= 0x5a) || (r >= 0x61 && r <= 0x7a):
		return ctAlphabet | ctHalfwidth
	case (r >= 0xff21 && r <= 0xff3a) || (r >= 0xff41 && r <= 0xff5a):
		return ctAlphabet
	}
	if t, ok := specialCharTypes[r]; ok {
		return t
	}
	switch {
	case (r >= 0x3041 && r <= 0x309c) || r == 0x309f:
		return ctHiragana | ctVowelEnded
	case (r >= 0x30a1 && r <= 0x30fa) || (r >= 0x30fd && r <= 0x30ff):
		return ctKatakana | ctVowelEnded
	case (r >= 0xff66 && r <= 0xff6f) || (r >= 0xff71 && r <= 0xff9f):
		return ctKatakana | ctVowelEnded | ctHalfwidth
	}
	return ctOther
}

// Hyphen-like characters that may stand for a prolonged sound mark.
var hyphenLikeChars = map[string]bool{
	"-": true, // hyphen-minus
	"‐": true, // hyphen
	"—": true, // em dash
	"―": true, // horizontal bar
	"−": true, // minus sign
	"－": true, // fullwidth hyphen-minus
	"ｰ": true, // halfwidth prolonged sound mark
	"ー": true, // prolonged sound mark
}

func firstRuneType(s string) charType {
	if s == "" {
		return ctOther
	}
	r, _ := utf8.DecodeRuneInString(s)
	return charTypeOf(r)
}

// prolongedSoundMarksTransliterator canonicalizes hyphen-like characters
// that follow a prolongable Japanese character into the prolonged sound
// mark, and optionally converts prolonged marks stranded between
// alphanumerics back into hyphens.
type prolongedSoundMarksTransliterator struct {
	skipAlreadyTransliterated     bool
	replaceProlongedMarksFollowingAlnums bool
	prolongables                  charType
}

func newProlongedSoundMarks(options map[string]any) (Transliterator, error) {
	skip, err := boolOption(options, "skip_already_transliterated_chars", false)
	if err != nil {
		return nil, err
	}
	allowHatsuon, err := boolOption(options, "allow_prolonged_hatsuon", false)
	if err != nil {
		return nil, err
	}
	allowSokuon, err := boolOption(options, "allow_prolonged_sokuon", false)
	if err != nil {
		return nil, err
	}
	replaceFollowingAlnums, err := boolOption(options, "replace_prolonged_marks_following_alnums", false)
	if err != nil {
		return nil, err
	}

	prolongables := ctVowelEnded | ctProlongedSoundMark
	if allowHatsuon {
		prolongables |= ctHatsuon
	}
	if allowSokuon {
		prolongables |= ctSokuon
	}
	return &prolongedSoundMarksTransliterator{
		skipAlreadyTransliterated:     skip,
		replaceProlongedMarksFollowingAlnums: replaceFollowingAlnums,
		prolongables:                  prolongables,
	}, nil
}

func (t *prolongedSoundMarksTransliterator) Transliterate(input []*chars.Char) []*chars.Char {
	result := make([]*chars.Char, 0, len(input))
	offset := 0
	var lookaheadBuf []*chars.Char
	processedCharsInLookahead := false
	var lastNonProlonged *chars.Char
	var lastNonProlongedType charType

	for _, c := range input {
		if len(lookaheadBuf) > 0 {
			if hyphenLikeChars[c.C] {
				if c.Source != nil {
					processedCharsInLookahead = true
				}
				lookaheadBuf = append(lookaheadBuf, c)
				continue
			}
			prevNonProlonged := lastNonProlonged
			prevType := lastNonProlongedType
			lastNonProlonged = c
			lastNonProlongedType = firstRuneType(c.C)

			if (prevNonProlonged == nil || prevType.isAlnum()) &&
				(!t.skipAlreadyTransliterated || !processedCharsInLookahead) {
				halfwidth := prevType.isHalfwidth()
				if prevNonProlonged == nil {
					halfwidth = lastNonProlongedType.isHalfwidth()
				}
				replacement := "－"
				if halfwidth {
					replacement = "-"
				}
				for _, buffered := range lookaheadBuf {
					result = append(result, &chars.Char{C: replacement, Offset: offset, Source: buffered})
					offset += len(replacement)
				}
			} else {
				for _, buffered := range lookaheadBuf {
					result = append(result, buffered.WithOffset(offset))
					offset += len(buffered.C)
				}
			}

			lookaheadBuf = lookaheadBuf[:0]
			result = append(result, c.WithOffset(offset))
			offset += len(c.C)
			processedCharsInLookahead = false
			continue
		}

		if hyphenLikeChars[c.C] {
			shouldProcess := !t.skipAlreadyTransliterated || !c.IsTransliterated()
			if shouldProcess && lastNonProlonged != nil {
				if t.prolongables&lastNonProlongedType != 0 {
					replacement := "ー"
					if lastNonProlongedType.isHalfwidth() {
						replacement = "ｰ"
					}
					result = append(result, &chars.Char{C: replacement, Offset: offset, Source: c})
					offset += len(replacement)
					continue
				}
				if t.replaceProlongedMarksFollowingAlnums && lastNonProlongedType.isAlnum() {
					lookaheadBuf = append(lookaheadBuf, c)
					continue
				}
			}
		} else {
			lastNonProlonged = c
			lastNonProlongedType = firstRuneType(c.C)
		}

		result = append(result, c.WithOffset(offset))
		offset += len(c.C)
	}
	return result
}
