package transliterators

import "github.com/yosina-lib/yosina-go/chars"

// Voicing mappings for hiragana (unvoiced to voiced).
var hiraganaVoicing = map[string]string{
	"か": "が", "き": "ぎ", "く": "ぐ", "け": "げ", "こ": "ご",
	"さ": "ざ", "し": "じ", "す": "ず", "せ": "ぜ", "そ": "ぞ",
	"た": "だ", "ち": "ぢ", "つ": "づ", "て": "で", "と": "ど",
	"は": "ば", "ひ": "び", "ふ": "ぶ", "へ": "べ", "ほ": "ぼ",
	"う": "ゔ",
	"ゝ": "ゞ",
}

// Voicing mappings for katakana (unvoiced to voiced).
var katakanaVoicing = map[string]string{
	"カ": "ガ", "キ": "ギ", "ク": "グ", "ケ": "ゲ", "コ": "ゴ",
	"サ": "ザ", "シ": "ジ", "ス": "ズ", "セ": "ゼ", "ソ": "ゾ",
	"タ": "ダ", "チ": "ヂ", "ツ": "ヅ", "テ": "デ", "ト": "ド",
	"ハ": "バ", "ヒ": "ビ", "フ": "ブ", "ヘ": "ベ", "ホ": "ボ",
	"ウ": "ヴ",
	"ワ": "ヷ", "ヰ": "ヸ", "ヱ": "ヹ", "ヲ": "ヺ",
	"ヽ": "ヾ",
}

var (
	hiraganaUnvoicing = invertVoicing(hiraganaVoicing)
	katakanaUnvoicing = invertVoicing(katakanaVoicing)
	voicedKana        = voicedSet()
)

func invertVoicing(m map[string]string) map[string]string {
	inverted := make(map[string]string, len(m))
	for unvoiced, voiced := range m {
		inverted[voiced] = unvoiced
	}
	return inverted
}

func voicedSet() map[string]bool {
	set := make(map[string]bool, len(hiraganaVoicing)+len(katakanaVoicing))
	for _, voiced := range hiraganaVoicing {
		set[voiced] = true
	}
	for _, voiced := range katakanaVoicing {
		set[voiced] = true
	}
	return set
}

// Characters that cannot be repeated by an iteration mark.
var nonRepeatableKana = map[string]bool{
	// semi-voiced
	"ぱ": true, "ぴ": true, "ぷ": true, "ぺ": true, "ぽ": true,
	"パ": true, "ピ": true, "プ": true, "ペ": true, "ポ": true,
	// hatsuon
	"ん": true, "ン": true,
	// sokuon
	"っ": true, "ッ": true,
}

func isHiraganaChar(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)[0]
	return r >= 0x3041 && r <= 0x309f
}

func isKatakanaChar(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)[0]
	return r >= 0x30a0 && r <= 0x30ff
}

func isKanjiChar(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)[0]
	return r >= 0x4e00 && r <= 0x9fff
}

// japaneseIterationMarksTransliterator expands iteration marks into the
// character they repeat:
//   - ゝ / 〱 repeat the previous hiragana, unvoiced
//   - ゞ / 〲 repeat the previous hiragana, voiced where possible
//   - ヽ / 〳 and ヾ / 〴 do the same over katakana
//   - 々 repeats the previous kanji
//
// Invalid combinations pass through unchanged. The emitted character
// becomes the reference for a subsequent mark, so marks cascade.
type japaneseIterationMarksTransliterator struct {
	skipAlreadyTransliterated bool
}

func newJapaneseIterationMarks(options map[string]any) (Transliterator, error) {
	skip, err := boolOption(options, "skip_already_transliterated_chars", false)
	if err != nil {
		return nil, err
	}
	return &japaneseIterationMarksTransliterator{skipAlreadyTransliterated: skip}, nil
}

func (t *japaneseIterationMarksTransliterator) Transliterate(input []*chars.Char) []*chars.Char {
	result := make([]*chars.Char, 0, len(input))
	offset := 0
	var lastChar *chars.Char

	for _, c := range input {
		if isIterationMark(c.C) {
			shouldProcess := !t.skipAlreadyTransliterated || !c.IsTransliterated()
			if shouldProcess && lastChar != nil {
				if replacement, ok := iterationReplacement(c.C, lastChar.C); ok {
					result = append(result, &chars.Char{C: replacement, Offset: offset, Source: c})
					offset += len(replacement)
					// The replacement becomes the reference for the next mark.
					lastChar = &chars.Char{C: replacement, Offset: offset - len(replacement), Source: c}
					continue
				}
			}
		}

		result = append(result, c.WithOffset(offset))
		offset += len(c.C)

		if c.C != "" {
			lastChar = c.WithOffset(offset - len(c.C))
		}
	}
	return result
}

func isIterationMark(s string) bool {
	switch s {
	case "ゝ", "ゞ", "〱", "〲", "ヽ", "ヾ", "〳", "〴", "々":
		return true
	}
	return false
}

func iterationReplacement(mark, prev string) (string, bool) {
	if nonRepeatableKana[prev] {
		return "", false
	}

	switch mark {
	case "ゝ", "〱":
		if !isHiraganaChar(prev) {
			return "", false
		}
		if voicedKana[prev] {
			unvoiced, ok := hiraganaUnvoicing[prev]
			return unvoiced, ok
		}
		return prev, true

	case "ゞ", "〲":
		if !isHiraganaChar(prev) {
			return "", false
		}
		if voicedKana[prev] {
			return prev, true
		}
		voiced, ok := hiraganaVoicing[prev]
		return voiced, ok

	case "ヽ", "〳":
		if !isKatakanaChar(prev) {
			return "", false
		}
		if voicedKana[prev] {
			unvoiced, ok := katakanaUnvoicing[prev]
			return unvoiced, ok
		}
		return prev, true

	case "ヾ", "〴":
		if !isKatakanaChar(prev) {
			return "", false
		}
		if voicedKana[prev] {
			return prev, true
		}
		voiced, ok := katakanaVoicing[prev]
		return voiced, ok

	case "々":
		if !isKanjiChar(prev) {
			return "", false
		}
		return prev, true
	}
	return "", false
}
