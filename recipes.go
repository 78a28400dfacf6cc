package yosina

import "errors"

// HiraKataMode selects the conversion direction of the hira-kata stage.
type HiraKataMode string

const (
	HiraToKata HiraKataMode = "hira-to-kata"
	KataToHira HiraKataMode = "kata-to-hira"
)

// Charset selects the glyph repertoire assumed during IVS/SVS
// transliteration.
type Charset string

const (
	UniJIS2004  Charset = "unijis_2004"
	UniJIS90    Charset = "unijis_90"
	AdobeJapan1 Charset = "adobe_japan1"
)

// TransliterationRecipe is the declarative configuration of a
// transliteration pipeline. The zero value enables nothing; the compiler
// turns enabled options into an ordered stage list.
type TransliterationRecipe struct {
	// KanjiOldNew replaces old-style kanji glyphs (kyujitai) with their
	// modern equivalents (shinjitai), e.g. "舊字體" becomes "旧字体".
	KanjiOldNew bool

	// HiraKata converts between hiragana and katakana when set to
	// HiraToKata or KataToHira.
	HiraKata HiraKataMode

	// ReplaceJapaneseIterationMarks replaces iteration marks with the
	// character they repeat, e.g. "時々" becomes "時時".
	ReplaceJapaneseIterationMarks bool

	// ReplaceSuspiciousHyphensToProlongedSoundMarks replaces hyphens that
	// follow prolongable characters with prolonged sound marks, e.g.
	// "スーパ-" becomes "スーパー".
	ReplaceSuspiciousHyphensToProlongedSoundMarks bool

	// ReplaceCombinedCharacters expands combined characters, e.g. "㍻"
	// becomes "平成" and "㈱" becomes "(株)".
	ReplaceCombinedCharacters bool

	// ReplaceCircledOrSquaredCharacters replaces circled or squared
	// characters with templated renderings, e.g. "①" becomes "(1)".
	ReplaceCircledOrSquaredCharacters bool

	// ExcludeEmojis leaves emoji variants of circled/squared characters
	// untouched. Only meaningful with ReplaceCircledOrSquaredCharacters.
	ExcludeEmojis bool

	// ReplaceIdeographicAnnotations replaces ideographic annotation marks,
	// e.g. "㆖㆘" becomes "上下".
	ReplaceIdeographicAnnotations bool

	// ReplaceRadicals replaces Kangxi radicals with the CJK ideographs
	// they resemble, e.g. "⾔⾨⾷" becomes "言門食".
	ReplaceRadicals bool

	// ReplaceSpaces folds various space characters to plain whitespace.
	ReplaceSpaces bool

	// ReplaceHyphens normalizes dash and hyphen symbols to those common
	// in Japanese writing.
	ReplaceHyphens bool

	// HyphensPrecedence overrides the mapping precedence used by
	// ReplaceHyphens. Defaults to [jisx0208_90_windows, jisx0201].
	HyphensPrecedence []string

	// ReplaceMathematicalAlphanumerics folds mathematical styled
	// alphanumerics to plain ASCII, e.g. "𝐀𝐁𝐂" becomes "ABC".
	ReplaceMathematicalAlphanumerics bool

	// ReplaceRomanNumerals decomposes roman numeral codepoints into ASCII
	// letters, e.g. "Ⅲ" becomes "III".
	ReplaceRomanNumerals bool

	// CombineDecomposedHiraganasAndKatakanas combines decomposed kana
	// with following voice marks into composed codepoints.
	CombineDecomposedHiraganasAndKatakanas bool

	// ToFullwidth replaces halfwidth characters with fullwidth
	// equivalents, e.g. "ABC" becomes "ＡＢＣ" and "ｶﾀｶﾅ" becomes "カタカナ".
	ToFullwidth bool

	// U005cAsYenSign treats U+005C as the yen sign during ToFullwidth.
	U005cAsYenSign bool

	// ToHalfwidth replaces fullwidth characters with halfwidth
	// equivalents. Mutually exclusive with ToFullwidth.
	ToHalfwidth bool

	// HankakuKana additionally converts katakana to halfwidth forms
	// during ToHalfwidth.
	HankakuKana bool

	// RemoveIvsSvs replaces variation sequences with the plain base
	// characters of the selected Charset.
	RemoveIvsSvs bool

	// DropAllSelectors strips even unmapped variation selectors during
	// RemoveIvsSvs.
	DropAllSelectors bool

	// Charset assumed during IVS/SVS transliteration. Defaults to
	// UniJIS2004.
	Charset Charset
}

// Default precedence applied when ReplaceHyphens is enabled without an
// explicit precedence list.
var defaultRecipeHyphensPrecedence = []string{"jisx0208_90_windows", "jisx0201"}

// configListBuilder assembles the stage list in two ordered slots. Head
// inserts append to the head list; middle inserts prepend to the tail list
// (so later-added middles execute earlier); tail inserts append to the
// tail list. The final order is head followed by tail.
type configListBuilder struct {
	head []TransliteratorConfig
	tail []TransliteratorConfig
}

func findConfig(configs []TransliteratorConfig, name string) int {
	for i, config := range configs {
		if config.Name == name {
			return i
		}
	}
	return -1
}

func (b *configListBuilder) insertHead(config TransliteratorConfig, forceReplace bool) {
	if i := findConfig(b.head, config.Name); i >= 0 {
		if forceReplace {
			b.head[i] = config
		}
		return
	}
	b.head = append(b.head, config)
}

func (b *configListBuilder) insertMiddle(config TransliteratorConfig, forceReplace bool) {
	if i := findConfig(b.tail, config.Name); i >= 0 {
		if forceReplace {
			b.tail[i] = config
		}
		return
	}
	b.tail = append([]TransliteratorConfig{config}, b.tail...)
}

func (b *configListBuilder) insertTail(config TransliteratorConfig, forceReplace bool) {
	if i := findConfig(b.tail, config.Name); i >= 0 {
		if forceReplace {
			b.tail[i] = config
		}
		return
	}
	b.tail = append(b.tail, config)
}

func (b *configListBuilder) build() []TransliteratorConfig {
	result := make([]TransliteratorConfig, 0, len(b.head)+len(b.tail))
	result = append(result, b.head...)
	result = append(result, b.tail...)
	return result
}

// insertRemoveIvsSvs brackets the pipeline with the ivs-svs-base stage:
// the forward mode at the head so downstream tables can match
// glyph-qualified sequences, the base mode at the tail to strip them
// again. force-replace keeps the bracketing outermost when applied twice.
func (b *configListBuilder) insertRemoveIvsSvs(dropSelectorsAltogether bool, charset Charset) {
	b.insertHead(TransliteratorConfig{
		Name:    "ivs-svs-base",
		Options: map[string]any{"mode": "ivs-or-svs"},
	}, true)
	b.insertTail(TransliteratorConfig{
		Name: "ivs-svs-base",
		Options: map[string]any{
			"mode":                      "base",
			"drop_selectors_altogether": dropSelectorsAltogether,
			"charset":                   string(charset),
		},
	}, true)
}

func (r *TransliterationRecipe) charset() Charset {
	if r.Charset == "" {
		return UniJIS2004
	}
	return r.Charset
}

// BuildTransliteratorConfigsFromRecipe translates a recipe into the
// ordered stage list it denotes. The application order below is fixed;
// the slot discipline encodes the non-commutative dependencies between
// stages.
func BuildTransliteratorConfigsFromRecipe(recipe TransliterationRecipe) ([]TransliteratorConfig, error) {
	if recipe.ToFullwidth && recipe.ToHalfwidth {
		return nil, errors.New("to_fullwidth and to_halfwidth are mutually exclusive")
	}

	b := &configListBuilder{}

	if recipe.KanjiOldNew {
		b.insertRemoveIvsSvs(false, recipe.charset())
		b.insertMiddle(TransliteratorConfig{Name: "kanji-old-new", Options: map[string]any{}}, false)
	}

	if recipe.ReplaceSuspiciousHyphensToProlongedSoundMarks {
		b.insertMiddle(TransliteratorConfig{
			Name:    "prolonged-sound-marks",
			Options: map[string]any{"replace_prolonged_marks_following_alnums": true},
		}, false)
	}

	if recipe.ReplaceCircledOrSquaredCharacters {
		b.insertMiddle(TransliteratorConfig{
			Name:    "circled-or-squared",
			Options: map[string]any{"include_emojis": !recipe.ExcludeEmojis},
		}, false)
	}

	if recipe.ReplaceCombinedCharacters {
		b.insertMiddle(TransliteratorConfig{Name: "combined", Options: map[string]any{}}, false)
	}

	if recipe.ReplaceIdeographicAnnotations {
		b.insertMiddle(TransliteratorConfig{Name: "ideographic-annotations", Options: map[string]any{}}, false)
	}

	if recipe.ReplaceRadicals {
		b.insertMiddle(TransliteratorConfig{Name: "radicals", Options: map[string]any{}}, false)
	}

	if recipe.ReplaceSpaces {
		b.insertMiddle(TransliteratorConfig{Name: "spaces", Options: map[string]any{}}, false)
	}

	if recipe.ReplaceHyphens {
		precedence := recipe.HyphensPrecedence
		if precedence == nil {
			precedence = defaultRecipeHyphensPrecedence
		}
		b.insertMiddle(TransliteratorConfig{
			Name:    "hyphens",
			Options: map[string]any{"precedence": precedence},
		}, false)
	}

	if recipe.ReplaceMathematicalAlphanumerics {
		b.insertMiddle(TransliteratorConfig{Name: "mathematical-alphanumerics", Options: map[string]any{}}, false)
	}

	if recipe.ReplaceRomanNumerals {
		b.insertMiddle(TransliteratorConfig{Name: "roman-numerals", Options: map[string]any{}}, false)
	}

	if recipe.CombineDecomposedHiraganasAndKatakanas {
		b.insertMiddle(TransliteratorConfig{
			Name:    "hira-kata-composition",
			Options: map[string]any{"compose_non_combining_marks": true},
		}, false)
	}

	if recipe.ToFullwidth {
		b.insertTail(TransliteratorConfig{
			Name: "jisx0201-and-alike",
			Options: map[string]any{
				"fullwidth_to_halfwidth":     false,
				"combine_voiced_sound_marks": true,
				"u005c_as_yen_sign":          recipe.U005cAsYenSign,
			},
		}, false)
	}

	if recipe.HiraKata != "" {
		b.insertTail(TransliteratorConfig{
			Name:    "hira-kata",
			Options: map[string]any{"mode": string(recipe.HiraKata)},
		}, false)
	}

	if recipe.ReplaceJapaneseIterationMarks {
		// Compose decomposed forms first so the mark sees the composed kana.
		b.insertHead(TransliteratorConfig{
			Name:    "hira-kata-composition",
			Options: map[string]any{"compose_non_combining_marks": true},
		}, false)
		b.insertMiddle(TransliteratorConfig{Name: "japanese-iteration-marks", Options: map[string]any{}}, false)
	}

	if recipe.ToHalfwidth {
		b.insertTail(TransliteratorConfig{
			Name: "jisx0201-and-alike",
			Options: map[string]any{
				"fullwidth_to_halfwidth": true,
				"convert_gl":             true,
				"convert_gr":             recipe.HankakuKana,
			},
		}, false)
	}

	if recipe.RemoveIvsSvs {
		b.insertRemoveIvsSvs(recipe.DropAllSelectors, recipe.charset())
	}

	return b.build(), nil
}
