// Service normalize exposes Japanese text normalization over HTTP. It
// compiles a transliteration recipe per request and reports what changed.
package normalize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"encore.dev/rlog"
	"github.com/abadojack/whatlanggo"
	"github.com/mozillazg/go-unidecode"

	yosina "github.com/yosina-lib/yosina-go"
)

// NormalizationRequest represents a request to normalize text
type NormalizationRequest struct {
	Text          string         `json:"text"`                     // Text to normalize
	Recipe        *RecipeOptions `json:"recipe,omitempty"`         // Normalization recipe (optional - defaults applied)
	ASCIIFallback bool           `json:"ascii_fallback,omitempty"` // Transliterate non-Japanese input to ASCII instead
}

// RecipeOptions mirrors the library recipe for the options the service
// exposes.
type RecipeOptions struct {
	KanjiOldNew                   bool     `json:"kanji_old_new,omitempty"`
	ReplaceSpaces                 bool     `json:"replace_spaces,omitempty"`
	ReplaceHyphens                bool     `json:"replace_hyphens,omitempty"`
	HyphensPrecedence             []string `json:"hyphens_precedence,omitempty"`
	ReplaceCircledOrSquared       bool     `json:"replace_circled_or_squared,omitempty"`
	ReplaceCombined               bool     `json:"replace_combined,omitempty"`
	ReplaceIdeographicAnnotations bool     `json:"replace_ideographic_annotations,omitempty"`
	ReplaceRadicals               bool     `json:"replace_radicals,omitempty"`
	ReplaceMathematical           bool     `json:"replace_mathematical_alphanumerics,omitempty"`
	ReplaceRomanNumerals          bool     `json:"replace_roman_numerals,omitempty"`
	ReplaceIterationMarks         bool     `json:"replace_japanese_iteration_marks,omitempty"`
	ReplaceSuspiciousHyphens      bool     `json:"replace_suspicious_hyphens,omitempty"`
	CombineDecomposedKanas        bool     `json:"combine_decomposed_kanas,omitempty"`
	ToFullwidth                   bool     `json:"to_fullwidth,omitempty"`
	ToHalfwidth                   bool     `json:"to_halfwidth,omitempty"`
	HankakuKana                   bool     `json:"hankaku_kana,omitempty"`
	RemoveIvsSvs                  bool     `json:"remove_ivs_svs,omitempty"`
}

// NormalizationResponse represents the result of a normalization
type NormalizationResponse struct {
	InputText    string `json:"input_text"`
	OutputText   string `json:"output_text"`
	DetectedLang string `json:"detected_lang"` // ISO 639-3 code reported by language detection
	Changed      bool   `json:"changed"`
	Method       string `json:"method"` // "recipe" or "ascii_fallback"
}

// Normalize applies the requested normalizations to the text
//
//encore:api public method=POST path=/normalize
func Normalize(ctx context.Context, req *NormalizationRequest) (*NormalizationResponse, error) {
	if err := validateNormalizationRequest(req); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	info := whatlanggo.Detect(req.Text)
	lang := info.Lang.Iso6393()

	// Non-Japanese input can optionally be folded to ASCII instead of
	// going through the Japanese normalization pipeline.
	if req.ASCIIFallback && info.Lang != whatlanggo.Jpn {
		output := unidecode.Unidecode(req.Text)
		rlog.Info("ascii fallback applied", "lang", lang, "len", len(req.Text))
		return &NormalizationResponse{
			InputText:    req.Text,
			OutputText:   output,
			DetectedLang: lang,
			Changed:      output != req.Text,
			Method:       "ascii_fallback",
		}, nil
	}

	transliterate, err := makeTransliterator(req.Recipe)
	if err != nil {
		return nil, fmt.Errorf("invalid recipe: %w", err)
	}

	output := transliterate(req.Text)
	rlog.Info("normalized text", "lang", lang, "len", len(req.Text), "changed", output != req.Text)

	return &NormalizationResponse{
		InputText:    req.Text,
		OutputText:   output,
		DetectedLang: lang,
		Changed:      output != req.Text,
		Method:       "recipe",
	}, nil
}

// defaultRecipe enables the conservative normalizations that are safe for
// arbitrary Japanese text.
func defaultRecipe() *RecipeOptions {
	return &RecipeOptions{
		KanjiOldNew:                   true,
		ReplaceSpaces:                 true,
		ReplaceCircledOrSquared:       true,
		ReplaceCombined:               true,
		ReplaceIdeographicAnnotations: true,
		ReplaceRadicals:               true,
		ReplaceMathematical:           true,
		ReplaceIterationMarks:         true,
	}
}

func makeTransliterator(options *RecipeOptions) (func(string) string, error) {
	if options == nil {
		options = defaultRecipe()
	}
	recipe := yosina.TransliterationRecipe{
		KanjiOldNew:                       options.KanjiOldNew,
		ReplaceSpaces:                     options.ReplaceSpaces,
		ReplaceHyphens:                    options.ReplaceHyphens,
		HyphensPrecedence:                 options.HyphensPrecedence,
		ReplaceCircledOrSquaredCharacters: options.ReplaceCircledOrSquared,
		ReplaceCombinedCharacters:         options.ReplaceCombined,
		ReplaceIdeographicAnnotations:     options.ReplaceIdeographicAnnotations,
		ReplaceRadicals:                   options.ReplaceRadicals,
		ReplaceMathematicalAlphanumerics:  options.ReplaceMathematical,
		ReplaceRomanNumerals:              options.ReplaceRomanNumerals,
		ReplaceJapaneseIterationMarks:     options.ReplaceIterationMarks,
		ReplaceSuspiciousHyphensToProlongedSoundMarks: options.ReplaceSuspiciousHyphens,
		CombineDecomposedHiraganasAndKatakanas:        options.CombineDecomposedKanas,
		ToFullwidth: options.ToFullwidth,
		ToHalfwidth: options.ToHalfwidth,
		HankakuKana: options.HankakuKana,
		RemoveIvsSvs: options.RemoveIvsSvs,
	}
	return yosina.MakeTransliterator(recipe)
}

func validateNormalizationRequest(req *NormalizationRequest) error {
	if req == nil {
		return errors.New("request is required")
	}
	if strings.TrimSpace(req.Text) == "" {
		return errors.New("text is required")
	}
	if !utf8.ValidString(req.Text) {
		return errors.New("text must be valid UTF-8")
	}
	if len(req.Text) > 100000 {
		return errors.New("text too long (max 100000 bytes)")
	}
	if req.Recipe != nil && req.Recipe.ToFullwidth && req.Recipe.ToHalfwidth {
		return errors.New("to_fullwidth and to_halfwidth are mutually exclusive")
	}
	return nil
}
