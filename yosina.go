// Package yosina transliterates Japanese text: old-form kanji to new,
// half/full-width folding, space and hyphen normalization, iteration mark
// expansion, circled and squared characters, CJK radicals, and
// ideographic variation sequence handling.
//
// The main entry point is MakeTransliterator, which accepts either a
// TransliterationRecipe or an explicit list of stage configurations and
// returns a string-to-string function.
package yosina

import (
	"errors"
	"fmt"

	"github.com/yosina-lib/yosina-go/chars"
	"github.com/yosina-lib/yosina-go/transliterators"
)

// Char is the character unit flowing through the transliterator stages.
type Char = chars.Char

// Transliterator transforms one character array into another.
type Transliterator = transliterators.Transliterator

// TransliteratorConfig pairs a stage identifier with its options.
type TransliteratorConfig = transliterators.Config

// ErrNoTransliterators is returned when a pipeline is built from an empty
// stage list.
var ErrNoTransliterators = errors.New("at least one transliterator must be specified")

// chainedTransliterator applies its stages in order.
type chainedTransliterator struct {
	stages []Transliterator
}

func (t *chainedTransliterator) Transliterate(input []*chars.Char) []*chars.Char {
	for _, stage := range t.stages {
		input = stage.Transliterate(input)
	}
	return input
}

// MakeChainedTransliterator creates a transliterator that applies all the
// given configurations in sequence.
func MakeChainedTransliterator(configs []TransliteratorConfig) (Transliterator, error) {
	if len(configs) == 0 {
		return nil, ErrNoTransliterators
	}
	stages := make([]Transliterator, 0, len(configs))
	for _, config := range configs {
		stage, err := transliterators.New(config.Name, config.Options)
		if err != nil {
			return nil, err
		}
		stages = append(stages, stage)
	}
	return &chainedTransliterator{stages: stages}, nil
}

// MakeTransliterator compiles a recipe into a string-to-string
// transliterator function.
func MakeTransliterator(recipe TransliterationRecipe) (func(string) string, error) {
	configs, err := BuildTransliteratorConfigsFromRecipe(recipe)
	if err != nil {
		return nil, fmt.Errorf("invalid recipe: %w", err)
	}
	return MakeTransliteratorFromConfigs(configs)
}

// MakeTransliteratorFromConfigs builds a string-to-string transliterator
// function from an explicit stage list.
func MakeTransliteratorFromConfigs(configs []TransliteratorConfig) (func(string) string, error) {
	chained, err := MakeChainedTransliterator(configs)
	if err != nil {
		return nil, err
	}
	return func(input string) string {
		return chars.FromChars(chained.Transliterate(chars.BuildCharList(input)))
	}, nil
}
