// Package transliterators implements the individual transliterator stages
// and the factory registry that maps stage identifiers to constructors.
package transliterators

import (
	"fmt"

	"github.com/yosina-lib/yosina-go/chars"
)

// Transliterator transforms a character array into another character
// array. Implementations never mutate their input; emitted characters
// reference input characters through their Source field.
type Transliterator interface {
	Transliterate(input []*chars.Char) []*chars.Char
}

// Factory builds a configured transliterator from an options map.
type Factory func(options map[string]any) (Transliterator, error)

// Config pairs a transliterator identifier with its options.
type Config struct {
	Name    string
	Options map[string]any
}

var factories = map[string]Factory{
	"circled-or-squared":        newCircledOrSquared,
	"combined":                  newCombined,
	"hira-kata":                 newHiraKata,
	"hira-kata-composition":     newHiraKataComposition,
	"hyphens":                   newHyphens,
	"ideographic-annotations":   newIdeographicAnnotations,
	"ivs-svs-base":              newIvsSvsBase,
	"japanese-iteration-marks":  newJapaneseIterationMarks,
	"jisx0201-and-alike":        newJisx0201AndAlike,
	"kanji-old-new":             newKanjiOldNew,
	"mathematical-alphanumerics": newMathematicalAlphanumerics,
	"prolonged-sound-marks":     newProlongedSoundMarks,
	"radicals":                  newRadicals,
	"roman-numerals":            newRomanNumerals,
	"spaces":                    newSpaces,
}

// Names returns the identifiers of all supported transliterators.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	return names
}

// New creates a transliterator by identifier with the given options.
func New(name string, options map[string]any) (Transliterator, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("transliterator not found: %s", name)
	}
	t, err := factory(options)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return t, nil
}
