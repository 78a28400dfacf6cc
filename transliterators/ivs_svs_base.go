package transliterators

import (
	"fmt"

	"github.com/yosina-lib/yosina-go/chars"
)

// ivsSvsBaseForward replaces base characters that have a registered
// variation sequence with the IVS form (or the SVS form when preferred and
// available).
type ivsSvsBaseForward struct {
	baseToVariants map[string]*ivsSvsBaseRecord
	preferSVS      bool
}

func (t *ivsSvsBaseForward) Transliterate(input []*chars.Char) []*chars.Char {
	result := make([]*chars.Char, 0, len(input))
	offset := 0
	for _, c := range input {
		replacement := ""
		if record, ok := t.baseToVariants[c.C]; ok {
			if t.preferSVS && record.svs != "" {
				replacement = record.svs
			} else {
				replacement = record.ivs
			}
		}
		if replacement != "" {
			result = append(result, &chars.Char{C: replacement, Offset: offset, Source: c})
			offset += len(replacement)
		} else {
			result = append(result, &chars.Char{C: c.C, Offset: offset, Source: c.Source})
			offset += len(c.C)
		}
	}
	return result
}

// ivsSvsBaseReverse replaces variation sequences with the base character
// of the selected charset, optionally stripping unknown selectors.
type ivsSvsBaseReverse struct {
	variantsToBase          map[string]*ivsSvsBaseRecord
	charset                 string
	dropSelectorsAltogether bool
}

func (t *ivsSvsBaseReverse) Transliterate(input []*chars.Char) []*chars.Char {
	result := make([]*chars.Char, 0, len(input))
	offset := 0
	for _, c := range input {
		replacement := ""
		if record, ok := t.variantsToBase[c.C]; ok {
			switch t.charset {
			case "unijis_2004":
				replacement = record.base2004
			case "unijis_90":
				replacement = record.base90
			}
		}
		if replacement == "" && t.dropSelectorsAltogether {
			runes := []rune(c.C)
			if len(runes) > 1 && isVariationSelectorRune(runes[1]) {
				replacement = string(runes[0])
			}
		}
		if replacement != "" {
			result = append(result, &chars.Char{C: replacement, Offset: offset, Source: c})
			offset += len(replacement)
		} else {
			result = append(result, &chars.Char{C: c.C, Offset: offset, Source: c.Source})
			offset += len(c.C)
		}
	}
	return result
}

func isVariationSelectorRune(r rune) bool {
	return (r >= 0xfe00 && r <= 0xfe0f) || (r >= 0xe0100 && r <= 0xe01ef)
}

func newIvsSvsBase(options map[string]any) (Transliterator, error) {
	mode, err := stringOption(options, "mode", "base")
	if err != nil {
		return nil, err
	}
	charset, err := stringOption(options, "charset", "unijis_2004")
	if err != nil {
		return nil, err
	}
	dropSelectors, err := boolOption(options, "drop_selectors_altogether", false)
	if err != nil {
		return nil, err
	}
	preferSVS, err := boolOption(options, "prefer_svs", false)
	if err != nil {
		return nil, err
	}

	switch mode {
	case "ivs-or-svs":
		return &ivsSvsBaseForward{
			baseToVariants: baseToVariantsMappings(charset),
			preferSVS:      preferSVS,
		}, nil
	case "base":
		return &ivsSvsBaseReverse{
			variantsToBase:          variantsToBaseMappings(),
			charset:                 charset,
			dropSelectorsAltogether: dropSelectors,
		}, nil
	default:
		return nil, fmt.Errorf("unknown ivs-svs-base mode: %s", mode)
	}
}
