// Package chars provides the character stream model used by the
// transliterators: building character arrays from strings and converting
// them back, with variation selector handling and provenance tracking.
package chars

import "strings"

// Char represents a character with metadata for transliteration.
type Char struct {
	// C is the character content: a single rune, optionally followed by a
	// variation selector rune. The empty string is reserved for the
	// sentinel that terminates every stream.
	C string
	// Offset is the position this character occupies when the stream is
	// serialized back to a string.
	Offset int
	// Source references the character this one was derived from, or nil
	// for characters produced directly from the input string.
	Source *Char
}

// WithOffset returns a new Char with the specified offset. The receiver
// becomes the source of the returned Char.
func (c *Char) WithOffset(offset int) *Char {
	return &Char{C: c.C, Offset: offset, Source: c}
}

// IsSentinel reports whether this is the empty sentinel character that
// terminates a stream.
func (c *Char) IsSentinel() bool {
	return c.C == ""
}

// IsTransliterated walks the provenance chain and reports whether the
// content changed anywhere along it.
func (c *Char) IsTransliterated() bool {
	for {
		s := c.Source
		if s == nil {
			return false
		}
		if s.C != c.C {
			return true
		}
		c = s
	}
}

// Variation selectors: U+FE00-U+FE0F (SVS) and U+E0100-U+E01EF (IVS).
func isVariationSelector(r rune) bool {
	return (r >= 0xfe00 && r <= 0xfe0f) || (r >= 0xe0100 && r <= 0xe01ef)
}

// BuildCharList builds a character array from a string, bundling a base
// character with an immediately following variation selector into a single
// Char. The returned slice always ends with one sentinel Char whose content
// is empty.
func BuildCharList(input string) []*Char {
	result := make([]*Char, 0, len(input)/3+1)
	offset := 0
	pending := ""

	for _, r := range input {
		if pending != "" {
			if isVariationSelector(r) {
				combined := pending + string(r)
				result = append(result, &Char{C: combined, Offset: offset})
				offset += len(combined)
				pending = ""
				continue
			}
			result = append(result, &Char{C: pending, Offset: offset})
			offset += len(pending)
		}
		pending = string(r)
	}

	if pending != "" {
		result = append(result, &Char{C: pending, Offset: offset})
		offset += len(pending)
	}

	// Sentinel.
	result = append(result, &Char{C: "", Offset: offset})
	return result
}

// FromChars converts a character array back to a string, skipping
// sentinels.
func FromChars(chars []*Char) string {
	var sb strings.Builder
	for _, c := range chars {
		sb.WriteString(c.C)
	}
	return sb.String()
}
