package transliterators

import (
	"sync"

	"github.com/yosina-lib/yosina-go/chars"
)

// jisx0201Overrides resolves the disambiguation flags for the scalars that
// have more than one plausible counterpart. Each flag is tri-state on the
// options map: unset flags get direction-dependent defaults derived from
// which of their siblings were explicitly set.
type jisx0201Overrides struct {
	u005cAsYenSign        bool
	u005cAsBackslash      bool
	u007eAsFullwidthTilde bool
	u007eAsWaveDash       bool
	u007eAsOverline       bool
	u007eAsFullwidthMacron bool
	u00a5AsYenSign        bool
}

// pairs returns the fullwidth/halfwidth pairs enabled by the overrides, in
// a fixed order so that later pairs win on conflicting keys.
func (o jisx0201Overrides) pairs() [][2]string {
	var result [][2]string
	if o.u005cAsYenSign {
		result = append(result, [2]string{"￥", "\\"})
	}
	if o.u005cAsBackslash {
		result = append(result, [2]string{"＼", "\\"})
	}
	if o.u007eAsFullwidthTilde {
		result = append(result, [2]string{"～", "~"})
	}
	if o.u007eAsWaveDash {
		result = append(result, [2]string{"〜", "~"})
	}
	if o.u007eAsOverline {
		result = append(result, [2]string{"‾", "~"})
	}
	if o.u007eAsFullwidthMacron {
		result = append(result, [2]string{"￣", "~"})
	}
	if o.u00a5AsYenSign {
		result = append(result, [2]string{"￥", "¥"})
	}
	return result
}

type jisx0201ForwardOptions struct {
	convertGL             bool
	convertGR             bool
	convertHiraganas      bool
	convertUnsafeSpecials bool
	overrides             jisx0201Overrides
}

type jisx0201ReverseOptions struct {
	convertGL              bool
	convertGR              bool
	convertUnsafeSpecials  bool
	combineVoicedSoundMarks bool
	overrides              jisx0201Overrides
}

// GL area pairs (fullwidth, halfwidth): the ASCII range plus the
// ideographic space. U+FF3C and U+FF5E are excluded here; they are
// governed by the disambiguation overrides.
func jisx0201GLPairs() [][2]string {
	result := [][2]string{{"　", " "}}
	for hw := rune(0x21); hw <= 0x7d; hw++ {
		fw := rune(0xff01 + hw - 0x21)
		if fw == 0xff3c {
			continue
		}
		result = append(result, [2]string{string(fw), string(hw)})
	}
	return result
}

// GR area pairs (fullwidth, halfwidth): Japanese punctuation and katakana.
func jisx0201GRPairs() [][2]string {
	result := [][2]string{
		{"。", "｡"},
		{"「", "｢"},
		{"」", "｣"},
		{"、", "､"},
		{"・", "･"},
		{"ー", "ｰ"},
		{"゛", "ﾞ"},
		{"゜", "ﾟ"},
	}
	for _, entry := range hiraKataTable {
		if entry.halfwidth != "" {
			result = append(result, [2]string{entry.katakana.base, entry.halfwidth})
		}
	}
	for _, entry := range hiraKataSmallTable {
		if entry.halfwidth != "" {
			result = append(result, [2]string{entry.katakana, entry.halfwidth})
		}
	}
	return result
}

// Voiced letter pairs (fullwidth composed, halfwidth base + mark).
func jisx0201VoicedPairs() [][2]string {
	var result [][2]string
	for _, entry := range hiraKataTable {
		if entry.halfwidth == "" {
			continue
		}
		if entry.katakana.voiced != "" {
			result = append(result, [2]string{entry.katakana.voiced, entry.halfwidth + "ﾞ"})
		}
		if entry.katakana.semiVoiced != "" {
			result = append(result, [2]string{entry.katakana.semiVoiced, entry.halfwidth + "ﾟ"})
		}
	}
	return result
}

// Hiragana to halfwidth katakana, used by the convert_hiraganas option.
func jisx0201HiraganaPairs() [][2]string {
	var result [][2]string
	for _, entry := range hiraKataTable {
		if entry.halfwidth == "" {
			continue
		}
		result = append(result, [2]string{entry.hiragana.base, entry.halfwidth})
		if entry.hiragana.voiced != "" {
			result = append(result, [2]string{entry.hiragana.voiced, entry.halfwidth + "ﾞ"})
		}
		if entry.hiragana.semiVoiced != "" {
			result = append(result, [2]string{entry.hiragana.semiVoiced, entry.halfwidth + "ﾟ"})
		}
	}
	for _, entry := range hiraKataSmallTable {
		if entry.halfwidth != "" {
			result = append(result, [2]string{entry.hiragana, entry.halfwidth})
		}
	}
	return result
}

// Katakana-hiragana double hyphen is unsafe to round-trip; it maps to the
// equals sign only when convert_unsafe_specials is set.
var jisx0201SpecialPunctuations = [][2]string{{"゠", "="}}

var (
	jisx0201CacheMu  sync.Mutex
	jisx0201FwdCache = map[jisx0201ForwardOptions]map[string]string{}
	jisx0201RevCache = map[jisx0201ReverseOptions]map[string]string{}

	jisx0201VoicedRevOnce  sync.Once
	jisx0201VoicedRevCache map[string]map[string]string
)

func jisx0201FwdMappings(options jisx0201ForwardOptions) map[string]string {
	jisx0201CacheMu.Lock()
	defer jisx0201CacheMu.Unlock()
	if cached, ok := jisx0201FwdCache[options]; ok {
		return cached
	}

	mappings := make(map[string]string)
	if options.convertGL {
		for _, pair := range jisx0201GLPairs() {
			mappings[pair[0]] = pair[1]
		}
		for _, pair := range options.overrides.pairs() {
			mappings[pair[0]] = pair[1]
		}
		if options.convertUnsafeSpecials {
			for _, pair := range jisx0201SpecialPunctuations {
				mappings[pair[0]] = pair[1]
			}
		}
	}
	if options.convertGR {
		for _, pair := range jisx0201GRPairs() {
			mappings[pair[0]] = pair[1]
		}
		for _, pair := range jisx0201VoicedPairs() {
			mappings[pair[0]] = pair[1]
		}
		mappings["\u3099"] = "\uff9e"
		mappings["\u309a"] = "\uff9f"
		if options.convertHiraganas {
			for _, pair := range jisx0201HiraganaPairs() {
				mappings[pair[0]] = pair[1]
			}
		}
	}

	jisx0201FwdCache[options] = mappings
	return mappings
}

func jisx0201RevMappings(options jisx0201ReverseOptions) map[string]string {
	jisx0201CacheMu.Lock()
	defer jisx0201CacheMu.Unlock()
	if cached, ok := jisx0201RevCache[options]; ok {
		return cached
	}

	mappings := make(map[string]string)
	if options.convertGL {
		for _, pair := range jisx0201GLPairs() {
			mappings[pair[1]] = pair[0]
		}
		for _, pair := range options.overrides.pairs() {
			mappings[pair[1]] = pair[0]
		}
		if options.convertUnsafeSpecials {
			for _, pair := range jisx0201SpecialPunctuations {
				mappings[pair[1]] = pair[0]
			}
		}
	}
	if options.convertGR {
		for _, pair := range jisx0201GRPairs() {
			mappings[pair[1]] = pair[0]
		}
	}

	jisx0201RevCache[options] = mappings
	return mappings
}

// Halfwidth katakana base to voice mark to composed fullwidth form, used
// for one-character lookahead in the reverse direction.
func jisx0201VoicedRevMappings() map[string]map[string]string {
	jisx0201VoicedRevOnce.Do(func() {
		jisx0201VoicedRevCache = make(map[string]map[string]string)
		for _, pair := range jisx0201VoicedPairs() {
			runes := []rune(pair[1])
			base, mark := string(runes[0]), string(runes[1])
			inner, ok := jisx0201VoicedRevCache[base]
			if !ok {
				inner = make(map[string]string)
				jisx0201VoicedRevCache[base] = inner
			}
			inner[mark] = pair[0]
		}
	})
	return jisx0201VoicedRevCache
}

// jisx0201ForwardTransliterator converts fullwidth characters to their
// halfwidth counterparts.
type jisx0201ForwardTransliterator struct {
	mappings map[string]string
}

func (t *jisx0201ForwardTransliterator) Transliterate(input []*chars.Char) []*chars.Char {
	return (&expandingTransliterator{table: t.mappings}).Transliterate(input)
}

// jisx0201ReverseTransliterator converts halfwidth characters to their
// fullwidth counterparts, combining voiced sound marks with one character
// of lookahead when configured to.
type jisx0201ReverseTransliterator struct {
	mappings       map[string]string
	voicedMappings map[string]map[string]string
}

func (t *jisx0201ReverseTransliterator) Transliterate(input []*chars.Char) []*chars.Char {
	result := make([]*chars.Char, 0, len(input))
	offset := 0
	var pendingBase *chars.Char
	var pendingVoiceMappings map[string]string

	emit := func(c *chars.Char) {
		if mapped, ok := t.mappings[c.C]; ok {
			result = append(result, &chars.Char{C: mapped, Offset: offset, Source: c})
			offset += len(mapped)
		} else {
			result = append(result, c.WithOffset(offset))
			offset += len(c.C)
		}
	}

	for _, c := range input {
		if pendingBase != nil {
			if combined, ok := pendingVoiceMappings[c.C]; ok {
				result = append(result, &chars.Char{C: combined, Offset: offset, Source: pendingBase})
				offset += len(combined)
				pendingBase = nil
				pendingVoiceMappings = nil
				continue
			}
			emit(pendingBase)
			pendingBase = nil
			pendingVoiceMappings = nil
		}

		if t.voicedMappings != nil {
			if voiceMappings, ok := t.voicedMappings[c.C]; ok {
				pendingBase = c
				pendingVoiceMappings = voiceMappings
				continue
			}
		}
		emit(c)
	}

	if pendingBase != nil {
		emit(pendingBase)
	}
	return result
}

func newJisx0201AndAlike(options map[string]any) (Transliterator, error) {
	fullwidthToHalfwidth, err := boolOption(options, "fullwidth_to_halfwidth", true)
	if err != nil {
		return nil, err
	}
	convertGL, err := boolOption(options, "convert_gl", true)
	if err != nil {
		return nil, err
	}
	convertGR, err := boolOption(options, "convert_gr", true)
	if err != nil {
		return nil, err
	}
	convertHiraganas, err := boolOption(options, "convert_hiraganas", false)
	if err != nil {
		return nil, err
	}
	combineVoicedSoundMarks, err := boolOption(options, "combine_voiced_sound_marks", true)
	if err != nil {
		return nil, err
	}
	convertUnsafeSpecials, convertUnsafeSpecialsSet, err := optBoolOption(options, "convert_unsafe_specials")
	if err != nil {
		return nil, err
	}
	u005cAsYenSign, u005cAsYenSignSet, err := optBoolOption(options, "u005c_as_yen_sign")
	if err != nil {
		return nil, err
	}
	u005cAsBackslash, u005cAsBackslashSet, err := optBoolOption(options, "u005c_as_backslash")
	if err != nil {
		return nil, err
	}
	u007eAsFullwidthTilde, u007eAsFullwidthTildeSet, err := optBoolOption(options, "u007e_as_fullwidth_tilde")
	if err != nil {
		return nil, err
	}
	u007eAsWaveDash, u007eAsWaveDashSet, err := optBoolOption(options, "u007e_as_wave_dash")
	if err != nil {
		return nil, err
	}
	u007eAsOverline, u007eAsOverlineSet, err := optBoolOption(options, "u007e_as_overline")
	if err != nil {
		return nil, err
	}
	u007eAsFullwidthMacron, u007eAsFullwidthMacronSet, err := optBoolOption(options, "u007e_as_fullwidth_macron")
	if err != nil {
		return nil, err
	}
	u00a5AsYenSign, u00a5AsYenSignSet, err := optBoolOption(options, "u00a5_as_yen_sign")
	if err != nil {
		return nil, err
	}

	if fullwidthToHalfwidth {
		overrides := jisx0201Overrides{
			u005cAsYenSign:        u005cAsYenSign,
			u005cAsBackslash:      u005cAsBackslash,
			u007eAsFullwidthTilde: u007eAsFullwidthTilde,
			u007eAsWaveDash:       u007eAsWaveDash,
			u007eAsOverline:       u007eAsOverline,
			u007eAsFullwidthMacron: u007eAsFullwidthMacron,
			u00a5AsYenSign:        u00a5AsYenSign,
		}
		if !u005cAsYenSignSet {
			overrides.u005cAsYenSign = !u00a5AsYenSignSet
		}
		if !u007eAsFullwidthTildeSet {
			overrides.u007eAsFullwidthTilde = true
		}
		if !u007eAsWaveDashSet {
			overrides.u007eAsWaveDash = true
		}
		fwdOptions := jisx0201ForwardOptions{
			convertGL:             convertGL,
			convertGR:             convertGR,
			convertHiraganas:      convertHiraganas,
			convertUnsafeSpecials: convertUnsafeSpecials || !convertUnsafeSpecialsSet,
			overrides:             overrides,
		}
		return &jisx0201ForwardTransliterator{mappings: jisx0201FwdMappings(fwdOptions)}, nil
	}

	overrides := jisx0201Overrides{
		u005cAsYenSign:        u005cAsYenSign,
		u005cAsBackslash:      u005cAsBackslash,
		u007eAsFullwidthTilde: u007eAsFullwidthTilde,
		u007eAsWaveDash:       u007eAsWaveDash,
		u007eAsOverline:       u007eAsOverline,
		u007eAsFullwidthMacron: u007eAsFullwidthMacron,
		u00a5AsYenSign:        u00a5AsYenSign,
	}
	if !u005cAsYenSignSet {
		overrides.u005cAsYenSign = !u005cAsBackslashSet
	}
	if !u007eAsFullwidthTildeSet {
		overrides.u007eAsFullwidthTilde = !u007eAsWaveDashSet && !u007eAsOverlineSet && !u007eAsFullwidthMacronSet
	}
	if !u00a5AsYenSignSet {
		overrides.u00a5AsYenSign = true
	}
	revOptions := jisx0201ReverseOptions{
		convertGL:              convertGL,
		convertGR:              convertGR,
		convertUnsafeSpecials:  convertUnsafeSpecials,
		combineVoicedSoundMarks: combineVoicedSoundMarks,
		overrides:              overrides,
	}
	rev := &jisx0201ReverseTransliterator{mappings: jisx0201RevMappings(revOptions)}
	if combineVoicedSoundMarks && convertGR {
		rev.voicedMappings = jisx0201VoicedRevMappings()
	}
	return rev, nil
}
