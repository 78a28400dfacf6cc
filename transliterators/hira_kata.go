package transliterators

import (
	"fmt"
	"sync"
)

// Class-level cache of the two direction tables, built on first use.
var (
	hiraKataMappingOnce  sync.Once
	hiraKataMappingCache map[string]map[string]string
)

func hiraKataMappingTable(mode string) map[string]string {
	hiraKataMappingOnce.Do(func() {
		hiraToKata := make(map[string]string)
		kataToHira := make(map[string]string)
		for _, entry := range hiraKataTable {
			hiraToKata[entry.hiragana.base] = entry.katakana.base
			kataToHira[entry.katakana.base] = entry.hiragana.base
			if entry.hiragana.voiced != "" && entry.katakana.voiced != "" {
				hiraToKata[entry.hiragana.voiced] = entry.katakana.voiced
				kataToHira[entry.katakana.voiced] = entry.hiragana.voiced
			}
			if entry.hiragana.semiVoiced != "" && entry.katakana.semiVoiced != "" {
				hiraToKata[entry.hiragana.semiVoiced] = entry.katakana.semiVoiced
				kataToHira[entry.katakana.semiVoiced] = entry.hiragana.semiVoiced
			}
		}
		for _, entry := range hiraKataSmallTable {
			hiraToKata[entry.hiragana] = entry.katakana
			kataToHira[entry.katakana] = entry.hiragana
		}
		hiraKataMappingCache = map[string]map[string]string{
			"hira-to-kata": hiraToKata,
			"kata-to-hira": kataToHira,
		}
	})
	return hiraKataMappingCache[mode]
}

// newHiraKata builds the hiragana/katakana conversion stage. Characters
// with no counterpart in the selected direction pass through.
func newHiraKata(options map[string]any) (Transliterator, error) {
	mode, err := stringOption(options, "mode", "hira-to-kata")
	if err != nil {
		return nil, err
	}
	if mode != "hira-to-kata" && mode != "kata-to-hira" {
		return nil, fmt.Errorf("unknown hira-kata mode: %s", mode)
	}
	return &mappedTransliterator{table: hiraKataMappingTable(mode)}, nil
}
