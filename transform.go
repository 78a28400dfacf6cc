package yosina

import (
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/yosina-lib/yosina-go/chars"
)

// NewTransformer adapts a configured transliterator chain to
// transform.Transformer so it can be chained with other golang.org/x/text
// transformers. The transliterators need the whole run of text to resolve
// lookahead (voice mark composition, prolonged sound marks), so the
// transformer accumulates source bytes until EOF and emits the
// transliterated output in one piece.
func NewTransformer(configs []TransliteratorConfig) (transform.Transformer, error) {
	chained, err := MakeChainedTransliterator(configs)
	if err != nil {
		return nil, err
	}
	return &transliteratorTransformer{chained: chained}, nil
}

type transliteratorTransformer struct {
	chained Transliterator
	src     []byte
	out     []byte
	emitted bool
}

func (t *transliteratorTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !t.emitted {
		t.src = append(t.src, src...)
		nSrc = len(src)
		if !atEOF {
			return 0, nSrc, transform.ErrShortSrc
		}
		if !utf8.Valid(t.src) {
			return 0, nSrc, transform.ErrShortSrc
		}
		result := chars.FromChars(t.chained.Transliterate(chars.BuildCharList(string(t.src))))
		t.out = []byte(result)
		t.emitted = true
	}

	n := copy(dst, t.out)
	t.out = t.out[n:]
	nDst = n
	if len(t.out) > 0 {
		return nDst, nSrc, transform.ErrShortDst
	}
	return nDst, nSrc, nil
}

func (t *transliteratorTransformer) Reset() {
	t.src = nil
	t.out = nil
	t.emitted = false
}
