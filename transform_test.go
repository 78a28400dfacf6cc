package yosina

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"
)

func TestTransformer(t *testing.T) {
	tr, err := NewTransformer([]TransliteratorConfig{
		{Name: "spaces"},
		{Name: "circled-or-squared"},
	})
	require.NoError(t, err)

	result, _, err := transform.String(tr, "hello　①②③")
	require.NoError(t, err)
	assert.Equal(t, "hello (1)(2)(3)", result)
}

func TestTransformerWithReader(t *testing.T) {
	tr, err := NewTransformer([]TransliteratorConfig{{Name: "spaces"}})
	require.NoError(t, err)

	reader := transform.NewReader(strings.NewReader("A　B　C"), tr)
	var sb strings.Builder
	buf := make([]byte, 8)
	for {
		n, err := reader.Read(buf)
		sb.Write(buf[:n])
		if err != nil {
			break
		}
	}
	assert.Equal(t, "A B C", sb.String())
}

func TestTransformerReset(t *testing.T) {
	tr, err := NewTransformer([]TransliteratorConfig{{Name: "spaces"}})
	require.NoError(t, err)

	result, _, err := transform.String(tr, "A　B")
	require.NoError(t, err)
	assert.Equal(t, "A B", result)

	// transform.String resets before use; a second run must start clean.
	result, _, err = transform.String(tr, "C　D")
	require.NoError(t, err)
	assert.Equal(t, "C D", result)
}

func TestTransformerRejectsEmptyChain(t *testing.T) {
	_, err := NewTransformer(nil)
	assert.ErrorIs(t, err, ErrNoTransliterators)
}
