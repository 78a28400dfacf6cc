package yosina

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yosina-lib/yosina-go/chars"
)

func TestMakeTransliteratorWithEmptyRecipe(t *testing.T) {
	_, err := MakeTransliterator(TransliterationRecipe{})
	assert.ErrorIs(t, err, ErrNoTransliterators)
}

func TestMakeTransliteratorWithEmptyConfigList(t *testing.T) {
	_, err := MakeTransliteratorFromConfigs(nil)
	assert.ErrorIs(t, err, ErrNoTransliterators)
}

func TestMakeTransliteratorWithInvalidName(t *testing.T) {
	_, err := MakeTransliteratorFromConfigs([]TransliteratorConfig{{Name: "invalid-name"}})
	assert.ErrorContains(t, err, "transliterator not found")
}

func TestSpaceNormalization(t *testing.T) {
	transliterate, err := MakeTransliterator(TransliterationRecipe{ReplaceSpaces: true})
	require.NoError(t, err)
	assert.Equal(t, "hello world", transliterate("hello　world"))
}

func TestExplicitConfigList(t *testing.T) {
	transliterate, err := MakeTransliteratorFromConfigs([]TransliteratorConfig{
		{Name: "spaces"},
		{Name: "radicals"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello 言門食", transliterate("hello　⾔⾨⾷"))
}

func TestCircledOrSquaredScenarios(t *testing.T) {
	transliterate, err := MakeTransliteratorFromConfigs([]TransliteratorConfig{
		{Name: "circled-or-squared"},
	})
	require.NoError(t, err)
	assert.Equal(t, "(1)(2)(3)", transliterate("①②③"))
	assert.Equal(t, "🆘", transliterate("🆘"))

	transliterate, err = MakeTransliteratorFromConfigs([]TransliteratorConfig{
		{Name: "circled-or-squared", Options: map[string]any{"include_emojis": true}},
	})
	require.NoError(t, err)
	assert.Equal(t, "[SOS]", transliterate("🆘"))
}

func TestIterationMarkScenarios(t *testing.T) {
	transliterate, err := MakeTransliterator(TransliterationRecipe{ReplaceJapaneseIterationMarks: true})
	require.NoError(t, err)
	assert.Equal(t, "時時", transliterate("時々"))
	assert.Equal(t, "いすず", transliterate("いすゞ"))
	assert.Equal(t, "ん々", transliterate("ん々"))
}

func TestProlongedSoundMarkScenario(t *testing.T) {
	transliterate, err := MakeTransliterator(TransliterationRecipe{
		ReplaceSuspiciousHyphensToProlongedSoundMarks: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "1--2-3", transliterate("1ー－2ー3"))
	assert.Equal(t, "スーパー", transliterate("スーパ-"))
}

func TestHyphenScenarios(t *testing.T) {
	transliterate, err := MakeTransliterator(TransliterationRecipe{ReplaceHyphens: true})
	require.NoError(t, err)
	// Em dash maps to horizontal bar under the default windows precedence.
	assert.Equal(t, "―", transliterate("—"))

	transliterate, err = MakeTransliterator(TransliterationRecipe{
		ReplaceHyphens:    true,
		HyphensPrecedence: []string{"ascii"},
	})
	require.NoError(t, err)
	assert.Equal(t, "-", transliterate("—"))
}

func TestKanjiOldNewRecipePipeline(t *testing.T) {
	transliterate, err := MakeTransliterator(TransliterationRecipe{KanjiOldNew: true})
	require.NoError(t, err)
	assert.Equal(t, "旧字体の変換", transliterate("舊字體の變換"))
}

func TestFullRecipeScenario(t *testing.T) {
	transliterate, err := MakeTransliterator(TransliterationRecipe{
		KanjiOldNew:                       true,
		ReplaceSpaces:                     true,
		ReplaceCircledOrSquaredCharacters: true,
		ReplaceCombinedCharacters:         true,
		ReplaceJapaneseIterationMarks:     true,
		ToFullwidth:                       true,
	})
	require.NoError(t, err)
	assert.Equal(
		t,
		"（１）（２）（３）　（Ａ）（Ｂ）（Ｃ）　株式会社リットルサンチーム令和",
		transliterate("①②③　ⒶⒷⒸ　㍿㍑㌠㋿"),
	)
}

func TestToHalfwidthRecipePipeline(t *testing.T) {
	transliterate, err := MakeTransliterator(TransliterationRecipe{ToHalfwidth: true})
	require.NoError(t, err)
	assert.Equal(t, "ABC123 カタカナ", transliterate("ＡＢＣ１２３　カタカナ"))

	transliterate, err = MakeTransliterator(TransliterationRecipe{
		ToHalfwidth: true,
		HankakuKana: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "ABC ｶﾀｶﾅｶﾞ", transliterate("ＡＢＣ　カタカナガ"))
}

func TestRemoveIvsSvsRecipePipeline(t *testing.T) {
	transliterate, err := MakeTransliterator(TransliterationRecipe{RemoveIvsSvs: true})
	require.NoError(t, err)
	assert.Equal(t, "辻", transliterate("辻\U000e0101"))

	transliterate, err = MakeTransliterator(TransliterationRecipe{
		RemoveIvsSvs:     true,
		DropAllSelectors: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "時", transliterate("時\U000e0105"))
}

func TestIdentityOnUnmappedInput(t *testing.T) {
	transliterate, err := MakeTransliterator(TransliterationRecipe{ReplaceSpaces: true})
	require.NoError(t, err)
	inputs := []string{"", "plain ascii", "漢字とかな", "already normalized text"}
	for _, input := range inputs {
		assert.Equal(t, input, transliterate(input))
	}
}

func TestDeterminism(t *testing.T) {
	transliterate, err := MakeTransliterator(TransliterationRecipe{
		ReplaceSpaces:                 true,
		ReplaceJapaneseIterationMarks: true,
		ToHalfwidth:                   true,
	})
	require.NoError(t, err)
	input := "Ｔｅｓｔ　時々　①"
	first := transliterate(input)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, transliterate(input))
	}
}

func TestChainedTransliteratorReusableAcrossCalls(t *testing.T) {
	// Stage state is per-call; a chained transliterator must be reusable.
	chained, err := MakeChainedTransliterator([]TransliteratorConfig{
		{Name: "hira-kata-composition"},
		{Name: "japanese-iteration-marks"},
	})
	require.NoError(t, err)

	first := chars.FromChars(chained.Transliterate(chars.BuildCharList("かゝ")))
	second := chars.FromChars(chained.Transliterate(chars.BuildCharList("さゝ")))
	assert.Equal(t, "かか", first)
	assert.Equal(t, "ささ", second)
}
