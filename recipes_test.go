package yosina

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configNames(configs []TransliteratorConfig) []string {
	names := make([]string, len(configs))
	for i, config := range configs {
		names[i] = config.Name
	}
	return names
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

func TestEmptyRecipe(t *testing.T) {
	configs, err := BuildTransliteratorConfigsFromRecipe(TransliterationRecipe{})
	require.NoError(t, err)
	assert.Empty(t, configs)
}

func TestKanjiOldNewRecipe(t *testing.T) {
	configs, err := BuildTransliteratorConfigsFromRecipe(TransliterationRecipe{KanjiOldNew: true})
	require.NoError(t, err)
	names := configNames(configs)

	require.Len(t, configs, 3)
	assert.Equal(t, []string{"ivs-svs-base", "kanji-old-new", "ivs-svs-base"}, names)
	assert.Equal(t, "ivs-or-svs", configs[0].Options["mode"])
	assert.Equal(t, "base", configs[2].Options["mode"])
	assert.Equal(t, "unijis_2004", configs[2].Options["charset"])
}

func TestProlongedSoundMarksRecipe(t *testing.T) {
	configs, err := BuildTransliteratorConfigsFromRecipe(TransliterationRecipe{
		ReplaceSuspiciousHyphensToProlongedSoundMarks: true,
	})
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, "prolonged-sound-marks", configs[0].Name)
	assert.Equal(t, true, configs[0].Options["replace_prolonged_marks_following_alnums"])
}

func TestCircledOrSquaredRecipe(t *testing.T) {
	configs, err := BuildTransliteratorConfigsFromRecipe(TransliterationRecipe{
		ReplaceCircledOrSquaredCharacters: true,
	})
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, true, configs[0].Options["include_emojis"])

	configs, err = BuildTransliteratorConfigsFromRecipe(TransliterationRecipe{
		ReplaceCircledOrSquaredCharacters: true,
		ExcludeEmojis:                     true,
	})
	require.NoError(t, err)
	assert.Equal(t, false, configs[0].Options["include_emojis"])
}

func TestHyphensRecipeDefaultPrecedence(t *testing.T) {
	configs, err := BuildTransliteratorConfigsFromRecipe(TransliterationRecipe{ReplaceHyphens: true})
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, []string{"jisx0208_90_windows", "jisx0201"}, configs[0].Options["precedence"])
}

func TestHyphensRecipeCustomPrecedence(t *testing.T) {
	configs, err := BuildTransliteratorConfigsFromRecipe(TransliterationRecipe{
		ReplaceHyphens:    true,
		HyphensPrecedence: []string{"jisx0201", "jisx0208_90_windows"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"jisx0201", "jisx0208_90_windows"}, configs[0].Options["precedence"])
}

func TestToFullwidthRecipe(t *testing.T) {
	configs, err := BuildTransliteratorConfigsFromRecipe(TransliterationRecipe{ToFullwidth: true})
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, "jisx0201-and-alike", configs[0].Name)
	assert.Equal(t, false, configs[0].Options["fullwidth_to_halfwidth"])
	assert.Equal(t, false, configs[0].Options["u005c_as_yen_sign"])

	configs, err = BuildTransliteratorConfigsFromRecipe(TransliterationRecipe{
		ToFullwidth:    true,
		U005cAsYenSign: true,
	})
	require.NoError(t, err)
	assert.Equal(t, true, configs[0].Options["u005c_as_yen_sign"])
}

func TestToHalfwidthRecipe(t *testing.T) {
	configs, err := BuildTransliteratorConfigsFromRecipe(TransliterationRecipe{ToHalfwidth: true})
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, true, configs[0].Options["fullwidth_to_halfwidth"])
	assert.Equal(t, true, configs[0].Options["convert_gl"])
	assert.Equal(t, false, configs[0].Options["convert_gr"])

	configs, err = BuildTransliteratorConfigsFromRecipe(TransliterationRecipe{
		ToHalfwidth: true,
		HankakuKana: true,
	})
	require.NoError(t, err)
	assert.Equal(t, true, configs[0].Options["convert_gr"])
}

func TestRemoveIvsSvsRecipe(t *testing.T) {
	configs, err := BuildTransliteratorConfigsFromRecipe(TransliterationRecipe{RemoveIvsSvs: true})
	require.NoError(t, err)
	require.Len(t, configs, 2)
	assert.Equal(t, "ivs-or-svs", configs[0].Options["mode"])
	assert.Equal(t, "base", configs[1].Options["mode"])
	assert.Equal(t, false, configs[1].Options["drop_selectors_altogether"])

	configs, err = BuildTransliteratorConfigsFromRecipe(TransliterationRecipe{
		RemoveIvsSvs:     true,
		DropAllSelectors: true,
	})
	require.NoError(t, err)
	assert.Equal(t, true, configs[1].Options["drop_selectors_altogether"])
}

func TestRemoveIvsSvsBracketsEverything(t *testing.T) {
	// remove_ivs_svs force-replaces the bracketing stages so they stay
	// outermost even when kanji_old_new inserted them earlier.
	configs, err := BuildTransliteratorConfigsFromRecipe(TransliterationRecipe{
		KanjiOldNew:      true,
		RemoveIvsSvs:     true,
		DropAllSelectors: true,
		Charset:          UniJIS90,
	})
	require.NoError(t, err)
	names := configNames(configs)

	assert.Equal(t, "ivs-svs-base", names[0])
	assert.Equal(t, "ivs-svs-base", names[len(names)-1])
	last := configs[len(configs)-1]
	assert.Equal(t, "base", last.Options["mode"])
	assert.Equal(t, true, last.Options["drop_selectors_altogether"])
	assert.Equal(t, "unijis_90", last.Options["charset"])
	// Exactly two ivs-svs-base entries survive the dedup.
	count := 0
	for _, name := range names {
		if name == "ivs-svs-base" {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestComprehensiveOrdering(t *testing.T) {
	configs, err := BuildTransliteratorConfigsFromRecipe(TransliterationRecipe{
		KanjiOldNew: true,
		ReplaceSuspiciousHyphensToProlongedSoundMarks: true,
		ReplaceCircledOrSquaredCharacters:             true,
		ReplaceCombinedCharacters:                     true,
		ReplaceSpaces:                                 true,
		CombineDecomposedHiraganasAndKatakanas:        true,
		ToHalfwidth:                                   true,
	})
	require.NoError(t, err)
	names := configNames(configs)

	// Head holds the IVS bracketing; tail ends with the width conversion.
	assert.Equal(t, "ivs-svs-base", names[0])
	assert.Equal(t, "jisx0201-and-alike", names[len(names)-1])

	// Later-applied middle options execute earlier: combined before
	// circled-or-squared, both before kanji-old-new.
	combinedPos := indexOf(names, "combined")
	circledPos := indexOf(names, "circled-or-squared")
	kanjiPos := indexOf(names, "kanji-old-new")
	require.GreaterOrEqual(t, combinedPos, 0)
	require.GreaterOrEqual(t, circledPos, 0)
	assert.Less(t, combinedPos, circledPos)
	assert.Less(t, circledPos, kanjiPos)
}

func TestIterationMarksInsertCompositionAtHead(t *testing.T) {
	configs, err := BuildTransliteratorConfigsFromRecipe(TransliterationRecipe{
		ReplaceJapaneseIterationMarks: true,
		ReplaceSpaces:                 true,
	})
	require.NoError(t, err)
	names := configNames(configs)
	assert.Equal(t, "hira-kata-composition", names[0])
	assert.Less(t, indexOf(names, "japanese-iteration-marks"), indexOf(names, "spaces"))
}

func TestHiraKataRecipe(t *testing.T) {
	configs, err := BuildTransliteratorConfigsFromRecipe(TransliterationRecipe{HiraKata: KataToHira})
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, "hira-kata", configs[0].Name)
	assert.Equal(t, "kata-to-hira", configs[0].Options["mode"])
}

func TestMutualExclusion(t *testing.T) {
	_, err := BuildTransliteratorConfigsFromRecipe(TransliterationRecipe{
		ToFullwidth: true,
		ToHalfwidth: true,
	})
	assert.ErrorContains(t, err, "mutually exclusive")
}
