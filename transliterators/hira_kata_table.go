package transliterators

import "sync"

// kanaForms groups a kana with its voiced and semi-voiced forms. Empty
// strings mark forms that do not exist.
type kanaForms struct {
	base       string
	voiced     string
	semiVoiced string
}

// hiraKataEntry relates a hiragana, its katakana counterpart, and the
// halfwidth katakana where one exists.
type hiraKataEntry struct {
	hiragana  kanaForms
	katakana  kanaForms
	halfwidth string
}

// Shared hiragana/katakana/halfwidth table. This is the single source the
// hira-kata, hira-kata-composition, and JIS X 0201 stages derive their
// lookup tables from.
var hiraKataTable = []hiraKataEntry{
	// Vowels
	{kanaForms{"あ", "", ""}, kanaForms{"ア", "", ""}, "ｱ"},
	{kanaForms{"い", "", ""}, kanaForms{"イ", "", ""}, "ｲ"},
	{kanaForms{"う", "ゔ", ""}, kanaForms{"ウ", "ヴ", ""}, "ｳ"},
	{kanaForms{"え", "", ""}, kanaForms{"エ", "", ""}, "ｴ"},
	{kanaForms{"お", "", ""}, kanaForms{"オ", "", ""}, "ｵ"},
	// K-row
	{kanaForms{"か", "が", ""}, kanaForms{"カ", "ガ", ""}, "ｶ"},
	{kanaForms{"き", "ぎ", ""}, kanaForms{"キ", "ギ", ""}, "ｷ"},
	{kanaForms{"く", "ぐ", ""}, kanaForms{"ク", "グ", ""}, "ｸ"},
	{kanaForms{"け", "げ", ""}, kanaForms{"ケ", "ゲ", ""}, "ｹ"},
	{kanaForms{"こ", "ご", ""}, kanaForms{"コ", "ゴ", ""}, "ｺ"},
	// S-row
	{kanaForms{"さ", "ざ", ""}, kanaForms{"サ", "ザ", ""}, "ｻ"},
	{kanaForms{"し", "じ", ""}, kanaForms{"シ", "ジ", ""}, "ｼ"},
	{kanaForms{"す", "ず", ""}, kanaForms{"ス", "ズ", ""}, "ｽ"},
	{kanaForms{"せ", "ぜ", ""}, kanaForms{"セ", "ゼ", ""}, "ｾ"},
	{kanaForms{"そ", "ぞ", ""}, kanaForms{"ソ", "ゾ", ""}, "ｿ"},
	// T-row
	{kanaForms{"た", "だ", ""}, kanaForms{"タ", "ダ", ""}, "ﾀ"},
	{kanaForms{"ち", "ぢ", ""}, kanaForms{"チ", "ヂ", ""}, "ﾁ"},
	{kanaForms{"つ", "づ", ""}, kanaForms{"ツ", "ヅ", ""}, "ﾂ"},
	{kanaForms{"て", "で", ""}, kanaForms{"テ", "デ", ""}, "ﾃ"},
	{kanaForms{"と", "ど", ""}, kanaForms{"ト", "ド", ""}, "ﾄ"},
	// N-row
	{kanaForms{"な", "", ""}, kanaForms{"ナ", "", ""}, "ﾅ"},
	{kanaForms{"に", "", ""}, kanaForms{"ニ", "", ""}, "ﾆ"},
	{kanaForms{"ぬ", "", ""}, kanaForms{"ヌ", "", ""}, "ﾇ"},
	{kanaForms{"ね", "", ""}, kanaForms{"ネ", "", ""}, "ﾈ"},
	{kanaForms{"の", "", ""}, kanaForms{"ノ", "", ""}, "ﾉ"},
	// H-row
	{kanaForms{"は", "ば", "ぱ"}, kanaForms{"ハ", "バ", "パ"}, "ﾊ"},
	{kanaForms{"ひ", "び", "ぴ"}, kanaForms{"ヒ", "ビ", "ピ"}, "ﾋ"},
	{kanaForms{"ふ", "ぶ", "ぷ"}, kanaForms{"フ", "ブ", "プ"}, "ﾌ"},
	{kanaForms{"へ", "べ", "ぺ"}, kanaForms{"ヘ", "ベ", "ペ"}, "ﾍ"},
	{kanaForms{"ほ", "ぼ", "ぽ"}, kanaForms{"ホ", "ボ", "ポ"}, "ﾎ"},
	// M-row
	{kanaForms{"ま", "", ""}, kanaForms{"マ", "", ""}, "ﾏ"},
	{kanaForms{"み", "", ""}, kanaForms{"ミ", "", ""}, "ﾐ"},
	{kanaForms{"む", "", ""}, kanaForms{"ム", "", ""}, "ﾑ"},
	{kanaForms{"め", "", ""}, kanaForms{"メ", "", ""}, "ﾒ"},
	{kanaForms{"も", "", ""}, kanaForms{"モ", "", ""}, "ﾓ"},
	// Y-row
	{kanaForms{"や", "", ""}, kanaForms{"ヤ", "", ""}, "ﾔ"},
	{kanaForms{"ゆ", "", ""}, kanaForms{"ユ", "", ""}, "ﾕ"},
	{kanaForms{"よ", "", ""}, kanaForms{"ヨ", "", ""}, "ﾖ"},
	// R-row
	{kanaForms{"ら", "", ""}, kanaForms{"ラ", "", ""}, "ﾗ"},
	{kanaForms{"り", "", ""}, kanaForms{"リ", "", ""}, "ﾘ"},
	{kanaForms{"る", "", ""}, kanaForms{"ル", "", ""}, "ﾙ"},
	{kanaForms{"れ", "", ""}, kanaForms{"レ", "", ""}, "ﾚ"},
	{kanaForms{"ろ", "", ""}, kanaForms{"ロ", "", ""}, "ﾛ"},
	// W-row
	{kanaForms{"わ", "", ""}, kanaForms{"ワ", "ヷ", ""}, "ﾜ"},
	{kanaForms{"ゐ", "", ""}, kanaForms{"ヰ", "ヸ", ""}, ""},
	{kanaForms{"ゑ", "", ""}, kanaForms{"ヱ", "ヹ", ""}, ""},
	{kanaForms{"を", "", ""}, kanaForms{"ヲ", "ヺ", ""}, "ｦ"},
	{kanaForms{"ん", "", ""}, kanaForms{"ン", "", ""}, "ﾝ"},
}

// smallKanaEntry relates the small kana forms.
type smallKanaEntry struct {
	hiragana  string
	katakana  string
	halfwidth string
}

var hiraKataSmallTable = []smallKanaEntry{
	{"ぁ", "ァ", "ｧ"},
	{"ぃ", "ィ", "ｨ"},
	{"ぅ", "ゥ", "ｩ"},
	{"ぇ", "ェ", "ｪ"},
	{"ぉ", "ォ", "ｫ"},
	{"っ", "ッ", "ｯ"},
	{"ゃ", "ャ", "ｬ"},
	{"ゅ", "ュ", "ｭ"},
	{"ょ", "ョ", "ｮ"},
	{"ゎ", "ヮ", ""},
	{"ゕ", "ヵ", ""},
	{"ゖ", "ヶ", ""},
}

var (
	voicedTablesOnce sync.Once
	// base kana (and iteration marks) to voiced counterpart
	voicedTable map[string]string
	// base kana to semi-voiced counterpart
	semiVoicedTable map[string]string
)

// voicedCompositionTables derives the voiced and semi-voiced composition
// tables from the shared kana table. Built once and shared by the
// hira-kata-composition stage.
func voicedCompositionTables() (map[string]string, map[string]string) {
	voicedTablesOnce.Do(func() {
		voicedTable = make(map[string]string)
		semiVoicedTable = make(map[string]string)
		for _, entry := range hiraKataTable {
			if entry.hiragana.voiced != "" {
				voicedTable[entry.hiragana.base] = entry.hiragana.voiced
			}
			if entry.katakana.voiced != "" {
				voicedTable[entry.katakana.base] = entry.katakana.voiced
			}
			if entry.hiragana.semiVoiced != "" {
				semiVoicedTable[entry.hiragana.base] = entry.hiragana.semiVoiced
			}
			if entry.katakana.semiVoiced != "" {
				semiVoicedTable[entry.katakana.base] = entry.katakana.semiVoiced
			}
		}
		// Iteration marks compose with the voiced sound mark too.
		voicedTable["ゝ"] = "ゞ"
		voicedTable["ヽ"] = "ヾ"
		voicedTable["〱"] = "〲"
		voicedTable["〳"] = "〴"
	})
	return voicedTable, semiVoicedTable
}
