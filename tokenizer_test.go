package jieba

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCutAccurateHMM(t *testing.T) {
	tk := NewDefaultTokenizer()
	cases := []struct {
		name string
		text string
		hmm  bool
		want []string
	}{
		{
			"accurate with hmm",
			"我来到北京清华大学",
			true,
			[]string{"我", "来到", "北京", "清华大学"},
		},
		{
			"accurate without hmm splits the unknown run into singles",
			"他来到了网易杭研大厦",
			false,
			[]string{"他", "来到", "了", "网易", "杭", "研", "大厦"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := tk.Cut(c.text, false, c.hmm)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestCutOOVRecovery(t *testing.T) {
	tk := NewDefaultTokenizer()
	got := tk.Cut("他来到了网易杭研大厦", false, true)
	assert.Equal(t, []string{"他", "来到", "了", "网易", "杭研", "大厦"}, got)
}

func TestCutAllFullMode(t *testing.T) {
	tk := NewDefaultTokenizer()
	got := tk.CutAll("我来到北京清华大学")
	want := []string{"我", "来到", "北京", "清华", "清华大学", "华大", "大学"}
	assert.Equal(t, want, got)
}

func TestCutForSearch(t *testing.T) {
	tk := NewDefaultTokenizer()
	got := tk.CutForSearch("中国科学院计算所", true)
	assert.Contains(t, got, "中国")
	assert.Contains(t, got, "科学院")
	assert.Contains(t, got, "中国科学院")
	assert.Contains(t, got, "计算所")
}

// TestCutForSearchIncludesSubwords exercises the full search-mode
// scenario: "小明硕士毕业于中国科学院计算所" must yield "中国科学院" itself
// plus every one of its 2- and 3-gram sub-words that are in the
// dictionary.
func TestCutForSearchIncludesSubwords(t *testing.T) {
	tk := NewDefaultTokenizer()
	got := tk.CutForSearch("小明硕士毕业于中国科学院计算所", true)
	for _, want := range []string{"中国科学院", "中国", "科学", "学院", "科学院", "计算所"} {
		assert.Contains(t, got, want)
	}
}

func TestTokenizeOffsets(t *testing.T) {
	tk := NewDefaultTokenizer()
	toks := tk.Tokenize("我来到北京清华大学", "default", true)
	require.NotEmpty(t, toks)
	for _, tok := range toks {
		assert.Equal(t, tok.Word, string([]rune("我来到北京清华大学")[tok.Start:tok.End]))
	}
	last := toks[len(toks)-1]
	assert.Equal(t, len([]rune("我来到北京清华大学")), last.End)
}

func TestTokenizeDefaultMode(t *testing.T) {
	tk := NewDefaultTokenizer()
	got := tk.Tokenize("永和服装饰品有限公司", "default", true)
	want := []Token{
		{"永和", 0, 2},
		{"服装", 2, 4},
		{"饰品", 4, 6},
		{"有限公司", 6, 10},
	}
	assert.Equal(t, want, got)
}

func TestPosCut(t *testing.T) {
	tk := NewDefaultTokenizer()
	got := tk.PosCut("我爱北京天安门", true)
	want := []Pair{
		{"我", "r"},
		{"爱", "v"},
		{"北京", "ns"},
		{"天安门", "ns"},
	}
	assert.Equal(t, want, got)
}

func TestPosCutOOV(t *testing.T) {
	tk := NewDefaultTokenizer()
	got := tk.PosCut("他来到了网易杭研大厦", true)
	found := false
	for _, p := range got {
		if p.Word == "杭研" {
			found = true
			assert.Equal(t, "nz", p.Tag)
		}
	}
	assert.True(t, found, "expected 杭研 to be recovered as one tagged word")
}

func TestAddWordThenDelWord(t *testing.T) {
	tk := NewDefaultTokenizer()
	before := tk.Cut("石墨烯材料", false, false)
	assert.NotContains(t, before, "石墨烯")

	tk.AddWord("石墨烯", nil, "n")
	after := tk.Cut("石墨烯材料", false, false)
	assert.Contains(t, after, "石墨烯")

	tk.DelWord("石墨烯")
	restored := tk.Cut("石墨烯材料", false, false)
	assert.NotContains(t, restored, "石墨烯")
}

func TestSuggestFreqForcesCut(t *testing.T) {
	tk := NewDefaultTokenizer()
	freq := tk.SuggestFreq(true, "中", "国")
	assert.GreaterOrEqual(t, freq, 0)
	got := tk.Cut("中国", false, false)
	assert.Contains(t, got, "中")
	assert.Contains(t, got, "国")
}

func TestLoadUserDict(t *testing.T) {
	tk := NewDefaultTokenizer()
	r := strings.NewReader("凯哥 100 nr\n")
	err := tk.LoadUserDict(r, "<test>")
	require.NoError(t, err)
	got := tk.Cut("凯哥来了", false, false)
	assert.Contains(t, got, "凯哥")
}

func TestLoadUserDictSkipsBlankLines(t *testing.T) {
	tk := NewDefaultTokenizer()
	r := strings.NewReader("\n   \n")
	err := tk.LoadUserDict(r, "<test>")
	require.NoError(t, err)
}

func TestSetDictionaryMissingFile(t *testing.T) {
	tk := NewDefaultTokenizer()
	err := tk.SetDictionary("/nonexistent/path/to/dict.txt")
	require.Error(t, err)
	var fnfErr *FileNotFoundError
	require.ErrorAs(t, err, &fnfErr)
}

func TestNewTokenizerMissingFile(t *testing.T) {
	_, err := NewTokenizer("/nonexistent/path/to/dict.txt")
	require.Error(t, err)
}

func TestCutLines(t *testing.T) {
	tk := NewDefaultTokenizer()
	lines := []string{"我来到北京清华大学", "他来到了网易杭研大厦", "中国科学院计算所"}
	cutter := func(s string) []string { return tk.Cut(s, false, true) }
	got := CutLines(lines, cutter, 3)
	require.Len(t, got, 3)
	assert.Equal(t, tk.Cut(lines[0], false, true), got[0])
	assert.Equal(t, tk.Cut(lines[1], false, true), got[1])
	assert.Equal(t, tk.Cut(lines[2], false, true), got[2])
}
