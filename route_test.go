package jieba

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolveRouteAndCutDAGNoHMM(t *testing.T) {
	d := newTestDict(t, "我 10 r\n来到 5 v\n北京 5 ns\n")
	runes := []rune("我来到北京")
	dag := buildDAG(d, runes)
	route := solveRoute(d, runes, dag)
	got := cutDAGNoHMM(runes, route)
	assert.Equal(t, []string{"我", "来到", "北京"}, got)
}

func TestCutDAGNoHMMGluesASCII(t *testing.T) {
	d := newPFDict()
	runes := []rune("abc")
	dag := buildDAG(d, runes)
	route := solveRoute(d, runes, dag)
	got := cutDAGNoHMM(runes, route)
	assert.Equal(t, []string{"abc"}, got)
}

func TestCutDAGHMMKeepsKnownMultiCharWordIntact(t *testing.T) {
	d := newTestDict(t, "这 5 r\n一刹那 5 t\n的 5 u\n")
	runes := []rune("这一刹那的")
	dag := buildDAG(d, runes)
	route := solveRoute(d, runes, dag)
	recover := func(run []rune) []string { t.Fatal("recover should not be called"); return nil }
	got := cutDAGHMM(d, runes, route, recover)
	assert.Equal(t, []string{"这", "一刹那", "的"}, got)
}

func TestCutDAGHMMSplitsBufferedPositiveFreqRun(t *testing.T) {
	// A buffered run of single-character route picks that happens to
	// spell a known positive-frequency word is split back into its
	// characters rather than reassembled.
	d := newTestDict(t, "一刹那 5 t\n")
	runes := []rune("一刹那")
	route := map[int]routeNode{
		0: {end: 0},
		1: {end: 1},
		2: {end: 2},
	}
	recover := func(run []rune) []string { t.Fatal("recover should not be called"); return nil }
	got := cutDAGHMM(d, runes, route, recover)
	assert.Equal(t, []string{"一", "刹", "那"}, got)
}

func TestCutDAGHMMRecoversOOVRun(t *testing.T) {
	d := newTestDict(t, "他 5 r\n来到 5 v\n了 5 u\n网易 5 nz\n大厦 5 n\n")
	runes := []rune("他来到了网易杭研大厦")
	dag := buildDAG(d, runes)
	route := solveRoute(d, runes, dag)
	recover := func(run []rune) []string { return []string{string(run)} }
	got := cutDAGHMM(d, runes, route, recover)
	assert.Equal(t, []string{"他", "来到", "了", "网易", "杭研", "大厦"}, got)
}
