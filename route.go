package jieba

import "math"

// routeNode is the per-position dynamic-programming table entry: score is
// the log-probability of the best segmentation of runes[idx:], end is the
// end index (inclusive) of the chosen first word.
type routeNode struct {
	score float64
	end   int
}

// solveRoute finds the maximum-probability segmentation by scanning
// right to left, at each position picking the word whose score plus the
// best score already computed for what follows it is highest. Ties on
// score favor the larger end, which falls out naturally from scanning
// dag[idx] in increasing order and using a ">=" comparison to keep the
// last (largest) equal-score candidate.
func solveRoute(d *pfdict, runes []rune, dag map[int][]int) map[int]routeNode {
	n := len(runes)
	route := make(map[int]routeNode, n+1)
	route[n] = routeNode{0, 0}
	lt := logTotal(d.getTotal())

	for idx := n - 1; idx >= 0; idx-- {
		best := routeNode{score: math.Inf(-1)}
		for _, e := range dag[idx] {
			f, ok := d.get(string(runes[idx : e+1]))
			if !ok || f == 0 {
				f = 1
			}
			score := math.Log(float64(f)) - lt + route[e+1].score
			if score >= best.score {
				best = routeNode{score, e}
			}
		}
		route[idx] = best
	}
	return route
}

// cutDAGNoHMM walks the resolved route left to right, gluing consecutive
// single-ASCII-alphanumeric words into one token since the DP necessarily
// chops ASCII runs into individual characters (they are not words in the
// dictionary).
func cutDAGNoHMM(runes []rune, route map[int]routeNode) []string {
	var words []string
	var buf []rune
	n := len(runes)
	for x := 0; x < n; {
		y := route[x].end + 1
		word := runes[x:y]
		if len(word) == 1 && isASCIIAlnum(word[0]) {
			buf = append(buf, word...)
		} else {
			if len(buf) > 0 {
				words = append(words, string(buf))
				buf = nil
			}
			words = append(words, string(word))
		}
		x = y
	}
	if len(buf) > 0 {
		words = append(words, string(buf))
	}
	return words
}

func isASCIIAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// cutDAGHMM walks the resolved route like cutDAGNoHMM but buffers any
// single-character word (not just ASCII) and, on flush, either emits it
// bare (len 1), splits it into characters if it is itself a known
// positive-frequency word, or hands the OOV run to the HMM recoverer.
func cutDAGHMM(d *pfdict, runes []rune, route map[int]routeNode, recover func([]rune) []string) []string {
	var words []string
	var buf []rune
	n := len(runes)
	flush := func() {
		if len(buf) == 0 {
			return
		}
		switch {
		case len(buf) == 1:
			words = append(words, string(buf))
		case hasPositiveFreq(d, buf):
			for _, r := range buf {
				words = append(words, string(r))
			}
		default:
			for _, w := range recover(buf) {
				if d.isForceSplit(w) {
					for _, r := range w {
						words = append(words, string(r))
					}
				} else {
					words = append(words, w)
				}
			}
		}
		buf = nil
	}

	for x := 0; x < n; {
		y := route[x].end + 1
		word := runes[x:y]
		if y-x == 1 {
			buf = append(buf, word...)
		} else {
			flush()
			words = append(words, string(word))
		}
		x = y
	}
	flush()
	return words
}

func hasPositiveFreq(d *pfdict, runes []rune) bool {
	f, ok := d.get(string(runes))
	return ok && f > 0
}

// cutAllDAG is the full-mode cutter: walk the DAG in position order,
// emitting the single-end span when it is the only option and advances
// past the last emitted end, otherwise emitting every multi-character
// span.
func cutAllDAG(runes []rune, dag map[int][]int) []string {
	n := len(runes)
	var words []string
	oldJ := -1
	for k := 0; k < n; k++ {
		ends := dag[k]
		if len(ends) == 1 && k > oldJ {
			words = append(words, string(runes[k:ends[0]+1]))
			oldJ = ends[0]
		} else {
			for _, j := range ends {
				if j > k {
					words = append(words, string(runes[k:j+1]))
					oldJ = j
				}
			}
		}
	}
	return words
}
