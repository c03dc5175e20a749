package jieba

const minFloat = -3.14e100

// bmesStates is the canonical iteration order for the 4-state tagger.
// Order doesn't affect correctness (Viterbi takes a max over all of
// them) but keeps output deterministic when probabilities tie exactly.
var bmesStates = [4]string{"B", "M", "E", "S"}

// prevStatus encodes the BMES grammar: which states may precede a given
// state.
var prevStatus = map[string][]string{
	"B": {"E", "S"},
	"M": {"M", "B"},
	"E": {"B", "M"},
	"S": {"S", "E"},
}

// hmm4Model holds the 4-state HMM parameters in log-space. emit falls
// back to minFloat for any unseen character.
type hmm4Model struct {
	start map[string]float64
	trans map[string]map[string]float64
	emit  map[string]map[string]float64
}

func emitOf(table map[string]float64, ch rune) float64 {
	if v, ok := table[string(ch)]; ok {
		return v
	}
	return minFloat
}

// viterbi4 decodes a run of CJK runes into its most likely BMES path. It
// returns the path states, one per input rune.
func viterbi4(m hmm4Model, obs []rune) []string {
	if len(obs) == 1 {
		return []string{"S"}
	}

	v := make([]map[string]float64, len(obs))
	path := map[string][]string{
		"B": {"B"}, "M": {"M"}, "E": {"E"}, "S": {"S"},
	}

	v[0] = make(map[string]float64, 4)
	for _, s := range bmesStates {
		v[0][s] = m.start[s] + emitOf(m.emit[s], obs[0])
	}

	for t := 1; t < len(obs); t++ {
		v[t] = make(map[string]float64, 4)
		newPath := make(map[string][]string, 4)
		for _, s := range bmesStates {
			var bestProb float64
			var bestPrev string
			for i, p := range prevStatus[s] {
				trans, ok := m.trans[p][s]
				if !ok {
					trans = minFloat
				}
				prob := v[t-1][p] + trans
				if i == 0 || prob > bestProb || (prob == bestProb && p > bestPrev) {
					bestProb = prob
					bestPrev = p
				}
			}
			em := emitOf(m.emit[s], obs[t])
			v[t][s] = bestProb + em
			np := make([]string, len(path[bestPrev])+1)
			copy(np, path[bestPrev])
			np[len(np)-1] = s
			newPath[s] = np
		}
		path = newPath
	}

	last := len(obs) - 1
	if v[last]["E"] > v[last]["S"] {
		return path["E"]
	}
	return path["S"]
}

// cutHMM4 reads words off a BMES path: a B..E span is a word, S is a
// single-character word. If the sentence ends mid-B/M (no terminal E
// reached — can't happen given the {E,S} termination restriction, but
// kept for robustness against a custom model), the remainder from the
// last boundary is emitted as one word.
func cutHMM4(obs []rune, states []string) []string {
	var words []string
	begin, next := 0, 0
	for i, s := range states {
		switch s {
		case "B":
			begin = i
		case "E":
			words = append(words, string(obs[begin:i+1]))
			next = i + 1
		case "S":
			words = append(words, string(obs[i]))
			next = i + 1
		}
	}
	if next < len(obs) {
		words = append(words, string(obs[next:]))
	}
	return words
}

func recoverOOV(m hmm4Model) func([]rune) []string {
	return func(run []rune) []string {
		states := viterbi4(m, run)
		return cutHMM4(run, states)
	}
}
