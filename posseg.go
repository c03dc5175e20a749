package jieba

import "math"

// minInf is the transition floor used by the joint tagger when no edge
// exists between two states, as opposed to minFloat which floors unseen
// emissions.
var minInf = math.Inf(-1)

// jointState encodes one of the joint tagger's states: a BMES tag and a
// part-of-speech label. Using a comparable struct instead of the
// original's concatenated string key lets trans/emit be indexed directly
// with Go maps.
type jointState struct {
	BMES string
	POS  string
}

// hmmJointModel holds the joint BMES×POS HMM parameters in log-space.
type hmmJointModel struct {
	start      map[jointState]float64
	trans      map[jointState]map[jointState]float64
	emit       map[jointState]map[rune]float64
	charStates map[rune][]jointState
	allStates  []jointState
}

// Pair is a (word, POS tag) result, mirroring the original's pair class.
type Pair struct {
	Word string
	Tag  string
}

// viterbiJoint decodes a run of CJK runes into a joint BMES×POS path.
// Unlike viterbi4 it does not restrict the terminal state to {E,S}: joint
// states already encode POS, so restricting the tail per-POS would be
// both expensive and unnecessary. It prunes candidate states at each step
// using charStates.
func viterbiJoint(m hmmJointModel, obs []rune) (float64, []jointState) {
	type cell struct {
		prob float64
		prev jointState
		has  bool
	}
	v := make([]map[jointState]float64, len(obs))
	memPath := make([]map[jointState]cell, len(obs))

	v[0] = map[jointState]float64{}
	memPath[0] = map[jointState]cell{}
	for _, s := range candidateStates(m, obs[0]) {
		v[0][s] = m.start[s] + emitJoint(m, s, obs[0])
		memPath[0][s] = cell{has: false}
	}

	for t := 1; t < len(obs); t++ {
		v[t] = map[jointState]float64{}
		memPath[t] = map[jointState]cell{}

		var prevStates []jointState
		for p := range memPath[t-1] {
			if len(m.trans[p]) > 0 {
				prevStates = append(prevStates, p)
			}
		}
		expectNext := map[jointState]struct{}{}
		for _, p := range prevStates {
			for y := range m.trans[p] {
				expectNext[y] = struct{}{}
			}
		}

		cand := intersectWithStates(expectNext, m.charStates[obs[t]])
		if len(cand) == 0 {
			if len(expectNext) > 0 {
				for y := range expectNext {
					cand = append(cand, y)
				}
			} else {
				cand = m.allStates
			}
		}

		for _, y := range cand {
			var bestProb float64
			var bestPrev jointState
			found := false
			for _, y0 := range prevStates {
				tr, ok := m.trans[y0][y]
				if !ok {
					tr = minInf
				}
				prob := v[t-1][y0] + tr + emitJoint(m, y, obs[t])
				if !found || prob > bestProb {
					bestProb = prob
					bestPrev = y0
					found = true
				}
			}
			if !found {
				continue
			}
			v[t][y] = bestProb
			memPath[t][y] = cell{prob: bestProb, prev: bestPrev, has: true}
		}
	}

	last := len(obs) - 1
	var bestProb float64
	var bestState jointState
	found := false
	for s, p := range v[last] {
		if !found || p > bestProb {
			bestProb = p
			bestState = s
			found = true
		}
	}

	route := make([]jointState, len(obs))
	state := bestState
	for i := len(obs) - 1; i >= 0; i-- {
		route[i] = state
		c := memPath[i][state]
		if !c.has {
			break
		}
		state = c.prev
	}
	return bestProb, route
}

func emitJoint(m hmmJointModel, s jointState, ch rune) float64 {
	if v, ok := m.emit[s][ch]; ok {
		return v
	}
	return minFloat
}

func candidateStates(m hmmJointModel, ch rune) []jointState {
	if states, ok := m.charStates[ch]; ok && len(states) > 0 {
		return states
	}
	return m.allStates
}

func intersectWithStates(set map[jointState]struct{}, states []jointState) []jointState {
	if len(states) == 0 {
		var all []jointState
		for s := range set {
			all = append(all, s)
		}
		return all
	}
	var out []jointState
	for _, s := range states {
		if _, ok := set[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

// posRecoverOOV decodes an OOV run with the joint tagger and reads off
// (word, tag) pairs using the BMES projection of the path; the POS of a
// B..E span is the end state's POS, and for S it is that state's POS.
func posRecoverOOV(m hmmJointModel) func([]rune) []Pair {
	return func(run []rune) []Pair {
		if len(run) == 0 {
			return nil
		}
		_, states := viterbiJoint(m, run)
		var out []Pair
		begin, next := 0, 0
		for i, s := range states {
			switch s.BMES {
			case "B":
				begin = i
			case "E":
				out = append(out, Pair{string(run[begin : i+1]), s.POS})
				next = i + 1
			case "S":
				out = append(out, Pair{string(run[i]), s.POS})
				next = i + 1
			}
		}
		if next < len(run) {
			tag := "x"
			if next < len(states) {
				tag = states[next].POS
			}
			out = append(out, Pair{string(run[next:]), tag})
		}
		return out
	}
}
