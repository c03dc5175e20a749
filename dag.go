package jieba

// buildDAG constructs the directed acyclic graph of candidate word
// boundaries for a CJK run of runes. For each start position k it lists
// every end position e >= k such that
// runes[k:e+1] is a positive-frequency word in d; if none exists, DAG[k]
// falls back to the single-character span [k].
//
// The inner walk stops the moment the fragment leaves the set of known
// prefixes (invariant P1 guarantees no longer word starting at k can
// exist past that point), so this is O(N*K) rather than O(N^2).
func buildDAG(d *pfdict, runes []rune) map[int][]int {
	n := len(runes)
	dag := make(map[int][]int, n)
	for k := 0; k < n; k++ {
		var ends []int
		i := k
		for i < n {
			frag := string(runes[k : i+1])
			if !d.contains(frag) {
				break
			}
			if f, _ := d.get(frag); f > 0 {
				ends = append(ends, i)
			}
			i++
		}
		if len(ends) == 0 {
			ends = []int{k}
		}
		dag[k] = ends
	}
	return dag
}
