package jieba

import (
	"sort"
	"sync"
)

// lineJob pairs an input line with its original position, so ordered
// output can be reconstructed after concurrent processing.
type lineJob struct {
	index int
	line  string
}

type lineResult struct {
	index int
	words []string
}

// CutLines maps cutter over each line of lines using a bounded pool of
// numWorkers goroutines. Parallelism is a strategy the caller opts into
// per call, rather than a global enable/disable switch on the engine.
// cutter is typically tk.Cut bound to fixed mode flags, e.g.
// func(s string) []string { return tk.Cut(s, false, true) }. Output
// preserves the input line order.
func CutLines(lines []string, cutter func(string) []string, numWorkers int) [][]string {
	if numWorkers < 1 {
		numWorkers = 1
	}
	jobs := make(chan lineJob, len(lines))
	results := make(chan lineResult, len(lines))

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- lineResult{j.index, cutter(j.line)}
			}
		}()
	}

	for i, line := range lines {
		jobs <- lineJob{i, line}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([][]string, len(lines))
	collected := make([]lineResult, 0, len(lines))
	for r := range results {
		collected = append(collected, r)
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].index < collected[j].index })
	for _, r := range collected {
		out[r.index] = r.words
	}
	return out
}
