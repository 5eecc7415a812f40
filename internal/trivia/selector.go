package trivia

import "math/rand/v2"

// Selector picks the next quiz question from a candidate pool.
type Selector struct {
	intn func(n int) int
}

// NewSelector returns a Selector drawing from the global random source.
func NewSelector() *Selector {
	return &Selector{intn: rand.IntN}
}

// Next picks one question from pool that matches filter and is not listed in
// previous. It returns false once the pool is exhausted. Ids in previous that
// are not in pool are ignored.
func (s *Selector) Next(pool []Question, filter CategoryFilter, previous []int) (*Question, bool) {
	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}

	candidates := make([]Question, 0, len(pool))
	for _, q := range pool {
		if !filter.Matches(q) {
			continue
		}
		if _, ok := seen[q.ID]; ok {
			continue
		}
		candidates = append(candidates, q)
	}

	if len(candidates) == 0 {
		return nil, false
	}

	picked := candidates[s.intn(len(candidates))]
	return &picked, true
}
