package seedrandom

// Shuffle returns a new slice holding items in the order the generator
// draws them. Each draw picks from the indices not yet taken, and the
// pool keeps its relative order after every removal; that ordering is
// what keeps results identical to seedrandom.js consumers, so it must not
// be replaced by an in-place Fisher-Yates.
func Shuffle[T any](g *Generator, items []T) []T {
	out := make([]T, 0, len(items))
	for _, i := range g.Perm(len(items)) {
		out = append(out, items[i])
	}
	return out
}

// Perm returns the shuffled order of [0, n). It draws nothing when n <= 0.
func (g *Generator) Perm(n int) []int {
	if n <= 0 {
		return []int{}
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	perm := make([]int, 0, n)
	for len(pool) > 0 {
		r := g.Intn(len(pool))
		perm = append(perm, pool[r])
		pool = append(pool[:r], pool[r+1:]...)
	}
	return perm
}
