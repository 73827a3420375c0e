package seedrandom

type arc4 struct {
	s    [Width]int
	i, j int
}

func newARC4(key []int) *arc4 {
	if len(key) == 0 {
		key = []int{0}
	}
	a := new(arc4)
	for k := range a.s {
		a.s[k] = k
	}
	j := 0
	for k := 0; k < Width; k++ {
		t := a.s[k]
		j = (j + key[k%len(key)] + t) & mask
		a.s[k] = a.s[j]
		a.s[j] = t
	}
	// Drop the first Width bytes of keystream.
	a.g(Width)
	return a
}

// g returns the next count keystream bytes packed big-endian into r.
// r wraps once count exceeds 8, which only the warm-up does.
func (a *arc4) g(count int) uint64 {
	var r uint64
	i, j, s := a.i, a.j, &a.s
	for ; count > 0; count-- {
		i = (i + 1) & mask
		t := s[i]
		j = (j + t) & mask
		sj := s[j]
		s[i] = sj
		s[j] = t
		r = r*Width + uint64(s[(sj+t)&mask])
	}
	a.i, a.j = i, j
	return r
}
