// sources:
//   - https://github.com/davidbau/seedrandom (ARC4 based seedrandom.js)
//
// Package seedrandom reproduces the seedrandom.js stream bit for bit, so a
// shuffle computed from a seed string here matches one computed in a
// browser. It is not suitable for anything secret.
package seedrandom

const (
	Width  = 256
	Chunks = 6
	Digits = 52

	mask         = Width - 1
	startDenom   = uint64(1) << (8 * Chunks) // Width^Chunks
	significance = uint64(1) << Digits
	overflow     = significance * 2
)

// Generator is a single seeded stream. It must not be shared between
// goroutines without external locking; build one per stream instead.
type Generator struct {
	seed string
	key  []int
	arc4 *arc4
}

func New(seed string) *Generator {
	key := mixKey(seed)
	return &Generator{
		seed: seed,
		key:  key,
		arc4: newARC4(key),
	}
}

func (g *Generator) Seed() string { return g.seed }

// Key returns a copy of the mixed key the stream was scheduled with.
func (g *Generator) Key() []int {
	k := make([]int, len(g.key))
	copy(k, g.key)
	return k
}

// Float64 returns the next value in [0, 1) with a full 53-bit mantissa.
func (g *Generator) Float64() float64 {
	n := g.arc4.g(Chunks)
	// d stays a power of two but can pass 2^64 when padding repeats.
	d := float64(startDenom)
	var x uint64
	for n < significance {
		n = (n + x) * Width
		d *= Width
		x = g.arc4.g(1)
	}
	for n >= overflow {
		n /= 2
		d /= 2
		x >>= 1
	}
	return float64(n+x) / d
}

// Intn returns floor(Float64() * n), or 0 when n <= 0.
func (g *Generator) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(g.Float64() * float64(n))
}
