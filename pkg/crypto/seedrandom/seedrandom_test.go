package seedrandom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Recorded from seedrandom.js (ARC4 variant).
var goldenFloats = map[string][]float64{
	"":       {0.23144008215179881, 0.27404636548159655, 0.7901279251811976, 0.40384160557189036, 0.1321140086237582, 0.6182831712505996},
	"0":      {0.7803563384230067, 0.05144520047760746, 0.5317574394273067, 0.4885194745974366, 0.8764000274360477, 0.7467466967539371},
	"test":   {0.8722025543160253, 0.4023928518604753, 0.9647289658507073, 0.30479896375101545, 0.3521069009157321, 0.2734533903544762},
	"abc":    {0.7319428070286753, 0.6472995620587413, 0.7150830336207971, 0.6316332598487158, 0.39283784326843896, 0.27854243237980114},
	"hello.": {0.9282578795792454, 0.3752569768646784, 0.7316977468919549, 0.23707962084956113, 0.06057665448709666, 0.6449496351611882},
	"42":     {0.00701751618236155, 0.17185490054868188, 0.967001069269818, 0.4077816952668805, 0.922687842759339, 0.7869285107049383},
	"héllo":  {0.7984849998302277, 0.3435560490119901, 0.8577156342892582, 0.08688444413567728, 0.17474440753597578, 0.517619516945631},
	"😀x":     {0.05094774283933791, 0.8193233301448826, 0.09312623540343225, 0.35743186540172805, 0.02843790441305635, 0.9025894146761728},
}

func TestFloat64Golden(t *testing.T) {
	for seed, want := range goldenFloats {
		g := New(seed)
		got := make([]float64, len(want))
		for i := range got {
			got[i] = g.Float64()
		}
		assert.Equal(t, want, got, "seed %q", seed)
	}
}

func TestFloat64LongSeed(t *testing.T) {
	g := New(strings.Repeat("x", 300))
	assert.Equal(t, 0.952495823023581, g.Float64())
	assert.Equal(t, 0.9378530102966817, g.Float64())
}

func TestFloat64RepeatedPadding(t *testing.T) {
	// The 11th draw of "26" pads the mantissa three times.
	want := []float64{
		0.9926940990436789, 0.776158683023631, 0.4923705961343615, 0.9736794885604908,
		0.5845347368006677, 0.33532503724271767, 0.23090364573980818, 0.02145722856382599,
		0.9751434652283955, 0.9156984353400623, 0.00017330462618747993,
	}
	g := New("26")
	for i, w := range want {
		assert.Equal(t, w, g.Float64(), "draw %d", i)
	}
}

func TestFloat64Deterministic(t *testing.T) {
	for _, seed := range []string{"", "0", "test", "chapter-1024"} {
		a, b := New(seed), New(seed)
		for i := 0; i < 1000; i++ {
			require.Equal(t, a.Float64(), b.Float64(), "seed %q draw %d", seed, i)
		}
	}
}

func TestFloat64Range(t *testing.T) {
	g := New("range")
	for i := 0; i < 100000; i++ {
		v := g.Float64()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestFloat64Advances(t *testing.T) {
	for _, seed := range []string{"", "a", "test"} {
		g := New(seed)
		prev := g.Float64()
		for i := 0; i < 100; i++ {
			next := g.Float64()
			assert.NotEqual(t, prev, next)
			prev = next
		}
	}
}

func TestMixKey(t *testing.T) {
	assert.Empty(t, mixKey(""))
	assert.Equal(t, []int{48}, mixKey("0"))
	assert.Equal(t, []int{116, 101, 115, 116}, mixKey("test"))
	assert.Equal(t, []int{97, 98, 99}, mixKey("abc"))

	long := mixKey(strings.Repeat("x", 300))
	require.Len(t, long, Width)
	assert.Equal(t, []int{96, 120, 96, 120}, long[:4])
	assert.Equal(t, []int{120, 120, 120, 120, 120, 120}, long[250:])
	for _, v := range long {
		assert.True(t, v >= 0 && v < Width)
	}
}

func TestMixKeyCodeUnits(t *testing.T) {
	// One astral character is a surrogate pair: two key entries.
	assert.Len(t, mixKey("😀"), 2)
	assert.Len(t, mixKey("é"), 1)
}

func TestARC4EmptyKey(t *testing.T) {
	a := newARC4(nil)
	assert.Equal(t, uint64(59), a.g(1))
	assert.Equal(t, uint64(63), a.g(1))
	assert.Equal(t, uint64(168), a.g(1))
	assert.Equal(t, uint64(63), a.g(1))
	assert.Equal(t, 4, a.i)
	assert.Equal(t, 190, a.j)

	assert.Equal(t, uint64(65144591733589), newARC4([]int{}).g(Chunks))
}

func TestARC4Permutation(t *testing.T) {
	a := newARC4(mixKey("permutation"))
	for n := 0; n < 10; n++ {
		a.g(Chunks)
		var seen [Width]bool
		for _, v := range a.s {
			require.False(t, seen[v])
			seen[v] = true
		}
	}
}

func TestKeyIsCopy(t *testing.T) {
	g := New("abc")
	k := g.Key()
	k[0] = 0
	assert.Equal(t, []int{97, 98, 99}, g.Key())
	assert.Equal(t, "abc", g.Seed())
}

func TestIntn(t *testing.T) {
	g := New("0")
	assert.Equal(t, 0, g.Intn(0))
	assert.Equal(t, 0, g.Intn(-3))

	// Intn(0) and Intn(-3) must not consume the stream.
	assert.Equal(t, 7, g.Intn(10))
}
