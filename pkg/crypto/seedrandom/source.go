package seedrandom

import (
	"math/rand"
	"strconv"
)

type source struct {
	g *Generator
}

func NewRand(seed string) *rand.Rand           { return rand.New(NewSource(seed)) }
func NewSource(seed string) rand.Source64      { return &source{g: New(seed)} }
func NewSourceFrom(g *Generator) rand.Source64 { return &source{g: g} }

// Seed re-keys the stream with the decimal form of seed, the string
// seedrandom.js derives from a numeric seed.
func (s *source) Seed(seed int64) { s.g = New(strconv.FormatInt(seed, 10)) }

func (s *source) Int63() int64 { return int64(s.Uint64() >> 1) }

// Uint64 spends two draws: 53 bits from the first, the top 11 of the
// second below them.
func (s *source) Uint64() uint64 {
	return s.bits()<<11 | s.bits()>>42
}

// bits lifts the 53-bit mantissa of the next Float64 back to an integer.
func (s *source) bits() uint64 {
	return uint64(s.g.Float64() * (1 << 53))
}
