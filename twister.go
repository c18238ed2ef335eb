package mtrand

import "github.com/llehouerou/go-mtrand/internal/twister"

// StateSize is the number of words in a TwisterState vector.
const StateSize = twister.N

// DefaultSeed is the canonical MT19937 scalar seed.
const DefaultSeed = twister.DefaultSeed

// TwisterState holds one MT19937 stream: the 624-word vector and the read
// cursor into it. A Cursor of StateSize means the vector is exhausted and
// the next draw regenerates it.
//
// The zero value is degenerate (it produces only zeros) and must be seeded
// with Seed, SeedArray or SeedRandMT before use. Copying Words and Cursor
// verbatim, in that order, is enough to reproduce the stream later.
//
// A TwisterState is not safe for concurrent use.
type TwisterState struct {
	Words  [StateSize]uint32
	Cursor int
}

// NewTwister returns a state seeded with the scalar seed.
func NewTwister(seed uint32) *TwisterState {
	s := &TwisterState{}
	s.Seed(seed)
	return s
}

// Seed initializes the state from a scalar. Words[0] equals seed afterwards.
func (s *TwisterState) Seed(seed uint32) {
	twister.Init(&s.Words, seed)
	s.Cursor = StateSize
}

// SeedArray initializes the state from a key of any length. An empty or
// nil key is equivalent to Seed(0).
func (s *TwisterState) SeedArray(key []uint32) {
	twister.InitByArray(&s.Words, key)
	s.Cursor = StateSize
}

// SeedRandMT is the combined seeding entry point. A nil key seeds from
// length as a scalar; otherwise key is mixed in and length is ignored.
//
// A non-nil empty key is treated as an array of length zero, which in turn
// degenerates to Seed(0).
func (s *TwisterState) SeedRandMT(key []uint32, length uint32) {
	if key == nil {
		s.Seed(length)
		return
	}
	s.SeedArray(key)
}

// Uint32 returns the next value in [0, 0xFFFFFFFF].
func (s *TwisterState) Uint32() uint32 {
	i := s.Cursor
	if i >= StateSize {
		twister.Update(&s.Words)
		i = 0
	}
	y := s.Words[i]
	s.Cursor = i + 1
	return twister.Temper(y)
}

// Uint64 returns two consecutive draws, the first in the high word.
// It makes a *TwisterState usable as a math/rand/v2 Source.
func (s *TwisterState) Uint64() uint64 {
	hi := uint64(s.Uint32())
	return hi<<32 | uint64(s.Uint32())
}

// Exhausted reports whether the next draw will regenerate the vector.
func (s *TwisterState) Exhausted() bool {
	return s.Cursor >= StateSize
}

// Degenerate reports whether every word of the vector is zero.
func (s *TwisterState) Degenerate() bool {
	for _, w := range s.Words {
		if w != 0 {
			return false
		}
	}
	return true
}
