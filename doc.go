// Package mtrand provides the deterministic random number generators of an
// audio engine: a Mersenne Twister (MT19937, period 2^19937-1) and a legacy
// 31-bit linear congruential generator kept for streams that must stay
// bit-identical with older output.
//
// # Basic Usage
//
// Drawing from the Mersenne Twister:
//
//	s := mtrand.NewTwister(5489)
//	v := s.Uint32() // 3499211612
//
// Seeding from a key:
//
//	var s mtrand.TwisterState
//	s.SeedArray([]uint32{0x123, 0x234, 0x345, 0x456})
//
// A *TwisterState is a math/rand/v2 Source:
//
//	r := rand.New(mtrand.NewTwister(42))
//	n := r.IntN(100)
//
// The legacy generator keeps its whole state in one caller-owned cell:
//
//	seed := int32(15937)
//	v := mtrand.Rand31(&seed)
//
// # Host Bootstrap
//
// A host calls Bootstrap once at startup. It supplies a time-derived
// value and a named-cell store (see Globals and Registry) and receives a
// Session with a scalar-seeded twister and two LCG seed cells.
//
// # Degenerate States
//
// An all-zero TwisterState and a Rand31 seed of 0 produce only zeros.
// Neither is guarded against at run time: seed before drawing.
//
// # Thread Safety
//
// TwisterState values and seed cells are NOT safe for concurrent use.
// Each goroutine needing an independent stream should own its own state.
// Registry is safe for concurrent use.
//
// Neither generator is suitable for cryptographic purposes.
package mtrand
