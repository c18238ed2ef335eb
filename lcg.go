package mtrand

import "github.com/llehouerou/go-mtrand/internal/lcg"

// Rand31Max is the largest value Rand31 returns for a non-degenerate seed.
const Rand31Max = lcg.Modulus - 1

// Rand31 advances the caller's seed cell of the legacy 31-bit generator
// and returns the new value, which is also stored in *seed.
//
// Seeds in [1, 0x7FFFFFFE] yield values in the same range. A seed of 0
// returns 0 forever.
func Rand31(seed *int32) int32 {
	return lcg.Next(seed)
}
