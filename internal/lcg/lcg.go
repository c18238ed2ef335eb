// Package lcg implements the legacy 31-bit multiplicative congruential
// generator x = (742938285 * x) mod (2^31 - 1).
package lcg

const (
	// Multiplier is the generator's fixed multiplicand.
	Multiplier = 742938285

	// Modulus is the Mersenne prime 2^31 - 1.
	Modulus = 0x7FFFFFFF
)

// Next advances the seed cell and returns the new value.
//
// The product is reduced with two folds of the high bits onto the low 31
// bits. A seed of 0 is a fixed point, and so is any seed congruent to 0
// modulo Modulus other than 0 itself, which maps to Modulus.
func Next(seed *int32) int32 {
	tmp1 := uint64(int64(*seed) * Multiplier)
	tmp2 := uint32(tmp1) & Modulus
	tmp2 += uint32(tmp1 >> 31)
	tmp2 = (tmp2 & Modulus) + (tmp2 >> 31)
	*seed = int32(tmp2)
	return *seed
}
