// Package twister implements the MT19937 Mersenne Twister kernels.
//
// The functions operate in place on a caller-owned 624-word state vector
// and carry no cursor of their own; the read position is tracked by the
// caller (see mtrand.TwisterState).
//
// Reference: M. Matsumoto and T. Nishimura, "Mersenne Twister: A
// 623-dimensionally equidistributed uniform pseudorandom number generator",
// ACM TOMACS 8(1), 1998, with the 2002/1/26 initialization.
package twister
