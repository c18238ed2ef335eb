package twister

// Period parameters.
const (
	N         = 624        // State vector length in words
	M         = 397        // Middle word offset
	MatrixA   = 0x9908B0DF // Constant vector a
	UpperMask = 0x80000000 // Most significant w-r bits
	LowerMask = 0x7FFFFFFF // Least significant r bits
)

// Seeding constants.
const (
	// DefaultSeed is the canonical scalar seed of the reference generator.
	DefaultSeed = 5489

	// ArraySeed is the scalar baseline applied before a key is mixed in.
	ArraySeed = 19650218

	initMultiplier   = 1812433253 // Knuth TAOCP Vol2. 3rd Ed. P.106
	keyMultiplier    = 1664525
	finishMultiplier = 1566083941
)

// Tempering masks.
const (
	temperingB = 0x9D2C5680
	temperingC = 0xEFC60000
)

// mag01[x] = x * MatrixA for x = 0, 1.
var mag01 = [2]uint32{0, MatrixA}

// Init fills mt from the scalar seed x. mt[0] ends up equal to x.
func Init(mt *[N]uint32, x uint32) {
	mt[0] = x
	for i := 1; i < N; i++ {
		x = initMultiplier*(x^(x>>30)) + uint32(i)
		mt[i] = x
	}
}

// InitByArray fills mt from key. An empty key falls back to Init(mt, 0),
// matching the scalar-by-length convention of the combined seeding entry
// point for a zero length.
//
// The index handling copies mt[N-1] into mt[0] and restarts at 1 whenever
// the write position reaches N-1. Published vectors depend on this exact
// sequencing, so it must not be replaced by modulo indexing.
func InitByArray(mt *[N]uint32, key []uint32) {
	if len(key) == 0 {
		Init(mt, 0)
		return
	}
	Init(mt, ArraySeed)

	i, j := 0, 0
	k := N
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		x := mt[i]
		i++
		mt[i] = (mt[i] ^ ((x ^ (x >> 30)) * keyMultiplier)) + key[j] + uint32(j) // non linear
		if i == N-1 {
			mt[0] = mt[N-1]
			i = 0
		}
		j++
		if j >= len(key) {
			j = 0
		}
	}
	for k = N - 1; k > 0; k-- {
		x := mt[i]
		i++
		mt[i] = (mt[i] ^ ((x ^ (x >> 30)) * finishMultiplier)) - uint32(i) // non linear
		if i == N-1 {
			mt[0] = mt[N-1]
			i = 0
		}
	}

	// MSB is 1; assuring non-zero initial array.
	mt[0] = UpperMask
}

// Update regenerates all N words of mt (the twist-update pass).
// The loop is split in three so no index needs a modulo.
func Update(mt *[N]uint32) {
	var y uint32
	i := 0
	for ; i < N-M; i++ {
		y = (mt[i] & UpperMask) | (mt[i+1] & LowerMask)
		mt[i] = mt[i+M] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; i < N-1; i++ {
		y = (mt[i] & UpperMask) | (mt[i+1] & LowerMask)
		mt[i] = mt[i+(M-N)] ^ (y >> 1) ^ mag01[y&1]
	}
	y = (mt[N-1] & UpperMask) | (mt[0] & LowerMask)
	mt[N-1] = mt[M-1] ^ (y >> 1) ^ mag01[y&1]
}

// Temper applies the output tempering transform to a raw state word.
func Temper(y uint32) uint32 {
	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18
	return y
}
