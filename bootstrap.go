package mtrand

import (
	"errors"
	"fmt"
)

// Bootstrap defaults.
const (
	// HoldRandName is the globals name of the legacy holdrand counter.
	HoldRandName = "::HOLDRAND::"

	// HoldRandInit is the initial holdrand value.
	HoldRandInit = 2345678

	// DefaultSeed1 is the fixed seed of the first LCG cell.
	DefaultSeed1 = 15937

	// timeSeedFold bounds the time-derived seed before the +1 shift.
	timeSeedFold = 0x7FFFFFFE
)

// Host is what Bootstrap consumes from the embedding application.
type Host interface {
	// TimeSeed returns a time-derived 32-bit value. Any wall-clock or
	// monotonic reading is acceptable.
	TimeSeed() uint32

	// Globals returns the host's named-cell store.
	Globals() Globals
}

// Session is the random state a host owns for its lifetime: one twister
// stream, two LCG seed cells and the holdrand cell living in the host's
// globals.
type Session struct {
	Twister TwisterState

	// Seed1 starts at DefaultSeed1.
	Seed1 int32

	// Seed2 starts at the folded time seed, in [1, 0x7FFFFFFE].
	Seed2 int32

	// HoldRand points into the host globals under HoldRandName.
	HoldRand *int32
}

// Bootstrap performs the one-time initialization of a host session.
//
// It registers and initializes the holdrand cell, sets Seed1 to
// DefaultSeed1, derives Seed2 from host.TimeSeed() and seeds the twister
// with the scalar DefaultSeed. Calling it again on the same host resets the
// existing holdrand cell instead of failing.
func Bootstrap(host Host) (*Session, error) {
	if host == nil {
		return nil, ErrNilHost
	}

	holdRand, err := initHoldRand(host.Globals())
	if err != nil {
		return nil, err
	}

	s := &Session{
		Seed1:    DefaultSeed1,
		Seed2:    TimeSeedToRand31(host.TimeSeed()),
		HoldRand: holdRand,
	}
	s.Twister.SeedRandMT(nil, DefaultSeed)
	return s, nil
}

func initHoldRand(g Globals) (*int32, error) {
	if g == nil {
		return nil, fmt.Errorf("create %q: %w", HoldRandName, ErrGlobalNotFound)
	}
	if err := g.CreateGlobal(HoldRandName); err != nil && !errors.Is(err, ErrGlobalExists) {
		return nil, fmt.Errorf("create %q: %w", HoldRandName, err)
	}
	p := g.QueryGlobal(HoldRandName)
	if p == nil {
		return nil, fmt.Errorf("query %q: %w", HoldRandName, ErrGlobalNotFound)
	}
	*p = HoldRandInit
	return p, nil
}

// TimeSeedToRand31 folds a 32-bit time value into a non-degenerate Rand31
// seed in [1, 0x7FFFFFFE].
func TimeSeedToRand31(t uint32) int32 {
	for t >= timeSeedFold {
		t -= timeSeedFold
	}
	return int32(t) + 1
}
