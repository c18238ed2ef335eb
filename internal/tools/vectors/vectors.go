// Package vectors prints reference output streams of the generators so
// they can be compared against other implementations.
package vectors

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/llehouerou/go-mtrand"
)

// Generator names.
const (
	GeneratorMT  = "mt"
	GeneratorLCG = "lcg"
)

// Output formats.
const (
	FormatDec = "dec"
	FormatHex = "hex"
)

// Config holds configuration for vector generation.
type Config struct {
	Generator string   `env:"MTRAND_GENERATOR" envDefault:"mt"`
	Seed      uint32   `env:"MTRAND_SEED" envDefault:"5489"`
	Key       []uint32 `env:"MTRAND_KEY" envSeparator:","`
	Count     int      `env:"MTRAND_COUNT" envDefault:"10"`
	Skip      int      `env:"MTRAND_SKIP" envDefault:"0"`
	Format    string   `env:"MTRAND_FORMAT" envDefault:"dec"`
}

// ParseConfig loads defaults from the environment, then applies flags.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Generator, "generator", cfg.Generator, "generator to draw from (mt, lcg)")
	fs.Func("seed", "scalar seed; reinterpreted as int32 for lcg", func(s string) error {
		v, err := strconv.ParseUint(s, 0, 32)
		if err != nil {
			return err
		}
		cfg.Seed = uint32(v)
		return nil
	})
	fs.Func("key", "comma-separated uint32 key; selects array seeding (mt only)", func(s string) error {
		key, err := parseKey(s)
		if err != nil {
			return err
		}
		cfg.Key = key
		return nil
	})
	fs.IntVar(&cfg.Count, "count", cfg.Count, "number of values to print")
	fs.IntVar(&cfg.Skip, "skip", cfg.Skip, "number of values to discard first")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format (dec, hex)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func parseKey(s string) ([]uint32, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	key := make([]uint32, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 0, 32)
		if err != nil {
			return nil, fmt.Errorf("key word %q: %w", p, err)
		}
		key = append(key, uint32(v))
	}
	return key, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	switch c.Generator {
	case GeneratorMT, GeneratorLCG:
	default:
		return fmt.Errorf("unknown generator %q", c.Generator)
	}
	switch c.Format {
	case FormatDec, FormatHex:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.Count <= 0 {
		return errors.New("count must be greater than zero")
	}
	if c.Skip < 0 {
		return errors.New("skip must not be negative")
	}
	if c.Generator == GeneratorLCG && len(c.Key) > 0 {
		return errors.New("key is only supported by the mt generator")
	}
	return nil
}

// Run draws the configured values and writes them to out, one per line.
func Run(cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output is required")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	next := newSource(cfg)
	for i := 0; i < cfg.Skip; i++ {
		next()
	}
	for i := 0; i < cfg.Count; i++ {
		v := next()
		var err error
		if cfg.Format == FormatHex {
			_, err = fmt.Fprintf(out, "0x%08X\n", v)
		} else {
			_, err = fmt.Fprintf(out, "%d\n", v)
		}
		if err != nil {
			return fmt.Errorf("write value %d: %w", i, err)
		}
	}
	return nil
}

// newSource returns a draw function for the configured generator. LCG
// values are printed as their unsigned bit pattern, which is identical to
// the signed value for every non-negative result.
func newSource(cfg Config) func() uint32 {
	if cfg.Generator == GeneratorLCG {
		seed := int32(cfg.Seed)
		return func() uint32 { return uint32(mtrand.Rand31(&seed)) }
	}

	s := &mtrand.TwisterState{}
	if len(cfg.Key) > 0 {
		s.SeedArray(cfg.Key)
	} else {
		s.Seed(cfg.Seed)
	}
	return s.Uint32
}
