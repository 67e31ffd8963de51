package samples

import (
	"fmt"
	"math/rand"
)

// Default generator knobs.
const (
	DefaultSeed      int64 = 42
	DefaultMinWeight       = 1
	DefaultMaxWeight       = 20
)

// IDFn maps a zero-based vertex index to its ID.
type IDFn func(idx int) string

// Option customizes a generator.
type Option func(*config)

type config struct {
	rng  *rand.Rand
	idFn IDFn
	minW int
	maxW int
}

func newConfig(opts ...Option) config {
	cfg := config{
		rng:  rand.New(rand.NewSource(DefaultSeed)),
		idFn: ColumnID,
		minW: DefaultMinWeight,
		maxW: DefaultMaxWeight,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws an integer weight in [minW, maxW].
func (c config) weight() float64 {
	return float64(c.minW + c.rng.Intn(c.maxW-c.minW+1))
}

// WithSeed reseeds the generator RNG.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses rng directly. Panics if rng is nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("WithRand: rng must be non-nil")
	}

	return func(c *config) { c.rng = rng }
}

// WithWeightRange sets the inclusive integer weight range.
// Panics unless 1 <= min <= max.
func WithWeightRange(min, max int) Option {
	if min < 1 || max < min {
		panic(fmt.Sprintf("WithWeightRange: require 1 <= min <= max, got min=%d, max=%d", min, max))
	}

	return func(c *config) { c.minW, c.maxW = min, max }
}

// WithIDScheme overrides vertex naming. Panics if fn is nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("WithIDScheme: fn must be non-nil")
	}

	return func(c *config) { c.idFn = fn }
}

// ColumnID returns the Excel-style column name for idx: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ColumnID(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ColumnID: idx must be >= 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// NumberedID returns prefix + decimal index, e.g. "N0", "N1".
func NumberedID(prefix string) IDFn {
	return func(idx int) string { return fmt.Sprintf("%s%d", prefix, idx) }
}
