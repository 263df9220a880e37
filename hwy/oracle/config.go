package oracle

import "math/rand/v2"

// Default run parameters.
const (
	DefaultSeed       = 1
	DefaultIterations = 200
)

// Config controls a randomized run.
type Config struct {
	// Seed makes runs reproducible. Each suite derives its own stream from it.
	Seed uint64
	// Iterations is the number of random inputs per suite and lane type.
	Iterations int
	// Suites selects suites by name. Empty means all of them.
	Suites []string
}

// Option configures a Config.
type Option func(*Config)

// WithSeed sets the random seed.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// WithIterations sets the iterations per suite. Values below 1 keep the
// default.
func WithIterations(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.Iterations = n
		}
	}
}

// WithSuites restricts the run to the named suites.
func WithSuites(names ...string) Option {
	return func(c *Config) {
		c.Suites = append(c.Suites, names...)
	}
}

// NewConfig returns a Config with defaults overridden by opts.
func NewConfig(opts ...Option) Config {
	c := Config{
		Seed:       DefaultSeed,
		Iterations: DefaultIterations,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewRNG returns a deterministic generator for one stream of a seed.
func NewRNG(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}
