package voronoi1d

import "math/rand"

// RNG is the source of uniform draws used by InitRandom. *rand.Rand satisfies
// it, as does the process-wide default.
type RNG interface {
	// Float64 returns a uniform draw from [0, 1).
	Float64() float64
}

// processRNG draws from the process-wide math/rand source.
type processRNG struct{}

func (processRNG) Float64() float64 { return rand.Float64() }

type options struct {
	lloydIterations int
	initMethod      InitMethod
	rng             RNG
	logger          *Logger
}

func defaultOptions() options {
	return options{
		lloydIterations: 0,
		initMethod:      InitRandom,
		rng:             processRNG{},
		logger:          NoopLogger(),
	}
}

// Option configures Partition behavior.
type Option func(*options)

// WithLloydIterations sets the relaxation budget: the maximum number of
// (assign, recenter) passes. Zero skips relaxation entirely; negative values
// behave like zero. Relaxation may stop before the budget when a pass moves
// no seed.
func WithLloydIterations(n int) Option {
	return func(o *options) {
		o.lloydIterations = n
	}
}

// WithInitMethod selects the seed initialization strategy.
// The default is InitRandom.
func WithInitMethod(m InitMethod) Option {
	return func(o *options) {
		o.initMethod = m
	}
}

// WithRNG injects the random source used by InitRandom, e.g. a seeded
// *rand.Rand for reproducible runs. If rng is nil, the process-wide source
// is used. InitQuantile never draws from it.
func WithRNG(rng RNG) Option {
	return func(o *options) {
		if rng == nil {
			rng = processRNG{}
		}
		o.rng = rng
	}
}

// WithLogger attaches a logger for per-call diagnostics.
// If logger is nil, logging stays disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}
