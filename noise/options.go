package noise

import (
	"math/rand/v2"

	"github.com/YuminosukeSato/noisegen/pkg/log"
)

// Option configures a Source or an Injector.
type Option func(*options)

type options struct {
	src      rand.Source
	seed     *uint64
	logger   log.Logger
	progress func(done, total int)
}

func newOptions(opts []Option) *options {
	o := &options{logger: log.NewNopLogger()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// source returns the configured random source, building one when none was given.
func (o *options) source() rand.Source {
	switch {
	case o.src != nil:
		return o.src
	case o.seed != nil:
		return rand.NewPCG(*o.seed, *o.seed)
	default:
		return rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
}

// WithSeed makes sampling deterministic: two sources built with the same seed
// and variances produce identical noise sequences.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithRandSource uses src for all draws. It takes precedence over WithSeed.
func WithRandSource(src rand.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithLogger sets the logger used by the Injector.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithProgress registers fn to be called after each row receives its noise.
func WithProgress(fn func(done, total int)) Option {
	return func(o *options) {
		o.progress = fn
	}
}
