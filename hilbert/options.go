package hilbert

import "github.com/datatrails/go-datatrails-common/logger"

// Options configures a Curve
type Options struct {
	dimensions uint

	// When nil, the curve does not log
	log logger.Logger
}

// NewOptions creates a new Options object with the defaults and then applies
// opts in order.
func NewOptions(opts ...Option) Options {
	options := Options{dimensions: DefaultDimensions}
	for _, o := range opts {
		o(&options)
	}
	return options
}

type Option func(*Options)

// WithDimensions sets the number of dimensions, the default is 2
func WithDimensions(n uint) Option {
	return func(opts *Options) {
		opts.dimensions = n
	}
}

// WithLogger causes rejected conversions to be logged at debug level
func WithLogger(log logger.Logger) Option {
	return func(opts *Options) {
		opts.log = log
	}
}
