package hilbert

import "errors"

const (
	// MaxOrder is the largest supported order. Coordinates are uint64.
	MaxOrder = 64

	// DefaultDimensions is the number of dimensions a Curve has unless
	// WithDimensions says otherwise.
	DefaultDimensions = 2
)

var (
	ErrInvalidOrder       = errors.New("hilbert: order must be in the range [1, 64]")
	ErrInvalidDimension   = errors.New("hilbert: dimensions must be positive")
	ErrPointOutOfRange    = errors.New("hilbert: point coordinate out of range for order")
	ErrDistanceOutOfRange = errors.New("hilbert: distance out of range for curve")

	// ErrDistanceWidth is returned by the fixed width api when m*n > 64
	ErrDistanceWidth     = errors.New("hilbert: distance does not fit in 64 bits")
	ErrDimensionMismatch = errors.New("hilbert: point dimensions do not match curve")
)
