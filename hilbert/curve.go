package hilbert

import (
	"fmt"
	"math/big"

	"github.com/datatrails/go-datatrails-common/logger"
)

// Curve is a Hilbert curve of a fixed order and number of dimensions. It is
// immutable and safe for concurrent use.
type Curve struct {
	order      uint
	dimensions uint
	log        logger.Logger
}

// NewCurve creates a curve of the given order (bits per dimension). The curve
// has DefaultDimensions unless WithDimensions is provided.
func NewCurve(order uint, opts ...Option) (*Curve, error) {
	options := NewOptions(opts...)
	if err := CheckOrder(order); err != nil {
		return nil, err
	}
	if err := CheckDimensions(options.dimensions); err != nil {
		return nil, err
	}
	return &Curve{
		order:      order,
		dimensions: options.dimensions,
		log:        options.log,
	}, nil
}

func (c *Curve) Order() uint      { return c.order }
func (c *Curve) Dimensions() uint { return c.dimensions }

// MaxDistance returns the distance of the last point on the curve, 2^(m*n) - 1
func (c *Curve) MaxDistance() *big.Int {
	d := new(big.Int).Lsh(big.NewInt(1), c.order*c.dimensions)
	return d.Sub(d, big.NewInt(1))
}

// MaxCoordinate returns the largest value any coordinate can take, 2^m - 1
func (c *Curve) MaxCoordinate() uint64 {
	return LowMask(c.order)
}

// Fits64 is true if every distance on the curve fits in a uint64, in which
// case Point64 and Dist64 may be used.
func (c *Curve) Fits64() bool {
	return CheckWidth64(c.order, c.dimensions) == nil
}

// Point returns the point at distance d
func (c *Curve) Point(d *big.Int) ([]uint64, error) {
	x, err := Point(d, c.order, c.dimensions)
	if err != nil {
		c.debugf("Point: %v", err)
		return nil, err
	}
	return x, nil
}

// Dist returns the distance to the point x. x must have exactly Dimensions()
// coordinates.
func (c *Curve) Dist(x []uint64) (*big.Int, error) {
	if err := c.checkDimensions(x); err != nil {
		c.debugf("Dist: %v", err)
		return nil, err
	}
	d, err := Dist(x, c.order)
	if err != nil {
		c.debugf("Dist: %v", err)
		return nil, err
	}
	return d, nil
}

// Point64 is Point for curves where Fits64 is true
func (c *Curve) Point64(d uint64) ([]uint64, error) {
	x, err := Point64(d, c.order, c.dimensions)
	if err != nil {
		c.debugf("Point64: %v", err)
		return nil, err
	}
	return x, nil
}

// Dist64 is Dist for curves where Fits64 is true
func (c *Curve) Dist64(x []uint64) (uint64, error) {
	if err := c.checkDimensions(x); err != nil {
		c.debugf("Dist64: %v", err)
		return 0, err
	}
	d, err := Dist64(x, c.order)
	if err != nil {
		c.debugf("Dist64: %v", err)
		return 0, err
	}
	return d, nil
}

func (c *Curve) checkDimensions(x []uint64) error {
	if uint(len(x)) != c.dimensions {
		return fmt.Errorf("%w: len(x)=%d, n=%d", ErrDimensionMismatch, len(x), c.dimensions)
	}
	return nil
}

func (c *Curve) debugf(format string, args ...any) {
	if c.log == nil {
		return
	}
	c.log.Debugf(format, args...)
}
