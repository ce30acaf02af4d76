package hilbert

import (
	"fmt"
	"math/big"
)

// CheckOrder validates the order m (bits per dimension)
func CheckOrder(m uint) error {
	if m == 0 || m > MaxOrder {
		return fmt.Errorf("%w: m=%d", ErrInvalidOrder, m)
	}
	return nil
}

// CheckDimensions validates the number of dimensions n
func CheckDimensions(n uint) error {
	if n == 0 {
		return fmt.Errorf("%w: n=%d", ErrInvalidDimension, n)
	}
	return nil
}

// CheckPoint validates that every coordinate of x fits in m bits.
//
// The caller is responsible for ensuring:
//   - m has been checked with CheckOrder
//   - len(x) > 0, CheckDimensions(uint(len(x))) can be used for that
func CheckPoint(x []uint64, m uint) error {
	for i, v := range x {
		if BitLength(v) > m {
			return fmt.Errorf("%w: x[%d]=%d, m=%d", ErrPointOutOfRange, i, v, m)
		}
	}
	return nil
}

// CheckDistance validates that d is in [0, 2^(m*n))
func CheckDistance(d *big.Int, m, n uint) error {
	if d == nil {
		return fmt.Errorf("%w: nil distance", ErrDistanceOutOfRange)
	}
	if d.Sign() < 0 || uint(d.BitLen()) > m*n {
		return fmt.Errorf("%w: d=%s, m=%d, n=%d", ErrDistanceOutOfRange, d.String(), m, n)
	}
	return nil
}

// CheckDistance64 validates that the curve's distances fit in a uint64 and
// that d is in [0, 2^(m*n))
func CheckDistance64(d uint64, m, n uint) error {
	if err := CheckWidth64(m, n); err != nil {
		return err
	}
	if BitLength(d) > m*n {
		return fmt.Errorf("%w: d=%d, m=%d, n=%d", ErrDistanceOutOfRange, d, m, n)
	}
	return nil
}

// CheckWidth64 validates that every distance of the curve fits in a uint64
func CheckWidth64(m, n uint) error {
	if m*n > 64 {
		return fmt.Errorf("%w: m=%d, n=%d", ErrDistanceWidth, m, n)
	}
	return nil
}
