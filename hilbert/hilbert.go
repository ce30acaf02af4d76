package hilbert

import "math/big"

// Point returns the grid point at distance d along the curve of order m in n
// dimensions.
//
// The result always has n elements, each in [0, 2^m). d must be in
// [0, 2^(m*n)), otherwise ErrDistanceOutOfRange is returned.
func Point(d *big.Int, m, n uint) ([]uint64, error) {
	if err := CheckOrder(m); err != nil {
		return nil, err
	}
	if err := CheckDimensions(n); err != nil {
		return nil, err
	}
	if err := CheckDistance(d, m, n); err != nil {
		return nil, err
	}
	return pointFromTranspose(Transpose(d, m, n), m), nil
}

// Dist returns the distance along the curve of order m to the point x. The
// number of dimensions is len(x).
func Dist(x []uint64, m uint) (*big.Int, error) {
	if err := checkPointArgs(x, m); err != nil {
		return nil, err
	}
	return Untranspose(transposeFromPoint(x, m), m), nil
}

// Point64 is Point for curves whose distances fit in a uint64 (m*n <= 64).
// ErrDistanceWidth is returned for wider curves.
func Point64(d uint64, m, n uint) ([]uint64, error) {
	if err := CheckOrder(m); err != nil {
		return nil, err
	}
	if err := CheckDimensions(n); err != nil {
		return nil, err
	}
	if err := CheckDistance64(d, m, n); err != nil {
		return nil, err
	}
	return pointFromTranspose(Transpose64(d, m, n), m), nil
}

// Dist64 is Dist for curves whose distances fit in a uint64 (m*len(x) <= 64)
func Dist64(x []uint64, m uint) (uint64, error) {
	if err := checkPointArgs(x, m); err != nil {
		return 0, err
	}
	if err := CheckWidth64(m, uint(len(x))); err != nil {
		return 0, err
	}
	return Untranspose64(transposeFromPoint(x, m), m), nil
}

func checkPointArgs(x []uint64, m uint) error {
	if err := CheckOrder(m); err != nil {
		return err
	}
	if err := CheckDimensions(uint(len(x))); err != nil {
		return err
	}
	return CheckPoint(x, m)
}

// pointFromTranspose completes the distance to point mapping once the
// distance has been transposed.
func pointFromTranspose(x []uint64, m uint) []uint64 {
	return ExcessWorkForward(GrayDecode(x), m)
}

// transposeFromPoint produces the transposed distance for the point x. The
// gray stage must be given m explicitly, the max bit length of the
// intermediate vector is not always the order of the curve.
func transposeFromPoint(x []uint64, m uint) []uint64 {
	return GrayEncode(ExcessWorkInverse(x, m), m)
}
