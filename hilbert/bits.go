package hilbert

import "math/bits"

func BitLength(num uint64) uint { return uint(bits.Len64(num)) }

// MaxBitLength returns the largest BitLength of any element of x. This is the
// order the transforms assume when they are given an order of zero.
func MaxBitLength(x []uint64) uint {
	var m uint
	for _, v := range x {
		if l := BitLength(v); l > m {
			m = l
		}
	}
	return m
}

// LowMask returns a mask with the m least significant bits set
func LowMask(m uint) uint64 {
	if m >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<m - 1
}

// transposeBit returns the distance bit that holds bit k of transposed
// element i for a curve of n dimensions.
func transposeBit(k, i, n uint) uint {
	return k*n + (n - 1 - i)
}
