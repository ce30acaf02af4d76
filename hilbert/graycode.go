package hilbert

import "slices"

// Gray converts a linear binary number to its binary reflected gray code
func Gray(v uint64) uint64 {
	return v ^ (v >> 1)
}

// FromGray converts a binary reflected gray code to a linear binary number
func FromGray(g uint64) uint64 {
	for shift := 32; shift > 0; shift >>= 1 {
		g ^= g >> shift
	}
	return g
}

// GrayDecode applies the gray code across the vector x. Each element is xor'd
// with its predecessor, and element 0 with the last element shifted down by
// one. x is not modified.
//
// For a single element this is Gray(x[0]).
func GrayDecode(x []uint64) []uint64 {
	y := slices.Clone(x)
	n := len(y)
	if n == 0 {
		return y
	}

	t := y[n-1] >> 1
	for i := n - 1; i > 0; i-- {
		y[i] ^= y[i-1]
	}
	y[0] ^= t
	return y
}

// GrayEncode undoes the gray coding applied by the distance to point mapping,
// once the excess work has been inverted. It is not the function inverse of
// GrayDecode, the pairing only holds through the whole of Point and Dist.
//
// An order of 0 means the order is taken to be MaxBitLength(x). x is not
// modified.
//
// For a single element and an adequate order this is FromGray(x[0]).
func GrayEncode(x []uint64, m uint) []uint64 {
	if m == 0 {
		m = MaxBitLength(x)
	}
	y := grayEncodePrefix(x)
	return grayEncodeApply(y, grayEncodeMask(y, m))
}

// grayEncodePrefix forms the running xor of x
func grayEncodePrefix(x []uint64) []uint64 {
	y := slices.Clone(x)
	for i := 1; i < len(y); i++ {
		y[i] ^= y[i-1]
	}
	return y
}

// grayEncodeMask accumulates q-1 for every bit q > 1 below 1<<m that is set
// in the last element of the prefix xor'd vector.
func grayEncodeMask(x []uint64, m uint) uint64 {
	n := len(x)
	if n == 0 || m < 2 {
		return 0
	}

	var t uint64
	for q := uint64(1) << (m - 1); q > 1; q >>= 1 {
		if x[n-1]&q != 0 {
			t ^= q - 1
		}
	}
	return t
}

func grayEncodeApply(x []uint64, t uint64) []uint64 {
	y := slices.Clone(x)
	for i := range y {
		y[i] ^= t
	}
	return y
}
