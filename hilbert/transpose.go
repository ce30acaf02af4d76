package hilbert

import "math/big"

// Transpose deals the m*n least significant bits of d, most significant
// first, round robin across n elements of m bits each.
//
// Bits of d at or above m*n are ignored. The caller is responsible for
// ensuring d is non negative and fits, CheckDistance can be used for that.
func Transpose(d *big.Int, m, n uint) []uint64 {
	x := make([]uint64, n)
	for i := uint(0); i < n; i++ {
		var v uint64
		for k := uint(0); k < m; k++ {
			v |= uint64(d.Bit(int(transposeBit(k, i, n)))) << k
		}
		x[i] = v
	}
	return x
}

// Untranspose is the inverse of Transpose. n is taken from len(x) and only
// the low m bits of each element contribute.
func Untranspose(x []uint64, m uint) *big.Int {
	n := uint(len(x))
	d := new(big.Int)
	for i, v := range x {
		for k := uint(0); k < m; k++ {
			if (v>>k)&1 == 0 {
				continue
			}
			d.SetBit(d, int(transposeBit(k, uint(i), n)), 1)
		}
	}
	return d
}

// Transpose64 is Transpose for distances that fit in a uint64. The caller
// guarantees m*n <= 64.
func Transpose64(d uint64, m, n uint) []uint64 {
	x := make([]uint64, n)
	for i := uint(0); i < n; i++ {
		var v uint64
		for k := uint(0); k < m; k++ {
			v |= ((d >> transposeBit(k, i, n)) & 1) << k
		}
		x[i] = v
	}
	return x
}

// Untranspose64 is Untranspose for distances that fit in a uint64
func Untranspose64(x []uint64, m uint) uint64 {
	n := uint(len(x))
	var d uint64
	for i, v := range x {
		for k := uint(0); k < m; k++ {
			d |= ((v >> k) & 1) << transposeBit(k, uint(i), n)
		}
	}
	return d
}
