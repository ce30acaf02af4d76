package hilbert

import "slices"

// ExcessWorkAtom applies the exchange/invert step for the bit plane q (a
// single set bit) to element xi and element 0, returning the updated (xi, x0).
//
// If bit q of xi is clear, the bits below q are exchanged between x0 and xi.
// Otherwise the bits below q of x0 are inverted and xi is unchanged.
func ExcessWorkAtom(q, xi, x0 uint64) (uint64, uint64) {
	p := q - 1
	if xi&q == 0 {
		t := (x0 ^ xi) & p
		return xi ^ t, x0 ^ t
	}
	return xi, x0 ^ p
}

// ExcessWorkForward rotates and reflects the gray decoded transpose into the
// grid point (the distance to point direction). Bit planes are visited low to
// high and elements last to first.
//
// An order of 0 means MaxBitLength(x). x is not modified.
func ExcessWorkForward(x []uint64, m uint) []uint64 {
	y := slices.Clone(x)
	if m == 0 {
		m = MaxBitLength(y)
	}

	for k := uint(0); k < m; k++ {
		q := uint64(1) << k
		for i := len(y) - 1; i >= 0; i-- {
			// when i == 0 both results target y[0], the x0 result is assigned last.
			y[i], y[0] = ExcessWorkAtom(q, y[i], y[0])
		}
	}
	return y
}

// ExcessWorkInverse undoes ExcessWorkForward (the point to distance
// direction). Bit planes are visited high to low and elements first to last.
// The q == 1 plane is skipped as its mask is empty.
//
// An order of 0 means MaxBitLength(x). x is not modified.
func ExcessWorkInverse(x []uint64, m uint) []uint64 {
	y := slices.Clone(x)
	if m == 0 {
		m = MaxBitLength(y)
	}

	for k := int(m) - 1; k > 0; k-- {
		q := uint64(1) << k
		for i := range y {
			y[i], y[0] = ExcessWorkAtom(q, y[i], y[0])
		}
	}
	return y
}
