package hilberttesting

import (
	"fmt"
	"slices"
)

// GridSize returns 2^(m*n). The caller keeps m*n < 64.
func GridSize(m, n uint) uint64 {
	return uint64(1) << (m * n)
}

// ForEachGridPoint calls fn for every point of the grid [0, 2^m)^n, in
// lexicographic order with the last coordinate varying fastest. Iteration
// stops early if fn returns false. fn may retain x.
func ForEachGridPoint(m, n uint, fn func(x []uint64) bool) {
	side := coordinateMask(m)
	x := make([]uint64, n)
	for {
		if !fn(slices.Clone(x)) {
			return
		}
		i := int(n) - 1
		for ; i >= 0; i-- {
			if x[i] < side {
				x[i]++
				break
			}
			x[i] = 0
		}
		if i < 0 {
			return
		}
	}
}

// StepDiff reports how many coordinates differ between a and b and the
// largest absolute difference of any one coordinate. Adjacent Hilbert curve
// points give (1, 1).
func StepDiff(a, b []uint64) (changed int, largest uint64) {
	for i := range a {
		var diff uint64
		if a[i] > b[i] {
			diff = a[i] - b[i]
		} else {
			diff = b[i] - a[i]
		}
		if diff == 0 {
			continue
		}
		changed++
		largest = max(largest, diff)
	}
	return changed, largest
}

// PointKey renders x so it can be used as a map key
func PointKey(x []uint64) string {
	return fmt.Sprint(x)
}
