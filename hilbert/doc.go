package hilbert

/*

# Hilbert curve distance <-> point codec

This package maps between a distance along an n dimensional Hilbert curve of
order m and the grid point at that distance. For a given (m, n) the mapping is
a bijection between the integers [0, 2^(m*n)) and the grid [0, 2^m)^n.

It mirrors the `go-merklelog/mmr` style:

- small, composable functions
- index and bit arithmetic only, no tables
- a burden of knowledge on the caller for the primitives

## Approach

The construction is the skew/rotate method described by John Skilling in
"Programming the Hilbert curve" (AIP Conf. Proc. 707, 2004). A distance is
treated as an m x n matrix of bits and three transforms are composed:

	point:  Transpose -> GrayDecode -> ExcessWorkForward
	dist:   ExcessWorkInverse -> GrayEncode -> Untranspose

Note that dist is *not* simply the stage list of point reversed with each
stage individually inverted. GrayEncode is not the function inverse of
GrayDecode. The two directions only invert each other as a whole, so none of
the stages should be changed in isolation without re-checking the round trip
over the full grid (see hilbert_test.go).

## Transposed form

The distance is rendered as exactly m*n bits, most significant first, and
those bits are dealt round robin across the n elements of the "transposed"
vector. Element 0 receives the first bit, element 1 the second and so on. So
bit k of element i is bit

	k*n + (n-1-i)

of the distance. For m=3, n=2 and d = 0b011011 (27)

	d bits (msb first):  0 1 1 0 1 1
	element 0:           0   1   1    = 3
	element 1:             1   0   1  = 5

## Gray stage

GrayDecode applies the reflected binary Gray code across the vector rather
than within a single integer. Each element is xor'd with its predecessor and
element 0 picks up the shifted last element. GrayEncode first forms the prefix
xor chain, then derives a correction mask from the set bits of the last
element and xors it into every element.

## Excess work

A Z-order (morton) walk of the transposed, gray coded index would already
visit every grid cell. What makes the curve a Hilbert curve is that each sub
cube is rotated and reflected so that consecutive cells are adjacent. The
excess work transform applies those rotations. For each bit plane q and each
element i it either exchanges the bits below q between element 0 and element
i (when bit q of element i is clear) or inverts the bits below q of element 0
(when it is set).

The forward direction (distance to point) visits bit planes from low to high
and elements from last to first. The inverse direction visits bit planes from
high to low, stopping before the lowest plane, and elements from first to
last. At q == 1 the mask q-1 is empty, so the lowest plane is a no-op and the
inverse can omit it.

## Safety rails

The primitives (Transpose, GrayDecode, GrayEncode, ExcessWorkAtom,
ExcessWorkForward, ExcessWorkInverse and friends) do not check anything. An
order that is too small for the values given silently yields results that do
not round trip, and Transpose discards distance bits at or above m*n.

The facade (Point, Dist, Point64, Dist64) and the Curve type check every
precondition before any transform runs and return one of the Err* sentinels,
wrapped with the offending values. Nothing is mutated on failure. Every stage
returns a fresh slice, so callers may retain and reuse their inputs.

All functions are stateless and safe for concurrent use. A Curve is immutable
once built.
*/
