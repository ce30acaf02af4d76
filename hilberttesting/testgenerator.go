package hilberttesting

import (
	"math/big"
	"math/rand"
	"testing"
)

type TestGeneratorConfig struct {
	Order      uint
	Dimensions uint
}

// TestGenerator produces random, in range, distances and points for a single
// curve. It is not safe for concurrent use.
type TestGenerator struct {
	T   *testing.T
	cfg TestGeneratorConfig
	rng *rand.Rand

	// 2^(m*n), the number of points on the curve
	size *big.Int
}

func NewTestGenerator(t *testing.T, seed int64, cfg TestGeneratorConfig) *TestGenerator {
	if cfg.Order == 0 || cfg.Order > 64 || cfg.Dimensions == 0 {
		t.Fatalf("invalid generator config: %+v", cfg)
	}
	return &TestGenerator{
		T:    t,
		cfg:  cfg,
		rng:  rand.New(rand.NewSource(seed)),
		size: new(big.Int).Lsh(big.NewInt(1), cfg.Order*cfg.Dimensions),
	}
}

// Distance returns a distance uniformly chosen from [0, 2^(m*n))
func (g *TestGenerator) Distance() *big.Int {
	return new(big.Int).Rand(g.rng, g.size)
}

// Point returns a point with each coordinate uniformly chosen from [0, 2^m)
func (g *TestGenerator) Point() []uint64 {
	x := make([]uint64, g.cfg.Dimensions)
	for i := range x {
		x[i] = g.rng.Uint64() & coordinateMask(g.cfg.Order)
	}
	return x
}

func (g *TestGenerator) Distances(count int) []*big.Int {
	ds := make([]*big.Int, count)
	for i := range ds {
		ds[i] = g.Distance()
	}
	return ds
}

func (g *TestGenerator) Points(count int) [][]uint64 {
	xs := make([][]uint64, count)
	for i := range xs {
		xs[i] = g.Point()
	}
	return xs
}

func coordinateMask(m uint) uint64 {
	if m >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<m - 1
}
