package hilbert

import (
	"context"
	"math/big"
	"testing"

	"github.com/forestrie/go-hilbert/hilberttesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestNewCurve(t *testing.T) {
	tc := hilberttesting.NewTestContext(t, hilberttesting.TestConfig{TestLabelPrefix: "TestNewCurve", LogLevel: "NOOP"})

	type args struct {
		order uint
		opts  []Option
	}
	tests := []struct {
		name          string
		args          args
		wantErr       error
		dimensions    uint
		maxDistance   string
		maxCoordinate uint64
		fits64        bool
	}{
		{"defaults to two dimensions", args{2, nil}, nil, 2, "15", 3, true},
		{"three dimensions", args{32, []Option{WithDimensions(3)}}, nil, 3, "79228162514264337593543950335", 0xffffffff, false},
		{"with logger", args{8, []Option{WithLogger(tc.GetLog()), WithDimensions(8)}}, nil, 8, "18446744073709551615", 255, true},
		{"order 64 one dimension", args{64, []Option{WithDimensions(1)}}, nil, 1, "18446744073709551615", ^uint64(0), true},
		{"order 0", args{0, nil}, ErrInvalidOrder, 0, "", 0, false},
		{"order 65", args{65, nil}, ErrInvalidOrder, 0, "", 0, false},
		{"no dimensions", args{4, []Option{WithDimensions(0)}}, ErrInvalidDimension, 0, "", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCurve(tt.args.order, tt.args.opts...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.args.order, c.Order())
			assert.Equal(t, tt.dimensions, c.Dimensions())
			assert.Equal(t, tt.maxDistance, c.MaxDistance().String())
			assert.Equal(t, tt.maxCoordinate, c.MaxCoordinate())
			assert.Equal(t, tt.fits64, c.Fits64())
		})
	}
}

func TestNewOptions(t *testing.T) {
	o := NewOptions()
	assert.Equal(t, uint(DefaultDimensions), o.dimensions)
	assert.Nil(t, o.log)

	// later options win
	o = NewOptions(WithDimensions(3), WithDimensions(5))
	assert.Equal(t, uint(5), o.dimensions)
}

func TestCurveConversions(t *testing.T) {
	tc := hilberttesting.NewTestContext(t, hilberttesting.TestConfig{TestLabelPrefix: "TestCurveConversions", LogLevel: "NOOP"})

	c, err := NewCurve(2, WithLogger(tc.GetLog()))
	require.NoError(t, err)

	x, err := c.Point(big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 0}, x)

	x, err = c.Point64(15)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 0}, x)

	d, err := c.Dist([]uint64{0, 3})
	require.NoError(t, err)
	assert.Equal(t, int64(5), d.Int64())

	d64, err := c.Dist64([]uint64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), d64)

	// the maximum distance is the last point
	x, err = c.Point(c.MaxDistance())
	require.NoError(t, err)
	assert.Equal(t, []uint64{c.MaxCoordinate(), 0}, x)
}

func TestCurveErrors(t *testing.T) {
	tc := hilberttesting.NewTestContext(t, hilberttesting.TestConfig{TestLabelPrefix: "TestCurveErrors", LogLevel: "NOOP"})

	c, err := NewCurve(2, WithLogger(tc.GetLog()))
	require.NoError(t, err)

	_, err = c.Point(big.NewInt(16))
	assert.ErrorIs(t, err, ErrDistanceOutOfRange)
	_, err = c.Point(nil)
	assert.ErrorIs(t, err, ErrDistanceOutOfRange)
	_, err = c.Point64(16)
	assert.ErrorIs(t, err, ErrDistanceOutOfRange)

	_, err = c.Dist([]uint64{1})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = c.Dist([]uint64{1, 2, 3})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = c.Dist64([]uint64{})
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = c.Dist([]uint64{1, 4})
	assert.ErrorIs(t, err, ErrPointOutOfRange)
	_, err = c.Dist64([]uint64{4, 1})
	assert.ErrorIs(t, err, ErrPointOutOfRange)

	// a curve without a logger rejects the same way
	quiet, err := NewCurve(32, WithDimensions(3))
	require.NoError(t, err)
	_, err = quiet.Point64(0)
	assert.ErrorIs(t, err, ErrDistanceWidth)
	_, err = quiet.Dist64([]uint64{0, 0, 0})
	assert.ErrorIs(t, err, ErrDistanceWidth)
}

// TestCurveConcurrentUse shares one curve between many goroutines and checks
// they agree with the sequential results.
func TestCurveConcurrentUse(t *testing.T) {
	c, err := NewCurve(16, WithDimensions(3))
	require.NoError(t, err)

	g := hilberttesting.NewTestGenerator(t, 1698342521, hilberttesting.TestGeneratorConfig{Order: 16, Dimensions: 3})
	distances := g.Distances(512)

	want := make([][]uint64, len(distances))
	for i, d := range distances {
		want[i], err = c.Point(d)
		require.NoError(t, err)
	}

	got := make([][]uint64, len(distances))
	eg, _ := errgroup.WithContext(context.Background())
	eg.SetLimit(16)
	for i, d := range distances {
		i, d := i, d
		eg.Go(func() error {
			x, err := c.Point(d)
			if err != nil {
				return err
			}
			back, err := c.Dist(x)
			if err != nil {
				return err
			}
			if back.Cmp(d) != 0 {
				return assert.AnError
			}
			got[i] = x
			return nil
		})
	}
	require.NoError(t, eg.Wait())
	assert.Equal(t, want, got)
}
