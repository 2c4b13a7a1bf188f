package diamondsquare_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heightmap/diamondsquare"
	"github.com/katalvlaran/heightmap/grid"
)

// quiet silences diagnostics in tests that do not inspect them.
var quiet = diamondsquare.WithLogger(nil)

// newAllocated builds a quiet generator and allocates its grid.
func newAllocated(t *testing.T, opts ...diamondsquare.Option) *diamondsquare.Generator {
	t.Helper()
	g := diamondsquare.New(append([]diamondsquare.Option{quiet}, opts...)...)
	require.NoError(t, g.CreateGrid())
	return g
}

// mustMake runs Make and fails the test on error.
func mustMake(t *testing.T, g *diamondsquare.Generator) grid.View {
	t.Helper()
	v, err := g.Make()
	require.NoError(t, err)
	require.NotNil(t, v)
	return v
}

// at reads a committed cell.
func at(t *testing.T, v grid.View, x, y int) float64 {
	t.Helper()
	val, ok, err := v.Get(x, y)
	require.NoError(t, err)
	require.True(t, ok, "cell (%d,%d) unset", x, y)
	return val
}

// pinnedCorners is a 5×5 fixture whose corners are fixed so the fill does
// not depend on the random stream once roughness is 0.
var pinnedCorners = map[string]float64{"nw": 0, "ne": 40, "se": 100, "sw": 60}

// flatCornersGenerator returns a size-2 generator with pinnedCorners, no
// displacement and no smoothing.
func flatCornersGenerator(t *testing.T, opts ...diamondsquare.Option) *diamondsquare.Generator {
	t.Helper()
	base := []diamondsquare.Option{
		diamondsquare.WithSize(2),
		diamondsquare.WithRange(0, 100),
		diamondsquare.WithRoughness(0),
		diamondsquare.WithSmoothness(0),
	}
	g := newAllocated(t, append(base, opts...)...)
	require.NoError(t, g.SetNamedPoints(pinnedCorners, true))
	return g
}

// unsetCells counts cells without a value.
func unsetCells(t *testing.T, v grid.View) int {
	t.Helper()
	sum, err := grid.Summarize(v)
	require.NoError(t, err)
	return sum.Unset
}

func nan() float64 { return math.NaN() }
