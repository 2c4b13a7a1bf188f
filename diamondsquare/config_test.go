package diamondsquare_test

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heightmap/diamondsquare"
	"github.com/katalvlaran/heightmap/grid"
	"github.com/katalvlaran/heightmap/rng"
)

// TestConfigure_Conversions accepts the numeric kinds a decoded config
// file or a caller may hand over.
func TestConfigure_Conversions(t *testing.T) {
	g := diamondsquare.New(quiet)
	require.NoError(t, g.Configure(map[string]any{
		"SIZE":       4.9,
		"min":        "-10",
		"max":        json.Number("10"),
		"roughness":  float32(1.5),
		"smoothness": uint8(3),
		"seed":       42,
		"prng":       rng.Mulberry32,
	}))

	s := g.Settings()
	require.Equal(t, 4, s.Size)
	require.Equal(t, -10, s.Min)
	require.Equal(t, 10, s.Max)
	require.Equal(t, 0, s.Mid)
	require.Equal(t, 1.5, s.Roughness)
	require.Equal(t, 3, s.Smoothness)
	require.Equal(t, "42", s.Seed)
	require.True(t, s.Reproducible)
}

// TestConfigure_MatchesOptions: the mapping form and the option form give
// the same run.
func TestConfigure_MatchesOptions(t *testing.T) {
	a := diamondsquare.New(quiet)
	require.NoError(t, a.Configure(map[string]any{
		"size": 4, "min": -20, "max": 20, "roughness": 3000, "smoothness": 1,
		"seed": "same", "prng": func(seed string) func() float64 { return rng.MathRand(seed) },
	}))
	require.NoError(t, a.CreateGrid())

	b := newAllocated(t,
		diamondsquare.WithSize(4),
		diamondsquare.WithRange(-20, 20),
		diamondsquare.WithRoughness(3000),
		diamondsquare.WithSmoothness(1),
		diamondsquare.WithSeed("same"),
		diamondsquare.WithPRNG(rng.MathRand),
	)
	if diff := cmp.Diff(mustMake(t, b).Values(), mustMake(t, a).Values()); diff != "" {
		t.Errorf("configure vs options (-options +configure):\n%s", diff)
	}
}

// TestConfigure_Errors classifies every rejection.
func TestConfigure_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   map[string]any
		want error
	}{
		{"size not numeric", map[string]any{"size": "big"}, diamondsquare.ErrTypeMismatch},
		{"size wrong kind", map[string]any{"size": []int{1}}, diamondsquare.ErrTypeMismatch},
		{"roughness NaN", map[string]any{"roughness": math.NaN()}, diamondsquare.ErrTypeMismatch},
		{"min Inf", map[string]any{"min": math.Inf(-1)}, diamondsquare.ErrTypeMismatch},
		{"seed float", map[string]any{"seed": 1.5}, diamondsquare.ErrTypeMismatch},
		{"seed true", map[string]any{"seed": true}, diamondsquare.ErrTypeMismatch},
		{"prng string", map[string]any{"prng": "mulberry"}, diamondsquare.ErrTypeMismatch},
		{"prng true", map[string]any{"prng": true}, diamondsquare.ErrTypeMismatch},
		{"size too big", map[string]any{"size": grid.MaxSizeFactor + 1}, diamondsquare.ErrInvalidSize},
		{"size unallocatable", map[string]any{"size": 30}, diamondsquare.ErrInvalidSize},
		{"size negative", map[string]any{"size": -1}, diamondsquare.ErrInvalidSize},
		{"min above max", map[string]any{"min": 10, "max": 5}, diamondsquare.ErrInvalidSetting},
		{"negative roughness", map[string]any{"roughness": -1}, diamondsquare.ErrInvalidSetting},
		{"negative smoothness", map[string]any{"smoothness": -2}, diamondsquare.ErrInvalidSetting},
		{"int overflow", map[string]any{"max": 1e12}, diamondsquare.ErrInvalidSetting},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := diamondsquare.New(quiet)
			require.ErrorIs(t, g.Configure(tc.in), tc.want)
		})
	}
}

// TestConfigure_Atomic leaves settings untouched when any key fails.
func TestConfigure_Atomic(t *testing.T) {
	g := diamondsquare.New(quiet, diamondsquare.WithPRNG(rng.MathRand), diamondsquare.WithSeed("keep"))
	before := g.Settings()

	err := g.Configure(map[string]any{"min": 5, "roughness": 10, "size": "oops"})
	require.ErrorIs(t, err, diamondsquare.ErrTypeMismatch)
	require.Equal(t, before, g.Settings())

	err = g.Configure(map[string]any{"min": 300})
	require.ErrorIs(t, err, diamondsquare.ErrInvalidSetting)
	require.Equal(t, before, g.Settings())
}

// TestConfigure_DisablePRNG covers nil and false for prng and seed.
func TestConfigure_DisablePRNG(t *testing.T) {
	for _, off := range []any{nil, false} {
		g := diamondsquare.New(quiet, diamondsquare.WithPRNG(rng.MathRand), diamondsquare.WithSeed("x"))
		require.True(t, g.Settings().Reproducible)

		require.NoError(t, g.Configure(map[string]any{"prng": off}))
		require.False(t, g.Settings().Reproducible)
		require.Empty(t, g.Settings().Seed)
	}

	g := diamondsquare.New(quiet, diamondsquare.WithPRNG(rng.MathRand), diamondsquare.WithSeed("x"))
	require.NoError(t, g.Configure(map[string]any{"seed": nil}))
	require.NotEmpty(t, g.Settings().Seed, "absent seed is generated")
	require.NotEqual(t, "x", g.Settings().Seed)
}

// TestConfigure_UnknownKey logs and otherwise ignores unknown keys.
func TestConfigure_UnknownKey(t *testing.T) {
	var buf bytes.Buffer
	g := diamondsquare.New(diamondsquare.WithLogger(&buf), diamondsquare.WithPRNG(rng.MathRand))
	require.NoError(t, g.Configure(map[string]any{"colour": "blue", "size": 2}))
	require.Contains(t, buf.String(), `unknown setting "colour" ignored`)
	require.Equal(t, 2, g.Settings().Size)
}

// TestOptions_Panics checks that option constructors reject nonsense.
func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { diamondsquare.WithSize(-1) })
	require.Panics(t, func() { diamondsquare.WithSize(grid.MaxSizeFactor + 1) })
	require.NotPanics(t, func() { diamondsquare.WithSize(grid.MaxSizeFactor) })
	require.Panics(t, func() { diamondsquare.WithRange(2, 1) })
	require.Panics(t, func() { diamondsquare.WithRoughness(-0.1) })
	require.Panics(t, func() { diamondsquare.WithRoughness(math.Inf(1)) })
	require.Panics(t, func() { diamondsquare.WithSmoothness(-1) })
	require.Panics(t, func() { diamondsquare.WithPRNG(nil) })
	require.Panics(t, func() { diamondsquare.WithDiamondPolicy(diamondsquare.DiamondPolicy(7)) })
	require.Panics(t, func() { diamondsquare.WithSmoothMode(diamondsquare.SmoothMode(7)) })
	require.NotPanics(t, func() { diamondsquare.WithRange(3, 3) })
}

// TestDefaultSettings pins the documented defaults.
func TestDefaultSettings(t *testing.T) {
	s := diamondsquare.New(quiet).Settings()
	require.Equal(t, diamondsquare.DefaultSize, s.Size)
	require.Equal(t, 0, s.Min)
	require.Equal(t, 255, s.Max)
	require.Equal(t, 2500.0, s.Roughness)
	require.Equal(t, 2, s.Smoothness)
	require.Equal(t, diamondsquare.DiamondSymmetric, s.Diamond)
	require.Equal(t, diamondsquare.SmoothSnapshot, s.Smoothing)
	require.Zero(t, s.Dimension, "no grid yet")
	require.Equal(t, "symmetric", s.Diamond.String())
	require.Equal(t, "in-place", diamondsquare.SmoothInPlace.String())
}
