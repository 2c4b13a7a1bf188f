// SPDX-License-Identifier: MIT
// Package: heightmap/diamondsquare
//
// options.go: functional options for New and Generator.SetSettings.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs; the
//     generator itself never panics. Use Configure for untrusted input, it
//     returns errors instead.
//   • Options apply in order, later ones win.

package diamondsquare

import (
	"io"
	"log"
	"math"

	"github.com/katalvlaran/heightmap/grid"
	"github.com/katalvlaran/heightmap/rng"
)

// Option customizes a Generator's configuration.
type Option func(*config)

// config aggregates everything options can touch.
type config struct {
	settings Settings
	prng     rng.Factory
	diag     *log.Logger
	hooks    []HookFunc
}

// newConfig returns defaults with opts applied in order.
func newConfig(opts ...Option) config {
	cfg := config{
		settings: DefaultSettings(),
		diag:     defaultLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSize sets N so that the grid side is 2^N+1.
// Panics if n is outside [0, grid.MaxSizeFactor].
func WithSize(n int) Option {
	if n < 0 || n > grid.MaxSizeFactor {
		panic("diamondsquare: WithSize out of range")
	}
	return func(c *config) {
		c.settings.Size = n
	}
}

// WithRange sets the inclusive output bounds. Panics if min > max.
func WithRange(min, max int) Option {
	if min > max {
		panic("diamondsquare: WithRange(min>max)")
	}
	return func(c *config) {
		c.settings.Min, c.settings.Max = min, max
	}
}

// WithRoughness sets the displacement scale. 0 disables displacement.
// Panics on negative, NaN or infinite values.
func WithRoughness(r float64) Option {
	if r < 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		panic("diamondsquare: WithRoughness(r<0 or non-finite)")
	}
	return func(c *config) {
		c.settings.Roughness = r
	}
}

// WithSmoothness sets the number of smoothing passes. Panics if n < 0.
func WithSmoothness(n int) Option {
	if n < 0 {
		panic("diamondsquare: WithSmoothness(n<0)")
	}
	return func(c *config) {
		c.settings.Smoothness = n
	}
}

// WithSeed sets the replay seed. Ignored unless a PRNG factory is set;
// an empty seed asks for a freshly generated one.
func WithSeed(seed string) Option {
	return func(c *config) {
		c.settings.Seed = seed
	}
}

// WithPRNG installs a seedable random stream factory. Panics on nil; use
// WithoutPRNG to go back to the non-reproducible source.
func WithPRNG(f rng.Factory) Option {
	if f == nil {
		panic("diamondsquare: WithPRNG(nil)")
	}
	return func(c *config) {
		c.prng = f
	}
}

// WithoutPRNG removes any PRNG factory; runs become non-reproducible.
func WithoutPRNG() Option {
	return func(c *config) {
		c.prng = nil
	}
}

// WithDiamondPolicy selects the diamond-step boundary behaviour.
func WithDiamondPolicy(p DiamondPolicy) Option {
	if p != DiamondSymmetric && p != DiamondLegacy {
		panic("diamondsquare: WithDiamondPolicy(unknown)")
	}
	return func(c *config) {
		c.settings.Diamond = p
	}
}

// WithSmoothMode selects snapshot or in-place smoothing passes.
func WithSmoothMode(m SmoothMode) Option {
	if m != SmoothSnapshot && m != SmoothInPlace {
		panic("diamondsquare: WithSmoothMode(unknown)")
	}
	return func(c *config) {
		c.settings.Smoothing = m
	}
}

// WithLogger redirects diagnostics to w. A nil writer silences them.
func WithLogger(w io.Writer) Option {
	return func(c *config) {
		c.diag = newLogger(w)
	}
}

// WithHooks registers per-point hooks at construction, in order.
// Nil entries are skipped. With SetSettings the hooks are appended to
// the ones already registered.
func WithHooks(fns ...HookFunc) Option {
	return func(c *config) {
		c.hooks = append(c.hooks, fns...)
	}
}
