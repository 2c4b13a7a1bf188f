// SPDX-License-Identifier: MIT
// Package: heightmap/diamondsquare
//
// config.go: the mapping form of configuration.
//
// Recognized keys: size, roughness, smoothness, seed, min, max, prng.
//   • Numeric keys accept any Go integer or float kind, json.Number and
//     numeric strings. Integer settings truncate toward zero.
//   • seed accepts a string, an integer, or nil/false for "absent".
//   • prng accepts rng.Factory, func(string) func() float64, or nil/false
//     to disable reproducibility.
//   • Unknown keys are ignored with a diagnostic.
// The map is applied atomically: on any error nothing changes.

package diamondsquare

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/heightmap/grid"
	"github.com/katalvlaran/heightmap/rng"
)

// Configuration keys.
const (
	KeySize       = "size"
	KeyRoughness  = "roughness"
	KeySmoothness = "smoothness"
	KeySeed       = "seed"
	KeyMin        = "min"
	KeyMax        = "max"
	KeyPRNG       = "prng"
)

// Configure applies a settings mapping to the generator and re-creates the
// random source, like SetSettings.
//
// Errors: ErrTypeMismatch for a value of the wrong kind, ErrInvalidSize
// for size outside [0, grid.MaxSizeFactor], ErrInvalidSetting for
// min > max or negative roughness/smoothness.
func (g *Generator) Configure(settings map[string]any) error {
	cfg := g.currentConfig()
	s := &cfg.settings

	for _, key := range slices.Sorted(maps.Keys(settings)) {
		raw := settings[key]
		var err error
		switch strings.ToLower(key) {
		case KeySize:
			s.Size, err = toInt(raw)
		case KeyMin:
			s.Min, err = toInt(raw)
		case KeyMax:
			s.Max, err = toInt(raw)
		case KeySmoothness:
			s.Smoothness, err = toInt(raw)
		case KeyRoughness:
			s.Roughness, err = toFloat(raw)
		case KeySeed:
			s.Seed, err = toSeed(raw)
		case KeyPRNG:
			cfg.prng, err = toFactory(raw)
		default:
			g.diagf("unknown setting %q ignored", key)
		}
		if err != nil {
			return dsErrorf(opConfigure, fmt.Errorf("%s: %w", key, err))
		}
	}

	if err := validateSettings(*s); err != nil {
		return dsErrorf(opConfigure, err)
	}
	g.apply(cfg)

	return nil
}

// validateSettings enforces the same domains the option constructors do.
func validateSettings(s Settings) error {
	if s.Size < 0 || s.Size > grid.MaxSizeFactor {
		return fmt.Errorf("size %d: %w", s.Size, ErrInvalidSize)
	}
	if s.Min > s.Max {
		return fmt.Errorf("min %d > max %d: %w", s.Min, s.Max, ErrInvalidSetting)
	}
	if s.Roughness < 0 {
		return fmt.Errorf("roughness %v: %w", s.Roughness, ErrInvalidSetting)
	}
	if s.Smoothness < 0 {
		return fmt.Errorf("smoothness %d: %w", s.Smoothness, ErrInvalidSetting)
	}

	return nil
}

// toFloat converts numeric kinds and numeric strings to a finite float64.
func toFloat(v any) (float64, error) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int8:
		f = float64(n)
	case int16:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case uint8:
		f = float64(n)
	case uint16:
		f = float64(n)
	case uint32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		x, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("%q: %w", n, ErrTypeMismatch)
		}
		f = x
	case string:
		x, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("%q: %w", n, ErrTypeMismatch)
		}
		f = x
	default:
		return 0, fmt.Errorf("%T: %w", v, ErrTypeMismatch)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%v: %w", f, ErrTypeMismatch)
	}

	return f, nil
}

// toInt is toFloat truncated toward zero.
func toInt(v any) (int, error) {
	f, err := toFloat(v)
	if err != nil {
		return 0, err
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%v: %w", f, ErrInvalidSetting)
	}
	return int(f), nil
}

// toSeed accepts strings, integers and nil/false (absent).
func toSeed(v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case bool:
		if !s {
			return "", nil
		}
		return "", fmt.Errorf("true: %w", ErrTypeMismatch)
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(s), nil
	default:
		return "", fmt.Errorf("%T: %w", v, ErrTypeMismatch)
	}
}

// toFactory accepts a factory or nil/false (no factory).
func toFactory(v any) (rng.Factory, error) {
	switch f := v.(type) {
	case nil:
		return nil, nil
	case bool:
		if !f {
			return nil, nil
		}
		return nil, fmt.Errorf("true: %w", ErrTypeMismatch)
	case rng.Factory:
		return f, nil
	case func(string) func() float64:
		return f, nil
	default:
		return nil, fmt.Errorf("%T: %w", v, ErrTypeMismatch)
	}
}
