// SPDX-License-Identifier: MIT
// Package diamondsquare: sentinel errors.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Grid-level failures keep the grid package sentinels; they are aliased
//     here so callers of this package need only one import.
//   • Operations wrap with dsErrorf(op, err) to add context.
//   • Algorithms do not panic; validation panics are confined to option
//     constructors (WithX...).

package diamondsquare

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/heightmap/grid"
)

var (
	// ErrNotInitialized indicates that an operation needs an allocated grid
	// (CreateGrid, CreateGridWithDimension or LoadGrid) and none exists.
	ErrNotInitialized = errors.New("diamondsquare: grid not initialized")

	// ErrTypeMismatch indicates a non-numeric value where a number is
	// required: NaN/±Inf passed to SetPoint, or a config value of the
	// wrong kind.
	ErrTypeMismatch = errors.New("diamondsquare: value is not a number")

	// ErrInvalidSetting indicates a numeric setting outside its domain
	// (min > max, negative roughness or smoothness).
	ErrInvalidSetting = errors.New("diamondsquare: invalid setting")
)

var (
	// ErrInvalidSize aliases grid.ErrInvalidSize (bad grid dimension).
	ErrInvalidSize = grid.ErrInvalidSize
	// ErrOutOfRange aliases grid.ErrOutOfRange (cell access out of bounds).
	ErrOutOfRange = grid.ErrOutOfRange
)

// Operation names for error wrapping.
const (
	opMake        = "Make"
	opSetPoint    = "SetPoint"
	opSeedPoints  = "SetPoints"
	opSeedNamed   = "SetNamedPoints"
	opSeedRows    = "SetRows"
	opSeedColumns = "SetColumns"
	opCreateGrid  = "CreateGrid"
	opLoadGrid    = "LoadGrid"
	opConfigure   = "Configure"
)

// dsErrorf prefixes err with the operation name, preserving errors.Is.
func dsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
