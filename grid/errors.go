// SPDX-License-Identifier: MIT
// Package grid: sentinel errors.
//
// Every message is prefixed with "grid: ...". Methods wrap these sentinels
// with their name and coordinates via gridErrorf; callers match with errors.Is.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a requested side length is < 1 or is
	// not of the form 2^n+1, or when loaded values are not square.
	ErrInvalidSize = errors.New("grid: invalid size")

	// ErrOutOfRange indicates that a coordinate lies outside [0, MaxKey].
	// Public accessors return it instead of panicking.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrNonFinite indicates a ±Inf value in loaded data. NaN is accepted
	// and means "unset".
	ErrNonFinite = errors.New("grid: non-finite value")

	// ErrNilGrid indicates that a nil *Grid or View was used.
	ErrNilGrid = errors.New("grid: nil grid")
)

// gridErrorf wraps err with method and coordinate context.
func gridErrorf(method string, x, y int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, x, y, err)
}
