// Package grid provides the square heightmap container used by the
// diamond-square generator.
//
// What:
//
//   - Grid stores a side×side field of optional float64 cells in a flat,
//     row-major slice with a parallel "set" bitmap.
//   - The side length is always 2^n+1, the shape the diamond-square
//     subdivision requires; anything else is rejected with ErrInvalidSize.
//   - View is the read-only surface handed to renderers once generation is
//     finished.
//   - Summarize reports min/max/mean/stddev over the set cells.
//
// Coordinates:
//
//	(x, y) with x the column and y the row; (0,0) is the north-west corner,
//	(MaxKey, MaxKey) the south-east corner.
//
// Complexity:
//
//   - Get/Set/IsSet: O(1).
//   - New, Clone, Values, Summarize: O(side²) time and memory.
//
// Errors:
//
//   - ErrInvalidSize: side < 1, side not of the form 2^n+1, or ragged input.
//   - ErrOutOfRange: coordinate outside [0, MaxKey].
//   - ErrNonFinite: ±Inf found while loading values.
//   - ErrNilGrid: nil receiver or argument.
package grid
