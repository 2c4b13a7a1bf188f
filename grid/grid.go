// Package grid provides core storage for diamond-square heightmaps.
// Grid is a row-major square of optional float64 values, storing elements
// in a flat slice with a parallel "set" bitmap.
package grid

import (
	"fmt"
	"math"
	"math/bits"
	"strings"
)

// MaxSizeFactor bounds n in 2^n+1. At n = 14 a grid holds 16385² cells,
// about 2.4 GiB of values and bitmap; anything larger is rejected with
// ErrInvalidSize rather than left to fail inside make.
const MaxSizeFactor = 14

// Grid is a square heightmap whose side length is 2^n+1.
// side is the dimension, data holds side*side values and set marks which
// of them hold a committed value.
type Grid struct {
	side int       // dimension, 2^n+1
	data []float64 // flat row-major storage, len == side*side
	set  []bool    // set[i] reports whether data[i] is committed
}

// ValidSide reports whether side has the form 2^n+1 for some n >= 0.
// Complexity: O(1).
func ValidSide(side int) bool {
	if side < 2 {
		return false
	}
	return (side-1)&(side-2) == 0
}

// SideForSize returns 2^n+1 or ErrInvalidSize when n is outside
// [0, MaxSizeFactor].
func SideForSize(n int) (int, error) {
	if n < 0 || n > MaxSizeFactor {
		return 0, fmt.Errorf("SideForSize(%d): %w", n, ErrInvalidSize)
	}
	return 1<<uint(n) + 1, nil
}

// New creates a side×side Grid with every cell unset.
// Stage 1 (Validate): side must be 2^n+1.
// Stage 2 (Prepare): allocate flat value and bitmap slices.
// Complexity: O(side²) time and memory.
func New(side int) (*Grid, error) {
	if !ValidSide(side) {
		return nil, fmt.Errorf("New(%d): %w", side, ErrInvalidSize)
	}
	if bits.TrailingZeros(uint(side-1)) > MaxSizeFactor {
		return nil, fmt.Errorf("New(%d): %w", side, ErrInvalidSize)
	}
	n := side * side

	return &Grid{
		side: side,
		data: make([]float64, n),
		set:  make([]bool, n),
	}, nil
}

// NewForSize creates an empty Grid with side 2^n+1.
func NewForSize(n int) (*Grid, error) {
	side, err := SideForSize(n)
	if err != nil {
		return nil, err
	}
	return New(side)
}

// FromValues builds a Grid from a row-major [y][x] square. NaN entries
// stay unset; ±Inf is rejected with ErrNonFinite. The input is deep-copied.
// Complexity: O(side²).
func FromValues(values [][]float64) (*Grid, error) {
	g, err := New(len(values))
	if err != nil {
		return nil, err
	}
	for y, row := range values {
		if len(row) != g.side {
			return nil, fmt.Errorf("FromValues: row %d has %d cells, want %d: %w",
				y, len(row), g.side, ErrInvalidSize)
		}
		for x, v := range row {
			if math.IsNaN(v) {
				continue
			}
			if math.IsInf(v, 0) {
				return nil, gridErrorf("FromValues", x, y, ErrNonFinite)
			}
			i := y*g.side + x
			g.data[i] = v
			g.set[i] = true
		}
	}

	return g, nil
}

// Dimension returns the side length of the grid.
func (g *Grid) Dimension() int {
	return g.side
}

// MaxKey returns the largest valid coordinate, Dimension()-1.
func (g *Grid) MaxKey() int {
	return g.side - 1
}

// SizeFactor returns n such that Dimension() == 2^n+1.
func (g *Grid) SizeFactor() int {
	return bits.TrailingZeros(uint(g.side - 1))
}

// InBounds reports whether (x,y) lies inside the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.side && y >= 0 && y < g.side
}

// indexOf computes the flat index for (x, y) or returns ErrOutOfRange
// wrapped with the calling method's name.
func (g *Grid) indexOf(method string, x, y int) (int, error) {
	if !g.InBounds(x, y) {
		return 0, gridErrorf(method, x, y, ErrOutOfRange)
	}
	return y*g.side + x, nil
}

// Get returns the value at (x, y) and whether it is set.
// An unset cell yields (0, false, nil).
// Complexity: O(1).
func (g *Grid) Get(x, y int) (float64, bool, error) {
	i, err := g.indexOf("Get", x, y)
	if err != nil {
		return 0, false, err
	}
	return g.data[i], g.set[i], nil
}

// IsSet reports whether (x, y) holds a value. Out-of-range cells are unset.
func (g *Grid) IsSet(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.set[y*g.side+x]
}

// Set commits v at (x, y), replacing any previous value.
// Complexity: O(1).
func (g *Grid) Set(x, y int, v float64) error {
	i, err := g.indexOf("Set", x, y)
	if err != nil {
		return err
	}
	g.data[i] = v
	g.set[i] = true

	return nil
}

// Unset clears (x, y) back to the unset state.
func (g *Grid) Unset(x, y int) error {
	i, err := g.indexOf("Unset", x, y)
	if err != nil {
		return err
	}
	g.data[i] = 0
	g.set[i] = false

	return nil
}

// Filled reports whether every cell is set.
// Complexity: O(side²).
func (g *Grid) Filled() bool {
	for _, ok := range g.set {
		if !ok {
			return false
		}
	}
	return true
}

// Unfilled returns the number of unset cells.
func (g *Grid) Unfilled() int {
	var n int
	for _, ok := range g.set {
		if !ok {
			n++
		}
	}
	return n
}

// Clone returns an independent deep copy.
// Complexity: O(side²) time and memory.
func (g *Grid) Clone() *Grid {
	data := make([]float64, len(g.data))
	copy(data, g.data)
	set := make([]bool, len(g.set))
	copy(set, g.set)

	return &Grid{side: g.side, data: data, set: set}
}

// Values returns a row-major [y][x] copy of the grid. Unset cells are NaN.
// Complexity: O(side²).
func (g *Grid) Values() [][]float64 {
	out := make([][]float64, g.side)
	for y := 0; y < g.side; y++ {
		row := make([]float64, g.side)
		for x := 0; x < g.side; x++ {
			i := y*g.side + x
			if g.set[i] {
				row[x] = g.data[i]
			} else {
				row[x] = math.NaN()
			}
		}
		out[y] = row
	}

	return out
}

// String implements fmt.Stringer; unset cells print as "_".
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.side; y++ {
		sb.WriteByte('[')
		for x := 0; x < g.side; x++ {
			i := y*g.side + x
			if g.set[i] {
				fmt.Fprintf(&sb, "%g", g.data[i])
			} else {
				sb.WriteByte('_')
			}
			if x < g.side-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
