package grid

// View is the read-only surface of a finished heightmap. Renderers and
// other consumers should depend on View rather than *Grid.
type View interface {
	// Dimension returns the side length (2^n+1).
	Dimension() int
	// MaxKey returns Dimension()-1, the largest valid coordinate.
	MaxKey() int
	// Get returns the value at (x, y) and whether the cell is set.
	// Returns ErrOutOfRange for invalid coordinates.
	Get(x, y int) (float64, bool, error)
	// Values returns a row-major [y][x] copy; unset cells are NaN.
	Values() [][]float64
}

var _ View = (*Grid)(nil)
