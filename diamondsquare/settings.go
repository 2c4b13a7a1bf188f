package diamondsquare

// DiamondPolicy selects how diamond-step edge midpoints treat their far
// neighbour (the cell at distance step/4 beyond the edge).
type DiamondPolicy int

const (
	// DiamondSymmetric computes every square step of a level before any
	// diamond step and averages four samples whenever the far neighbour is
	// inside the grid, in all four directions. Cells on the outer border
	// fall back to three samples.
	DiamondSymmetric DiamondPolicy = iota
	// DiamondLegacy reproduces DiamondSquare.js 0.2: tiles are processed
	// one at a time; north and west midpoints use the far neighbour when
	// it is inside the grid, south and east midpoints always use three
	// samples.
	DiamondLegacy
)

// String implements fmt.Stringer.
func (p DiamondPolicy) String() string {
	switch p {
	case DiamondSymmetric:
		return "symmetric"
	case DiamondLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// SmoothMode selects what a smoothing pass reads.
type SmoothMode int

const (
	// SmoothSnapshot reads neighbours from a frozen copy of the previous
	// pass, so the result does not depend on sweep order.
	SmoothSnapshot SmoothMode = iota
	// SmoothInPlace updates cells during the sweep (x outer, y inner), so
	// later cells see already-smoothed neighbours, as DiamondSquare.js does.
	SmoothInPlace
)

// String implements fmt.Stringer.
func (m SmoothMode) String() string {
	switch m {
	case SmoothSnapshot:
		return "snapshot"
	case SmoothInPlace:
		return "in-place"
	default:
		return "unknown"
	}
}

// Defaults mirror DiamondSquare.js 0.2.
const (
	DefaultSize       = 9
	DefaultMin        = 0
	DefaultMax        = 255
	DefaultRoughness  = 2500.0
	DefaultSmoothness = 2
)

// Settings is the resolved configuration of a Generator. The value returned
// by Generator.Settings is a copy; change settings through options.
type Settings struct {
	Size       int     // N in 2^N+1; matches the allocated grid once there is one
	Min, Max   int     // output bounds, inclusive
	Roughness  float64 // displacement amplitude scale
	Smoothness int     // smoothing passes run by Make
	Seed       string  // seed in use; "" when no PRNG factory is configured

	Diamond   DiamondPolicy
	Smoothing SmoothMode

	// Derived, read-only.
	Mid          int  // (Min+Max)/2 truncated toward zero
	Dimension    int  // side of the allocated grid; 0 before allocation
	MaxKey       int  // Dimension-1; 0 before allocation
	Reproducible bool // true when a PRNG factory drives the run
}

// DefaultSettings returns the default configuration.
func DefaultSettings() Settings {
	s := Settings{
		Size:       DefaultSize,
		Min:        DefaultMin,
		Max:        DefaultMax,
		Roughness:  DefaultRoughness,
		Smoothness: DefaultSmoothness,
		Diamond:    DiamondSymmetric,
		Smoothing:  SmoothSnapshot,
	}
	s.Mid = midpoint(s.Min, s.Max)

	return s
}

// midpoint truncates toward zero, like the bit-truncation of the source.
func midpoint(min, max int) int {
	return (min + max) / 2
}
