package diamondsquare

import (
	"log"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/heightmap/grid"
	"github.com/katalvlaran/heightmap/rng"
)

// Coord addresses a grid cell; X is the column, Y the row.
type Coord struct {
	X, Y int
}

// Generator runs the diamond-square algorithm over one grid.
// A Generator is not safe for concurrent use.
type Generator struct {
	settings Settings
	size     int // size the next CreateGrid allocates
	prng     rng.Factory
	src      *rng.Source
	diag     *log.Logger

	grid   *grid.Grid
	pinned mapset.Set[Coord]

	hooks  []hook
	hookID HookID
}

// New returns a Generator configured by opts on top of DefaultSettings.
// No grid is allocated yet; call CreateGrid (or CreateGridWithDimension,
// LoadGrid) before seeding or Make.
func New(opts ...Option) *Generator {
	g := &Generator{pinned: mapset.New[Coord]()}
	g.apply(newConfig(opts...))

	return g
}

// SetSettings applies opts on top of the current configuration and
// re-creates the random source. A previously resolved seed is kept unless
// an option replaces it, so the stream restarts from the same seed.
// The allocated grid, if any, is left untouched: a new size is recorded
// for the next CreateGrid while Settings keeps describing the live grid.
func (g *Generator) SetSettings(opts ...Option) *Generator {
	cfg := g.currentConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	g.apply(cfg)

	return g
}

// currentConfig snapshots the live configuration for further options.
func (g *Generator) currentConfig() config {
	s := g.settings
	s.Size = g.size
	return config{settings: s, prng: g.prng, diag: g.diag}
}

// apply installs cfg: derived fields, random source, extra hooks.
func (g *Generator) apply(cfg config) {
	g.settings = cfg.settings
	g.size = cfg.settings.Size
	if g.grid != nil {
		g.settings.Size = g.grid.SizeFactor()
	}
	g.prng = cfg.prng
	g.diag = cfg.diag
	g.settings.Mid = midpoint(g.settings.Min, g.settings.Max)

	if g.prng == nil {
		g.diagf("missing prng factory, not using seed")
	}
	g.src = rng.NewSource(g.prng, g.settings.Seed)
	g.settings.Seed = g.src.Seed()
	g.settings.Reproducible = g.src.Reproducible()

	for _, fn := range cfg.hooks {
		g.AddHook(fn)
	}
}

// Settings returns a copy of the resolved settings, including the seed in
// use and the dimension of the allocated grid. Once a grid exists,
// Dimension = 2^Size+1 always holds; a size set afterwards takes effect at
// the next CreateGrid.
func (g *Generator) Settings() Settings {
	return g.settings
}

// CreateGrid allocates an empty grid of side 2^Size+1, replacing any
// previous grid and clearing the pinned set. Size is the most recently
// configured one, even if it was changed after the last allocation.
func (g *Generator) CreateGrid() error {
	gr, err := grid.NewForSize(g.size)
	if err != nil {
		return dsErrorf(opCreateGrid, err)
	}
	g.install(gr)

	return nil
}

// CreateGridWithDimension allocates an empty grid with the given side,
// which must be 2^n+1. Settings.Size is updated to n.
func (g *Generator) CreateGridWithDimension(side int) error {
	gr, err := grid.New(side)
	if err != nil {
		return dsErrorf(opCreateGrid, err)
	}
	g.install(gr)

	return nil
}

// LoadGrid installs an existing row-major [y][x] map. NaN cells are
// unset and will be filled by Make; every other cell counts as pinned.
func (g *Generator) LoadGrid(values [][]float64) error {
	gr, err := grid.FromValues(values)
	if err != nil {
		return dsErrorf(opLoadGrid, err)
	}
	g.install(gr)
	for y := 0; y < gr.Dimension(); y++ {
		for x := 0; x < gr.Dimension(); x++ {
			if gr.IsSet(x, y) {
				g.pinned.Put(Coord{X: x, Y: y})
			}
		}
	}

	return nil
}

// install makes gr the working grid and refreshes derived settings.
func (g *Generator) install(gr *grid.Grid) {
	g.grid = gr
	g.pinned = mapset.New[Coord]()
	g.size = gr.SizeFactor()
	g.settings.Size = g.size
	g.settings.Dimension = gr.Dimension()
	g.settings.MaxKey = gr.MaxKey()
}

// Grid returns a read-only view of the working grid, or nil before
// allocation.
func (g *Generator) Grid() grid.View {
	if g.grid == nil {
		return nil
	}
	return g.grid
}

// Pinned reports whether (x, y) was set by the caller (boundary seeding,
// SetPoint or LoadGrid) rather than by the displacement engine.
func (g *Generator) Pinned(x, y int) bool {
	return g.pinned.Has(Coord{X: x, Y: y})
}

// PinnedCount returns the number of caller-set cells.
func (g *Generator) PinnedCount() int {
	return g.pinned.Size()
}

// Make fills every unset cell with the diamond-square displacement and
// then runs Settings.Smoothness smoothing passes. Cells that already hold a
// value are never overwritten by the fill, but smoothing always mutates the
// whole grid, so calling Make twice smooths twice.
// Returns ErrNotInitialized when no grid has been allocated.
// Complexity: O(Dimension² · (1 + Smoothness)).
func (g *Generator) Make() (grid.View, error) {
	if g.grid == nil {
		return nil, dsErrorf(opMake, ErrNotInitialized)
	}
	if err := g.displaceAll(); err != nil {
		return nil, dsErrorf(opMake, err)
	}
	if err := g.smooth(g.settings.Smoothness); err != nil {
		return nil, dsErrorf(opMake, err)
	}

	return g.grid, nil
}
