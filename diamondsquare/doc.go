// Package diamondsquare generates heightmaps with the Diamond-Square
// fractal subdivision algorithm.
//
// What:
//
//   - Generator owns one grid.Grid of side 2^n+1 and fills it from a few
//     seed values: corners first, then tile centres (square step) and edge
//     midpoints (diamond step), halving the tile size each level.
//   - Every committed value is the local average plus a random displacement
//     whose amplitude halves with the tile size, so coarse features come
//     first and fine detail last.
//   - Cells set beforehand (boundary seeding) are pinned: the fill never
//     overwrites them.
//   - Per-point hooks post-process each committed value (biome clamping,
//     terracing, erosion masks) without touching the engine.
//   - A smoothing pass averages every cell with its orthogonal neighbours.
//
// Reproducibility:
//
//	Supply a PRNG factory (WithPRNG(rng.MathRand) or the "prng" config key).
//	The seed in use is reported by Settings().Seed; passing it back with the
//	same factory replays the run bit for bit. Without a factory, runs use the
//	global math/rand stream and Settings().Seed is "".
//
// Typical flow:
//
//	g := diamondsquare.New(diamondsquare.WithSize(7), diamondsquare.WithPRNG(rng.MathRand))
//	_ = g.CreateGrid()
//	_ = g.SetOuterWater(0)
//	view, err := g.Make()
//
// Complexity:
//
//   - Make: O(D² · (1 + Smoothness)) time, O(D²) memory, D = 2^Size+1.
//
// Errors:
//
//   - ErrNotInitialized: seeding or Make before a grid exists.
//   - ErrTypeMismatch: NaN/±Inf values or config values of the wrong kind.
//   - ErrInvalidSize, ErrOutOfRange: aliases of the grid sentinels.
//   - ErrInvalidSetting: min > max, negative roughness or smoothness.
//
// Open behaviours are selectable: see DiamondPolicy and SmoothMode.
package diamondsquare
