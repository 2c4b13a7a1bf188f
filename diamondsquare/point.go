package diamondsquare

import "math"

// SetPoint commits v at (x, y). v is clamped to [Min, Max], truncated
// toward zero and passed through the hooks. When the cell already holds a
// value and override is false, the existing value is returned unchanged and
// no hook runs. The cell is recorded as pinned only when this call wrote it.
//
// Errors: ErrNotInitialized, ErrTypeMismatch (NaN/±Inf), ErrOutOfRange.
func (g *Generator) SetPoint(x, y int, v float64, override bool) (float64, error) {
	if g.grid == nil {
		return 0, dsErrorf(opSetPoint, ErrNotInitialized)
	}
	wrote := g.writes(x, y, override)
	out, err := g.commit(x, y, v, true, override)
	if err != nil {
		return 0, dsErrorf(opSetPoint, err)
	}
	if wrote {
		g.pinned.Put(Coord{X: x, Y: y})
	}

	return out, nil
}

// SetRandomPoint is SetPoint with a value drawn from the random source.
func (g *Generator) SetRandomPoint(x, y int, override bool) (float64, error) {
	if g.grid == nil {
		return 0, dsErrorf(opSetPoint, ErrNotInitialized)
	}
	wrote := g.writes(x, y, override)
	out, err := g.commit(x, y, 0, false, override)
	if err != nil {
		return 0, dsErrorf(opSetPoint, err)
	}
	if wrote {
		g.pinned.Put(Coord{X: x, Y: y})
	}

	return out, nil
}

// writes reports whether a commit at (x, y) will store a new value rather
// than keep the existing one.
func (g *Generator) writes(x, y int, override bool) bool {
	return override || !g.grid.IsSet(x, y)
}

// commit is the single write path for every component.
// Stage 1 (Validate): finite value, in-bounds cell.
// Stage 2 (Keep): existing value wins unless override.
// Stage 3 (Resolve): draw if no value, clamp, truncate, hooks, clamp.
// Stage 4 (Store).
func (g *Generator) commit(x, y int, v float64, hasValue, override bool) (float64, error) {
	if hasValue && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return 0, ErrTypeMismatch
	}
	cur, ok, err := g.grid.Get(x, y)
	if err != nil {
		return 0, err
	}
	if ok && !override {
		return cur, nil
	}

	if !hasValue {
		v = g.src.InRange(g.settings.Min, g.settings.Max, true, 0)
	}
	v = math.Trunc(g.limit(v))
	v = g.limit(g.runHooks(x, y, v))
	if err := g.grid.Set(x, y, v); err != nil {
		return 0, err
	}

	return v, nil
}

// limit clamps v into [Min, Max].
func (g *Generator) limit(v float64) float64 {
	if hi := float64(g.settings.Max); v > hi {
		return hi
	}
	if lo := float64(g.settings.Min); v < lo {
		return lo
	}
	return v
}

// value reads a committed cell; callers only ask for cells that an earlier
// stage has filled, an unset cell reads as 0.
func (g *Generator) value(x, y int) float64 {
	v, _, _ := g.grid.Get(x, y)
	return v
}
