package diamondsquare

import "github.com/katalvlaran/heightmap/grid"

// neighborOffsets are the orthogonal neighbours in the order the source
// visits them: north, east, west, south.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {-1, 0}, {0, 1}}

// smooth runs passes full smoothing sweeps. Each cell becomes the mean of
// itself and its existing orthogonal neighbours; unset cells are excluded
// from both sum and count. Results are committed with override, so they are
// clamped, truncated and passed through the hooks.
// Complexity: O(passes · Dimension²).
func (g *Generator) smooth(passes int) error {
	dim := g.grid.Dimension()
	for p := 0; p < passes; p++ {
		src := g.grid
		if g.settings.Smoothing == SmoothSnapshot {
			src = g.grid.Clone()
		}
		for x := 0; x < dim; x++ {
			for y := 0; y < dim; y++ {
				mean, ok := neighborhoodMean(src, x, y)
				if !ok {
					continue
				}
				if _, err := g.commit(x, y, mean, true, true); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// neighborhoodMean averages the set cells among (x, y) and its four
// orthogonal neighbours. ok is false when none of them is set.
func neighborhoodMean(src *grid.Grid, x, y int) (float64, bool) {
	var total float64
	var count int
	if v, set, _ := src.Get(x, y); set {
		total += v
		count++
	}
	for _, d := range neighborOffsets {
		if v, set, err := src.Get(x+d[0], y+d[1]); err == nil && set {
			total += v
			count++
		}
	}
	if count == 0 {
		return 0, false
	}

	return total / float64(count), true
}
