// SPDX-License-Identifier: MIT
// Package: heightmap/diamondsquare
//
// seeder.go: boundary seeding before displacement.
//
// Three shapes of input funnel into the same commit rule (set when unset,
// replace only with override):
//   • named compass points, "n" … "nw" plus "center"/"mid";
//   • whole rows or columns by name ("first", "last", "mid"/"center") or
//     decimal index;
//   • explicit coordinates.
// Keys are visited in sorted order so hooks observe a stable sequence.
// Unknown names and out-of-range indices are skipped silently.

package diamondsquare

import (
	"cmp"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// namedPoint maps a lower-case compass name to a coordinate for MaxKey m.
func namedPoint(name string, m int) (Coord, bool) {
	h := m / 2
	switch name {
	case "n":
		return Coord{h, 0}, true
	case "ne":
		return Coord{m, 0}, true
	case "e":
		return Coord{m, h}, true
	case "se":
		return Coord{m, m}, true
	case "s":
		return Coord{h, m}, true
	case "sw":
		return Coord{0, m}, true
	case "w":
		return Coord{0, h}, true
	case "nw":
		return Coord{0, 0}, true
	case "center", "mid":
		return Coord{h, h}, true
	default:
		return Coord{}, false
	}
}

// SetNamedPoints pins compass points: n, ne, e, se, s, sw, w, nw and
// center/mid (case-insensitive). Unknown names are ignored.
func (g *Generator) SetNamedPoints(named map[string]float64, override bool) error {
	if g.grid == nil {
		return dsErrorf(opSeedNamed, ErrNotInitialized)
	}
	m := g.grid.MaxKey()
	for _, name := range slices.Sorted(maps.Keys(named)) {
		at, ok := namedPoint(strings.ToLower(strings.TrimSpace(name)), m)
		if !ok {
			continue
		}
		if err := g.pin(at, named[name], override); err != nil {
			return dsErrorf(opSeedNamed, err)
		}
	}

	return nil
}

// lineIndex resolves a row/column key to an index in [0, MaxKey].
func (g *Generator) lineIndex(key string) (int, bool) {
	m := g.grid.MaxKey()
	var idx int
	switch k := strings.ToLower(strings.TrimSpace(key)); k {
	case "first":
		idx = 0
	case "last":
		idx = m
	case "mid", "center":
		idx = m / 2
	default:
		n, err := strconv.Atoi(k)
		if err != nil {
			return 0, false
		}
		idx = n
	}

	return idx, idx >= 0 && idx <= m
}

// SetRows fills whole rows. Keys are "first", "last", "mid"/"center" or a
// decimal row index.
func (g *Generator) SetRows(rows map[string]float64, override bool) error {
	return g.setLines(opSeedRows, rows, override, func(idx, k int) Coord { return Coord{k, idx} })
}

// SetColumns fills whole columns. Keys are "first", "last", "mid"/"center"
// or a decimal column index.
func (g *Generator) SetColumns(cols map[string]float64, override bool) error {
	return g.setLines(opSeedColumns, cols, override, func(idx, k int) Coord { return Coord{idx, k} })
}

// setLines is the shared body of SetRows and SetColumns; at maps the line
// index and the position along the line to a cell.
func (g *Generator) setLines(op string, lines map[string]float64, override bool, at func(idx, k int) Coord) error {
	if g.grid == nil {
		return dsErrorf(op, ErrNotInitialized)
	}
	m := g.grid.MaxKey()
	for _, key := range slices.Sorted(maps.Keys(lines)) {
		idx, ok := g.lineIndex(key)
		if !ok {
			continue
		}
		for k := 0; k <= m; k++ {
			if err := g.pin(at(idx, k), lines[key], override); err != nil {
				return dsErrorf(op, err)
			}
		}
	}

	return nil
}

// SetPoints pins arbitrary coordinates. Out-of-range entries are skipped.
func (g *Generator) SetPoints(points map[Coord]float64, override bool) error {
	if g.grid == nil {
		return dsErrorf(opSeedPoints, ErrNotInitialized)
	}
	keys := slices.SortedFunc(maps.Keys(points), func(a, b Coord) int {
		if c := cmp.Compare(a.X, b.X); c != 0 {
			return c
		}
		return cmp.Compare(a.Y, b.Y)
	})
	for _, c := range keys {
		if !g.grid.InBounds(c.X, c.Y) {
			continue
		}
		if err := g.pin(c, points[c], override); err != nil {
			return dsErrorf(opSeedPoints, err)
		}
	}

	return nil
}

// pin commits v at c and records c as caller-set when the value was
// actually written.
func (g *Generator) pin(c Coord, v float64, override bool) error {
	wrote := g.writes(c.X, c.Y, override)
	if _, err := g.commit(c.X, c.Y, v, true, override); err != nil {
		return err
	}
	if wrote {
		g.pinned.Put(c)
	}

	return nil
}
