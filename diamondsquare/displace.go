// SPDX-License-Identifier: MIT
// Package: heightmap/diamondsquare
//
// displace.go: the diamond-square displacement engine.
//
// Levels:
//   • Initialization (step = MaxKey): corners, centre and the four edge
//     midpoints of the whole grid.
//   • Level step (step = MaxKey, MaxKey/2, ... while step/2 > 1): tiles of
//     side s = step/2 whose corners are already known get their centre
//     (square step) and their four edge midpoints (diamond step).
//   • Every write goes through commit with override=false, so pinned cells
//     and cells filled by a neighbouring tile are never clobbered.
//
// Amplitude:
//   displace(step) = floor(InRange(min,max,inclusive,mid) · step/MaxKey · 2 · roughness/1000)
//   and shrinks by half with every level.

package diamondsquare

import "math"

// displaceAll runs initialization and then every level until tiles are
// primitive.
func (g *Generator) displaceAll() error {
	if err := g.initialize(); err != nil {
		return err
	}
	for step := g.grid.MaxKey(); step/2 > 1; step /= 2 {
		var err error
		switch g.settings.Diamond {
		case DiamondLegacy:
			err = g.legacyLevel(step)
		default:
			err = g.symmetricLevel(step)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// displace draws a centred random offset scaled by the level's step.
func (g *Generator) displace(step int) float64 {
	s := g.settings
	r := g.src.InRange(s.Min, s.Max, true, float64(s.Mid))
	return math.Floor(r * (float64(step) / float64(g.grid.MaxKey()) * 2 * s.Roughness / 1000))
}

// put commits v at (x, y) without override and returns the stored value.
func (g *Generator) put(x, y int, v float64) (float64, error) {
	return g.commit(x, y, v, true, false)
}

// putRandom commits a random draw at (x, y) unless the cell is set.
func (g *Generator) putRandom(x, y int) (float64, error) {
	return g.commit(x, y, 0, false, false)
}

// initialize commits the four corners, the centre and the four edge
// midpoints of the whole grid. A 2×2 grid (size 0) has no centre, so only
// its corners are committed.
func (g *Generator) initialize() error {
	m := g.grid.MaxKey()

	var corners [4]float64
	for i, c := range [4]Coord{{0, 0}, {m, 0}, {m, m}, {0, m}} {
		v, err := g.putRandom(c.X, c.Y)
		if err != nil {
			return err
		}
		corners[i] = v
	}
	if m < 2 {
		return nil
	}
	nw, ne, se, sw := corners[0], corners[1], corners[2], corners[3]
	h := m / 2

	center, err := g.put(h, h, (nw+ne+se+sw)/4+g.displace(m))
	if err != nil {
		return err
	}
	edges := []struct {
		at   Coord
		a, b float64
	}{
		{Coord{h, m}, sw, se}, // s
		{Coord{h, 0}, nw, ne}, // n
		{Coord{m, h}, ne, se}, // e
		{Coord{0, h}, nw, sw}, // w
	}
	for _, e := range edges {
		if _, err := g.put(e.at.X, e.at.Y, (e.a+e.b+center+center)/4+g.displace(m)); err != nil {
			return err
		}
	}

	return nil
}

// tile holds the corner values of one square of side s whose south-east
// corner is (i, j).
type tile struct {
	i, j           int
	nw, ne, se, sw float64
}

// tileAt reads the corners of the tile with south-east corner (i, j).
func (g *Generator) tileAt(i, j, s int) tile {
	return tile{
		i: i, j: j,
		nw: g.value(i-s, j-s),
		ne: g.value(i, j-s),
		se: g.value(i, j),
		sw: g.value(i-s, j),
	}
}

// square commits the tile centre: mean of the corners plus displacement.
func (g *Generator) square(t tile, s, step int) (float64, error) {
	h := s / 2
	return g.put(t.i-h, t.j-h, (t.nw+t.ne+t.se+t.sw)/4+g.displace(step))
}

// edge commits one diamond midpoint from its two corners, the tile centre
// and, when far is inside the grid, the far neighbour.
func (g *Generator) edge(at, far Coord, a, b, center float64, step int) error {
	var v float64
	if g.grid.InBounds(far.X, far.Y) {
		v = (a+b+center+g.value(far.X, far.Y))/4 + g.displace(step)
	} else {
		v = (a+b+center)/3 + g.displace(step)
	}
	_, err := g.put(at.X, at.Y, v)

	return err
}

// symmetricLevel runs all square steps of the level, then all diamond
// steps, so every far neighbour read by a diamond step is already set.
func (g *Generator) symmetricLevel(step int) error {
	s := step / 2
	h := s / 2
	dim := g.grid.Dimension()

	for i := s; i < dim; i += s {
		for j := s; j < dim; j += s {
			if _, err := g.square(g.tileAt(i, j, s), s, step); err != nil {
				return err
			}
		}
	}

	for i := s; i < dim; i += s {
		for j := s; j < dim; j += s {
			t := g.tileAt(i, j, s)
			cx, cy := i-h, j-h
			c := g.value(cx, cy)
			sides := []struct {
				at, far Coord
				a, b    float64
			}{
				{Coord{cx, j - s}, Coord{cx, j - s - h}, t.nw, t.ne}, // n
				{Coord{cx, j}, Coord{cx, j + h}, t.sw, t.se},         // s
				{Coord{i, cy}, Coord{i + h, cy}, t.ne, t.se},         // e
				{Coord{i - s, cy}, Coord{i - s - h, cy}, t.nw, t.sw}, // w
			}
			for _, e := range sides {
				if err := g.edge(e.at, e.far, e.a, e.b, c, step); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// legacyLevel processes tiles one at a time, as DiamondSquare.js 0.2 does:
// north and west midpoints look at the far neighbour when it is inside
// the grid, south and east midpoints never do.
func (g *Generator) legacyLevel(step int) error {
	s := step / 2
	h := s / 2
	dim := g.grid.Dimension()
	outside := Coord{-1, -1}

	for i := s; i < dim; i += s {
		for j := s; j < dim; j += s {
			t := g.tileAt(i, j, s)
			cx, cy := i-h, j-h
			c, err := g.square(t, s, step)
			if err != nil {
				return err
			}
			if err := g.edge(Coord{cx, j - s}, Coord{cx, j - s - h}, t.nw, t.ne, c, step); err != nil {
				return err
			}
			if err := g.edge(Coord{cx, j}, outside, t.sw, t.se, c, step); err != nil {
				return err
			}
			if err := g.edge(Coord{i, cy}, outside, t.ne, t.se, c, step); err != nil {
				return err
			}
			if err := g.edge(Coord{i - s, cy}, Coord{i - s - h, cy}, t.nw, t.sw, c, step); err != nil {
				return err
			}
		}
	}

	return nil
}
