package diamondsquare

// SetOuterWater pins the first and last rows and columns to level, the
// "Outer water" preset of the DiamondSquare.js demo: the terrain sinks
// towards every border, which reads as an island once rendered.
func (g *Generator) SetOuterWater(level float64) error {
	border := map[string]float64{"first": level, "last": level}
	if err := g.SetColumns(border, true); err != nil {
		return err
	}
	return g.SetRows(border, true)
}
