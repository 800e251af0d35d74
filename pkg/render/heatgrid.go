package render

// CorrGrid adapts a square matrix to plotter.GridXYZ so it can be drawn as a
// heatmap. Cell (c, r) sits at unit coordinates (c, r).
type CorrGrid struct {
	M [][]float64
}

// Dims returns the number of columns and rows in the grid.
func (g CorrGrid) Dims() (c, r int) {
	r = len(g.M)
	if r > 0 {
		c = len(g.M[0])
	}
	return c, r
}

// Z returns the matrix value at column c, row r.
func (g CorrGrid) Z(c, r int) float64 { return g.M[r][c] }

// X returns the coordinate of column c.
func (g CorrGrid) X(c int) float64 { return float64(c) }

// Y returns the coordinate of row r.
func (g CorrGrid) Y(r int) float64 { return float64(r) }
