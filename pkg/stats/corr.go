package stats

import "gonum.org/v1/gonum/stat"

// CorrMatrix computes the pairwise Pearson correlation matrix over the given
// columns. The result is square and symmetric with 1 on the diagonal. Zero
// columns yield a 0x0 matrix. Constant columns produce NaN entries, exactly
// as the underlying correlation does.
func CorrMatrix(cols [][]float64) [][]float64 {
	k := len(cols)
	m := make([][]float64, k)
	for i := range m {
		m[i] = make([]float64, k)
		m[i][i] = 1
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			r := stat.Correlation(cols[i], cols[j], nil)
			m[i][j] = r
			m[j][i] = r
		}
	}
	return m
}
