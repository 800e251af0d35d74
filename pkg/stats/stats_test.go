package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStd(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 2.0, Std(x), 1e-12)
}

func TestStdEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Std(nil))
}

func TestMinMax(t *testing.T) {
	lo, hi := MinMax([]float64{3, -1, 7, 0})
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 7.0, hi)
}

func TestPercentile(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	assert.InDelta(t, 3.0, Percentile(x, 50), 1e-12)
	assert.InDelta(t, 1.0, Percentile(x, 0), 1e-12)
	assert.InDelta(t, 5.0, Percentile(x, 100), 1e-12)
	assert.InDelta(t, 2.0, Percentile(x, 25), 1e-12)
}

func TestCorrMatrixProperties(t *testing.T) {
	cols := [][]float64{
		{1, 2, 3, 4, 5},
		{2, 1, 4, 3, 6},
		{5, 3, 1, 4, 2},
	}
	m := CorrMatrix(cols)
	require.Len(t, m, 3)
	for i := range m {
		require.Len(t, m[i], 3)
		assert.InDelta(t, 1.0, m[i][i], 1e-12)
		for j := range m[i] {
			assert.InDelta(t, m[j][i], m[i][j], 1e-12)
			assert.LessOrEqual(t, m[i][j], 1.0+1e-12)
			assert.GreaterOrEqual(t, m[i][j], -1.0-1e-12)
		}
	}
}

func TestCorrMatrixKnownValue(t *testing.T) {
	// age vs thefts from the sample dataset: r is roughly 0.982.
	age := []float64{20, 30, 40}
	thefts := []float64{1, 2, 4}
	m := CorrMatrix([][]float64{age, thefts})
	require.Len(t, m, 2)
	assert.InDelta(t, 1.0, m[0][0], 1e-9)
	assert.InDelta(t, 1.0, m[1][1], 1e-9)
	assert.InDelta(t, 0.982, m[0][1], 1e-3)
	assert.InDelta(t, m[0][1], m[1][0], 1e-12)
}

func TestCorrMatrixEmpty(t *testing.T) {
	m := CorrMatrix(nil)
	assert.Len(t, m, 0)
}

func TestCorrMatrixConstantColumnIsNaN(t *testing.T) {
	m := CorrMatrix([][]float64{{1, 1, 1}, {1, 2, 3}})
	assert.True(t, math.IsNaN(m[0][1]))
	assert.True(t, math.IsNaN(m[1][0]))
}

func TestKDE(t *testing.T) {
	sample := []float64{-0.5, -0.2, 0, 0.1, 0.3, 0.6}
	kde := NewKDE(sample)
	require.Greater(t, kde.Bandwidth(), 0.0)

	near := kde.Estimate(0.05)
	far := kde.Estimate(10)
	assert.Greater(t, near, 0.0)
	assert.Less(t, far, near)
}

func TestKDEEmptySample(t *testing.T) {
	kde := NewKDE(nil)
	assert.Equal(t, 0.0, kde.Estimate(1))
}
