package stats

import (
	"math"
	"sort"
)

// Variance computes the variance of a slice in a single pass.
func Variance(x []float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return 0
	}
	sum, sumSq := 0.0, 0.0
	for _, v := range x {
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	return (sumSq / n) - (mean * mean)
}

// Std computes the standard deviation of a slice.
func Std(x []float64) float64 {
	return math.Sqrt(Variance(x))
}

// MinMax returns the minimum and maximum values in the slice.
func MinMax(x []float64) (float64, float64) {
	if len(x) == 0 {
		return 0, 0
	}
	min, max := x[0], x[0]
	for i := 1; i < len(x); i++ {
		if x[i] < min {
			min = x[i]
		} else if x[i] > max {
			max = x[i]
		}
	}
	return min, max
}

// Percentile returns the p-th percentile value of the slice (0 <= p <= 100).
func Percentile(x []float64, p float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	min, max := MinMax(x)
	if p <= 0 {
		return min
	}
	if p >= 100 {
		return max
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	rank := p / 100 * float64(n-1)
	lower := int(rank)
	upper := lower + 1
	weight := rank - float64(lower)
	if upper >= n {
		return cp[lower]
	}
	return cp[lower]*(1-weight) + cp[upper]*weight
}
