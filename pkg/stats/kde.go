package stats

import "math"

// KDE is a Gaussian kernel density estimator over a fixed sample.
type KDE struct {
	sample    []float64
	bandwidth float64
}

// NewKDE builds an estimator with Silverman's rule-of-thumb bandwidth.
func NewKDE(sample []float64) *KDE {
	n := float64(len(sample))
	bw := 1.0
	if n > 0 {
		sd := Std(sample)
		iqr := Percentile(sample, 75) - Percentile(sample, 25)
		spread := sd
		if iqr > 0 && iqr/1.34 < spread {
			spread = iqr / 1.34
		}
		if spread > 0 {
			bw = 0.9 * spread * math.Pow(n, -0.2)
		}
	}
	return &KDE{sample: sample, bandwidth: bw}
}

// Bandwidth returns the kernel bandwidth in use.
func (k *KDE) Bandwidth() float64 { return k.bandwidth }

// Estimate returns the density estimate at x.
func (k *KDE) Estimate(x float64) float64 {
	n := float64(len(k.sample))
	if n == 0 {
		return 0
	}
	const invSqrt2Pi = 0.3989422804014327
	sum := 0.0
	for _, xi := range k.sample {
		u := (x - xi) / k.bandwidth
		sum += invSqrt2Pi * math.Exp(-0.5*u*u)
	}
	return sum / (n * k.bandwidth)
}
