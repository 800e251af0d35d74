package suggest

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"github.com/wcharczuk/go-chart/v2"

	"github.com/samaTech-sys/Predictive-Policing-Advisory/pkg/dataset"
	"github.com/samaTech-sys/Predictive-Policing-Advisory/pkg/stats"
)

// Distributions renders a histogram per numeric column so the analyst can
// judge skew and scale before picking a model family.
type Distributions struct {
	// OutDir is where the <column>_hist.png files are written.
	OutDir string
	// Out receives the advisory lines. Defaults to stdout.
	Out io.Writer
	// Bins overrides the Sturges bin count when positive.
	Bins int
}

// Suggest renders one histogram per numeric column and prints the
// distribution advisory lines.
func (s *Distributions) Suggest(df dataframe.DataFrame, target string) error {
	names, cols := dataset.NumericColumns(df)
	for i, name := range names {
		if len(cols[i]) == 0 {
			continue
		}
		path := filepath.Join(dirOrDot(s.OutDir), name+"_hist.png")
		if err := s.renderHistogram(name, cols[i], path); err != nil {
			return fmt.Errorf("histogram %s: %w", name, err)
		}
	}

	w := writerOrStdout(s.Out)
	fmt.Fprintln(w, "Model Suggestions based on Distributions:")
	fmt.Fprintln(w, "- Heavily skewed features: Consider log transforms or tree-based models")
	fmt.Fprintln(w, "- Features on very different scales: Consider scaling before linear models")
	fmt.Fprintln(w, "- Multi-modal distributions: Consider mixture or tree-based models")
	return nil
}

func (s *Distributions) renderHistogram(name string, col []float64, path string) error {
	counts, edges := histogram(col, s.bins(len(col)))
	if len(counts) == 0 {
		// Every value was missing; there is no distribution to draw.
		return nil
	}
	bars := make([]chart.Value, len(counts))
	for i, c := range counts {
		bars[i] = chart.Value{
			Value: float64(c),
			Label: fmt.Sprintf("%.3g", edges[i]),
		}
	}

	graph := chart.BarChart{
		Title:    fmt.Sprintf("Distribution of %s", name),
		Height:   512,
		BarWidth: 40,
		Bars:     bars,
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := graph.Render(chart.PNG, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (s *Distributions) bins(n int) int {
	if s.Bins > 0 {
		return s.Bins
	}
	return sturges(n)
}

// sturges returns the Sturges bin count: ceil(log2 n) + 1.
func sturges(n int) int {
	bins := 1
	for p := 1; p < n; p *= 2 {
		bins++
	}
	return bins
}

// histogram bins the finite values of col into equal-width buckets and
// returns per-bucket counts along with the lower edge of each bucket. NaN
// entries (how gota represents missing cells) and infinities are skipped; a
// column with no finite values yields nil slices. A constant column
// collapses into a single bucket.
func histogram(col []float64, bins int) ([]int, []float64) {
	vals := make([]float64, 0, len(col))
	for _, v := range col {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return nil, nil
	}

	lo, hi := stats.MinMax(vals)
	if hi == lo {
		return []int{len(vals)}, []float64{lo}
	}
	if bins < 1 {
		bins = 1
	}
	counts := make([]int, bins)
	edges := make([]float64, bins)
	width := (hi - lo) / float64(bins)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	for _, v := range vals {
		b := int((v - lo) / width)
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}
	return counts, edges
}
