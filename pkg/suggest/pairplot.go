package suggest

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/samaTech-sys/Predictive-Policing-Advisory/pkg/dataset"
	"github.com/samaTech-sys/Predictive-Policing-Advisory/pkg/render"
	"github.com/samaTech-sys/Predictive-Policing-Advisory/pkg/stats"
)

// PairPlot renders an all-pairs scatter grid over the numeric columns with a
// density curve on the diagonal, colored per target class when the target
// column exists.
type PairPlot struct {
	// OutDir is where pairplot.png is written. Defaults to the working directory.
	OutDir string
	// Out receives the advisory lines. Defaults to stdout.
	Out io.Writer
}

// PairPlotFile is the name of the rendered grid image.
const PairPlotFile = "pairplot.png"

// PairPlotTitle is the grid-level title, carried on the top-center cell.
const PairPlotTitle = "Pairwise Relationships - Model Suggestion"

// Suggest renders the grid and prints the pairplot advisory lines.
func (s *PairPlot) Suggest(df dataframe.DataFrame, target string) error {
	names, cols := dataset.NumericColumns(df)

	if len(names) > 0 {
		plots, err := pairGrid(df, names, cols, target)
		if err != nil {
			return err
		}
		path := filepath.Join(dirOrDot(s.OutDir), PairPlotFile)
		if err := render.SaveGrid(plots, 2.5*vg.Inch, path); err != nil {
			return err
		}
	}

	w := writerOrStdout(s.Out)
	fmt.Fprintln(w, "Model Suggestions based on PairPlots:")
	fmt.Fprintln(w, "- If clear separation in target classes visible: Consider classification models")
	fmt.Fprintln(w, "- If linear relationships visible: Consider linear models")
	fmt.Fprintln(w, "- If complex non-linear patterns: Consider tree-based or neural network models")
	return nil
}

// pairGrid builds the k-by-k cell plots: density curves on the diagonal,
// per-class scatters elsewhere, axis labels on the outer edges only, the
// grid title on the top-center cell and a class legend in the top-right
// cell when the plot is colored by target.
func pairGrid(df dataframe.DataFrame, names []string, cols [][]float64, target string) ([][]*plot.Plot, error) {
	k := len(names)
	labels, groups := classGroups(df, target)

	plots := make([][]*plot.Plot, k)
	for i := 0; i < k; i++ {
		plots[i] = make([]*plot.Plot, k)
		for j := 0; j < k; j++ {
			p := plot.New()
			if i == k-1 {
				p.X.Label.Text = names[j]
			}
			if j == 0 {
				p.Y.Label.Text = names[i]
			}
			var err error
			if i == j {
				err = addDensity(p, cols[i])
			} else {
				err = addPairScatter(p, cols[j], cols[i], groups)
			}
			if err != nil {
				return nil, fmt.Errorf("pairplot cell (%s, %s): %w", names[j], names[i], err)
			}
			plots[i][j] = p
		}
	}

	plots[0][(k-1)/2].Title.Text = PairPlotTitle

	if len(labels) > 1 {
		top := plots[0][k-1]
		for g, lbl := range labels {
			sw, err := render.Scatter(nil, nil, render.ClassColor(g))
			if err != nil {
				return nil, fmt.Errorf("pairplot legend: %w", err)
			}
			top.Legend.Add(lbl, sw)
		}
		top.Legend.Top = true
	}
	return plots, nil
}

// classGroups splits row indices by target value, in order of first
// appearance. A missing or empty target yields a single unnamed group
// covering every row.
func classGroups(df dataframe.DataFrame, target string) (labels []string, groups [][]int) {
	if target == "" || !dataset.HasColumn(df, target) {
		all := make([]int, df.Nrow())
		for i := range all {
			all[i] = i
		}
		return []string{""}, [][]int{all}
	}
	recs := df.Col(target).Records()
	index := map[string]int{}
	for i, v := range recs {
		g, ok := index[v]
		if !ok {
			g = len(labels)
			index[v] = g
			labels = append(labels, v)
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], i)
	}
	return labels, groups
}

func addPairScatter(p *plot.Plot, x, y []float64, groups [][]int) error {
	for g, rows := range groups {
		gx := make([]float64, 0, len(rows))
		gy := make([]float64, 0, len(rows))
		for _, r := range rows {
			if r < len(x) && r < len(y) {
				gx = append(gx, x[r])
				gy = append(gy, y[r])
			}
		}
		sc, err := render.Scatter(gx, gy, render.ClassColor(g))
		if err != nil {
			return err
		}
		p.Add(sc)
	}
	return nil
}

func addDensity(p *plot.Plot, col []float64) error {
	kde := stats.NewKDE(col)
	f := plotter.NewFunction(kde.Estimate)
	f.Samples = 200
	f.LineStyle.Width = vg.Points(1.5)
	f.LineStyle.Color = render.ClassColor(1)
	p.Add(f)

	// Pad the axis range so the curve tails are visible.
	lo, hi := stats.MinMax(col)
	pad := kde.Bandwidth() * 3
	p.X.Min = lo - pad
	p.X.Max = hi + pad
	return nil
}
