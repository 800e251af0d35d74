// Package suggest implements the model-suggestion strategies: interchangeable
// visualizations over a dataset that each render a chart and print fixed
// advisory lines to help an analyst pick a model family before training.
package suggest

import (
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
)

// Strategy produces one visualization from a dataset. The target column name
// is optional; a name that does not match any column is treated the same as
// no target. Strategies hold no per-call state and may be reused.
type Strategy interface {
	Suggest(df dataframe.DataFrame, target string) error
}

// Suggester holds the active strategy and delegates execution to it.
// The strategy can be swapped at any time between calls.
type Suggester struct {
	strategy Strategy
}

// NewSuggester returns a Suggester using the given strategy.
func NewSuggester(s Strategy) *Suggester {
	return &Suggester{strategy: s}
}

// SetStrategy replaces the active strategy.
func (m *Suggester) SetStrategy(s Strategy) {
	m.strategy = s
}

// Execute runs the active strategy on the dataset.
func (m *Suggester) Execute(df dataframe.DataFrame, target string) error {
	return m.strategy.Suggest(df, target)
}

func writerOrStdout(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

func dirOrDot(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}
