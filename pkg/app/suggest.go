package app

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/samaTech-sys/Predictive-Policing-Advisory/pkg/dataset"
	"github.com/samaTech-sys/Predictive-Policing-Advisory/pkg/suggest"
)

var (
	inputPath    string
	targetColumn string
	strategyName string
	outDir       string

	suggestCmd = &cobra.Command{
		Use:   "suggest",
		Short: "Render a visualization and print model-family advice",
		RunE:  runSuggest,
	}
)

func init() {
	suggestCmd.Flags().StringVar(&inputPath, "input", "", "path to the CSV dataset (required)")
	suggestCmd.Flags().StringVar(&targetColumn, "target", "", "target column used to color the pairwise plot")
	suggestCmd.Flags().StringVar(&strategyName, "strategy", "", "pairplot, heatmap, dist or all")
	suggestCmd.Flags().StringVar(&outDir, "out", "", "directory for the rendered PNG files")
	_ = suggestCmd.MarkFlagRequired("input")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	name := strategyName
	if name == "" {
		name = viper.GetString("strategy")
	}
	dir := outDir
	if dir == "" {
		dir = viper.GetString("out")
	}

	df, err := dataset.ReadCSVFile(inputPath)
	if err != nil {
		return err
	}

	if name == "all" {
		// The original flow: run one suggester and swap strategies on it.
		sug := suggest.NewSuggester(&suggest.PairPlot{OutDir: dir})
		if err := sug.Execute(df, targetColumn); err != nil {
			return err
		}
		sug.SetStrategy(&suggest.Heatmap{OutDir: dir})
		if err := sug.Execute(df, targetColumn); err != nil {
			return err
		}
		sug.SetStrategy(&suggest.Distributions{OutDir: dir})
		return sug.Execute(df, targetColumn)
	}

	st, err := strategyFor(name, dir)
	if err != nil {
		return err
	}
	return suggest.NewSuggester(st).Execute(df, targetColumn)
}

// strategyFor maps a strategy name to a ready-to-run strategy writing its
// chart files under dir.
func strategyFor(name, dir string) (suggest.Strategy, error) {
	switch name {
	case "pairplot":
		return &suggest.PairPlot{OutDir: dir}, nil
	case "heatmap":
		return &suggest.Heatmap{OutDir: dir}, nil
	case "dist":
		return &suggest.Distributions{OutDir: dir}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q (want pairplot, heatmap, dist or all)", name)
	}
}
