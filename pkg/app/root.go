// Package app wires the advisory command line on top of the suggestion
// strategies.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "advisory",
		Short: "Exploratory analysis aid for the theft-prediction project",
		Long: `advisory renders pairwise feature plots, correlation heatmaps and
feature histograms from a tabular dataset, and prints heuristic advice to
help pick a model family before training.

Examples:
  # Pairwise scatter grid colored by the target column
  advisory suggest --input thefts.csv --target thefts

  # Correlation heatmap of the numeric columns
  advisory suggest --input thefts.csv --strategy heatmap

  # Run every strategy in sequence
  advisory suggest --input thefts.csv --target thefts --strategy all`,
		SilenceUsage: true,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.advisory.yaml)")
	rootCmd.AddCommand(suggestCmd)
}

// initConfig loads defaults from file and environment. Precedence is
// flags > env (ADVISORY_*) > config file > built-in defaults.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".advisory")
			viper.SetConfigType("yaml")
		}
	}

	viper.SetEnvPrefix("ADVISORY")
	viper.AutomaticEnv()

	viper.SetDefault("out", ".")
	viper.SetDefault("strategy", "pairplot")

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is worth a notice.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "advisory: cannot read config %s: %v\n", cfgFile, err)
		}
	}
}
