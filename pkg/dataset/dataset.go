// Package dataset loads tabular data and exposes the column views the
// analysis strategies work on. The caller owns the data; nothing here
// mutates it.
package dataset

import (
	"fmt"
	"io"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// ReadCSV parses CSV data from r into a dataframe with type detection.
// Columns that fail detection fall back to strings.
func ReadCSV(r io.Reader) (dataframe.DataFrame, error) {
	df := dataframe.ReadCSV(r,
		dataframe.DetectTypes(true),
		dataframe.DefaultType(series.String),
		dataframe.HasHeader(true),
	)
	if df.Err != nil {
		return df, fmt.Errorf("read csv: %w", df.Err)
	}
	return df, nil
}

// ReadCSVFile opens path and parses it with ReadCSV.
func ReadCSVFile(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// NumericColumns returns the names and values of all int and float columns,
// in dataframe order. Both slices are nil when no column is numeric.
func NumericColumns(df dataframe.DataFrame) ([]string, [][]float64) {
	var names []string
	var cols [][]float64
	colNames := df.Names()
	for i, t := range df.Types() {
		if t != series.Int && t != series.Float {
			continue
		}
		names = append(names, colNames[i])
		cols = append(cols, df.Col(colNames[i]).Float())
	}
	return names, cols
}

// HasColumn reports whether the dataframe has a column with the given name.
func HasColumn(df dataframe.DataFrame, name string) bool {
	for _, n := range df.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Column returns the named column as floats. The second return is false when
// the column does not exist.
func Column(df dataframe.DataFrame, name string) ([]float64, bool) {
	if !HasColumn(df, name) {
		return nil, false
	}
	return df.Col(name).Float(), true
}
