package dataset

import (
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFrame() dataframe.DataFrame {
	return dataframe.LoadRecords([][]string{
		{"age", "thefts", "region"},
		{"20", "1", "central"},
		{"30", "2", "kawempe"},
		{"40", "4", "central"},
	})
}

func TestReadCSV(t *testing.T) {
	csv := "age,thefts,region\n20,1,central\n30,2,kawempe\n40,4,central\n"
	df, err := ReadCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 3, df.Nrow())
	assert.Equal(t, 3, df.Ncol())
	assert.Equal(t, []string{"age", "thefts", "region"}, df.Names())
}

func TestReadCSVMalformed(t *testing.T) {
	csv := "age,thefts\n20,1,extra\n"
	_, err := ReadCSV(strings.NewReader(csv))
	assert.Error(t, err)
}

func TestReadCSVFileMissing(t *testing.T) {
	_, err := ReadCSVFile("no/such/file.csv")
	assert.Error(t, err)
}

func TestNumericColumns(t *testing.T) {
	names, cols := NumericColumns(sampleFrame())
	require.Equal(t, []string{"age", "thefts"}, names)
	require.Len(t, cols, 2)
	assert.Equal(t, []float64{20, 30, 40}, cols[0])
	assert.Equal(t, []float64{1, 2, 4}, cols[1])
}

func TestNumericColumnsNone(t *testing.T) {
	df := dataframe.LoadRecords([][]string{
		{"region", "division"},
		{"central", "a"},
		{"kawempe", "b"},
	})
	names, cols := NumericColumns(df)
	assert.Nil(t, names)
	assert.Nil(t, cols)
}

func TestHasColumn(t *testing.T) {
	df := sampleFrame()
	assert.True(t, HasColumn(df, "region"))
	assert.False(t, HasColumn(df, "target"))
}

func TestColumn(t *testing.T) {
	df := sampleFrame()
	vals, ok := Column(df, "thefts")
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 4}, vals)

	_, ok = Column(df, "missing")
	assert.False(t, ok)
}
