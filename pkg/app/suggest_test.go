package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samaTech-sys/Predictive-Policing-Advisory/pkg/suggest"
)

func TestStrategyFor(t *testing.T) {
	st, err := strategyFor("pairplot", "out")
	require.NoError(t, err)
	pp, ok := st.(*suggest.PairPlot)
	require.True(t, ok)
	assert.Equal(t, "out", pp.OutDir)

	st, err = strategyFor("heatmap", "out")
	require.NoError(t, err)
	assert.IsType(t, &suggest.Heatmap{}, st)

	st, err = strategyFor("dist", "out")
	require.NoError(t, err)
	assert.IsType(t, &suggest.Distributions{}, st)
}

func TestStrategyForUnknown(t *testing.T) {
	_, err := strategyFor("tsne", ".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown strategy")
}

func TestSuggestRequiresInput(t *testing.T) {
	rootCmd.SetArgs([]string{"suggest"})
	err := rootCmd.Execute()
	require.Error(t, err)
}
