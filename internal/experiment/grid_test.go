package experiment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsembleUsesConsecutiveSeeds(t *testing.T) {
	cfg := Config{Algorithm: "insertion", Size: 12, Min: 1, Max: 50}
	results, err := NewEnsemble(cfg, 3, 10).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		cfg.Seed = 10 + int64(i)
		e, err := New(cfg)
		require.NoError(t, err)
		assert.Equal(t, e.Input().Values(), r.Input)
		assert.True(t, r.Sorted)
	}
}

func TestEnsemblePropagatesErrors(t *testing.T) {
	_, err := NewEnsemble(Config{Algorithm: "nope", Size: 4, Max: 9}, 2, 0).Run(context.Background())
	assert.Error(t, err)
}

func TestMean(t *testing.T) {
	results := []*Result{
		{Metrics: map[string]float64{"comparisons": 2, "writes": 1}},
		{Metrics: map[string]float64{"comparisons": 4, "writes": 3}},
	}
	assert.Equal(t, map[string]float64{"comparisons": 3, "writes": 2}, Mean(results))
	assert.Empty(t, Mean(nil))
}

func TestGridAndBest(t *testing.T) {
	base := Config{Min: 1, Max: 1000}
	cells, err := Grid(context.Background(), base, []string{"bubble", "merge"}, []int{8, 64}, 2, 1)
	require.NoError(t, err)
	require.Len(t, cells, 4)

	assert.Equal(t, "bubble", cells[0].Algorithm)
	assert.Equal(t, 8, cells[0].Size)
	assert.Equal(t, "merge", cells[3].Algorithm)
	assert.Equal(t, 64, cells[3].Size)
	for _, c := range cells {
		assert.True(t, c.AllSorted)
		assert.Equal(t, 2, c.Runs)
	}

	// bubble always makes n(n-1)/2 comparisons
	assert.Equal(t, 2016.0, cells[1].Mean["comparisons"])

	best, ok := Best(cells, 64, "comparisons")
	require.True(t, ok)
	assert.Equal(t, "merge", best.Algorithm)

	_, ok = Best(cells, 5, "comparisons")
	assert.False(t, ok)
}

func TestGridStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cells, err := Grid(ctx, Config{Min: 1, Max: 9}, []string{"heap"}, []int{4}, 1, 0)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, cells)
}
