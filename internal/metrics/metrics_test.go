package metrics

import (
	"testing"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/stretchr/testify/assert"
)

func frames() []sorting.Frame {
	a := array.FromValues([]int{1, 2})
	return []sorting.Frame{
		{Kind: sorting.KindCompare, Comparisons: 1, Array: a},
		{Kind: sorting.KindSwap, Comparisons: 1, Writes: 2, Array: a},
		{Kind: sorting.KindWrite, Writes: 1, Array: a},
		{Kind: sorting.KindConfirm, Confirmed: 0, Array: a},
		{Kind: sorting.KindFlash, Array: a},
		sorting.Plain(a),
	}
}

func TestCounters(t *testing.T) {
	ms := Defaults()
	for _, f := range frames() {
		for _, m := range ms {
			m.Observe(f)
		}
	}

	snap := Snapshot(ms)
	assert.Equal(t, map[string]float64{
		"comparisons": 2,
		"writes":      3,
		"steps":       3,
	}, snap)
}

func TestReset(t *testing.T) {
	for _, m := range Defaults() {
		for _, f := range frames() {
			m.Observe(f)
		}
		m.Reset()
		assert.Zero(t, m.Value(), m.Name())
	}
}
