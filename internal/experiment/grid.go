package experiment

import (
	"context"
	"fmt"
	"math"
)

// Cell is the ensemble summary of one algorithm at one size.
type Cell struct {
	Algorithm string
	Size      int
	Runs      int
	Mean      map[string]float64
	AllSorted bool
}

// Grid runs an ensemble for every algorithm and size pair, in algorithm
// then size order. Every cell uses the same seeds so the inputs match.
func Grid(ctx context.Context, base Config, algorithms []string, sizes []int, runs int, seedStart int64) ([]Cell, error) {
	if runs < 1 {
		return nil, fmt.Errorf("experiment: need at least one run per cell, got %d", runs)
	}
	cells := make([]Cell, 0, len(algorithms)*len(sizes))
	for _, alg := range algorithms {
		for _, n := range sizes {
			if err := ctx.Err(); err != nil {
				return cells, err
			}

			cfg := base
			cfg.Algorithm = alg
			cfg.Size = n
			cfg.Values = nil

			results, err := NewEnsemble(cfg, runs, seedStart).Run(ctx)
			if err != nil {
				return cells, err
			}

			cell := Cell{Algorithm: results[0].Algorithm, Size: n, Runs: runs, Mean: Mean(results), AllSorted: true}
			for _, r := range results {
				cell.AllSorted = cell.AllSorted && r.Sorted
			}
			cells = append(cells, cell)
		}
	}
	return cells, nil
}

// Best returns the cell with the lowest mean metric at size.
func Best(cells []Cell, size int, metric string) (Cell, bool) {
	best := math.Inf(1)
	var out Cell
	found := false
	for _, c := range cells {
		if c.Size != size {
			continue
		}
		if v, ok := c.Mean[metric]; ok && v < best {
			best = v
			out = c
			found = true
		}
	}
	return out, found
}
