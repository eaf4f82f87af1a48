package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/spf13/cobra"
)

var (
	compareSizes  []int
	compareRuns   int
	compareMetric string
)

func compareAlgorithms(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signalContext()
	defer stop()

	algs := args
	if len(algs) == 0 {
		algs = sorting.Names()
	}
	if len(compareSizes) == 0 {
		return fmt.Errorf("no sizes given")
	}

	base := experimentConfig(cfg, "")
	cells, err := experiment.Grid(ctx, base, algs, compareSizes, compareRuns, cfg.Seeded())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ALGORITHM\tSIZE\tCOMPARISONS\tWRITES\tSTEPS\tSORTED\n")
	for _, c := range cells {
		fmt.Fprintf(w, "%s\t%d\t%.1f\t%.1f\t%.1f\t%v\n",
			c.Algorithm, c.Size, c.Mean["comparisons"], c.Mean["writes"], c.Mean["steps"], c.AllSorted)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	largest := compareSizes[len(compareSizes)-1]
	if best, ok := experiment.Best(cells, largest, compareMetric); ok {
		fmt.Printf("\nfewest %s at %d bars: %s (%.1f)\n", compareMetric, largest, best.Algorithm, best.Mean[compareMetric])
	}

	if len(compareSizes) < 2 {
		return nil
	}
	series := make([][]float64, 0, len(algs))
	for i := range algs {
		row := make([]float64, len(compareSizes))
		for j := range compareSizes {
			row[j] = cells[i*len(compareSizes)+j].Mean[compareMetric]
		}
		series = append(series, row)
	}
	fmt.Println()
	fmt.Println(asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Width(60),
		asciigraph.Caption(fmt.Sprintf("mean %s by size %v", compareMetric, compareSizes)),
	))
	return nil
}
