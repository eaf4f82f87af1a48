package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortviz/internal/automation"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/storage"
	"github.com/spf13/cobra"
)

func experimentConfig(cfg *config.Config, algorithm string) experiment.Config {
	return experiment.Config{
		Algorithm: algorithm,
		Size:      cfg.Size,
		Min:       cfg.MinValue,
		Max:       cfg.MaxValue,
		Seed:      cfg.Seeded(),
		Timing:    cfg.StepTiming(),
	}
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger()
	ctx, stop := signalContext()
	defer stop()

	ecfg := experimentConfig(cfg, args[0])
	exp, err := experiment.New(ecfg)
	if err != nil {
		return err
	}

	fmt.Printf("running %s sort on %d bars...\n", exp.Algorithm().Name, cfg.Size)
	result, err := exp.Run(ctx)
	if err != nil {
		return err
	}
	log.Debug("run finished", "algorithm", result.Algorithm, "steps", len(result.Steps), "elapsed", result.Elapsed)

	fmt.Println(plot(ints(result.Input), "input"))
	fmt.Println()
	fmt.Println(plot(ints(result.Output), "output"))
	fmt.Println()

	fmt.Printf("outcome: %s (sorted: %v)\n", result.Outcome, result.Sorted)
	fmt.Printf("steps: %d\n", len(result.Steps))
	fmt.Printf("computed in %v, animates in %v\n", result.Elapsed, result.Presentation)
	printMetrics(result.Metrics)

	if !saveRun {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(ecfg, result)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nmetrics:")
	for _, name := range names {
		fmt.Printf("  %s: %.0f\n", name, m[name])
	}
}

func plot(data []float64, caption string) string {
	if len(data) == 0 {
		return caption + ": no data"
	}
	return asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
}

func ints(v []int) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tALGORITHM\tTIME\tSIZE\tSTEPS\tCOMPARISONS\tWRITES\tOUTCOME")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.0f\t%.0f\t%s\n",
			run.ID,
			run.Algorithm,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Size,
			run.Steps,
			run.Metrics["comparisons"],
			run.Metrics["writes"],
			run.Outcome,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	steps, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("algorithm: %s\n", meta.Algorithm)
	fmt.Printf("size: %d  seed: %d  outcome: %s\n", meta.Size, meta.Seed, meta.Outcome)
	fmt.Printf("steps: %d\n\n", len(steps))

	comparisons := make([]float64, len(steps))
	writes := make([]float64, len(steps))
	for i, s := range steps {
		comparisons[i] = float64(s.Comparisons)
		writes[i] = float64(s.Writes)
	}

	fmt.Println(asciigraph.PlotMany([][]float64{comparisons, writes},
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
		asciigraph.Caption("comparisons (red) and writes (blue) over steps"),
	))
	fmt.Println()
	fmt.Println(plot(ints(meta.Output), "final array"))
	printMetrics(meta.Metrics)
	return nil
}

// outputWriter opens --output, or stdout when it is empty.
func outputWriter() (io.Writer, func() error, error) {
	if exportOut == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(exportOut)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	w, done, err := outputWriter()
	if err != nil {
		return err
	}
	if err := storage.New(dataDir).ExportCSV(args[0], w); err != nil {
		done()
		return err
	}
	return done()
}

func exportJSON(cmd *cobra.Command, args []string) error {
	w, done, err := outputWriter()
	if err != nil {
		return err
	}
	if err := storage.New(dataDir).ExportJSON(args[0], w); err != nil {
		done()
		return err
	}
	return done()
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	ctx, stop := signalContext()
	defer stop()

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("scenario %s: %s\n", sc.Name, sc.Description)
	results, err := automation.RunScenario(ctx, sc, experimentConfig(cfg, ""), st, newLogger())
	for i, r := range results {
		res := r.Result
		fmt.Printf("  %d. %-10s n=%-5d cmp=%-8.0f wr=%-8.0f %s", i+1, res.Algorithm, len(res.Input), res.Metrics["comparisons"], res.Metrics["writes"], res.Outcome)
		if r.RunID != "" {
			fmt.Printf("  saved %s", r.RunID)
		}
		fmt.Println()
	}
	return err
}
