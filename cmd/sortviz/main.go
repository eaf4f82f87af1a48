package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/tui"
	"github.com/san-kum/sortviz/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	size       int
	theme      string
	sound      bool
	verbose    bool
	useGUI     bool

	saveRun   bool
	exportOut string

	gifOut      string
	every       int
	gifBarWidth int
	gifHeight   int
	gifMaxFrame int

	svgOut      string
	svgBarWidth int
	svgHeight   int
	braille     bool
)

// main registers the commands and runs the menu when no subcommand is given.
func main() {
	rootCmd := &cobra.Command{
		Use:           "sortviz",
		Short:         "watch sorting algorithms work, step by step",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runMenu,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".sortviz", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.IntVar(&size, "size", 0, "number of bars")
	pf.StringVar(&theme, "theme", "", "color theme")
	pf.BoolVar(&sound, "sound", false, "play a tone per step")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().BoolVar(&useGUI, "gui", false, "open sessions in a window instead of the terminal")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "open a terminal session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return startSession(cmd, false)
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open a window session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return startSession(cmd, true)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run [algorithm]",
		Short: "sort headless and plot the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().BoolVar(&saveRun, "save", false, "store the run under --data")

	algorithmsCmd := &cobra.Command{
		Use:   "algorithms",
		Short: "list algorithms and their keys",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tNAME\tDESCRIPTION")
			for _, alg := range sorting.Algorithms() {
				fmt.Fprintf(w, "%c\t%s\t%s\n", alg.Key, alg.Name, alg.Description)
			}
			w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets and themes",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("presets:")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-8s %d bars, step %v, swap %v\n", name, p.Size, p.Timing.Step, p.Timing.Swap)
			}
			fmt.Println("themes:")
			for _, name := range viz.ThemeNames() {
				fmt.Printf("  %s\n", name)
			}
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run trace to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&exportOut, "output", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&exportOut, "output", "o", "", "output file (default stdout)")

	recordCmd := &cobra.Command{
		Use:   "record [algorithm]",
		Short: "record a run as an animated GIF",
		Args:  cobra.ExactArgs(1),
		RunE:  recordGIF,
	}
	recordCmd.Flags().StringVarP(&gifOut, "output", "o", "sort.gif", "output file")
	recordCmd.Flags().IntVar(&every, "every", 4, "keep one of every n steps")
	recordCmd.Flags().IntVar(&gifBarWidth, "bar-width", 3, "pixels per bar")
	recordCmd.Flags().IntVar(&gifHeight, "height", 240, "image height")
	recordCmd.Flags().IntVar(&gifMaxFrame, "max-frames", 400, "frames held before thinning")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [algorithm]",
		Short: "write the sorted array as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  snapshotSVG,
	}
	snapshotCmd.Flags().StringVarP(&svgOut, "output", "o", "out.svg", "output file")
	snapshotCmd.Flags().IntVar(&svgBarWidth, "bar-width", 4, "pixels per bar")
	snapshotCmd.Flags().IntVar(&svgHeight, "height", 240, "image height")
	snapshotCmd.Flags().BoolVar(&braille, "braille", false, "draw the terminal canvas as dots")

	compareCmd := &cobra.Command{
		Use:   "compare [algorithm...]",
		Short: "compare algorithms over several sizes and seeds",
		RunE:  compareAlgorithms,
	}
	compareCmd.Flags().IntSliceVar(&compareSizes, "sizes", []int{16, 64, 256}, "array sizes, ascending")
	compareCmd.Flags().IntVar(&compareRuns, "runs", 5, "seeds per size")
	compareCmd.Flags().StringVar(&compareMetric, "metric", "comparisons", "metric to rank by")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a yaml script of headless runs",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	rootCmd.AddCommand(tuiCmd, guiCmd, runCmd, algorithmsCmd, presetsCmd, listCmd, showCmd, exportCSVCmd, exportJSONCmd, recordCmd, snapshotCmd, compareCmd, scenarioCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadConfig layers defaults, preset, config file and explicit flags, in
// that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("size") {
		cfg.Size = size
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("sound") {
		cfg.Sound = sound
	}
	return cfg, cfg.Validate()
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runMenu(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := newLogger()
	return tui.RunMenu(os.Stdin, os.Stdout, perSession(signalContext, func(ctx context.Context) error {
		return launch(ctx, cfg, log, useGUI)
	}))
}

// perSession gives every run its own context, so an interrupt ends only the
// session it arrived in and the signal is released between sessions.
func perSession(newCtx func() (context.Context, context.CancelFunc), run func(context.Context) error) func() error {
	return func() error {
		ctx, stop := newCtx()
		defer stop()
		return run(ctx)
	}
}

func startSession(cmd *cobra.Command, window bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signalContext()
	defer stop()
	return launch(ctx, cfg, newLogger(), window)
}
