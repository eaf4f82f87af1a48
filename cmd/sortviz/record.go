package main

import (
	"fmt"
	"os"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/viz"
	"github.com/spf13/cobra"
)

func recordGIF(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signalContext()
	defer stop()

	exp, err := experiment.New(experimentConfig(cfg, args[0]))
	if err != nil {
		return err
	}

	rec := export.NewGIFRecorder(export.GIFOptions{
		BarWidth:  gifBarWidth,
		Height:    gifHeight,
		MaxValue:  cfg.MaxValue,
		Theme:     viz.GetTheme(cfg.Theme),
		Every:     every,
		MaxFrames: gifMaxFrame,
		Caption:   exp.Algorithm().Name,
	})
	exp.AddObserver(rec)

	result, err := exp.Run(ctx)
	if err != nil {
		return err
	}
	if err := rec.Save(gifOut); err != nil {
		return err
	}
	fmt.Printf("wrote %s: %d frames of %d steps (%s)\n", gifOut, rec.Frames(), len(result.Steps), result.Outcome)
	return nil
}

func snapshotSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signalContext()
	defer stop()

	exp, err := experiment.New(experimentConfig(cfg, args[0]))
	if err != nil {
		return err
	}
	result, err := exp.Run(ctx)
	if err != nil {
		return err
	}

	th := viz.GetTheme(cfg.Theme)
	frame := sorting.Plain(array.FromValues(result.Output))

	var svg string
	if braille {
		c := viz.NewCanvas(viz.CellsFor(len(result.Output)), svgHeight/4)
		c.DrawFrame(frame, cfg.MaxValue)
		svg = export.CanvasToSVG(c, th, float64(svgBarWidth))
	} else {
		svg = export.FrameToSVG(frame, th, svgBarWidth, svgHeight, cfg.MaxValue)
	}

	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%s, sorted: %v)\n", svgOut, result.Algorithm, result.Sorted)
	return nil
}
