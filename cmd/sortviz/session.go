package main

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/san-kum/sortviz/internal/audio"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/gui"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/tui"
	"github.com/san-kum/sortviz/internal/viz"
)

// launch runs one interactive session on the terminal or in a window.
func launch(ctx context.Context, cfg *config.Config, log *slog.Logger, window bool) error {
	opts := session.Options{
		Size:   cfg.Size,
		Min:    cfg.MinValue,
		Max:    cfg.MaxValue,
		Timing: cfg.StepTiming(),
		Frame:  cfg.Timing.Frame,
		Rand:   rand.New(rand.NewSource(cfg.Seeded())),
		Logger: log,
	}

	if cfg.Sound {
		player, err := audio.Start(cfg.MinValue, cfg.MaxValue, log)
		if err != nil {
			log.Warn("sound disabled", "err", err)
		} else {
			defer player.Stop()
			opts.Observers = append(opts.Observers, player)
		}
	}

	th := viz.GetTheme(cfg.Theme)
	open := tui.Opener(tui.Options{
		Title:    cfg.Window.Title,
		Theme:    th,
		MaxValue: cfg.MaxValue,
	})
	if window {
		open = gui.Opener(gui.Options{
			Width:    cfg.WindowWidth(),
			Height:   cfg.Window.Height,
			BarWidth: cfg.Window.BarWidth,
			Title:    cfg.Window.Title,
			Theme:    th,
		})
	}

	log.Debug("session starting", "window", window, "size", cfg.Size, "theme", th.Name)
	return session.Launch(ctx, open, opts)
}
