package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Opener acquires the render surface and input source of one session.
type Opener func() (Renderer, Input, error)

// Launch opens the collaborators, runs the main loop until quit and releases
// them. When opening fails nothing is run. Either failure is logged and
// returned so the caller can go back to its menu.
func Launch(ctx context.Context, open Opener, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	r, in, err := open()
	if err != nil {
		log.Error("session start failed", "err", err)
		return fmt.Errorf("start session: %w", err)
	}
	if err := New(opts, r, in).Run(ctx); err != nil {
		log.Error("session failed", "err", err)
		return fmt.Errorf("session: %w", err)
	}
	return nil
}
