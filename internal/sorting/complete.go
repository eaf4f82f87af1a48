package sorting

import (
	"context"

	"github.com/san-kum/sortviz/internal/array"
)

const flashes = 3

// Complete plays the post-sort confirmation: a left-to-right sweep marking
// each index confirmed, then three flashes of the whole array. It reads the
// array but never writes it, and stops at its next step once ctx is done.
func Complete(ctx context.Context, a *array.Array, d Driver, timing Timing) {
	for i := 0; i < a.Len() && ctx.Err() == nil; i++ {
		d.Poll()
		d.Frame(Frame{Kind: KindConfirm, Highlight: NoHighlight, Confirmed: i, Array: a})
		d.Pause(timing.Sweep)
	}

	for f := 0; f < flashes && ctx.Err() == nil; f++ {
		d.Poll()
		d.Frame(Frame{Kind: KindFlash, Highlight: NoHighlight, Confirmed: -1, Array: a})
		d.Pause(timing.Flash)

		d.Frame(Plain(a))
		d.Pause(timing.Flash)
	}
}
