package sorting

import (
	"context"
	"time"

	"github.com/san-kum/sortviz/internal/array"
)

// stepper is the per-invocation state shared by every algorithm.
type stepper struct {
	ctx    context.Context
	a      *array.Array
	d      Driver
	timing Timing
}

func (s *stepper) live() bool { return s.ctx.Err() == nil }

func (s *stepper) emit(f Frame, delay time.Duration) {
	f.Array = s.a
	if f.Kind != KindConfirm {
		f.Confirmed = -1
	}
	s.d.Frame(f)
	s.d.Pause(delay)
}

func (s *stepper) compare(h Highlight, n int) {
	s.emit(Frame{Kind: KindCompare, Highlight: h, Comparisons: n}, s.timing.Step)
}

func (s *stepper) swap(i, j int, h Highlight, comparisons int, delay time.Duration) {
	s.a.Swap(i, j)
	s.emit(Frame{Kind: KindSwap, Highlight: h, Comparisons: comparisons, Writes: 2}, delay)
}

func (s *stepper) write(i, v int, h Highlight, comparisons int) {
	s.a.Set(i, v)
	s.emit(Frame{Kind: KindWrite, Highlight: h, Comparisons: comparisons, Writes: 1}, s.timing.Step)
}

// Run executes one algorithm invocation over a. The context is the
// cancellation token: it is checked at every loop condition and cancelling
// it leaves a in whatever partial state it reached. On a run that was never
// cancelled the completion animation follows the sort.
func Run(ctx context.Context, alg Algorithm, a *array.Array, d Driver, timing Timing) Outcome {
	s := &stepper{ctx: ctx, a: a, d: d, timing: timing}
	alg.sort(s)
	if !s.live() {
		return Cancelled
	}
	Complete(ctx, a, d, timing)
	if !s.live() {
		return Cancelled
	}
	return Completed
}
