package sorting_test

import (
	"context"
	"time"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/sorting"
)

// recorder is a headless driver. With cancelAfter > 0 it cancels the run on
// that poll, the way a quit key arriving mid-sort does.
type recorder struct {
	cancel      context.CancelFunc
	cancelAfter int

	polls  int
	frames []sorting.Frame
	values [][]int
	paused time.Duration
}

func (r *recorder) Poll() {
	r.polls++
	if r.cancelAfter > 0 && r.polls == r.cancelAfter && r.cancel != nil {
		r.cancel()
	}
}

func (r *recorder) Frame(f sorting.Frame) {
	r.frames = append(r.frames, f)
	r.values = append(r.values, f.Array.Values())
}

func (r *recorder) Pause(d time.Duration) { r.paused += d }

func (r *recorder) count(kind sorting.Kind) int {
	n := 0
	for _, f := range r.frames {
		if f.Kind == kind {
			n++
		}
	}
	return n
}

func run(alg sorting.Algorithm, values []int) (*array.Array, *recorder, sorting.Outcome) {
	a := array.FromValues(values)
	rec := &recorder{}
	out := sorting.Run(context.Background(), alg, a, rec, sorting.DefaultTiming())
	return a, rec, out
}
