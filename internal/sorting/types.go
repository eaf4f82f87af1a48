package sorting

import (
	"time"

	"github.com/san-kum/sortviz/internal/array"
)

// Kind tags what happened in the step a frame was emitted for.
type Kind int

const (
	KindPlain Kind = iota
	KindCompare
	KindSwap
	KindWrite
	KindConfirm
	KindFlash
)

func (k Kind) String() string {
	switch k {
	case KindCompare:
		return "compare"
	case KindSwap:
		return "swap"
	case KindWrite:
		return "write"
	case KindConfirm:
		return "confirm"
	case KindFlash:
		return "flash"
	}
	return "plain"
}

// Role is the color class a renderer uses for one bar.
type Role int

const (
	RoleNormal Role = iota
	RoleCompare
	RoleMin
	RoleConfirmed
	RoleFlash
)

// Highlight carries the index roles of one frame. Unused roles are -1.
// Compare and Target are drawn as "being compared" (Target doubles as pivot
// or swap target); Min marks the current minimum or partition boundary.
type Highlight struct {
	Compare int
	Target  int
	Min     int
}

var NoHighlight = Highlight{Compare: -1, Target: -1, Min: -1}

func (h Highlight) Role(i int) Role {
	switch {
	case i == h.Compare || i == h.Target:
		return RoleCompare
	case i == h.Min:
		return RoleMin
	}
	return RoleNormal
}

// Frame is one step event. Array is the live array: consumers that keep a
// frame beyond the Frame call must copy the values they need.
type Frame struct {
	Kind        Kind
	Highlight   Highlight
	Confirmed   int
	Comparisons int
	Writes      int
	Array       *array.Array
}

// Plain returns an unhighlighted frame of a.
func Plain(a *array.Array) Frame {
	return Frame{Kind: KindPlain, Highlight: NoHighlight, Confirmed: -1, Array: a}
}

// RoleAt resolves the role of bar i, folding in the completion animation.
func (f Frame) RoleAt(i int) Role {
	switch f.Kind {
	case KindFlash:
		return RoleFlash
	case KindConfirm:
		if i <= f.Confirmed {
			return RoleConfirmed
		}
		return RoleNormal
	}
	return f.Highlight.Role(i)
}

// Driver is the collaborator an algorithm reports its steps to.
type Driver interface {
	// Poll handles pending input; it may cancel the running context.
	Poll()
	Frame(f Frame)
	Pause(d time.Duration)
}

// Timing holds the presentation delays of the stepper.
type Timing struct {
	Step  time.Duration
	Swap  time.Duration
	Sweep time.Duration
	Flash time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		Step:  5 * time.Millisecond,
		Swap:  10 * time.Millisecond,
		Sweep: 10 * time.Millisecond,
		Flash: 200 * time.Millisecond,
	}
}

type Outcome int

const (
	Completed Outcome = iota
	Cancelled
)

func (o Outcome) String() string {
	if o == Cancelled {
		return "cancelled"
	}
	return "completed"
}
