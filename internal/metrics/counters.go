package metrics

import "github.com/san-kum/sortviz/internal/sorting"

type Comparisons struct {
	name  string
	count int
}

func NewComparisons() *Comparisons {
	return &Comparisons{name: "comparisons"}
}

func (c *Comparisons) Name() string            { return c.name }
func (c *Comparisons) Observe(f sorting.Frame) { c.count += f.Comparisons }
func (c *Comparisons) Value() float64          { return float64(c.count) }
func (c *Comparisons) Reset()                  { c.count = 0 }

// Writes counts array element writes; a swap is two.
type Writes struct {
	name  string
	count int
}

func NewWrites() *Writes {
	return &Writes{name: "writes"}
}

func (w *Writes) Name() string            { return w.name }
func (w *Writes) Observe(f sorting.Frame) { w.count += f.Writes }
func (w *Writes) Value() float64          { return float64(w.count) }
func (w *Writes) Reset()                  { w.count = 0 }

// Steps counts algorithm frames, leaving out the completion animation.
type Steps struct {
	name  string
	count int
}

func NewSteps() *Steps {
	return &Steps{name: "steps"}
}

func (s *Steps) Name() string { return s.name }

func (s *Steps) Observe(f sorting.Frame) {
	switch f.Kind {
	case sorting.KindCompare, sorting.KindSwap, sorting.KindWrite:
		s.count++
	}
}

func (s *Steps) Value() float64 { return float64(s.count) }
func (s *Steps) Reset()         { s.count = 0 }
