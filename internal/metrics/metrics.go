package metrics

import "github.com/san-kum/sortviz/internal/sorting"

// Metric observes the step events of one run.
type Metric interface {
	Name() string
	Observe(f sorting.Frame)
	Value() float64
	Reset()
}

// Defaults returns fresh instances of every counter shown for a run.
func Defaults() []Metric {
	return []Metric{
		NewComparisons(),
		NewWrites(),
		NewSteps(),
	}
}

// Snapshot reads every metric into a map keyed by name.
func Snapshot(ms []Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
