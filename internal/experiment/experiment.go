package experiment

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorting"
)

type Config struct {
	Algorithm string
	Size      int
	Min       int
	Max       int
	Seed      int64
	// Values replaces the random input when set.
	Values []int
	Timing sorting.Timing
}

// Observer sees every frame of a headless run.
type Observer interface {
	Observe(f sorting.Frame)
}

// Step is one trace row; counters are running totals.
type Step struct {
	Index       int
	Kind        sorting.Kind
	Compare     int
	Target      int
	Min         int
	Comparisons int
	Writes      int
}

type Result struct {
	Algorithm string
	Input     []int
	Output    []int
	Steps     []Step
	Metrics   map[string]float64
	Outcome   sorting.Outcome
	Sorted    bool
	// Presentation is the animation time the run would take on screen.
	Presentation time.Duration
	Elapsed      time.Duration
}

type Experiment struct {
	cfg       Config
	alg       sorting.Algorithm
	metrics   []metrics.Metric
	observers []Observer
}

func New(cfg Config) (*Experiment, error) {
	alg, err := sorting.Lookup(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	if cfg.Values == nil {
		if cfg.Size <= 0 {
			return nil, fmt.Errorf("experiment: size must be positive, got %d", cfg.Size)
		}
		if cfg.Min <= 0 {
			return nil, fmt.Errorf("experiment: min must be positive, got %d", cfg.Min)
		}
		if cfg.Min > cfg.Max {
			return nil, fmt.Errorf("experiment: min %d above max %d", cfg.Min, cfg.Max)
		}
	}
	for i, v := range cfg.Values {
		if v <= 0 {
			return nil, fmt.Errorf("experiment: value %d at %d is not positive", v, i)
		}
	}
	return &Experiment{cfg: cfg, alg: alg, metrics: metrics.Defaults()}, nil
}

func (e *Experiment) Algorithm() sorting.Algorithm { return e.alg }

func (e *Experiment) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

// Input builds the array the run starts from.
func (e *Experiment) Input() *array.Array {
	if e.cfg.Values != nil {
		return array.FromValues(e.cfg.Values)
	}
	a := array.New(e.cfg.Size)
	a.Randomize(rand.New(rand.NewSource(e.cfg.Seed)), e.cfg.Min, e.cfg.Max)
	return a
}

// Run sorts without sleeping. A cancelled ctx ends the run early with a
// Cancelled outcome; the partial result is still returned.
func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	a := e.Input()
	for _, m := range e.metrics {
		m.Reset()
	}

	d := &recorder{metrics: e.metrics, observers: e.observers}
	res := &Result{Algorithm: e.alg.Name, Input: a.Values()}

	start := time.Now()
	res.Outcome = sorting.Run(ctx, e.alg, a, d, e.cfg.Timing)
	res.Elapsed = time.Since(start)

	res.Output = a.Values()
	res.Sorted = a.IsSorted()
	res.Steps = d.steps
	res.Presentation = d.paused
	res.Metrics = metrics.Snapshot(e.metrics)
	return res, nil
}

// recorder is the headless driver: no input, no sleeping.
type recorder struct {
	metrics     []metrics.Metric
	observers   []Observer
	steps       []Step
	comparisons int
	writes      int
	paused      time.Duration
}

func (r *recorder) Poll() {}

func (r *recorder) Frame(f sorting.Frame) {
	r.comparisons += f.Comparisons
	r.writes += f.Writes
	r.steps = append(r.steps, Step{
		Index:       len(r.steps),
		Kind:        f.Kind,
		Compare:     f.Highlight.Compare,
		Target:      f.Highlight.Target,
		Min:         f.Highlight.Min,
		Comparisons: r.comparisons,
		Writes:      r.writes,
	})
	for _, m := range r.metrics {
		m.Observe(f)
	}
	for _, o := range r.observers {
		o.Observe(f)
	}
}

func (r *recorder) Pause(d time.Duration) { r.paused += d }
