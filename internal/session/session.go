package session

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Renderer draws frames onto a surface owned for the life of one session.
type Renderer interface {
	Draw(f sorting.Frame)
	Close() error
}

// Announcer is implemented by renderers that show run status.
type Announcer interface {
	Announce(st Status)
}

// Input returns the events that arrived since the last poll without blocking.
type Input interface {
	Poll() []Event
}

// Observer receives every frame drawn while an algorithm runs.
type Observer interface {
	Observe(f sorting.Frame)
}

// Status describes a run transition for announcers.
type Status struct {
	Algorithm string
	Sorting   bool
	Outcome   sorting.Outcome
}

// State replaces the ambient flags of a visualizer: it is owned by one
// session and only touched from the goroutine running it.
type State struct {
	Array     *array.Array
	Sorting   bool
	Quit      bool
	Algorithm string

	cancel context.CancelFunc
}

type Options struct {
	Size      int
	Min       int
	Max       int
	Timing    sorting.Timing
	Frame     time.Duration
	Rand      *rand.Rand
	Logger    *slog.Logger
	Sleep     func(time.Duration)
	Observers []Observer
}

type Session struct {
	state    *State
	renderer Renderer
	input    Input
	opts     Options
	log      *slog.Logger
	base     context.Context
}

// New builds a session over a freshly randomized array.
func New(opts Options, r Renderer, in Input) *Session {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Sleep == nil {
		opts.Sleep = time.Sleep
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Frame <= 0 {
		opts.Frame = 16 * time.Millisecond
	}

	s := &Session{
		state:    &State{Array: array.New(opts.Size)},
		renderer: r,
		input:    in,
		opts:     opts,
		log:      opts.Logger,
		base:     context.Background(),
	}
	s.state.Array.Randomize(opts.Rand, opts.Min, opts.Max)
	return s
}

func (s *Session) State() *State { return s.state }

// Run is the main loop. While idle it polls input, redraws the plain array
// and sleeps one frame interval; a started algorithm keeps control until it
// returns. Run ends on quit or when ctx is done, and always closes the
// renderer.
func (s *Session) Run(ctx context.Context) (err error) {
	s.base = ctx
	defer func() {
		if cerr := s.renderer.Close(); err == nil {
			err = cerr
		}
	}()

	s.renderer.Draw(sorting.Plain(s.state.Array))
	for !s.state.Quit {
		if ctx.Err() != nil {
			s.quit()
			break
		}
		s.poll()
		if !s.state.Sorting && !s.state.Quit {
			s.renderer.Draw(sorting.Plain(s.state.Array))
		}
		s.opts.Sleep(s.opts.Frame)
	}
	s.log.Debug("session ended")
	return nil
}

// Dispatch applies one event. It is synchronous: starting an algorithm runs
// it to its end before Dispatch returns.
func (s *Session) Dispatch(ev Event) {
	if ev.Type == EventClose {
		s.quit()
		return
	}

	switch ev.Key {
	case KeyQuit, 'Q':
		s.quit()
	case KeyRandomize:
		if s.state.Sorting {
			return
		}
		s.state.Array.Randomize(s.opts.Rand, s.opts.Min, s.opts.Max)
		s.log.Debug("array randomized", "size", s.state.Array.Len())
	default:
		alg, ok := sorting.ByKey(ev.Key)
		if !ok {
			return
		}
		if s.state.Sorting {
			s.log.Debug("ignoring start while running", "requested", alg.Name, "running", s.state.Algorithm)
			return
		}
		s.start(alg)
	}
}

func (s *Session) quit() {
	s.state.Quit = true
	if s.state.cancel != nil {
		s.state.cancel()
	}
}

func (s *Session) poll() {
	for _, ev := range s.input.Poll() {
		s.Dispatch(ev)
	}
}

func (s *Session) start(alg sorting.Algorithm) {
	ctx, cancel := context.WithCancel(s.base)
	defer cancel()

	s.state.Sorting = true
	s.state.Algorithm = alg.Name
	s.state.cancel = cancel
	s.announce(Status{Algorithm: alg.Name, Sorting: true})
	s.log.Info("sort started", "algorithm", alg.Name, "size", s.state.Array.Len())

	begin := time.Now()
	outcome := sorting.Run(ctx, alg, s.state.Array, driver{s}, s.opts.Timing)

	s.state.Sorting = false
	s.state.cancel = nil
	s.announce(Status{Algorithm: alg.Name, Outcome: outcome})
	s.log.Info("sort finished", "algorithm", alg.Name, "outcome", outcome.String(), "elapsed", time.Since(begin).Round(time.Millisecond))
}

func (s *Session) announce(st Status) {
	if a, ok := s.renderer.(Announcer); ok {
		a.Announce(st)
	}
}

// driver feeds algorithm steps back through the session.
type driver struct{ s *Session }

func (d driver) Poll() { d.s.poll() }

func (d driver) Frame(f sorting.Frame) {
	d.s.renderer.Draw(f)
	for _, o := range d.s.opts.Observers {
		o.Observe(f)
	}
}

func (d driver) Pause(dur time.Duration) {
	if dur > 0 {
		d.s.opts.Sleep(dur)
	}
}
