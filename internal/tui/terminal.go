package tui

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/viz"
)

const (
	keyBuffer    = 64
	startTimeout = 2 * time.Second
)

var ErrTerminal = errors.New("terminal unavailable")

type Options struct {
	Title    string
	Theme    viz.Theme
	MaxValue int
	// Input and Output default to the process terminal.
	Input  io.Reader
	Output io.Writer
}

// Terminal is the session collaborator backed by a bubbletea program. The
// program runs on its own goroutine; frames reach it as copied snapshots and
// key presses come back through a buffered channel.
type Terminal struct {
	prog *tea.Program
	keys chan session.Event
	done chan struct{}

	mu  sync.Mutex
	err error
}

func Open(opts Options) (*Terminal, error) {
	keys := make(chan session.Event, keyBuffer)
	progOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	m := newModel(opts.Title, opts.Theme, opts.MaxValue, keys)
	ready := make(chan struct{})
	m.ready = ready

	t := &Terminal{
		prog: tea.NewProgram(m, progOpts...),
		keys: keys,
		done: make(chan struct{}),
	}
	go t.loop()

	select {
	case <-ready:
		return t, nil
	case <-t.done:
		if err := t.exitErr(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTerminal, err)
		}
		return nil, ErrTerminal
	case <-time.After(startTimeout):
		// still starting; failures from here on surface through Close
		return t, nil
	}
}

// Opener adapts Open to session.Launch.
func Opener(opts Options) session.Opener {
	return func() (session.Renderer, session.Input, error) {
		t, err := Open(opts)
		if err != nil {
			return nil, nil, err
		}
		return t, t, nil
	}
}

func (t *Terminal) loop() {
	_, err := t.prog.Run()
	t.mu.Lock()
	t.err = err
	t.mu.Unlock()
	close(t.done)
}

func (t *Terminal) Draw(f sorting.Frame) {
	if f.Array != nil {
		f.Array = f.Array.Clone()
	}
	t.prog.Send(frameMsg{frame: f})
}

func (t *Terminal) Announce(st session.Status) {
	t.prog.Send(statusMsg(st))
}

func (t *Terminal) Poll() []session.Event {
	var evs []session.Event
	for {
		select {
		case ev := <-t.keys:
			evs = append(evs, ev)
		case <-t.done:
			// the program is gone, so the session has nothing left to show
			return append(evs, session.Close())
		default:
			return evs
		}
	}
}

func (t *Terminal) Close() error {
	t.prog.Quit()
	<-t.done
	return t.exitErr()
}

func (t *Terminal) exitErr() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}
