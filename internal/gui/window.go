package gui

import (
	"errors"
	"fmt"
	"image/color"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/viz"
)

var ErrWindow = errors.New("window unavailable")

type Options struct {
	Width    int
	Height   int
	BarWidth int
	Title    string
	Theme    viz.Theme
}

// Window is the desktop collaborator of a session. Every raylib call must
// come from the goroutine that opened it.
type Window struct {
	opts   Options
	bg     rl.Color
	text   rl.Color
	colors map[sorting.Role]rl.Color
	status session.Status
	shown  bool
}

func Open(opts Options) (*Window, error) {
	runtime.LockOSThread()

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	if !rl.IsWindowReady() {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("%w: %dx%d %q", ErrWindow, opts.Width, opts.Height, opts.Title)
	}
	rl.SetExitKey(0)

	w := &Window{
		opts:   opts,
		bg:     toColor(opts.Theme.Background),
		text:   toColor(opts.Theme.Text),
		colors: make(map[sorting.Role]rl.Color),
	}
	for _, r := range []sorting.Role{sorting.RoleNormal, sorting.RoleCompare, sorting.RoleMin, sorting.RoleConfirmed, sorting.RoleFlash} {
		w.colors[r] = toColor(opts.Theme.Color(r))
	}
	return w, nil
}

// Opener adapts Open to session.Launch.
func Opener(opts Options) session.Opener {
	return func() (session.Renderer, session.Input, error) {
		w, err := Open(opts)
		if err != nil {
			return nil, nil, err
		}
		return w, w, nil
	}
}

func (w *Window) Draw(f sorting.Frame) {
	rl.BeginDrawing()
	rl.ClearBackground(w.bg)

	for _, b := range viz.Layout(f, w.opts.BarWidth, w.opts.Height, 0) {
		rl.DrawRectangle(int32(b.X), int32(b.Y), int32(b.W), int32(b.H), w.colors[b.Role])
	}
	if w.shown {
		w.drawStatus()
	}

	rl.EndDrawing()
}

func (w *Window) drawStatus() {
	label := w.status.Algorithm
	switch {
	case w.status.Sorting:
		label += " sorting"
	default:
		label += " " + w.status.Outcome.String()
	}
	rl.DrawText(label, 12, 12, 18, w.text)
}

func (w *Window) Announce(st session.Status) {
	w.status = st
	w.shown = true
}

// Poll reports keys pressed since the last frame and the close request of
// the window manager.
func (w *Window) Poll() []session.Event {
	var evs []session.Event
	if rl.WindowShouldClose() {
		evs = append(evs, session.Close())
	}
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if r, ok := keyRune(k); ok {
			evs = append(evs, session.Key(r))
		}
	}
	return evs
}

func (w *Window) Close() error {
	rl.CloseWindow()
	runtime.UnlockOSThread()
	return nil
}

func keyRune(k int32) (rune, bool) {
	switch {
	case k >= rl.KeyZero && k <= rl.KeyNine:
		return rune('0' + k - rl.KeyZero), true
	case k >= rl.KeyKp0 && k <= rl.KeyKp9:
		return rune('0' + k - rl.KeyKp0), true
	case k >= rl.KeyA && k <= rl.KeyZ:
		return rune('a' + k - rl.KeyA), true
	}
	return 0, false
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
