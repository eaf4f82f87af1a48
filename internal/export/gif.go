package export

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/viz"
)

const (
	bgIndex = iota
	textIndex
	roleBase
)

const defaultMaxFrames = 400

type GIFOptions struct {
	BarWidth int
	Height   int
	MaxValue int
	Theme    viz.Theme
	// Every keeps one of every Every algorithm frames; completion frames
	// are always kept.
	Every int
	// MaxFrames bounds the frames held in memory. Past it, every other
	// algorithm frame is dropped and Every doubles.
	MaxFrames int
	// Delay per frame in hundredths of a second.
	Delay   int
	Caption string
}

// GIFRecorder rasterizes frames into an animated GIF. It works as a session
// renderer and as a headless run observer.
type GIFRecorder struct {
	opts    GIFOptions
	palette color.Palette
	frames  []*image.Paletted
	delays  []int
	kinds   []sorting.Kind
	seen    int
	status  string
}

func NewGIFRecorder(opts GIFOptions) *GIFRecorder {
	if opts.Every < 1 {
		opts.Every = 1
	}
	if opts.MaxFrames < 1 {
		opts.MaxFrames = defaultMaxFrames
	}
	if opts.Delay < 1 {
		opts.Delay = 2
	}
	if opts.BarWidth < 1 {
		opts.BarWidth = 1
	}
	t := opts.Theme
	return &GIFRecorder{
		opts:    opts,
		palette: color.Palette{t.Background, t.Text, t.Normal, t.Compare, t.Min, t.Confirmed, t.Flash},
		status:  opts.Caption,
	}
}

func roleIndex(r sorting.Role) uint8 {
	return uint8(roleBase + int(r))
}

func (g *GIFRecorder) Draw(f sorting.Frame) {
	if f.Array == nil {
		return
	}
	g.seen++
	if !completion(f.Kind) && (g.seen-1)%g.opts.Every != 0 {
		return
	}

	w := f.Array.Len() * g.opts.BarWidth
	img := image.NewPaletted(image.Rect(0, 0, w, g.opts.Height), g.palette)
	for _, b := range viz.Layout(f, g.opts.BarWidth, g.opts.Height, g.opts.MaxValue) {
		idx := roleIndex(b.Role)
		for y := b.Y; y < b.Y+b.H; y++ {
			for x := b.X; x < b.X+b.W; x++ {
				img.SetColorIndex(x, y, idx)
			}
		}
	}
	g.caption(img)

	g.frames = append(g.frames, img)
	g.delays = append(g.delays, g.opts.Delay)
	g.kinds = append(g.kinds, f.Kind)
	if len(g.frames) > g.opts.MaxFrames {
		g.thin()
	}
}

func completion(k sorting.Kind) bool {
	return k == sorting.KindConfirm || k == sorting.KindFlash
}

// thin drops every other algorithm frame and doubles Every so later frames
// keep the same spacing. Completion frames are never dropped.
func (g *GIFRecorder) thin() {
	steps := 0
	for _, k := range g.kinds {
		if !completion(k) {
			steps++
		}
	}
	if steps < 2 {
		return
	}

	n, step := 0, 0
	for i, k := range g.kinds {
		if !completion(k) {
			step++
			if step%2 == 0 {
				continue
			}
		}
		g.frames[n], g.delays[n], g.kinds[n] = g.frames[i], g.delays[i], k
		n++
	}
	clear(g.frames[n:])
	g.frames, g.delays, g.kinds = g.frames[:n], g.delays[:n], g.kinds[:n]
	g.opts.Every *= 2
}

func (g *GIFRecorder) caption(img *image.Paletted) {
	if g.status == "" {
		return
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(g.palette[textIndex]),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(6, 16),
	}
	d.DrawString(g.status)
}

func (g *GIFRecorder) Observe(f sorting.Frame) { g.Draw(f) }

func (g *GIFRecorder) Announce(st session.Status) {
	g.status = st.Algorithm
	if !st.Sorting {
		g.status += " " + st.Outcome.String()
	}
}

func (g *GIFRecorder) Close() error { return nil }

func (g *GIFRecorder) Frames() int { return len(g.frames) }

func (g *GIFRecorder) Encode(w io.Writer) error {
	if len(g.frames) == 0 {
		return fmt.Errorf("gif: no frames recorded")
	}
	return gif.EncodeAll(w, &gif.GIF{Image: g.frames, Delay: g.delays})
}

func (g *GIFRecorder) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := g.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
