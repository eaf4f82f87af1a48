package export

import (
	"bytes"
	"context"
	"image/gif"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/array"
	"github.com/san-kum/sortviz/internal/experiment"
	"github.com/san-kum/sortviz/internal/session"
	"github.com/san-kum/sortviz/internal/sorting"
	"github.com/san-kum/sortviz/internal/viz"
)

var _ session.Renderer = (*GIFRecorder)(nil)

func TestFrameToSVG(t *testing.T) {
	a := array.FromValues([]int{10, 40})
	f := sorting.Frame{Kind: sorting.KindCompare, Highlight: sorting.Highlight{Compare: 1, Target: -1, Min: -1}, Confirmed: -1, Array: a}

	svg := FrameToSVG(f, viz.ThemeClassic, 4, 40, 40)
	assert.True(t, strings.HasPrefix(svg, "<?xml"))
	assert.Contains(t, svg, `width="8" height="40"`)
	assert.Contains(t, svg, `<rect x="0" y="30" width="3" height="10" fill="#c8c8c8"/>`)
	assert.Contains(t, svg, `<rect x="4" y="0" width="3" height="40" fill="#ff3232"/>`)
}

func TestCanvasToSVG(t *testing.T) {
	assert.Empty(t, CanvasToSVG(nil, viz.ThemeClassic, 2))

	c := viz.NewCanvas(1, 1)
	c.Set(0, 0, sorting.RoleFlash)
	svg := CanvasToSVG(c, viz.ThemeClassic, 2)
	assert.Equal(t, 1, strings.Count(svg, "<circle"))
	assert.Contains(t, svg, "#ffd700")
}

func TestGIFRecordsHeadlessRun(t *testing.T) {
	rec := NewGIFRecorder(GIFOptions{BarWidth: 3, Height: 30, MaxValue: 9, Theme: viz.ThemeOcean, Every: 4, Caption: "quick"})

	e, err := experiment.New(experiment.Config{Algorithm: "quick", Values: []int{9, 2, 7, 4, 1, 8}})
	require.NoError(t, err)
	e.AddObserver(rec)
	res, err := e.Run(context.Background())
	require.NoError(t, err)

	algFrames := 0
	for _, s := range res.Steps {
		if s.Kind != sorting.KindConfirm && s.Kind != sorting.KindFlash {
			algFrames++
		}
	}
	// every confirm and flash frame, plus one in four of the rest
	assert.Greater(t, rec.Frames(), 6+3)
	assert.Less(t, rec.Frames(), len(res.Steps))

	var buf bytes.Buffer
	require.NoError(t, rec.Encode(&buf))
	out, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, out.Image, rec.Frames())
	assert.Equal(t, 18, out.Image[0].Bounds().Dx())
	assert.Equal(t, 30, out.Image[0].Bounds().Dy())
	assert.Greater(t, algFrames, 0)
}

func TestGIFThinsPastMaxFrames(t *testing.T) {
	rec := NewGIFRecorder(GIFOptions{Height: 8, MaxValue: 9, Theme: viz.ThemeClassic, MaxFrames: 10})
	a := array.FromValues([]int{3, 1, 2})
	for i := 0; i < 100; i++ {
		rec.Draw(sorting.Frame{Kind: sorting.KindCompare, Highlight: sorting.Highlight{Compare: 0, Target: 1, Min: -1}, Confirmed: -1, Array: a})
	}
	assert.LessOrEqual(t, rec.Frames(), 10)
	assert.Greater(t, rec.Frames(), 4)
	assert.Greater(t, rec.opts.Every, 1)

	for i := 0; i < 3; i++ {
		rec.Draw(sorting.Frame{Kind: sorting.KindConfirm, Highlight: sorting.NoHighlight, Confirmed: i, Array: a})
	}
	for i := 0; i < 3; i++ {
		rec.Draw(sorting.Frame{Kind: sorting.KindFlash, Highlight: sorting.NoHighlight, Confirmed: -1, Array: a})
	}
	completions := 0
	for _, k := range rec.kinds {
		if completion(k) {
			completions++
		}
	}
	assert.Equal(t, 6, completions, "completion frames survive thinning")
	assert.LessOrEqual(t, rec.Frames(), 10)
	assert.Len(t, rec.delays, rec.Frames())
}

func TestGIFBarPixels(t *testing.T) {
	rec := NewGIFRecorder(GIFOptions{BarWidth: 2, Height: 10, MaxValue: 10, Theme: viz.ThemeClassic})
	rec.Draw(sorting.Plain(array.FromValues([]int{10, 5})))
	require.Equal(t, 1, rec.Frames())

	img := rec.frames[0]
	assert.Equal(t, roleIndex(sorting.RoleNormal), img.ColorIndexAt(0, 0))
	assert.Equal(t, uint8(bgIndex), img.ColorIndexAt(1, 0), "slot gap stays background")
	assert.Equal(t, uint8(bgIndex), img.ColorIndexAt(2, 4))
	assert.Equal(t, roleIndex(sorting.RoleNormal), img.ColorIndexAt(2, 5))
}

func TestGIFSave(t *testing.T) {
	rec := NewGIFRecorder(GIFOptions{Height: 8, MaxValue: 4, Theme: viz.ThemeMinimal})
	path := filepath.Join(t.TempDir(), "out.gif")
	assert.Error(t, rec.Save(path))

	rec.Announce(session.Status{Algorithm: "heap", Outcome: sorting.Completed})
	rec.Draw(sorting.Plain(array.FromValues([]int{1, 4, 2})))
	require.NoError(t, rec.Save(path))
	assert.Equal(t, "heap completed", rec.status)
}
