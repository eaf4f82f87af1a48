package viz

import "github.com/san-kum/sortviz/internal/sorting"

// Bar is one filled rectangle in surface pixels, origin top-left.
type Bar struct {
	X, Y, W, H int
	Role       sorting.Role
}

// Layout places bar i at x = i*barWidth, one pixel narrower than its slot,
// standing on the bottom edge of a surface height pixels tall. With a
// positive maxValue heights are scaled so maxValue fills the surface;
// otherwise a value is its height in pixels.
func Layout(f sorting.Frame, barWidth, height, maxValue int) []Bar {
	if f.Array == nil {
		return nil
	}
	w := barWidth - 1
	if w < 1 {
		w = 1
	}
	bars := make([]Bar, f.Array.Len())
	for i := range bars {
		h := f.Array.At(i)
		if maxValue > 0 {
			h = h * height / maxValue
		}
		if h > height {
			h = height
		}
		if h < 0 {
			h = 0
		}
		bars[i] = Bar{X: i * barWidth, Y: height - h, W: w, H: h, Role: f.RoleAt(i)}
	}
	return bars
}
