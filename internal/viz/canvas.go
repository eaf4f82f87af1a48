package viz

import (
	"strings"

	"github.com/san-kum/sortviz/internal/sorting"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas draws bars in braille cells: each cell holds two bars side by side
// and four vertical sub-pixels, and carries the role of the bar it shows.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Roles         [][]sorting.Role
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Roles:  make([][]sorting.Role, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Roles[i] = make([]sorting.Role, w)
	}
	c.Clear()
	return c
}

// CellsFor returns the cell width needed for n bars.
func CellsFor(n int) int {
	return (n + 1) / 2
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int, role sorting.Role) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if priority(role) > priority(c.Roles[row][col]) {
		c.Roles[row][col] = role
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Roles[i][j] = sorting.RoleNormal
		}
	}
}

// DrawBar fills sub-pixel column x from the bottom up to height sub-pixels.
func (c *Canvas) DrawBar(x, height int, role sorting.Role) {
	bottom := c.Height * 4
	for y := bottom - 1; y >= bottom-height && y >= 0; y-- {
		c.Set(x, y, role)
	}
}

// DrawFrame scales every bar of f against maxValue and draws it.
func (c *Canvas) DrawFrame(f sorting.Frame, maxValue int) {
	c.Clear()
	if f.Array == nil || maxValue <= 0 {
		return
	}
	sub := c.Height * 4
	for i := 0; i < f.Array.Len(); i++ {
		h := (f.Array.At(i)*sub + maxValue/2) / maxValue
		if h < 1 {
			h = 1
		}
		c.DrawBar(i, h, f.RoleAt(i))
	}
}

// Render paints the canvas with the theme, batching runs of equal roles.
func (c *Canvas) Render(t Theme) string {
	var b strings.Builder
	for row := range c.Grid {
		start := 0
		for col := 1; col <= c.Width; col++ {
			if col < c.Width && c.Roles[row][col] == c.Roles[row][start] {
				continue
			}
			run := string(c.Grid[row][start:col])
			b.WriteString(t.Style(c.Roles[row][start]).Render(run))
			start = col
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// priority orders roles when two bars share a cell.
func priority(r sorting.Role) int {
	switch r {
	case sorting.RoleCompare:
		return 4
	case sorting.RoleMin:
		return 3
	case sorting.RoleFlash:
		return 2
	case sorting.RoleConfirmed:
		return 1
	}
	return 0
}
