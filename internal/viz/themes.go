package viz

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/sorting"
)

// Theme defines the bar colors for every highlight role
type Theme struct {
	Name       string
	Background color.RGBA
	Normal     color.RGBA
	Compare    color.RGBA
	Min        color.RGBA
	Confirmed  color.RGBA
	Flash      color.RGBA
	Text       color.RGBA
}

// Available themes
var (
	ThemeClassic = Theme{
		Name:       "classic",
		Background: rgb(0, 0, 0),
		Normal:     rgb(200, 200, 200), // White
		Compare:    rgb(255, 50, 50),   // Red
		Min:        rgb(50, 255, 50),   // Green
		Confirmed:  rgb(50, 255, 50),
		Flash:      rgb(255, 215, 0), // Gold
		Text:       rgb(140, 140, 140),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Background: rgb(0, 26, 51),
		Normal:     rgb(0, 119, 190),
		Compare:    rgb(255, 68, 68),
		Min:        rgb(0, 255, 136),
		Confirmed:  rgb(0, 168, 204),
		Flash:      rgb(255, 215, 0),
		Text:       rgb(224, 240, 255),
	}

	ThemeRetroGreen = Theme{
		Name:       "retro",
		Background: rgb(0, 17, 0),
		Normal:     rgb(0, 170, 0), // Green phosphor
		Compare:    rgb(255, 255, 0),
		Min:        rgb(136, 255, 136),
		Confirmed:  rgb(0, 255, 0),
		Flash:      rgb(200, 255, 200),
		Text:       rgb(0, 255, 0),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Background: rgb(10, 10, 10),
		Normal:     rgb(140, 140, 140),
		Compare:    rgb(255, 255, 255),
		Min:        rgb(0, 136, 255),
		Confirmed:  rgb(180, 180, 180),
		Flash:      rgb(255, 255, 255),
		Text:       rgb(140, 140, 140),
	}

	// All available themes
	Themes = []Theme{
		ThemeClassic,
		ThemeOcean,
		ThemeRetroGreen,
		ThemeMinimal,
	}
)

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// LookupTheme returns a theme by name
func LookupTheme(name string) (Theme, bool) {
	for _, t := range Themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// GetTheme returns a theme by name, falling back to classic
func GetTheme(name string) Theme {
	if t, ok := LookupTheme(name); ok {
		return t
	}
	return ThemeClassic
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Color returns the bar color for a role.
func (t Theme) Color(r sorting.Role) color.RGBA {
	switch r {
	case sorting.RoleCompare:
		return t.Compare
	case sorting.RoleMin:
		return t.Min
	case sorting.RoleConfirmed:
		return t.Confirmed
	case sorting.RoleFlash:
		return t.Flash
	}
	return t.Normal
}

// Style returns a terminal style painting the role color.
func (t Theme) Style(r sorting.Role) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Hex(t.Color(r)))
}

func Hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(hexColor(int(c.R), int(c.G), int(c.B)))
}
