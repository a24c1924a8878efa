package renderer

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/polyglot/internal/renderer/backend"
)

// Theme is the color scheme for the whole screen.
type Theme struct {
	HeaderTitle  backend.Style
	HeaderHint   backend.Style
	BorderActive backend.Style
	Border       backend.Style
	Title        backend.Style
	TitleActive  backend.Style
	PaneText     backend.Style
	Selection    backend.Style
	HelpKey      backend.Style
	HelpText     backend.Style
	StatusReady  backend.Style
	StatusBusy   backend.Style
	StatusError  backend.Style
	PickerBorder backend.Style
	PickerItem   backend.Style
	PickerPick   backend.Style
}

// DefaultTheme builds the standard scheme. Inactive chrome is derived
// from the active colors by blending toward black in Lab space, which
// keeps the hue while dropping the brightness.
func DefaultTheme() Theme {
	cyan := colorful.Color{R: 0.0, G: 0.8, B: 0.8}
	green := colorful.Color{R: 0.2, G: 0.8, B: 0.2}
	yellow := colorful.Color{R: 0.9, G: 0.8, B: 0.1}
	red := colorful.Color{R: 0.9, G: 0.2, B: 0.2}
	blue := colorful.Color{R: 0.5, G: 0.7, B: 1.0}
	white := colorful.Color{R: 0.9, G: 0.9, B: 0.9}
	black := colorful.Color{R: 0.0, G: 0.0, B: 0.0}

	dim := func(c colorful.Color) colorful.Color {
		return c.BlendLab(black, 0.55).Clamped()
	}

	return Theme{
		HeaderTitle:  backend.StyleDefault.WithBold(),
		HeaderHint:   backend.StyleDefault.WithFG(toColor(green)),
		BorderActive: backend.StyleDefault.WithFG(toColor(cyan)),
		Border:       backend.StyleDefault.WithFG(toColor(dim(white))),
		Title:        backend.StyleDefault.WithFG(toColor(dim(white))),
		TitleActive:  backend.StyleDefault.WithFG(toColor(cyan)).WithBold(),
		PaneText:     backend.StyleDefault.WithFG(toColor(blue)).WithBold(),
		Selection:    backend.StyleDefault.WithFG(toColor(blue)).WithReverse(),
		HelpKey:      backend.StyleDefault.WithBold(),
		HelpText:     backend.StyleDefault,
		StatusReady:  backend.StyleDefault.WithFG(toColor(green)),
		StatusBusy:   backend.StyleDefault.WithFG(toColor(yellow)),
		StatusError:  backend.StyleDefault.WithFG(toColor(red)),
		PickerBorder: backend.StyleDefault.WithFG(toColor(cyan)),
		PickerItem:   backend.StyleDefault,
		PickerPick:   backend.Style{FG: toColor(black), BG: toColor(yellow), Bold: true},
	}
}

func toColor(c colorful.Color) backend.Color {
	r, g, b := c.RGB255()
	return backend.RGB(r, g, b)
}
