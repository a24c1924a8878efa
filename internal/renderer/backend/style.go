package backend

// Color is a 24-bit RGB color, or ColorDefault for the terminal's own
// foreground/background.
type Color int32

// ColorDefault leaves the terminal color untouched.
const ColorDefault Color = -1

// RGB packs a color from its components.
func RGB(r, g, b uint8) Color {
	return Color(int32(r)<<16 | int32(g)<<8 | int32(b))
}

// IsDefault reports whether the color is the terminal default.
func (c Color) IsDefault() bool {
	return c < 0
}

// RGBComponents unpacks the color. Only valid for non-default colors.
func (c Color) RGBComponents() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Style is the visual attribute set for one cell.
type Style struct {
	FG      Color
	BG      Color
	Bold    bool
	Reverse bool
}

// StyleDefault draws with the terminal's own colors.
var StyleDefault = Style{FG: ColorDefault, BG: ColorDefault}

// WithFG returns the style with a different foreground.
func (s Style) WithFG(c Color) Style {
	s.FG = c
	return s
}

// WithBG returns the style with a different background.
func (s Style) WithBG(c Color) Style {
	s.BG = c
	return s
}

// WithBold returns the style with bold set.
func (s Style) WithBold() Style {
	s.Bold = true
	return s
}

// WithReverse returns the style with reverse video set.
func (s Style) WithReverse() Style {
	s.Reverse = true
	return s
}
