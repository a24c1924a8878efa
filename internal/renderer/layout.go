package renderer

// Rect is a screen region in cell coordinates.
type Rect struct {
	X, Y, W, H int
}

// Inner returns the region inside a one-cell border.
func (r Rect) Inner() Rect {
	return Rect{X: r.X + 1, Y: r.Y + 1, W: max(0, r.W-2), H: max(0, r.H-2)}
}

// layout is the fixed screen arrangement: an outer margin, a header
// strip, the two pane columns, and the controls block taking the rest.
type layout struct {
	header Rect
	left   Rect
	right  Rect
	help   Rect
}

const (
	screenMargin = 2
	headerRows   = 3
	paneRows     = 7
	minHelpRows  = 5
)

func computeLayout(width, height int) layout {
	x := screenMargin
	y := screenMargin
	w := max(0, width-2*screenMargin)
	h := max(0, height-2*screenMargin)

	header := Rect{X: x, Y: y, W: w, H: min(headerRows, h)}
	y += header.H
	h -= header.H

	panes := Rect{X: x, Y: y, W: w, H: min(paneRows, max(0, h-minHelpRows))}
	y += panes.H
	h -= panes.H

	leftW := panes.W / 2
	left := Rect{X: panes.X, Y: panes.Y, W: leftW, H: panes.H}
	right := Rect{X: panes.X + leftW, Y: panes.Y, W: panes.W - leftW, H: panes.H}

	help := Rect{X: x, Y: y, W: w, H: h}
	return layout{header: header, left: left, right: right, help: help}
}

// centeredRect returns a region covering the given percentages of the
// screen, centered.
func centeredRect(percentX, percentY, width, height int) Rect {
	w := width * percentX / 100
	h := height * percentY / 100
	return Rect{X: (width - w) / 2, Y: (height - h) / 2, W: w, H: h}
}
