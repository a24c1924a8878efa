package session

// Side identifies one of the two panes.
type Side uint8

const (
	SideLeft Side = iota
	SideRight
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}
