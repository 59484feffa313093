package snake

// Heading is the snake's movement direction.
type Heading int

const (
	HeadingNone Heading = iota // Before the first move
	HeadingUp
	HeadingDown
	HeadingLeft
	HeadingRight
)

// Vector returns the (dx, dy) step of the heading. Y grows downward.
func (h Heading) Vector() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// IsOpposite reports whether h is the exact 180° reverse of other.
// HeadingNone has the zero vector, so it is opposite to nothing.
func (h Heading) IsOpposite(other Heading) bool {
	if h == HeadingNone || other == HeadingNone {
		return false
	}
	dx1, dy1 := h.Vector()
	dx2, dy2 := other.Vector()
	return dx1 == -dx2 && dy1 == -dy2
}

func (h Heading) String() string {
	switch h {
	case HeadingNone:
		return "none"
	case HeadingUp:
		return "up"
	case HeadingDown:
		return "down"
	case HeadingLeft:
		return "left"
	case HeadingRight:
		return "right"
	default:
		return "unknown"
	}
}
