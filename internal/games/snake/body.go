package snake

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Delta returns the unit step for the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Body is the ordered list of occupied cells, head at index 0.
// It never becomes empty.
type Body struct {
	cells []Cell
}

// NewBody creates a one-segment snake at start.
func NewBody(start Cell) *Body {
	return &Body{cells: []Cell{start}}
}

// Head returns the leading cell.
func (b *Body) Head() Cell {
	return b.cells[0]
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.cells)
}

// Contains reports whether any segment occupies c.
func (b *Body) Contains(c Cell) bool {
	for _, seg := range b.cells {
		if seg == c {
			return true
		}
	}
	return false
}

// Cells returns a copy of the segments, head first.
func (b *Body) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// push prepends a new head.
func (b *Body) push(head Cell) {
	b.cells = append(b.cells, Cell{})
	copy(b.cells[1:], b.cells)
	b.cells[0] = head
}

// dropTail removes the last segment, keeping at least the head.
func (b *Body) dropTail() {
	if len(b.cells) > 1 {
		b.cells = b.cells[:len(b.cells)-1]
	}
}
