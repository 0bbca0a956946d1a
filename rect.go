package casement

// ShiftDir selects an axis and direction for rectangle shifts.
type ShiftDir uint8

const (
	ShiftLeft ShiftDir = iota
	ShiftRight
	ShiftUp
	ShiftDown
)

// Rect is an axis-aligned rectangle in device pixel space. The coordinate
// system has its origin at the top-left, with Y increasing downward.
// A Rect with non-positive width or height is empty.
type Rect struct {
	X, Y, Width, Height int
}

// IsEmpty reports whether the rectangle covers no pixels.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Intersection returns the overlapping region of r and other.
// Returns the zero Rect when they do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.Width, other.X+other.Width)
	y1 := min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// HasIntersection reports whether r and other overlap by at least one pixel.
func (r Rect) HasIntersection(other Rect) bool {
	return !r.Intersection(other).IsEmpty()
}

// Contains reports whether other lies entirely inside r.
// An empty rectangle is contained in anything.
func (r Rect) Contains(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.X+other.Width <= r.X+r.Width &&
		other.Y+other.Height <= r.Y+r.Height
}

// ContainsPoint reports whether the pixel (x, y) lies inside r.
func (r Rect) ContainsPoint(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Transform maps r, defined relative to ref's origin, into absolute space.
// The result is clipped to ref, so a rect that escapes its reference frame
// loses the escaping part.
func (r Rect) Transform(ref Rect) Rect {
	r.X += ref.X
	r.Y += ref.Y
	return r.Intersection(ref)
}

// Untransform is the inverse of Transform for rects that lie fully inside
// ref: it maps an absolute rect back into ref-relative coordinates.
func (r Rect) Untransform(ref Rect) Rect {
	r.X -= ref.X
	r.Y -= ref.Y
	return r
}

// WithTop returns r with its top edge moved to y. Width and height are kept.
func (r Rect) WithTop(y int) Rect {
	r.Y = y
	return r
}

// WithLeft returns r with its left edge moved to x. Width and height are kept.
func (r Rect) WithLeft(x int) Rect {
	r.X = x
	return r
}

// WithWidth returns r resized to the given width. The origin is kept.
func (r Rect) WithWidth(w int) Rect {
	r.Width = w
	return r
}

// WithHeight returns r resized to the given height. The origin is kept.
func (r Rect) WithHeight(h int) Rect {
	r.Height = h
	return r
}

// CalculateShift returns the distance that slides the rectangle by its own
// extent along the given direction: width for horizontal shifts, height for
// vertical ones. Used to tile windows edge to edge.
func (r Rect) CalculateShift(dir ShiftDir) int {
	switch dir {
	case ShiftLeft, ShiftRight:
		return r.Width
	default:
		return r.Height
	}
}

// ShiftedBy returns r moved by distance along the given direction.
func (r Rect) ShiftedBy(dir ShiftDir, distance int) Rect {
	switch dir {
	case ShiftLeft:
		r.X -= distance
	case ShiftRight:
		r.X += distance
	case ShiftUp:
		r.Y -= distance
	case ShiftDown:
		r.Y += distance
	}
	return r
}
