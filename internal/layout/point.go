package layout

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y int
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p.X, p.Y)
}

// Unmeasured is the largest dimension a container can report while the host
// framework has not laid it out yet.
const Unmeasured = 1

// Size represents a width/height pair.
type Size struct {
	Width, Height int
}

// IsUnmeasured reports whether either dimension is still in the sentinel
// "not yet laid out" state.
func (s Size) IsUnmeasured() bool {
	return s.Width <= Unmeasured || s.Height <= Unmeasured
}

// AtMost limits each dimension of s to maxSize. A zero or negative
// dimension in maxSize means "no maximum" for that dimension.
func (s Size) AtMost(maxSize Size) Size {
	if maxSize.Width > 0 {
		s.Width = min(s.Width, maxSize.Width)
	}
	if maxSize.Height > 0 {
		s.Height = min(s.Height, maxSize.Height)
	}
	return s
}

// AtLeast raises each dimension of s to at least minSize.
func (s Size) AtLeast(minSize Size) Size {
	return Size{Width: max(s.Width, minSize.Width), Height: max(s.Height, minSize.Height)}
}
