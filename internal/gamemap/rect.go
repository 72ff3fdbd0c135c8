package gamemap

// Rect is an axis-aligned rectangle used for room bookkeeping during
// generation. X1 < X2 and Y1 < Y2; immutable once constructed.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a Rect from a corner position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the integer midpoint (floor division).
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other. Bounds are inclusive, so
// rectangles that merely touch count as intersecting — this keeps accepted
// rooms from sharing a wall line.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}
