// Package core provides the terminal drawing primitives shared by the
// submarines frontends. It has no UI framework dependencies so renderers
// stay testable with plain strings.
package core

// Rect is an axis-aligned area of the screen.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle with the given position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(r.W-2*n, 0), H: max(r.H-2*n, 0)}
}

// Columns splits r into n side-by-side rectangles of width w separated by
// gap columns. Columns that would start past the right edge are dropped.
func (r Rect) Columns(n, w, gap int) []Rect {
	out := make([]Rect, 0, n)
	for i := range n {
		x := r.X + i*(w+gap)
		if x+w > r.Right() {
			break
		}
		out = append(out, Rect{X: x, Y: r.Y, W: w, H: r.H})
	}
	return out
}
