package common

// Rect is an integer axis-aligned rectangle in world or screen space.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Origin returns the top-left corner.
func (r Rect) Origin() Vector2 {
	return Vector2{X: r.X, Y: r.Y}
}

// Translate returns r moved by v.
func (r Rect) Translate(v Vector2) Rect {
	r.X += v.X
	r.Y += v.Y
	return r
}

// MoveTo returns r with its origin set to p.
func (r Rect) MoveTo(p Vector2) Rect {
	r.X = p.X
	r.Y = p.Y
	return r
}

// Size is a width/height pair, used for the viewport.
type Size struct {
	Width, Height int
}
