package obj

import (
	"errors"
	"fmt"

	"github.com/milk9111/parallax/common"
)

var (
	ErrInvalidDepth = errors.New("obj: depth must be positive")
	ErrInvalidRange = errors.New("obj: invalid depth range")
)

// DepthRange bounds the depth a body can be zoomed to.
type DepthRange struct {
	Min float64
	Max float64
}

// DefaultDepthRange allows ten halvings or doublings from the baseline plane.
var DefaultDepthRange = DepthRange{Min: 1.0 / 1024, Max: 1024}

func (r DepthRange) Validate() error {
	if r.Min <= 0 || r.Max < r.Min {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// MovableBody is anything with a rectangle, a depth and a velocity accumulator
// that advances once per tick.
type MovableBody interface {
	Position() common.Rect
	Depth() float64
	SetDepth(depth float64) error
	// Zoom multiplies depth by factor, clamped to the body's depth range.
	Zoom(factor float64)
	Velocity() common.Vector2
	// Accelerate adds delta to the velocity accumulator.
	Accelerate(delta common.Vector2)
	// Advance moves the position by the stored velocity.
	Advance()
	// AdvanceBy moves the position by v without touching the accumulator.
	AdvanceBy(v common.Vector2)
}

// Body is the shared MovableBody implementation embedded by entities and the camera.
type Body struct {
	rect     common.Rect
	depth    float64
	velocity common.Vector2
	limits   DepthRange
}

// NewBody validates depth and returns a body at rect with zero velocity and
// the default depth range.
func NewBody(rect common.Rect, depth float64) (*Body, error) {
	return NewBodyInRange(rect, depth, DefaultDepthRange)
}

// NewBodyInRange is NewBody with explicit zoom bounds. Depth is clamped into r.
func NewBodyInRange(rect common.Rect, depth float64, r DepthRange) (*Body, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	b := &Body{rect: rect, limits: r}
	if err := b.SetDepth(depth); err != nil {
		return nil, err
	}
	return b, nil
}

// Contains reports whether depth lies inside the range.
func (r DepthRange) Contains(depth float64) bool {
	return depth >= r.Min && depth <= r.Max
}

func (b *Body) Position() common.Rect {
	return b.rect
}

// SetPosition moves the body's origin to p, keeping its size.
func (b *Body) SetPosition(p common.Vector2) {
	b.rect = b.rect.MoveTo(p)
}

func (b *Body) Depth() float64 {
	return b.depth
}

// SetDepth rejects non-positive depth. Positive values outside the depth range
// are clamped.
func (b *Body) SetDepth(depth float64) error {
	if !(depth > 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidDepth, depth)
	}
	b.depth = common.Clamp(depth, b.limits.Min, b.limits.Max)
	return nil
}

func (b *Body) Zoom(factor float64) {
	if !(factor > 0) {
		return
	}
	b.depth = common.Clamp(b.depth*factor, b.limits.Min, b.limits.Max)
}

// SetDepthRange replaces the zoom bounds and re-clamps the current depth.
func (b *Body) SetDepthRange(r DepthRange) error {
	if err := r.Validate(); err != nil {
		return err
	}
	b.limits = r
	b.depth = common.Clamp(b.depth, r.Min, r.Max)
	return nil
}

func (b *Body) DepthRange() DepthRange {
	return b.limits
}

func (b *Body) Velocity() common.Vector2 {
	return b.velocity
}

func (b *Body) Accelerate(delta common.Vector2) {
	b.velocity = b.velocity.Add(delta)
}

func (b *Body) Advance() {
	b.AdvanceBy(b.velocity)
}

func (b *Body) AdvanceBy(v common.Vector2) {
	b.rect = b.rect.Translate(v)
}
