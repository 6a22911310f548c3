package obj

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/milk9111/parallax/common"
)

// Drawable is what the render pass needs from an entity.
type Drawable interface {
	Position() common.Rect
	Depth() float64
	Color() color.Color
}

// BaselineDepth is the plane where apparent size equals world size under an
// untransformed camera.
const BaselineDepth = 1.0

// ControlledEntity is the body driven by the entity key bindings.
type ControlledEntity struct {
	*Body
	color color.Color
}

// NewControlledEntity places the controlled entity on the baseline plane.
func NewControlledEntity(rect common.Rect, clr color.Color) *ControlledEntity {
	// BaselineDepth is positive so NewBody cannot fail here.
	body, _ := NewBody(rect, BaselineDepth)
	return &ControlledEntity{Body: body, color: clr}
}

func (e *ControlledEntity) Color() color.Color {
	return e.color
}

var ErrFixedDepth = errors.New("obj: static entity depth is fixed")

// StaticEntity is a body whose velocity stays zero and whose depth is fixed
// after construction. It exists to show parallax against the camera and is
// never an input target. Its position can still be set directly.
type StaticEntity struct {
	*Body
	color color.Color
}

// NewStaticEntity builds a static within the default depth range.
func NewStaticEntity(rect common.Rect, depth float64, clr color.Color) (*StaticEntity, error) {
	return NewStaticEntityInRange(rect, depth, clr, DefaultDepthRange)
}

// NewStaticEntityInRange rejects non-positive depth, depth outside r and the
// baseline depth, since a static on the baseline plane shows no parallax.
// Unlike other bodies a static is never clamped: its depth is exactly the one
// asked for.
func NewStaticEntityInRange(rect common.Rect, depth float64, clr color.Color, r DepthRange) (*StaticEntity, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if depth == BaselineDepth {
		return nil, fmt.Errorf("%w: static entities must not sit on the baseline plane", ErrInvalidDepth)
	}
	if depth > 0 && !r.Contains(depth) {
		return nil, fmt.Errorf("%w: static depth %g outside [%g, %g]", ErrInvalidDepth, depth, r.Min, r.Max)
	}
	body, err := NewBodyInRange(rect, depth, r)
	if err != nil {
		return nil, fmt.Errorf("static entity: %w", err)
	}
	return &StaticEntity{Body: body, color: clr}, nil
}

func (s *StaticEntity) Color() color.Color {
	return s.color
}

// Accelerate is a no-op: statics keep a zero velocity.
func (s *StaticEntity) Accelerate(common.Vector2) {}

// Zoom is a no-op: static depth is fixed at construction.
func (s *StaticEntity) Zoom(float64) {}

// SetDepth always fails.
func (s *StaticEntity) SetDepth(float64) error {
	return ErrFixedDepth
}

// SetDepthRange fails too, since narrowing the range would clamp the depth.
func (s *StaticEntity) SetDepthRange(DepthRange) error {
	return ErrFixedDepth
}
