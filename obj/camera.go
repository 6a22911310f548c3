package obj

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/parallax/common"
)

var ErrInvalidViewport = errors.New("obj: viewport must have positive size")

// Camera is the single body every entity is projected against. Its rectangle
// spans the viewport with the origin at the top-left of the view on the
// camera's own depth plane.
type Camera struct {
	*Body

	viewport common.Size
	shake    *Shake
}

// NewCamera creates a camera for a fixed viewport. rng drives the shake
// jitter; nil seeds a fresh source.
func NewCamera(viewport common.Size, origin common.Vector2, depth float64, rng *rand.Rand) (*Camera, error) {
	if viewport.Width <= 0 || viewport.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, viewport.Width, viewport.Height)
	}
	rect := common.Rect{X: origin.X, Y: origin.Y, Width: viewport.Width, Height: viewport.Height}
	body, err := NewBody(rect, depth)
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	return &Camera{Body: body, viewport: viewport, shake: NewShake(rng)}, nil
}

// Viewport returns the fixed output size.
func (c *Camera) Viewport() common.Size {
	return c.viewport
}

// Advance moves the camera by its velocity. A running shake keeps the motion
// when it restores.
func (c *Camera) Advance() {
	v := c.Velocity()
	c.Body.Advance()
	c.shake.carry(v)
}

// Shake starts or extends a camera shake.
func (c *Camera) Shake(p ShakeParams) error {
	return c.shake.Trigger(c.Body, p)
}

// AdvanceShake runs one shake tick. Call it once per tick whether or not a
// shake is active.
func (c *Camera) AdvanceShake() {
	c.shake.Advance(c.Body)
}

func (c *Camera) ShakeState() ShakeState {
	return c.shake.State()
}

func (c *Camera) Shaking() bool {
	return c.shake.Active()
}

// Project maps a drawable's world rectangle to the screen as seen by this camera.
func (c *Camera) Project(d Drawable) (common.Rect, error) {
	return Project(c.viewport, c.Position().Origin(), c.Depth(), d.Position(), d.Depth())
}
