package obj

import (
	"fmt"

	"github.com/milk9111/parallax/common"
)

// Project converts a world rectangle at depth into a screen rectangle for a
// camera at camPos and camDepth looking through a viewport.
//
// The scale is depth/camDepth. Scaling is anchored on the viewport center:
// the world point camPos + viewport/2 always lands on the screen center, and
// every other point moves away from or toward it by the scale. Bodies deeper
// than the camera therefore look larger and sweep faster as the camera moves;
// shallower ones look smaller and lag behind. Results truncate toward zero.
func Project(viewport common.Size, camPos common.Vector2, camDepth float64, rect common.Rect, depth float64) (common.Rect, error) {
	if !(camDepth > 0) {
		return common.Rect{}, fmt.Errorf("%w: camera depth %g", ErrInvalidDepth, camDepth)
	}
	if !(depth > 0) {
		return common.Rect{}, fmt.Errorf("%w: entity depth %g", ErrInvalidDepth, depth)
	}

	scale := depth / camDepth
	halfW := float64(viewport.Width) / 2
	halfH := float64(viewport.Height) / 2

	x := halfW - (halfW+float64(camPos.X-rect.X))*scale
	y := halfH - (halfH+float64(camPos.Y-rect.Y))*scale

	return common.Rect{
		X:      common.Truncate(x),
		Y:      common.Truncate(y),
		Width:  common.Truncate(float64(rect.Width) * scale),
		Height: common.Truncate(float64(rect.Height) * scale),
	}, nil
}
