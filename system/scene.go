package system

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/milk9111/parallax/common"
	"github.com/milk9111/parallax/input"
	"github.com/milk9111/parallax/obj"
	"github.com/milk9111/parallax/prefabs"
)

// Scene is everything one run of the game updates and draws.
type Scene struct {
	Name       string
	Background color.Color
	Camera     *obj.Camera
	Entity     *obj.ControlledEntity
	Statics    []*obj.StaticEntity
	Shake      obj.ShakeParams
	Bindings   input.MovementMap
}

// BuildScene turns a validated scene spec into live objects. rng drives the
// camera shake; nil seeds a fresh source.
func BuildScene(spec *prefabs.SceneSpec, rng *rand.Rand) (*Scene, error) {
	if spec == nil {
		return nil, fmt.Errorf("system: nil scene spec")
	}
	limits := obj.DepthRange{Min: spec.DepthLimits.Min, Max: spec.DepthLimits.Max}
	if err := limits.Validate(); err != nil {
		return nil, fmt.Errorf("system: %w", err)
	}
	if !limits.Contains(obj.BaselineDepth) || !limits.Contains(spec.Camera.Depth) {
		return nil, fmt.Errorf("system: %w: [%g, %g] must contain depth 1 and camera depth %g",
			obj.ErrInvalidRange, limits.Min, limits.Max, spec.Camera.Depth)
	}

	viewport := common.Size{Width: spec.Viewport.Width, Height: spec.Viewport.Height}
	cam, err := obj.NewCamera(viewport, common.Vector2{X: spec.Camera.X, Y: spec.Camera.Y}, spec.Camera.Depth, rng)
	if err != nil {
		return nil, fmt.Errorf("system: %w", err)
	}
	if err := cam.SetDepthRange(limits); err != nil {
		return nil, fmt.Errorf("system: camera: %w", err)
	}
	// NewCamera clamps to the default range; put back a depth only the scene
	// range allows.
	if err := cam.SetDepth(spec.Camera.Depth); err != nil {
		return nil, fmt.Errorf("system: camera: %w", err)
	}

	entity := obj.NewControlledEntity(rectOf(spec.Controlled.Rect), colorOf(spec.Controlled.Color))
	if err := entity.SetDepthRange(limits); err != nil {
		return nil, fmt.Errorf("system: entity: %w", err)
	}

	statics, err := BuildStatics(spec.Statics, limits)
	if err != nil {
		return nil, err
	}

	shake := obj.ShakeParams{Duration: spec.Shake.Duration, Amplitude: spec.Shake.Amplitude, Unit: spec.Shake.Unit}
	if err := shake.Validate(); err != nil {
		return nil, fmt.Errorf("system: %w", err)
	}

	bindings, err := input.NewMovementMap(spec.Bindings)
	if err != nil {
		return nil, fmt.Errorf("system: %w", err)
	}

	return &Scene{
		Name:       spec.Name,
		Background: colorOf(spec.Background),
		Camera:     cam,
		Entity:     entity,
		Statics:    statics,
		Shake:      shake,
		Bindings:   bindings,
	}, nil
}

// BuildStatics lays out and constructs the static batch. Every static depth
// must lie inside limits.
func BuildStatics(spec prefabs.StaticsSpec, limits obj.DepthRange) ([]*obj.StaticEntity, error) {
	layout, err := prefabs.LayoutStatics(spec)
	if err != nil {
		return nil, fmt.Errorf("system: %w", err)
	}
	statics := make([]*obj.StaticEntity, 0, len(layout))
	for i, s := range layout {
		st, err := obj.NewStaticEntityInRange(rectOf(s.Rect), s.Depth, colorOf(s.Color), limits)
		if err != nil {
			return nil, fmt.Errorf("system: statics[%d]: %w", i, err)
		}
		statics = append(statics, st)
	}
	return statics, nil
}

func rectOf(r prefabs.RectSpec) common.Rect {
	return common.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func colorOf(c *prefabs.YAMLColor) color.Color {
	if c == nil || c.Color == nil {
		return color.White
	}
	return c.Color
}
