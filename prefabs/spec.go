package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/parallax/common"
	"github.com/milk9111/parallax/input"
	"gopkg.in/yaml.v3"
)

var ErrInvalidScene = errors.New("prefabs: invalid scene")

// DefaultScene is the embedded scene file name.
const DefaultScene = "scene.yaml"

// SceneSpec is the whole startup configuration of a scene.
type SceneSpec struct {
	Name        string               `yaml:"name"`
	Viewport    ViewportSpec         `yaml:"viewport"`
	Background  *YAMLColor           `yaml:"background"`
	Camera      CameraSpec           `yaml:"camera"`
	DepthLimits DepthLimitsSpec      `yaml:"depth_limits"`
	Controlled  ControlledSpec       `yaml:"controlled"`
	Statics     StaticsSpec          `yaml:"statics"`
	Shake       ShakeSpec            `yaml:"shake"`
	Bindings    map[string]input.Key `yaml:"bindings"`
}

type ViewportSpec struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type CameraSpec struct {
	X     int     `yaml:"x"`
	Y     int     `yaml:"y"`
	Depth float64 `yaml:"depth"`
}

type DepthLimitsSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func (d DepthLimitsSpec) contains(depth float64) bool {
	return depth >= d.Min && depth <= d.Max
}

type RectSpec struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type ControlledSpec struct {
	Rect  RectSpec   `yaml:"rect"`
	Color *YAMLColor `yaml:"color"`
}

// StaticsSpec describes the static batch: a layout script run with Count,
// Step and Size, followed by any explicit Entities. Depth and Color are the
// defaults for entries that leave them out.
type StaticsSpec struct {
	Script   string       `yaml:"script"`
	Count    int          `yaml:"count"`
	Step     int          `yaml:"step"`
	Size     int          `yaml:"size"`
	Depth    float64      `yaml:"depth"`
	Color    *YAMLColor   `yaml:"color"`
	Entities []StaticSpec `yaml:"entities"`
}

type StaticSpec struct {
	Rect  RectSpec   `yaml:"rect"`
	Depth float64    `yaml:"depth"`
	Color *YAMLColor `yaml:"color"`
}

type ShakeSpec struct {
	Duration  int `yaml:"duration"`
	Amplitude int `yaml:"amplitude"`
	Unit      int `yaml:"unit"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadSceneSpec loads, defaults and validates a scene file.
func LoadSceneSpec(filename string) (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](filename)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return &spec, nil
}

// ParseSceneSpec is LoadSceneSpec for in-memory data.
func ParseSceneSpec(data []byte) (*SceneSpec, error) {
	var spec SceneSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal scene: %w", err)
	}
	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *SceneSpec) applyDefaults() {
	if s.Viewport.Width == 0 && s.Viewport.Height == 0 {
		s.Viewport = ViewportSpec{Width: common.BaseWidth, Height: common.BaseHeight}
	}
	if s.Camera.Depth == 0 {
		s.Camera.Depth = 1
	}
	if s.DepthLimits.Min == 0 && s.DepthLimits.Max == 0 {
		s.DepthLimits = DepthLimitsSpec{Min: 1.0 / 1024, Max: 1024}
	}
	if s.Background == nil {
		s.Background = &YAMLColor{Color: color.NRGBA{R: 150, G: 150, B: 150, A: 255}}
	}
	if s.Controlled.Color == nil {
		s.Controlled.Color = &YAMLColor{Color: color.NRGBA{R: 250, G: 250, B: 250, A: 255}}
	}
	if s.Statics.Depth == 0 {
		s.Statics.Depth = 0.5
	}
	if s.Statics.Color == nil {
		s.Statics.Color = &YAMLColor{Color: color.NRGBA{R: 250, G: 150, B: 150, A: 255}}
	}
	if s.Shake == (ShakeSpec{}) {
		s.Shake = ShakeSpec{Duration: 3, Amplitude: 2, Unit: 10}
	}
}

// Validate checks the invariants the scene builder relies on.
func (s *SceneSpec) Validate() error {
	var errs []error
	if s.Viewport.Width <= 0 || s.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport %dx%d must be positive", s.Viewport.Width, s.Viewport.Height))
	}
	if !(s.Camera.Depth > 0) {
		errs = append(errs, fmt.Errorf("camera depth %g must be positive", s.Camera.Depth))
	}
	limitsOK := s.DepthLimits.Min > 0 && s.DepthLimits.Max >= s.DepthLimits.Min
	if !limitsOK {
		errs = append(errs, fmt.Errorf("depth limits [%g, %g] are not a positive range", s.DepthLimits.Min, s.DepthLimits.Max))
	} else {
		if !s.DepthLimits.contains(1) {
			errs = append(errs, fmt.Errorf("depth limits [%g, %g] must contain the baseline depth 1", s.DepthLimits.Min, s.DepthLimits.Max))
		}
		if s.Camera.Depth > 0 && !s.DepthLimits.contains(s.Camera.Depth) {
			errs = append(errs, fmt.Errorf("camera depth %g is outside depth limits [%g, %g]", s.Camera.Depth, s.DepthLimits.Min, s.DepthLimits.Max))
		}
	}
	if s.Statics.Count < 0 {
		errs = append(errs, fmt.Errorf("statics count %d is negative", s.Statics.Count))
	}
	if err := validateStaticDepth("statics", s.Statics.Depth); err != nil {
		errs = append(errs, err)
	} else if limitsOK && !s.DepthLimits.contains(s.Statics.Depth) {
		errs = append(errs, fmt.Errorf("statics depth %g is outside depth limits", s.Statics.Depth))
	}
	for i, e := range s.Statics.Entities {
		if e.Depth == 0 {
			continue
		}
		where := fmt.Sprintf("statics.entities[%d]", i)
		if err := validateStaticDepth(where, e.Depth); err != nil {
			errs = append(errs, err)
		} else if limitsOK && !s.DepthLimits.contains(e.Depth) {
			errs = append(errs, fmt.Errorf("%s depth %g is outside depth limits", where, e.Depth))
		}
	}
	if s.Shake.Duration < 0 || s.Shake.Amplitude < 0 || s.Shake.Unit < 1 {
		errs = append(errs, fmt.Errorf("shake %+v needs duration>=0 amplitude>=0 unit>=1", s.Shake))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidScene, errors.Join(errs...))
}

func validateStaticDepth(where string, depth float64) error {
	if !(depth > 0) {
		return fmt.Errorf("%s depth %g must be positive", where, depth)
	}
	if depth == 1 {
		return fmt.Errorf("%s depth must not be 1, statics on the baseline plane show no parallax", where)
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// ParseHexColor accepts #rrggbb or #rrggbbaa, with or without the #.
func ParseHexColor(v string) (color.NRGBA, error) {
	s := strings.TrimPrefix(v, "#")

	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		b, err := parse(i * 2)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color format: %s: %w", v, err)
		}
		rgba[i] = b
	}
	return color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}, nil
}
