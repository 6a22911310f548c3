package prefabs

import (
	"context"
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// layoutTimeout bounds a layout script so a runaway loop cannot hang startup
// or a hot reload.
const layoutTimeout = 2 * time.Second

// LayoutStatics expands a StaticsSpec into concrete entries: the script's
// output first, then the explicit Entities. Entries without a depth or color
// take the batch defaults.
func LayoutStatics(spec StaticsSpec) ([]StaticSpec, error) {
	var out []StaticSpec
	if spec.Script != "" {
		scripted, err := runLayoutScript(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, scripted...)
	}
	out = append(out, spec.Entities...)

	for i := range out {
		if out[i].Depth == 0 {
			out[i].Depth = spec.Depth
		}
		if out[i].Color == nil {
			out[i].Color = spec.Color
		}
		if err := validateStaticDepth(fmt.Sprintf("statics[%d]", i), out[i].Depth); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
		}
	}
	return out, nil
}

func runLayoutScript(spec StaticsSpec) ([]StaticSpec, error) {
	src, err := LoadScript(spec.Script)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load layout %s: %w", spec.Script, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("count", spec.Count)
	_ = script.Add("step", spec.Step)
	_ = script.Add("size", spec.Size)
	_ = script.Add("depth", spec.Depth)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))

	ctx, cancel := context.WithTimeout(context.Background(), layoutTimeout)
	defer cancel()

	compiled, err := script.RunContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("prefabs: run layout %s: %w", spec.Script, err)
	}

	if !compiled.IsDefined("statics") {
		return nil, fmt.Errorf("prefabs: layout %s: no statics variable", spec.Script)
	}
	items := compiled.Get("statics").Array()

	out := make([]StaticSpec, 0, len(items))
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("prefabs: layout %s: statics[%d] is %T, want map", spec.Script, i, item)
		}
		var s StaticSpec
		var fieldErr error
		s.Rect.X, fieldErr = intField(m, "x", 0, fieldErr)
		s.Rect.Y, fieldErr = intField(m, "y", 0, fieldErr)
		s.Rect.Width, fieldErr = intField(m, "width", spec.Size, fieldErr)
		s.Rect.Height, fieldErr = intField(m, "height", spec.Size, fieldErr)
		if fieldErr != nil {
			return nil, fmt.Errorf("prefabs: layout %s: statics[%d]: %w", spec.Script, i, fieldErr)
		}
		if d, ok := m["depth"]; ok {
			f, ok := toFloat(d)
			if !ok {
				return nil, fmt.Errorf("prefabs: layout %s: statics[%d]: depth is %T", spec.Script, i, d)
			}
			s.Depth = f
		}
		if c, ok := m["color"].(string); ok {
			parsed, err := ParseHexColor(c)
			if err != nil {
				return nil, fmt.Errorf("prefabs: layout %s: statics[%d]: %w", spec.Script, i, err)
			}
			s.Color = &YAMLColor{Color: parsed}
		}
		out = append(out, s)
	}
	return out, nil
}

// intField reads an integer field, keeping the first error seen.
func intField(m map[string]any, key string, def int, prev error) (int, error) {
	if prev != nil {
		return 0, prev
	}
	v, ok := m[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("%s is %T, want number", key, v)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
