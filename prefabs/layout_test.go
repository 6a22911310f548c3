package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutStaticsDefaultBatch(t *testing.T) {
	spec, err := ParseSceneSpec([]byte(`
statics:
  script: statics.tengo
  count: 20
  step: 20
  size: 16
`))
	require.NoError(t, err)

	statics, err := LayoutStatics(spec.Statics)
	require.NoError(t, err)
	require.Len(t, statics, 20)

	for i, s := range statics {
		assert.Equal(t, RectSpec{X: i * 20, Y: i * 20, Width: 16, Height: 16}, s.Rect, "static %d", i)
		assert.Equal(t, 0.5, s.Depth)
		assert.Equal(t, color.NRGBA{R: 250, G: 150, B: 150, A: 255}, s.Color.Color)
	}
}

func TestLayoutStaticsAppendsEntities(t *testing.T) {
	spec, err := LoadSceneSpec(DefaultScene)
	require.NoError(t, err)

	statics, err := LayoutStatics(spec.Statics)
	require.NoError(t, err)
	require.Len(t, statics, 22)

	assert.Equal(t, 0.25, statics[20].Depth)
	assert.Equal(t, 2.0, statics[21].Depth)
}

func TestLayoutStaticsWithoutScript(t *testing.T) {
	statics, err := LayoutStatics(StaticsSpec{
		Depth: 0.5,
		Entities: []StaticSpec{
			{Rect: RectSpec{X: 1, Y: 2, Width: 3, Height: 4}},
		},
	})
	require.NoError(t, err)
	require.Len(t, statics, 1)
	assert.Equal(t, 0.5, statics[0].Depth)
}

func TestLayoutStaticsScriptOverrides(t *testing.T) {
	old := Dir
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = old })

	require.NoError(t, os.MkdirAll(filepath.Join(Dir, "scripts"), 0o755))
	src := `statics := [{x: 5, y: 6}, {x: 7, y: 8, width: 2, height: 3, depth: 0.125, color: "#010203"}]`
	require.NoError(t, os.WriteFile(filepath.Join(Dir, "scripts", "custom.tengo"), []byte(src), 0o644))

	statics, err := LayoutStatics(StaticsSpec{Script: "custom.tengo", Size: 10, Depth: 4})
	require.NoError(t, err)
	require.Len(t, statics, 2)

	assert.Equal(t, RectSpec{X: 5, Y: 6, Width: 10, Height: 10}, statics[0].Rect)
	assert.Equal(t, 4.0, statics[0].Depth)
	assert.Equal(t, RectSpec{X: 7, Y: 8, Width: 2, Height: 3}, statics[1].Rect)
	assert.Equal(t, 0.125, statics[1].Depth)
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 255}, statics[1].Color.Color)
}

func TestLayoutStaticsErrors(t *testing.T) {
	old := Dir
	Dir = t.TempDir()
	t.Cleanup(func() { Dir = old })
	require.NoError(t, os.MkdirAll(filepath.Join(Dir, "scripts"), 0o755))

	write := func(name, src string) {
		require.NoError(t, os.WriteFile(filepath.Join(Dir, "scripts", name), []byte(src), 0o644))
	}
	write("missing_var.tengo", `x := 1`)
	write("not_map.tengo", `statics := [1, 2]`)
	write("baseline.tengo", `statics := [{x: 0, y: 0, depth: 1}]`)
	write("syntax.tengo", `statics := [`)

	tests := []struct {
		script  string
		invalid bool
	}{
		{script: "missing_var.tengo"},
		{script: "not_map.tengo"},
		{script: "baseline.tengo", invalid: true},
		{script: "syntax.tengo"},
		{script: "absent.tengo"},
	}
	for _, tt := range tests {
		t.Run(tt.script, func(t *testing.T) {
			_, err := LayoutStatics(StaticsSpec{Script: tt.script, Size: 4, Depth: 0.5})
			require.Error(t, err)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidScene)
			}
		})
	}
}
