package input

import (
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/milk9111/parallax/common"
	"github.com/milk9111/parallax/obj"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	router *Router
	entity *obj.ControlledEntity
	camera *obj.Camera
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	m, err := NewMovementMap(nil)
	require.NoError(t, err)
	cam, err := obj.NewCamera(common.Size{Width: 800, Height: 600}, common.Vector2{}, 1, rand.New(rand.NewPCG(7, 7)))
	require.NoError(t, err)
	return &fixture{
		router: NewRouter(m, obj.DefaultShake),
		entity: obj.NewControlledEntity(common.Rect{Width: 16, Height: 16}, color.White),
		camera: cam,
	}
}

func (f *fixture) route(events ...Event) []Outcome {
	out := make([]Outcome, 0, len(events))
	for _, ev := range events {
		out = append(out, f.router.Route(ev, f.entity, f.camera))
	}
	return out
}

func TestRouteDirections(t *testing.T) {
	cases := []struct {
		name       string
		key        Key
		wantEntity common.Vector2
		wantCamera common.Vector2
	}{
		{"entity_right", 'f', common.Vector2{X: 1}, common.Vector2{}},
		{"entity_left", 's', common.Vector2{X: -1}, common.Vector2{}},
		{"entity_up", 'e', common.Vector2{Y: -1}, common.Vector2{}},
		{"entity_down", 'd', common.Vector2{Y: 1}, common.Vector2{}},
		{"camera_right", 'l', common.Vector2{}, common.Vector2{X: 1}},
		{"camera_left", 'j', common.Vector2{}, common.Vector2{X: -1}},
		{"camera_up", 'i', common.Vector2{}, common.Vector2{Y: -1}},
		{"camera_down", 'k', common.Vector2{}, common.Vector2{Y: 1}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			assert.Equal(t, []Outcome{OutcomeMoved}, f.route(KeyDown(c.key)))
			assert.Equal(t, c.wantEntity, f.entity.Velocity())
			assert.Equal(t, c.wantCamera, f.camera.Velocity())

			f.route(KeyUp(c.key))
			assert.Equal(t, common.Vector2{}, f.entity.Velocity())
			assert.Equal(t, common.Vector2{}, f.camera.Velocity())
		})
	}
}

func TestRouteOppositeKeysCancel(t *testing.T) {
	orders := map[string][]Event{
		"release_in_press_order":   {KeyDown('f'), KeyDown('s'), KeyUp('f'), KeyUp('s')},
		"release_in_reverse_order": {KeyDown('f'), KeyDown('s'), KeyUp('s'), KeyUp('f')},
	}

	for name, events := range orders {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			f.route(events[:2]...)
			assert.Equal(t, common.Vector2{}, f.entity.Velocity(), "held opposite keys cancel")

			f.route(events[2])
			assert.NotEqual(t, common.Vector2{}, f.entity.Velocity())

			f.route(events[3])
			assert.Equal(t, common.Vector2{}, f.entity.Velocity())
			assert.Equal(t, 0, f.router.Held())
		})
	}
}

func TestRouteDiagonalComposes(t *testing.T) {
	f := newFixture(t)
	f.route(KeyDown('f'), KeyDown('d'), KeyDown('l'))
	assert.Equal(t, common.Vector2{X: 1, Y: 1}, f.entity.Velocity())
	assert.Equal(t, common.Vector2{X: 1}, f.camera.Velocity())
}

func TestRouteIgnoresUnmatchedKeyUpAndRepeats(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []Outcome{OutcomeIgnored}, f.route(KeyUp('f')))
	assert.Equal(t, common.Vector2{}, f.entity.Velocity(), "unmatched key-up must not drift")

	f.route(KeyDown('f'), KeyDown('f'), KeyDown('f'))
	assert.Equal(t, common.Vector2{X: 1}, f.entity.Velocity(), "key repeat must not stack")

	f.route(KeyUp('f'), KeyUp('f'))
	assert.Equal(t, common.Vector2{}, f.entity.Velocity())
}

func TestRouteDepth(t *testing.T) {
	f := newFixture(t)

	f.route(KeyDown('w'), KeyUp('w'), KeyDown('w'), KeyUp('w'))
	assert.Equal(t, 4.0, f.entity.Depth(), "forward compounds geometrically")

	f.route(KeyDown('r'))
	assert.Equal(t, 2.0, f.entity.Depth())
	assert.Equal(t, []Outcome{OutcomeIgnored}, f.route(KeyUp('r')), "depth key-up is a no-op")
	assert.Equal(t, 2.0, f.entity.Depth())

	f.route(KeyDown('o'))
	assert.Equal(t, 0.5, f.camera.Depth())
	f.route(KeyUp('o'), KeyDown('u'), KeyUp('u'), KeyDown('u'))
	assert.Equal(t, 2.0, f.camera.Depth())
	assert.Equal(t, 2.0, f.entity.Depth(), "camera depth keys leave the entity alone")
}

func TestRouteShakeAndQuit(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []Outcome{OutcomeShake, OutcomeIgnored}, f.route(KeyDown('t'), KeyUp('t')))
	state := f.camera.ShakeState()
	assert.Equal(t, obj.DefaultShake.Ticks(), state.Remaining)
	assert.Equal(t, obj.DefaultShake.Amplitude, state.Amplitude)

	assert.Equal(t, []Outcome{OutcomeQuit}, f.route(Quit()))
	assert.Equal(t, []Outcome{OutcomeQuit}, f.route(KeyDown(KeyEscape)))
}

func TestRouteIgnoresUnboundKeys(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, []Outcome{OutcomeIgnored, OutcomeIgnored}, f.route(KeyDown('z'), KeyUp('z')))
	assert.Equal(t, 0, f.router.Held())
}

func TestReleaseAll(t *testing.T) {
	f := newFixture(t)
	f.route(KeyDown('f'), KeyDown('e'), KeyDown('j'), KeyDown('w'))
	require.Equal(t, 4, f.router.Held())

	f.router.ReleaseAll(f.entity, f.camera)
	assert.Equal(t, 0, f.router.Held())
	assert.Equal(t, common.Vector2{}, f.entity.Velocity())
	assert.Equal(t, common.Vector2{}, f.camera.Velocity())
	assert.Equal(t, 2.0, f.entity.Depth(), "release does not undo zoom")
}

func TestRouteWithoutBodies(t *testing.T) {
	f := newFixture(t)
	cases := []Event{KeyDown('t'), KeyDown('f'), KeyDown('l'), KeyDown('w'), KeyDown('u')}

	for _, ev := range cases {
		t.Run(ev.String(), func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.Equal(t, OutcomeIgnored, f.router.Route(ev, nil, nil))
			})
		})
	}
}

func TestRouteArrowKeys(t *testing.T) {
	m, err := NewMovementMap(map[string]Key{
		"entity_up":    KeyArrowUp,
		"entity_down":  KeyArrowDown,
		"entity_left":  KeyArrowLeft,
		"entity_right": KeyArrowRight,
	})
	require.NoError(t, err)
	f := newFixture(t)
	f.router = NewRouter(m, obj.DefaultShake)

	f.route(KeyDown(KeyArrowUp), KeyDown(KeyArrowRight))
	assert.Equal(t, common.Vector2{X: 1, Y: -1}, f.entity.Velocity())

	f.route(KeyUp(KeyArrowUp), KeyDown(KeyArrowDown), KeyUp(KeyArrowRight), KeyDown(KeyArrowLeft))
	assert.Equal(t, common.Vector2{X: -1, Y: 1}, f.entity.Velocity())
	assert.Equal(t, "up", KeyArrowUp.String())
}
