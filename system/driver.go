package system

import (
	"errors"
	"log"

	"github.com/milk9111/parallax/input"
	"github.com/milk9111/parallax/prefabs"
)

// ErrQuit is returned by Update and Tick once a quit event has been routed.
var ErrQuit = errors.New("system: quit")

// EventSource yields the events queued since the last poll without blocking.
type EventSource interface {
	Poll() []input.Event
}

// Driver owns the scene and runs it one tick at a time. It hands the camera
// and the controlled entity to the router on every event.
type Driver struct {
	scene     *Scene
	router    *input.Router
	scheduler *Scheduler

	frame int
	quit  bool

	// OnShake is called after a shake key starts or extends a shake.
	OnShake func()
}

func NewDriver(scene *Scene) *Driver {
	return &Driver{
		scene:     scene,
		router:    input.NewRouter(scene.Bindings, scene.Shake),
		scheduler: DefaultScheduler(),
	}
}

// Update routes events in order, then advances the camera, its shake and the
// controlled entity. Once a quit event is seen the rest of the batch is
// dropped, the tick does not advance, and ErrQuit is returned from then on.
func (d *Driver) Update(events []input.Event) error {
	if d.quit {
		return ErrQuit
	}
	for _, ev := range events {
		switch d.router.Route(ev, d.scene.Entity, d.scene.Camera) {
		case input.OutcomeQuit:
			d.quit = true
			return ErrQuit
		case input.OutcomeShake:
			if d.OnShake != nil {
				d.OnShake()
			}
		}
	}

	d.scheduler.Update(d.scene)
	d.frame++
	return nil
}

// Draw paints the current scene into sink.
func (d *Driver) Draw(sink DrawSink) {
	Render(d.scene, sink)
}

// Tick polls src, updates and draws. A quit skips the draw.
func (d *Driver) Tick(src EventSource, sink DrawSink) error {
	if err := d.Update(src.Poll()); err != nil {
		return err
	}
	d.Draw(sink)
	return nil
}

// Release drops every held key, as if each had been released. Backends call
// it when they lose focus.
func (d *Driver) Release() {
	d.router.ReleaseAll(d.scene.Entity, d.scene.Camera)
}

// Reload replaces the static batch and background from spec. The camera, the
// controlled entity, bindings and held keys are untouched. On error the
// running scene is left as it was.
func (d *Driver) Reload(spec *prefabs.SceneSpec) error {
	statics, err := BuildStatics(spec.Statics, d.scene.Camera.DepthRange())
	if err != nil {
		return err
	}
	d.scene.Statics = statics
	d.scene.Background = colorOf(spec.Background)
	log.Printf("system: reloaded %d statics", len(statics))
	return nil
}

func (d *Driver) Scene() *Scene {
	return d.scene
}

// Frame is the number of completed updates.
func (d *Driver) Frame() int {
	return d.frame
}

// Held is the number of bound keys currently held down.
func (d *Driver) Held() int {
	return d.router.Held()
}
