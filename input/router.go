package input

import (
	"log"

	"github.com/kamstrup/intmap"
	"github.com/milk9111/parallax/obj"
)

// Outcome reports what routing an event did.
type Outcome uint8

const (
	OutcomeIgnored Outcome = iota
	OutcomeMoved
	OutcomeZoomed
	OutcomeShake
	OutcomeQuit
)

// ZoomFactor is the depth multiplier for one forward press; backward divides
// by it.
const ZoomFactor = 2.0

// Shaker is the camera as the router sees it.
type Shaker interface {
	obj.MovableBody
	Shake(p obj.ShakeParams) error
}

// Router turns key events into velocity, depth and shake changes.
//
// It tracks which bound keys are held. A repeated key-down for a held key and
// a key-up for a key that is not held are both ignored, so a body's velocity
// is always the sum of the deltas of the keys currently held for it.
type Router struct {
	bindings MovementMap
	shake    obj.ShakeParams
	held     *intmap.Map[Key, Binding]
}

func NewRouter(bindings MovementMap, shake obj.ShakeParams) *Router {
	return &Router{
		bindings: bindings,
		shake:    shake,
		held:     intmap.New[Key, Binding](16),
	}
}

// Route applies one event. Bodies are passed in by the caller on every call;
// the router keeps no reference to them.
func (r *Router) Route(ev Event, entity obj.MovableBody, cam Shaker) Outcome {
	switch ev.Kind {
	case EventQuit:
		return OutcomeQuit
	case EventKeyDown:
		return r.keyDown(ev.Key, entity, cam)
	case EventKeyUp:
		return r.keyUp(ev.Key, entity, cam)
	default:
		return OutcomeIgnored
	}
}

func (r *Router) keyDown(k Key, entity obj.MovableBody, cam Shaker) Outcome {
	b, ok := r.bindings.Lookup(k)
	if !ok {
		return OutcomeIgnored
	}
	if r.held.Has(k) {
		return OutcomeIgnored
	}
	r.held.Put(k, b)

	switch b.Action {
	case ActionQuit:
		return OutcomeQuit
	case ActionShake:
		if cam == nil {
			return OutcomeIgnored
		}
		if err := cam.Shake(r.shake); err != nil {
			log.Printf("input: shake: %v", err)
			return OutcomeIgnored
		}
		return OutcomeShake
	case ActionIncreaseDepth, ActionDecreaseDepth:
		body := subject(b.Subject, entity, cam)
		if body == nil {
			return OutcomeIgnored
		}
		if b.Action == ActionIncreaseDepth {
			body.Zoom(ZoomFactor)
		} else {
			body.Zoom(1 / ZoomFactor)
		}
		return OutcomeZoomed
	}

	body := subject(b.Subject, entity, cam)
	if body == nil {
		return OutcomeIgnored
	}
	body.Accelerate(b.Action.Delta())
	return OutcomeMoved
}

func (r *Router) keyUp(k Key, entity obj.MovableBody, cam Shaker) Outcome {
	b, ok := r.held.Get(k)
	if !ok {
		return OutcomeIgnored
	}
	r.held.Del(k)
	return r.undo(b, entity, cam)
}

func (r *Router) undo(b Binding, entity obj.MovableBody, cam Shaker) Outcome {
	if !b.Action.Directional() {
		return OutcomeIgnored
	}
	body := subject(b.Subject, entity, cam)
	if body == nil {
		return OutcomeIgnored
	}
	body.Accelerate(b.Action.Delta().Scale(-1))
	return OutcomeMoved
}

// ReleaseAll behaves as if every held key was released, for when the backend
// loses focus and will never deliver the key-ups.
func (r *Router) ReleaseAll(entity obj.MovableBody, cam Shaker) {
	r.held.ForEach(func(_ Key, b Binding) bool {
		r.undo(b, entity, cam)
		return true
	})
	r.held.Clear()
}

// Held returns the number of bound keys currently held.
func (r *Router) Held() int {
	return r.held.Len()
}

func subject(s Subject, entity obj.MovableBody, cam Shaker) obj.MovableBody {
	switch s {
	case SubjectEntity:
		if entity == nil {
			return nil
		}
		return entity
	case SubjectCamera:
		if cam == nil {
			return nil
		}
		return cam
	default:
		return nil
	}
}
