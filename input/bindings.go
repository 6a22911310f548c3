package input

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/parallax/common"
)

var (
	ErrDuplicateBinding = errors.New("input: key bound twice")
	ErrUnknownAction    = errors.New("input: unknown action name")
)

// Subject is the body an action applies to.
type Subject uint8

const (
	SubjectNone Subject = iota
	SubjectEntity
	SubjectCamera
)

func (s Subject) String() string {
	switch s {
	case SubjectEntity:
		return "entity"
	case SubjectCamera:
		return "camera"
	default:
		return "none"
	}
}

// Action is what a bound key does.
type Action uint8

const (
	ActionNone Action = iota
	ActionIncreaseX
	ActionDecreaseX
	ActionIncreaseY
	ActionDecreaseY
	ActionIncreaseDepth
	ActionDecreaseDepth
	ActionShake
	ActionQuit
)

// Delta is the velocity change a held directional action contributes. Screen
// y grows downward, so "up" is DecreaseY.
func (a Action) Delta() common.Vector2 {
	switch a {
	case ActionIncreaseX:
		return common.Vector2{X: 1}
	case ActionDecreaseX:
		return common.Vector2{X: -1}
	case ActionIncreaseY:
		return common.Vector2{Y: 1}
	case ActionDecreaseY:
		return common.Vector2{Y: -1}
	default:
		return common.Vector2{}
	}
}

// Directional reports whether the action is a held, velocity-type action.
func (a Action) Directional() bool {
	return !a.Delta().IsZero()
}

// Binding pairs a subject with an action.
type Binding struct {
	Subject Subject
	Action  Action
}

// actionRegistry maps config action names to bindings.
var actionRegistry = map[string]Binding{
	"entity_left":     {SubjectEntity, ActionDecreaseX},
	"entity_right":    {SubjectEntity, ActionIncreaseX},
	"entity_up":       {SubjectEntity, ActionDecreaseY},
	"entity_down":     {SubjectEntity, ActionIncreaseY},
	"entity_forward":  {SubjectEntity, ActionIncreaseDepth},
	"entity_backward": {SubjectEntity, ActionDecreaseDepth},
	"camera_left":     {SubjectCamera, ActionDecreaseX},
	"camera_right":    {SubjectCamera, ActionIncreaseX},
	"camera_up":       {SubjectCamera, ActionDecreaseY},
	"camera_down":     {SubjectCamera, ActionIncreaseY},
	"camera_forward":  {SubjectCamera, ActionIncreaseDepth},
	"camera_backward": {SubjectCamera, ActionDecreaseDepth},
	"camera_shake":    {SubjectCamera, ActionShake},
	"quit":            {SubjectNone, ActionQuit},
}

// DefaultKeys is the stock layout: the entity on the left hand (s f e d, w/r
// for depth), the camera on the right hand (j l i k, u/o for depth), t to
// shake.
func DefaultKeys() map[string]Key {
	return map[string]Key{
		"entity_left":     's',
		"entity_right":    'f',
		"entity_up":       'e',
		"entity_down":     'd',
		"entity_forward":  'w',
		"entity_backward": 'r',
		"camera_left":     'j',
		"camera_right":    'l',
		"camera_up":       'i',
		"camera_down":     'k',
		"camera_forward":  'u',
		"camera_backward": 'o',
		"camera_shake":    't',
		"quit":            KeyEscape,
	}
}

// MovementMap is the fixed key → binding table, built once at startup.
type MovementMap map[Key]Binding

// NewMovementMap resolves action names to keys. Actions missing from keys
// keep their default key; KeyNone unbinds an action.
func NewMovementMap(keys map[string]Key) (MovementMap, error) {
	merged := DefaultKeys()
	for name, k := range keys {
		if _, ok := actionRegistry[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
		}
		merged[name] = k
	}

	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	m := make(MovementMap, len(merged))
	owner := make(map[Key]string, len(merged))
	for _, name := range names {
		k := merged[name]
		if k == KeyNone {
			continue
		}
		if prev, dup := owner[k]; dup {
			return nil, fmt.Errorf("%w: %s used by %s and %s", ErrDuplicateBinding, k, prev, name)
		}
		owner[k] = name
		m[k] = actionRegistry[name]
	}
	return m, nil
}

// Lookup returns the binding for k, if any.
func (m MovementMap) Lookup(k Key) (Binding, bool) {
	b, ok := m[k]
	return b, ok
}
