package input

import "fmt"

// EventKind tags a raw input event.
type EventKind uint8

const (
	EventQuit EventKind = iota + 1
	EventKeyDown
	EventKeyUp
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		return "key-down"
	case EventKeyUp:
		return "key-up"
	default:
		return fmt.Sprintf("EventKind(%d)", uint8(k))
	}
}

// Event is one discrete input event. Key is unset for EventQuit.
type Event struct {
	Kind EventKind
	Key  Key
}

func Quit() Event {
	return Event{Kind: EventQuit}
}

func KeyDown(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

func KeyUp(k Key) Event {
	return Event{Kind: EventKeyUp, Key: k}
}

func (e Event) String() string {
	if e.Kind == EventQuit {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", e.Kind, e.Key)
}
