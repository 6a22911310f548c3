package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/parallax/input"
)

var termKeys = map[tcell.Key]input.Key{
	tcell.KeyUp:    input.KeyArrowUp,
	tcell.KeyDown:  input.KeyArrowDown,
	tcell.KeyLeft:  input.KeyArrowLeft,
	tcell.KeyRight: input.KeyArrowRight,
	tcell.KeyEnter: input.KeyEnter,
	tcell.KeyTab:   input.KeyTab,
}

// termSource drains tcell events without blocking. Every key-down is paired
// with a key-up on the following poll. Escape goes through the bindings like
// any key; Ctrl-C always quits.
type termSource struct {
	events   <-chan tcell.Event
	onResize func()

	release []input.Key
	out     []input.Event
}

func newTermSource(events <-chan tcell.Event, onResize func()) *termSource {
	return &termSource{events: events, onResize: onResize}
}

func (s *termSource) Poll() []input.Event {
	s.out = s.out[:0]
	for _, k := range s.release {
		s.out = append(s.out, input.KeyUp(k))
	}
	s.release = s.release[:0]

	for {
		select {
		case ev := <-s.events:
			s.handle(ev)
		default:
			return s.out
		}
	}
}

func (s *termSource) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isInterrupt(ev) {
			s.out = append(s.out, input.Quit())
			return
		}
		k, ok := termKey(ev)
		if !ok {
			return
		}
		s.out = append(s.out, input.KeyDown(k))
		s.release = append(s.release, k)
	case *tcell.EventResize:
		if s.onResize != nil {
			s.onResize()
		}
	}
}

func isInterrupt(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	return ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C')
}

func termKey(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return input.RuneKey(ev.Rune()), true
	case tcell.KeyEscape:
		return input.KeyEscape, true
	}
	k, ok := termKeys[ev.Key()]
	return k, ok
}
