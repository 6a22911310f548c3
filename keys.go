package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/parallax/input"
)

var namedEbitenKeys = map[ebiten.Key]input.Key{
	ebiten.KeySpace:      input.KeySpace,
	ebiten.KeyEscape:     input.KeyEscape,
	ebiten.KeyArrowUp:    input.KeyArrowUp,
	ebiten.KeyArrowDown:  input.KeyArrowDown,
	ebiten.KeyArrowLeft:  input.KeyArrowLeft,
	ebiten.KeyArrowRight: input.KeyArrowRight,
	ebiten.KeyEnter:      input.KeyEnter,
	ebiten.KeyTab:        input.KeyTab,
	ebiten.KeyDigit0:     '0',
	ebiten.KeyDigit1:     '1',
	ebiten.KeyDigit2:     '2',
	ebiten.KeyDigit3:     '3',
	ebiten.KeyDigit4:     '4',
	ebiten.KeyDigit5:     '5',
	ebiten.KeyDigit6:     '6',
	ebiten.KeyDigit7:     '7',
	ebiten.KeyDigit8:     '8',
	ebiten.KeyDigit9:     '9',
}

// ebitenKeys maps every ebiten key the game understands: the letters, whose
// names are single characters, plus the digits and named keys. Punctuation
// that ParseKey accepts has no desktop mapping.
var ebitenKeys = func() map[ebiten.Key]input.Key {
	m := make(map[ebiten.Key]input.Key, 26+len(namedEbitenKeys))
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if name := k.String(); len(name) == 1 {
			m[k] = input.RuneKey(rune(name[0]))
		}
	}
	for k, v := range namedEbitenKeys {
		m[k] = v
	}
	return m
}()

// keySource turns ebiten's per-frame key state into input events. A window
// close request is reported as a quit event.
type keySource struct {
	pressed  []ebiten.Key
	released []ebiten.Key
	events   []input.Event
}

func (s *keySource) Poll() []input.Event {
	s.events = s.events[:0]
	if ebiten.IsWindowBeingClosed() {
		s.events = append(s.events, input.Quit())
	}

	s.pressed = inpututil.AppendJustPressedKeys(s.pressed[:0])
	for _, k := range s.pressed {
		if key, ok := ebitenKeys[k]; ok {
			s.events = append(s.events, input.KeyDown(key))
		}
	}

	s.released = inpututil.AppendJustReleasedKeys(s.released[:0])
	for _, k := range s.released {
		if key, ok := ebitenKeys[k]; ok {
			s.events = append(s.events, input.KeyUp(key))
		}
	}
	return s.events
}
