package main

import (
	"log"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	beepRate     = beep.SampleRate(44100)
	beepFreq     = 880
	beepDuration = 60 * time.Millisecond
)

// beeper plays a short tone. Without a working audio device it stays silent.
type beeper struct {
	ready bool
}

func newBeeper() *beeper {
	if err := speaker.Init(beepRate, beepRate.N(time.Second/10)); err != nil {
		log.Printf("audio disabled: %v", err)
		return &beeper{}
	}
	return &beeper{ready: true}
}

func (b *beeper) Play() {
	if !b.ready {
		return
	}
	sine, err := generators.SineTone(beepRate, beepFreq)
	if err != nil {
		log.Printf("beep: %v", err)
		return
	}
	speaker.Play(beep.Take(beepRate.N(beepDuration), sine))
}
