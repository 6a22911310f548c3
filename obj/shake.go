package obj

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/milk9111/parallax/common"
)

var ErrInvalidShake = errors.New("obj: invalid shake parameters")

// ShakeParams describes one shake request. Duration is counted in units of
// Unit ticks, so {3, 2, 10} shakes for 30 ticks with offsets of up to 2px.
type ShakeParams struct {
	Duration  int
	Amplitude int
	Unit      int
}

// DefaultShake is what the shake key triggers.
var DefaultShake = ShakeParams{Duration: 3, Amplitude: 2, Unit: 10}

func (p ShakeParams) Validate() error {
	if p.Duration < 0 || p.Amplitude < 0 || p.Unit < 1 {
		return fmt.Errorf("%w: duration=%d amplitude=%d unit=%d", ErrInvalidShake, p.Duration, p.Amplitude, p.Unit)
	}
	return nil
}

// Ticks is the number of Advance calls the request adds.
func (p ShakeParams) Ticks() int {
	return p.Duration * p.Unit
}

// shakeTarget is the part of a body the shake perturbs and restores.
type shakeTarget interface {
	Position() common.Rect
	SetPosition(p common.Vector2)
	AdvanceBy(v common.Vector2)
}

// Shake is a timed random perturbation of a body's position. While active it
// holds a snapshot of the pre-shake origin and puts it back once the timer
// runs out, so any amount of jitter is undone in one step.
type Shake struct {
	remaining int
	amplitude int
	unit      int

	saved    common.Vector2
	hasSaved bool

	rng *rand.Rand
}

func NewShake(rng *rand.Rand) *Shake {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Shake{unit: 1, rng: rng}
}

// Trigger starts a shake or extends the running one. The timer grows by
// p.Ticks(); amplitude and unit are replaced. The snapshot is only taken when
// none is held, so an extension still restores the original position.
func (s *Shake) Trigger(target shakeTarget, p ShakeParams) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.amplitude = p.Amplitude
	s.unit = p.Unit
	ticks := p.Ticks()
	if ticks == 0 {
		return nil
	}
	if !s.hasSaved {
		s.saved = target.Position().Origin()
		s.hasSaved = true
	}
	s.remaining += ticks
	return nil
}

// Advance runs one tick. The tick that brings the timer to zero restores the
// snapshot instead of jittering.
func (s *Shake) Advance(target shakeTarget) {
	if s.remaining <= 0 {
		s.restore(target)
		return
	}

	s.remaining--
	if s.remaining == 0 {
		s.restore(target)
		return
	}

	target.AdvanceBy(s.offset())
}

func (s *Shake) restore(target shakeTarget) {
	if !s.hasSaved {
		return
	}
	target.SetPosition(s.saved)
	s.hasSaved = false
}

// carry shifts the snapshot by motion that is not jitter, so the restore
// keeps it.
func (s *Shake) carry(v common.Vector2) {
	if s.hasSaved {
		s.saved = s.saved.Add(v)
	}
}

func (s *Shake) offset() common.Vector2 {
	return common.Vector2{X: s.jitter(), Y: s.jitter()}
}

// jitter returns ±rand[1, amplitude], or 0 for a zero amplitude.
func (s *Shake) jitter() int {
	if s.amplitude < 1 {
		return 0
	}
	mag := 1 + s.rng.IntN(s.amplitude)
	if s.rng.IntN(2) == 0 {
		return -mag
	}
	return mag
}

// Active reports whether the shake still holds the body away from its rest
// position.
func (s *Shake) Active() bool {
	return s.remaining > 0 || s.hasSaved
}

// ShakeState is a read-only view of the shake for overlays and tests.
type ShakeState struct {
	Remaining int
	Amplitude int
	Unit      int
	Saved     common.Vector2
	HasSaved  bool
}

func (s *Shake) State() ShakeState {
	return ShakeState{
		Remaining: s.remaining,
		Amplitude: s.amplitude,
		Unit:      s.unit,
		Saved:     s.saved,
		HasSaved:  s.hasSaved,
	}
}
