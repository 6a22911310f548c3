package system

// Step is one stage of the per-tick update.
type Step interface {
	Update(s *Scene)
}

// StepFunc adapts a function to Step.
type StepFunc func(s *Scene)

func (f StepFunc) Update(s *Scene) { f(s) }

// Scheduler runs steps in the order they were added.
type Scheduler struct {
	steps []Step
}

func NewScheduler(steps ...Step) *Scheduler {
	copied := append([]Step(nil), steps...)
	return &Scheduler{steps: copied}
}

func (s *Scheduler) Add(step Step) {
	if step == nil {
		return
	}
	s.steps = append(s.steps, step)
}

func (s *Scheduler) Update(scene *Scene) {
	for _, step := range s.steps {
		step.Update(scene)
	}
}

func (s *Scheduler) Steps() []Step {
	steps := make([]Step, 0, len(s.steps))
	return append(steps, s.steps...)
}

// CameraMotion advances the camera by its velocity.
var CameraMotion = StepFunc(func(s *Scene) { s.Camera.Advance() })

// CameraShake runs one shake tick.
var CameraShake = StepFunc(func(s *Scene) { s.Camera.AdvanceShake() })

// EntityMotion advances the controlled entity by its velocity.
var EntityMotion = StepFunc(func(s *Scene) { s.Entity.Advance() })

// DefaultScheduler moves the camera, then shakes it, then moves the entity.
func DefaultScheduler() *Scheduler {
	return NewScheduler(CameraMotion, CameraShake, EntityMotion)
}
