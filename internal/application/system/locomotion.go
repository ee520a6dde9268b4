package system

import "github.com/younwookim/locomotion/internal/domain/entity"

// TransitionHook is called after every actual state change
type TransitionHook func(from, to entity.ActorState)

// LocomotionSystem derives the actor's discrete movement state once per
// fixed tick from ground contact and vertical velocity.
type LocomotionSystem struct {
	state  *entity.MovementState
	sensor GroundSensor
	body   entity.RigidBody
	hook   TransitionHook

	// launched is set when a jump impulse was applied. It is cleared on the
	// first airborne tick, when a grounded launch has no upward speed left, or
	// when the actor enters Floating.
	launched bool
}

// NewLocomotionSystem creates a new state machine over state
func NewLocomotionSystem(state *entity.MovementState, sensor GroundSensor, body entity.RigidBody) *LocomotionSystem {
	return &LocomotionSystem{
		state:  state,
		sensor: sensor,
		body:   body,
	}
}

// SetHook installs the transition hook
func (s *LocomotionSystem) SetHook(hook TransitionHook) {
	s.hook = hook
}

// NotifyLaunch records that a jump impulse was applied this tick
func (s *LocomotionSystem) NotifyLaunch() {
	s.launched = true
}

// Launched reports whether a jump launch is waiting to be observed
func (s *LocomotionSystem) Launched() bool {
	return s.launched
}

// Update re-derives the current state. Floating is left alone; only the
// floating controller moves the actor in or out of it.
func (s *LocomotionSystem) Update() {
	if s.state.IsCurrent(entity.StateFloating) {
		// a float consumes the jump
		s.launched = false
		return
	}

	_, grounded := s.sensor.Probe()
	vy := s.body.Velocity().Y()

	switch {
	case grounded:
		// grounded wins over a pending launch; a launch that left the
		// actor on the ground without upward speed did not take
		if s.launched && vy <= 0 {
			s.launched = false
		}
		s.transition(entity.StateGrounded)
	case s.launched && vy > 0:
		s.launched = false
		s.transition(entity.StateAscending)
	case vy < 0:
		s.launched = false
		s.transition(entity.StateFalling)
	default:
		s.launched = false
	}
}

// IsCurrent compares the current state with st
func (s *LocomotionSystem) IsCurrent(st entity.ActorState) bool {
	return s.state.IsCurrent(st)
}

// WasPrevious compares the previous state with st
func (s *LocomotionSystem) WasPrevious(st entity.ActorState) bool {
	return s.state.WasPrevious(st)
}

func (s *LocomotionSystem) transition(to entity.ActorState) {
	from := s.state.Current()
	if s.state.Transition(to) && s.hook != nil {
		s.hook(from, to)
	}
}
