package entity

import "sync/atomic"

// MovementState holds the current and previous locomotion state of one actor
// together with the floating-mode counters.
//
// Everything except the pending-cancel count is owned by the fixed-tick path.
// The count may be raised from any goroutine so a collision reported off-thread
// can veto a floating timer before the tick thread gets to process it. Each
// request is released once its contact has been handled.
type MovementState struct {
	current     ActorState
	previous    ActorState
	upwardTimer float64

	cancelPending atomic.Int32
}

// NewMovementState creates a movement state starting in initial.
// previous starts equal to initial.
func NewMovementState(initial ActorState) *MovementState {
	return &MovementState{
		current:  initial,
		previous: initial,
	}
}

// Current returns the current state
func (m *MovementState) Current() ActorState {
	return m.current
}

// Previous returns the state before the last actual transition
func (m *MovementState) Previous() ActorState {
	return m.previous
}

// IsCurrent compares the current state with s
func (m *MovementState) IsCurrent(s ActorState) bool {
	return m.current == s
}

// WasPrevious compares the previous state with s
func (m *MovementState) WasPrevious(s ActorState) bool {
	return m.previous == s
}

// Transition sets the current state to s.
// previous is only overwritten when the value actually changes.
// Returns true if a transition happened.
func (m *MovementState) Transition(s ActorState) bool {
	if m.current == s {
		return false
	}
	m.previous = m.current
	m.current = s
	return true
}

// UpwardTimer returns the elapsed floating lift build-up time in seconds
func (m *MovementState) UpwardTimer() float64 {
	return m.upwardTimer
}

// AdvanceUpwardTimer adds dt to the lift build-up timer
func (m *MovementState) AdvanceUpwardTimer(dt float64) {
	m.upwardTimer += dt
}

// ResetUpwardTimer re-arms the lift build-up
func (m *MovementState) ResetUpwardTimer() {
	m.upwardTimer = 0
}

// RequestCancel registers one pending cancel. Safe from any goroutine.
func (m *MovementState) RequestCancel() {
	m.cancelPending.Add(1)
}

// ReleaseCancel drops one pending cancel. The count never goes below zero.
func (m *MovementState) ReleaseCancel() {
	for {
		n := m.cancelPending.Load()
		if n <= 0 || m.cancelPending.CompareAndSwap(n, n-1) {
			return
		}
	}
}

// CancelPending reports whether any requested cancel is still unprocessed
func (m *MovementState) CancelPending() bool {
	return m.cancelPending.Load() > 0
}

// ClearCancel drops every pending cancel
func (m *MovementState) ClearCancel() {
	m.cancelPending.Store(0)
}
