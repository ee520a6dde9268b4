package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/domain/geom"
)

// CeilingConeDeg is the half-angle of the cone around straight down inside
// which a contact normal counts as hitting an obstacle from below
const CeilingConeDeg = 10.0

// timerEpsilon absorbs float drift when summing fixed tick durations
const timerEpsilon = 1e-9

type taskPhase int

const (
	phaseWaitAscend taskPhase = iota // polling until the actor stops ascending
	phaseTimer                       // floating, counting down to auto-revert
)

// floatTask is one scheduled toggle. It is advanced cooperatively by
// FloatingController.Update and never runs on its own goroutine.
type floatTask struct {
	phase     taskPhase
	duration  float64 // how long to stay afloat once the flip lands on Floating
	elapsed   float64
	cancelled bool
}

// FloatingController manages the timed, cancellable floating mode.
// At most one task is pending; a new toggle always cancels the old one.
type FloatingController struct {
	profile *entity.ActorProfile
	state   *entity.MovementState
	hook    TransitionHook
	task    *floatTask
}

// NewFloatingController creates a new floating mode controller
func NewFloatingController(profile *entity.ActorProfile, state *entity.MovementState) *FloatingController {
	return &FloatingController{
		profile: profile,
		state:   state,
	}
}

// SetHook installs the transition hook
func (c *FloatingController) SetHook(hook TransitionHook) {
	c.hook = hook
}

// Toggle requests a floating toggle. Any pending task is cancelled first, so
// the last request always wins.
func (c *FloatingController) Toggle() {
	c.schedule(c.profile.FloatingTime)
}

// Update advances the pending task by one fixed tick of dt seconds.
// Must run after state derivation.
func (c *FloatingController) Update(dt float64) {
	t := c.task
	if t == nil || t.cancelled {
		return
	}

	switch t.phase {
	case phaseWaitAscend:
		c.advance(t)
	case phaseTimer:
		if !c.state.IsCurrent(entity.StateFloating) {
			c.finish(t)
			return
		}
		// a ceiling hit is in flight; it owns the next effect
		if c.state.CancelPending() {
			return
		}
		t.elapsed += dt
		if t.elapsed+timerEpsilon >= t.duration {
			c.schedule(0)
		}
	}
}

// HandleContact processes a collision. A contact whose normal lies within
// CeilingConeDeg of straight down while floating cancels the pending task
// and drops the actor into Falling. Returns true if floating was cancelled.
func (c *FloatingController) HandleContact(contact entity.Contact) bool {
	if !IsCeilingHit(contact.Normal) {
		return false
	}

	// cancel first, then check
	c.state.RequestCancel()
	defer c.state.ReleaseCancel()

	if !c.state.IsCurrent(entity.StateFloating) {
		return false
	}
	c.cancelTask()
	c.transition(entity.StateFalling)
	c.state.ResetUpwardTimer()
	return true
}

// Force returns this tick's floating force and advances the lift build-up.
// Lift ramps linearly from 0 to floatingForce.y over upwardBuildupTime;
// the push follows the movement orientation scaled by the horizontal axis.
func (c *FloatingController) Force(input entity.InputSample, orientation mgl64.Vec3, dt float64) mgl64.Vec3 {
	lift := c.Lift()
	if c.state.UpwardTimer() < c.profile.UpwardBuildupTime {
		c.state.AdvanceUpwardTimer(dt)
	}
	push := orientation.Mul(input.Horizontal * c.profile.FloatingForce.X)
	return geom.Up.Mul(lift).Add(push)
}

// Lift returns the vertical floating force for the current build-up
func (c *FloatingController) Lift() float64 {
	full := c.profile.FloatingForce.Y
	buildup := c.profile.UpwardBuildupTime
	timer := c.state.UpwardTimer()
	if buildup <= 0 || timer >= buildup {
		return full
	}
	return full * (timer / buildup)
}

// IsFloating reports whether the actor is currently floating
func (c *FloatingController) IsFloating() bool {
	return c.state.IsCurrent(entity.StateFloating)
}

// Pending reports whether a toggle task is scheduled
func (c *FloatingController) Pending() bool {
	return c.task != nil
}

// Blocked reports whether the pending task waits for the actor to stop ascending
func (c *FloatingController) Blocked() bool {
	return c.task != nil && c.task.phase == phaseWaitAscend
}

// Remaining returns the time left before auto-revert, or 0 if none is scheduled
func (c *FloatingController) Remaining() float64 {
	if c.task == nil || c.task.phase != phaseTimer {
		return 0
	}
	left := c.task.duration - c.task.elapsed
	if left < 0 {
		return 0
	}
	return left
}

// Cancel drops any pending task without changing state
func (c *FloatingController) Cancel() {
	c.cancelTask()
}

func (c *FloatingController) schedule(duration float64) {
	c.cancelTask()
	t := &floatTask{phase: phaseWaitAscend, duration: duration}
	c.task = t
	c.advance(t)
}

// advance runs the task as far as it can without simulation time passing
func (c *FloatingController) advance(t *floatTask) {
	if t.cancelled {
		return
	}
	// no stacking the jump impulse with the lift
	if c.state.IsCurrent(entity.StateAscending) {
		return
	}
	if c.state.CancelPending() && c.state.IsCurrent(entity.StateFloating) {
		return
	}

	if c.state.IsCurrent(entity.StateFloating) {
		c.transition(entity.StateFalling)
	} else {
		c.transition(entity.StateFloating)
	}
	c.state.ResetUpwardTimer()

	if !c.state.IsCurrent(entity.StateFloating) {
		c.finish(t)
		return
	}
	t.phase = phaseTimer
	t.elapsed = 0
}

func (c *FloatingController) finish(t *floatTask) {
	if c.task == t {
		c.task = nil
	}
}

func (c *FloatingController) cancelTask() {
	if c.task != nil {
		c.task.cancelled = true
		c.task = nil
	}
}

func (c *FloatingController) transition(to entity.ActorState) {
	from := c.state.Current()
	if c.state.Transition(to) && c.hook != nil {
		c.hook(from, to)
	}
}

// IsCeilingHit reports whether a contact normal points (nearly) straight down
func IsCeilingHit(normal mgl64.Vec3) bool {
	return geom.AngleDeg(normal, geom.Down) < CeilingConeDeg
}
