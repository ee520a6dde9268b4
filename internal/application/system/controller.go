package system

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/younwookim/locomotion/internal/domain/entity"
)

// Configuration errors reported by a disabled controller
var (
	ErrMissingProfile = errors.New("missing actor profile")
	ErrMissingBody    = errors.New("missing rigid body")
	ErrMissingSensor  = errors.New("missing ground sensor")
	ErrMissingHeading = errors.New("missing heading provider")
)

// Observer receives movement events, e.g. for metrics
type Observer interface {
	Transition(from, to entity.ActorState)
	FloatingCancelled()
	VelocityClamped()
	Paused(paused bool)
}

type noopObserver struct{}

func (noopObserver) Transition(_, _ entity.ActorState) {}
func (noopObserver) FloatingCancelled()                {}
func (noopObserver) VelocityClamped()                  {}
func (noopObserver) Paused(bool)                       {}

// Deps are the collaborators a Controller is built from
type Deps struct {
	Profile  *entity.ActorProfile
	Body     entity.RigidBody
	Sensor   GroundSensor
	Heading  entity.Heading
	Initial  entity.ActorState // zero value is Grounded
	Logger   *slog.Logger      // nil uses slog.Default()
	Observer Observer          // nil discards events
}

// Controller drives one actor's locomotion. SetInput and Frame run on the
// frame cadence, Tick on the fixed physics cadence. Everything except
// Enqueue must be called from the same goroutine.
type Controller struct {
	id       uuid.UUID
	profile  *entity.ActorProfile
	state    *entity.MovementState
	machine  *LocomotionSystem
	forces   *ForceIntegrator
	floating *FloatingController
	aligner  *OrientationAligner
	pause    *PauseCoordinator
	queue    *CommandQueue
	log      *slog.Logger
	observer Observer
	err      error

	input         entity.InputSample
	prevVertical  float64
	jumpRequested bool
	flattened     bool
	last          Forces

	// OnStateChange is called after every actual state change
	OnStateChange func(from, to entity.ActorState)
	// OnFloatingChanged is called when the actor enters or leaves Floating
	OnFloatingChanged func(floating bool)
}

// NewController wires the movement systems for one actor.
// A missing collaborator or invalid profile does not fail construction: the
// controller logs a diagnostic, reports it from Err, and stays inert.
func NewController(deps Deps) *Controller {
	initial := deps.Initial
	if !initial.Valid() {
		initial = entity.StateGrounded
	}

	c := &Controller{
		id:       uuid.New(),
		profile:  deps.Profile,
		state:    entity.NewMovementState(initial),
		queue:    NewCommandQueue(),
		log:      deps.Logger,
		observer: deps.Observer,
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	c.log = c.log.With("actor", c.id.String())
	if c.observer == nil {
		c.observer = noopObserver{}
	}

	if c.err = validateDeps(deps); c.err != nil {
		c.log.Warn("movement disabled", "err", c.err)
		return c
	}

	c.machine = NewLocomotionSystem(c.state, deps.Sensor, deps.Body)
	c.floating = NewFloatingController(deps.Profile, c.state)
	c.forces = NewForceIntegrator(deps.Profile, c.state, deps.Body, deps.Heading, c.floating)
	c.aligner = NewOrientationAligner(deps.Profile, c.state, deps.Sensor, deps.Body, deps.Heading)
	c.pause = NewPauseCoordinator(deps.Body)

	c.machine.SetHook(c.onTransition)
	c.floating.SetHook(c.onTransition)

	c.log.Debug("movement ready", "profile", deps.Profile.Name, "state", initial)
	return c
}

func validateDeps(deps Deps) error {
	var errs []error
	if deps.Profile == nil {
		errs = append(errs, ErrMissingProfile)
	} else if err := deps.Profile.Validate(); err != nil {
		errs = append(errs, err)
	}
	if deps.Body == nil {
		errs = append(errs, ErrMissingBody)
	}
	if deps.Sensor == nil {
		errs = append(errs, ErrMissingSensor)
	}
	if deps.Heading == nil {
		errs = append(errs, ErrMissingHeading)
	}
	return errors.Join(errs...)
}

// ID returns the actor's identifier
func (c *Controller) ID() uuid.UUID {
	return c.id
}

// Err returns the configuration error that disabled the controller, if any
func (c *Controller) Err() error {
	return c.err
}

// Enabled reports whether the controller has everything it needs
func (c *Controller) Enabled() bool {
	return c.err == nil
}

// SetInput stores this frame's input sample and runs edge detection.
// A rising edge of the vertical axis arms a jump for the next tick.
func (c *Controller) SetInput(in entity.InputSample) {
	if c.err != nil {
		return
	}
	rising := in.Vertical > 0 && c.prevVertical <= 0
	c.prevVertical = in.Vertical
	c.input = in

	if c.pause.Paused() {
		return
	}
	if rising {
		c.jumpRequested = true
	}
	if in.ToggleFloat {
		c.ToggleFloating()
	}
	c.updateFlatten()
}

// Frame runs the per-frame work: orientation blending
func (c *Controller) Frame(dt float64) {
	if c.err != nil || c.pause.Paused() {
		return
	}
	c.aligner.Update(dt)
}

// Tick runs one fixed physics step: queued commands, state derivation,
// floating task, then force integration.
func (c *Controller) Tick(dt float64) {
	if c.err != nil {
		return
	}
	c.queue.Drain(c.apply)
	if c.pause.Paused() {
		return
	}

	c.machine.Update()
	c.floating.Update(dt)

	c.last = c.forces.Integrate(c.input, c.jumpRequested, dt)
	if c.last.Jumped {
		c.machine.NotifyLaunch()
	}
	// consumed by the launch, or discarded when airborne
	c.jumpRequested = false

	if c.last.Clamped {
		c.observer.VelocityClamped()
	}
	c.updateFlatten()
}

// Enqueue hands a command to the tick thread. Safe from any goroutine.
// A ceiling contact registers a pending cancel right away so a floating
// timer cannot fire before the contact is processed. apply releases it.
func (c *Controller) Enqueue(cmd Command) {
	if c.err != nil {
		return
	}
	if cc, ok := cmd.(ContactCommand); ok && IsCeilingHit(cc.Contact.Normal) {
		c.state.RequestCancel()
	}
	c.queue.Push(cmd)
}

func (c *Controller) apply(cmd Command) {
	switch cmd := cmd.(type) {
	case ToggleFloatCommand:
		c.ToggleFloating()
	case ContactCommand:
		c.HandleContact(cmd.Contact)
		if IsCeilingHit(cmd.Contact.Normal) {
			c.state.ReleaseCancel()
		}
	case PauseCommand:
		c.Pause()
	case ResumeCommand:
		c.Resume()
	}
}

// ToggleFloating requests a floating toggle (last request wins)
func (c *Controller) ToggleFloating() {
	if c.err != nil || c.pause.Paused() {
		return
	}
	c.floating.Toggle()
}

// HandleContact processes a collision on the tick thread
func (c *Controller) HandleContact(contact entity.Contact) {
	if c.err != nil {
		return
	}
	if c.pause.Paused() {
		return
	}
	if c.floating.HandleContact(contact) {
		c.observer.FloatingCancelled()
		c.log.Debug("floating cancelled by ceiling", "normal", contact.Normal)
	}
}

// Pause freezes the body and suspends ticking
func (c *Controller) Pause() {
	if c.err != nil || !c.pause.Pause() {
		return
	}
	c.observer.Paused(true)
	c.log.Debug("movement paused", "state", c.state.Current())
}

// Resume restores the captured momentum and resumes ticking
func (c *Controller) Resume() {
	if c.err != nil || !c.pause.Resume() {
		return
	}
	c.observer.Paused(false)
	c.log.Debug("movement resumed", "state", c.state.Current())
}

// Paused reports whether the controller is paused
func (c *Controller) Paused() bool {
	return c.err == nil && c.pause.Paused()
}

// State returns the current state
func (c *Controller) State() entity.ActorState {
	return c.state.Current()
}

// Previous returns the previous state
func (c *Controller) Previous() entity.ActorState {
	return c.state.Previous()
}

// IsCurrent compares the current state with s
func (c *Controller) IsCurrent(s entity.ActorState) bool {
	return c.state.IsCurrent(s)
}

// WasPrevious compares the previous state with s
func (c *Controller) WasPrevious(s entity.ActorState) bool {
	return c.state.WasPrevious(s)
}

// IsFloating reports whether the actor is floating
func (c *Controller) IsFloating() bool {
	return c.state.IsCurrent(entity.StateFloating)
}

// FloatPending reports whether a floating toggle is scheduled
func (c *Controller) FloatPending() bool {
	return c.err == nil && c.floating.Pending()
}

// FloatRemaining returns the time left before floating auto-reverts
func (c *Controller) FloatRemaining() float64 {
	if c.err != nil {
		return 0
	}
	return c.floating.Remaining()
}

// IsFlattened reports whether the actor is pressed down on the ground
func (c *Controller) IsFlattened() bool {
	return c.flattened
}

// UpwardTimer returns the floating lift build-up timer
func (c *Controller) UpwardTimer() float64 {
	return c.state.UpwardTimer()
}

// LastForces returns what the last tick applied
func (c *Controller) LastForces() Forces {
	return c.last
}

func (c *Controller) updateFlatten() {
	c.flattened = c.state.IsCurrent(entity.StateGrounded) && c.input.Vertical < 0
}

func (c *Controller) onTransition(from, to entity.ActorState) {
	c.log.Debug("state change", "from", from, "to", to)
	c.updateFlatten()
	c.observer.Transition(from, to)
	if c.OnStateChange != nil {
		c.OnStateChange(from, to)
	}
	if (from == entity.StateFloating || to == entity.StateFloating) && c.OnFloatingChanged != nil {
		c.OnFloatingChanged(to == entity.StateFloating)
	}
}
