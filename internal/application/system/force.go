package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/domain/geom"
)

// Forces reports what the force integrator applied during one tick
type Forces struct {
	Movement mgl64.Vec3 // horizontal control velocity (units/sec), applied as displacement
	Impulse  mgl64.Vec3 // jump impulse
	Float    mgl64.Vec3 // floating lift + push force
	Jumped   bool
	Braked   bool
	Clamped  bool // velocity was capped at maxVelocity
}

// ForceIntegrator turns the sampled input and the current state into
// movement, impulses and forces on the body, then caps the resulting speed.
type ForceIntegrator struct {
	profile  *entity.ActorProfile
	state    *entity.MovementState
	body     entity.RigidBody
	heading  entity.Heading
	floating *FloatingController
}

// NewForceIntegrator creates a new force integrator.
// floating may be nil, in which case no floating forces are produced.
func NewForceIntegrator(profile *entity.ActorProfile, state *entity.MovementState, body entity.RigidBody, heading entity.Heading, floating *FloatingController) *ForceIntegrator {
	return &ForceIntegrator{
		profile:  profile,
		state:    state,
		body:     body,
		heading:  heading,
		floating: floating,
	}
}

// Integrate applies one tick of forces. jump is true when a jump request is
// pending for this tick. Runs after state derivation.
func (f *ForceIntegrator) Integrate(input entity.InputSample, jump bool, dt float64) Forces {
	var out Forces
	orientation := f.orientation()

	// Horizontal control
	out.Movement = f.horizontalMovement(orientation, input)

	// Braking on the ground kills lateral control and spin
	if f.state.IsCurrent(entity.StateGrounded) && input.Brake {
		out.Movement = mgl64.Vec3{}
		out.Braked = true
		f.body.SetAngularVelocity(f.body.AngularVelocity().Mul(1 - f.profile.BrakeSpeed))
	}

	if (f.state.IsCurrent(entity.StateGrounded) || f.state.IsCurrent(entity.StateFalling)) &&
		out.Movement.Len() > 0 {
		f.body.MovePosition(f.body.Position().Add(out.Movement.Mul(dt)))
	}

	// Jump, biased by concurrent lateral intent
	if f.state.IsCurrent(entity.StateGrounded) && jump {
		out.Impulse = geom.Right.Mul(out.Movement.X() * f.profile.JumpForce.X).
			Add(geom.Up.Mul(f.profile.JumpForce.Y))
		out.Jumped = true
	}

	// Floating lift and push
	if f.floating != nil && f.state.IsCurrent(entity.StateFloating) {
		out.Float = f.floating.Force(input, orientation, dt)
	}

	// Integrate into velocity and cap
	mass := f.body.Mass()
	if mass <= 0 {
		mass = 1
	}
	v := f.body.Velocity().
		Add(out.Impulse.Mul(1 / mass)).
		Add(out.Float.Mul(dt / mass))
	v, out.Clamped = geom.ClampMagnitude(v, f.profile.MaxVelocity)
	f.body.SetVelocity(v)

	return out
}

// horizontalMovement picks the control speed allowed by the current and
// previous state. A passive ledge fall keeps full ground speed; air strafe
// only applies after an active jump or float.
func (f *ForceIntegrator) horizontalMovement(orientation mgl64.Vec3, input entity.InputSample) mgl64.Vec3 {
	switch {
	case f.state.IsCurrent(entity.StateGrounded),
		f.state.IsCurrent(entity.StateFalling) && f.state.WasPrevious(entity.StateGrounded):
		return orientation.Mul(input.Horizontal * f.profile.Speed)
	case f.state.IsCurrent(entity.StateFalling) &&
		(f.state.WasPrevious(entity.StateAscending) || f.state.WasPrevious(entity.StateFloating)):
		return orientation.Mul(input.Horizontal * f.profile.AirStrafeSpeed)
	default:
		return mgl64.Vec3{}
	}
}

func (f *ForceIntegrator) orientation() mgl64.Vec3 {
	o := f.heading.MovementOrientation()
	if o.Len() < geom.Epsilon {
		return mgl64.Vec3{}
	}
	return o.Normalize()
}
