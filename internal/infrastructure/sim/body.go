package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
)

// Body is a sphere rigid body living in a World
type Body struct {
	pos    mgl64.Vec3
	rot    mgl64.Quat
	vel    mgl64.Vec3
	angVel mgl64.Vec3
	radius float64
	mass   float64

	kinematic bool
	target    mgl64.Vec3
	hasTarget bool
}

// Position implements entity.RigidBody
func (b *Body) Position() mgl64.Vec3 { return b.pos }

// MovePosition moves the body to p at the start of the next step.
// The last call before a step wins.
func (b *Body) MovePosition(p mgl64.Vec3) {
	b.target = p
	b.hasTarget = true
}

// Rotation implements entity.RigidBody
func (b *Body) Rotation() mgl64.Quat { return b.rot }

// SetRotation implements entity.RigidBody
func (b *Body) SetRotation(q mgl64.Quat) { b.rot = q }

// Velocity implements entity.RigidBody
func (b *Body) Velocity() mgl64.Vec3 { return b.vel }

// SetVelocity implements entity.RigidBody
func (b *Body) SetVelocity(v mgl64.Vec3) { b.vel = v }

// AngularVelocity implements entity.RigidBody
func (b *Body) AngularVelocity() mgl64.Vec3 { return b.angVel }

// SetAngularVelocity implements entity.RigidBody
func (b *Body) SetAngularVelocity(w mgl64.Vec3) { b.angVel = w }

// Mass implements entity.RigidBody
func (b *Body) Mass() float64 { return b.mass }

// Radius returns the sphere radius
func (b *Body) Radius() float64 { return b.radius }

// SetKinematic implements entity.RigidBody. Freezing a body zeroes its
// velocities, as most engines do.
func (b *Body) SetKinematic(kinematic bool) {
	if kinematic && !b.kinematic {
		b.vel = mgl64.Vec3{}
		b.angVel = mgl64.Vec3{}
	}
	b.kinematic = kinematic
}

// Kinematic implements entity.RigidBody
func (b *Body) Kinematic() bool { return b.kinematic }

// Teleport places the body at p and stops it
func (b *Body) Teleport(p mgl64.Vec3) {
	b.pos = p
	b.vel = mgl64.Vec3{}
	b.angVel = mgl64.Vec3{}
	b.hasTarget = false
}

var _ entity.RigidBody = (*Body)(nil)
