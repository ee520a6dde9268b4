package entity

import "github.com/go-gl/mathgl/mgl64"

// RigidBody is the physics body the locomotion systems steer.
// The physics provider owns it; the movement code only borrows it.
type RigidBody interface {
	Position() mgl64.Vec3
	// MovePosition displaces the body kinematically for the coming step
	MovePosition(p mgl64.Vec3)

	Rotation() mgl64.Quat
	SetRotation(q mgl64.Quat)

	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
	AngularVelocity() mgl64.Vec3
	SetAngularVelocity(w mgl64.Vec3)

	Mass() float64

	// SetKinematic freezes (true) or releases (false) the body.
	// A kinematic body ignores gravity and keeps its position.
	SetKinematic(kinematic bool)
	Kinematic() bool
}

// RaycastHit describes a ray hitting a collider
type RaycastHit struct {
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
}

// Raycaster is the physics provider's ray query
type Raycaster interface {
	Raycast(origin, dir mgl64.Vec3, maxDistance float64) (RaycastHit, bool)
}

// GroundHit is the result of a successful ground probe
type GroundHit struct {
	Normal   mgl64.Vec3
	Distance float64
}

// Contact is a collision reported by the physics provider.
// Normal points from the obstacle toward the actor's surface contact side;
// an obstacle directly above the actor reports {0,-1,0}.
type Contact struct {
	Point   mgl64.Vec3
	Normal  mgl64.Vec3
	Impulse float64
}

// Heading provides the camera-relative world-space movement orientation
type Heading interface {
	MovementOrientation() mgl64.Vec3
}

// FixedHeading is a Heading that never changes
type FixedHeading mgl64.Vec3

// MovementOrientation implements Heading
func (h FixedHeading) MovementOrientation() mgl64.Vec3 {
	return mgl64.Vec3(h)
}
