package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
)

// PauseCoordinator snapshots and restores body momentum across pauses
type PauseCoordinator struct {
	body entity.RigidBody

	paused          bool
	velocity        mgl64.Vec3
	angularVelocity mgl64.Vec3
	wasKinematic    bool
}

// NewPauseCoordinator creates a new pause coordinator
func NewPauseCoordinator(body entity.RigidBody) *PauseCoordinator {
	return &PauseCoordinator{body: body}
}

// Pause captures the velocities and freezes the body.
// Returns false if already paused.
func (p *PauseCoordinator) Pause() bool {
	if p.paused {
		return false
	}
	p.velocity = p.body.Velocity()
	p.angularVelocity = p.body.AngularVelocity()
	p.wasKinematic = p.body.Kinematic()

	p.body.SetKinematic(true)
	p.paused = true
	return true
}

// Resume unfreezes the body and reapplies exactly the captured velocities.
// Returns false if not paused.
func (p *PauseCoordinator) Resume() bool {
	if !p.paused {
		return false
	}
	p.body.SetKinematic(p.wasKinematic)
	p.body.SetVelocity(p.velocity)
	p.body.SetAngularVelocity(p.angularVelocity)
	p.paused = false
	return true
}

// Paused reports whether ticking is suspended
func (p *PauseCoordinator) Paused() bool {
	return p.paused
}

// Snapshot returns the captured velocities while paused
func (p *PauseCoordinator) Snapshot() (velocity, angularVelocity mgl64.Vec3) {
	return p.velocity, p.angularVelocity
}
