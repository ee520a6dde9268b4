package system

import (
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/domain/geom"
)

// OrientationAligner turns the grounded actor to follow the terrain normal
// and the camera-relative heading. Runs once per rendered frame.
type OrientationAligner struct {
	profile *entity.ActorProfile
	state   *entity.MovementState
	sensor  GroundSensor
	body    entity.RigidBody
	heading entity.Heading
}

// NewOrientationAligner creates a new orientation aligner
func NewOrientationAligner(profile *entity.ActorProfile, state *entity.MovementState, sensor GroundSensor, body entity.RigidBody, heading entity.Heading) *OrientationAligner {
	return &OrientationAligner{
		profile: profile,
		state:   state,
		sensor:  sensor,
		body:    body,
		heading: heading,
	}
}

// Update blends the body rotation toward the ground-aligned target.
// Returns false when nothing was done (not grounded, no normal, degenerate basis).
func (a *OrientationAligner) Update(frameDt float64) bool {
	if !a.state.IsCurrent(entity.StateGrounded) {
		return false
	}

	hit, ok := a.sensor.Probe()
	if !ok {
		return false
	}

	right := geom.RotateAround(a.heading.MovementOrientation(), geom.Up, -90)
	forward := hit.Normal.Cross(right)

	target, ok := geom.LookRotation(forward, hit.Normal)
	if !ok {
		return false
	}

	a.body.SetRotation(geom.SlerpTowards(a.body.Rotation(), target, a.profile.AngularSpeed*frameDt))
	return true
}
