package system

import (
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/domain/geom"
)

// GroundSensor reports whether the actor stands on something
type GroundSensor interface {
	// Probe returns the surface under the actor. ok is false mid-air.
	Probe() (hit entity.GroundHit, ok bool)
}

// RaySensor probes the ground with a short downward ray from the body
type RaySensor struct {
	ray   entity.Raycaster
	body  entity.RigidBody
	reach float64
}

// NewRaySensor creates a ground sensor casting halfHeight+distanceToGround
// below the body position
func NewRaySensor(ray entity.Raycaster, body entity.RigidBody, profile *entity.ActorProfile) *RaySensor {
	return &RaySensor{
		ray:   ray,
		body:  body,
		reach: profile.HalfHeight + profile.DistanceToGround,
	}
}

// Probe implements GroundSensor
func (s *RaySensor) Probe() (entity.GroundHit, bool) {
	hit, ok := s.ray.Raycast(s.body.Position(), geom.Down, s.reach)
	if !ok {
		return entity.GroundHit{}, false
	}

	normal := hit.Normal
	if normal.Len() < geom.Epsilon {
		normal = geom.Up
	} else {
		normal = normal.Normalize()
	}
	return entity.GroundHit{Normal: normal, Distance: hit.Distance}, true
}

// Reach returns the probe length
func (s *RaySensor) Reach() float64 {
	return s.reach
}

// compile-time check
var _ GroundSensor = (*RaySensor)(nil)
