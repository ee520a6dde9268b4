package sandbox

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Heading is a yaw-only camera turned in fixed steps
type Heading struct {
	yaw  float64
	step float64
}

// NewHeading creates a heading at yawDeg that turns stepDeg per step.
// Yaw 0 faces +Z, yaw 90 faces +X.
func NewHeading(yawDeg, stepDeg float64) *Heading {
	return &Heading{
		yaw:  mgl64.DegToRad(yawDeg),
		step: mgl64.DegToRad(stepDeg),
	}
}

// Turn rotates the heading by n steps. Negative n turns left.
func (h *Heading) Turn(n int) {
	h.yaw = math.Mod(h.yaw+float64(n)*h.step, 2*math.Pi)
	if h.yaw < 0 {
		h.yaw += 2 * math.Pi
	}
}

// YawDeg returns the current yaw in degrees
func (h *Heading) YawDeg() float64 {
	return mgl64.RadToDeg(h.yaw)
}

// MovementOrientation implements entity.Heading
func (h *Heading) MovementOrientation() mgl64.Vec3 {
	return mgl64.Vec3{math.Sin(h.yaw), 0, math.Cos(h.yaw)}
}
