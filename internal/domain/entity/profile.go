package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidProfile is returned by ActorProfile.Validate
var ErrInvalidProfile = errors.New("invalid actor profile")

// Vec2 is a planar pair used for profile forces: X is lateral, Y is vertical
type Vec2 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// ActorProfile is the per-archetype movement configuration.
// It is loaded once and shared read-only by every actor of the archetype.
type ActorProfile struct {
	Name string `json:"name" yaml:"name"`

	// Ground movement
	Speed          float64 `json:"speed" yaml:"speed"`                   // ground speed (units/sec)
	AirStrafeSpeed float64 `json:"airStrafeSpeed" yaml:"airStrafeSpeed"` // control after a jump or float
	JumpForce      Vec2    `json:"jumpForce" yaml:"jumpForce"`           // impulse, x scaled by lateral movement
	AngularSpeed   float64 `json:"angularSpeed" yaml:"angularSpeed"`     // orientation blend rate (1/sec)
	BrakeSpeed     float64 `json:"brakeSpeed" yaml:"brakeSpeed"`         // fraction of spin removed per tick while braking

	// Floating mode
	FloatingForce     Vec2    `json:"floatingForce" yaml:"floatingForce"`
	FloatingTime      float64 `json:"floatingTime" yaml:"floatingTime"`           // seconds before auto-revert
	UpwardBuildupTime float64 `json:"upwardBuildupTime" yaml:"upwardBuildupTime"` // seconds to reach full lift

	// Limits
	MaxVelocity      float64 `json:"maxVelocity" yaml:"maxVelocity"` // cap on total speed, at least speed and airStrafeSpeed
	DistanceToGround float64 `json:"distanceToGround" yaml:"distanceToGround"`
	HalfHeight       float64 `json:"halfHeight" yaml:"halfHeight"` // probe origin to bottom of the body
}

// DefaultProfile returns a playable player profile
func DefaultProfile() ActorProfile {
	return ActorProfile{
		Name:              "player",
		Speed:             5.0,
		AirStrafeSpeed:    1.0,
		JumpForce:         Vec2{X: 0.7, Y: 7.0},
		AngularSpeed:      12.0,
		BrakeSpeed:        0.975,
		FloatingForce:     Vec2{X: 4.0, Y: 14.0},
		FloatingTime:      3.0,
		UpwardBuildupTime: 1.0,
		MaxVelocity:       10.0,
		DistanceToGround:  0.1,
		HalfHeight:        0.5,
	}
}

// Validate checks the profile for values the movement systems cannot use
func (p ActorProfile) Validate() error {
	var errs []error
	if p.MaxVelocity <= 0 {
		errs = append(errs, fmt.Errorf("maxVelocity must be positive, got %v", p.MaxVelocity))
	} else {
		// walking assigns speed directly and never passes through the clamp
		if p.Speed > p.MaxVelocity {
			errs = append(errs, fmt.Errorf("speed %v exceeds maxVelocity %v", p.Speed, p.MaxVelocity))
		}
		if p.AirStrafeSpeed > p.MaxVelocity {
			errs = append(errs, fmt.Errorf("airStrafeSpeed %v exceeds maxVelocity %v", p.AirStrafeSpeed, p.MaxVelocity))
		}
	}
	if p.FloatingTime < 0 {
		errs = append(errs, fmt.Errorf("floatingTime must not be negative, got %v", p.FloatingTime))
	}
	if p.UpwardBuildupTime < 0 {
		errs = append(errs, fmt.Errorf("upwardBuildupTime must not be negative, got %v", p.UpwardBuildupTime))
	}
	if p.DistanceToGround < 0 {
		errs = append(errs, fmt.Errorf("distanceToGround must not be negative, got %v", p.DistanceToGround))
	}
	if p.HalfHeight < 0 {
		errs = append(errs, fmt.Errorf("halfHeight must not be negative, got %v", p.HalfHeight))
	}
	if p.BrakeSpeed < 0 || p.BrakeSpeed > 1 {
		errs = append(errs, fmt.Errorf("brakeSpeed must be within [0,1], got %v", p.BrakeSpeed))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w %q: %w", ErrInvalidProfile, p.Name, errors.Join(errs...))
}
