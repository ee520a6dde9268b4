package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfile_Valid(t *testing.T) {
	require.NoError(t, DefaultProfile().Validate())
}

func TestActorProfile_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *ActorProfile)
	}{
		{"zero max velocity", func(p *ActorProfile) { p.MaxVelocity = 0 }},
		{"negative floating time", func(p *ActorProfile) { p.FloatingTime = -1 }},
		{"negative buildup", func(p *ActorProfile) { p.UpwardBuildupTime = -0.1 }},
		{"negative ground distance", func(p *ActorProfile) { p.DistanceToGround = -0.1 }},
		{"negative half height", func(p *ActorProfile) { p.HalfHeight = -1 }},
		{"brake above one", func(p *ActorProfile) { p.BrakeSpeed = 1.5 }},
		{"speed above max velocity", func(p *ActorProfile) { p.Speed = 50 }},
		{"air strafe above max velocity", func(p *ActorProfile) { p.AirStrafeSpeed = p.MaxVelocity + 0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultProfile()
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidProfile)
			assert.Contains(t, err.Error(), "player")
		})
	}
}

func TestActorProfile_ZeroBuildupAllowed(t *testing.T) {
	p := DefaultProfile()
	p.UpwardBuildupTime = 0
	p.FloatingTime = 0
	assert.NoError(t, p.Validate())
}

func TestActorProfile_SpeedAtMaxVelocityAllowed(t *testing.T) {
	p := DefaultProfile()
	p.Speed = p.MaxVelocity
	p.AirStrafeSpeed = p.MaxVelocity
	assert.NoError(t, p.Validate())
}
