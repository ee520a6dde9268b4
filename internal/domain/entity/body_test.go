package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestFixedHeading(t *testing.T) {
	var h Heading = FixedHeading{1, 0, 0}

	assert.Equal(t, mgl64.Vec3{1, 0, 0}, h.MovementOrientation())
	assert.Equal(t, mgl64.Vec3{}, FixedHeading{}.MovementOrientation())
}
