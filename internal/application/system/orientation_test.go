package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/domain/geom"
)

func assertVecInDelta(t *testing.T, want, got mgl64.Vec3, delta float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v", i, got)
	}
}

func TestOrientationAligner_Update(t *testing.T) {
	t.Run("turns toward the heading on flat ground", func(t *testing.T) {
		body := newFakeBody()
		a := NewOrientationAligner(testProfile(), stateWithHistory(entity.StateGrounded), groundedSensor(), body, entity.FixedHeading{1, 0, 0})

		require.True(t, a.Update(1))

		assertVecInDelta(t, mgl64.Vec3{1, 0, 0}, body.rot.Rotate(geom.Forward), 1e-9)
		assertVecInDelta(t, geom.Up, body.rot.Rotate(geom.Up), 1e-9)
	})

	t.Run("blends by angular speed times frame time", func(t *testing.T) {
		body := newFakeBody()
		a := NewOrientationAligner(testProfile(), stateWithHistory(entity.StateGrounded), groundedSensor(), body, entity.FixedHeading{1, 0, 0})

		a.Update(0.01)

		angle := geom.AngleDeg(body.rot.Rotate(geom.Forward), geom.Forward)
		assert.InDelta(t, 90*0.12, angle, 1e-6)
	})

	t.Run("aligns local up with a slope", func(t *testing.T) {
		body := newFakeBody()
		sensor := groundedSensor()
		sensor.normal = geom.RotateAround(geom.Up, geom.Right, 20)
		a := NewOrientationAligner(testProfile(), stateWithHistory(entity.StateGrounded), sensor, body, forwardHeading)

		require.True(t, a.Update(1))

		assertVecInDelta(t, sensor.normal, body.rot.Rotate(geom.Up), 1e-9)
		assert.InDelta(t, 0, body.rot.Rotate(geom.Forward).Dot(sensor.normal), 1e-9)
	})

	t.Run("does nothing in the air", func(t *testing.T) {
		body := newFakeBody()
		a := NewOrientationAligner(testProfile(), stateWithHistory(entity.StateGrounded, entity.StateFalling), groundedSensor(), body, entity.FixedHeading{1, 0, 0})

		assert.False(t, a.Update(1))
		assert.Equal(t, mgl64.QuatIdent(), body.rot)
	})

	t.Run("does nothing without a ground hit", func(t *testing.T) {
		body := newFakeBody()
		sensor := groundedSensor()
		sensor.grounded = false
		a := NewOrientationAligner(testProfile(), stateWithHistory(entity.StateGrounded), sensor, body, entity.FixedHeading{1, 0, 0})

		assert.False(t, a.Update(1))
		assert.Equal(t, mgl64.QuatIdent(), body.rot)
	})

	t.Run("zero heading leaves rotation alone", func(t *testing.T) {
		body := newFakeBody()
		a := NewOrientationAligner(testProfile(), stateWithHistory(entity.StateGrounded), groundedSensor(), body, entity.FixedHeading{})

		assert.False(t, a.Update(1))
		assert.Equal(t, mgl64.QuatIdent(), body.rot)
	})
}
