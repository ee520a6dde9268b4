package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertVecNear fails unless got lies within 1e-9 of want
func assertVecNear(t *testing.T, want, got mgl64.Vec3, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, 0, got.Sub(want).Len(), 1e-9, msgAndArgs...)
}

func TestAngleDeg(t *testing.T) {
	tests := []struct {
		name string
		a, b mgl64.Vec3
		want float64
	}{
		{"same direction", Down, Down, 0},
		{"opposite", Up, Down, 180},
		{"perpendicular", Up, Right, 90},
		{"not normalized", mgl64.Vec3{0, -5, 0}, Down, 0},
		{"zero vector", mgl64.Vec3{}, Down, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AngleDeg(tt.a, tt.b), 1e-6)
		})
	}
}

func TestClampMagnitude(t *testing.T) {
	t.Run("shorter vector untouched", func(t *testing.T) {
		v, clamped := ClampMagnitude(mgl64.Vec3{1, 2, 2}, 5)
		assert.False(t, clamped)
		assert.Equal(t, mgl64.Vec3{1, 2, 2}, v)
	})

	t.Run("longer vector scaled", func(t *testing.T) {
		v, clamped := ClampMagnitude(mgl64.Vec3{0, 30, 40}, 10)
		assert.True(t, clamped)
		assert.InDelta(t, 10.0, v.Len(), 1e-9)
		assert.InDelta(t, 6.0, v.Y(), 1e-9)
		assert.InDelta(t, 8.0, v.Z(), 1e-9)
	})

	t.Run("negative max clamps to zero", func(t *testing.T) {
		v, clamped := ClampMagnitude(mgl64.Vec3{1, 0, 0}, -1)
		assert.True(t, clamped)
		assert.InDelta(t, 0.0, v.Len(), 1e-9)
	})
}

func TestRotateAround(t *testing.T) {
	got := RotateAround(Forward, Up, -90)
	assertVecNear(t, mgl64.Vec3{-1, 0, 0}, got, "got %v", got)

	got = RotateAround(Forward, mgl64.Vec3{}, 45)
	assert.Equal(t, Forward, got, "zero axis is a no-op")
}

func TestLookRotation(t *testing.T) {
	t.Run("identity on flat ground", func(t *testing.T) {
		q, ok := LookRotation(Forward, Up)
		require.True(t, ok)
		assertVecNear(t, Forward, q.Rotate(Forward))
		assertVecNear(t, Up, q.Rotate(Up))
	})

	t.Run("maps local axes onto basis", func(t *testing.T) {
		fwd := mgl64.Vec3{1, 0, 0}
		q, ok := LookRotation(fwd, Up)
		require.True(t, ok)
		assertVecNear(t, fwd, q.Rotate(Forward))
		assertVecNear(t, Up, q.Rotate(Up))
	})

	t.Run("tilted up vector", func(t *testing.T) {
		up := mgl64.Vec3{0, 1, -1}.Normalize()
		fwd := mgl64.Vec3{0, 1, 1}.Normalize()
		q, ok := LookRotation(fwd, up)
		require.True(t, ok)
		assertVecNear(t, fwd, q.Rotate(Forward))
		assertVecNear(t, up, q.Rotate(Up))
	})

	t.Run("degenerate", func(t *testing.T) {
		_, ok := LookRotation(mgl64.Vec3{}, Up)
		assert.False(t, ok)
		_, ok = LookRotation(Up, Up)
		assert.False(t, ok)
	})
}

func TestSlerpTowards(t *testing.T) {
	from := mgl64.QuatIdent()
	to := mgl64.QuatRotate(mgl64.DegToRad(90), Up)

	half := SlerpTowards(from, to, 0.5)
	want := mgl64.QuatRotate(mgl64.DegToRad(45), Up)
	assertVecNear(t, want.Rotate(Forward), half.Rotate(Forward))

	full := SlerpTowards(from, to, 3)
	assertVecNear(t, to.Rotate(Forward), full.Rotate(Forward), "t is clamped to 1")

	none := SlerpTowards(from, to, -1)
	assertVecNear(t, Forward, none.Rotate(Forward), "t is clamped to 0")

	flipped := SlerpTowards(from, to.Scale(-1), 0.5)
	assertVecNear(t, want.Rotate(Forward), flipped.Rotate(Forward), "takes the short arc")
}

func TestHorizontal(t *testing.T) {
	assert.Equal(t, mgl64.Vec3{1, 0, 3}, Horizontal(mgl64.Vec3{1, 2, 3}))
}
