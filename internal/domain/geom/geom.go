// Package geom provides the small set of vector and quaternion helpers the
// locomotion systems need on top of mgl64.
//
// The world is right-handed with +Y up. An object's local forward is +Z and
// its local up is +Y, so LookRotation(forward, up) maps +Z onto forward.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the tolerance used for degenerate-vector checks.
const Epsilon = 1e-9

var (
	// Up is the world up axis.
	Up = mgl64.Vec3{0, 1, 0}
	// Down is the world down axis.
	Down = mgl64.Vec3{0, -1, 0}
	// Right is the world right axis used for jump bias.
	Right = mgl64.Vec3{1, 0, 0}
	// Forward is the default local forward axis.
	Forward = mgl64.Vec3{0, 0, 1}
)

// AngleDeg returns the unsigned angle between a and b in degrees.
// A zero-length operand yields 90, which is never "aligned".
func AngleDeg(a, b mgl64.Vec3) float64 {
	la, lb := a.Len(), b.Len()
	if la < Epsilon || lb < Epsilon {
		return 90
	}
	cos := mgl64.Clamp(a.Dot(b)/(la*lb), -1, 1)
	return mgl64.RadToDeg(math.Acos(cos))
}

// ClampMagnitude scales v down so its length does not exceed max.
// The second result reports whether v was shortened.
func ClampMagnitude(v mgl64.Vec3, max float64) (mgl64.Vec3, bool) {
	if max < 0 {
		max = 0
	}
	l := v.Len()
	if l <= max {
		return v, false
	}
	if l < Epsilon {
		return mgl64.Vec3{}, true
	}
	return v.Mul(max / l), true
}

// RotateAround rotates v by deg degrees around axis.
func RotateAround(v, axis mgl64.Vec3, deg float64) mgl64.Vec3 {
	if axis.Len() < Epsilon {
		return v
	}
	return mgl64.QuatRotate(mgl64.DegToRad(deg), axis.Normalize()).Rotate(v)
}

// LookRotation builds the rotation whose local +Z points along forward and
// whose local +Y is as close to up as possible. It reports false when the
// basis is degenerate (zero forward, or forward parallel to up).
func LookRotation(forward, up mgl64.Vec3) (mgl64.Quat, bool) {
	if forward.Len() < Epsilon || up.Len() < Epsilon {
		return mgl64.QuatIdent(), false
	}
	z := forward.Normalize()
	x := up.Cross(z)
	if x.Len() < Epsilon {
		return mgl64.QuatIdent(), false
	}
	x = x.Normalize()
	y := z.Cross(x)

	m := mgl64.Mat3FromCols(x, y, z)
	return mgl64.Mat4ToQuat(m.Mat4()).Normalize(), true
}

// SlerpTowards interpolates from toward to by t along the shortest arc.
// t is clamped to [0,1].
func SlerpTowards(from, to mgl64.Quat, t float64) mgl64.Quat {
	t = mgl64.Clamp(t, 0, 1)
	if from.Dot(to) < 0 {
		to = to.Scale(-1)
	}
	if t == 1 {
		return to.Normalize()
	}
	return mgl64.QuatSlerp(from, to, t).Normalize()
}

// Horizontal drops the vertical component of v.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}
