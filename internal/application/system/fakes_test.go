package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
)

// fakeBody is an in-memory rigid body. MovePosition applies immediately.
type fakeBody struct {
	pos       mgl64.Vec3
	rot       mgl64.Quat
	vel       mgl64.Vec3
	angVel    mgl64.Vec3
	mass      float64
	kinematic bool

	moves int
}

func newFakeBody() *fakeBody {
	return &fakeBody{rot: mgl64.QuatIdent(), mass: 1}
}

func (b *fakeBody) Position() mgl64.Vec3 { return b.pos }
func (b *fakeBody) MovePosition(p mgl64.Vec3) {
	b.pos = p
	b.moves++
}
func (b *fakeBody) Rotation() mgl64.Quat            { return b.rot }
func (b *fakeBody) SetRotation(q mgl64.Quat)        { b.rot = q }
func (b *fakeBody) Velocity() mgl64.Vec3            { return b.vel }
func (b *fakeBody) SetVelocity(v mgl64.Vec3)        { b.vel = v }
func (b *fakeBody) AngularVelocity() mgl64.Vec3     { return b.angVel }
func (b *fakeBody) SetAngularVelocity(w mgl64.Vec3) { b.angVel = w }
func (b *fakeBody) Mass() float64                   { return b.mass }
func (b *fakeBody) SetKinematic(kinematic bool)     { b.kinematic = kinematic }
func (b *fakeBody) Kinematic() bool                 { return b.kinematic }

// fakeSensor reports whatever the test sets
type fakeSensor struct {
	grounded bool
	normal   mgl64.Vec3
	probes   int
}

func groundedSensor() *fakeSensor {
	return &fakeSensor{grounded: true, normal: mgl64.Vec3{0, 1, 0}}
}

func (s *fakeSensor) Probe() (entity.GroundHit, bool) {
	s.probes++
	if !s.grounded {
		return entity.GroundHit{}, false
	}
	return entity.GroundHit{Normal: s.normal}, true
}

// fakeRaycaster hits at a fixed distance below any origin
type fakeRaycaster struct {
	hit       bool
	distance  float64
	normal    mgl64.Vec3
	lastDir   mgl64.Vec3
	lastReach float64
}

func (r *fakeRaycaster) Raycast(origin, dir mgl64.Vec3, maxDistance float64) (entity.RaycastHit, bool) {
	r.lastDir = dir
	r.lastReach = maxDistance
	if !r.hit || r.distance > maxDistance {
		return entity.RaycastHit{}, false
	}
	return entity.RaycastHit{
		Point:    origin.Add(dir.Mul(r.distance)),
		Normal:   r.normal,
		Distance: r.distance,
	}, true
}

// transitionLog records hook calls
type transitionLog struct {
	calls [][2]entity.ActorState
}

func (l *transitionLog) hook(from, to entity.ActorState) {
	l.calls = append(l.calls, [2]entity.ActorState{from, to})
}

// recordingObserver counts observer events
type recordingObserver struct {
	transitions int
	cancelled   int
	clamped     int
	paused      []bool
}

func (o *recordingObserver) Transition(_, _ entity.ActorState) { o.transitions++ }
func (o *recordingObserver) FloatingCancelled()                { o.cancelled++ }
func (o *recordingObserver) VelocityClamped()                  { o.clamped++ }
func (o *recordingObserver) Paused(p bool)                     { o.paused = append(o.paused, p) }

func testProfile() *entity.ActorProfile {
	p := entity.DefaultProfile()
	return &p
}

var forwardHeading = entity.FixedHeading{0, 0, 1}

func ceilingContact() entity.Contact {
	return entity.Contact{Normal: mgl64.Vec3{0, -1, 0}}
}
