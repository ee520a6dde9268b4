// Package sim is a small rigid-body world for driving the locomotion
// controller without an external physics engine: a ground plane, ceiling
// slabs, gravity and sphere bodies.
package sim

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/domain/geom"
)

// contactSlop is how far a body may already touch a surface and still count
// as arriving at it
const contactSlop = 1e-6

// Slab is a horizontal obstacle hanging above the ground. Bodies below it
// hit its underside at height Bottom.
type Slab struct {
	MinX   float64 `json:"minX"`
	MaxX   float64 `json:"maxX"`
	MinZ   float64 `json:"minZ"`
	MaxZ   float64 `json:"maxZ"`
	Bottom float64 `json:"bottom"`
}

func (s Slab) covers(x, z float64) bool {
	return x >= s.MinX && x <= s.MaxX && z >= s.MinZ && z <= s.MaxZ
}

// Config describes a world
type Config struct {
	Gravity      float64 // downward acceleration, units/sec²
	GroundHeight float64
	Ceilings     []Slab
}

// ContactFunc receives collisions produced by Step
type ContactFunc func(b *Body, c entity.Contact)

// World owns the bodies and advances them in fixed steps
type World struct {
	gravity   float64
	ground    float64
	ceilings  []Slab
	bodies    []*Body
	onContact ContactFunc
	time      float64
	steps     int
}

// NewWorld creates an empty world
func NewWorld(cfg Config) *World {
	return &World{
		gravity:  cfg.Gravity,
		ground:   cfg.GroundHeight,
		ceilings: append([]Slab(nil), cfg.Ceilings...),
	}
}

// SetContactHandler installs the collision callback
func (w *World) SetContactHandler(fn ContactFunc) {
	w.onContact = fn
}

// AddBody places a sphere body at pos
func (w *World) AddBody(pos mgl64.Vec3, radius, mass float64) *Body {
	b := &Body{
		pos:    pos,
		rot:    mgl64.QuatIdent(),
		radius: radius,
		mass:   mass,
	}
	w.bodies = append(w.bodies, b)
	return b
}

// Bodies returns the bodies in insertion order
func (w *World) Bodies() []*Body {
	return w.bodies
}

// GroundHeight returns the ground plane height
func (w *World) GroundHeight() float64 {
	return w.ground
}

// Ceilings returns the ceiling slabs
func (w *World) Ceilings() []Slab {
	return w.ceilings
}

// Time returns the simulated time in seconds
func (w *World) Time() float64 {
	return w.time
}

// Steps returns the number of steps taken
func (w *World) Steps() int {
	return w.steps
}

// Step advances every body by dt seconds
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		w.stepBody(b, dt)
	}
	w.time += dt
	w.steps++
}

func (w *World) stepBody(b *Body, dt float64) {
	start := b.pos
	if b.hasTarget {
		b.pos = b.target
		b.hasTarget = false
	}
	if b.kinematic {
		return
	}

	b.vel = b.vel.Add(geom.Down.Mul(w.gravity * dt))
	b.pos = b.pos.Add(b.vel.Mul(dt))

	if spin := b.angVel.Len(); spin > geom.Epsilon {
		step := mgl64.QuatRotate(spin*dt, b.angVel.Mul(1/spin))
		b.rot = step.Mul(b.rot).Normalize()
	}

	w.resolveGround(b, start)
	w.resolveCeilings(b, start)
}

// resolveGround pushes the body out of the ground plane
func (w *World) resolveGround(b *Body, start mgl64.Vec3) {
	if b.pos.Y()-b.radius >= w.ground {
		return
	}
	impact := b.vel.Y()
	b.pos[1] = w.ground + b.radius
	if b.vel.Y() < 0 {
		b.vel[1] = 0
	}

	arriving := start.Y()-b.radius > w.ground+contactSlop
	if arriving && impact < 0 {
		w.emit(b, entity.Contact{
			Point:   mgl64.Vec3{b.pos.X(), w.ground, b.pos.Z()},
			Normal:  geom.Up,
			Impulse: -impact * b.mass,
		})
	}
}

// resolveCeilings stops a rising body at the underside of any slab above it
func (w *World) resolveCeilings(b *Body, start mgl64.Vec3) {
	for _, s := range w.ceilings {
		if !s.covers(b.pos.X(), b.pos.Z()) {
			continue
		}
		top := b.pos.Y() + b.radius
		wasBelow := start.Y()+b.radius <= s.Bottom+contactSlop
		if top <= s.Bottom || !wasBelow {
			continue
		}

		impact := b.vel.Y()
		b.pos[1] = s.Bottom - b.radius
		if b.vel.Y() > 0 {
			b.vel[1] = 0
		}
		w.emit(b, entity.Contact{
			Point:   mgl64.Vec3{b.pos.X(), s.Bottom, b.pos.Z()},
			Normal:  geom.Down,
			Impulse: math.Max(impact, 0) * b.mass,
		})
	}
}

func (w *World) emit(b *Body, c entity.Contact) {
	if w.onContact != nil {
		w.onContact(b, c)
	}
}

// Raycast intersects a ray with the ground plane and the ceiling undersides.
// Bodies are not hit.
func (w *World) Raycast(origin, dir mgl64.Vec3, maxDistance float64) (entity.RaycastHit, bool) {
	if dir.Len() < geom.Epsilon {
		return entity.RaycastHit{}, false
	}
	dir = dir.Normalize()

	best := entity.RaycastHit{Distance: math.Inf(1)}
	found := false
	consider := func(t float64, normal mgl64.Vec3) {
		if t < 0 || t > maxDistance || t >= best.Distance {
			return
		}
		best = entity.RaycastHit{Point: origin.Add(dir.Mul(t)), Normal: normal, Distance: t}
		found = true
	}

	if dir.Y() < 0 && origin.Y() >= w.ground {
		consider((w.ground-origin.Y())/dir.Y(), geom.Up)
	}
	if dir.Y() > 0 {
		for _, s := range w.ceilings {
			if origin.Y() > s.Bottom {
				continue
			}
			t := (s.Bottom - origin.Y()) / dir.Y()
			p := origin.Add(dir.Mul(t))
			if s.covers(p.X(), p.Z()) {
				consider(t, geom.Down)
			}
		}
	}

	if !found {
		return entity.RaycastHit{}, false
	}
	return best, true
}

var _ entity.Raycaster = (*World)(nil)
