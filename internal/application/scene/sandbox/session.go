// Package sandbox provides the playground scene: one actor driven by the
// locomotion controller inside the reference world.
package sandbox

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/younwookim/locomotion/internal/application/replay"
	"github.com/younwookim/locomotion/internal/application/system"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
	"github.com/younwookim/locomotion/internal/infrastructure/sim"
)

// ErrMissingPhysics is returned by NewSession without a physics config
var ErrMissingPhysics = errors.New("missing physics config")

// startYawDeg faces the actor along +X so the side view shows its motion
const startYawDeg = 90

// Options configures a Session
type Options struct {
	Physics  *config.PhysicsConfig
	Profile  *entity.ActorProfile
	Logger   *slog.Logger
	Observer system.Observer
}

// Session runs the frame and tick cadences for one actor. It has no
// window and is shared by the scene and the headless replay runner.
type Session struct {
	world   *sim.World
	body    *sim.Body
	ctrl    *system.Controller
	heading *Heading
	spawn   mgl64.Vec3
	log     *slog.Logger

	tickDT       float64
	substepLimit int
	acc          float64
	frames       int
	ticks        int
	dropped      int
}

// NewSession builds the world, the body and its controller
func NewSession(opts Options) (*Session, error) {
	if opts.Physics == nil {
		return nil, ErrMissingPhysics
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	simCfg := opts.Physics.Simulation
	world := sim.NewWorld(simCfg.World())
	spawn := mgl64.Vec3(simCfg.Spawn)
	body := world.AddBody(spawn, simCfg.BodyRadius, simCfg.BodyMass)
	heading := NewHeading(startYawDeg, opts.Physics.Camera.TurnStepDeg)

	deps := system.Deps{
		Profile:  opts.Profile,
		Body:     body,
		Heading:  heading,
		Logger:   log,
		Observer: opts.Observer,
	}
	if opts.Profile != nil {
		deps.Sensor = system.NewRaySensor(world, body, opts.Profile)
	}
	ctrl := system.NewController(deps)
	if err := ctrl.Err(); err != nil {
		return nil, fmt.Errorf("failed to create controller: %w", err)
	}

	world.SetContactHandler(func(_ *sim.Body, c entity.Contact) {
		ctrl.Enqueue(system.ContactCommand{Contact: c})
	})

	limit := simCfg.SubstepLimit
	if limit <= 0 {
		limit = 1
	}

	return &Session{
		world:        world,
		body:         body,
		ctrl:         ctrl,
		heading:      heading,
		spawn:        spawn,
		log:          log,
		tickDT:       simCfg.TickDT(),
		substepLimit: limit,
	}, nil
}

// Frame applies one render frame of input and runs as many fixed ticks as
// the accumulated time allows. It returns the number of ticks run.
func (s *Session) Frame(in replay.FrameInput, frameDT float64) int {
	s.frames++

	if in.Turn != 0 {
		s.heading.Turn(in.Turn)
	}
	if in.Pause {
		s.TogglePause()
	}

	s.ctrl.SetInput(in.Sample())
	s.ctrl.Frame(frameDT)

	s.acc += frameDT
	n := 0
	for s.acc >= s.tickDT && n < s.substepLimit {
		s.ctrl.Tick(s.tickDT)
		s.world.Step(s.tickDT)
		s.acc -= s.tickDT
		n++
	}
	if s.acc >= s.tickDT {
		s.dropped++
		s.log.Debug("dropping frame backlog", "backlog", s.acc, "ticks", n)
		s.acc = 0
	}
	s.ticks += n
	return n
}

// TogglePause pauses a running actor or resumes a paused one
func (s *Session) TogglePause() {
	if s.ctrl.Paused() {
		s.ctrl.Resume()
	} else {
		s.ctrl.Pause()
	}
}

// Respawn puts the body back at the spawn point at rest
func (s *Session) Respawn() {
	s.body.Teleport(s.spawn)
}

// Controller returns the actor's controller
func (s *Session) Controller() *system.Controller { return s.ctrl }

// Body returns the actor's body
func (s *Session) Body() *sim.Body { return s.body }

// World returns the reference world
func (s *Session) World() *sim.World { return s.world }

// Heading returns the camera heading
func (s *Session) Heading() *Heading { return s.heading }

// Frames returns the number of frames played
func (s *Session) Frames() int { return s.frames }

// Ticks returns the number of fixed ticks run
func (s *Session) Ticks() int { return s.ticks }

// Dropped returns how many frames hit the substep limit
func (s *Session) Dropped() int { return s.dropped }

// Snapshot is a printable summary of the session
type Snapshot struct {
	Frames   int
	Ticks    int
	State    entity.ActorState
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Floating bool
	Paused   bool
	YawDeg   float64
}

// Snapshot captures the current actor state
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Frames:   s.frames,
		Ticks:    s.ticks,
		State:    s.ctrl.State(),
		Position: s.body.Position(),
		Velocity: s.body.Velocity(),
		Floating: s.ctrl.IsFloating(),
		Paused:   s.ctrl.Paused(),
		YawDeg:   s.heading.YawDeg(),
	}
}

func (s Snapshot) String() string {
	p, v := s.Position, s.Velocity
	return fmt.Sprintf("frames=%d ticks=%d state=%s pos=(%.3f, %.3f, %.3f) vel=(%.3f, %.3f, %.3f) floating=%t paused=%t yaw=%.0f",
		s.Frames, s.Ticks, s.State, p.X(), p.Y(), p.Z(), v.X(), v.Y(), v.Z(), s.Floating, s.Paused, s.YawDeg)
}

// Play runs every frame of a replay and returns the final snapshot
func Play(s *Session, r *replay.Replayer) Snapshot {
	dt := r.Data().FrameDT()
	for {
		fi, ok := r.Next()
		if !ok {
			break
		}
		s.Frame(fi, dt)
	}
	return s.Snapshot()
}
