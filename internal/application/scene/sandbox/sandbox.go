package sandbox

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/locomotion/internal/application/replay"
	"github.com/younwookim/locomotion/internal/application/scene"
	"github.com/younwookim/locomotion/internal/application/state"
	"github.com/younwookim/locomotion/internal/application/system"
	"github.com/younwookim/locomotion/internal/domain/entity"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorGround   = color.RGBA{80, 80, 100, 255}
	colorCeiling  = color.RGBA{120, 90, 140, 255}
	colorGrounded = color.RGBA{100, 200, 100, 255}
	colorAirborne = color.RGBA{200, 200, 100, 255}
	colorFloating = color.RGBA{100, 160, 230, 255}
	colorHeading  = color.RGBA{230, 230, 230, 255}
	colorInsetBG  = color.RGBA{40, 40, 60, 200}
	colorOverlay  = color.RGBA{0, 0, 0, 150}
)

const insetSize = 80

// Sandbox is the playground scene
type Sandbox struct {
	session *Session
	input   *system.InputSystem
	state   state.SessionState
	log     *slog.Logger

	screenW int
	screenH int
	ppu     float64

	wantPaused bool

	// Input recording
	recorder   *replay.Recorder
	recordPath string

	// Playback replaces the keyboard
	replayer *replay.Replayer
}

// Option configures a Sandbox
type Option func(*Sandbox)

// WithRecorder records every frame and saves to path on exit and on F5
func WithRecorder(rec *replay.Recorder, path string) Option {
	return func(s *Sandbox) {
		s.recorder = rec
		s.recordPath = path
	}
}

// WithReplayer plays a recording instead of reading the keyboard
func WithReplayer(r *replay.Replayer) Option {
	return func(s *Sandbox) {
		s.replayer = r
	}
}

// WithLogger sets the scene logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Sandbox) {
		s.log = l
	}
}

// New creates a sandbox scene around a session
func New(session *Session, display config.DisplayConfig, opts ...Option) *Sandbox {
	s := &Sandbox{
		session: session,
		input:   system.NewInputSystem(),
		state:   state.StateLoading,
		log:     slog.Default(),
		screenW: display.ScreenWidth,
		screenH: display.ScreenHeight,
		ppu:     display.PixelsPerUnit,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.ppu <= 0 {
		s.ppu = 40
	}
	return s
}

// OnEnter implements scene.Scene
func (s *Sandbox) OnEnter() {
	s.state = state.StatePlaying
	if s.replayer != nil {
		s.state = state.StateReplaying
		s.log.Info("replay started", "frames", s.replayer.TotalFrames(), "profile", s.replayer.Data().Profile)
	}
	if s.recorder != nil {
		s.log.Info("recording enabled", "path", s.recordPath)
	}
}

// OnExit implements scene.Scene
func (s *Sandbox) OnExit() {
	s.saveRecording()
}

// Pause implements scene.Scene
func (s *Sandbox) Pause() {
	s.wantPaused = true
}

// Resume implements scene.Scene
func (s *Sandbox) Resume() {
	s.wantPaused = false
}

// State returns the scene state
func (s *Sandbox) State() state.SessionState {
	return s.state
}

// Update implements scene.Scene
func (s *Sandbox) Update(dt float64) (scene.Scene, error) {
	if s.state == state.StateFinished {
		return nil, nil
	}

	var in replay.FrameInput
	if s.replayer != nil {
		if s.wantPaused {
			s.state = state.StatePaused
			return nil, nil
		}
		next, ok := s.replayer.Next()
		if !ok {
			s.state = state.StateFinished
			s.log.Info("replay finished", "snapshot", s.session.Snapshot().String())
			return nil, nil
		}
		in = next
	} else {
		in = s.readKeyboard()
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
			s.saveRecording()
		}
	}

	if s.recorder != nil {
		s.recorder.RecordFrame(in)
	}
	s.session.Frame(in, dt)

	switch {
	case s.session.Controller().Paused():
		s.state = state.StatePaused
	case s.replayer != nil:
		s.state = state.StateReplaying
	default:
		s.state = state.StatePlaying
	}
	return nil, nil
}

func (s *Sandbox) readKeyboard() replay.FrameInput {
	in := replay.FrameInput{
		InputSample: s.input.GetInput(),
		Pause:       s.wantPaused != s.session.Controller().Paused(),
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		in.Turn--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		in.Turn++
	}
	return in
}

func (s *Sandbox) saveRecording() {
	if s.recorder == nil || s.recordPath == "" || s.recorder.FrameCount() == 0 {
		return
	}
	if err := s.recorder.Save(s.recordPath); err != nil {
		s.log.Error("failed to save recording", "path", s.recordPath, "err", err)
		return
	}
	s.log.Info("recording saved", "path", s.recordPath, "frames", s.recorder.FrameCount())
}

// Draw implements scene.Scene
func (s *Sandbox) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	snap := s.session.Snapshot()
	camX := snap.Position.X()
	groundY := float64(s.screenH) * 3 / 4
	world := s.session.World()

	toScreen := func(x, y float64) (float32, float32) {
		sx := float64(s.screenW)/2 + (x-camX)*s.ppu
		sy := groundY - (y-world.GroundHeight())*s.ppu
		return float32(sx), float32(sy)
	}

	// Ground
	vector.DrawFilledRect(screen, 0, float32(groundY), float32(s.screenW), float32(s.screenH)-float32(groundY), colorGround, false)

	// Ceilings, drawn as slabs one unit thick
	for _, c := range world.Ceilings() {
		x0, y0 := toScreen(c.MinX, c.Bottom+1)
		x1, y1 := toScreen(c.MaxX, c.Bottom)
		vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, colorCeiling, false)
	}

	s.drawActor(screen, toScreen)
	s.drawInset(screen)

	ebitenutil.DebugPrint(screen, s.debugText(snap))

	if s.state == state.StatePaused {
		vector.DrawFilledRect(screen, 0, 0, float32(s.screenW), float32(s.screenH), colorOverlay, false)
		ebitenutil.DebugPrintAt(screen, "PAUSED - ESC to resume", s.screenW/2-70, s.screenH/2-8)
	}
	if s.state == state.StateFinished {
		ebitenutil.DebugPrintAt(screen, "REPLAY FINISHED", s.screenW/2-50, s.screenH/2-8)
	}
}

func (s *Sandbox) drawActor(screen *ebiten.Image, toScreen func(x, y float64) (float32, float32)) {
	ctrl := s.session.Controller()
	body := s.session.Body()
	pos := body.Position()

	c := colorAirborne
	switch {
	case ctrl.IsFloating():
		c = colorFloating
	case ctrl.IsCurrent(entity.StateGrounded):
		c = colorGrounded
	}

	cx, cy := toScreen(pos.X(), pos.Y())
	r := float32(body.Radius() * s.ppu)
	if ctrl.IsFlattened() {
		bottom := cy + r
		vector.DrawFilledRect(screen, cx-r, bottom-r, 2*r, r, c, false)
	} else {
		vector.DrawFilledCircle(screen, cx, cy, r, c, true)
	}

	// Facing along X in the side view
	fwd := body.Rotation().Rotate(mgl64.Vec3{0, 0, 1})
	tx, ty := toScreen(pos.X()+fwd.X()*body.Radius()*1.5, pos.Y())
	vector.StrokeLine(screen, cx, cy, tx, ty, 2, colorHeading, true)
}

// drawInset draws a top-down view of the heading and facing
func (s *Sandbox) drawInset(screen *ebiten.Image) {
	x0 := float32(s.screenW - insetSize - 8)
	y0 := float32(8)
	half := float32(insetSize) / 2
	vector.DrawFilledRect(screen, x0, y0, insetSize, insetSize, colorInsetBG, false)

	cx, cy := x0+half, y0+half
	h := s.session.Heading().MovementOrientation()
	vector.StrokeLine(screen, cx, cy, cx+float32(h.X())*half*0.8, cy-float32(h.Z())*half*0.8, 1, colorHeading, true)

	fwd := s.session.Body().Rotation().Rotate(mgl64.Vec3{0, 0, 1})
	vector.StrokeLine(screen, cx, cy, cx+float32(fwd.X())*half*0.6, cy-float32(fwd.Z())*half*0.6, 3, colorGrounded, true)
}

func (s *Sandbox) debugText(snap Snapshot) string {
	ctrl := s.session.Controller()
	text := fmt.Sprintf("%s | prev %s | %s\npos (%.2f, %.2f, %.2f) vel (%.2f, %.2f, %.2f)\nyaw %.0f  ticks %d",
		snap.State, ctrl.Previous(), s.state,
		snap.Position.X(), snap.Position.Y(), snap.Position.Z(),
		snap.Velocity.X(), snap.Velocity.Y(), snap.Velocity.Z(),
		snap.YawDeg, snap.Ticks)
	if ctrl.FloatPending() {
		text += "\nfloat armed"
	}
	if snap.Floating {
		text += fmt.Sprintf("\nfloating %.1fs left", ctrl.FloatRemaining())
	}
	if s.recorder != nil {
		text += fmt.Sprintf("\nREC %d", s.recorder.FrameCount())
	}
	return text + "\nA/D move  W jump  S crouch  F float  SPACE brake  Q/E turn  ESC pause"
}

var _ scene.Scene = (*Sandbox)(nil)
