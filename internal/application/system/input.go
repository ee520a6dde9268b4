package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/locomotion/internal/domain/entity"
)

// KeyState is the raw keyboard state for one frame
type KeyState struct {
	Left        bool
	Right       bool
	Up          bool
	Down        bool
	FloatPushed bool // just pressed this frame
	Brake       bool
}

// InputSystem reads the keyboard and builds input samples
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetKeys reads the current keyboard state
func (s *InputSystem) GetKeys() KeyState {
	return KeyState{
		Left:        ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:       ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:          ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:        ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		FloatPushed: inpututil.IsKeyJustPressed(ebiten.KeyF),
		Brake:       ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

// GetInput reads the keyboard and returns this frame's sample
func (s *InputSystem) GetInput() entity.InputSample {
	return SampleFromKeys(s.GetKeys())
}

// SampleFromKeys maps key state to an input sample.
// Opposite keys held together cancel out.
func SampleFromKeys(k KeyState) entity.InputSample {
	return entity.InputSample{
		Horizontal:  axis(k.Left, k.Right),
		Vertical:    axis(k.Down, k.Up),
		ToggleFloat: k.FloatPushed,
		Brake:       k.Brake,
	}
}

func axis(negative, positive bool) float64 {
	var v float64
	if negative {
		v--
	}
	if positive {
		v++
	}
	return v
}
