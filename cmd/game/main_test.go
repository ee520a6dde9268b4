package main

import (
	"context"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/locomotion/internal/application/game"
	"github.com/younwookim/locomotion/internal/application/scene"
)

type stubScene struct {
	updates int
}

func (s *stubScene) Update(float64) (scene.Scene, error) {
	s.updates++
	return nil, nil
}
func (s *stubScene) Draw(*ebiten.Image) {}
func (s *stubScene) OnEnter()           {}
func (s *stubScene) OnExit()            {}
func (s *stubScene) Pause()             {}
func (s *stubScene) Resume()            {}

func TestInterruptible(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sc := &stubScene{}
	g := interruptible{Game: game.New(sc, 320, 240), ctx: ctx}

	assert.NoError(t, g.Update())
	assert.Equal(t, 1, sc.updates)

	cancel()
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Equal(t, 1, sc.updates, "scene not updated after interrupt")
}
