package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/locomotion/internal/infrastructure/sim"
)

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display    DisplayConfig    `json:"display"`
	Simulation SimulationConfig `json:"simulation"`
	Camera     CameraConfig     `json:"camera"`
	Logging    LoggingConfig    `json:"logging"`
	Metrics    MetricsConfig    `json:"metrics"`
	Actor      string           `json:"actor"` // default profile name
}

type DisplayConfig struct {
	ScreenWidth   int     `json:"screenWidth"`
	ScreenHeight  int     `json:"screenHeight"`
	Scale         int     `json:"scale"`
	Framerate     int     `json:"framerate"`
	PixelsPerUnit float64 `json:"pixelsPerUnit"`
}

// SimulationConfig configures the reference world
type SimulationConfig struct {
	TickRate     int        `json:"tickRate"` // fixed physics ticks per second
	Gravity      float64    `json:"gravity"`
	GroundHeight float64    `json:"groundHeight"`
	BodyRadius   float64    `json:"bodyRadius"`
	BodyMass     float64    `json:"bodyMass"`
	Spawn        [3]float64 `json:"spawn"`
	Ceilings     []sim.Slab `json:"ceilings"`
	SubstepLimit int        `json:"substepLimit"` // max ticks per frame before time is dropped
}

// CameraConfig configures the heading provider
type CameraConfig struct {
	TurnStepDeg float64 `json:"turnStepDeg"`
}

type LoggingConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"` // "text", "json", "console"
}

type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Addr    string `json:"addr"`
}

// TickDT returns the fixed tick duration in seconds
func (s SimulationConfig) TickDT() float64 {
	return 1.0 / float64(s.TickRate)
}

// World converts the simulation settings into a world config
func (s SimulationConfig) World() sim.Config {
	return sim.Config{
		Gravity:      s.Gravity,
		GroundHeight: s.GroundHeight,
		Ceilings:     s.Ceilings,
	}
}

// Validate reports values the sandbox cannot run with
func (c *PhysicsConfig) Validate() error {
	var errs []error
	if c.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("display.framerate must be positive, got %d", c.Display.Framerate))
	}
	if c.Simulation.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("simulation.tickRate must be positive, got %d", c.Simulation.TickRate))
	}
	if c.Simulation.BodyRadius <= 0 {
		errs = append(errs, fmt.Errorf("simulation.bodyRadius must be positive, got %v", c.Simulation.BodyRadius))
	}
	if c.Simulation.BodyMass <= 0 {
		errs = append(errs, fmt.Errorf("simulation.bodyMass must be positive, got %v", c.Simulation.BodyMass))
	}
	for i, s := range c.Simulation.Ceilings {
		if s.MinX > s.MaxX || s.MinZ > s.MaxZ {
			errs = append(errs, fmt.Errorf("simulation.ceilings[%d] has inverted extents", i))
		}
	}
	return errors.Join(errs...)
}
