package main

import (
	"fmt"
	"io"

	"github.com/younwookim/locomotion/internal/application/replay"
	"github.com/younwookim/locomotion/internal/application/scene/sandbox"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
)

// runReplay plays a recording against the reference world without a window
// and prints the final snapshot. The recording's profile is used unless
// profile overrides it.
func runReplay(loader *config.Loader, path, profile string, out io.Writer) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}
	if profile == "" {
		profile = data.Profile
	}

	cfg, err := loader.LoadAll(profile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := initLogger(cfg.Physics.Logging)

	if data.TickRate > 0 && data.TickRate != cfg.Physics.Simulation.TickRate {
		log.Warn("recording tick rate differs from config, using recording",
			"recorded", data.TickRate, "config", cfg.Physics.Simulation.TickRate)
		cfg.Physics.Simulation.TickRate = data.TickRate
	}
	if data.FrameRate <= 0 {
		data.FrameRate = cfg.Physics.Display.Framerate
	}

	session, err := sandbox.NewSession(sandbox.Options{
		Physics: cfg.Physics,
		Profile: cfg.Profile,
		Logger:  log,
	})
	if err != nil {
		return err
	}

	snap := sandbox.Play(session, replay.NewReplayer(*data))
	log.Debug("replay finished", "path", path, "dropped", session.Dropped())

	_, err = fmt.Fprintln(out, snap)
	return err
}
