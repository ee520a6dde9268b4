package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/younwookim/locomotion/internal/application/game"
	"github.com/younwookim/locomotion/internal/application/replay"
	"github.com/younwookim/locomotion/internal/application/scene/sandbox"
	"github.com/younwookim/locomotion/internal/application/system"
	"github.com/younwookim/locomotion/internal/infrastructure/config"
	"github.com/younwookim/locomotion/internal/infrastructure/logger"
	"github.com/younwookim/locomotion/internal/infrastructure/metrics"
)

type options struct {
	record  string
	replay  string
	profile string
	metrics string
	list    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json)")
	flag.StringVar(&opts.replay, "replay", "", "Play a recording headless and print the final state")
	flag.StringVar(&opts.profile, "profile", "", "Actor profile under configs/profiles (default: physics.json actor)")
	flag.StringVar(&opts.metrics, "metrics", "", "Serve Prometheus metrics on this address")
	flag.BoolVar(&opts.list, "profiles", false, "List the embedded actor profiles and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		slog.Error("exit", "err", err)
		stop()
		os.Exit(1)
	}
}

func newLoader() (*config.Loader, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func run(ctx context.Context, opts options, stdout io.Writer) error {
	loader, err := newLoader()
	if err != nil {
		return err
	}

	if opts.list {
		names, err := loader.ListProfiles()
		if err != nil {
			return err
		}
		for _, n := range names {
			if _, err := fmt.Fprintln(stdout, n); err != nil {
				return err
			}
		}
		return nil
	}
	if opts.replay != "" {
		return runReplay(loader, opts.replay, opts.profile, stdout)
	}

	cfg, err := loader.LoadAll(opts.profile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := initLogger(cfg.Physics.Logging)
	display := cfg.Physics.Display

	observer, err := startMetrics(ctx, cfg.Physics.Metrics, opts.metrics, log)
	if err != nil {
		return err
	}

	session, err := sandbox.NewSession(sandbox.Options{
		Physics:  cfg.Physics,
		Profile:  cfg.Profile,
		Logger:   log,
		Observer: observer,
	})
	if err != nil {
		return err
	}

	sceneOpts := []sandbox.Option{sandbox.WithLogger(log)}
	if opts.record != "" {
		rec := replay.NewRecorder(cfg.Profile.Name, display.Framerate, cfg.Physics.Simulation.TickRate)
		sceneOpts = append(sceneOpts, sandbox.WithRecorder(rec, opts.record))
	}
	sb := sandbox.New(session, display, sceneOpts...)

	g := game.New(sb, display.ScreenWidth, display.ScreenHeight)
	g.SetDT(1.0 / float64(display.Framerate))

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Locomotion Sandbox")
	ebiten.SetTPS(display.Framerate)

	log.Info("sandbox started", "profile", cfg.Profile.Name, "tickRate", cfg.Physics.Simulation.TickRate)
	err = ebiten.RunGame(interruptible{Game: g, ctx: ctx})
	sb.OnExit()
	return err
}

// interruptible ends the game loop once ctx is cancelled
type interruptible struct {
	*game.Game
	ctx context.Context
}

func (g interruptible) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	return g.Game.Update()
}

func initLogger(cfg config.LoggingConfig) *slog.Logger {
	return logger.Init(logger.Config{
		Level:  cfg.Level,
		Format: cfg.Format,
		Output: os.Stderr,
	})
}

// startMetrics serves /metrics when an address is given or configured.
// It returns a nil observer when metrics are off.
func startMetrics(ctx context.Context, cfg config.MetricsConfig, addr string, log *slog.Logger) (system.Observer, error) {
	if addr == "" && cfg.Enabled {
		addr = cfg.Addr
	}
	if addr == "" {
		return nil, nil
	}

	rec, err := metrics.NewRecorder(prometheus.DefaultRegisterer)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}
	go func() {
		if err := metrics.Serve(ctx, addr, prometheus.DefaultGatherer, log); err != nil {
			log.Error("metrics server stopped", "addr", addr, "err", err)
		}
	}()
	return rec, nil
}
