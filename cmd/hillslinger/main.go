// Package main is the headless host for the Hillslinger simulation. It runs
// the fixed-timestep loop with a scripted driver, which is the harness used
// for tuning and soak testing without a renderer attached.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/hexlab-games/hillslinger/internal/config"
	"github.com/hexlab-games/hillslinger/internal/engine/input"
	"github.com/hexlab-games/hillslinger/internal/engine/picking"
	"github.com/hexlab-games/hillslinger/internal/game"
	"github.com/hexlab-games/hillslinger/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Hillslinger ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	sim, err := game.New(cfg, logger.Log)
	if err != nil {
		logger.Error("failed to create simulation", zap.Error(err))
		os.Exit(1)
	}

	if err := run(sim, cfg); err != nil {
		logger.Error("simulation error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("simulation closed normally")
}

// run drives the simulation at the configured tick rate until interrupted.
func run(sim *game.Simulation, cfg *config.Config) error {
	dt := 1.0 / float64(cfg.Sim.TPS)
	ticker := time.NewTicker(time.Duration(float64(time.Second) * dt))
	defer ticker.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	driver := &scriptedDriver{sim: sim}

	logger.Info("starting simulation loop",
		zap.Int("tps", cfg.Sim.TPS),
		zap.Int64("seed", cfg.Terrain.Seed),
	)

	for {
		select {
		case <-quit:
			logger.Info("interrupt received, shutting down")
			return nil
		case <-ticker.C:
			sim.Step(driver.next(), dt)

			if sim.Tick()%uint64(cfg.Sim.TPS*5) == 0 {
				snap := sim.Snapshot()
				logger.Info("state",
					zap.Uint64("tick", snap.Tick),
					zap.Float64("x", snap.Player.Position.X()),
					zap.Float64("y", snap.Player.Position.Y()),
					zap.Float64("z", snap.Player.Position.Z()),
					zap.Bool("grounded", snap.Player.Grounded),
					zap.Int("projectiles", len(snap.Projectiles)),
					zap.Int("chunks", sim.Chunks().Count()),
				)
			}
		}
	}
}

// scriptedDriver produces a repeating input pattern: roll forward, weave,
// hop, and lob a shot at whatever ground the camera is looking at.
type scriptedDriver struct {
	sim  *game.Simulation
	tick uint64
}

func (d *scriptedDriver) next() input.State {
	d.tick++
	phase := d.tick % 600

	var in input.State
	in.Forward = phase < 400
	in.Left = phase >= 200 && phase < 300
	in.Right = phase >= 300 && phase < 400
	in.Jump = phase == 150
	in.Fire = phase == 450

	if in.Fire {
		cam := d.sim.Camera()
		ray := picking.Ray{
			Origin: cam.Position,
			Dir:    cam.Rotation.Rotate(mgl64.Vec3{0, 0, -1}),
		}
		if hit, ok := ray.MarchHeightfield(d.sim.Field(), 120, 0.5); ok {
			in.TargetPoint = hit
			in.TargetValid = true
		}
	}

	return in
}
