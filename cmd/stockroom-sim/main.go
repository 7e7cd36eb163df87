// Command stockroom-sim runs the point-mass simulation for a configured number
// of ticks and logs every body's final state.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/TheBitDrifter/stockroom"
	"github.com/TheBitDrifter/stockroom/internal/config"
	"github.com/TheBitDrifter/stockroom/internal/physics"
	"github.com/TheBitDrifter/stockroom/internal/scenario"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("stockroom-sim", flag.ContinueOnError)
	cfgPath := fs.String("config", os.Getenv("STOCKROOM_CONFIG"), "path to a TOML config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Defaults()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if cfg.Profile.Enabled {
		p := profile.Start(profileMode(cfg.Profile.Mode), profile.ProfilePath(cfg.Profile.Path), profile.NoShutdownHook, profile.Quiet)
		defer p.Stop()
		log.Info("profiling", zap.String("mode", cfg.Profile.Mode), zap.String("path", cfg.Profile.Path))
	}

	spawns := scenario.Default()
	if cfg.Simulation.Scenario != "" {
		spawns, err = scenario.Load(cfg.Simulation.Scenario)
		if err != nil {
			return fmt.Errorf("load scenario: %w", err)
		}
	}

	stockroom.Config.SetInitialCapacity(cfg.Simulation.Capacity)
	sim, err := physics.NewSimulation(log)
	if err != nil {
		return fmt.Errorf("create simulation: %w", err)
	}
	ids := spawns.Spawn(sim.Manager, sim.Components)
	log.Info("spawned", zap.Int("entities", len(ids)), zap.String("scenario", scenarioName(cfg.Simulation.Scenario)))

	sim.Run(cfg.Simulation.Ticks, cfg.Simulation.DT)

	for _, b := range sim.Bodies() {
		fields := []zap.Field{
			zap.Int("id", b.ID),
			zap.Float64("x", b.State.X),
			zap.Float64("y", b.State.Y),
			zap.Float64("vx", b.State.VX),
			zap.Float64("vy", b.State.VY),
		}
		if b.HasMass {
			fields = append(fields, zap.Float64("m", b.Mass))
		}
		log.Info("body", fields...)
	}
	log.Info("done", zap.Int("ticks", sim.Ticks()))
	return nil
}

func scenarioName(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

func profileMode(mode string) func(*profile.Profile) {
	switch mode {
	case "mem":
		return profile.MemProfile
	case "allocs":
		return profile.MemProfileAllocs
	default:
		return profile.CPUProfile
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
