package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/arenasim/server/internal/ai"
	"github.com/arenasim/server/internal/config"
	"github.com/arenasim/server/internal/core/event"
	coresys "github.com/arenasim/server/internal/core/system"
	"github.com/arenasim/server/internal/data"
	"github.com/arenasim/server/internal/scripting"
	"github.com/arenasim/server/internal/system"
	"github.com/arenasim/server/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(serverName string) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m             arenasim  v0.1.0              \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mserver:\033[0m %s\n\n", serverName)
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

func run() error {
	cfgPath := "config/arenasim.toml"
	if p := os.Getenv("ARENASIM_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Server.Name)

	printSection("data")

	species, err := data.LoadSpeciesTable(cfg.Data.Species)
	if err != nil {
		return fmt.Errorf("load species table: %w", err)
	}
	printStat("species", species.Count())

	spawnList, err := data.LoadSpawnList(cfg.Data.Spawns)
	if err != nil {
		return fmt.Errorf("load spawn list: %w", err)
	}

	layout, err := data.LoadMaze(cfg.Data.Maze)
	if err != nil {
		return fmt.Errorf("load maze: %w", err)
	}
	printStat("maze cells", int(layout.Maze.Dim*layout.Maze.Dim))

	luaEngine, err := scripting.NewEngine(cfg.Data.Scripts, log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer luaEngine.Close()
	var script ai.MobScript
	if luaEngine.HasMobAI() {
		script = luaEngine
		printOK("lua mob_ai loaded")
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	sim := world.NewSimulation()
	arena := sim.SpawnArena(layout.Name, layout.Maze)
	players, mobs := spawnAll(sim, arena, species, spawnList, rng, log)
	printStat("players", players)
	printStat("mobs", mobs)
	if cfg.Simulation.AOICell > 0 {
		sim.EnableAOI(cfg.Simulation.AOICell)
	}
	fmt.Println()

	bus := event.NewBus()
	stats := subscribeStats(bus, log)

	tuning := ai.DefaultTuning()
	tuning.BaseSpeed = cfg.Simulation.BaseSpeed
	engine := ai.NewEngine(sim, rng, tuning, bus, log)

	mobAI, err := system.NewMobAISystem(engine, species, script, cfg.Simulation.BaseSpeed, log)
	if err != nil {
		return fmt.Errorf("mob ai: %w", err)
	}

	runner := coresys.NewRunner()
	runner.Register(system.NewEventDispatchSystem(bus))
	runner.Register(system.NewActionTimerSystem(sim))
	runner.Register(mobAI)
	runner.Register(system.NewMotionSystem(sim, cfg.Simulation.Friction))
	runner.Register(system.NewCleanupSystem(sim.ECS(), log))

	printSection("ready")
	printReady(fmt.Sprintf("seed %d", seed))
	printReady(fmt.Sprintf("game loop started (tick: %s)", cfg.Simulation.TickRate))
	fmt.Println()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return gameLoop(gctx, runner, cfg.Simulation, func() {
			log.Info("simulation status",
				zap.Uint64("tick", runner.Ticks()),
				zap.Int("entities", sim.Len()),
				zap.Int("state_changes", stats.stateChanges),
				zap.Int("deletions", stats.deletions),
			)
		})
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info("simulation stopped",
		zap.Uint64("ticks", runner.Ticks()),
		zap.Int("entities", sim.Len()),
	)
	return nil
}

const statusInterval = 250 // ticks between status lines

func gameLoop(ctx context.Context, runner *coresys.Runner, cfg config.SimulationConfig, status func()) error {
	ticker := time.NewTicker(cfg.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			runner.Tick(cfg.TickRate)
			if runner.Ticks()%statusInterval == 0 {
				status()
			}
			if cfg.MaxTicks > 0 && runner.Ticks() >= cfg.MaxTicks {
				return nil
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

type simStats struct {
	stateChanges int
	deletions    int
}

// subscribeStats counts AI events and logs deletions. Handlers run inside
// EventDispatchSystem on the loop goroutine.
func subscribeStats(bus *event.Bus, log *zap.Logger) *simStats {
	st := &simStats{}
	event.Subscribe(bus, func(event.StateChanged) {
		st.stateChanges++
	})
	event.Subscribe(bus, func(ev event.DeletionRequested) {
		st.deletions++
		log.Info("mob removed",
			zap.Uint64("entity", uint64(ev.Entity)),
			zap.String("reason", ev.Reason),
		)
	})
	event.Subscribe(bus, func(ev event.TargetAcquired) {
		log.Debug("target acquired",
			zap.Uint64("entity", uint64(ev.Entity)),
			zap.Uint64("target", uint64(ev.Target)),
		)
	})
	return st
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
