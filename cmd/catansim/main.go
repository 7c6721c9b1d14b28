// Command catansim plays one automated game of Catan and prints the final
// standings. Settings come from an optional YAML file (first argument,
// default catan.yaml) and CATAN_* environment variables.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/agents"
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/api"
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/config"
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/engine"
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/entropy"
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/persistence"
)

const defaultConfigPath = "catan.yaml"

func main() {
	path := defaultConfigPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load(path)
	if err != nil {
		slog.Error("failed to load config", "path", path, "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))
	slog.Info("config loaded", "turns", cfg.Turns, "seed", cfg.Seed, "players", cfg.Players, "agent", cfg.Agent)

	// ── Players & simulation ──────────────────────────────────────────
	seed := entropy.Resolve(cfg.Seed)
	players, err := agents.NewSpawner(seed).SpawnPopulation(cfg.Players, cfg.Kind())
	if err != nil {
		slog.Error("failed to seat players", "error", err)
		os.Exit(1)
	}
	sim, err := engine.NewSimulation(engine.SimConfig{
		Seed:       seed,
		MaxRounds:  cfg.Turns,
		RoundDelay: cfg.RoundDelay,
	}, players, nil)
	if err != nil {
		slog.Error("failed to create simulation", "error", err)
		os.Exit(1)
	}
	slog.Info("board ready", "seed", sim.Seed(), "layout", sim.Board.String())

	// ── Journal ───────────────────────────────────────────────────────
	var db *persistence.DB
	var gameID string
	if cfg.Journal != "" {
		db, err = persistence.Open(cfg.Journal)
		if err != nil {
			slog.Error("failed to open journal", "path", cfg.Journal, "error", err)
			os.Exit(1)
		}
		defer db.Close()

		gameID, err = db.BeginGame(sim.Seed(), cfg.Turns, cfg.Players)
		if err != nil {
			slog.Error("failed to start journal", "error", err)
			os.Exit(1)
		}
		slog.Info("journal opened", "path", cfg.Journal, "game", gameID)

		sim.OnRound = func(round int) {
			if err := db.SaveEvents(gameID, sim.DrainEvents()); err != nil {
				slog.Error("journal write failed", "round", round, "error", err)
			}
		}
	}

	// ── HTTP API ──────────────────────────────────────────────────────
	var apiServer *api.Server
	if cfg.Listen != "" {
		apiServer = &api.Server{Source: sim, Addr: cfg.Listen, GameID: gameID, RateLimit: 600}
		apiServer.Start()
	}

	// ── Run ───────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	result := sim.Run(ctx)

	if db != nil {
		if err := db.SaveEvents(gameID, sim.DrainEvents()); err != nil {
			slog.Error("journal write failed", "error", err)
		}
		if err := db.FinishGame(gameID, result); err != nil {
			slog.Error("journal finish failed", "error", err)
		}
	}
	if apiServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			slog.Warn("HTTP shutdown", "error", err)
		}
		cancel()
	}

	fmt.Print(engine.FormatResult(result))
}
