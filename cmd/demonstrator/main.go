// Command demonstrator plays a fixed, reproducible game between two
// planners and two random players with the full action log enabled.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/agents"
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/engine"
)

const (
	demoSeed   = 42
	demoRounds = 500
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	spawner := agents.NewSpawner(demoSeed)
	var players []agents.TurnTaker
	for _, kind := range []agents.Kind{agents.KindPlanner, agents.KindRandom, agents.KindPlanner, agents.KindRandom} {
		p, err := spawner.Spawn(kind)
		if err != nil {
			slog.Error("failed to seat player", "error", err)
			os.Exit(1)
		}
		players = append(players, p)
	}

	sim, err := engine.NewSimulation(engine.SimConfig{Seed: demoSeed, MaxRounds: demoRounds}, players, nil)
	if err != nil {
		slog.Error("failed to create simulation", "error", err)
		os.Exit(1)
	}
	fmt.Println(sim.Board)

	result := sim.Run(context.Background())
	fmt.Print(engine.FormatResult(result))
}
