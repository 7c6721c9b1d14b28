package engine

import (
	"context"
	"log/slog"
	"time"
)

// Run plays setup and then rounds until a player wins, the round cap is
// reached, or ctx is cancelled. OnRound fires after each round, and
// RoundDelay paces the loop for live observers.
func (s *Simulation) Run(ctx context.Context) Result {
	slog.Info("simulation started", "seed", s.seed, "players", len(s.Players), "max_rounds", s.cfg.MaxRounds)
	s.Setup()

	for !s.Finished() {
		if err := ctx.Err(); err != nil {
			slog.Info("simulation interrupted", "round", s.Round, "reason", err)
			break
		}

		start := time.Now()
		s.PlayRound()
		if s.OnRound != nil {
			s.OnRound(s.Round)
		}

		if s.cfg.RoundDelay <= 0 || s.Finished() {
			continue
		}
		if wait := s.cfg.RoundDelay - time.Since(start); wait > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(wait):
			}
		}
	}

	r := s.Result()
	slog.Info("simulation stopped", "rounds", r.Rounds, "winner", r.WinnerID)
	return r
}
