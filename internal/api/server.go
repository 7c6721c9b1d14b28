// Package api serves a read-only JSON view of a running game.
// Handlers only ever see the snapshot the simulation publishes after each
// round; they never touch live board state.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/engine"
)

const (
	defaultEventLimit = 50
	maxEventLimit     = 500
)

// Source publishes game snapshots. *engine.Simulation satisfies it.
type Source interface {
	Snapshot() engine.Snapshot
}

// Server serves the game state over HTTP.
type Server struct {
	Source Source
	Addr   string
	GameID string // Journal id of the game being served, if any

	// RateLimit caps requests per client per minute. 0 disables it.
	RateLimit int

	srv *http.Server
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/status", getOnly(s.handleStatus))
	mux.HandleFunc("/api/v1/board", getOnly(s.handleBoard))
	mux.HandleFunc("/api/v1/players", getOnly(s.handlePlayers))
	mux.HandleFunc("/api/v1/events", getOnly(s.handleEvents))

	if s.RateLimit > 0 {
		return RateLimitMiddleware(NewRateLimiter(s.RateLimit, time.Minute), mux)
	}
	return mux
}

// Start begins serving in a goroutine.
func (s *Server) Start() {
	s.srv = &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	slog.Info("HTTP API starting", "addr", s.Addr, "rate_limit", s.RateLimit)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

// Shutdown stops a server started with Start.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// getOnly rejects every method but GET (and HEAD) with 405.
func getOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	snap := s.Source.Snapshot()
	status := map[string]any{
		"game_id":    s.GameID,
		"seed":       snap.Seed,
		"round":      snap.Round,
		"max_rounds": snap.MaxRounds,
		"finished":   snap.Finished,
		"winner_id":  snap.WinnerID,
		"players":    len(snap.Players),
		"buildings":  len(snap.Buildings),
		"roads":      len(snap.Roads),
	}
	writeJSON(w, status)
}

func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	snap := s.Source.Snapshot()
	writeJSON(w, map[string]any{
		"tiles":     snap.Tiles,
		"buildings": snap.Buildings,
		"roads":     snap.Roads,
	})
}

func (s *Server) handlePlayers(w http.ResponseWriter, r *http.Request) {
	snap := s.Source.Snapshot()
	writeJSON(w, map[string]any{
		"players":   snap.Players,
		"standings": snap.Standings,
	})
}

// handleEvents returns recent events, oldest first. Query: limit (1..500),
// player (id), category.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := defaultEventLimit
	if l := q.Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 && n <= maxEventLimit {
			limit = n
		}
	}

	player := -1
	if p := q.Get("player"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil {
			http.Error(w, "invalid player id", http.StatusBadRequest)
			return
		}
		player = n
	}
	category := q.Get("category")

	events := make([]engine.Event, 0)
	for _, e := range s.Source.Snapshot().Events {
		if player >= 0 && e.PlayerID != player {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		events = append(events, e)
	}
	if len(events) > limit {
		events = events[len(events)-limit:]
	}
	writeJSON(w, events)
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		slog.Warn("write response", "error", err)
	}
}
