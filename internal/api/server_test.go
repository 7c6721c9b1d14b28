package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/agents"
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/engine"
)

type staticSource struct{ snap engine.Snapshot }

func (s staticSource) Snapshot() engine.Snapshot { return s.snap }

func newGameServer(t *testing.T) (*Server, *engine.Simulation) {
	t.Helper()
	players, err := agents.NewSpawner(42).SpawnPopulation(4, agents.KindRandom)
	if err != nil {
		t.Fatal(err)
	}
	sim, err := engine.NewSimulation(engine.SimConfig{Seed: 42, MaxRounds: 5}, players, nil)
	if err != nil {
		t.Fatal(err)
	}
	sim.Run(context.Background())
	return &Server{Source: sim, GameID: "test-game"}, sim
}

func get(t *testing.T, h http.Handler, target string, out any) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if out != nil && rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode %s: %v", target, err)
		}
	}
	return rec
}

func TestStatus(t *testing.T) {
	srv, sim := newGameServer(t)
	var status struct {
		GameID    string `json:"game_id"`
		Seed      int64  `json:"seed"`
		Round     int    `json:"round"`
		MaxRounds int    `json:"max_rounds"`
		Finished  bool   `json:"finished"`
		Players   int    `json:"players"`
	}
	rec := get(t, srv.Handler(), "/api/v1/status", &status)
	if rec.Code != http.StatusOK {
		t.Fatalf("status code = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	if status.GameID != "test-game" || status.Seed != 42 || status.Players != 4 {
		t.Errorf("status = %+v", status)
	}
	if status.Round != sim.Round || !status.Finished || status.MaxRounds != 5 {
		t.Errorf("status = %+v, simulation at round %d", status, sim.Round)
	}
}

func TestBoard(t *testing.T) {
	srv, sim := newGameServer(t)
	var body struct {
		Tiles     []engine.TileView     `json:"tiles"`
		Buildings []engine.BuildingView `json:"buildings"`
		Roads     []engine.RoadView     `json:"roads"`
	}
	get(t, srv.Handler(), "/api/v1/board", &body)

	if len(body.Tiles) != 19 {
		t.Errorf("tiles = %d, want 19", len(body.Tiles))
	}
	if len(body.Buildings) < 8 || len(body.Roads) < 8 {
		t.Errorf("board after setup has %d buildings and %d roads", len(body.Buildings), len(body.Roads))
	}
	if got := len(sim.Board.RoadsOf(1)) + len(sim.Board.RoadsOf(2)) + len(sim.Board.RoadsOf(3)) + len(sim.Board.RoadsOf(4)); got != len(body.Roads) {
		t.Errorf("served %d roads, board has %d", len(body.Roads), got)
	}
}

func TestPlayers(t *testing.T) {
	srv, _ := newGameServer(t)
	var body struct {
		Players   []engine.PlayerView `json:"players"`
		Standings []engine.Standing   `json:"standings"`
	}
	get(t, srv.Handler(), "/api/v1/players", &body)

	if len(body.Players) != 4 || len(body.Standings) != 4 {
		t.Fatalf("players = %d, standings = %d", len(body.Players), len(body.Standings))
	}
	for i, st := range body.Standings {
		if st.Rank != i+1 {
			t.Errorf("standing %d has rank %d", i, st.Rank)
		}
	}
}

func TestEventsFilters(t *testing.T) {
	src := staticSource{snap: engine.Snapshot{Events: []engine.Event{
		{Round: 1, PlayerID: 1, Category: "roll", Description: "Rolled 6"},
		{Round: 1, PlayerID: 2, Category: "roll", Description: "Rolled 7"},
		{Round: 1, PlayerID: 2, Category: "robber", Description: "Robber activated"},
		{Round: 2, PlayerID: 1, Category: "build", Description: "Built road at edge 3"},
	}}}
	h := (&Server{Source: src}).Handler()

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Rolled 6", "Rolled 7", "Robber activated", "Built road at edge 3"}},
		{"?limit=2", []string{"Robber activated", "Built road at edge 3"}},
		{"?limit=0", []string{"Rolled 6", "Rolled 7", "Robber activated", "Built road at edge 3"}},
		{"?player=2", []string{"Rolled 7", "Robber activated"}},
		{"?category=roll", []string{"Rolled 6", "Rolled 7"}},
		{"?player=1&category=build", []string{"Built road at edge 3"}},
		{"?player=3", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var events []engine.Event
			rec := get(t, h, "/api/v1/events"+tt.query, &events)
			if rec.Code != http.StatusOK {
				t.Fatalf("code = %d", rec.Code)
			}
			if len(events) != len(tt.want) {
				t.Fatalf("got %d events, want %d", len(events), len(tt.want))
			}
			for i, e := range events {
				if e.Description != tt.want[i] {
					t.Errorf("event %d = %q, want %q", i, e.Description, tt.want[i])
				}
			}
		})
	}

	if rec := get(t, h, "/api/v1/events?player=x", nil); rec.Code != http.StatusBadRequest {
		t.Errorf("bad player id gave %d", rec.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h := (&Server{Source: staticSource{}}).Handler()
	for _, path := range []string{"/api/v1/status", "/api/v1/board", "/api/v1/players", "/api/v1/events"} {
		for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
			if rec.Code != http.StatusMethodNotAllowed {
				t.Errorf("%s %s = %d, want 405", method, path, rec.Code)
			}
			if rec.Header().Get("Allow") == "" {
				t.Errorf("%s %s: missing Allow header", method, path)
			}
		}
	}
}

func TestServerRateLimit(t *testing.T) {
	h := (&Server{Source: staticSource{}, RateLimit: 2}).Handler()
	for i, want := range []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests} {
		rec := get(t, h, "/api/v1/status", nil)
		if rec.Code != want {
			t.Errorf("request %d = %d, want %d", i+1, rec.Code, want)
		}
	}
}
