package engine

import (
	"slices"

	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/board"
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/economy"
)

// snapshotEvents is how many recent events a snapshot carries.
const snapshotEvents = 100

// TileView is a tile as served to observers.
type TileView struct {
	ID      int    `json:"id"`
	Terrain string `json:"terrain"`
	Token   int    `json:"token"` // 0 for the desert
}

// BuildingView is an occupied node.
type BuildingView struct {
	Node     int    `json:"node"`
	Owner    int    `json:"owner"`
	Building string `json:"building"`
}

// RoadView is a built road.
type RoadView struct {
	Edge  int    `json:"edge"`
	Owner int    `json:"owner"`
	Nodes [2]int `json:"nodes"`
}

// PlayerView is one player's public state.
type PlayerView struct {
	ID            int            `json:"id"`
	VictoryPoints int            `json:"victory_points"`
	Resources     map[string]int `json:"resources"`
	TotalCards    int            `json:"total_cards"`
}

// Snapshot is an immutable copy of the game state, published after setup
// and after every round for readers on other goroutines.
type Snapshot struct {
	Seed      int64          `json:"seed"`
	Round     int            `json:"round"`
	MaxRounds int            `json:"max_rounds"`
	WinnerID  int            `json:"winner_id"`
	Finished  bool           `json:"finished"`
	Tiles     []TileView     `json:"tiles"`
	Buildings []BuildingView `json:"buildings"`
	Roads     []RoadView     `json:"roads"`
	Players   []PlayerView   `json:"players"`
	Standings []Standing     `json:"standings"`
	Events    []Event        `json:"events"`
}

// Snapshot returns the most recently published state. Safe for concurrent use.
func (s *Simulation) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// publish rebuilds the snapshot from live state. Only the simulation
// goroutine calls it.
func (s *Simulation) publish() {
	snap := Snapshot{
		Seed:      s.seed,
		Round:     s.Round,
		MaxRounds: s.cfg.MaxRounds,
		Finished:  s.Finished(),
		Standings: s.standings(),
	}
	if s.Winner != nil {
		snap.WinnerID = s.Winner.ID()
	}

	for _, t := range s.Board.Tiles() {
		snap.Tiles = append(snap.Tiles, TileView{ID: t.ID, Terrain: board.TerrainName(t.Terrain), Token: t.Token})
	}
	for _, n := range s.Board.Nodes() {
		if n.Occupied() {
			snap.Buildings = append(snap.Buildings, BuildingView{Node: n.ID, Owner: n.Owner, Building: n.Building.String()})
		}
	}
	topo := s.Board.Topology()
	for _, e := range s.Board.Edges() {
		if !e.Road {
			continue
		}
		ends := topo.EdgeEndpoints(e.ID)
		snap.Roads = append(snap.Roads, RoadView{Edge: e.ID, Owner: e.Owner, Nodes: [2]int{ends[0], ends[1]}})
	}
	for _, t := range s.Players {
		p := t.Ledger()
		hand := p.Resources()
		res := make(map[string]int, economy.NumResources)
		for _, r := range economy.AllResources {
			res[r.String()] = hand[r]
		}
		snap.Players = append(snap.Players, PlayerView{
			ID:            p.ID(),
			VictoryPoints: p.VictoryPoints(),
			Resources:     res,
			TotalCards:    p.TotalResources(),
		})
	}

	start := max(0, len(s.Events)-snapshotEvents)
	snap.Events = slices.Clone(s.Events[start:])

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}
