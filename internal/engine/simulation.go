// Simulation ties the board, dice, and seated agents together and runs the
// setup draft and the round loop.
package engine

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/agents"
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/board"
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/dice"
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/economy"
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/entropy"
)

const (
	// MaxRoundsLimit is the largest round cap a game may be given.
	MaxRoundsLimit = 8192

	// DefaultVictoryPoints ends the game when a player reaches it.
	DefaultVictoryPoints = 10

	// maxEvents bounds the in-memory event log.
	maxEvents = 1000
)

// Event categories.
const (
	CategorySetup      = "setup"
	CategoryRoll       = "roll"
	CategoryRobber     = "robber"
	CategoryProduction = "production"
	CategoryBuild      = "build"
	CategorySummary    = "summary"
)

// Event is one logged action.
type Event struct {
	Round       int    `json:"round"       db:"round"`
	PlayerID    int    `json:"player_id"   db:"player_id"` // 0 for game-level events
	Category    string `json:"category"    db:"category"`
	Description string `json:"description" db:"description"`
}

// SimConfig controls one game.
type SimConfig struct {
	Seed          int64         // 0 draws a fresh seed
	MaxRounds     int           // 1..MaxRoundsLimit
	VictoryPoints int           // 0 means DefaultVictoryPoints
	RoundDelay    time.Duration // Pause between rounds in Run; 0 = none
}

// Simulation holds the complete game state.
type Simulation struct {
	Board      *board.Board
	Players    []agents.TurnTaker
	Controller *Controller
	Dice       dice.Dice
	Events     []Event // Recent events, trimmed to the last maxEvents
	Round      int     // Rounds completed
	Winner     agents.TurnTaker

	// OnRound, if set, is called after every round Run completes.
	OnRound func(round int)

	cfg         SimConfig
	seed        int64
	distributor *Distributor
	setupDone   bool
	unsaved     []Event

	mu   sync.RWMutex
	snap Snapshot
}

// NewSimulation creates a game for the given players. A nil d gets standard
// dice seeded from the game seed.
func NewSimulation(cfg SimConfig, players []agents.TurnTaker, d dice.Dice) (*Simulation, error) {
	if cfg.MaxRounds < 1 || cfg.MaxRounds > MaxRoundsLimit {
		return nil, fmt.Errorf("max rounds %d out of range [1, %d]", cfg.MaxRounds, MaxRoundsLimit)
	}
	if len(players) == 0 {
		return nil, errors.New("no players seated")
	}
	seen := make(map[int]bool, len(players))
	ledgers := make([]Ledger, 0, len(players))
	for _, p := range players {
		if seen[p.ID()] {
			return nil, fmt.Errorf("duplicate player id %d", p.ID())
		}
		seen[p.ID()] = true
		ledgers = append(ledgers, p.Ledger())
	}
	if cfg.VictoryPoints <= 0 {
		cfg.VictoryPoints = DefaultVictoryPoints
	}

	seed := entropy.Resolve(cfg.Seed)
	b := board.New(board.NewTopology(), seed)
	if d == nil {
		d = dice.NewStandard(seed)
	}

	s := &Simulation{
		Board:       b,
		Players:     players,
		Controller:  NewController(b, ledgers),
		Dice:        d,
		cfg:         cfg,
		seed:        seed,
		distributor: NewDistributor(b),
	}
	s.Controller.OnBuild = s.recordBuild
	s.publish()
	return s, nil
}

// Seed returns the seed actually in use.
func (s *Simulation) Seed() int64 { return s.seed }

// Config returns the game settings, with defaults applied.
func (s *Simulation) Config() SimConfig { return s.cfg }

// Finished reports whether the game is over.
func (s *Simulation) Finished() bool {
	return s.Winner != nil || s.Round >= s.cfg.MaxRounds
}

// Setup runs the snake draft: seats 1..n then n..1, each placing a free
// settlement and a free road beside it. The second settlement pays one
// card from each producing tile around it. Calling Setup again is a no-op.
func (s *Simulation) Setup() {
	if s.setupDone {
		return
	}
	s.setupDone = true
	s.record(0, CategorySetup, "Setup phase - snake draft order")

	for _, t := range s.Players {
		s.placeInitial(t, 0)
	}
	for i := len(s.Players) - 1; i >= 0; i-- {
		s.placeInitial(s.Players[i], 1)
	}
	s.publish()
}

func (s *Simulation) placeInitial(t agents.TurnTaker, pass int) {
	id := t.ID()
	candidates := s.Controller.ValidSettlementLocations(id, true)
	if len(candidates) == 0 {
		slog.Warn("no setup location available", "player", id, "pass", pass+1)
		return
	}

	node := s.chooseSetupNode(t, candidates, pass)
	if !s.Controller.BuildSettlement(id, node, true) {
		return
	}

	topo := s.Board.Topology()
	for _, edge := range topo.AdjacentEdges(node) {
		if s.Controller.BuildRoad(id, edge, true) {
			break
		}
	}

	if pass == 1 {
		for _, p := range s.distributor.StartingResources(t.Ledger(), node) {
			s.record(id, CategorySetup, fmt.Sprintf("Received %d %s from tile %d", p.Amount, p.Resource, p.Tile))
		}
	}
}

// chooseSetupNode defers to the agent when it has a setup strategy, else
// picks with a generator seeded per player and pass.
func (s *Simulation) chooseSetupNode(t agents.TurnTaker, candidates []int, pass int) int {
	if chooser, ok := t.(agents.SetupChooser); ok {
		if node := chooser.ChooseSetupNode(s.Controller, candidates); slices.Contains(candidates, node) {
			return node
		}
	}
	mult := int64(31)
	if pass == 1 {
		mult = 71
	}
	rng := rand.New(rand.NewSource(s.seed + int64(t.ID())*mult))
	return candidates[rng.Intn(len(candidates))]
}

// PlayRound gives every seat one turn: roll, produce, then build. The round
// stops early once a player reaches the victory threshold. Returns true when
// the game has a winner.
func (s *Simulation) PlayRound() bool {
	if !s.setupDone {
		s.Setup()
	}
	if s.Winner != nil {
		return true
	}
	s.Round++

	ledgers := s.ledgers()
	for _, t := range s.Players {
		roll := s.Dice.Roll()
		s.record(t.ID(), CategoryRoll, fmt.Sprintf("Rolled %d", roll))

		if roll == RobberRoll {
			s.record(t.ID(), CategoryRobber, "Robber activated, no resources produced")
		} else {
			for _, p := range s.distributor.Distribute(roll, ledgers) {
				s.record(p.Player, CategoryProduction,
					fmt.Sprintf("Received %d %s from tile %d", p.Amount, p.Resource, p.Tile))
			}
		}

		t.TakeTurn(s.Controller)

		if t.Ledger().VictoryPoints() >= s.cfg.VictoryPoints {
			s.Winner = t
			s.record(t.ID(), CategorySummary,
				fmt.Sprintf("Wins with %d victory points", t.Ledger().VictoryPoints()))
			break
		}
	}

	s.summarizeRound()
	s.publish()
	return s.Winner != nil
}

func (s *Simulation) summarizeRound() {
	for _, t := range s.Players {
		p := t.Ledger()
		s.record(p.ID(), CategorySummary, fmt.Sprintf("%d victory points, hand %s", p.VictoryPoints(), p.Resources()))
	}
}

func (s *Simulation) ledgers() []Ledger {
	out := make([]Ledger, 0, len(s.Players))
	for _, t := range s.Players {
		out = append(out, t.Ledger())
	}
	return out
}

func (s *Simulation) recordBuild(player int, st economy.Structure, target int) {
	where := "node"
	if st == economy.StructureRoad {
		where = "edge"
	}
	s.record(player, CategoryBuild, fmt.Sprintf("Built %s at %s %d", st, where, target))
}

// record appends an event and emits it as a log line.
func (s *Simulation) record(player int, category, desc string) {
	e := Event{Round: s.Round, PlayerID: player, Category: category, Description: desc}
	s.Events = append(s.Events, e)
	if len(s.Events) > maxEvents {
		s.Events = s.Events[len(s.Events)-maxEvents:]
	}
	s.unsaved = append(s.unsaved, e)

	switch category {
	case CategoryRoll, CategoryProduction, CategorySummary:
		slog.Debug("action", "round", s.Round, "player", player, "action", desc)
	default:
		slog.Info("action", "round", s.Round, "player", player, "action", desc)
	}
}

// DrainEvents returns every event recorded since the last drain, unbounded
// by the in-memory trim.
func (s *Simulation) DrainEvents() []Event {
	out := s.unsaved
	s.unsaved = nil
	return out
}

// Standing is one player's final position.
type Standing struct {
	Rank          int `json:"rank"           db:"rank"`
	PlayerID      int `json:"player_id"      db:"player_id"`
	VictoryPoints int `json:"victory_points" db:"victory_points"`
	Resources     int `json:"resources"      db:"resources"`
	Settlements   int `json:"settlements"    db:"settlements"`
	Cities        int `json:"cities"         db:"cities"`
	Roads         int `json:"roads"          db:"roads"`
}

// Result summarises a game.
type Result struct {
	Seed      int64      `json:"seed"`
	Rounds    int        `json:"rounds"`
	WinnerID  int        `json:"winner_id"` // 0 when nobody won
	Standings []Standing `json:"standings"`
}

// Result reports rounds played, the winner, and standings ordered by
// victory points, highest first, then by player id.
func (s *Simulation) Result() Result {
	r := Result{Seed: s.seed, Rounds: s.Round, Standings: s.standings()}
	if s.Winner != nil {
		r.WinnerID = s.Winner.ID()
	}
	return r
}

func (s *Simulation) standings() []Standing {
	out := make([]Standing, 0, len(s.Players))
	for _, t := range s.Players {
		p := t.Ledger()
		st := Standing{
			PlayerID:      p.ID(),
			VictoryPoints: p.VictoryPoints(),
			Resources:     p.TotalResources(),
			Roads:         len(s.Board.RoadsOf(p.ID())),
		}
		for _, node := range s.Board.BuildingsOf(p.ID()) {
			n, _ := s.Board.Node(node)
			if n.Building == board.BuildingCity {
				st.Cities++
			} else {
				st.Settlements++
			}
		}
		out = append(out, st)
	}
	slices.SortFunc(out, func(a, b Standing) int {
		if c := cmp.Compare(b.VictoryPoints, a.VictoryPoints); c != 0 {
			return c
		}
		return cmp.Compare(a.PlayerID, b.PlayerID)
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
