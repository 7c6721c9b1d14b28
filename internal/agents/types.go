// Package agents provides the player ledger and the automated turn-taking
// strategies that drive the game through a Controller.
package agents

import (
	"fmt"

	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/board"
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/economy"
)

// Player is a participant's ledger: resource hand and victory points.
// The engine only ever touches a player through these methods.
type Player struct {
	id            int
	resources     economy.ResourceSet
	victoryPoints int
}

// NewPlayer creates a player with an empty hand.
func NewPlayer(id int) *Player {
	return &Player{id: id}
}

// ID returns the player's identity.
func (p *Player) ID() int { return p.id }

// Ledger returns the player itself, so strategies embedding *Player
// satisfy TurnTaker.
func (p *Player) Ledger() *Player { return p }

// VictoryPoints returns the current victory point total.
func (p *Player) VictoryPoints() int { return p.victoryPoints }

// AddVictoryPoints adds n points.
func (p *Player) AddVictoryPoints(n int) {
	p.victoryPoints += n
}

// Resources returns a copy of the hand.
func (p *Player) Resources() economy.ResourceSet { return p.resources }

// ResourceCount returns how many of r the player holds.
func (p *Player) ResourceCount(r economy.Resource) int {
	if !r.Valid() {
		return 0
	}
	return p.resources[r]
}

// TotalResources returns the number of resource cards held.
func (p *Player) TotalResources() int { return p.resources.Total() }

// AddResource credits amount of r. Non-positive amounts are ignored.
func (p *Player) AddResource(r economy.Resource, amount int) {
	if !r.Valid() || amount <= 0 {
		return
	}
	p.resources[r] += amount
}

// RemoveResource debits amount of r. Returns false, leaving the hand
// unchanged, if the player holds fewer than amount.
func (p *Player) RemoveResource(r economy.Resource, amount int) bool {
	if !r.Valid() || amount < 0 || p.resources[r] < amount {
		return false
	}
	p.resources[r] -= amount
	return true
}

// HasResources reports whether the hand covers cost.
func (p *Player) HasResources(cost economy.ResourceSet) bool {
	return p.resources.Covers(cost)
}

// Deduct removes cost from the hand all-or-nothing.
func (p *Player) Deduct(cost economy.ResourceSet) bool {
	if !p.HasResources(cost) {
		return false
	}
	for _, r := range economy.AllResources {
		p.resources[r] -= cost[r]
	}
	return true
}

func (p *Player) String() string {
	return fmt.Sprintf("Player %d", p.id)
}

// Controller is the game surface a strategy may use: legal-target queries
// and build requests, all keyed by player id.
type Controller interface {
	ValidSettlementLocations(player int, setup bool) []int
	ValidRoadLocations(player int) []int
	ValidCityLocations(player int) []int
	BuildSettlement(player, node int, setup bool) bool
	BuildRoad(player, edge int, setup bool) bool
	BuildCity(player, node int) bool

	Topology() *board.Topology
	Tile(id int) (board.Tile, bool)
}

// TurnTaker is a player with a turn-taking strategy.
type TurnTaker interface {
	ID() int
	Ledger() *Player
	TakeTurn(c Controller)
}

// SetupChooser is implemented by strategies that pick their own
// setup-phase settlement. Others get a seeded random pick.
type SetupChooser interface {
	ChooseSetupNode(c Controller, candidates []int) int
}

// ActionKind enumerates the build actions a strategy can take.
type ActionKind uint8

const (
	ActionBuildSettlement ActionKind = iota
	ActionBuildCity
	ActionBuildRoad
)

// Action is one build request: what to build and where.
type Action struct {
	Kind   ActionKind
	Target int // Node id for settlements and cities, edge id for roads
}

func (a Action) String() string {
	switch a.Kind {
	case ActionBuildSettlement:
		return fmt.Sprintf("settlement@%d", a.Target)
	case ActionBuildCity:
		return fmt.Sprintf("city@%d", a.Target)
	case ActionBuildRoad:
		return fmt.Sprintf("road@%d", a.Target)
	}
	return "unknown"
}
