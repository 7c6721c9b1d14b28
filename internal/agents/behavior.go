// Random agent behavior: enumerate every legal, affordable build and pick
// one uniformly until nothing is left to do.
package agents

import (
	"math/rand"

	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/economy"
)

// LegalActions lists every build the player can both afford and legally
// place, settlements first, then cities, then roads, each in ascending
// target order. The order is fixed so a seeded choice is reproducible.
func LegalActions(p *Player, c Controller) []Action {
	var actions []Action

	if p.HasResources(economy.SettlementCost) {
		for _, node := range c.ValidSettlementLocations(p.ID(), false) {
			actions = append(actions, Action{Kind: ActionBuildSettlement, Target: node})
		}
	}
	if p.HasResources(economy.CityCost) {
		for _, node := range c.ValidCityLocations(p.ID()) {
			actions = append(actions, Action{Kind: ActionBuildCity, Target: node})
		}
	}
	if p.HasResources(economy.RoadCost) {
		for _, edge := range c.ValidRoadLocations(p.ID()) {
			actions = append(actions, Action{Kind: ActionBuildRoad, Target: edge})
		}
	}
	return actions
}

// Execute sends one action to the controller. Returns the build result.
func Execute(c Controller, player int, a Action) bool {
	switch a.Kind {
	case ActionBuildSettlement:
		return c.BuildSettlement(player, a.Target, false)
	case ActionBuildCity:
		return c.BuildCity(player, a.Target)
	case ActionBuildRoad:
		return c.BuildRoad(player, a.Target, false)
	}
	return false
}

// RandomAgent picks uniformly among legal, affordable actions.
type RandomAgent struct {
	*Player
	rng *rand.Rand
}

// NewRandomAgent creates a random agent whose choices are seeded.
func NewRandomAgent(id int, seed int64) *RandomAgent {
	return &RandomAgent{
		Player: NewPlayer(id),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// TakeTurn builds until no legal, affordable action remains.
// Every success spends resources, so the loop always ends.
func (a *RandomAgent) TakeTurn(c Controller) {
	for {
		actions := LegalActions(a.Player, c)
		if len(actions) == 0 {
			return
		}
		chosen := actions[a.rng.Intn(len(actions))]
		if !Execute(c, a.ID(), chosen) {
			// Listed actions are pre-validated; a refusal means the board
			// changed under us, so end the turn rather than spin.
			return
		}
	}
}
