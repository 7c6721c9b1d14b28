package agents

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/board"
)

// preferenceWeight scales the per-agent noise added to a node's pip value.
// Pips range 0..15 per node, so noise only breaks near-ties.
const preferenceWeight = 0.75

// PlannerAgent is a greedy strategy: upgrade the best city, else settle the
// best node, else extend roads when there is nowhere left to settle.
// Node value is the dice pips of its tiles plus a small personal preference
// drawn from seeded simplex noise, so two planners with different seeds
// diverge without either being random.
type PlannerAgent struct {
	*Player
	noise opensimplex.Noise
}

// NewPlannerAgent creates a planner whose preference field is seeded.
func NewPlannerAgent(id int, seed int64) *PlannerAgent {
	return &PlannerAgent{
		Player: NewPlayer(id),
		noise:  opensimplex.NewNormalized(seed),
	}
}

// TakeTurn builds greedily until nothing worthwhile is affordable.
func (a *PlannerAgent) TakeTurn(c Controller) {
	for {
		action, ok := a.next(c)
		if !ok {
			return
		}
		if !Execute(c, a.ID(), action) {
			return
		}
	}
}

// ChooseSetupNode picks the highest-valued candidate node.
func (a *PlannerAgent) ChooseSetupNode(c Controller, candidates []int) int {
	best, bestScore := -1, -1.0
	for _, node := range candidates {
		if s := a.nodeValue(c, node); s > bestScore {
			best, bestScore = node, s
		}
	}
	return best
}

func (a *PlannerAgent) next(c Controller) (Action, bool) {
	actions := LegalActions(a.Player, c)
	if len(actions) == 0 {
		return Action{}, false
	}

	var cities, settlements, roads []Action
	for _, act := range actions {
		switch act.Kind {
		case ActionBuildCity:
			cities = append(cities, act)
		case ActionBuildSettlement:
			settlements = append(settlements, act)
		case ActionBuildRoad:
			roads = append(roads, act)
		}
	}

	if len(cities) > 0 {
		return a.best(c, cities), true
	}
	if len(settlements) > 0 {
		return a.best(c, settlements), true
	}
	// Save lumber and brick while a settlement spot is already reachable.
	if len(roads) > 0 && len(c.ValidSettlementLocations(a.ID(), false)) == 0 {
		return a.best(c, roads), true
	}
	return Action{}, false
}

// best returns the highest-scoring action; ties go to the lower target id.
func (a *PlannerAgent) best(c Controller, actions []Action) Action {
	chosen, top := actions[0], a.score(c, actions[0])
	for _, act := range actions[1:] {
		if s := a.score(c, act); s > top {
			chosen, top = act, s
		}
	}
	return chosen
}

func (a *PlannerAgent) score(c Controller, act Action) float64 {
	if act.Kind != ActionBuildRoad {
		return a.nodeValue(c, act.Target)
	}
	// A road is worth the better of the two nodes it reaches.
	v := 0.0
	for _, node := range c.Topology().EdgeEndpoints(act.Target) {
		if nv := a.nodeValue(c, node); nv > v {
			v = nv
		}
	}
	return v
}

// nodeValue is the expected production of a node plus personal preference.
func (a *PlannerAgent) nodeValue(c Controller, node int) float64 {
	pips := 0
	for _, id := range c.Topology().TilesOfNode(node) {
		if tile, ok := c.Tile(id); ok {
			pips += board.Pips(tile.Token)
		}
	}
	pref := a.noise.Eval2(float64(node)*0.37, float64(a.ID())*1.61)
	return float64(pips) + pref*preferenceWeight
}
