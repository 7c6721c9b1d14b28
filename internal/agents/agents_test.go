package agents_test

import (
	"slices"
	"testing"

	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/agents"
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/board"
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/economy"
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/engine"
)

func newController(players ...*agents.Player) *engine.Controller {
	ledgers := make([]engine.Ledger, 0, len(players))
	for _, p := range players {
		ledgers = append(ledgers, p)
	}
	return engine.NewController(board.New(board.NewTopology(), 42), ledgers)
}

func give(p *agents.Player, cost economy.ResourceSet) {
	for _, r := range economy.AllResources {
		p.AddResource(r, cost[r])
	}
}

func TestPlayerLedger(t *testing.T) {
	p := agents.NewPlayer(3)
	p.AddResource(economy.Ore, 2)
	p.AddResource(economy.Ore, 0)
	p.AddResource(economy.Grain, -4)
	p.AddResource(economy.Resource(99), 1)

	if p.ResourceCount(economy.Ore) != 2 || p.TotalResources() != 2 {
		t.Fatalf("hand = %s, want Ore=2", p.Resources())
	}
	if p.RemoveResource(economy.Ore, 3) {
		t.Error("removed more ore than held")
	}
	if !p.RemoveResource(economy.Ore, 1) || p.ResourceCount(economy.Ore) != 1 {
		t.Errorf("hand after removal = %s", p.Resources())
	}
	if p.String() != "Player 3" {
		t.Errorf("String() = %q", p.String())
	}
}

func TestDeductAllOrNothing(t *testing.T) {
	p := agents.NewPlayer(1)
	give(p, economy.RoadCost)

	if p.Deduct(economy.SettlementCost) {
		t.Fatal("deducted a settlement from a road's worth of cards")
	}
	if p.Resources() != economy.RoadCost {
		t.Errorf("failed deduct changed the hand: %s", p.Resources())
	}
	if !p.Deduct(economy.RoadCost) || !p.Resources().IsEmpty() {
		t.Errorf("hand after deduct = %s", p.Resources())
	}
}

func TestLegalActionsOrder(t *testing.T) {
	p := agents.NewPlayer(1)
	c := newController(p)
	c.BuildSettlement(1, 13, true)

	if got := agents.LegalActions(p, c); len(got) != 0 {
		t.Fatalf("actions with an empty hand: %v", got)
	}

	give(p, economy.RoadCost)
	give(p, economy.CityCost)
	got := agents.LegalActions(p, c)
	if len(got) == 0 || got[0] != (agents.Action{Kind: agents.ActionBuildCity, Target: 13}) {
		t.Fatalf("actions = %v, want the city first", got)
	}

	var roads []int
	for _, a := range got[1:] {
		if a.Kind != agents.ActionBuildRoad {
			t.Fatalf("unexpected action %s", a)
		}
		roads = append(roads, a.Target)
	}
	if !slices.IsSorted(roads) || !slices.Equal(roads, c.ValidRoadLocations(1)) {
		t.Errorf("road targets = %v, want %v", roads, c.ValidRoadLocations(1))
	}
}

func TestRandomAgentSpendsUntilStuck(t *testing.T) {
	a := agents.NewRandomAgent(1, 5)
	c := newController(a.Player)
	c.BuildSettlement(1, 13, true)
	give(a.Player, economy.RoadCost)
	give(a.Player, economy.RoadCost)

	a.TakeTurn(c)

	if got := len(c.Board().RoadsOf(1)); got != 2 {
		t.Errorf("built %d roads, want 2", got)
	}
	if !a.Resources().IsEmpty() {
		t.Errorf("hand after turn = %s", a.Resources())
	}
}

func TestRandomAgentDeterministic(t *testing.T) {
	roads := func() []int {
		a := agents.NewRandomAgent(1, 77)
		c := newController(a.Player)
		c.BuildSettlement(1, 13, true)
		for i := 0; i < 3; i++ {
			give(a.Player, economy.RoadCost)
		}
		a.TakeTurn(c)
		return c.Board().RoadsOf(1)
	}
	if r1, r2 := roads(), roads(); !slices.Equal(r1, r2) {
		t.Errorf("same seed built %v then %v", r1, r2)
	}
}

func TestPlannerPrefersCity(t *testing.T) {
	a := agents.NewPlannerAgent(1, 9)
	c := newController(a.Player)
	c.BuildSettlement(1, 13, true)
	give(a.Player, economy.CityCost)
	give(a.Player, economy.RoadCost)

	a.TakeTurn(c)

	if n, _ := c.Board().Node(13); n.Building != board.BuildingCity {
		t.Errorf("node 13 holds %s, want city", n.Building)
	}
	// Nowhere to settle yet, so the road is worth building.
	if got := len(c.Board().RoadsOf(1)); got != 1 {
		t.Errorf("built %d roads, want 1", got)
	}
	if a.VictoryPoints() != 2 {
		t.Errorf("victory points = %d, want 2", a.VictoryPoints())
	}
}

func TestPlannerExtendsOnlyWhenStuck(t *testing.T) {
	a := agents.NewPlannerAgent(1, 9)
	c := newController(a.Player)
	c.BuildSettlement(1, 13, true)
	give(a.Player, economy.RoadCost)
	give(a.Player, economy.RoadCost)

	// Nothing is reachable from a lone settlement, so both roads go down.
	a.TakeTurn(c)
	if got := len(c.Board().RoadsOf(1)); got != 2 {
		t.Errorf("built %d roads, want 2", got)
	}
}

func TestPlannerSavesWhenSettlementReachable(t *testing.T) {
	a := agents.NewPlannerAgent(1, 9)
	c := newController(a.Player)
	c.BuildSettlement(1, 13, true)

	topo := c.Topology()
	first, _ := topo.EdgeBetween(13, 18)
	c.BuildRoad(1, first, true)
	for _, n := range topo.AdjacentNodes(18) {
		if n == 13 {
			continue
		}
		e, _ := topo.EdgeBetween(18, n)
		c.BuildRoad(1, e, true)
		break
	}
	if len(c.ValidSettlementLocations(1, false)) == 0 {
		t.Fatal("expected a reachable settlement spot")
	}

	give(a.Player, economy.RoadCost)
	a.TakeTurn(c)
	if got := len(c.Board().RoadsOf(1)); got != 2 {
		t.Errorf("roads = %d, want the planner to save its cards", got)
	}
	if a.Resources() != economy.RoadCost {
		t.Errorf("hand = %s, want it untouched", a.Resources())
	}
}

func TestPlannerSetupChoice(t *testing.T) {
	a := agents.NewPlannerAgent(2, 4)
	b := agents.NewPlannerAgent(2, 4)
	c := newController(a.Player)

	candidates := c.ValidSettlementLocations(2, true)
	got := a.ChooseSetupNode(c, candidates)
	if !slices.Contains(candidates, got) {
		t.Fatalf("chose %d, not a candidate", got)
	}
	if again := b.ChooseSetupNode(c, candidates); again != got {
		t.Errorf("same seed chose %d then %d", got, again)
	}
	if none := a.ChooseSetupNode(c, nil); none != -1 {
		t.Errorf("no candidates gave %d, want -1", none)
	}

	// Preference noise only breaks ties between equally productive nodes.
	pips := func(node int) int {
		total := 0
		for _, id := range c.Topology().TilesOfNode(node) {
			tile, _ := c.Tile(id)
			total += board.Pips(tile.Token)
		}
		return total
	}
	best := 0
	for _, n := range candidates {
		best = max(best, pips(n))
	}
	if pips(got) != best {
		t.Errorf("chose node %d worth %d pips, best is %d", got, pips(got), best)
	}
}

func TestSpawner(t *testing.T) {
	s := agents.NewSpawner(100)
	players, err := s.SpawnPopulation(3, agents.KindRandom)
	if err != nil {
		t.Fatal(err)
	}
	planner, err := s.Spawn(agents.KindPlanner)
	if err != nil {
		t.Fatal(err)
	}
	players = append(players, planner)

	for i, p := range players {
		if p.ID() != i+1 {
			t.Errorf("player %d has id %d", i, p.ID())
		}
	}
	if _, ok := planner.(*agents.PlannerAgent); !ok {
		t.Errorf("planner kind spawned %T", planner)
	}
	if _, err := s.Spawn("greedy"); err == nil {
		t.Error("unknown kind accepted")
	}
	if p, _ := s.Spawn(agents.KindRandom); p.ID() != 5 {
		t.Errorf("failed spawn consumed an id: next id %d", p.ID())
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []string{"random", "planner"} {
		if got, err := agents.ParseKind(k); err != nil || string(got) != k {
			t.Errorf("ParseKind(%q) = %q, %v", k, got, err)
		}
	}
	if _, err := agents.ParseKind("Random"); err == nil {
		t.Error("ParseKind is case sensitive")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    agents.Action
		want string
	}{
		{agents.Action{Kind: agents.ActionBuildSettlement, Target: 4}, "settlement@4"},
		{agents.Action{Kind: agents.ActionBuildCity, Target: 13}, "city@13"},
		{agents.Action{Kind: agents.ActionBuildRoad, Target: 0}, "road@0"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
