package engine

import (
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/board"
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/economy"
)

// BuildingService performs builds atomically: the location is validated and
// the cost checked before anything changes, so a refused build leaves both
// board and ledger untouched.
type BuildingService struct {
	board       *board.Board
	settlements *SettlementValidator
	roads       *RoadValidator
}

// NewBuildingService creates a service over b using the given validators.
func NewBuildingService(b *board.Board, sv *SettlementValidator, rv *RoadValidator) *BuildingService {
	return &BuildingService{board: b, settlements: sv, roads: rv}
}

// BuildSettlement places a settlement for p on node. Setup placements are
// free and skip the road connection check. A settlement is worth 1 VP.
func (s *BuildingService) BuildSettlement(p Ledger, node int, setup bool) bool {
	if !s.settlements.IsValid(p.ID(), node, setup) {
		return false
	}
	if !setup && !pay(p, economy.SettlementCost) {
		return false
	}
	s.board.PlaceSettlement(node, p.ID())
	p.AddVictoryPoints(1)
	return true
}

// BuildRoad places a road for p on edge. Setup placements are free and
// only need an empty edge.
func (s *BuildingService) BuildRoad(p Ledger, edge int, setup bool) bool {
	if setup {
		if e, ok := s.board.Edge(edge); !ok || e.Road {
			return false
		}
	} else if !s.roads.IsValid(p.ID(), edge) || !pay(p, economy.RoadCost) {
		return false
	}
	s.board.PlaceRoad(edge, p.ID())
	return true
}

// BuildCity upgrades p's settlement on node. The upgrade adds 1 VP, for a
// total of 2 on the node.
func (s *BuildingService) BuildCity(p Ledger, node int) bool {
	if !s.settlements.CanUpgrade(p.ID(), node) {
		return false
	}
	if !pay(p, economy.CityCost) {
		return false
	}
	s.board.UpgradeToCity(node, p.ID())
	p.AddVictoryPoints(1)
	return true
}

// pay debits cost from p if, and only if, p covers all of it.
func pay(p Ledger, cost economy.ResourceSet) bool {
	if !p.HasResources(cost) {
		return false
	}
	for _, r := range economy.AllResources {
		if cost[r] > 0 {
			p.RemoveResource(r, cost[r])
		}
	}
	return true
}
