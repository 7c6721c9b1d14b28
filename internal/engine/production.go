// Resource production: a dice roll pays every building on matching tiles.
package engine

import (
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/board"
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/economy"
)

// RobberRoll is the roll that produces nothing.
const RobberRoll = 7

// Ledger is the slice of a player the engine mutates.
type Ledger interface {
	ID() int
	HasResources(cost economy.ResourceSet) bool
	AddResource(r economy.Resource, amount int)
	RemoveResource(r economy.Resource, amount int) bool
	AddVictoryPoints(n int)
}

// Payout is one credit made by the distributor.
type Payout struct {
	Player   int
	Tile     int
	Node     int
	Resource economy.Resource
	Amount   int
}

// Distributor credits players for the buildings around rolled tiles.
type Distributor struct {
	board *board.Board
}

// NewDistributor creates a distributor over b.
func NewDistributor(b *board.Board) *Distributor {
	return &Distributor{board: b}
}

// yield is how many cards a building collects from one adjacent tile.
func yield(b board.Building) int {
	switch b {
	case board.BuildingSettlement:
		return 1
	case board.BuildingCity:
		return 2
	}
	return 0
}

// Distribute pays out for roll. A 7 pays nothing. Tiles are visited in
// ascending id and corners in ring order; buildings whose owner is not
// among players are skipped. The payouts made are returned in that order.
func (d *Distributor) Distribute(roll int, players []Ledger) []Payout {
	if roll == RobberRoll {
		return nil
	}

	byID := make(map[int]Ledger, len(players))
	for _, p := range players {
		byID[p.ID()] = p
	}

	topo := d.board.Topology()
	var payouts []Payout
	for _, tile := range d.board.TilesWithNumber(roll) {
		res, ok := tile.Terrain.Resource()
		if !ok {
			continue
		}
		for _, node := range topo.TileNodes(tile.ID) {
			n, _ := d.board.Node(node)
			amount := yield(n.Building)
			if amount == 0 {
				continue
			}
			owner, ok := byID[n.Owner]
			if !ok {
				continue
			}
			owner.AddResource(res, amount)
			payouts = append(payouts, Payout{
				Player:   n.Owner,
				Tile:     tile.ID,
				Node:     node,
				Resource: res,
				Amount:   amount,
			})
		}
	}
	return payouts
}

// StartingResources credits p one card per producing tile around node,
// as granted for the second setup settlement.
func (d *Distributor) StartingResources(p Ledger, node int) []Payout {
	var payouts []Payout
	for _, id := range d.board.Topology().TilesOfNode(node) {
		tile, _ := d.board.Tile(id)
		res, ok := tile.Terrain.Resource()
		if !ok {
			continue
		}
		p.AddResource(res, 1)
		payouts = append(payouts, Payout{Player: p.ID(), Tile: id, Node: node, Resource: res, Amount: 1})
	}
	return payouts
}
