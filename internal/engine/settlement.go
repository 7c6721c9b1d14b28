// Package engine provides the placement rules, resource production, and the
// turn loop that drive a game on a board.
package engine

import "github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/board"

// SettlementValidator decides where a player may settle or upgrade.
type SettlementValidator struct {
	board *board.Board
}

// NewSettlementValidator creates a validator over b.
func NewSettlementValidator(b *board.Board) *SettlementValidator {
	return &SettlementValidator{board: b}
}

// IsValid reports whether player may place a settlement on node.
//
// The node must exist and be empty, and no adjacent node may hold a building
// of any owner (distance rule). During setup that is enough; otherwise one of
// the node's edges must carry the player's road.
func (v *SettlementValidator) IsValid(player, node int, setup bool) bool {
	n, ok := v.board.Node(node)
	if !ok || n.Occupied() {
		return false
	}

	topo := v.board.Topology()
	for _, adj := range topo.AdjacentNodes(node) {
		if an, _ := v.board.Node(adj); an.Occupied() {
			return false
		}
	}

	if setup {
		return true
	}

	for _, edge := range topo.AdjacentEdges(node) {
		if e, _ := v.board.Edge(edge); e.RoadOf(player) {
			return true
		}
	}
	return false
}

// ValidLocations returns every node passing IsValid, ascending.
func (v *SettlementValidator) ValidLocations(player int, setup bool) []int {
	var out []int
	for node := 0; node < v.board.Topology().NodeCount(); node++ {
		if v.IsValid(player, node, setup) {
			out = append(out, node)
		}
	}
	return out
}

// CanUpgrade reports whether node holds a settlement owned by player.
// Upgrading in place needs no distance or connectivity re-check.
func (v *SettlementValidator) CanUpgrade(player, node int) bool {
	n, ok := v.board.Node(node)
	return ok && n.Building == board.BuildingSettlement && n.Owner == player
}

// UpgradeLocations returns every node player could upgrade, ascending.
func (v *SettlementValidator) UpgradeLocations(player int) []int {
	var out []int
	for node := 0; node < v.board.Topology().NodeCount(); node++ {
		if v.CanUpgrade(player, node) {
			out = append(out, node)
		}
	}
	return out
}
