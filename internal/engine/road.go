package engine

import "github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/board"

// RoadValidator decides where a player may extend their road network.
type RoadValidator struct {
	board *board.Board
}

// NewRoadValidator creates a validator over b.
func NewRoadValidator(b *board.Board) *RoadValidator {
	return &RoadValidator{board: b}
}

// IsValid reports whether player may build a road on edge.
//
// The edge must exist and be empty, and one of its endpoints must either hold
// the player's building or touch another of the player's roads.
//
// An opponent's building on the shared endpoint does not cut the second
// case: a friendly road still connects through it. Tabletop rules block
// that junction; this engine keeps the permissive reading on purpose.
func (v *RoadValidator) IsValid(player, edge int) bool {
	e, ok := v.board.Edge(edge)
	if !ok || e.Road {
		return false
	}

	topo := v.board.Topology()
	for _, node := range topo.EdgeEndpoints(edge) {
		if n, _ := v.board.Node(node); n.OwnedBy(player) {
			return true
		}
		for _, adj := range topo.AdjacentEdges(node) {
			if adj == edge {
				continue
			}
			if ae, _ := v.board.Edge(adj); ae.RoadOf(player) {
				return true
			}
		}
	}
	return false
}

// ValidLocations returns every edge passing IsValid, ascending.
func (v *RoadValidator) ValidLocations(player int) []int {
	var out []int
	for edge := 0; edge < v.board.Topology().EdgeCount(); edge++ {
		if v.IsValid(player, edge) {
			out = append(out, edge)
		}
	}
	return out
}
