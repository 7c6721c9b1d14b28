// Package board provides the static hex-board graph and the mutable board
// state: intersections (nodes), path segments (edges), and terrain tiles.
//
// Node rows, top to bottom:
//
//	A (3): 0 1 2
//	B (4): 3 4 5 6
//	C (4): 7 8 9 10
//	D (5): 11 12 13 14 15
//	E (5): 16 17 18 19 20
//	F (6): 21 22 23 24 25 26
//	G (6): 27 28 29 30 31 32
//	H (5): 33 34 35 36 37
//	I (5): 38 39 40 41 42
//	J (4): 43 44 45 46
//	K (4): 47 48 49 50
//	L (3): 51 52 53
//
// Tile rows 3-4-5-4-3: T0..T2, T3..T6, T7..T11, T12..T15, T16..T18.
package board

import (
	"fmt"
	"slices"
)

// Standard board dimensions.
const (
	NodeCount = 54
	EdgeCount = 72
	TileCount = 19
)

// tileCorners lists each tile's six corner nodes clockwise from the top vertex.
// This table is the single source of truth: all node and edge adjacency is
// derived from it.
var tileCorners = [TileCount][6]int{
	{0, 4, 8, 12, 7, 3},
	{1, 5, 9, 13, 8, 4},
	{2, 6, 10, 14, 9, 5},

	{7, 12, 17, 22, 16, 11},
	{8, 13, 18, 23, 17, 12},
	{9, 14, 19, 24, 18, 13},
	{10, 15, 20, 25, 19, 14},

	{16, 22, 28, 33, 27, 21},
	{17, 23, 29, 34, 28, 22},
	{18, 24, 30, 35, 29, 23},
	{19, 25, 31, 36, 30, 24},
	{20, 26, 32, 37, 31, 25},

	{28, 34, 39, 43, 38, 33},
	{29, 35, 40, 44, 39, 34},
	{30, 36, 41, 45, 40, 35},
	{31, 37, 42, 46, 41, 36},

	{39, 44, 48, 51, 47, 43},
	{40, 45, 49, 52, 48, 44},
	{41, 46, 50, 53, 49, 45},
}

// Topology is the immutable adjacency graph between nodes, edges, and tiles.
// It is never mutated after construction and is safe for concurrent readers.
type Topology struct {
	tileNodes   [][]int  // tile → 6 corners, clockwise
	nodeAdj     [][]int  // node → neighbouring nodes, first-seen order
	nodeEdges   [][]int  // node → incident edges, creation order
	edgeEnds    [][2]int // edge → endpoints
	nodeTiles   [][]int  // node → tiles it is a corner of, ascending
	edgeByNodes map[[2]int]int
}

// NewTopology builds the standard 19-tile board graph.
// Panics if the hardcoded table is inconsistent.
func NewTopology() *Topology {
	corners := make([][6]int, len(tileCorners))
	copy(corners, tileCorners[:])
	t, err := buildTopology(corners, NodeCount)
	if err != nil {
		panic(fmt.Sprintf("board: invalid standard topology: %v", err))
	}
	return t
}

// buildTopology derives node and edge adjacency from a tile→corner table.
// Two nodes are adjacent iff they are consecutive corners of some tile.
// Edge ids are assigned by scanning nodes in ascending order and their
// neighbours in discovery order, so repeated builds always agree.
func buildTopology(corners [][6]int, nodeCount int) (*Topology, error) {
	t := &Topology{
		tileNodes:   make([][]int, len(corners)),
		nodeAdj:     make([][]int, nodeCount),
		nodeEdges:   make([][]int, nodeCount),
		nodeTiles:   make([][]int, nodeCount),
		edgeByNodes: make(map[[2]int]int),
	}

	for tile, ring := range corners {
		t.tileNodes[tile] = slices.Clone(ring[:])
		for i := 0; i < 6; i++ {
			a, b := ring[i], ring[(i+1)%6]
			if a < 0 || a >= nodeCount || b < 0 || b >= nodeCount {
				return nil, fmt.Errorf("tile %d: corner out of range (%d, %d)", tile, a, b)
			}
			if !slices.Contains(t.nodeAdj[a], b) {
				t.nodeAdj[a] = append(t.nodeAdj[a], b)
			}
			if !slices.Contains(t.nodeAdj[b], a) {
				t.nodeAdj[b] = append(t.nodeAdj[b], a)
			}
			if !slices.Contains(t.nodeTiles[a], tile) {
				t.nodeTiles[a] = append(t.nodeTiles[a], tile)
			}
		}
	}

	for node := 0; node < nodeCount; node++ {
		for _, adj := range t.nodeAdj[node] {
			key := edgeKey(node, adj)
			if _, seen := t.edgeByNodes[key]; seen {
				continue
			}
			id := len(t.edgeEnds)
			t.edgeByNodes[key] = id
			t.edgeEnds = append(t.edgeEnds, [2]int{node, adj})
			t.nodeEdges[node] = append(t.nodeEdges[node], id)
			t.nodeEdges[adj] = append(t.nodeEdges[adj], id)
		}
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

// Validate checks internal consistency: edge endpoints agree with the
// incidence lists, every tile's corners form a 6-cycle under adjacency,
// and no node pair carries two edges.
func (t *Topology) Validate() error {
	seen := make(map[[2]int]bool, len(t.edgeEnds))
	for id, ends := range t.edgeEnds {
		a, b := ends[0], ends[1]
		if a == b {
			return fmt.Errorf("edge %d: self loop at node %d", id, a)
		}
		key := edgeKey(a, b)
		if seen[key] {
			return fmt.Errorf("edge %d: duplicate edge for nodes %d-%d", id, a, b)
		}
		seen[key] = true
		if !slices.Contains(t.nodeAdj[a], b) || !slices.Contains(t.nodeAdj[b], a) {
			return fmt.Errorf("edge %d: endpoints %d-%d are not adjacent", id, a, b)
		}
		if !slices.Contains(t.nodeEdges[a], id) || !slices.Contains(t.nodeEdges[b], id) {
			return fmt.Errorf("edge %d: missing from incidence list of %d or %d", id, a, b)
		}
	}

	for node := range t.nodeAdj {
		if len(t.nodeAdj[node]) == 0 {
			return fmt.Errorf("node %d: not a corner of any tile", node)
		}
		if len(t.nodeAdj[node]) != len(t.nodeEdges[node]) {
			return fmt.Errorf("node %d: %d neighbours but %d edges",
				node, len(t.nodeAdj[node]), len(t.nodeEdges[node]))
		}
	}

	for tile, ring := range t.tileNodes {
		for i := 0; i < 6; i++ {
			for j := i + 1; j < 6; j++ {
				if ring[i] == ring[j] {
					return fmt.Errorf("tile %d: corner %d repeated", tile, ring[i])
				}
			}
			if _, ok := t.edgeByNodes[edgeKey(ring[i], ring[(i+1)%6])]; !ok {
				return fmt.Errorf("tile %d: corners %d and %d not joined", tile, ring[i], ring[(i+1)%6])
			}
		}
	}
	return nil
}

// NodeCount returns the number of intersections.
func (t *Topology) NodeCount() int { return len(t.nodeAdj) }

// EdgeCount returns the number of path segments.
func (t *Topology) EdgeCount() int { return len(t.edgeEnds) }

// TileCount returns the number of hex tiles.
func (t *Topology) TileCount() int { return len(t.tileNodes) }

// AdjacentNodes returns the nodes sharing an edge with node.
// Returns nil for an unknown node.
func (t *Topology) AdjacentNodes(node int) []int {
	if node < 0 || node >= len(t.nodeAdj) {
		return nil
	}
	return slices.Clone(t.nodeAdj[node])
}

// AdjacentEdges returns the edges incident to node.
// Returns nil for an unknown node.
func (t *Topology) AdjacentEdges(node int) []int {
	if node < 0 || node >= len(t.nodeEdges) {
		return nil
	}
	return slices.Clone(t.nodeEdges[node])
}

// EdgeEndpoints returns the two nodes an edge connects.
// Returns nil for an unknown edge.
func (t *Topology) EdgeEndpoints(edge int) []int {
	if edge < 0 || edge >= len(t.edgeEnds) {
		return nil
	}
	ends := t.edgeEnds[edge]
	return []int{ends[0], ends[1]}
}

// TileNodes returns a tile's six corner nodes, clockwise from the top vertex.
// Returns nil for an unknown tile.
func (t *Topology) TileNodes(tile int) []int {
	if tile < 0 || tile >= len(t.tileNodes) {
		return nil
	}
	return slices.Clone(t.tileNodes[tile])
}

// TilesOfNode returns the tiles that node is a corner of, ascending.
func (t *Topology) TilesOfNode(node int) []int {
	if node < 0 || node >= len(t.nodeTiles) {
		return nil
	}
	out := slices.Clone(t.nodeTiles[node])
	slices.Sort(out)
	return out
}

// EdgeBetween returns the edge joining nodes a and b, if any.
func (t *Topology) EdgeBetween(a, b int) (int, bool) {
	id, ok := t.edgeByNodes[edgeKey(a, b)]
	return id, ok
}

// String returns a summary of the graph.
func (t *Topology) String() string {
	return fmt.Sprintf("Topology(tiles=%d, nodes=%d, edges=%d)",
		t.TileCount(), t.NodeCount(), t.EdgeCount())
}
