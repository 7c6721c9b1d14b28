package board

import (
	"fmt"
	"math/rand"

	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/entropy"
)

// Building is the kind of structure standing on a node.
type Building uint8

const (
	BuildingNone Building = iota
	BuildingSettlement
	BuildingCity
)

// String returns a human-readable name for a building kind.
func (b Building) String() string {
	switch b {
	case BuildingSettlement:
		return "settlement"
	case BuildingCity:
		return "city"
	default:
		return "none"
	}
}

// Node is an intersection where settlements and cities are placed.
type Node struct {
	ID       int      `json:"id"`
	Owner    int      `json:"owner,omitempty"` // Meaningful only when Building != BuildingNone
	Building Building `json:"building"`
}

// Occupied returns true if a building stands on the node.
func (n Node) Occupied() bool {
	return n.Building != BuildingNone
}

// OwnedBy returns true if the node holds a building owned by player.
func (n Node) OwnedBy(player int) bool {
	return n.Occupied() && n.Owner == player
}

// Edge is a path segment where roads are placed.
type Edge struct {
	ID    int  `json:"id"`
	Owner int  `json:"owner,omitempty"` // Meaningful only when Road is set
	Road  bool `json:"road"`
}

// RoadOf returns true if the edge holds a road owned by player.
func (e Edge) RoadOf(player int) bool {
	return e.Road && e.Owner == player
}

// Board holds the mutable occupancy of nodes and edges plus the tile layout.
// A Board is owned by one game and must not be mutated concurrently.
type Board struct {
	topo  *Topology
	seed  int64
	nodes []Node
	edges []Edge
	tiles []Tile
}

// New creates an empty board with tiles shuffled from seed.
// A zero seed is replaced by a fresh one.
//
// A single random stream shuffles the terrain bag first, then the token bag.
// Terrains are assigned to tiles in id order; every non-desert tile takes the
// next unused token and the desert gets NoToken.
func New(topo *Topology, seed int64) *Board {
	seed = entropy.Resolve(seed)
	rng := rand.New(rand.NewSource(seed))

	terrains := terrainBag()
	rng.Shuffle(len(terrains), func(i, j int) {
		terrains[i], terrains[j] = terrains[j], terrains[i]
	})
	tokens := tokenBag()
	rng.Shuffle(len(tokens), func(i, j int) {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	})

	b := &Board{
		topo:  topo,
		seed:  seed,
		nodes: make([]Node, topo.NodeCount()),
		edges: make([]Edge, topo.EdgeCount()),
		tiles: make([]Tile, topo.TileCount()),
	}
	for i := range b.nodes {
		b.nodes[i] = Node{ID: i}
	}
	for i := range b.edges {
		b.edges[i] = Edge{ID: i}
	}

	next := 0
	for id := range b.tiles {
		tile := Tile{ID: id, Terrain: terrains[id], Token: NoToken}
		if tile.Terrain != TerrainDesert {
			tile.Token = tokens[next]
			next++
		}
		b.tiles[id] = tile
	}
	return b
}

// Topology returns the board's static graph.
func (b *Board) Topology() *Topology { return b.topo }

// Seed returns the seed the tiles were shuffled with.
func (b *Board) Seed() int64 { return b.seed }

// Node returns the node with the given id, or false if unknown.
func (b *Board) Node(id int) (Node, bool) {
	if id < 0 || id >= len(b.nodes) {
		return Node{}, false
	}
	return b.nodes[id], true
}

// Edge returns the edge with the given id, or false if unknown.
func (b *Board) Edge(id int) (Edge, bool) {
	if id < 0 || id >= len(b.edges) {
		return Edge{}, false
	}
	return b.edges[id], true
}

// Tile returns the tile with the given id, or false if unknown.
func (b *Board) Tile(id int) (Tile, bool) {
	if id < 0 || id >= len(b.tiles) {
		return Tile{}, false
	}
	return b.tiles[id], true
}

// Tiles returns a copy of all tiles in id order.
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// Nodes returns a copy of all nodes in id order.
func (b *Board) Nodes() []Node {
	out := make([]Node, len(b.nodes))
	copy(out, b.nodes)
	return out
}

// Edges returns a copy of all edges in id order.
func (b *Board) Edges() []Edge {
	out := make([]Edge, len(b.edges))
	copy(out, b.edges)
	return out
}

// TilesWithNumber returns all tiles whose token equals n, in id order.
func (b *Board) TilesWithNumber(n int) []Tile {
	var out []Tile
	for _, t := range b.tiles {
		if t.HasToken() && t.Token == n {
			out = append(out, t)
		}
	}
	return out
}

// PlaceSettlement puts a settlement for player on an empty node.
// Returns false if the node is unknown or occupied. Rule checks belong
// to the engine; this only guards the one-building-per-node invariant.
func (b *Board) PlaceSettlement(node, player int) bool {
	if node < 0 || node >= len(b.nodes) || b.nodes[node].Occupied() {
		return false
	}
	b.nodes[node].Owner = player
	b.nodes[node].Building = BuildingSettlement
	return true
}

// UpgradeToCity turns player's settlement on node into a city.
// Returns false unless the node holds a settlement owned by player.
func (b *Board) UpgradeToCity(node, player int) bool {
	if node < 0 || node >= len(b.nodes) {
		return false
	}
	n := b.nodes[node]
	if n.Building != BuildingSettlement || n.Owner != player {
		return false
	}
	b.nodes[node].Building = BuildingCity
	return true
}

// PlaceRoad puts a road for player on an empty edge.
// Returns false if the edge is unknown or already has a road.
func (b *Board) PlaceRoad(edge, player int) bool {
	if edge < 0 || edge >= len(b.edges) || b.edges[edge].Road {
		return false
	}
	b.edges[edge].Owner = player
	b.edges[edge].Road = true
	return true
}

// BuildingsOf returns the ids of nodes holding player's buildings, ascending.
func (b *Board) BuildingsOf(player int) []int {
	var out []int
	for _, n := range b.nodes {
		if n.OwnedBy(player) {
			out = append(out, n.ID)
		}
	}
	return out
}

// RoadsOf returns the ids of edges holding player's roads, ascending.
func (b *Board) RoadsOf(player int) []int {
	var out []int
	for _, e := range b.edges {
		if e.RoadOf(player) {
			out = append(out, e.ID)
		}
	}
	return out
}

// TerrainCounts returns a summary of terrain type distribution.
func (b *Board) TerrainCounts() map[Terrain]int {
	counts := make(map[Terrain]int)
	for _, t := range b.tiles {
		counts[t.Terrain]++
	}
	return counts
}

// String returns a summary of the board.
func (b *Board) String() string {
	return fmt.Sprintf("Board(seed=%d, tiles=%d, nodes=%d, edges=%d)",
		b.seed, len(b.tiles), len(b.nodes), len(b.edges))
}
