package board

import "github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/economy"

// Terrain types for hex tiles.
type Terrain uint8

const (
	TerrainForest    Terrain = iota // Lumber
	TerrainHills                    // Brick
	TerrainFields                   // Grain
	TerrainPasture                  // Wool
	TerrainMountains                // Ore
	TerrainDesert                   // Produces nothing, never carries a token
)

// NoToken is the number token of the desert tile.
const NoToken = 0

// Tile is a single hex on the board. Assigned once at board creation.
type Tile struct {
	ID      int     `json:"id"`
	Terrain Terrain `json:"terrain"`
	Token   int     `json:"token"` // 2..12 except 7; NoToken for the desert
}

// HasToken returns true if the tile carries a number token.
func (t Tile) HasToken() bool {
	return t.Token != NoToken
}

// Resource returns the resource a terrain produces.
// The second result is false for the desert.
func (t Terrain) Resource() (economy.Resource, bool) {
	switch t {
	case TerrainForest:
		return economy.Lumber, true
	case TerrainHills:
		return economy.Brick, true
	case TerrainFields:
		return economy.Grain, true
	case TerrainPasture:
		return economy.Wool, true
	case TerrainMountains:
		return economy.Ore, true
	}
	return 0, false
}

// TerrainName returns a human-readable name for a terrain type.
func TerrainName(t Terrain) string {
	switch t {
	case TerrainForest:
		return "Forest"
	case TerrainHills:
		return "Hills"
	case TerrainFields:
		return "Fields"
	case TerrainPasture:
		return "Pasture"
	case TerrainMountains:
		return "Mountains"
	case TerrainDesert:
		return "Desert"
	default:
		return "Unknown"
	}
}

// terrainBag returns the standard terrain distribution.
func terrainBag() []Terrain {
	bag := make([]Terrain, 0, TileCount)
	add := func(t Terrain, n int) {
		for i := 0; i < n; i++ {
			bag = append(bag, t)
		}
	}
	add(TerrainForest, 4)
	add(TerrainHills, 3)
	add(TerrainPasture, 4)
	add(TerrainFields, 4)
	add(TerrainMountains, 3)
	add(TerrainDesert, 1)
	return bag
}

// tokenBag returns the standard number tokens: one each of 2 and 12,
// two each of 3–6 and 8–11.
func tokenBag() []int {
	bag := []int{2}
	for _, n := range []int{3, 4, 5, 6, 8, 9, 10, 11} {
		bag = append(bag, n, n)
	}
	return append(bag, 12)
}

// Pips returns how many of the 36 two-dice outcomes produce the token.
// Zero for NoToken and 7.
func Pips(token int) int {
	if token < 2 || token > 12 || token == 7 {
		return 0
	}
	if token < 7 {
		return token - 1
	}
	return 13 - token
}
