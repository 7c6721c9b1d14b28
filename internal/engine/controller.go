package engine

import (
	"log/slog"

	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/board"
	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/economy"
)

// Controller is the surface agents play through. It answers legal-target
// queries and forwards build requests, keyed by player id, to the building
// service. It satisfies agents.Controller.
type Controller struct {
	board       *board.Board
	settlements *SettlementValidator
	roads       *RoadValidator
	builder     *BuildingService
	players     map[int]Ledger

	// OnBuild, if set, is called after every successful build.
	OnBuild func(player int, s economy.Structure, target int)
}

// NewController wires validators and a building service over b for the
// given players.
func NewController(b *board.Board, players []Ledger) *Controller {
	sv := NewSettlementValidator(b)
	rv := NewRoadValidator(b)
	index := make(map[int]Ledger, len(players))
	for _, p := range players {
		index[p.ID()] = p
	}
	return &Controller{
		board:       b,
		settlements: sv,
		roads:       rv,
		builder:     NewBuildingService(b, sv, rv),
		players:     index,
	}
}

// Board returns the board being played on.
func (c *Controller) Board() *board.Board { return c.board }

// Topology returns the board's static graph.
func (c *Controller) Topology() *board.Topology { return c.board.Topology() }

// Tile returns a tile by id.
func (c *Controller) Tile(id int) (board.Tile, bool) { return c.board.Tile(id) }

// Player returns the ledger registered for id.
func (c *Controller) Player(id int) (Ledger, bool) {
	p, ok := c.players[id]
	return p, ok
}

func (c *Controller) ValidSettlementLocations(player int, setup bool) []int {
	return c.settlements.ValidLocations(player, setup)
}

func (c *Controller) ValidRoadLocations(player int) []int {
	return c.roads.ValidLocations(player)
}

func (c *Controller) ValidCityLocations(player int) []int {
	return c.settlements.UpgradeLocations(player)
}

// BuildSettlement builds for player on node. Unknown players are refused.
func (c *Controller) BuildSettlement(player, node int, setup bool) bool {
	p, ok := c.players[player]
	if !ok || !c.builder.BuildSettlement(p, node, setup) {
		return false
	}
	c.built(player, economy.StructureSettlement, node)
	return true
}

// BuildRoad builds for player on edge. Unknown players are refused.
func (c *Controller) BuildRoad(player, edge int, setup bool) bool {
	p, ok := c.players[player]
	if !ok || !c.builder.BuildRoad(p, edge, setup) {
		return false
	}
	c.built(player, economy.StructureRoad, edge)
	return true
}

// BuildCity upgrades player's settlement on node. Unknown players are refused.
func (c *Controller) BuildCity(player, node int) bool {
	p, ok := c.players[player]
	if !ok || !c.builder.BuildCity(p, node) {
		return false
	}
	c.built(player, economy.StructureCity, node)
	return true
}

func (c *Controller) built(player int, s economy.Structure, target int) {
	slog.Debug("structure built", "player", player, "structure", s.String(), "target", target)
	if c.OnBuild != nil {
		c.OnBuild(player, s, target)
	}
}
