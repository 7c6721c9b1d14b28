package economy

// Structure enumerates the buildable pieces.
type Structure uint8

const (
	StructureRoad Structure = iota
	StructureSettlement
	StructureCity
)

// String returns a human-readable name for a structure.
func (s Structure) String() string {
	switch s {
	case StructureRoad:
		return "road"
	case StructureSettlement:
		return "settlement"
	case StructureCity:
		return "city"
	default:
		return "unknown"
	}
}

// Building costs.
var (
	RoadCost       = ResourceSet{Lumber: 1, Brick: 1}
	SettlementCost = ResourceSet{Lumber: 1, Brick: 1, Grain: 1, Wool: 1}
	CityCost       = ResourceSet{Grain: 2, Ore: 3}
)

// CostOf returns the resource cost of a structure.
func CostOf(s Structure) ResourceSet {
	switch s {
	case StructureRoad:
		return RoadCost
	case StructureSettlement:
		return SettlementCost
	case StructureCity:
		return CityCost
	}
	return ResourceSet{}
}
