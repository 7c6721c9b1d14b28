// Package economy provides resource kinds, player hands, and building costs.
package economy

import (
	"fmt"
	"strings"
)

// Resource enumerates the five tradable resource kinds.
type Resource uint8

const (
	Lumber Resource = iota // From forests
	Brick                  // From hills
	Grain                  // From fields
	Wool                   // From pastures
	Ore                    // From mountains
)

// NumResources is the total number of resource kinds.
const NumResources = 5

// AllResources lists every resource kind in declaration order.
var AllResources = [NumResources]Resource{Lumber, Brick, Grain, Wool, Ore}

// String returns a human-readable name for a resource kind.
func (r Resource) String() string {
	switch r {
	case Lumber:
		return "Lumber"
	case Brick:
		return "Brick"
	case Grain:
		return "Grain"
	case Wool:
		return "Wool"
	case Ore:
		return "Ore"
	default:
		return "Unknown"
	}
}

// Valid reports whether r is one of the five resource kinds.
func (r Resource) Valid() bool {
	return r < NumResources
}

// ResourceSet is a fixed-size array holding a quantity of each resource kind.
// Used both for player hands and for building costs.
type ResourceSet [NumResources]int

// Total returns the sum of all quantities.
func (s ResourceSet) Total() int {
	n := 0
	for _, qty := range s {
		n += qty
	}
	return n
}

// IsEmpty returns true if all quantities are zero.
func (s ResourceSet) IsEmpty() bool {
	for _, qty := range s {
		if qty != 0 {
			return false
		}
	}
	return true
}

// Covers reports whether s holds at least the quantities in cost.
func (s ResourceSet) Covers(cost ResourceSet) bool {
	for i, need := range cost {
		if s[i] < need {
			return false
		}
	}
	return true
}

// String formats non-zero quantities, e.g. "Lumber=1 Brick=2".
func (s ResourceSet) String() string {
	var parts []string
	for _, r := range AllResources {
		if s[r] != 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", r, s[r]))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
