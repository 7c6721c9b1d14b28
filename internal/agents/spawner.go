// Agent spawning: creates the seated players for a game.
package agents

import "fmt"

// Kind names a turn-taking strategy.
type Kind string

const (
	KindRandom  Kind = "random"
	KindPlanner Kind = "planner"
)

// ParseKind validates a strategy name.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindRandom, KindPlanner:
		return Kind(s), nil
	}
	return "", fmt.Errorf("unknown agent kind %q (want %q or %q)", s, KindRandom, KindPlanner)
}

// Spawner creates players with sequential ids starting at 1.
// Each agent's private stream is seeded with base seed + seat index.
type Spawner struct {
	seed   int64
	nextID int
}

// NewSpawner creates a spawner with the given base seed.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{seed: seed, nextID: 1}
}

// Spawn creates one agent of the given kind.
func (s *Spawner) Spawn(kind Kind) (TurnTaker, error) {
	id := s.nextID
	seed := s.seed + int64(id-1)

	var t TurnTaker
	switch kind {
	case KindRandom:
		t = NewRandomAgent(id, seed)
	case KindPlanner:
		t = NewPlannerAgent(id, seed)
	default:
		return nil, fmt.Errorf("spawn player %d: unknown agent kind %q", id, kind)
	}
	s.nextID++
	return t, nil
}

// SpawnPopulation creates count agents of the given kind.
func (s *Spawner) SpawnPopulation(count int, kind Kind) ([]TurnTaker, error) {
	players := make([]TurnTaker, 0, count)
	for i := 0; i < count; i++ {
		p, err := s.Spawn(kind)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}
