// Package dice provides the dice capability used by the turn loop.
package dice

import (
	"math/rand"

	"github.com/HUANGV1/SFWRENG-2AA4-CATAN/internal/entropy"
)

// Dice produces the sum of a roll, in [2, 12] for standard dice.
type Dice interface {
	Roll() int
}

// Standard is a pair of six-sided dice driven by a seeded stream.
type Standard struct {
	rng *rand.Rand
}

// NewStandard creates seeded dice. A zero seed is replaced by a fresh one.
func NewStandard(seed int64) *Standard {
	seed = entropy.Resolve(seed)
	return &Standard{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns the sum of two d6.
func (d *Standard) Roll() int {
	return d.rng.Intn(6) + 1 + d.rng.Intn(6) + 1
}

// Fixed replays a scripted sequence of rolls, cycling when exhausted.
// Used by tests and the demonstrator.
type Fixed struct {
	values []int
	next   int
}

// NewFixed creates dice that return values in order. Panics if values is empty.
func NewFixed(values ...int) *Fixed {
	if len(values) == 0 {
		panic("dice: NewFixed needs at least one value")
	}
	v := make([]int, len(values))
	copy(v, values)
	return &Fixed{values: v}
}

// Roll returns the next scripted value.
func (d *Fixed) Roll() int {
	v := d.values[d.next]
	d.next = (d.next + 1) % len(d.values)
	return v
}
