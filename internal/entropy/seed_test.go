package entropy

import "testing"

func TestSeedPositive(t *testing.T) {
	seen := make(map[int64]bool)
	for i := 0; i < 50; i++ {
		s := Seed()
		if s <= 0 {
			t.Fatalf("Seed() = %d, want positive", s)
		}
		seen[s] = true
	}
	if len(seen) < 45 {
		t.Errorf("only %d distinct seeds in 50 draws", len(seen))
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve(42); got != 42 {
		t.Errorf("Resolve(42) = %d", got)
	}
	if got := Resolve(-7); got != -7 {
		t.Errorf("Resolve(-7) = %d", got)
	}
	if got := Resolve(0); got == 0 {
		t.Error("Resolve(0) returned 0")
	}
}

func TestClockSeed(t *testing.T) {
	if clockSeed() <= 0 {
		t.Error("clock seed not positive")
	}
}
