package dice

import "testing"

func TestStandardRange(t *testing.T) {
	d := NewStandard(999)
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		r := d.Roll()
		if r < 2 || r > 12 {
			t.Fatalf("roll %d out of range", r)
		}
		seen[r] = true
	}
	if len(seen) != 11 {
		t.Errorf("expected all 11 sums in 2000 rolls, saw %d", len(seen))
	}
}

func TestStandardDeterministic(t *testing.T) {
	a, b := NewStandard(42), NewStandard(42)
	for i := 0; i < 100; i++ {
		if a.Roll() != b.Roll() {
			t.Fatalf("roll %d differs under the same seed", i)
		}
	}
}

func TestFixedCycles(t *testing.T) {
	d := NewFixed(8, 7, 3)
	want := []int{8, 7, 3, 8, 7}
	for i, w := range want {
		if got := d.Roll(); got != w {
			t.Fatalf("roll %d = %d, want %d", i, got, w)
		}
	}
}

func TestFixedPanicsWhenEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewFixed()
}
