package engine

import (
	"strings"
	"testing"
)

func TestFormatResult(t *testing.T) {
	r := Result{
		Seed:     42,
		Rounds:   1234,
		WinnerID: 3,
		Standings: []Standing{
			{Rank: 1, PlayerID: 3, VictoryPoints: 10, Settlements: 2, Cities: 4, Roads: 11, Resources: 5},
			{Rank: 2, PlayerID: 1, VictoryPoints: 7},
		},
	}
	out := FormatResult(r)
	for _, want := range []string{
		"Player 3 wins after 1,234 rounds (seed 42)",
		"1st  Player 3  10 VP  2 settlements, 4 cities, 11 roads, 5 cards",
		"2nd  Player 1   7 VP",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if out := FormatResult(Result{Rounds: 8192}); !strings.HasPrefix(out, "No winner after 8,192 rounds") {
		t.Errorf("no-winner output = %q", out)
	}
}
