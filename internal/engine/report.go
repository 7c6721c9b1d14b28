package engine

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatResult renders a result as a short plain-text standings table.
func FormatResult(r Result) string {
	var b strings.Builder
	switch {
	case r.WinnerID != 0:
		fmt.Fprintf(&b, "Player %d wins after %s rounds (seed %d)\n", r.WinnerID, humanize.Comma(int64(r.Rounds)), r.Seed)
	default:
		fmt.Fprintf(&b, "No winner after %s rounds (seed %d)\n", humanize.Comma(int64(r.Rounds)), r.Seed)
	}
	for _, s := range r.Standings {
		fmt.Fprintf(&b, "  %-4s Player %d  %2d VP  %d settlements, %d cities, %d roads, %d cards\n",
			humanize.Ordinal(s.Rank), s.PlayerID, s.VictoryPoints, s.Settlements, s.Cities, s.Roads, s.Resources)
	}
	return b.String()
}
