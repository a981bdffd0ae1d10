package drawengine

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/charleschow/uefa-draw-sim/internal/drawstate"
	"github.com/charleschow/uefa-draw-sim/internal/telemetry"
)

// DisplayPots prints, pot by pot, every team's drawn fixtures ordered by
// opponent pot. Purely cosmetic: it changes only what debug mode prints,
// never the distribution of committed games, since PickGame already
// chose the games before this is called. Plain text only: colorizing
// this output is an external formatting concern, not this package's.
func DisplayPots(s *drawstate.DrawState) {
	telemetry.Plainf("Matches: %d\n", len(s.Picked))
	for pot := 1; pot <= s.Pots; pot++ {
		telemetry.Plainf("Pot %d", pot)
		start, end := s.PotRange(pot)
		for t := start; t < end; t++ {
			telemetry.Plainf("%s\t%s", s.Teams[t].Abbrev, fixtureLine(s, t))
		}
		telemetry.Plainf("")
	}
}

func fixtureLine(s *drawstate.DrawState, team int) string {
	var games []struct {
		opp  int
		home bool
	}
	for _, g := range s.GamesByTeam[team] {
		opp, home := g.Away, true
		if g.Home != team {
			opp, home = g.Home, false
		}
		games = append(games, struct {
			opp  int
			home bool
		}{opp, home})
	}
	sort.SliceStable(games, func(i, j int) bool {
		return s.Pot(games[i].opp) < s.Pot(games[j].opp)
	})

	parts := make([]string, 0, len(games))
	for _, g := range games {
		side := "a"
		if g.home {
			side = "h"
		}
		parts = append(parts, s.Teams[g.opp].Abbrev+side)
	}
	return strings.Join(parts, ",")
}

// DrawOrder returns, for each pot, a random permutation of the teams in
// that pot — the order a debug run would announce them in. It has no
// effect on which games get committed; PickGame always chooses the next
// fixture globally, independent of this cosmetic sequencing.
func DrawOrder(s *drawstate.DrawState, rng *rand.Rand) [][]int {
	order := make([][]int, s.Pots)
	for pot := 1; pot <= s.Pots; pot++ {
		start, end := s.PotRange(pot)
		teams := make([]int, 0, end-start)
		for t := start; t < end; t++ {
			teams = append(teams, t)
		}
		rng.Shuffle(len(teams), func(i, j int) { teams[i], teams[j] = teams[j], teams[i] })
		order[pot-1] = teams
	}
	return order
}
