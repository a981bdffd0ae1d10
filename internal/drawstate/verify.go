package drawstate

import "fmt"

// Verify independently re-derives counts from s.Picked and checks every
// invariant independently. It never trusts the incremental
// bookkeeping maps — a bug there should not make the verifier agree
// with itself. Returns (true, "") on success, or (false, diagnostic) on
// the first violation found.
func Verify(s *DrawState, v Variant) (bool, string) {
	expected := s.TotalGames()
	if len(s.Picked) != expected {
		return false, fmt.Sprintf("drew %d matches but expected %d", len(s.Picked), expected)
	}

	type teamTally struct {
		opponents       map[int]bool
		perPot          map[int]int
		perCountry      map[string]int
		playedUnitSide  map[[2]int]bool // {unit, home=1/away=0} -> seen
	}
	tallies := make(map[int]*teamTally, len(s.Teams))
	tallyFor := func(t int) *teamTally {
		tt, ok := tallies[t]
		if !ok {
			tt = &teamTally{
				opponents:      make(map[int]bool),
				perPot:         make(map[int]int),
				perCountry:     make(map[string]int),
				playedUnitSide: make(map[[2]int]bool),
			}
			tallies[t] = tt
		}
		return tt
	}

	for _, g := range s.Picked {
		home, away := s.Teams[g.Home], s.Teams[g.Away]
		if home.Country == away.Country {
			return false, fmt.Sprintf("same-country matchup (%s): %s vs %s", home.Country, home.Abbrev, away.Abbrev)
		}

		homePot, awayPot := s.Pot(g.Home), s.Pot(g.Away)
		th, ta := tallyFor(g.Home), tallyFor(g.Away)

		th.opponents[g.Away] = true
		th.perPot[awayPot]++
		th.perCountry[away.Country]++
		ta.opponents[g.Home] = true
		ta.perPot[homePot]++
		ta.perCountry[home.Country]++

		if th.perCountry[away.Country] > 2 || ta.perCountry[home.Country] > 2 {
			return false, fmt.Sprintf("more than 2 opponents from one country (%s/%s)", home.Abbrev, away.Abbrev)
		}

		homeUnit := v.HomeAwayUnit(awayPot)
		awayUnit := v.HomeAwayUnit(homePot)
		homeKey := [2]int{homeUnit, 1}
		awayKey := [2]int{awayUnit, 0}
		if th.playedUnitSide[homeKey] || ta.playedUnitSide[awayKey] {
			return false, "one home / one away per pot (or paired-pot unit) violated"
		}
		th.playedUnitSide[homeKey] = true
		ta.playedUnitSide[awayKey] = true
	}

	oppsPerPot := s.GamesPerTeam / s.Pots
	for idx, tt := range tallies {
		if len(tt.opponents) != s.GamesPerTeam {
			return false, fmt.Sprintf("%s has %d opponents, expected %d", s.Teams[idx].Abbrev, len(tt.opponents), s.GamesPerTeam)
		}
		for pot := 1; pot <= s.Pots; pot++ {
			if tt.perPot[pot] != oppsPerPot {
				return false, fmt.Sprintf("%s has %d opponents in pot %d, expected %d", s.Teams[idx].Abbrev, tt.perPot[pot], pot, oppsPerPot)
			}
		}
	}

	return true, ""
}
