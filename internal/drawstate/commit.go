package drawstate

import "github.com/charleschow/uefa-draw-sim/internal/model"

// GenericCommit applies the base-variant bookkeeping deltas for a
// tentatively picked game. UECL's Commit calls this, then additionally
// clears the paired pot's needs.
func GenericCommit(s *DrawState, g model.Game) {
	s.Picked = append(s.Picked, g)
	s.PickedPairSet[g] = struct{}{}
	s.GamesByTeam[g.Home] = append(s.GamesByTeam[g.Home], g)
	s.GamesByTeam[g.Away] = append(s.GamesByTeam[g.Away], g)

	homePot := s.Pot(g.Home)
	awayPot := s.Pot(g.Away)
	homeCountry := s.Teams[g.Home].Country
	awayCountry := s.Teams[g.Away].Country

	s.GamesByPotPair[potPairKey{homePot, awayPot}]++
	s.HomeCount[g.Home]++
	s.AwayCount[g.Away]++
	s.OppCountryCount[countryKey{g.Home, awayCountry}]++
	s.OppCountryCount[countryKey{g.Away, homeCountry}]++

	s.PlayedPotLoc[potLocKey{g.Home, awayPot, true}] = true
	s.PlayedPotLoc[potLocKey{g.Away, homePot, false}] = true

	delete(s.NeedsHomeAgainstPot[awayPot], g.Home)
	delete(s.NeedsAwayAgainstPot[homePot], g.Away)

	s.CountryHomeNeeds[countryPotKey{homeCountry, awayPot}]--
	s.CountryAwayNeeds[countryPotKey{awayCountry, homePot}]--
}

// GenericRevert applies the exact inverse of GenericCommit.
func GenericRevert(s *DrawState, g model.Game) {
	homePot := s.Pot(g.Home)
	awayPot := s.Pot(g.Away)
	homeCountry := s.Teams[g.Home].Country
	awayCountry := s.Teams[g.Away].Country

	s.GamesByPotPair[potPairKey{homePot, awayPot}]--
	s.HomeCount[g.Home]--
	s.AwayCount[g.Away]--
	s.OppCountryCount[countryKey{g.Home, awayCountry}]--
	s.OppCountryCount[countryKey{g.Away, homeCountry}]--

	delete(s.PlayedPotLoc, potLocKey{g.Home, awayPot, true})
	delete(s.PlayedPotLoc, potLocKey{g.Away, homePot, false})

	s.NeedsHomeAgainstPot[awayPot][g.Home] = true
	s.NeedsAwayAgainstPot[homePot][g.Away] = true

	s.CountryHomeNeeds[countryPotKey{homeCountry, awayPot}]++
	s.CountryAwayNeeds[countryPotKey{awayCountry, homePot}]++

	delete(s.PickedPairSet, g)
	s.GamesByTeam[g.Home] = popLast(s.GamesByTeam[g.Home], g)
	s.GamesByTeam[g.Away] = popLast(s.GamesByTeam[g.Away], g)
	s.Picked = popLast(s.Picked, g)
}

// popLast removes the last occurrence of g from the slice, which is
// always where it was inserted by GenericCommit — revert always undoes
// the most recent commit for a given team/overall list (DFS and draw()
// both revert in strict LIFO order).
func popLast(games []model.Game, g model.Game) []model.Game {
	for i := len(games) - 1; i >= 0; i-- {
		if games[i] == g {
			return append(games[:i], games[i+1:]...)
		}
	}
	return games
}
