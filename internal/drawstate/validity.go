package drawstate

import "github.com/charleschow/uefa-draw-sim/internal/model"

// GenericValid implements the base validity predicate shared by every
// variant. UECL's Valid wraps this and adds the paired-pot rejections.
func GenericValid(s *DrawState, g model.Game) bool {
	homeCountry := s.Teams[g.Home].Country
	awayCountry := s.Teams[g.Away].Country
	// AllGames never enumerates these, but the weak/strong feasibility
	// checks synthesize pairs combinatorially across a pot and need the
	// predicate to reject them on its own rather than relying on that.
	if homeCountry == awayCountry {
		return false
	}
	if s.Banned != nil && s.Banned.Contains(homeCountry, awayCountry) {
		return false
	}
	if s.HasPair(g) {
		return false
	}
	if s.HomeCount[g.Home] == s.GamesPerTeam/2 {
		return false
	}
	if s.AwayCount[g.Away] == s.GamesPerTeam/2 {
		return false
	}
	homePot := s.Pot(g.Home)
	awayPot := s.Pot(g.Away)
	if s.PlayedPotLoc[potLocKey{Team: g.Home, Pot: awayPot, Home: true}] {
		return false
	}
	if s.PlayedPotLoc[potLocKey{Team: g.Away, Pot: homePot, Home: false}] {
		return false
	}
	if s.OppCountryCount[countryKey{Team: g.Home, Country: awayCountry}] == 2 {
		return false
	}
	if s.OppCountryCount[countryKey{Team: g.Away, Country: homeCountry}] == 2 {
		return false
	}
	return true
}
