package drawstate

import "github.com/charleschow/uefa-draw-sim/internal/model"

// UECLVariant implements the paired-pot rules: 6 pots,
// 6 teams per pot, 6 games per team, 3 games per ordered pot pair; teams
// play one home and one away game against each paired-pot unit
// (1-2, 3-4, 5-6), not each individual pot.
type UECLVariant struct{}

func NewUECL() *UECLVariant { return &UECLVariant{} }

func (v *UECLVariant) Name() string         { return "uecl" }
func (v *UECLVariant) Pots() int            { return 6 }
func (v *UECLVariant) TeamsPerPot() int     { return 6 }
func (v *UECLVariant) GamesPerTeam() int    { return 6 }
func (v *UECLVariant) GamesPerPotPair() int { return 3 }

// HomeAwayUnit canonicalizes a pot to its paired-pot unit id (the lower
// pot of the pair), so the verifier buckets both pots of a unit together.
func (v *UECLVariant) HomeAwayUnit(pot int) int {
	paired := model.PairedPot(pot)
	if paired < pot {
		return paired
	}
	return pot
}

func (v *UECLVariant) Valid(s *DrawState, g model.Game) bool {
	if !GenericValid(s, g) {
		return false
	}
	homePot := s.Pot(g.Home)
	awayPot := s.Pot(g.Away)
	// home team already played away team's pot as away
	if s.PlayedPotLoc[potLocKey{g.Home, awayPot, false}] {
		return false
	}
	// away team already played home team's pot as home
	if s.PlayedPotLoc[potLocKey{g.Away, homePot, true}] {
		return false
	}
	// home team already played away team's paired pot as home
	if s.PlayedPotLoc[potLocKey{g.Home, model.PairedPot(awayPot), true}] {
		return false
	}
	// away team already played home team's paired pot as away
	if s.PlayedPotLoc[potLocKey{g.Away, model.PairedPot(homePot), false}] {
		return false
	}
	return true
}

func (v *UECLVariant) Commit(s *DrawState, g model.Game) {
	GenericCommit(s, g)

	homePot := s.Pot(g.Home)
	awayPot := s.Pot(g.Away)
	homeCountry := s.Teams[g.Home].Country
	awayCountry := s.Teams[g.Away].Country
	pairedAway := model.PairedPot(awayPot)
	pairedHome := model.PairedPot(homePot)

	delete(s.NeedsHomeAgainstPot[pairedAway], g.Home)
	delete(s.NeedsAwayAgainstPot[pairedHome], g.Away)
	s.CountryHomeNeeds[countryPotKey{homeCountry, pairedAway}]--
	s.CountryAwayNeeds[countryPotKey{awayCountry, pairedHome}]--
}

func (v *UECLVariant) Revert(s *DrawState, g model.Game) {
	homePot := s.Pot(g.Home)
	awayPot := s.Pot(g.Away)
	homeCountry := s.Teams[g.Home].Country
	awayCountry := s.Teams[g.Away].Country
	pairedAway := model.PairedPot(awayPot)
	pairedHome := model.PairedPot(homePot)

	s.NeedsHomeAgainstPot[pairedAway][g.Home] = true
	s.NeedsAwayAgainstPot[pairedHome][g.Away] = true
	s.CountryHomeNeeds[countryPotKey{homeCountry, pairedAway}]++
	s.CountryAwayNeeds[countryPotKey{awayCountry, pairedHome}]++

	GenericRevert(s, g)
}

// HomeTeamPredicate rejects a candidate home team that has already
// played awayPot as home, as away, or awayPot's paired pot as home
func (v *UECLVariant) HomeTeamPredicate(s *DrawState, t, awayPot int) bool {
	if s.PlayedPotLoc[potLocKey{t, awayPot, true}] {
		return false
	}
	if s.PlayedPotLoc[potLocKey{t, awayPot, false}] {
		return false
	}
	if s.PlayedPotLoc[potLocKey{t, model.PairedPot(awayPot), true}] {
		return false
	}
	return true
}

func (v *UECLVariant) WeakCheck(s *DrawState, g model.Game) bool {
	homePot := s.Pot(g.Home)
	awayPot := s.Pot(g.Away)
	homeGroup := []int{homePot, model.PairedPot(homePot)}
	awayGroup := []int{awayPot, model.PairedPot(awayPot)}
	valid := func(c model.Game) bool { return v.Valid(s, c) }
	return WeakCheckGrouped(s, homeGroup, awayGroup, valid)
}

func (v *UECLVariant) StrongCheck(s *DrawState) bool {
	groups := [][]int{{1, 2}, {3, 4}, {5, 6}}
	return StrongCheckGrouped(s, groups, func(c model.Game) bool { return v.Valid(s, c) })
}
