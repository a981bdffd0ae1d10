package drawstate

import "github.com/charleschow/uefa-draw-sim/internal/model"

// ValidFunc is a variant's Valid predicate bound to a specific state, so
// the checks below stay variant-agnostic (UECL's wider predicate just
// gets passed in like the base one would).
type ValidFunc func(g model.Game) bool

// WeakCheck runs the weak feasibility check for the base variant: homePot
// and awayPot are the pots of the game just tentatively committed. UECL
// calls WeakCheckGrouped instead, lifting each pot to its paired-pot
// unit.
func WeakCheck(s *DrawState, homePot, awayPot int, valid ValidFunc) bool {
	return WeakCheckGrouped(s, []int{homePot}, []int{awayPot}, valid)
}

// WeakCheckGrouped generalizes the weak check to a pot *group* (a single
// pot for UCL/UEL, a paired-pot unit for UECL): a required team is
// satisfiable if it has a legal partner anywhere in the group.
func WeakCheckGrouped(s *DrawState, homeGroup, awayGroup []int, valid ValidFunc) bool {
	for _, homePot := range homeGroup {
		for t := range s.NeedsAwayAgainstPot[homePot] {
			if !hasPartnerInPots(s, homeGroup, t, true, valid) {
				return false
			}
		}
	}
	for _, awayPot := range awayGroup {
		for t := range s.NeedsHomeAgainstPot[awayPot] {
			if !hasPartnerInPots(s, awayGroup, t, false, valid) {
				return false
			}
		}
	}
	return true
}

// hasPartnerInPots reports whether some team across any pot in `pots`
// can still legally play `t`. If tIsAway, t is the away side and the
// pots supply the home team; otherwise t is home and the pots supply
// the away team.
func hasPartnerInPots(s *DrawState, pots []int, t int, tIsAway bool, valid ValidFunc) bool {
	for _, pot := range pots {
		start := (pot - 1) * s.TeamsPerPot
		end := start + s.TeamsPerPot
		for o := start; o < end; o++ {
			if o == t {
				continue
			}
			var g model.Game
			if tIsAway {
				g = model.Game{Home: o, Away: t}
			} else {
				g = model.Game{Home: t, Away: o}
			}
			if valid(g) {
				return true
			}
		}
	}
	return false
}

// StrongCheck runs the strong feasibility check for the base variant:
// each pot is its own group. UECL calls StrongCheckGrouped with
// paired-pot-unit groups instead.
func StrongCheck(s *DrawState, valid ValidFunc) bool {
	groups := make([][]int, s.Pots)
	for p := 1; p <= s.Pots; p++ {
		groups[p-1] = []int{p}
	}
	return StrongCheckGrouped(s, groups, valid)
}

// StrongCheckGrouped demand/supply-checks every (country, group) pair,
// where a group is one or more pots whose needs are tracked in lockstep
// (a paired-pot unit for UECL, a lone pot for the base variant).
func StrongCheckGrouped(s *DrawState, groups [][]int, valid ValidFunc) bool {
	for country := range s.NumTeamsByCountry {
		for _, group := range groups {
			anchor := group[0]
			homeDemand := s.CountryHomeNeeds[countryPotKey{country, anchor}]
			if homeDemand > 0 && supplyOverPots(s, country, group, valid, false) < homeDemand {
				return false
			}
			awayDemand := s.CountryAwayNeeds[countryPotKey{country, anchor}]
			if awayDemand > 0 && supplyOverPots(s, country, group, valid, true) < awayDemand {
				return false
			}
		}
	}
	return true
}

// supplyOverPots upper-bounds how many more (country, group) games can
// still be scheduled in the given direction. awayDemand=false computes
// the home-demand supply (country's teams as home, group's teams as
// away); awayDemand=true computes the mirror.
func supplyOverPots(s *DrawState, country string, pots []int, valid ValidFunc, awayDemand bool) int {
	total := 0
	for _, pot := range pots {
		start := (pot - 1) * s.TeamsPerPot
		end := start + s.TeamsPerPot
		for u := start; u < end; u++ {
			budget := 2 - s.OppCountryCount[countryKey{u, country}]
			if budget <= 0 {
				continue
			}
			n := 0
			for v, t := range s.Teams {
				if t.Country != country {
					continue
				}
				var g model.Game
				if awayDemand {
					g = model.Game{Home: u, Away: v}
				} else {
					g = model.Game{Home: v, Away: u}
				}
				if valid(g) {
					n++
					if n >= budget {
						break
					}
				}
			}
			total += n
		}
	}
	return total
}
