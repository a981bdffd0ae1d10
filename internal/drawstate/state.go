package drawstate

import (
	"fmt"
	"math/rand"

	"github.com/charleschow/uefa-draw-sim/internal/model"
)

// BannedPairs answers whether two countries may never be drawn against
// each other. Implementations must treat the pair as unordered.
type BannedPairs interface {
	Contains(countryA, countryB string) bool
}

type noBans struct{}

func (noBans) Contains(string, string) bool { return false }

// NoBans is a BannedPairs with an empty set.
var NoBans BannedPairs = noBans{}

// DrawState is the mutable aggregate read and written by the feasibility
// checker and the DFS. It owns no concurrency primitives itself: exactly
// one goroutine mutates a given DrawState at a time (the outer draw
// driver, or a single DFS worker operating on its own clone).
type DrawState struct {
	Teams           []model.Team
	Pots            int
	TeamsPerPot     int
	GamesPerTeam    int
	GamesPerPotPair int // per *ordered* pot pair

	NumTeamsByCountry map[string]int

	Picked        []model.Game
	AllGames      []model.Game
	PickedPairSet map[model.Game]struct{}

	GamesByTeam    map[int][]model.Game
	GamesByPotPair map[potPairKey]int

	HomeCount []int
	AwayCount []int

	OppCountryCount map[countryKey]int
	PlayedPotLoc    map[potLocKey]bool

	DrawnTeams map[int]bool

	NeedsHomeAgainstPot map[int]map[int]bool // pot -> team indices still owing a home game vs that pot
	NeedsAwayAgainstPot map[int]map[int]bool

	CountryHomeNeeds map[countryPotKey]int
	CountryAwayNeeds map[countryPotKey]int

	Rand *rand.Rand

	// Banned is retained past construction (not just used to filter
	// AllGames) because the weak/strong feasibility checks synthesize
	// candidate pairs combinatorially across a pot rather than testing
	// membership in AllGames, so GenericValid has to be able to reject
	// a same-country or banned pair on its own rather than relying on
	// those pairs having never been enumerated.
	Banned BannedPairs
}

// New builds an empty DrawState for `teams` (already in pot order,
// teamsPerPot rows per pot) and materializes the candidate universe:
// every cross-country, non-banned directed pair.
func New(teams []model.Team, pots, teamsPerPot, gamesPerTeam, gamesPerPotPair int, banned BannedPairs, rng *rand.Rand) (*DrawState, error) {
	numTeams := pots * teamsPerPot
	if len(teams) != numTeams {
		return nil, fmt.Errorf("drawstate: expected %d teams (%d pots x %d/pot), got %d", numTeams, pots, teamsPerPot, len(teams))
	}
	if banned == nil {
		banned = NoBans
	}

	s := &DrawState{
		Teams:           teams,
		Pots:            pots,
		TeamsPerPot:     teamsPerPot,
		GamesPerTeam:    gamesPerTeam,
		GamesPerPotPair: gamesPerPotPair,

		NumTeamsByCountry: make(map[string]int, numTeams),

		PickedPairSet: make(map[model.Game]struct{}, numTeams*gamesPerTeam/2),
		GamesByTeam:   make(map[int][]model.Game, numTeams),
		GamesByPotPair: make(map[potPairKey]int, pots*pots),

		HomeCount: make([]int, numTeams),
		AwayCount: make([]int, numTeams),

		OppCountryCount: make(map[countryKey]int, numTeams*4),
		PlayedPotLoc:    make(map[potLocKey]bool, numTeams*pots*2),

		DrawnTeams: make(map[int]bool, numTeams),

		NeedsHomeAgainstPot: make(map[int]map[int]bool, pots),
		NeedsAwayAgainstPot: make(map[int]map[int]bool, pots),

		CountryHomeNeeds: make(map[countryPotKey]int),
		CountryAwayNeeds: make(map[countryPotKey]int),

		Rand: rng,

		Banned: banned,
	}

	for _, t := range teams {
		s.NumTeamsByCountry[t.Country]++
	}

	for p := 1; p <= pots; p++ {
		home := make(map[int]bool, numTeams)
		away := make(map[int]bool, numTeams)
		for i := 0; i < numTeams; i++ {
			home[i] = true
			away[i] = true
		}
		s.NeedsHomeAgainstPot[p] = home
		s.NeedsAwayAgainstPot[p] = away
	}
	for country := range s.NumTeamsByCountry {
		for p := 1; p <= pots; p++ {
			s.CountryHomeNeeds[countryPotKey{country, p}] = s.NumTeamsByCountry[country]
			s.CountryAwayNeeds[countryPotKey{country, p}] = s.NumTeamsByCountry[country]
		}
	}

	s.generateAllGames(banned)
	return s, nil
}

// Pot returns the 1-based pot of team index i.
func (s *DrawState) Pot(i int) int {
	return model.Pot(i, s.TeamsPerPot)
}

// PotRange returns the [start, end) half-open range of team indices
// belonging to the given 1-based pot.
func (s *DrawState) PotRange(pot int) (start, end int) {
	start = (pot - 1) * s.TeamsPerPot
	return start, start + s.TeamsPerPot
}

// GamesByPotPairCount reports how many games have been committed
// between the given ordered pot pair so far.
func (s *DrawState) GamesByPotPairCount(homePot, awayPot int) int {
	return s.GamesByPotPair[potPairKey{homePot, awayPot}]
}

// CountryHomeNeed reports how many more home games country's teams
// still owe against the given pot.
func (s *DrawState) CountryHomeNeed(country string, pot int) int {
	return s.CountryHomeNeeds[countryPotKey{country, pot}]
}

// CountryAwayNeed reports how many more away games country's teams
// still owe against the given pot.
func (s *DrawState) CountryAwayNeed(country string, pot int) int {
	return s.CountryAwayNeeds[countryPotKey{country, pot}]
}

func (s *DrawState) generateAllGames(banned BannedPairs) {
	n := len(s.Teams)
	s.AllGames = make([]model.Game, 0, n*s.GamesPerTeam)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			ci, cj := s.Teams[i].Country, s.Teams[j].Country
			if ci == cj {
				continue
			}
			if banned.Contains(ci, cj) {
				continue
			}
			s.AllGames = append(s.AllGames, model.Game{Home: i, Away: j})
			s.AllGames = append(s.AllGames, model.Game{Home: j, Away: i})
		}
	}
}

// TotalGames is the number of fixtures a complete draw contains.
func (s *DrawState) TotalGames() int {
	return len(s.Teams) * s.GamesPerTeam / 2
}

// HasPair reports whether g or its reverse has already been picked.
func (s *DrawState) HasPair(g model.Game) bool {
	if _, ok := s.PickedPairSet[g]; ok {
		return true
	}
	_, ok := s.PickedPairSet[g.Reverse()]
	return ok
}

// FilterValid removes from games every entry no longer valid against s,
// using the supplied predicate (base or UECL). Used after every commit
// at the top level and inside the DFS after every tentative commit.
func FilterValid(games []model.Game, valid func(model.Game) bool) []model.Game {
	out := games[:0:0]
	for _, g := range games {
		if valid(g) {
			out = append(out, g)
		}
	}
	return out
}

// Clone returns a deep, independent copy of s suitable for handing to a
// DFS worker goroutine. The clone shares no mutable backing storage
// with s.
func (s *DrawState) Clone() *DrawState {
	c := &DrawState{
		Teams:           s.Teams, // immutable, safe to share
		Pots:            s.Pots,
		TeamsPerPot:     s.TeamsPerPot,
		GamesPerTeam:    s.GamesPerTeam,
		GamesPerPotPair: s.GamesPerPotPair,

		NumTeamsByCountry: s.NumTeamsByCountry, // immutable after New()

		Picked:        append([]model.Game(nil), s.Picked...),
		AllGames:      append([]model.Game(nil), s.AllGames...),
		PickedPairSet: make(map[model.Game]struct{}, len(s.PickedPairSet)),

		GamesByTeam:    make(map[int][]model.Game, len(s.GamesByTeam)),
		GamesByPotPair: make(map[potPairKey]int, len(s.GamesByPotPair)),

		HomeCount: append([]int(nil), s.HomeCount...),
		AwayCount: append([]int(nil), s.AwayCount...),

		OppCountryCount: make(map[countryKey]int, len(s.OppCountryCount)),
		PlayedPotLoc:    make(map[potLocKey]bool, len(s.PlayedPotLoc)),

		DrawnTeams: make(map[int]bool, len(s.DrawnTeams)),

		NeedsHomeAgainstPot: make(map[int]map[int]bool, len(s.NeedsHomeAgainstPot)),
		NeedsAwayAgainstPot: make(map[int]map[int]bool, len(s.NeedsAwayAgainstPot)),

		CountryHomeNeeds: make(map[countryPotKey]int, len(s.CountryHomeNeeds)),
		CountryAwayNeeds: make(map[countryPotKey]int, len(s.CountryAwayNeeds)),

		Rand: s.Rand,

		Banned: s.Banned,
	}
	for k, v := range s.PickedPairSet {
		c.PickedPairSet[k] = v
	}
	for k, v := range s.GamesByTeam {
		c.GamesByTeam[k] = append([]model.Game(nil), v...)
	}
	for k, v := range s.GamesByPotPair {
		c.GamesByPotPair[k] = v
	}
	for k, v := range s.OppCountryCount {
		c.OppCountryCount[k] = v
	}
	for k, v := range s.PlayedPotLoc {
		c.PlayedPotLoc[k] = v
	}
	for k, v := range s.DrawnTeams {
		c.DrawnTeams[k] = v
	}
	for pot, set := range s.NeedsHomeAgainstPot {
		cs := make(map[int]bool, len(set))
		for k, v := range set {
			cs[k] = v
		}
		c.NeedsHomeAgainstPot[pot] = cs
	}
	for pot, set := range s.NeedsAwayAgainstPot {
		cs := make(map[int]bool, len(set))
		for k, v := range set {
			cs[k] = v
		}
		c.NeedsAwayAgainstPot[pot] = cs
	}
	for k, v := range s.CountryHomeNeeds {
		c.CountryHomeNeeds[k] = v
	}
	for k, v := range s.CountryAwayNeeds {
		c.CountryAwayNeeds[k] = v
	}
	return c
}
