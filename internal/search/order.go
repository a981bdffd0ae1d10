package search

import (
	"sort"

	"github.com/charleschow/uefa-draw-sim/internal/drawstate"
	"github.com/charleschow/uefa-draw-sim/internal/model"
)

// remainingGames is how many more fixtures the away team still needs.
func remainingGames(s *drawstate.DrawState, team int) int {
	return s.GamesPerTeam - len(s.GamesByTeam[team])
}

// orderCandidates copies games and stable-sorts it per sortMode, the
// three diversification strategies used to spread parallel DFS workers
// across different search orders:
//
//	0: country-size of away team descending, then away's remaining games descending
//	1: country-size of away team ascending, then away's remaining games descending
//	2: away's remaining games descending only
func orderCandidates(s *drawstate.DrawState, games []model.Game, sortMode int) []model.Game {
	out := append([]model.Game(nil), games...)
	countrySize := func(g model.Game) int {
		return s.NumTeamsByCountry[s.Teams[g.Away].Country]
	}
	switch sortMode {
	case 1:
		sort.SliceStable(out, func(i, j int) bool {
			ci, cj := countrySize(out[i]), countrySize(out[j])
			if ci != cj {
				return ci < cj
			}
			return remainingGames(s, out[i].Away) > remainingGames(s, out[j].Away)
		})
	case 2:
		sort.SliceStable(out, func(i, j int) bool {
			return remainingGames(s, out[i].Away) > remainingGames(s, out[j].Away)
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			ci, cj := countrySize(out[i]), countrySize(out[j])
			if ci != cj {
				return ci > cj
			}
			return remainingGames(s, out[i].Away) > remainingGames(s, out[j].Away)
		})
	}
	return out
}

// Shuffle returns a random permutation of games using s's own PRNG, the
// source of randomness behind the empirical distribution over draws.
func Shuffle(s *drawstate.DrawState, games []model.Game) []model.Game {
	out := append([]model.Game(nil), games...)
	s.Rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
