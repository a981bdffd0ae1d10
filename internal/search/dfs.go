package search

import (
	"github.com/charleschow/uefa-draw-sim/internal/model"
	"github.com/charleschow/uefa-draw-sim/internal/telemetry"
)

// DFS explores whether g can be accepted as part of some completion of
// ctx.State, given the remaining valid candidates. It returns true if
// the shared stop flag has already fired (the caller's result will be
// discarded, since only the test_candidate CAS winner publishes),
// g completes ctx's draw, or some completion through g exists. ctx.State
// is a throwaway clone: DFS commits and reverts freely within it.
func DFS(ctx *Context, g model.Game, remaining []model.Game) bool {
	if ctx.Stop.Load() {
		return true
	}
	if !ctx.Variant.Valid(ctx.State, g) {
		return false
	}

	ctx.Variant.Commit(ctx.State, g)

	if len(ctx.State.Picked) == ctx.State.TotalGames() {
		return true
	}

	valid := func(c model.Game) bool { return ctx.Variant.Valid(ctx.State, c) }

	if !ctx.Variant.WeakCheck(ctx.State, g) {
		ctx.Variant.Revert(ctx.State, g)
		return false
	}
	if ctx.Strong {
		telemetry.Metrics.StrongChecksRun.Inc()
		if !ctx.Variant.StrongCheck(ctx.State) {
			ctx.Variant.Revert(ctx.State, g)
			return false
		}
	}

	filtered := filterGames(remaining, valid)

	_, awayPot, home, ok := selectVariable(ctx)
	if !ok {
		// Either no pot pair remains under target even though the draw
		// isn't complete, or the earliest one under target has no home
		// team left that passes HomeTeamPredicate. Either way this
		// subtree is dead: reject immediately rather than searching
		// deeper on the assumption a later pot pair might still work.
		ctx.Variant.Revert(ctx.State, g)
		return false
	}

	candidates := make([]model.Game, 0, len(filtered))
	for _, c := range filtered {
		if c.Home == home && ctx.State.Pot(c.Away) == awayPot {
			candidates = append(candidates, c)
		}
	}
	candidates = orderCandidates(ctx.State, candidates, ctx.SortMode)

	for _, c := range candidates {
		if DFS(ctx, c, filtered) {
			ctx.Variant.Revert(ctx.State, g)
			return true
		}
	}

	ctx.Variant.Revert(ctx.State, g)
	return false
}

func filterGames(games []model.Game, valid func(model.Game) bool) []model.Game {
	out := games[:0:0]
	for _, g := range games {
		if valid(g) {
			out = append(out, g)
		}
	}
	return out
}

// selectVariable finds the smallest-index (by row-major pot pair) game
// slot not yet at its target count, and the home team within homePot
// with the smallest remaining country-level home need against awayPot
// that also passes the variant's home-team predicate. The first
// under-target pot pair found is the only one considered: PlayedPotLoc
// facts are monotonic within a branch, so if it has no eligible home
// team right now, it never will for the rest of this subtree, and the
// branch is dead (ok=false), not a reason to look further ahead.
func selectVariable(ctx *Context) (homePot, awayPot, home int, ok bool) {
	s := ctx.State
	target := s.GamesPerPotPair
	for ph := 1; ph <= s.Pots; ph++ {
		for pa := 1; pa <= s.Pots; pa++ {
			if s.GamesByPotPairCount(ph, pa) >= target {
				continue
			}
			t, found := bestHomeTeam(ctx, ph, pa)
			return ph, pa, t, found
		}
	}
	return 0, 0, 0, false
}

func bestHomeTeam(ctx *Context, homePot, awayPot int) (int, bool) {
	s := ctx.State
	start, end := s.PotRange(homePot)
	best, bestNeed := -1, 0
	for t := start; t < end; t++ {
		if !ctx.Variant.HomeTeamPredicate(s, t, awayPot) {
			continue
		}
		need := s.CountryHomeNeed(s.Teams[t].Country, awayPot)
		if best == -1 || need < bestNeed {
			best, bestNeed = t, need
		}
	}
	return best, best != -1
}
