// Package drawengine drives the outer pick-commit loop that turns an
// empty DrawState into a complete set of fixtures.
package drawengine

import (
	"fmt"
	"math/rand"

	"github.com/charleschow/uefa-draw-sim/internal/drawstate"
	"github.com/charleschow/uefa-draw-sim/internal/model"
	"github.com/charleschow/uefa-draw-sim/internal/search"
)

// Draw wraps a DrawState and the Variant governing it.
type Draw struct {
	State   *drawstate.DrawState
	Variant drawstate.Variant
	Pool    search.Pool
}

// New builds an empty Draw for v, sized and seeded per v's parameters.
func New(v drawstate.Variant, teams []model.Team, banned drawstate.BannedPairs, rng *rand.Rand, pool search.Pool) (*Draw, error) {
	s, err := drawstate.NewStateForVariant(v, teams, banned, rng)
	if err != nil {
		return nil, err
	}
	return &Draw{State: s, Variant: v, Pool: pool}, nil
}

func (d *Draw) valid(g model.Game) bool { return d.Variant.Valid(d.State, g) }

// Seed commits every fixture in games, in order, before the free draw
// begins. Each must be valid against everything committed before it;
// if one isn't, the caller's initial-games list is infeasible and Seed
// returns an error without touching anything further.
func (d *Draw) Seed(games []model.Game) error {
	for _, g := range games {
		if !d.valid(g) {
			return fmt.Errorf("drawengine: seeded fixture %d-%d is not valid against prior fixtures", g.Home, g.Away)
		}
		d.Variant.Commit(d.State, g)
		d.State.AllGames = drawstate.FilterValid(d.State.AllGames, d.valid)
	}
	return nil
}

// Run repeatedly shuffles the candidate pool, picks the next game, and
// commits it, until every fixture is scheduled. It returns false if
// PickGame ever exhausts every candidate without the draw being
// complete — an inconsistent state the caller must treat as a failed
// draw.
func (d *Draw) Run() bool {
	total := d.State.TotalGames()
	for len(d.State.Picked) < total {
		d.State.AllGames = search.Shuffle(d.State, d.State.AllGames)
		g, ok := search.PickGame(d.Pool, d.State, d.Variant)
		if !ok {
			return false
		}
		d.Variant.Commit(d.State, g)
		d.State.AllGames = drawstate.FilterValid(d.State.AllGames, d.valid)
	}
	return true
}

// Verify independently checks that d.State satisfies every invariant.
func (d *Draw) Verify() (bool, string) {
	return drawstate.Verify(d.State, d.Variant)
}
