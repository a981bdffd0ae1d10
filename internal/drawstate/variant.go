package drawstate

import (
	"math/rand"

	"github.com/charleschow/uefa-draw-sim/internal/model"
)

// Variant is the capability set that differs between competitions: UCL
// and UEL share every member (they are parameter-identical); UECL
// overrides all seven to enforce paired-pot semantics.
type Variant interface {
	Name() string
	Pots() int
	TeamsPerPot() int
	GamesPerTeam() int
	GamesPerPotPair() int

	Valid(s *DrawState, g model.Game) bool
	Commit(s *DrawState, g model.Game)
	Revert(s *DrawState, g model.Game)

	// HomeTeamPredicate reports whether team `t` may be selected as the
	// next home team against `awayPot`.
	HomeTeamPredicate(s *DrawState, t, awayPot int) bool

	// WeakCheck/StrongCheck run immediately after a tentative commit of
	// g inside the DFS.
	WeakCheck(s *DrawState, g model.Game) bool
	StrongCheck(s *DrawState) bool

	// HomeAwayUnit buckets a pot for the verifier's one-home/one-away
	// check: the pot itself for UCL/UEL, the paired-pot unit for UECL.
	HomeAwayUnit(pot int) int
}

// NewStateForVariant builds an empty DrawState sized for v.
func NewStateForVariant(v Variant, teams []model.Team, banned BannedPairs, rng *rand.Rand) (*DrawState, error) {
	return New(teams, v.Pots(), v.TeamsPerPot(), v.GamesPerTeam(), v.GamesPerPotPair(), banned, rng)
}
