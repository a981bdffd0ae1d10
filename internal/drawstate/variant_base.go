package drawstate

import "github.com/charleschow/uefa-draw-sim/internal/model"

// BaseVariant implements the shared UCL/UEL rules: 4 pots, 9 teams per
// pot, 8 games per team, 9 games per ordered pot pair. UCL and UEL are
// parameter-identical, so one type serves both; `name`
// only affects logging and default data paths.
type BaseVariant struct {
	name string
}

func NewUCL() *BaseVariant { return &BaseVariant{name: "ucl"} }
func NewUEL() *BaseVariant { return &BaseVariant{name: "uel"} }

func (v *BaseVariant) Name() string          { return v.name }
func (v *BaseVariant) Pots() int             { return 4 }
func (v *BaseVariant) TeamsPerPot() int      { return 9 }
func (v *BaseVariant) GamesPerTeam() int     { return 8 }
func (v *BaseVariant) GamesPerPotPair() int  { return 9 }
func (v *BaseVariant) HomeAwayUnit(pot int) int { return pot }

func (v *BaseVariant) Valid(s *DrawState, g model.Game) bool {
	return GenericValid(s, g)
}

func (v *BaseVariant) Commit(s *DrawState, g model.Game) {
	GenericCommit(s, g)
}

func (v *BaseVariant) Revert(s *DrawState, g model.Game) {
	GenericRevert(s, g)
}

// HomeTeamPredicate rejects a candidate home team that has already
// played awayPot as home.
func (v *BaseVariant) HomeTeamPredicate(s *DrawState, t, awayPot int) bool {
	return !s.PlayedPotLoc[potLocKey{t, awayPot, true}]
}

func (v *BaseVariant) WeakCheck(s *DrawState, g model.Game) bool {
	return WeakCheck(s, s.Pot(g.Home), s.Pot(g.Away), func(c model.Game) bool { return v.Valid(s, c) })
}

func (v *BaseVariant) StrongCheck(s *DrawState) bool {
	return StrongCheck(s, func(c model.Game) bool { return v.Valid(s, c) })
}
