package drawstate

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/charleschow/uefa-draw-sim/internal/model"
)

// ueclTestTeams lays out two paired units ({pot1,pot2} and {pot3,pot4}),
// two teams per pot, all distinct countries — enough to exercise the
// paired-pot rules without needing the full 6-pot/6-team competition size.
func ueclTestTeams() []model.Team {
	return []model.Team{
		{Pot: 1, Abbrev: "A1", Country: "ENG"},
		{Pot: 1, Abbrev: "A2", Country: "FRA"},
		{Pot: 2, Abbrev: "B1", Country: "GER"},
		{Pot: 2, Abbrev: "B2", Country: "ITA"},
		{Pot: 3, Abbrev: "C1", Country: "ESP"},
		{Pot: 3, Abbrev: "C2", Country: "POR"},
		{Pot: 4, Abbrev: "D1", Country: "NED"},
		{Pot: 4, Abbrev: "D2", Country: "BEL"},
	}
}

func newUECLTestState(t *testing.T) *DrawState {
	t.Helper()
	s, err := New(ueclTestTeams(), 4, 2, 4, 1, nil, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestUECLValidRejectsSecondHomeInSameUnit(t *testing.T) {
	s := newUECLTestState(t)
	v := NewUECL()

	// Team 0 (pot1) plays home against pot2 — unit {1,2}'s first home slot.
	v.Commit(s, model.Game{Home: 0, Away: 2})

	// A second home game in the same unit, this time against the *other*
	// pot (pot1's own teammate) — GenericValid's per-pot dedup wouldn't
	// catch this since it's a different individual pot; only the
	// paired-pot rule does.
	if v.Valid(s, model.Game{Home: 0, Away: 1}) {
		t.Error("expected a second home game within the same paired-pot unit to be rejected")
	}
}

func TestUECLHomeTeamPredicateRejectsPairedPot(t *testing.T) {
	s := newUECLTestState(t)
	v := NewUECL()

	v.Commit(s, model.Game{Home: 0, Away: 2}) // team 0 home vs pot2

	if v.HomeTeamPredicate(s, 0, 1) {
		t.Error("team already home in this unit should be rejected as a home candidate against the paired pot")
	}
}

func TestUECLCommitRevertRoundTrip(t *testing.T) {
	s := newUECLTestState(t)
	v := NewUECL()
	before := s.Clone()

	g := model.Game{Home: 0, Away: 2}
	v.Commit(s, g)
	v.Revert(s, g)

	if !reflect.DeepEqual(before.NeedsHomeAgainstPot, s.NeedsHomeAgainstPot) {
		t.Error("NeedsHomeAgainstPot differs after paired-pot commit/revert")
	}
	if !reflect.DeepEqual(before.NeedsAwayAgainstPot, s.NeedsAwayAgainstPot) {
		t.Error("NeedsAwayAgainstPot differs after paired-pot commit/revert")
	}
	if !reflect.DeepEqual(before.CountryHomeNeeds, s.CountryHomeNeeds) {
		t.Error("CountryHomeNeeds differs after paired-pot commit/revert")
	}
	if !reflect.DeepEqual(before.CountryAwayNeeds, s.CountryAwayNeeds) {
		t.Error("CountryAwayNeeds differs after paired-pot commit/revert")
	}
	if !reflect.DeepEqual(before.PlayedPotLoc, s.PlayedPotLoc) {
		t.Error("PlayedPotLoc differs after paired-pot commit/revert")
	}
}

func TestUECLWeakAndStrongCheckPassOnFreshState(t *testing.T) {
	s := newUECLTestState(t)
	v := NewUECL()
	if !v.WeakCheck(s, model.Game{Home: 0, Away: 2}) {
		t.Error("weak check should pass before any games are committed")
	}
	if !v.StrongCheck(s) {
		t.Error("strong check should pass before any games are committed")
	}
}
