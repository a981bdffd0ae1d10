package drawengine

import (
	"math/rand"
	"testing"

	"github.com/charleschow/uefa-draw-sim/internal/drawstate"
	"github.com/charleschow/uefa-draw-sim/internal/model"
	"github.com/charleschow/uefa-draw-sim/internal/search"
)

func smallTeams() []model.Team {
	return []model.Team{
		{Pot: 1, Abbrev: "A1", Country: "ENG"},
		{Pot: 1, Abbrev: "A2", Country: "FRA"},
		{Pot: 1, Abbrev: "A3", Country: "NED"},
		{Pot: 2, Abbrev: "B1", Country: "GER"},
		{Pot: 2, Abbrev: "B2", Country: "ITA"},
		{Pot: 2, Abbrev: "B3", Country: "POR"},
	}
}

// smallVariant behaves like BaseVariant but reports the small fixture's
// own dimensions, so Draw.New's New(teams) size check (pots*teamsPerPot)
// matches a 6-team roster instead of insisting on 4x9. Each team still
// plays one home and one away game against every pot, as in UCL/UEL.
type smallVariant struct{ *drawstate.BaseVariant }

func newSmallVariant() smallVariant { return smallVariant{drawstate.NewUCL()} }

func (smallVariant) Pots() int            { return 2 }
func (smallVariant) TeamsPerPot() int     { return 3 }
func (smallVariant) GamesPerTeam() int    { return 4 }
func (smallVariant) GamesPerPotPair() int { return 3 }

func TestDrawRunCompletesAndVerifies(t *testing.T) {
	v := newSmallVariant()
	d, err := New(v, smallTeams(), nil, rand.New(rand.NewSource(7)), search.AdHocPool{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !d.Run() {
		t.Fatalf("Run() aborted with %d/%d games committed", len(d.State.Picked), d.State.TotalGames())
	}
	if ok, reason := d.Verify(); !ok {
		t.Errorf("completed draw failed verification: %s", reason)
	}
}

func TestDrawSeedAppliesFixturesVerbatim(t *testing.T) {
	v := newSmallVariant()
	d, err := New(v, smallTeams(), nil, rand.New(rand.NewSource(7)), search.AdHocPool{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	seed := []model.Game{{Home: 0, Away: 2}}
	if err := d.Seed(seed); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if !d.State.HasPair(seed[0]) {
		t.Fatal("seeded fixture was not committed")
	}

	if !d.Run() {
		t.Fatalf("Run() aborted after seeding with %d/%d games committed", len(d.State.Picked), d.State.TotalGames())
	}
	found := false
	for _, g := range d.State.Picked {
		if g == seed[0] {
			found = true
		}
	}
	if !found {
		t.Error("seeded fixture did not survive the completed draw")
	}
	if ok, reason := d.Verify(); !ok {
		t.Errorf("draw completed after seeding failed verification: %s", reason)
	}
}

func TestDrawSeedRejectsInfeasibleFixture(t *testing.T) {
	v := newSmallVariant()
	d, err := New(v, smallTeams(), nil, rand.New(rand.NewSource(7)), search.AdHocPool{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Same-country pairing is never in AllGames and always invalid.
	bad := []model.Game{{Home: 0, Away: 0}}
	if err := d.Seed(bad); err == nil {
		t.Fatal("expected Seed to reject an infeasible fixture")
	}
	if len(d.State.Picked) != 0 {
		t.Error("a rejected seed must not leave a partial commit behind")
	}
}
