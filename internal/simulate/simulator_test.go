package simulate

import (
	"fmt"
	"testing"

	"github.com/charleschow/uefa-draw-sim/internal/model"
)

// syntheticUCLTeams builds a full 4x9 roster with every team from its
// own country, so every cross-team pairing is legal — the search
// converges quickly without needing real fixture data, while still
// exercising Run's full outer/inner pool and retry machinery end to end.
func syntheticUCLTeams() []model.Team {
	teams := make([]model.Team, 0, 36)
	for pot := 1; pot <= 4; pot++ {
		for i := 0; i < 9; i++ {
			n := (pot-1)*9 + i
			teams = append(teams, model.Team{
				Pot:     pot,
				Abbrev:  fmt.Sprintf("T%02d", n),
				Country: fmt.Sprintf("C%02d", n),
				Name:    fmt.Sprintf("Team %02d", n),
			})
		}
	}
	return teams
}

func TestRunCompletesEveryIterationAndAggregatesPairs(t *testing.T) {
	cfg := Config{
		Competition:   "ucl",
		Year:          2026,
		Iterations:    2,
		OuterPoolSize: 2,
		InnerPoolMult: 1,
		Teams:         syntheticUCLTeams(),
	}
	bus := NewBus()

	result, err := Run(cfg, bus)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Completed != cfg.Iterations {
		t.Errorf("Completed = %d, want %d", result.Completed, cfg.Iterations)
	}
	if result.RunID == "" {
		t.Error("expected a non-empty run id")
	}
	if len(result.Pairs) == 0 {
		t.Error("expected at least one aggregated pair across two completed draws")
	}
	total := 0
	for _, p := range result.Pairs {
		total += p.Total()
	}
	// Each completed draw commits TotalGames() fixtures; 36 teams,
	// 8 games each, one per ordered pair -> 36*8/2 games per draw.
	wantPerDraw := 36 * 8 / 2
	if total != wantPerDraw*cfg.Iterations {
		t.Errorf("aggregated game count = %d, want %d", total, wantPerDraw*cfg.Iterations)
	}
}

func TestRunRejectsUnknownCompetition(t *testing.T) {
	cfg := Config{Competition: "nope", Iterations: 1, Teams: syntheticUCLTeams()}
	if _, err := Run(cfg, NewBus()); err == nil {
		t.Fatal("expected an error for an unknown competition")
	}
}
