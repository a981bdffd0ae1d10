package search

import (
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/charleschow/uefa-draw-sim/internal/drawstate"
	"github.com/charleschow/uefa-draw-sim/internal/model"
)

func dfsTestTeams() []model.Team {
	return []model.Team{
		{Pot: 1, Abbrev: "A1", Country: "ENG"},
		{Pot: 1, Abbrev: "A2", Country: "FRA"},
		{Pot: 1, Abbrev: "A3", Country: "NED"},
		{Pot: 2, Abbrev: "B1", Country: "GER"},
		{Pot: 2, Abbrev: "B2", Country: "ITA"},
		{Pot: 2, Abbrev: "B3", Country: "POR"},
	}
}

func TestDFSFindsACompletion(t *testing.T) {
	base, err := drawstate.New(dfsTestTeams(), 2, 3, 4, 3, nil, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	v := drawstate.NewUCL()
	ctx := NewContext(base, v, 0, true, &atomic.Bool{})

	ok := DFS(ctx, model.Game{Home: 0, Away: 1}, ctx.State.AllGames)
	if !ok {
		t.Fatal("expected DFS to find a completion from a feasible opening move")
	}
}

func TestDFSRejectsAnInvalidOpeningMove(t *testing.T) {
	base, err := drawstate.New(dfsTestTeams(), 2, 3, 4, 3, nil, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	v := drawstate.NewUCL()
	ctx := NewContext(base, v, 0, true, &atomic.Bool{})

	// Team 0 and team 1 share no country, so a *same*-team game (ENG vs
	// ENG — only reachable with a duplicate-country fixture) should be
	// rejected by Valid before any commit happens. Use home==away to
	// force rejection deterministically instead.
	ok := DFS(ctx, model.Game{Home: 0, Away: 0}, ctx.State.AllGames)
	if ok {
		t.Fatal("expected DFS to reject a self-paired game")
	}
	if len(ctx.State.Picked) != 0 {
		t.Error("a rejected opening move must not leave a partial commit behind")
	}
}

func TestDFSHonorsStopFlag(t *testing.T) {
	base, err := drawstate.New(dfsTestTeams(), 2, 3, 4, 3, nil, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	v := drawstate.NewUCL()
	stop := &atomic.Bool{}
	stop.Store(true)
	ctx := NewContext(base, v, 0, true, stop)

	if !DFS(ctx, model.Game{Home: 0, Away: 1}, ctx.State.AllGames) {
		t.Error("DFS should short-circuit to true once the shared stop flag has fired")
	}
}
