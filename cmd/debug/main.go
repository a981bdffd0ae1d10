// Command debug runs a single league-phase draw with console output
// enabled at every step and prints the resulting pots/fixtures.
//
// Usage: debug <year> <competition> [<initialGamesPath>]
package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charleschow/uefa-draw-sim/internal/config"
	"github.com/charleschow/uefa-draw-sim/internal/drawengine"
	"github.com/charleschow/uefa-draw-sim/internal/drawstate"
	"github.com/charleschow/uefa-draw-sim/internal/loader"
	"github.com/charleschow/uefa-draw-sim/internal/search"
	"github.com/charleschow/uefa-draw-sim/internal/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.Init(telemetry.ParseLogLevel(cfg.LogLevel))

	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: debug <year> <competition> [<initialGamesPath>]")
		os.Exit(1)
	}

	year, err := strconv.Atoi(os.Args[1])
	if err != nil || year <= 0 {
		fmt.Fprintf(os.Stderr, "debug: year must be positive, got %q\n", os.Args[1])
		os.Exit(1)
	}
	competition := os.Args[2]

	v, err := drawstate.ForCompetition(competition)
	if err != nil {
		telemetry.Errorf("%v", err)
		os.Exit(1)
	}

	teamsPath := filepath.Join(cfg.DataRoot, strconv.Itoa(year), competition, "teams.csv")
	teams, err := loader.LoadTeams(teamsPath)
	if err != nil {
		telemetry.Errorf("%v", err)
		os.Exit(1)
	}
	banned, err := loader.LoadBannedPairs(filepath.Join(cfg.DataRoot, strconv.Itoa(year), "banned.txt"))
	if err != nil {
		telemetry.Errorf("%v", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	d, err := drawengine.New(v, teams, banned, rng, search.AdHocPool{})
	if err != nil {
		telemetry.Errorf("%v", err)
		os.Exit(2)
	}

	if len(os.Args) >= 4 {
		initial, err := loader.LoadInitialGames(os.Args[3], teams)
		if err != nil {
			telemetry.Errorf("%v", err)
			os.Exit(1)
		}
		if err := d.Seed(initial); err != nil {
			telemetry.Errorf("%v", err)
			os.Exit(2)
		}
	}

	telemetry.Infof("drawing %s %d (debug mode, no shared pool)", competition, year)
	for _, potTeams := range drawengine.DrawOrder(d.State, rng) {
		names := make([]string, len(potTeams))
		for i, t := range potTeams {
			names[i] = teams[t].Abbrev
		}
		telemetry.Debugf("draw order: %v", names)
	}

	if !d.Run() {
		telemetry.Errorf("draw aborted: pick_game exhausted all candidates with %d/%d games committed",
			len(d.State.Picked), d.State.TotalGames())
		drawengine.DisplayPots(d.State)
		os.Exit(2)
	}

	if ok, reason := d.Verify(); !ok {
		telemetry.Errorf("INVALID DRAW: %s", reason)
		drawengine.DisplayPots(d.State)
		os.Exit(2)
	}

	drawengine.DisplayPots(d.State)
}
