// Command simulate runs many independent league-phase draws for one
// competition and writes the aggregated per-pair fixture counts to CSV.
//
// Usage: simulate <year> <competition> <iterations> [<teamsPath> <outputPath>]
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charleschow/uefa-draw-sim/internal/config"
	"github.com/charleschow/uefa-draw-sim/internal/loader"
	"github.com/charleschow/uefa-draw-sim/internal/simulate"
	"github.com/charleschow/uefa-draw-sim/internal/simulate/checkpoint"
	"github.com/charleschow/uefa-draw-sim/internal/telemetry"
)

func main() {
	cfg := config.Load()
	telemetry.Init(telemetry.ParseLogLevel(cfg.LogLevel))

	if len(os.Args) < 4 {
		fmt.Fprintln(os.Stderr, "usage: simulate <year> <competition> <iterations> [<teamsPath> <outputPath>]")
		os.Exit(1)
	}

	year, err := strconv.Atoi(os.Args[1])
	if err != nil || year <= 0 {
		fmt.Fprintf(os.Stderr, "simulate: year must be positive, got %q\n", os.Args[1])
		os.Exit(1)
	}
	competition := os.Args[2]
	iterations, err := strconv.Atoi(os.Args[3])
	if err != nil || iterations <= 0 {
		fmt.Fprintf(os.Stderr, "simulate: iterations must be positive, got %q\n", os.Args[3])
		os.Exit(1)
	}

	teamsPath := filepath.Join(cfg.DataRoot, strconv.Itoa(year), competition, "teams.csv")
	if len(os.Args) >= 5 {
		teamsPath = os.Args[4]
	}

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

	var ckpt *checkpoint.Store
	if cfg.CheckpointPath != "" {
		ckpt, err = checkpoint.Open(cfg.CheckpointPath)
		if err != nil {
			telemetry.Errorf("%v", err)
			os.Exit(2)
		}
		defer ckpt.Close()
	}

	bus := simulate.NewBus()
	bus.Subscribe(simulate.EventDrawRetried, func(e simulate.Event) {
		r := e.Payload.(simulate.DrawRetried)
		telemetry.Debugf("draw %d retried: %s", r.Index, r.Reason)
	})

	telemetry.Infof("simulating %d %s draws for %d", iterations, competition, year)

	result, err := simulate.Run(simulate.Config{
		Competition:     competition,
		Year:            year,
		Iterations:      iterations,
		OuterPoolSize:   cfg.OuterPoolSize,
		InnerPoolMult:   cfg.InnerPoolMult,
		Teams:           teams,
		Banned:          banned,
		Failures:        simulate.NewFailureDumper(cfg.FailuresRoot, fmt.Sprintf("%s_%d", competition, year)),
		Checkpoint:      ckpt,
		CheckpointEvery: time.Duration(cfg.CheckpointEverySec) * time.Second,
	}, bus)
	if err != nil {
		telemetry.Errorf("%v", err)
		os.Exit(2)
	}

	now := time.Now()
	outputPath := simulate.DefaultResultsPath(cfg.ResultsRoot, competition, year, iterations, now)
	if len(os.Args) >= 6 {
		outputPath = os.Args[5]
	}
	meta := simulate.NewFrontmatter(competition, year, iterations, now)
	if err := simulate.WriteCSV(outputPath, meta, result.Pairs); err != nil {
		telemetry.Errorf("%v", err)
		os.Exit(2)
	}

	telemetry.Infof("wrote %s (%d retries, run %s)", outputPath, result.Retries, result.RunID)
}
