package simulate

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/charleschow/uefa-draw-sim/internal/drawengine"
	"github.com/charleschow/uefa-draw-sim/internal/drawstate"
	"github.com/charleschow/uefa-draw-sim/internal/model"
	"github.com/charleschow/uefa-draw-sim/internal/search"
	"github.com/charleschow/uefa-draw-sim/internal/simulate/checkpoint"
	"github.com/charleschow/uefa-draw-sim/internal/telemetry"
)

// Config is everything Run needs to simulate a competition's draw many
// times over.
type Config struct {
	Competition     string
	Year            int
	Iterations      int
	OuterPoolSize   int
	InnerPoolMult   int
	Teams           []model.Team
	Banned          drawstate.BannedPairs
	Failures        *FailureDumper     // optional
	Checkpoint      *checkpoint.Store  // optional, see checkpoint/store.go
	CheckpointEvery time.Duration
}

// Result summarizes one simulator run.
type Result struct {
	RunID     string
	Completed int
	Retries   int
	Duration  time.Duration
	Pairs     []PairCount
}

// Run simulates cfg.Iterations independent draws across an outer pool
// of cfg.OuterPoolSize goroutines, each driving its DFS workers through
// a shared inner pool sized cfg.InnerPoolMult times larger. Every
// iteration that fails (pick_game exhaustion or verifier rejection)
// retries with its progress preserved as a seed, so Run always produces
// exactly cfg.Iterations counted draws.
func Run(cfg Config, bus *Bus) (Result, error) {
	v, err := drawstate.ForCompetition(cfg.Competition)
	if err != nil {
		return Result{}, err
	}

	outerSize := cfg.OuterPoolSize
	if outerSize < 1 {
		outerSize = 1
	}
	innerMult := cfg.InnerPoolMult
	if innerMult < 1 {
		innerMult = 3
	}
	innerPool := search.NewBoundedPool(outerSize * innerMult)

	runID := uuid.NewString()
	store := NewResultStore()
	progress := NewProgress(cfg.Iterations)
	done := make(chan struct{})
	go progress.Run(done)

	var retries atomic.Int64
	var checkpointTick *time.Ticker
	var completedForCheckpoint atomic.Int64
	if cfg.Checkpoint != nil {
		interval := cfg.CheckpointEvery
		if interval <= 0 {
			interval = 5 * time.Second
		}
		checkpointTick = time.NewTicker(interval)
		defer checkpointTick.Stop()
		go func() {
			for range checkpointTick.C {
				_ = cfg.Checkpoint.Save(checkpoint.State{
					RunID:       runID,
					Competition: cfg.Competition,
					Year:        cfg.Year,
					Iterations:  cfg.Iterations,
					Completed:   int(completedForCheckpoint.Load()),
					Retries:     int(retries.Load()),
					Counts:      store.Snapshot(),
				})
			}
		}()
	}

	sem := make(chan struct{}, outerSize)
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < cfg.Iterations; i++ {
		idx := i
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			local := runOneDraw(idx, v, cfg, innerPool, bus, &retries)
			store.Merge(local)
			progress.Completed()
			completedForCheckpoint.Add(1)
		}()
	}
	wg.Wait()
	close(done)
	if checkpointTick != nil {
		checkpointTick.Stop()
	}

	elapsed := time.Since(start)
	telemetry.Infof("simulated %s draws in %s (%.1fms/draw, %s retries)",
		humanize.Comma(int64(cfg.Iterations)), elapsed.Round(time.Millisecond),
		float64(elapsed.Milliseconds())/float64(cfg.Iterations), humanize.Comma(retries.Load()))
	telemetry.Infof("metrics: completed=%s failed=%s draw_retries=%s candidates_tested=%s dfs_timeouts=%s strong_checks=%s draw_p50=%s draw_p99=%s pick_game_p50=%s pick_game_p99=%s",
		humanize.Comma(telemetry.Metrics.DrawsCompleted.Value()),
		humanize.Comma(telemetry.Metrics.DrawsFailed.Value()),
		humanize.Comma(telemetry.Metrics.DrawRetries.Value()),
		humanize.Comma(telemetry.Metrics.CandidatesTested.Value()),
		humanize.Comma(telemetry.Metrics.DFSTimeouts.Value()),
		humanize.Comma(telemetry.Metrics.StrongChecksRun.Value()),
		telemetry.Metrics.DrawLatency.P50().Round(time.Millisecond),
		telemetry.Metrics.DrawLatency.P99().Round(time.Millisecond),
		telemetry.Metrics.PickGameLatency.P50().Round(time.Millisecond),
		telemetry.Metrics.PickGameLatency.P99().Round(time.Millisecond))

	return Result{
		RunID:     runID,
		Completed: cfg.Iterations,
		Retries:   int(retries.Load()),
		Duration:  elapsed,
		Pairs:     store.Pairs(len(cfg.Teams)),
	}, nil
}

// runOneDraw runs one iteration to completion, retrying (with progress
// preserved as a seed) until the draw verifies.
func runOneDraw(index int, v drawstate.Variant, cfg Config, pool search.Pool, bus *Bus, retries *atomic.Int64) LocalCounts {
	local := make(LocalCounts)
	var seed []model.Game
	start := time.Now()

	telemetry.Metrics.ActiveDraws.Inc()
	defer telemetry.Metrics.ActiveDraws.Dec()

	for {
		rng := rand.New(rand.NewSource(time.Now().UnixNano() ^ int64(index)<<32))
		d, err := drawengine.New(v, cfg.Teams, cfg.Banned, rng, pool)
		if err != nil {
			telemetry.Errorf("simulate: build draw %d: %v", index, err)
			return local
		}

		if len(seed) > 0 {
			if err := d.Seed(seed); err != nil {
				telemetry.Errorf("simulate: re-seed draw %d: %v", index, err)
				seed = nil
				continue
			}
		}

		completed := d.Run()
		verified := false
		reason := "pick_game exhausted all candidates"
		if completed {
			verified, reason = d.Verify()
		}

		if !verified {
			retries.Add(1)
			telemetry.Metrics.DrawsFailed.Inc()
			telemetry.Metrics.DrawRetries.Inc()
			bus.Publish(Event{Type: EventDrawRetried, Payload: DrawRetried{Index: index, Reason: reason}})
			if cfg.Failures != nil {
				_ = cfg.Failures.Dump(d.State.Picked, cfg.Teams)
			}
			seed = append([]model.Game(nil), d.State.Picked...)
			continue
		}

		for _, g := range d.State.Picked {
			local.Record(g)
		}
		telemetry.Metrics.DrawsCompleted.Inc()
		telemetry.Metrics.DrawLatency.Record(time.Since(start))
		bus.Publish(Event{Type: EventDrawCompleted, Payload: DrawCompleted{Index: index}})
		return local
	}
}
