package search

import (
	"errors"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charleschow/uefa-draw-sim/internal/drawstate"
	"github.com/charleschow/uefa-draw-sim/internal/model"
	"github.com/charleschow/uefa-draw-sim/internal/telemetry"
)

// ErrTimeout is returned by TestCandidate when neither the fast nor the
// hard deadline produced a result. PickGame treats it as a recoverable
// signal: retry the same candidate with strong pruning, or move on.
var ErrTimeout = errors.New("search: candidate evaluation timed out")

const (
	fastDeadline = 250 * time.Millisecond
	hardDeadline = 2500 * time.Millisecond
)

// TestCandidate decides whether g can be the next committed game. It
// races one worker (sort mode 0) against the fast deadline; if that
// worker hasn't answered, it adds two more workers (modes 1 and 2) and
// waits out the remainder of the hard deadline. Only the first worker
// to finish publishes a result; a compare-and-swap on winner enforces
// that, and stop tells every other worker to abandon its search.
func TestCandidate(pool Pool, s *drawstate.DrawState, v drawstate.Variant, g model.Game, strong bool) (bool, error) {
	telemetry.Metrics.CandidatesTested.Inc()
	start := time.Now()
	stop := new(atomic.Bool)
	winner := new(atomic.Bool)
	result := make(chan bool, 1)
	var wg sync.WaitGroup

	spawn := func(sortMode int) {
		wg.Add(1)
		pool.Go(func() {
			defer wg.Done()
			ctx := NewContext(s, v, sortMode, strong, stop)
			ok := DFS(ctx, g, ctx.State.AllGames)
			if winner.CompareAndSwap(false, true) {
				result <- ok
			}
		})
	}

	spawn(0)

	select {
	case ok := <-result:
		stop.Store(true)
		<-waitGroupDone(&wg)
		return ok, nil
	case <-time.After(fastDeadline):
	}

	spawn(1)
	spawn(2)

	remaining := hardDeadline - time.Since(start)
	if remaining < 0 {
		remaining = 0
	}
	select {
	case ok := <-result:
		stop.Store(true)
		<-waitGroupDone(&wg)
		return ok, nil
	case <-time.After(remaining):
		stop.Store(true)
		<-waitGroupDone(&wg)
		telemetry.Metrics.DFSTimeouts.Inc()
		return false, ErrTimeout
	}
}

// PickGame chooses the next game to commit. Candidates are tried in
// ascending (homePot, awayPot) order, cheapest pruning deep in the tree
// first. A timeout on the weak-pruning pass is retried once with strong
// pruning before moving to the next candidate. false is returned only
// when every candidate has been exhausted, meaning the state is
// inconsistent and the draw must abort.
func PickGame(pool Pool, s *drawstate.DrawState, v drawstate.Variant) (model.Game, bool) {
	start := time.Now()
	defer func() { telemetry.Metrics.PickGameLatency.Record(time.Since(start)) }()

	candidates := append([]model.Game(nil), s.AllGames...)
	sort.SliceStable(candidates, func(i, j int) bool {
		pi, pj := s.Pot(candidates[i].Home), s.Pot(candidates[j].Home)
		if pi != pj {
			return pi < pj
		}
		return s.Pot(candidates[i].Away) < s.Pot(candidates[j].Away)
	})

	for _, g := range candidates {
		ok, err := TestCandidate(pool, s, v, g, false)
		if err == nil {
			if ok {
				return g, true
			}
			continue
		}
		ok, err = TestCandidate(pool, s, v, g, true)
		if err == nil && ok {
			return g, true
		}
	}
	return model.Game{}, false
}
