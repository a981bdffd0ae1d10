package simulate

import (
	"testing"

	"github.com/charleschow/uefa-draw-sim/internal/model"
)

func TestResultStoreMergeAccumulates(t *testing.T) {
	s := NewResultStore()
	a := LocalCounts{}
	a.Record(model.Game{Home: 0, Away: 1})
	a.Record(model.Game{Home: 0, Away: 1})
	b := LocalCounts{}
	b.Record(model.Game{Home: 0, Away: 1})
	b.Record(model.Game{Home: 1, Away: 0})

	s.Merge(a)
	s.Merge(b)

	snap := s.Snapshot()
	if snap[model.Game{Home: 0, Away: 1}] != 3 {
		t.Errorf("count[0->1] = %d, want 3", snap[model.Game{Home: 0, Away: 1}])
	}
	if snap[model.Game{Home: 1, Away: 0}] != 1 {
		t.Errorf("count[1->0] = %d, want 1", snap[model.Game{Home: 1, Away: 0}])
	}
}

func TestResultStorePairsAggregatesBothDirections(t *testing.T) {
	s := NewResultStore()
	local := LocalCounts{}
	local.Record(model.Game{Home: 0, Away: 1})
	local.Record(model.Game{Home: 0, Away: 1})
	local.Record(model.Game{Home: 1, Away: 0})
	s.Merge(local)

	pairs := s.Pairs(3)
	if len(pairs) != 1 {
		t.Fatalf("got %d pairs, want 1 (pair with zero games should be omitted)", len(pairs))
	}
	p := pairs[0]
	if p.Home != 0 || p.Away != 1 || p.HomeCount != 2 || p.AwayCount != 1 {
		t.Errorf("unexpected pair: %+v", p)
	}
	if p.Total() != 3 {
		t.Errorf("Total() = %d, want 3", p.Total())
	}
}

func TestResultStorePairsOmitsUnplayedPairs(t *testing.T) {
	s := NewResultStore()
	pairs := s.Pairs(4)
	if len(pairs) != 0 {
		t.Errorf("expected no pairs from an empty store, got %d", len(pairs))
	}
}

func TestResultStorePairsSortedByHomeThenAway(t *testing.T) {
	s := NewResultStore()
	local := LocalCounts{}
	local.Record(model.Game{Home: 2, Away: 3})
	local.Record(model.Game{Home: 0, Away: 3})
	local.Record(model.Game{Home: 0, Away: 1})
	s.Merge(local)

	pairs := s.Pairs(4)
	want := [][2]int{{0, 1}, {0, 3}, {2, 3}}
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(pairs), len(want))
	}
	for i, p := range pairs {
		if p.Home != want[i][0] || p.Away != want[i][1] {
			t.Errorf("pairs[%d] = (%d,%d), want (%d,%d)", i, p.Home, p.Away, want[i][0], want[i][1])
		}
	}
}
