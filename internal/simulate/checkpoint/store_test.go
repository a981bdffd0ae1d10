package checkpoint

import (
	"path/filepath"
	"testing"

	"github.com/charleschow/uefa-draw-sim/internal/model"
)

func TestStoreSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	st := State{
		RunID:       "run-1",
		Competition: "ucl",
		Year:        2026,
		Iterations:  5000,
		Completed:   120,
		Retries:     3,
		Counts: map[model.Game]int{
			{Home: 0, Away: 1}: 7,
			{Home: 1, Away: 0}: 4,
		},
	}
	if err := store.Save(st); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := store.Load("run-1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("expected a saved checkpoint to be found")
	}
	if got.Competition != "ucl" || got.Year != 2026 || got.Iterations != 5000 ||
		got.Completed != 120 || got.Retries != 3 {
		t.Errorf("unexpected loaded state: %+v", got)
	}
	if got.Counts[model.Game{Home: 0, Away: 1}] != 7 || got.Counts[model.Game{Home: 1, Away: 0}] != 4 {
		t.Errorf("unexpected loaded counts: %+v", got.Counts)
	}
}

func TestStoreLoadMissingRunReturnsFalse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	_, ok, err := store.Load("does-not-exist")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Error("expected no checkpoint to be found for an unknown run id")
	}
}

func TestStoreSaveUpsertsOnSecondCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkpoint.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	base := State{RunID: "run-2", Competition: "uecl", Year: 2026, Iterations: 1000, Completed: 10}
	if err := store.Save(base); err != nil {
		t.Fatalf("Save: %v", err)
	}
	base.Completed = 500
	base.Retries = 9
	if err := store.Save(base); err != nil {
		t.Fatalf("Save (update): %v", err)
	}

	got, ok, err := store.Load("run-2")
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if got.Completed != 500 || got.Retries != 9 {
		t.Errorf("expected upsert to overwrite progress fields, got %+v", got)
	}
}
