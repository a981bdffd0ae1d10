package simulate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charleschow/uefa-draw-sim/internal/model"
)

func TestFailureDumperWritesFixtureLines(t *testing.T) {
	root := t.TempDir()
	d := NewFailureDumper(root, "ucl")

	teams := []model.Team{
		{Abbrev: "MCI"},
		{Abbrev: "RMA"},
	}
	games := []model.Game{{Home: 0, Away: 1}}

	if err := d.Dump(games, teams); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	path := filepath.Join(root, "ucl", "1.txt")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "MCI-RMA\n" {
		t.Errorf("got %q, want %q", string(data), "MCI-RMA\n")
	}
}

func TestFailureDumperIncrementsFilenames(t *testing.T) {
	root := t.TempDir()
	d := NewFailureDumper(root, "uel")
	teams := []model.Team{{Abbrev: "A"}, {Abbrev: "B"}}
	games := []model.Game{{Home: 0, Away: 1}}

	if err := d.Dump(games, teams); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if err := d.Dump(games, teams); err != nil {
		t.Fatalf("Dump: %v", err)
	}

	if _, err := os.Stat(filepath.Join(root, "uel", "1.txt")); err != nil {
		t.Error("expected 1.txt to exist")
	}
	if _, err := os.Stat(filepath.Join(root, "uel", "2.txt")); err != nil {
		t.Error("expected 2.txt to exist")
	}
}
