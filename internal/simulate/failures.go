package simulate

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/charleschow/uefa-draw-sim/internal/model"
)

// FailureDumper writes a fixture list to failures/<prefix>/<N>.txt each
// time a draw is abandoned, for later offline replay as an
// initial-games seed.
type FailureDumper struct {
	dir string
	n   atomic.Int64
}

// NewFailureDumper prepares dir (created lazily on first Dump).
func NewFailureDumper(root, prefix string) *FailureDumper {
	return &FailureDumper{dir: filepath.Join(root, prefix)}
}

// Dump writes games, one "ABBREV_HOME-ABBREV_AWAY" per line.
func (d *FailureDumper) Dump(games []model.Game, teams []model.Team) error {
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return fmt.Errorf("simulate: create failures dir: %w", err)
	}
	n := d.n.Add(1)
	path := filepath.Join(d.dir, fmt.Sprintf("%d.txt", n))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("simulate: create failure dump: %w", err)
	}
	defer f.Close()
	for _, g := range games {
		fmt.Fprintf(f, "%s-%s\n", teams[g.Home].Abbrev, teams[g.Away].Abbrev)
	}
	return nil
}
