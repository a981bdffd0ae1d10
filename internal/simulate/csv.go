package simulate

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ncruces/go-strftime"
	"gopkg.in/yaml.v3"
)

// Frontmatter is the YAML header every results CSV carries, delimited
// from the table below it by "---" lines.
type Frontmatter struct {
	Timestamp   string `yaml:"timestamp"`
	Competition string `yaml:"competition"`
	Year        int    `yaml:"year"`
	Simulations int    `yaml:"simulations"`
}

// WriteCSV writes pairs to path as t1,t2,home,away,total rows, preceded
// by a YAML frontmatter block.
func WriteCSV(path string, meta Frontmatter, pairs []PairCount) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("simulate: create results dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("simulate: create results file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "---")
	front, err := yaml.Marshal(meta)
	if err != nil {
		return fmt.Errorf("simulate: marshal frontmatter: %w", err)
	}
	w.Write(front)
	fmt.Fprintln(w, "---")

	fmt.Fprintln(w, "t1,t2,home,away,total")
	for _, p := range pairs {
		fmt.Fprintf(w, "%d,%d,%d,%d,%d\n", p.Home, p.Away, p.HomeCount, p.AwayCount, p.Total())
	}
	return w.Flush()
}

// DefaultResultsPath builds the default output path for a run, e.g.
// results/ucl_2026_5000_20260729_153000.csv.
func DefaultResultsPath(root, competition string, year, iterations int, now time.Time) string {
	stamp := strftime.Format("%Y%m%d_%H%M%S", now)
	return filepath.Join(root, fmt.Sprintf("%s_%d_%d_%s.csv", competition, year, iterations, stamp))
}

// NewFrontmatter builds a Frontmatter stamped with now in RFC 3339.
func NewFrontmatter(competition string, year, iterations int, now time.Time) Frontmatter {
	return Frontmatter{
		Timestamp:   strftime.Format("%Y-%m-%dT%H:%M:%SZ", now.UTC()),
		Competition: competition,
		Year:        year,
		Simulations: iterations,
	}
}
