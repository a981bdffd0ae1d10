package loader

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/charleschow/uefa-draw-sim/internal/model"
)

// LoadInitialGames reads an optional seeded-fixtures file: each
// non-blank line is "ABBREV_HOME-ABBREV_AWAY". A missing file yields an
// empty, non-error result. Abbreviations are resolved against teams,
// case-sensitively.
func LoadInitialGames(path string, teams []model.Team) ([]model.Game, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loader: open initial games file: %w", err)
	}
	defer f.Close()

	byAbbrev := make(map[string]int, len(teams))
	for i, t := range teams {
		byAbbrev[t.Abbrev] = i
	}

	var games []model.Game
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "-", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("loader: initial games line %d: expected ABBREV_HOME-ABBREV_AWAY, got %q", lineNo, line)
		}
		home, ok := byAbbrev[parts[0]]
		if !ok {
			return nil, fmt.Errorf("loader: initial games line %d: unknown team %q", lineNo, parts[0])
		}
		away, ok := byAbbrev[parts[1]]
		if !ok {
			return nil, fmt.Errorf("loader: initial games line %d: unknown team %q", lineNo, parts[1])
		}
		games = append(games, model.Game{Home: home, Away: away})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: read initial games file: %w", err)
	}
	return games, nil
}
