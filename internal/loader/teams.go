// Package loader reads the external inputs a draw needs: the teams
// CSV, the banned-country-pairs list, and an optional seeded-fixtures
// file.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/charleschow/uefa-draw-sim/internal/model"
)

var (
	teamsCacheMu sync.RWMutex
	teamsCache   = make(map[string][]model.Team)
	teamsGroup   singleflight.Group
)

// LoadTeams reads a teams CSV at path. The header row is skipped;
// subsequent rows are pot,abbrev,country,name[,coefficient]. Teams must
// already be in pot order, teamsPerPot rows per pot — the loader does
// not sort them.
//
// Results are cached by path for the life of the process: cmd/simulate
// and cmd/debug both load the same teams file once per invocation, and
// a debug session that re-runs a draw against the same roster shouldn't
// re-open and re-parse the CSV every time. singleflight collapses
// concurrent first loads of the same path into a single parse.
func LoadTeams(path string) ([]model.Team, error) {
	teamsCacheMu.RLock()
	if cached, ok := teamsCache[path]; ok {
		teamsCacheMu.RUnlock()
		return cached, nil
	}
	teamsCacheMu.RUnlock()

	v, err, _ := teamsGroup.Do(path, func() (any, error) {
		teams, err := parseTeamsFile(path)
		if err != nil {
			return nil, err
		}
		teamsCacheMu.Lock()
		teamsCache[path] = teams
		teamsCacheMu.Unlock()
		return teams, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Team), nil
}

func parseTeamsFile(path string) ([]model.Team, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open teams file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("loader: parse teams csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("loader: teams csv %s has no data rows", path)
	}

	teams := make([]model.Team, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < 4 {
			return nil, fmt.Errorf("loader: teams csv row %d has %d fields, need at least 4", i+2, len(row))
		}
		pot, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("loader: teams csv row %d: bad pot %q: %w", i+2, row[0], err)
		}
		t := model.Team{
			Pot:     pot,
			Abbrev:  row[1],
			Country: row[2],
			Name:    row[3],
		}
		if len(row) >= 5 && row[4] != "" {
			coeff, err := strconv.ParseFloat(row[4], 64)
			if err != nil {
				return nil, fmt.Errorf("loader: teams csv row %d: bad coefficient %q: %w", i+2, row[4], err)
			}
			t.Coefficient = coeff
		}
		teams = append(teams, t)
	}
	return teams, nil
}
