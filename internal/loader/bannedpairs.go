package loader

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// countryPair is an unordered pair of country codes, canonicalized so
// that {A,B} and {B,A} hash to the same key. Modeled on the teacher's
// dedup-set pattern, but with a typed key instead of a formatted string.
type countryPair struct {
	a, b string
}

func newCountryPair(a, b string) countryPair {
	if a > b {
		a, b = b, a
	}
	return countryPair{a, b}
}

// BannedPairs is a set of country pairs that may never be drawn against
// each other, built once at load time and read concurrently by however
// many DFS workers are running.
type BannedPairs struct {
	set map[countryPair]struct{}
}

// Contains reports whether a and b (in either order) are banned.
func (b *BannedPairs) Contains(a, c string) bool {
	if b == nil {
		return false
	}
	_, ok := b.set[newCountryPair(a, c)]
	return ok
}

// LoadBannedPairs reads a banned-country-pairs file: each non-blank
// line is "COUNTRY1-COUNTRY2", order irrelevant.
func LoadBannedPairs(path string) (*BannedPairs, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return &BannedPairs{set: map[countryPair]struct{}{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loader: open banned pairs file: %w", err)
	}
	defer f.Close()

	b := &BannedPairs{set: map[countryPair]struct{}{}}
	scanner := bufio.NewScanner(f)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "-", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("loader: banned pairs line %d: expected COUNTRY1-COUNTRY2, got %q", lineNo, line)
		}
		b.set[newCountryPair(parts[0], parts[1])] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: read banned pairs file: %w", err)
	}
	return b, nil
}
