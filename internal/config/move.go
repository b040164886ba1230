package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
)

var ErrNoMatch = errors.New("no matching square")

// Move is a translation requested on the command line.
type Move struct {
	Name       string
	DX, DY, DZ float64
}

// ParseMove parses "name:dx,dy,dz".  The name may be abbreviated; it is
// matched against names exactly first, then fuzzily.
func ParseMove(spec string, names []string) (Move, error) {
	name, deltas, ok := strings.Cut(spec, ":")
	if !ok {
		return Move{}, fmt.Errorf("move %q: expected name:dx,dy,dz", spec)
	}

	parts := strings.Split(deltas, ",")
	if len(parts) != 3 {
		return Move{}, fmt.Errorf("move %q: expected 3 values, got %d", spec, len(parts))
	}
	var d [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return Move{}, fmt.Errorf("move %q: %w", spec, err)
		}
		d[i] = v
	}

	full, err := matchName(strings.TrimSpace(name), names)
	if err != nil {
		return Move{}, err
	}
	return Move{Name: full, DX: d[0], DY: d[1], DZ: d[2]}, nil
}

func matchName(name string, names []string) (string, error) {
	for _, n := range names {
		if n == name {
			return n, nil
		}
	}
	matches := fuzzy.Find(name, names)
	if len(matches) == 0 {
		return "", fmt.Errorf("%w for %q", ErrNoMatch, name)
	}
	return matches[0].Str, nil
}
