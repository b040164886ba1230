package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/zbuf"
	"seehuhn.de/go/zbuf/scenes"
)

// DefaultScale is used when a scene file does not set a scale.
const DefaultScale = 100

// ErrNoSquares is returned by Validate for a scene without squares.
var ErrNoSquares = errors.New("scene has no squares")

// Scene is the decoded contents of a scene file.
type Scene struct {
	Scale   int      `toml:"scale" yaml:"scale"`
	Squares []Square `toml:"square" yaml:"squares"`
}

// Square describes one square of a scene.  Move, if set, holds the
// translation dx, dy, dz applied after the square is created.
type Square struct {
	Name  string    `toml:"name" yaml:"name"`
	Color string    `toml:"color" yaml:"color"`
	Move  []float64 `toml:"move" yaml:"move"`
}

// Format is the syntax of a scene file.
type Format int

const (
	TOML Format = iota
	YAML
)

// FormatOf picks the format from the file extension.  Anything other than
// .yaml or .yml is read as TOML.
func FormatOf(fname string) Format {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return TOML
	}
}

// LoadFile reads and validates the scene file fname.
func LoadFile(fname string) (*Scene, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	sc, err := Parse(data, FormatOf(fname))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return sc, nil
}

// Parse decodes a scene in the given format, fills in defaults and
// validates the result.
func Parse(data []byte, format Format) (*Scene, error) {
	sc := &Scene{}
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, sc)
	default:
		_, err = toml.Decode(string(data), sc)
	}
	if err != nil {
		return nil, err
	}
	if sc.Scale == 0 {
		sc.Scale = DefaultScale
	}
	return sc, sc.Validate()
}

// Validate checks the scale, the square names and the colors.
func (sc *Scene) Validate() error {
	if sc.Scale < 0 {
		return fmt.Errorf("scale %d: %w", sc.Scale, zbuf.ErrInvalidScale)
	}
	if len(sc.Squares) == 0 {
		return ErrNoSquares
	}
	seen := make(map[string]bool)
	for i, sq := range sc.Squares {
		if sq.Name == "" {
			return fmt.Errorf("square %d has no name", i+1)
		}
		if seen[sq.Name] {
			return fmt.Errorf("duplicate square %q", sq.Name)
		}
		seen[sq.Name] = true
		if _, err := zbuf.Hex(sq.Color); err != nil {
			return fmt.Errorf("square %q: %w", sq.Name, err)
		}
		if sq.Move != nil && len(sq.Move) != 3 {
			return fmt.Errorf("square %q: move needs 3 values, got %d", sq.Name, len(sq.Move))
		}
	}
	return nil
}

// Case converts the scene file into a catalogue entry.
func (sc *Scene) Case(name string) scenes.Case {
	c := scenes.Case{Name: name, Scale: sc.Scale}
	for _, sq := range sc.Squares {
		spec := scenes.Square{Key: sq.Name[0], Name: sq.Name, Color: sq.Color}
		if len(sq.Move) == 3 {
			spec.Moves = []scenes.Move{{DX: sq.Move[0], DY: sq.Move[1], DZ: sq.Move[2]}}
		}
		c.Squares = append(c.Squares, spec)
	}
	return c
}

// Build creates the scene.  Rejected initial depth moves are returned as
// joined errors matching zbuf.ErrDepthRange, together with the scene.
func (sc *Scene) Build() (*zbuf.Scene, error) {
	return zbuf.BuildScene(sc.Case("file"))
}
