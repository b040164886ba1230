// Package zbuf resolves the visibility of overlapping axis-aligned squares
// with a depth buffer kept in host memory.
//
// A [Scene] holds an ordered list of [Square] values and a [ZBuffer].  Each
// resolve pass clears the depth grid, scans every square's pixel bounding
// box and records the cells where the square is nearer than everything seen
// so far.  The result is a flat list of point positions with one color per
// point, ready to be handed to a [Surface].
package zbuf

//go:generate go run ./scenes/export
//go:generate go run ./scenes/genpdf

import (
	"errors"
	"fmt"

	"seehuhn.de/go/zbuf/scenes"
)

// BuildScene creates the scene described by a catalogue entry.
//
// Rejected depth moves do not stop construction: the scene is always
// returned, together with the joined move errors.
func BuildScene(c scenes.Case) (*Scene, error) {
	model := make([]*Square, 0, len(c.Squares))
	var errs []error
	for _, spec := range c.Squares {
		col, err := Hex(spec.Color)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", spec.Name, err)
		}
		sq := NewSquare(spec.Name, col)
		for _, m := range spec.Moves {
			if err := sq.Translate(m.DX, m.DY, m.DZ); err != nil {
				errs = append(errs, err)
			}
		}
		model = append(model, sq)
	}

	s, err := NewScene(c.Scale, model...)
	if err != nil {
		return nil, err
	}
	return s, errors.Join(errs...)
}
