// seehuhn.de/go/zbuf - a z-buffer for axis-aligned squares
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package scenes is a catalogue of small square scenes, used by the tests
// and by the export commands.
package scenes

// Case defines a single scene.
type Case struct {
	Name    string   // lowercase a-z and _ only
	Scale   int      // pixel scale, the grid is 2·Scale cells wide
	Squares []Square // in model order

	// Want is the expected frame, one string per grid row with the top
	// row (largest y) first.  '.' marks an empty cell, any other byte the
	// Key of the visible square.  Nil means the frame is not spelled out.
	Want []string
}

// Square describes one square of a scene.
type Square struct {
	Key   byte   // single letter used in Want
	Name  string // display name
	Color string // hex color, for example "#f00"
	Moves []Move // applied in order after construction
}

// Move is one call to Translate.
type Move struct {
	DX, DY, DZ float64
}

// mv is a helper to create a Move.
func mv(dx, dy, dz float64) Move {
	return Move{DX: dx, DY: dy, DZ: dz}
}
