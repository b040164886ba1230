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

package zbuf

import (
	"fmt"
	"math/big"
	"strconv"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Depth limits for squares.  Lower depth values are nearer to the viewer.
const (
	MinDepth     = 0.0
	MaxDepth     = 5.0
	DefaultDepth = 2.0
)

// reportWidth is the minimum width of the bracketed name in a report line.
const reportWidth = 16

// Square is an axis-aligned quad with a fixed name and color.
//
// Squares are only changed through [Square.Translate].  A Square is not
// safe for concurrent use.
type Square struct {
	name  string
	color RGBA

	// corners in object space, counter-clockwise from the lower left
	corners [4]vec.Vec2

	// bounds is the bounding box of corners, kept up to date by Translate
	bounds rect.Rect

	depth float64
}

// NewSquare returns a unit square centered on the origin, at depth
// [DefaultDepth].
func NewSquare(name string, c RGBA) *Square {
	return &Square{
		name:  name,
		color: c,
		corners: [4]vec.Vec2{
			{X: -0.5, Y: -0.5},
			{X: 0.5, Y: -0.5},
			{X: 0.5, Y: 0.5},
			{X: -0.5, Y: 0.5},
		},
		bounds: rect.Rect{LLx: -0.5, LLy: -0.5, URx: 0.5, URy: 0.5},
		depth:  DefaultDepth,
	}
}

// Name returns the display name of the square.
func (s *Square) Name() string { return s.name }

// Color returns the fill color of the square.
func (s *Square) Color() RGBA { return s.color }

// Depth returns the current depth of the square.
func (s *Square) Depth() float64 { return s.depth }

// Corners returns a copy of the corner points.
func (s *Square) Corners() [4]vec.Vec2 { return s.corners }

// Bounds returns the bounding box of the corners.
func (s *Square) Bounds() rect.Rect { return s.bounds }

func (s *Square) XMin() float64 { return s.bounds.LLx }
func (s *Square) XMax() float64 { return s.bounds.URx }
func (s *Square) YMin() float64 { return s.bounds.LLy }
func (s *Square) YMax() float64 { return s.bounds.URy }

// Translate moves the square by dx, dy in object space and by dz in depth.
//
// The x and y motion is always applied.  If the new depth would leave
// the range [MinDepth, MaxDepth], the depth is left unchanged and a
// *DepthError is returned.
func (s *Square) Translate(dx, dy, dz float64) error {
	d := vec.Vec2{X: dx, Y: dy}
	for i := range s.corners {
		s.corners[i] = s.corners[i].Add(d)
	}

	var err error
	newDepth := s.depth + dz
	if MinDepth <= newDepth && newDepth <= MaxDepth {
		s.depth = newDepth
	} else {
		err = &DepthError{Square: s.name, Depth: s.depth, Target: newDepth}
	}

	s.updateBounds()
	return err
}

// updateBounds recomputes the bounding box, seeded from corner 0.
func (s *Square) updateBounds() {
	b := rect.Rect{
		LLx: s.corners[0].X, URx: s.corners[0].X,
		LLy: s.corners[0].Y, URy: s.corners[0].Y,
	}
	for _, c := range s.corners[1:] {
		b.LLx = min(b.LLx, c.X)
		b.URx = max(b.URx, c.X)
		b.LLy = min(b.LLy, c.Y)
		b.URy = max(b.URy, c.Y)
	}
	s.bounds = b
}

// Report returns a one-line summary of the square's depth, for example
// " [Red Square]     depth = 2.5".
func (s *Square) Report() string {
	return fmt.Sprintf("%-*s depth = %s", reportWidth, " ["+s.name+"]", formatTenths(s.depth))
}

// formatTenths formats v with one decimal place.  The decision is made on
// the exact binary value of |v|, and exact ties round away from zero: 1.25
// gives "1.3", while 0.35, which is stored slightly below 0.35, gives "0.3".
func formatTenths(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	r := new(big.Rat)
	if r.SetFloat64(v) == nil {
		return sign + strconv.FormatFloat(v, 'f', 1, 64)
	}
	r.Mul(r, big.NewRat(10, 1))

	// q = floor(10·v), rem in [0, den)
	den := r.Denom()
	q, rem := new(big.Int).DivMod(r.Num(), den, new(big.Int))
	if rem.Lsh(rem, 1).Cmp(den) >= 0 {
		q.Add(q, big.NewInt(1))
	}

	digits := q.String()
	if len(digits) < 2 {
		digits = "0" + digits
	}
	return sign + digits[:len(digits)-1] + "." + digits[len(digits)-1:]
}
