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
	"math"

	"seehuhn.de/go/geom/matrix"
)

// PixelMatrix returns the affine map from object space, where the visible
// area is [-1, 1]×[-1, 1], to pixel space, where it is [0, 2s]×[0, 2s].
func PixelMatrix(scale int) matrix.Matrix {
	s := float64(scale)
	return matrix.Matrix{s, 0, 0, s, s, s}
}

// ToPixel converts an object-space coordinate to an integer pixel
// coordinate, computing round((1+c)·scale).  Halves are rounded up, also
// for negative values.
func ToPixel(c float64, scale int) int {
	return int(math.Floor((1+c)*float64(scale) + 0.5))
}

// ToObject converts a pixel coordinate back to object space.
func ToObject(p, scale int) float64 {
	return float64(p)/float64(scale) - 1
}
