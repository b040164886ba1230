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
	"image/color"
	"math"
	"strconv"
)

// RGBA is a color with red, green, blue and alpha channels.
// Each channel is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Predefined opaque colors.
var (
	Red   = RGBA{R: 1, A: 1}
	Green = RGBA{G: 1, A: 1}
	Blue  = RGBA{B: 1, A: 1}
	White = RGBA{R: 1, G: 1, B: 1, A: 1}
)

// RGB returns an opaque color.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Hex parses a color in one of the forms "RGB", "RGBA", "RRGGBB" or
// "RRGGBBAA", with an optional leading '#'.
func Hex(s string) (RGBA, error) {
	h := s
	if h != "" && h[0] == '#' {
		h = h[1:]
	}

	var digits int
	switch len(h) {
	case 3, 4:
		digits = 1
	case 6, 8:
		digits = 2
	default:
		return RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}

	ch := [4]float64{1, 1, 1, 1}
	for i := 0; i*digits < len(h); i++ {
		v, err := strconv.ParseUint(h[i*digits:(i+1)*digits], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("invalid hex color %q", s)
		}
		if digits == 1 {
			v *= 17
		}
		ch[i] = float64(v) / 255
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// NRGBA converts c to a non-premultiplied 8-bit color.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

// String returns c in the form "#rrggbbaa".
func (c RGBA) String() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func to8(v float64) uint8 {
	return uint8(math.Round(max(0, min(1, v)) * 255))
}
