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
	"errors"
	"fmt"
)

var (
	// ErrDepthRange is matched by every *DepthError.
	ErrDepthRange = errors.New("depth out of range")

	// ErrInvalidScale is returned for non-positive pixel scales.
	ErrInvalidScale = errors.New("pixel scale must be positive")

	// ErrUnknownSquare is returned when a square name is not in the scene.
	ErrUnknownSquare = errors.New("unknown square")
)

// DepthError reports a rejected depth change.  The x and y part of the
// motion has been applied when this error is returned.
type DepthError struct {
	Square string  // name of the square
	Depth  float64 // depth the square kept
	Target float64 // rejected depth
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("%s cannot move there: depth %.1f is outside [%g, %g]",
		e.Square, e.Target, MinDepth, MaxDepth)
}

// Unwrap returns ErrDepthRange.
func (e *DepthError) Unwrap() error {
	return ErrDepthRange
}
