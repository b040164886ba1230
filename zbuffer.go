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
	"context"
	"io"
	"log/slog"
	"strings"
)

// Sentinel marks a depth grid cell that no square has written.
const Sentinel = -1.0

// ZBuffer resolves the visibility of overlapping squares.
//
// The visible area [-1, 1]×[-1, 1] is divided into a grid of
// (2·scale)×(2·scale) cells.  Each call to [ZBuffer.Resolve] recomputes the
// depth of every cell from scratch and records the visible cells as a list
// of points.  Internal buffers grow as needed but never shrink, so that
// repeated passes over the same scene do not allocate.
//
// A ZBuffer is not safe for concurrent use.
type ZBuffer struct {
	// scale is the number of pixels per unit of object space
	scale int

	// size is the grid width and height, 2·scale
	size int

	// depth holds one value per grid cell in row-major order, indexed by
	// y*size + x.  Unwritten cells hold Sentinel.
	depth []float64

	// positions holds x, y pairs of emitted points, in object space
	positions []float64

	// colors holds one color per emitted point
	colors []RGBA
}

// New allocates a z-buffer for the given pixel scale.
// The scale must be positive; typically it is half the width of the
// output surface.
func New(scale int) (*ZBuffer, error) {
	z := &ZBuffer{}
	if err := z.Configure(scale); err != nil {
		return nil, err
	}
	return z, nil
}

// Configure sets the pixel scale and resizes the depth grid.  All cells are
// reset to Sentinel and the output lists are cleared.
func (z *ZBuffer) Configure(scale int) error {
	if scale <= 0 {
		return ErrInvalidScale
	}
	z.scale = scale
	z.size = 2 * scale
	n := z.size * z.size
	if cap(z.depth) < n {
		z.depth = make([]float64, n)
	}
	z.depth = z.depth[:n]
	z.clear()
	return nil
}

// Scale returns the number of pixels per unit of object space.
func (z *ZBuffer) Scale() int { return z.scale }

// Size returns the width and height of the depth grid.
func (z *ZBuffer) Size() int { return z.size }

// DepthAt returns the depth stored in grid cell (x, y), or Sentinel if no
// square covers the cell.  Cells outside the grid report Sentinel.
func (z *ZBuffer) DepthAt(x, y int) float64 {
	if x < 0 || x >= z.size || y < 0 || y >= z.size {
		return Sentinel
	}
	return z.depth[y*z.size+x]
}

// Positions returns the flat list of x, y pairs of the visible points
// found by the last Resolve, in object space.
// The slice is only valid until the next call to Resolve or Configure.
func (z *ZBuffer) Positions() []float64 { return z.positions }

// Colors returns one color for each point in Positions.
// The slice is only valid until the next call to Resolve or Configure.
func (z *ZBuffer) Colors() []RGBA { return z.colors }

// Len returns the number of points emitted by the last Resolve.
func (z *ZBuffer) Len() int { return len(z.colors) }

// clear resets all grid cells to Sentinel and empties the output lists,
// preserving their capacity.
func (z *ZBuffer) clear() {
	for i := range z.depth {
		z.depth[i] = Sentinel
	}
	z.positions = z.positions[:0]
	z.colors = z.colors[:0]
}

// Resolve runs one visibility pass over model.
//
// For every square, every grid cell inside its closed pixel bounding box is
// compared against the depth grid.  The cell is emitted as a visible point
// if it is still unwritten, or if the square is strictly nearer than the
// current occupant.  On equal depth the earlier square keeps the cell.
// The final color of each cell is that of the nearest covering square,
// independent of the order of model.
//
// Parts of a square outside the grid are clipped.
func (z *ZBuffer) Resolve(model []*Square) {
	z.clear()

	for _, m := range model {
		// Closed bounding box in pixel coordinates
		x1 := ToPixel(m.XMin(), z.scale)
		x2 := ToPixel(m.XMax(), z.scale)
		y1 := ToPixel(m.YMin(), z.scale)
		y2 := ToPixel(m.YMax(), z.scale)

		// Clip to the grid
		x1 = max(x1, 0)
		y1 = max(y1, 0)
		x2 = min(x2, z.size-1)
		y2 = min(y2, z.size-1)

		d := m.Depth()
		for y := y1; y <= y2; y++ {
			row := z.depth[y*z.size : (y+1)*z.size]
			for x := x1; x <= x2; x++ {
				if row[x] == Sentinel || d < row[x] {
					z.positions = append(z.positions, ToObject(x, z.scale), ToObject(y, z.scale))
					z.colors = append(z.colors, m.Color())
					row[x] = d
				}
			}
		}
	}

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("resolve pass",
			"squares", len(model),
			"grid", z.size,
			"points", z.Len())
	}
}

// WriteReport writes one depth line per square to w, in model order.
func (z *ZBuffer) WriteReport(w io.Writer, model []*Square) error {
	for _, m := range model {
		if _, err := io.WriteString(w, m.Report()+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Report returns the depth lines of all squares in model order.
func (z *ZBuffer) Report(model []*Square) string {
	var b strings.Builder
	_ = z.WriteReport(&b, model)
	return b.String()
}
