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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

// DepthMapCellSize is the size of one grid cell in a depth map PDF, in
// PDF points.
const DepthMapCellSize = 8.0

// WriteDepthPDF resolves the scene and writes its depth grid as a one-page
// PDF file.  Unwritten cells are black; written cells are gray, brighter
// for nearer squares.  The outline of every square is drawn on top.
func WriteDepthPDF(fname string, s *Scene) error {
	s.Resolve()
	buf := s.Buffer()
	size := buf.Size()

	paper := &pdf.Rectangle{
		URx: float64(size) * DepthMapCellSize,
		URy: float64(size) * DepthMapCellSize,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, paper.URx, paper.URy)
	page.Fill()

	// From here on, one unit is one grid cell.  PDF and grid both have
	// the y axis pointing up.
	page.Transform(matrix.Matrix{DepthMapCellSize, 0, 0, DepthMapCellSize, 0, 0})

	current := -1.0
	for y := range size {
		for x := range size {
			d := buf.DepthAt(x, y)
			if d == Sentinel {
				continue
			}
			if d != current {
				page.SetFillColor(color.DeviceGray(depthGray(d)))
				current = d
			}
			page.Rectangle(float64(x), float64(y), 1, 1)
			page.Fill()
		}
	}

	// Outlines are given in object space.
	page.Transform(PixelMatrix(buf.Scale()))
	page.SetStrokeColor(color.DeviceGray(0.5))
	page.SetLineWidth(0.25 / float64(buf.Scale()))
	for _, m := range s.Model() {
		outline := m.Outline()
		coordIdx := 0
		for _, cmd := range outline.Cmds {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(outline.Coords[coordIdx].X, outline.Coords[coordIdx].Y)
				coordIdx++
			case path.CmdLineTo:
				page.LineTo(outline.Coords[coordIdx].X, outline.Coords[coordIdx].Y)
				coordIdx++
			case path.CmdClose:
				page.ClosePath()
			}
		}
		page.Stroke()
	}

	return page.Close()
}

// depthGray maps a depth to a gray level: MinDepth is white and MaxDepth
// is a dark gray, which stays distinguishable from the black background.
func depthGray(d float64) float64 {
	t := (d - MinDepth) / (MaxDepth - MinDepth)
	return 1 - 0.8*t
}
