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
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Surface consumes the output of a resolve pass.
//
// Positions holds x, y pairs in object space and colors holds one entry
// per pair.  Implementations must not retain the slices after DrawPoints
// returns.
type Surface interface {
	DrawPoints(positions []float64, colors []RGBA) error
}

// ImageSurface draws points into an in-memory image with one pixel per
// grid cell.  The y axis of object space points up, so grid row 0 is the
// bottom row of the image.
type ImageSurface struct {
	scale      int
	img        *image.NRGBA
	Background RGBA
}

// NewImageSurface returns a surface of (2·scale)×(2·scale) pixels with a
// white background.
func NewImageSurface(scale int) (*ImageSurface, error) {
	if scale <= 0 {
		return nil, ErrInvalidScale
	}
	size := 2 * scale
	return &ImageSurface{
		scale:      scale,
		img:        image.NewNRGBA(image.Rect(0, 0, size, size)),
		Background: White,
	}, nil
}

// DrawPoints clears the image to the background color and draws every
// point.  Later points overwrite earlier ones at the same location.
func (s *ImageSurface) DrawPoints(positions []float64, colors []RGBA) error {
	if len(positions) != 2*len(colors) {
		return fmt.Errorf("%d coordinates for %d colors", len(positions), len(colors))
	}

	bg := image.NewUniform(s.Background.NRGBA())
	draw.Draw(s.img, s.img.Bounds(), bg, image.Point{}, draw.Src)

	size := s.img.Bounds().Dy()
	for i, c := range colors {
		x := ToPixel(positions[2*i], s.scale)
		y := ToPixel(positions[2*i+1], s.scale)
		s.img.SetNRGBA(x, size-1-y, c.NRGBA())
	}
	return nil
}

// Image returns the drawn image.  The image is reused by the next call to
// DrawPoints.
func (s *ImageSurface) Image() *image.NRGBA {
	return s.img
}

// Scaled returns a copy of the image enlarged by an integer factor, using
// nearest-neighbour sampling so that grid cells stay sharp.
func (s *ImageSurface) Scaled(factor int) *image.NRGBA {
	if factor <= 1 {
		factor = 1
	}
	b := s.img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), s.img, b, draw.Src, nil)
	return dst
}

// WritePNG encodes the image, enlarged by factor, as PNG.
func (s *ImageSurface) WritePNG(w io.Writer, factor int) error {
	return png.Encode(w, s.Scaled(factor))
}
