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
	"io"
)

// Scene is one rendering session: a fixed, ordered set of squares and the
// z-buffer which resolves them.
//
// The squares are owned by the caller that created them; the scene only
// holds references.  After every change the caller runs [Scene.Resolve]
// or [Scene.Render] again, there is no incremental update.
type Scene struct {
	model []*Square
	buf   *ZBuffer
}

// NewScene creates a scene with the given pixel scale and squares.
// The order of squares fixes the order of reports.
func NewScene(scale int, squares ...*Square) (*Scene, error) {
	buf, err := New(scale)
	if err != nil {
		return nil, err
	}
	return &Scene{model: squares, buf: buf}, nil
}

// DemoScene returns a scene with a red, a blue and a green square.  The
// red square is moved right, down and back; the green square is moved left,
// up and forward, so that all three overlap at different depths.
func DemoScene(scale int) (*Scene, error) {
	red := NewSquare("Red Square", Red)
	blue := NewSquare("Blue Square", Blue)
	green := NewSquare("Green Square", Green)

	// neither move can leave the depth range
	_ = red.Translate(0.3, -0.3, 0.5)
	_ = green.Translate(-0.3, 0.3, -0.5)

	return NewScene(scale, red, blue, green)
}

// Model returns the squares of the scene in order.
func (s *Scene) Model() []*Square { return s.model }

// Buffer returns the z-buffer of the scene.
func (s *Scene) Buffer() *ZBuffer { return s.buf }

// Lookup returns the square with the given name.
func (s *Scene) Lookup(name string) (*Square, error) {
	for _, m := range s.model {
		if m.Name() == name {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownSquare, name)
}

// Move translates the named square.  A rejected depth change is logged and
// returned as a *DepthError; the x and y motion is applied regardless.
func (s *Scene) Move(name string, dx, dy, dz float64) error {
	m, err := s.Lookup(name)
	if err != nil {
		return err
	}
	err = m.Translate(dx, dy, dz)
	var depthErr *DepthError
	if errors.As(err, &depthErr) {
		Logger().Warn("motion rejected",
			"square", depthErr.Square,
			"depth", depthErr.Depth,
			"target", depthErr.Target)
	}
	return err
}

// Resolve runs a visibility pass over all squares.
func (s *Scene) Resolve() {
	s.buf.Resolve(s.model)
}

// Render runs a visibility pass and hands the visible points to surf.
func (s *Scene) Render(surf Surface) error {
	s.Resolve()
	return surf.DrawPoints(s.buf.Positions(), s.buf.Colors())
}

// Report returns the depth lines of all squares.
func (s *Scene) Report() string {
	return s.buf.Report(s.model)
}

// WriteReport writes the depth lines of all squares to w.
func (s *Scene) WriteReport(w io.Writer) error {
	return s.buf.WriteReport(w, s.model)
}
