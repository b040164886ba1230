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

// Command genpdf writes a depth map PDF for every catalogue scene.
package main

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/zbuf"
	"seehuhn.de/go/zbuf/scenes"
)

const outDir = "testdata/depthmap"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(scenes.All)) {
		for _, tc := range scenes.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(outDir, name+".pdf")

			s, err := zbuf.BuildScene(tc)
			if s == nil || (err != nil && !errors.Is(err, zbuf.ErrDepthRange)) {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := zbuf.WriteDepthPDF(pdfPath, s); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}
