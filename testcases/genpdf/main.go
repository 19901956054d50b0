// seehuhn.de/go/rasterlab - rasterization algorithms on a pixel grid
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

// Command genpdf renders every test case as a PDF worksheet and as a PNG
// image, for visual inspection.
package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/rasterlab"
	"seehuhn.de/go/rasterlab/grid"
	"seehuhn.de/go/rasterlab/testcases"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	g := grid.Default()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			points := rasterlab.Run(tc.Alg, tc.Params)
			scene := grid.NewScene(tc.Alg, tc.Params, points)

			pdfPath := filepath.Join(refDir, name+".pdf")
			if err := g.WritePDF(pdfPath, scene); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			pngPath := filepath.Join(refDir, name+".png")
			if err := writePNG(g, pngPath, scene); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func writePNG(g *grid.Grid, pngPath string, scene *grid.Scene) error {
	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := g.WritePNG(f, scene); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
