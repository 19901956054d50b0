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

package testcases

import (
	"image"

	"seehuhn.de/go/rasterlab"
)

// TestCase defines a single rasterization test.
type TestCase struct {
	Name   string              // lowercase a-z, 0-9 and _ only
	Alg    rasterlab.Algorithm // algorithm to run
	Params rasterlab.Params    // integer inputs

	// Want, if non-nil, is the expected output.  For the circle algorithm
	// the order of Want is irrelevant.
	Want []image.Point
}

// line builds a test case for a line algorithm.
func line(name string, alg rasterlab.Algorithm, x1, y1, x2, y2 int, want ...image.Point) TestCase {
	return TestCase{
		Name:   name,
		Alg:    alg,
		Params: rasterlab.Params{X1: x1, Y1: y1, X2: x2, Y2: y2},
		Want:   want,
	}
}

// circle builds a test case for the circle algorithm.
func circle(name string, xc, yc, r int, want ...image.Point) TestCase {
	return TestCase{
		Name:   name,
		Alg:    rasterlab.AlgBresenhamCircle,
		Params: rasterlab.Params{XC: xc, YC: yc, R: r},
		Want:   want,
	}
}

// pt is a helper to create an image.Point from x, y coordinates.
func pt(x, y int) image.Point {
	return image.Point{X: x, Y: y}
}
