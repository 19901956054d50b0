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

package rasterlab

import (
	"errors"
	"fmt"
	"image"
)

// Algorithm identifies one of the rasterization algorithms in this package.
type Algorithm int

// These are the supported algorithms.
const (
	AlgStep Algorithm = iota
	AlgDDA
	AlgBresenhamLine
	AlgBresenhamCircle
)

// Algorithms lists all algorithms, in the order they are presented to users.
var Algorithms = []Algorithm{AlgStep, AlgDDA, AlgBresenhamLine, AlgBresenhamCircle}

// ErrUnknownAlgorithm is returned by [ParseAlgorithm] for unrecognised names.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

var algNames = map[Algorithm]string{
	AlgStep:            "step",
	AlgDDA:             "dda",
	AlgBresenhamLine:   "bresenham_line",
	AlgBresenhamCircle: "bresenham_circle",
}

var algTitles = map[Algorithm]string{
	AlgStep:            "Step-by-step interpolation",
	AlgDDA:             "Digital differential analyzer",
	AlgBresenhamLine:   "Bresenham (line)",
	AlgBresenhamCircle: "Bresenham (circle)",
}

// String returns the identifier used on the command line and in JSON
// output, for example "bresenham_line".
func (a Algorithm) String() string {
	if s, ok := algNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Title returns a human-readable name for a.
func (a Algorithm) Title() string {
	if s, ok := algTitles[a]; ok {
		return s
	}
	return a.String()
}

// IsCircle reports whether a takes a center and a radius instead of two
// end points.
func (a Algorithm) IsCircle() bool {
	return a == AlgBresenhamCircle
}

// ParseAlgorithm converts an identifier as returned by [Algorithm.String]
// back into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for _, a := range Algorithms {
		if algNames[a] == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownAlgorithm, name)
}

// Params holds the integer inputs of one rasterization call.
// Line algorithms use X1, Y1, X2, Y2; the circle algorithm uses
// XC, YC and R.
type Params struct {
	X1, Y1, X2, Y2 int
	XC, YC, R      int
}

// Start returns the first end point of a line.
func (p Params) Start() image.Point { return image.Point{X: p.X1, Y: p.Y1} }

// End returns the second end point of a line.
func (p Params) End() image.Point { return image.Point{X: p.X2, Y: p.Y2} }

// Center returns the center of a circle.
func (p Params) Center() image.Point { return image.Point{X: p.XC, Y: p.YC} }

// Default parameter values, as shown when the tool starts.
var (
	DefaultLine   = Params{X1: 5, Y1: 5, X2: 15, Y2: 12}
	DefaultCircle = Params{XC: 20, YC: 15, R: 8}
)

// Run applies the algorithm a to the parameters p.
// Unknown algorithms give no points.
func Run(a Algorithm, p Params) []image.Point {
	switch a {
	case AlgStep:
		return Step(p.X1, p.Y1, p.X2, p.Y2)
	case AlgDDA:
		return DDA(p.X1, p.Y1, p.X2, p.Y2)
	case AlgBresenhamLine:
		return BresenhamLine(p.X1, p.Y1, p.X2, p.Y2)
	case AlgBresenhamCircle:
		return BresenhamCircle(p.XC, p.YC, p.R)
	}
	return nil
}
