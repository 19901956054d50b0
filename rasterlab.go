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

// Package rasterlab implements four classic rasterization algorithms on an
// integer pixel grid: step interpolation, the digital differential analyzer
// (DDA), Bresenham's line algorithm and Bresenham's circle algorithm.
//
// All functions are pure. Each call returns a freshly allocated slice of
// grid points and keeps no state between calls.
//
// The packages below this one consume these functions: package trace
// re-derives the arithmetic of each algorithm for a textual report, and
// package grid draws the resulting cells as a PNG image or a PDF page.
package rasterlab

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
