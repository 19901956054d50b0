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
	"cmp"
	"image"
	"maps"
	"slices"
)

// BresenhamCircle rasterizes the circle with center (xc, yc) and radius r
// using the midpoint decision variable.
//
// One octant is walked and every computed point is reflected into all
// eight octants.  Points hit by more than one reflection are reported
// once.  The result is sorted by y and then by x, but callers should
// treat it as a set.
//
// A radius of zero gives the center point.  A negative radius gives no
// points.
func BresenhamCircle(xc, yc, r int) []image.Point {
	seen := make(map[image.Point]struct{})

	x, y := 0, r
	d := 3 - 2*r
	for y >= x {
		for _, p := range octants(xc, yc, x, y) {
			seen[p] = struct{}{}
		}

		x++
		if d > 0 {
			y--
			d += 4*(x-y) + 10
		} else {
			d += 4*x + 6
		}
	}

	return slices.SortedFunc(maps.Keys(seen), comparePoints)
}

// octants returns the eight reflections of (x, y) about (xc, yc).
func octants(xc, yc, x, y int) [8]image.Point {
	return [8]image.Point{
		{X: xc + x, Y: yc + y},
		{X: xc - x, Y: yc + y},
		{X: xc + x, Y: yc - y},
		{X: xc - x, Y: yc - y},
		{X: xc + y, Y: yc + x},
		{X: xc - y, Y: yc + x},
		{X: xc + y, Y: yc - x},
		{X: xc - y, Y: yc - x},
	}
}

func comparePoints(a, b image.Point) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}
