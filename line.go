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
	"image"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Step rasterizes the line segment from (x1, y1) to (x2, y2) by naive
// step interpolation.
//
// The segment is sampled at max(|dx|, |dy|)+1 equally spaced positions.
// The real-valued position is advanced by a constant increment and each
// sample is rounded to the nearest integer, with ties going to the even
// neighbour.
func Step(x1, y1, x2, y2 int) []image.Point {
	return interpolate(x1, y1, x2, y2, roundHalfEven)
}

// DDA rasterizes the line segment from (x1, y1) to (x2, y2) with the
// digital differential analyzer.
//
// The control flow is the same as for [Step], but each coordinate v is
// converted using int(v + 0.5), i.e. by truncating v + 0.5 towards zero.
// For half-integer and for negative positions this gives different points
// than [Step].
func DDA(x1, y1, x2, y2 int) []image.Point {
	return interpolate(x1, y1, x2, y2, truncPlusHalf)
}

func interpolate(x1, y1, x2, y2 int, toGrid func(float64) int) []image.Point {
	dx := x2 - x1
	dy := y2 - y1
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return []image.Point{{X: x1, Y: y1}}
	}

	inc := vec.Vec2{
		X: float64(dx) / float64(steps),
		Y: float64(dy) / float64(steps),
	}
	pos := vec.Vec2{X: float64(x1), Y: float64(y1)}

	points := make([]image.Point, 0, steps+1)
	for range steps + 1 {
		points = append(points, image.Point{X: toGrid(pos.X), Y: toGrid(pos.Y)})
		pos = pos.Add(inc)
	}
	return points
}

// roundHalfEven is the rounding rule of [Step].
func roundHalfEven(v float64) int {
	return int(math.RoundToEven(v))
}

// truncPlusHalf is the rounding rule of [DDA].
// Go's float to int conversion truncates towards zero.
func truncPlusHalf(v float64) int {
	return int(v + 0.5)
}

// BresenhamLine rasterizes the line segment from (x1, y1) to (x2, y2)
// using integer arithmetic only.
//
// The result starts at (x1, y1), ends at (x2, y2), and consecutive points
// are 8-connected.
func BresenhamLine(x1, y1, x2, y2 int) []image.Point {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	// A zero delta gives -1 here.  This is harmless, since the error
	// conditions below never advance an axis with zero delta.
	sx := -1
	if x1 < x2 {
		sx = 1
	}
	sy := -1
	if y1 < y2 {
		sy = 1
	}

	points := make([]image.Point, 0, max(dx, dy)+1)
	err := dx - dy
	x, y := x1, y1
	for {
		points = append(points, image.Point{X: x, Y: y})
		if x == x2 && y == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
	return points
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
