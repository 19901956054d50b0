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

// Package trace re-derives the intermediate arithmetic of the algorithms
// in package rasterlab, for display next to the rasterized grid.
//
// The traces are computed independently of the rasterization functions,
// following the same steps, so that the rasterizers need no hooks.
package trace

import (
	"image"
	"iter"
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/rasterlab"
)

// Sample is one step of step interpolation or of the DDA.
type Sample struct {
	Pos   vec.Vec2    // real-valued position
	Point image.Point // grid point derived from Pos
}

// InterpolationTrace records the arithmetic of [rasterlab.Step] or
// [rasterlab.DDA].
type InterpolationTrace struct {
	Alg        rasterlab.Algorithm
	Start, End image.Point
	DX, DY     int
	Steps      int
	Inc        vec.Vec2 // per-step increment; zero if Steps == 0
	Samples    []Sample
}

// Interpolation traces the step interpolation (alg == AlgStep) or the DDA
// (any other alg) between (x1, y1) and (x2, y2).
func Interpolation(alg rasterlab.Algorithm, x1, y1, x2, y2 int) *InterpolationTrace {
	t := &InterpolationTrace{
		Alg:   alg,
		Start: image.Pt(x1, y1),
		End:   image.Pt(x2, y2),
		DX:    x2 - x1,
		DY:    y2 - y1,
	}
	t.Steps = max(iabs(t.DX), iabs(t.DY))
	if t.Steps == 0 {
		t.Samples = []Sample{{Pos: vec.Vec2{X: float64(x1), Y: float64(y1)}, Point: t.Start}}
		return t
	}

	t.Inc = vec.Vec2{
		X: float64(t.DX) / float64(t.Steps),
		Y: float64(t.DY) / float64(t.Steps),
	}
	pos := vec.Vec2{X: float64(x1), Y: float64(y1)}
	for range t.Steps + 1 {
		t.Samples = append(t.Samples, Sample{Pos: pos, Point: t.toGrid(pos)})
		pos = pos.Add(t.Inc)
	}
	return t
}

func (t *InterpolationTrace) toGrid(v vec.Vec2) image.Point {
	if t.Alg == rasterlab.AlgStep {
		return image.Pt(int(math.RoundToEven(v.X)), int(math.RoundToEven(v.Y)))
	}
	return image.Pt(int(v.X+0.5), int(v.Y+0.5))
}

// Points returns the grid points of all samples.
func (t *InterpolationTrace) Points() []image.Point {
	res := make([]image.Point, len(t.Samples))
	for i, s := range t.Samples {
		res[i] = s.Point
	}
	return res
}

// LineIteration is one pass through the loop of Bresenham's line
// algorithm.
type LineIteration struct {
	Point image.Point // point emitted by this iteration
	Err   int         // error term when the point was emitted
	E2    int         // 2*Err; unset for the final iteration
	StepX bool        // x advanced after this point
	StepY bool        // y advanced after this point
}

// LineTrace records the arithmetic of [rasterlab.BresenhamLine].
type LineTrace struct {
	Start, End image.Point
	DX, DY     int // absolute deltas
	SX, SY     int // step directions, -1 or 1
	Err0       int // initial error, DX - DY
	Iterations []LineIteration
}

// Line traces Bresenham's line algorithm from (x1, y1) to (x2, y2).
func Line(x1, y1, x2, y2 int) *LineTrace {
	t := &LineTrace{
		Start: image.Pt(x1, y1),
		End:   image.Pt(x2, y2),
		DX:    iabs(x2 - x1),
		DY:    iabs(y2 - y1),
		SX:    -1,
		SY:    -1,
	}
	if x1 < x2 {
		t.SX = 1
	}
	if y1 < y2 {
		t.SY = 1
	}
	t.Err0 = t.DX - t.DY

	err := t.Err0
	p := t.Start
	for {
		it := LineIteration{Point: p, Err: err}
		if p == t.End {
			t.Iterations = append(t.Iterations, it)
			break
		}

		it.E2 = 2 * err
		if it.E2 > -t.DY {
			err -= t.DY
			p.X += t.SX
			it.StepX = true
		}
		if it.E2 < t.DX {
			err += t.DX
			p.Y += t.SY
			it.StepY = true
		}
		t.Iterations = append(t.Iterations, it)
	}
	return t
}

// Points returns the points emitted by all iterations.
func (t *LineTrace) Points() []image.Point {
	res := make([]image.Point, len(t.Iterations))
	for i, it := range t.Iterations {
		res[i] = it.Point
	}
	return res
}

// CircleIteration is one step of the octant walk in Bresenham's circle
// algorithm.
type CircleIteration struct {
	X, Y int
	D    int  // decision variable before the update
	DecY bool // D > 0, so y is decremented after this step
}

// CircleSteps yields the octant walk for a circle of radius r, from
// (0, r) until y < x.
func CircleSteps(r int) iter.Seq[CircleIteration] {
	return func(yield func(CircleIteration) bool) {
		x, y := 0, r
		d := 3 - 2*r
		for y >= x {
			it := CircleIteration{X: x, Y: y, D: d, DecY: d > 0}
			if !yield(it) {
				return
			}
			x++
			if it.DecY {
				y--
				d += 4*(x-y) + 10
			} else {
				d += 4*x + 6
			}
		}
	}
}

// CircleTrace records the arithmetic of [rasterlab.BresenhamCircle].
type CircleTrace struct {
	Center     image.Point
	R          int
	D0         int // initial decision variable, 3 - 2r
	Iterations []CircleIteration
}

// Circle traces Bresenham's circle algorithm for center (xc, yc) and
// radius r.
func Circle(xc, yc, r int) *CircleTrace {
	t := &CircleTrace{
		Center: image.Pt(xc, yc),
		R:      r,
		D0:     3 - 2*r,
	}
	for it := range CircleSteps(r) {
		t.Iterations = append(t.Iterations, it)
	}
	return t
}

// Points returns the eight reflections of every iteration, including
// duplicates, in the order they are generated.
func (t *CircleTrace) Points() []image.Point {
	res := make([]image.Point, 0, 8*len(t.Iterations))
	c := t.Center
	for _, it := range t.Iterations {
		x, y := it.X, it.Y
		res = append(res,
			image.Pt(c.X+x, c.Y+y), image.Pt(c.X-x, c.Y+y),
			image.Pt(c.X+x, c.Y-y), image.Pt(c.X-x, c.Y-y),
			image.Pt(c.X+y, c.Y+x), image.Pt(c.X-y, c.Y+x),
			image.Pt(c.X+y, c.Y-x), image.Pt(c.X-y, c.Y-x),
		)
	}
	return res
}

func iabs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
