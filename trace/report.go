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

package trace

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"math"
	"strings"
	"time"

	"deedles.dev/xiter"
	"seehuhn.de/go/rasterlab"
)

// DefaultLimit is the number of derivation steps shown when
// [Options.Limit] is zero.
const DefaultLimit = 5

// Options controls the contents of a report.
type Options struct {
	// Limit is the maximum number of steps shown in the derivation.
	// Zero means DefaultLimit; a negative value shows all steps.
	Limit int

	// Elapsed, if positive, is reported as the computation time.
	Elapsed time.Duration
}

func (o *Options) limit() int {
	if o == nil || o.Limit == 0 {
		return DefaultLimit
	}
	if o.Limit < 0 {
		return math.MaxInt
	}
	return o.Limit
}

// Report writes a textual report for one rasterization: the algorithm and
// its parameters, the number of points produced, the first steps of the
// derivation and a legend for the grid colours.
//
// The derivation is recomputed from alg and p; points is only used for
// the point count.
func Report(w io.Writer, alg rasterlab.Algorithm, p rasterlab.Params, points []image.Point, opt *Options) error {
	buf := &bytes.Buffer{}
	limit := opt.limit()

	fmt.Fprintf(buf, "Algorithm: %s\n", alg.Title())
	if alg.IsCircle() {
		fmt.Fprintf(buf, "Parameters: center (%d, %d), radius %d\n", p.XC, p.YC, p.R)
	} else {
		fmt.Fprintf(buf, "Parameters: from (%d, %d) to (%d, %d)\n", p.X1, p.Y1, p.X2, p.Y2)
	}

	fmt.Fprintf(buf, "\nNumber of points: %d\n", len(points))
	if opt != nil && opt.Elapsed > 0 {
		us := float64(opt.Elapsed) / float64(time.Microsecond)
		fmt.Fprintf(buf, "Elapsed time: %.2f µs (%.4f ms)\n", us, us/1000)
	}

	buf.WriteString("\n--- Derivation ---\n")
	switch alg {
	case rasterlab.AlgStep, rasterlab.AlgDDA:
		writeInterpolation(buf, Interpolation(alg, p.X1, p.Y1, p.X2, p.Y2), limit)
	case rasterlab.AlgBresenhamLine:
		writeLine(buf, Line(p.X1, p.Y1, p.X2, p.Y2), limit)
	case rasterlab.AlgBresenhamCircle:
		writeCircle(buf, p.XC, p.YC, p.R, limit)
	}

	fmt.Fprintf(buf, "\n%s\n", strings.Repeat("=", 40))
	buf.WriteString("Legend:\n")
	buf.WriteString("* blue cells: rasterized points\n")
	if !alg.IsCircle() {
		buf.WriteString("* green cell: start point\n")
		buf.WriteString("* red cell: end point\n")
	}

	_, err := w.Write(buf.Bytes())
	return err
}

func writeInterpolation(buf *bytes.Buffer, t *InterpolationTrace, limit int) {
	fmt.Fprintf(buf, "dx = %d - %d = %d\n", t.End.X, t.Start.X, t.DX)
	fmt.Fprintf(buf, "dy = %d - %d = %d\n", t.End.Y, t.Start.Y, t.DY)
	fmt.Fprintf(buf, "steps = max(|%d|, |%d|) = %d\n", t.DX, t.DY, t.Steps)
	if t.Steps == 0 {
		return
	}

	fmt.Fprintf(buf, "x_increment = %d/%d = %.4f\n", t.DX, t.Steps, t.Inc.X)
	fmt.Fprintf(buf, "y_increment = %d/%d = %.4f\n\n", t.DY, t.Steps, t.Inc.Y)

	rule := "round half to even"
	if t.Alg != rasterlab.AlgStep {
		rule = "int(v + 0.5)"
	}
	fmt.Fprintf(buf, "First points (%s):\n", rule)
	for i, s := range t.Samples {
		if i >= limit {
			break
		}
		fmt.Fprintf(buf, "step %d: x=%.2f, y=%.2f -> (%d, %d)\n",
			i, s.Pos.X, s.Pos.Y, s.Point.X, s.Point.Y)
	}
}

func writeLine(buf *bytes.Buffer, t *LineTrace, limit int) {
	fmt.Fprintf(buf, "dx = |%d - %d| = %d\n", t.End.X, t.Start.X, t.DX)
	fmt.Fprintf(buf, "dy = |%d - %d| = %d\n", t.End.Y, t.Start.Y, t.DY)
	fmt.Fprintf(buf, "sx = %d, sy = %d\n", t.SX, t.SY)
	fmt.Fprintf(buf, "initial error: err = dx - dy = %d - %d = %d\n\n", t.DX, t.DY, t.Err0)

	buf.WriteString("First iterations:\n")
	for i, it := range t.Iterations {
		if i >= limit {
			break
		}
		fmt.Fprintf(buf, "step %d: (%d, %d), err=%d\n", i, it.Point.X, it.Point.Y, it.Err)
	}
}

func writeCircle(buf *bytes.Buffer, xc, yc, r, limit int) {
	fmt.Fprintf(buf, "Center: (%d, %d)\n", xc, yc)
	fmt.Fprintf(buf, "Radius: %d\n", r)
	fmt.Fprintf(buf, "initial decision parameter: d = 3 - 2*r = 3 - 2*%d = %d\n\n", r, 3-2*r)

	buf.WriteString("First iterations:\n")
	for i, it := range xiter.Enumerate(CircleSteps(r)) {
		if i >= limit {
			break
		}
		fmt.Fprintf(buf, "step %d: x=%d, y=%d, d=%d\n", i, it.X, it.Y, it.D)
		fmt.Fprintf(buf, "  -> 8 points: (%d±%d, %d±%d), (%d±%d, %d±%d)\n",
			xc, it.X, yc, it.Y, xc, it.Y, yc, it.X)
		if it.DecY {
			buf.WriteString("  d > 0: y--, d = d + 4*(x-y) + 10\n")
		} else {
			buf.WriteString("  d <= 0: d = d + 4*x + 6\n")
		}
	}
}
