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

import "seehuhn.de/go/rasterlab"

// These cases contrast round-half-to-even (step interpolation) with
// int(v + 0.5) (DDA).
var roundingCases = []TestCase{
	line("half_step", rasterlab.AlgStep, 0, 0, 1, 2,
		pt(0, 0), pt(0, 1), pt(1, 2)),
	line("half_dda", rasterlab.AlgDDA, 0, 0, 1, 2,
		pt(0, 0), pt(1, 1), pt(1, 2)),
	line("half_y_step", rasterlab.AlgStep, 2, 3, 8, 6,
		pt(2, 3), pt(3, 4), pt(4, 4), pt(5, 4), pt(6, 5), pt(7, 6), pt(8, 6)),
	line("half_y_dda", rasterlab.AlgDDA, 2, 3, 8, 6,
		pt(2, 3), pt(3, 4), pt(4, 4), pt(5, 5), pt(6, 5), pt(7, 6), pt(8, 6)),
	line("negative_step", rasterlab.AlgStep, 0, 0, -1, -2,
		pt(0, 0), pt(0, -1), pt(-1, -2)),
	line("negative_dda", rasterlab.AlgDDA, 0, 0, -1, -2,
		pt(0, 0), pt(0, 0), pt(0, -1)),
}
