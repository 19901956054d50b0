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

var lineCases = []TestCase{
	line("default_step", rasterlab.AlgStep, 5, 5, 15, 12,
		pt(5, 5), pt(6, 6), pt(7, 6), pt(8, 7), pt(9, 8), pt(10, 8),
		pt(11, 9), pt(12, 10), pt(13, 11), pt(14, 11), pt(15, 12)),
	line("default_dda", rasterlab.AlgDDA, 5, 5, 15, 12,
		pt(5, 5), pt(6, 6), pt(7, 6), pt(8, 7), pt(9, 8), pt(10, 9),
		pt(11, 9), pt(12, 10), pt(13, 11), pt(14, 11), pt(15, 12)),
	line("default_bresenham", rasterlab.AlgBresenhamLine, 5, 5, 15, 12,
		pt(5, 5), pt(6, 6), pt(7, 6), pt(8, 7), pt(9, 8), pt(10, 8),
		pt(11, 9), pt(12, 10), pt(13, 11), pt(14, 11), pt(15, 12)),
	line("backwards_bresenham", rasterlab.AlgBresenhamLine, 12, 20, 2, 14,
		pt(12, 20), pt(11, 19), pt(10, 19), pt(9, 18), pt(8, 18), pt(7, 17),
		pt(6, 16), pt(5, 16), pt(4, 15), pt(3, 15), pt(2, 14)),
	line("steep_bresenham", rasterlab.AlgBresenhamLine, 3, 10, 7, 2,
		pt(3, 10), pt(3, 9), pt(4, 8), pt(4, 7), pt(5, 6), pt(5, 5),
		pt(6, 4), pt(6, 3), pt(7, 2)),
	line("diagonal_bresenham", rasterlab.AlgBresenhamLine, 0, 0, 6, 6,
		pt(0, 0), pt(1, 1), pt(2, 2), pt(3, 3), pt(4, 4), pt(5, 5), pt(6, 6)),
	line("antidiagonal_step", rasterlab.AlgStep, 30, 2, 22, 9,
		pt(30, 2), pt(29, 3), pt(28, 4), pt(27, 5), pt(26, 6), pt(25, 6),
		pt(24, 7), pt(23, 8), pt(22, 9)),
	line("fractions_step", rasterlab.AlgStep, 0, 0, 3, 7,
		pt(0, 0), pt(0, 1), pt(1, 2), pt(1, 3), pt(2, 4), pt(2, 5), pt(3, 6), pt(3, 7)),
	line("vertical_bresenham", rasterlab.AlgBresenhamLine, 3, 3, 3, 8,
		pt(3, 3), pt(3, 4), pt(3, 5), pt(3, 6), pt(3, 7), pt(3, 8)),
	line("horizontal_dda", rasterlab.AlgDDA, 9, 4, 4, 4,
		pt(9, 4), pt(8, 4), pt(7, 4), pt(6, 4), pt(5, 4), pt(4, 4)),
}
