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

var degenerateCases = []TestCase{
	line("point_step", rasterlab.AlgStep, 5, 5, 5, 5, pt(5, 5)),
	line("point_dda", rasterlab.AlgDDA, 5, 5, 5, 5, pt(5, 5)),
	line("point_bresenham", rasterlab.AlgBresenhamLine, 5, 5, 5, 5, pt(5, 5)),
	circle("zero_radius", 20, 15, 0, pt(20, 15)),
}
