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

var circleCases = []TestCase{
	circle("default", 20, 15, 8,
		pt(20, 7), pt(19, 7), pt(21, 7), pt(18, 7), pt(22, 7),
		pt(17, 8), pt(23, 8), pt(16, 9), pt(24, 9), pt(15, 10), pt(25, 10),
		pt(14, 11), pt(26, 11), pt(13, 12), pt(27, 12),
		pt(12, 13), pt(28, 13), pt(12, 14), pt(28, 14), pt(12, 15), pt(28, 15),
		pt(12, 16), pt(28, 16), pt(12, 17), pt(28, 17),
		pt(13, 18), pt(27, 18), pt(14, 19), pt(26, 19), pt(15, 20), pt(25, 20),
		pt(16, 21), pt(24, 21), pt(17, 22), pt(23, 22),
		pt(18, 23), pt(19, 23), pt(20, 23), pt(21, 23), pt(22, 23)),
	circle("unit", 5, 5, 1,
		pt(5, 4), pt(4, 5), pt(6, 5), pt(5, 6)),
	circle("radius_two", 10, 10, 2,
		pt(9, 8), pt(10, 8), pt(11, 8),
		pt(8, 9), pt(12, 9), pt(8, 10), pt(12, 10), pt(8, 11), pt(12, 11),
		pt(9, 12), pt(10, 12), pt(11, 12)),
	circle("clipped", 2, 3, 6),
	circle("large", 20, 15, 14),
}
