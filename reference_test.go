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

package rasterlab_test

import (
	"image"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"seehuhn.de/go/rasterlab"
	"seehuhn.de/go/rasterlab/testcases"
)

func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				got := rasterlab.Run(tc.Alg, tc.Params)
				if tc.Alg.IsCircle() {
					checkCircle(t, tc, got)
				} else {
					checkLine(t, tc, got)
				}
				if tc.Want == nil {
					return
				}
				if tc.Alg.IsCircle() {
					require.ElementsMatch(t, tc.Want, got)
				} else {
					require.Equal(t, tc.Want, got)
				}
			})
		}
	}
}

func checkLine(t *testing.T, tc testcases.TestCase, got []image.Point) {
	t.Helper()
	d := tc.Params.End().Sub(tc.Params.Start())
	require.Len(t, got, max(abs(d.X), abs(d.Y))+1)

	if tc.Alg == rasterlab.AlgDDA {
		// int(v + 0.5) does not reproduce negative end points
		return
	}
	require.Equal(t, tc.Params.Start(), got[0])
	require.Equal(t, tc.Params.End(), got[len(got)-1])
}

func checkCircle(t *testing.T, tc testcases.TestCase, got []image.Point) {
	t.Helper()
	seen := make(map[image.Point]bool)
	for _, p := range got {
		require.False(t, seen[p], "duplicate point %v", p)
		seen[p] = true
	}
	c := tc.Params.Center()
	for _, p := range got {
		q := p.Sub(c)
		require.True(t, seen[c.Add(image.Pt(q.Y, q.X))], "%v has no diagonal mirror", p)
		require.True(t, seen[c.Add(image.Pt(-q.X, q.Y))], "%v has no vertical mirror", p)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
