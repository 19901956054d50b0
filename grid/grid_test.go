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

package grid

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/rasterlab"
)

func TestVisible(t *testing.T) {
	g := &Grid{Width: 4, Height: 3, CellSize: 10, Margin: 5}
	in := []image.Point{image.Pt(0, 0), image.Pt(-1, 2), image.Pt(3, 2), image.Pt(4, 0), image.Pt(2, 3), image.Pt(1, 1)}
	require.Equal(t, []image.Point{image.Pt(0, 0), image.Pt(3, 2), image.Pt(1, 1)}, g.Visible(in))
	require.Empty(t, g.Visible(nil))
}

func TestGeometry(t *testing.T) {
	g := Default()
	w, h := g.ImageSize()
	require.Equal(t, 900, w)
	require.Equal(t, 700, h)

	require.Equal(t, rect.Rect{LLx: 91, LLy: 111, URx: 109, URy: 129}, g.CellRect(image.Pt(2, 3)))
	require.Equal(t, rect.Rect{LLx: 50, LLy: 50, URx: 850, URy: 650}, g.GridRect())
}

func TestNewScene(t *testing.T) {
	line := NewScene(rasterlab.AlgDDA, rasterlab.DefaultLine, nil)
	require.Equal(t, image.Pt(5, 5), *line.Start)
	require.Equal(t, image.Pt(15, 12), *line.End)

	circle := NewScene(rasterlab.AlgBresenhamCircle, rasterlab.DefaultCircle, nil)
	require.Nil(t, circle.Start)
	require.Nil(t, circle.End)
}

func TestCellsDropsInvisible(t *testing.T) {
	g := Default()
	s := NewScene(rasterlab.AlgBresenhamLine,
		rasterlab.Params{X1: -3, Y1: 0, X2: 2, Y2: 0},
		rasterlab.BresenhamLine(-3, 0, 2, 0))

	cells, dropped := g.cells(s)
	require.Equal(t, 3, dropped)
	// (0,0) (1,0) (2,0), then the end marker; the start is off-grid
	require.Len(t, cells, 4)
	require.Equal(t, cell{pos: image.Pt(2, 0), kind: cellEnd}, cells[3])

	var drawn []image.Point
	for _, c := range cells {
		if c.kind == cellPoint {
			drawn = append(drawn, c.pos)
		}
	}
	require.Equal(t, g.Visible(s.Points), drawn)
}

func TestImage(t *testing.T) {
	g := Default()
	p := rasterlab.Params{X1: 0, Y1: 0, X2: 3, Y2: 0}
	img := g.Image(NewScene(rasterlab.AlgBresenhamLine, p, rasterlab.Run(rasterlab.AlgBresenhamLine, p)))

	center := func(x, y int) image.Point {
		return image.Pt(g.Margin+x*g.CellSize+g.CellSize/2, g.Margin+y*g.CellSize+g.CellSize/2)
	}
	at := func(p image.Point) any { return img.RGBAAt(p.X, p.Y) }

	require.Equal(t, ColorStart, at(center(0, 0)))
	require.Equal(t, ColorPoint, at(center(1, 0)))
	require.Equal(t, ColorPoint, at(center(2, 0)))
	require.Equal(t, ColorEnd, at(center(3, 0)))
	require.Equal(t, ColorBackground, at(center(4, 0)))
	require.Equal(t, ColorBackground, at(center(10, 10)))

	// vertical grid line between cells 2 and 3 of row 5
	require.Equal(t, ColorGridLine, at(image.Pt(g.Margin+3*g.CellSize, center(0, 5).Y)))
}

func TestWritePNG(t *testing.T) {
	g := &Grid{Width: 10, Height: 8, CellSize: 8, Margin: 30}
	p := rasterlab.Params{XC: 4, YC: 4, R: 3}
	s := NewScene(rasterlab.AlgBresenhamCircle, p, rasterlab.Run(rasterlab.AlgBresenhamCircle, p))

	buf := &bytes.Buffer{}
	require.NoError(t, g.WritePNG(buf, s))

	img, err := png.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 140, 124), img.Bounds())

	r, gr, b, _ := img.At(30+4*8+4, 30+1*8+4).RGBA()
	require.Equal(t, [3]uint32{0, 0, 0xffff}, [3]uint32{r, gr, b})
}

func TestWritePDF(t *testing.T) {
	g := Default()
	fname := filepath.Join(t.TempDir(), "line.pdf")
	p := rasterlab.DefaultLine
	s := NewScene(rasterlab.AlgStep, p, rasterlab.Run(rasterlab.AlgStep, p))

	require.NoError(t, g.WritePDF(fname, s))

	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF-1.7")))
}

func TestWritePDFBadPath(t *testing.T) {
	g := Default()
	fname := filepath.Join(t.TempDir(), "missing", "out.pdf")
	err := g.WritePDF(fname, &Scene{})
	require.Error(t, err)
}

func BenchmarkImage(b *testing.B) {
	g := Default()
	p := rasterlab.DefaultCircle
	s := NewScene(rasterlab.AlgBresenhamCircle, p, rasterlab.Run(rasterlab.AlgBresenhamCircle, p))
	for b.Loop() {
		g.Image(s)
	}
}
