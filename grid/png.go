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
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/rasterlab"
)

// Colours used for the PNG output.
var (
	ColorBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorGridLine   = color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
	ColorAxis       = color.RGBA{A: 0xff}
	ColorPoint      = color.RGBA{B: 0xff, A: 0xff}
	ColorStart      = color.RGBA{G: 0x80, A: 0xff}
	ColorEnd        = color.RGBA{R: 0xff, A: 0xff}
)

// labelStep is the distance, in cells, between axis labels.
const labelStep = 5

func (k cellKind) color() color.Color {
	switch k {
	case cellStart:
		return ColorStart
	case cellEnd:
		return ColorEnd
	default:
		return ColorPoint
	}
}

// Image renders the scene s.
func (g *Grid) Image(s *Scene) *image.RGBA {
	w, h := g.ImageSize()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(ColorBackground), image.Point{}, draw.Src)

	z := vector.NewRasterizer(w, h)
	fill := func(r rect.Rect, c color.Color) {
		z.Reset(w, h)
		z.MoveTo(float32(r.LLx), float32(r.LLy))
		z.LineTo(float32(r.URx), float32(r.LLy))
		z.LineTo(float32(r.URx), float32(r.URy))
		z.LineTo(float32(r.LLx), float32(r.URy))
		z.ClosePath()
		z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	}

	area := g.GridRect()
	for i := 0; i <= g.Width; i++ {
		x := area.LLx + float64(i*g.CellSize)
		fill(rect.Rect{LLx: x, LLy: area.LLy, URx: x + 1, URy: area.URy}, ColorGridLine)
	}
	for i := 0; i <= g.Height; i++ {
		y := area.LLy + float64(i*g.CellSize)
		fill(rect.Rect{LLx: area.LLx, LLy: y, URx: area.URx, URy: y + 1}, ColorGridLine)
	}
	fill(rect.Rect{LLx: area.LLx - 1, LLy: area.LLy - 1, URx: area.LLx + 1, URy: area.URy}, ColorAxis)
	fill(rect.Rect{LLx: area.LLx - 1, LLy: area.LLy - 1, URx: area.URx, URy: area.LLy + 1}, ColorAxis)

	g.drawLabels(img)

	cells, dropped := g.cells(s)
	for _, c := range cells {
		fill(g.CellRect(c.pos), c.kind.color())
	}
	rasterlab.Logger().Debug("grid image rendered",
		"width", w, "height", h, "cells", len(cells), "dropped", dropped)

	return img
}

// drawLabels writes the cell indices along the axes, and the axis names.
func (g *Grid) drawLabels(img draw.Image) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(ColorAxis),
		Face: basicfont.Face7x13,
	}
	ascent := basicfont.Face7x13.Metrics().Ascent.Round()

	// text centered horizontally at x, vertically at y
	text := func(s string, x, y int) {
		w := d.MeasureString(s).Round()
		d.Dot = fixed.P(x-w/2, y+ascent/2)
		d.DrawString(s)
	}

	area := g.GridRect()
	top, left := int(area.LLy), int(area.LLx)
	for i := 0; i <= g.Width; i += labelStep {
		text(strconv.Itoa(i), left+i*g.CellSize, top-10)
	}
	for i := 0; i <= g.Height; i += labelStep {
		text(strconv.Itoa(i), left-15, top+i*g.CellSize)
	}
	text("X", int(area.URx)+20, top)
	text("Y", left, int(area.URy)+20)
}

// WritePNG renders the scene s and writes it to w in PNG format.
func (g *Grid) WritePNG(w io.Writer, s *Scene) error {
	if err := png.Encode(w, g.Image(s)); err != nil {
		return fmt.Errorf("encoding grid image: %w", err)
	}
	return nil
}
