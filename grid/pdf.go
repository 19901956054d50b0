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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/rasterlab"
)

// Gray levels used for the PDF output.  PDF pages are printed, so the
// markers are distinguished by brightness instead of by hue.
const (
	grayGridLine = 0.85
	grayAxis     = 0
	grayPoint    = 0.45
	grayStart    = 0
	grayEnd      = 0.7
)

func (k cellKind) gray() float64 {
	switch k {
	case cellStart:
		return grayStart
	case cellEnd:
		return grayEnd
	default:
		return grayPoint
	}
}

// WritePDF renders the scene s as a one-page PDF file.
// One pixel of the PNG output corresponds to one PDF point.
func (g *Grid) WritePDF(fname string, s *Scene) error {
	w, h := g.ImageSize()
	paper := &pdf.Rectangle{
		URx: float64(w),
		URy: float64(h),
	}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("creating %s: %w", fname, err)
	}

	// PDF origin is bottom-left; the grid uses top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(h)})

	area := g.GridRect()
	page.SetLineWidth(1)
	page.SetStrokeColor(color.DeviceGray(grayGridLine))
	for i := 0; i <= g.Width; i++ {
		x := area.LLx + float64(i*g.CellSize)
		page.MoveTo(x, area.LLy)
		page.LineTo(x, area.URy)
	}
	for i := 0; i <= g.Height; i++ {
		y := area.LLy + float64(i*g.CellSize)
		page.MoveTo(area.LLx, y)
		page.LineTo(area.URx, y)
	}
	page.Stroke()

	page.SetLineWidth(2)
	page.SetStrokeColor(color.DeviceGray(grayAxis))
	page.MoveTo(area.LLx, area.URy)
	page.LineTo(area.LLx, area.LLy)
	page.LineTo(area.URx, area.LLy)
	page.Stroke()

	cells, dropped := g.cells(s)
	for _, c := range cells {
		r := g.CellRect(c.pos)
		page.SetFillColor(color.DeviceGray(c.kind.gray()))
		page.Rectangle(r.LLx, r.LLy, r.URx-r.LLx, r.URy-r.LLy)
		page.Fill()
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	rasterlab.Logger().Debug("grid PDF written",
		"file", fname, "cells", len(cells), "dropped", dropped)
	return nil
}
