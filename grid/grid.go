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

// Package grid draws rasterized points as marked cells on a square grid.
//
// Points outside the grid are dropped without error.  The same picture
// can be written as a PNG image or as a single-page PDF worksheet.
package grid

import (
	"image"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/rasterlab"
)

// Grid describes the geometry of the drawing area.
type Grid struct {
	Width, Height int // number of cells
	CellSize      int // cell edge length in pixels
	Margin        int // space around the grid, in pixels
}

// Default returns the grid used by the interactive tool: 40×30 cells of
// 20 pixels, with a 50 pixel margin.
func Default() *Grid {
	return &Grid{
		Width:    40,
		Height:   30,
		CellSize: 20,
		Margin:   50,
	}
}

// Scene is the content drawn on a grid.
type Scene struct {
	Points []image.Point

	// Start and End, if non-nil, are highlighted.  They are used for the
	// end points of line algorithms.
	Start, End *image.Point
}

// NewScene returns the scene for the output of algorithm alg on
// parameters p.  For line algorithms the end points are marked.
func NewScene(alg rasterlab.Algorithm, p rasterlab.Params, points []image.Point) *Scene {
	s := &Scene{Points: points}
	if !alg.IsCircle() {
		start, end := p.Start(), p.End()
		s.Start = &start
		s.End = &end
	}
	return s
}

// Bounds returns the rectangle of valid cell coordinates.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, g.Width, g.Height)
}

// Contains reports whether p is a cell of the grid.
func (g *Grid) Contains(p image.Point) bool {
	return p.In(g.Bounds())
}

// Visible returns the points which lie on the grid, in their original
// order.
func (g *Grid) Visible(points []image.Point) []image.Point {
	res := make([]image.Point, 0, len(points))
	for _, p := range points {
		if g.Contains(p) {
			res = append(res, p)
		}
	}
	return res
}

// ImageSize returns the size of the rendered picture in pixels.
func (g *Grid) ImageSize() (w, h int) {
	return g.Width*g.CellSize + 2*g.Margin, g.Height*g.CellSize + 2*g.Margin
}

// CellRect returns the pixel area of cell p, inset by one pixel on each
// side so that the grid lines stay visible.  Y grows downwards.
func (g *Grid) CellRect(p image.Point) rect.Rect {
	x0 := float64(g.Margin + p.X*g.CellSize)
	y0 := float64(g.Margin + p.Y*g.CellSize)
	return rect.Rect{
		LLx: x0 + 1,
		LLy: y0 + 1,
		URx: x0 + float64(g.CellSize) - 1,
		URy: y0 + float64(g.CellSize) - 1,
	}
}

// GridRect returns the pixel area covered by the cells.
func (g *Grid) GridRect() rect.Rect {
	return rect.Rect{
		LLx: float64(g.Margin),
		LLy: float64(g.Margin),
		URx: float64(g.Margin + g.Width*g.CellSize),
		URy: float64(g.Margin + g.Height*g.CellSize),
	}
}

// cellKind says how a cell is painted.
type cellKind int

const (
	cellPoint cellKind = iota
	cellStart
	cellEnd
)

type cell struct {
	pos  image.Point
	kind cellKind
}

// cells lists the visible cells of s in painting order: the rasterized
// points first, then the start and end markers on top.
func (g *Grid) cells(s *Scene) (cells []cell, dropped int) {
	visible := g.Visible(s.Points)
	dropped = len(s.Points) - len(visible)
	for _, p := range visible {
		cells = append(cells, cell{pos: p, kind: cellPoint})
	}
	if s.Start != nil && g.Contains(*s.Start) {
		cells = append(cells, cell{pos: *s.Start, kind: cellStart})
	}
	if s.End != nil && g.Contains(*s.End) {
		cells = append(cells, cell{pos: *s.End, kind: cellEnd})
	}
	return cells, dropped
}
