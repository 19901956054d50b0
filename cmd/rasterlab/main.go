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

// Command rasterlab runs one of the rasterization algorithms and shows
// the result: a trace of the arithmetic on standard output, and
// optionally the marked grid as PNG or PDF and the points as JSON.
//
// Usage:
//
//	rasterlab -alg bresenham_line -x1 5 -y1 5 -x2 15 -y2 12 -png line.png
//	rasterlab -alg bresenham_circle -xc 20 -yc 15 -r 8 -pdf circle.pdf
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"seehuhn.de/go/rasterlab"
	"seehuhn.de/go/rasterlab/grid"
	"seehuhn.de/go/rasterlab/trace"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "rasterlab:", err)
		os.Exit(1)
	}
}

type options struct {
	alg     string
	params  rasterlab.Params
	grid    grid.Grid
	pngOut  string
	pdfOut  string
	jsonOut string
	limit   int
	quiet   bool
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{grid: *grid.Default()}
	line, circle := rasterlab.DefaultLine, rasterlab.DefaultCircle

	fs := flag.NewFlagSet("rasterlab", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	// Integers are given in decimal only, so "0x1f" or "1_000" are
	// rejected.
	intVar := func(p *int, name string, value int, usage string) {
		*p = value
		fs.Func(name, fmt.Sprintf("%s (default %d)", usage, value), func(s string) error {
			v, err := strconv.Atoi(s)
			if err != nil {
				return errors.New("not a decimal integer")
			}
			*p = v
			return nil
		})
	}

	fs.StringVar(&o.alg, "alg", rasterlab.AlgStep.String(),
		"algorithm: step, dda, bresenham_line or bresenham_circle")
	intVar(&o.params.X1, "x1", line.X1, "x coordinate of the start point")
	intVar(&o.params.Y1, "y1", line.Y1, "y coordinate of the start point")
	intVar(&o.params.X2, "x2", line.X2, "x coordinate of the end point")
	intVar(&o.params.Y2, "y2", line.Y2, "y coordinate of the end point")
	intVar(&o.params.XC, "xc", circle.XC, "x coordinate of the circle center")
	intVar(&o.params.YC, "yc", circle.YC, "y coordinate of the circle center")
	intVar(&o.params.R, "r", circle.R, "circle radius")
	intVar(&o.grid.Width, "width", o.grid.Width, "grid width in cells")
	intVar(&o.grid.Height, "height", o.grid.Height, "grid height in cells")
	intVar(&o.grid.CellSize, "cell", o.grid.CellSize, "cell size in pixels")
	fs.StringVar(&o.pngOut, "png", "", "write the grid as a PNG `file`")
	fs.StringVar(&o.pdfOut, "pdf", "", "write the grid as a PDF `file`")
	fs.StringVar(&o.jsonOut, "json", "", "write the points as JSON to `file`")
	intVar(&o.limit, "limit", trace.DefaultLimit, "number of derivation steps to show, -1 for all")
	fs.BoolVar(&o.quiet, "q", false, "do not print the trace")
	fs.BoolVar(&o.verbose, "v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stderr)
			fs.Usage()
		}
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if o.params.R < 0 {
		return nil, fmt.Errorf("invalid radius %d: must not be negative", o.params.R)
	}
	if o.grid.Width <= 0 || o.grid.Height <= 0 || o.grid.CellSize <= 0 {
		return nil, fmt.Errorf("invalid grid %dx%d with cell size %d",
			o.grid.Width, o.grid.Height, o.grid.CellSize)
	}
	return o, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	rasterlab.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer rasterlab.SetLogger(nil)

	alg, err := rasterlab.ParseAlgorithm(o.alg)
	if err != nil {
		return err
	}

	start := time.Now()
	points := rasterlab.Run(alg, o.params)
	elapsed := time.Since(start)
	rasterlab.Logger().Info("rasterized", "alg", alg, "points", len(points), "elapsed", elapsed)

	// Everything is rendered before any file is touched, so that
	// nothing is written if one of the outputs fails.
	scene := grid.NewScene(alg, o.params, points)
	var pngData, jsonData, report bytes.Buffer
	if o.pngOut != "" {
		if err := o.grid.WritePNG(&pngData, scene); err != nil {
			return err
		}
	}
	if o.jsonOut != "" {
		if err := writeJSON(&jsonData, alg, o.params, points); err != nil {
			return err
		}
	}
	if !o.quiet {
		opt := &trace.Options{Limit: o.limit, Elapsed: elapsed}
		if err := trace.Report(&report, alg, o.params, points, opt); err != nil {
			return err
		}
	}

	var outs []output
	if o.pdfOut != "" {
		outs = append(outs, output{o.pdfOut, func(fname string) error {
			return o.grid.WritePDF(fname, scene)
		}})
	}
	if o.pngOut != "" {
		outs = append(outs, output{o.pngOut, func(fname string) error {
			return os.WriteFile(fname, pngData.Bytes(), 0644)
		}})
	}
	if o.jsonOut != "" {
		outs = append(outs, output{o.jsonOut, func(fname string) error {
			return os.WriteFile(fname, jsonData.Bytes(), 0644)
		}})
	}
	if err := writeAll(outs); err != nil {
		return err
	}

	_, err = stdout.Write(report.Bytes())
	return err
}

// output is a file to be written by writeAll.
type output struct {
	name  string
	write func(fname string) error
}

// writeAll writes every output to a temporary file next to its target,
// and moves the files into place once all of them have been written.
// If any output fails to render, no target file is touched.
func writeAll(outs []output) error {
	tmpNames := make([]string, 0, len(outs))
	defer func() {
		for _, tmp := range tmpNames {
			os.Remove(tmp)
		}
	}()

	for _, out := range outs {
		f, err := os.CreateTemp(filepath.Dir(out.name), "."+filepath.Base(out.name)+".*")
		if err != nil {
			return err
		}
		tmp := f.Name()
		tmpNames = append(tmpNames, tmp)
		if err := f.Close(); err != nil {
			return err
		}

		if err := out.write(tmp); err != nil {
			return err
		}
		if err := os.Chmod(tmp, 0644); err != nil {
			return err
		}
	}

	for i, out := range outs {
		if err := os.Rename(tmpNames[i], out.name); err != nil {
			return err
		}
		rasterlab.Logger().Debug("output written", "file", out.name)
	}
	return nil
}

type jsonResult struct {
	Algorithm string     `json:"algorithm"`
	Params    jsonParams `json:"params"`
	Points    [][2]int   `json:"points"`
}

type jsonParams struct {
	X1 *int `json:"x1,omitempty"`
	Y1 *int `json:"y1,omitempty"`
	X2 *int `json:"x2,omitempty"`
	Y2 *int `json:"y2,omitempty"`
	XC *int `json:"xc,omitempty"`
	YC *int `json:"yc,omitempty"`
	R  *int `json:"r,omitempty"`
}

func writeJSON(w io.Writer, alg rasterlab.Algorithm, p rasterlab.Params, points []image.Point) error {
	res := jsonResult{
		Algorithm: alg.String(),
		Points:    make([][2]int, len(points)),
	}
	if alg.IsCircle() {
		res.Params = jsonParams{XC: &p.XC, YC: &p.YC, R: &p.R}
	} else {
		res.Params = jsonParams{X1: &p.X1, Y1: &p.Y1, X2: &p.X2, Y2: &p.Y2}
	}
	for i, pt := range points {
		res.Points[i] = [2]int{pt.X, pt.Y}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encoding points: %w", err)
	}
	return nil
}
