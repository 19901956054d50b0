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

package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"seehuhn.de/go/rasterlab"
)

func TestRunDefault(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(nil, &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	require.Contains(t, out, "Algorithm: Step-by-step interpolation\n")
	require.Contains(t, out, "Parameters: from (5, 5) to (15, 12)\n")
	require.Contains(t, out, "Number of points: 11\n")
	require.Empty(t, stderr.String())
}

func TestRunCircleOutputs(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "c.png")
	pdfPath := filepath.Join(dir, "c.pdf")
	jsonPath := filepath.Join(dir, "c.json")

	var stdout, stderr bytes.Buffer
	err := run([]string{
		"-alg", "bresenham_circle", "-xc", "3", "-yc", "4", "-r", "0",
		"-png", pngPath, "-pdf", pdfPath, "-json", jsonPath, "-v",
	}, &stdout, &stderr)
	require.NoError(t, err)

	require.Contains(t, stdout.String(), "Number of points: 1\n")
	require.Contains(t, stderr.String(), "output written")

	for _, name := range []string{pngPath, pdfPath} {
		info, err := os.Stat(name)
		require.NoError(t, err)
		require.Positive(t, info.Size())
	}

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var res struct {
		Algorithm string         `json:"algorithm"`
		Params    map[string]int `json:"params"`
		Points    [][2]int       `json:"points"`
	}
	require.NoError(t, json.Unmarshal(data, &res))
	require.Equal(t, "bresenham_circle", res.Algorithm)
	require.Equal(t, map[string]int{"xc": 3, "yc": 4, "r": 0}, res.Params)
	require.Equal(t, [][2]int{{3, 4}}, res.Points)
}

func TestRunQuiet(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-alg", "dda", "-q"}, &stdout, &stderr)
	require.NoError(t, err)
	require.Empty(t, stdout.String())
}

func TestRunErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		msg  string
	}{
		{"non_integer", []string{"-x1", "abc"}, `invalid value "abc" for flag -x1`},
		{"unknown_alg", []string{"-alg", "wu"}, `unknown algorithm "wu"`},
		{"negative_radius", []string{"-alg", "bresenham_circle", "-r", "-2"}, "invalid radius -2"},
		{"bad_grid", []string{"-width", "0"}, "invalid grid"},
		{"extra_arg", []string{"extra"}, `unexpected argument "extra"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(tc.args, &stdout, &stderr)
			require.Error(t, err)
			require.ErrorContains(t, err, tc.msg)
			require.Empty(t, stderr.String())
			require.Empty(t, stdout.String())
		})
	}
}

func TestRunNoPartialOutput(t *testing.T) {
	dir := t.TempDir()
	pngPath := filepath.Join(dir, "line.png")
	pdfPath := filepath.Join(dir, "missing", "line.pdf")

	var stdout, stderr bytes.Buffer
	err := run([]string{"-png", pngPath, "-pdf", pdfPath}, &stdout, &stderr)
	require.Error(t, err)
	require.Empty(t, stdout.String())
	require.NoFileExists(t, pngPath)
}

func TestRunNoPartialOutputAfterPDF(t *testing.T) {
	dir := t.TempDir()
	pdfPath := filepath.Join(dir, "ok.pdf")
	pngPath := filepath.Join(dir, "missing", "x.png")

	var stdout, stderr bytes.Buffer
	err := run([]string{"-pdf", pdfPath, "-png", pngPath}, &stdout, &stderr)
	require.Error(t, err)
	require.Empty(t, stdout.String())
	require.NoFileExists(t, pdfPath)

	// no temporary files are left behind either
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestRunReplacesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "points.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte("old"), 0644))

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-q", "-json", jsonPath}, &stdout, &stderr))

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	require.Contains(t, string(data), `"algorithm": "step"`)

	info, err := os.Stat(jsonPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestRunIntegerSyntax(t *testing.T) {
	for _, arg := range []string{"0x1f", "0b101", "1_000", "1.5", ""} {
		t.Run(arg, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run([]string{"-x1", arg}, &stdout, &stderr)
			require.ErrorContains(t, err, "not a decimal integer")
			require.Empty(t, stderr.String())
		})
	}

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-x1", "-3", "-limit", "-1"}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "Parameters: from (-3, 5) to (15, 12)\n")
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-h"}, &stdout, &stderr)
	require.ErrorIs(t, err, flag.ErrHelp)
	require.Contains(t, stderr.String(), "-alg")
	require.Contains(t, stderr.String(), "(default 5)")
}

func TestRunResetsLogger(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-v", "-q"}, &stdout, &stderr))
	require.False(t, rasterlab.Logger().Handler().Enabled(t.Context(), 0))
}
