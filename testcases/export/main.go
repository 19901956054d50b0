// Command export writes the test cases, together with the points computed
// for them, to JSON.  The file can be checked against other
// implementations of the same algorithms.
// Run from the rasterlab module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/rasterlab"
	"seehuhn.de/go/rasterlab/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string   `json:"name"`
	Algorithm string   `json:"algorithm"`
	Params    []int    `json:"params"`
	Points    [][2]int `json:"points"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	p := tc.Params
	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		Algorithm: tc.Alg.String(),
	}
	if tc.Alg.IsCircle() {
		jtc.Params = []int{p.XC, p.YC, p.R}
	} else {
		jtc.Params = []int{p.X1, p.Y1, p.X2, p.Y2}
	}
	for _, pt := range rasterlab.Run(tc.Alg, p) {
		jtc.Points = append(jtc.Points, [2]int{pt.X, pt.Y})
	}
	return jtc
}
