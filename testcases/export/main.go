// Command export writes the contour test scenarios to JSON, so that
// results can be cross-checked against other contouring tools.
// Run from the go-contour module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/contour/testcases"
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
	Name      string      `json:"name"`
	Cols      int         `json:"cols"`
	Rows      int         `json:"rows"`
	Values    [][]float64 `json:"values"`
	Level     float64     `json:"level"`
	Close     string      `json:"close,omitempty"`
	Triangles bool        `json:"triangles,omitempty"`
	Paths     *int        `json:"paths,omitempty"`
	Closed    *int        `json:"closed,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		Rows:      len(tc.Values),
		Values:    tc.Values,
		Level:     tc.Level,
		Triangles: tc.Triangles,
	}
	if len(tc.Values) > 0 {
		jtc.Cols = len(tc.Values[0])
	}

	switch tc.Close {
	case testcases.CloseAbove:
		jtc.Close = "above"
	case testcases.CloseBelow:
		jtc.Close = "below"
	}

	// negative counts mean "not checked" and are left out
	if tc.Paths >= 0 {
		jtc.Paths = &tc.Paths
	}
	if tc.Closed >= 0 {
		jtc.Closed = &tc.Closed
	}
	return jtc
}
