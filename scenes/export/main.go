// Command export resolves every catalogue scene and writes the visible
// points to JSON, for consumption by an external point renderer.
// Run from the go-zbuf module root directory.
package main

import (
	"encoding/json"
	"errors"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/zbuf"
	"seehuhn.de/go/zbuf/scenes"
)

func main() {
	var out struct {
		Scenes []jsonScene `json:"scenes"`
	}

	for _, category := range slices.Sorted(maps.Keys(scenes.All)) {
		for _, tc := range scenes.All[category] {
			js, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.Scenes = append(out.Scenes, js)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/points.json")
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

type jsonScene struct {
	Name      string       `json:"name"`
	Scale     int          `json:"scale"`
	Report    string       `json:"report"`
	Positions []float64    `json:"positions"`
	Colors    [][4]float64 `json:"colors"`
}

func toJSON(category string, tc scenes.Case) (jsonScene, error) {
	s, err := zbuf.BuildScene(tc)
	if s == nil {
		return jsonScene{}, err
	}
	if err != nil && !errors.Is(err, zbuf.ErrDepthRange) {
		return jsonScene{}, err
	}
	s.Resolve()

	buf := s.Buffer()
	js := jsonScene{
		Name:      category + "_" + tc.Name,
		Scale:     buf.Scale(),
		Report:    s.Report(),
		Positions: slices.Clone(buf.Positions()),
		Colors:    make([][4]float64, buf.Len()),
	}
	for i, c := range buf.Colors() {
		js.Colors[i] = [4]float64{c.R, c.G, c.B, c.A}
	}
	return js, nil
}
