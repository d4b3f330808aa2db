// Package sceneparser validates the JSON scene-file grammar described in
// spec.md §6 and turns it into a *scene.Store.
//
// No library in the retrieval pack offers JSON schema validation (every
// JSON consumer in the pack — tomicz-llm-game-engine/internal/llm/*,
// TheMaslowsDilemma-sketchthis-studio/llm.go — decodes with stdlib
// encoding/json and hand-validates), so this package does the same: decode
// loosely with encoding/json, then walk the grammar by hand before handing
// typed tables to scene.NewStore for the semantic invariants.
package sceneparser

import (
	"encoding/json"
	"fmt"
	"math"

	"delilah/hicolor"
	"delilah/scene"
)

// wireFile mirrors spec.md §6's top-level JSON object. json.RawMessage
// lets Parse tell "field absent" apart from "field present but wrong
// type", which encoding/json's zero-value decoding would otherwise hide.
type wireFile struct {
	Vertex json.RawMessage `json:"vertex"`
	Scene  json.RawMessage `json:"scene"`
	Radius json.RawMessage `json:"radius"`
	PStyle json.RawMessage `json:"pstyle"`
	LStyle json.RawMessage `json:"lstyle"`
}

type wirePointStyle struct {
	Shape  string          `json:"shape"`
	Size   float64         `json:"size"`
	Stroke float64         `json:"stroke"`
	Fill   json.RawMessage `json:"fill"`
	Ink    json.RawMessage `json:"ink"`
}

type wireLineStyle struct {
	Width float64 `json:"width"`
	Color uint32  `json:"color"`
}

// parseError is a sentinel type so Parse's internal helpers can return the
// single human-readable message spec.md §6 specifies, capitalized with no
// trailing punctuation, without Parse needing to guess which helper failed.
type parseError string

func (e parseError) Error() string { return string(e) }

func fail(format string, args ...any) error {
	return parseError(fmt.Sprintf(format, args...))
}

// Parse validates raw as a scene file per spec.md §6 and returns the
// resulting Store. On any violation it returns the first error
// encountered; later violations never overwrite it.
func Parse(raw []byte) (*scene.Store, error) {
	var wf wireFile
	if err := json.Unmarshal(raw, &wf); err != nil {
		return nil, fail("Not a valid JSON file")
	}

	vertices, err := parseVertices(wf.Vertex)
	if err != nil {
		return nil, err
	}
	rawObjects, err := parseSceneObjects(wf.Scene)
	if err != nil {
		return nil, err
	}
	radii, err := parseRadii(wf.Radius)
	if err != nil {
		return nil, err
	}
	pointStyles, err := parsePointStyles(wf.PStyle)
	if err != nil {
		return nil, err
	}
	lineStyles, err := parseLineStyles(wf.LStyle)
	if err != nil {
		return nil, err
	}

	st, err := scene.NewStore(vertices, radii, rawObjects, pointStyles, lineStyles)
	if err != nil {
		return nil, err
	}
	return st, nil
}

func parseVertices(raw json.RawMessage) ([]scene.Vec3, error) {
	if raw == nil {
		return nil, fail("Scene file is missing the vertex array")
	}
	var flat []float64
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, fail("Vertex array must be a list of numbers")
	}
	if len(flat) == 0 || len(flat)%3 != 0 {
		return nil, fail("Vertex array length must be a positive multiple of three")
	}
	if len(flat)/3 > 65535 {
		return nil, fail("Too many vertices")
	}
	out := make([]scene.Vec3, len(flat)/3)
	for i := range out {
		x, y, z := flat[i*3], flat[i*3+1], flat[i*3+2]
		if !finite(x) || !finite(y) || !finite(z) {
			return nil, fail("Vertex coordinates must be finite")
		}
		out[i] = scene.Vec3{X: x, Y: y, Z: z}
	}
	return out, nil
}

func parseSceneObjects(raw json.RawMessage) ([]scene.RawObject, error) {
	if raw == nil {
		return nil, fail("Scene file is missing the scene array")
	}
	var flat []float64
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, fail("Scene array must be a list of integers")
	}
	if len(flat) == 0 || len(flat)%5 != 0 {
		return nil, fail("Scene array length must be a positive multiple of five")
	}
	if len(flat)/5 > 65535 {
		return nil, fail("Too many scene objects")
	}
	out := make([]scene.RawObject, len(flat)/5)
	for i := range out {
		vals := [5]uint16{}
		for j := 0; j < 5; j++ {
			v := flat[i*5+j]
			u, err := toUint16(v)
			if err != nil {
				return nil, fail("Scene object fields must be integers in [0, 65535]")
			}
			vals[j] = u
		}
		out[i] = scene.RawObject{A: vals[0], B: vals[1], C: vals[2], D: vals[3], E: vals[4]}
	}
	return out, nil
}

func parseRadii(raw json.RawMessage) ([]float64, error) {
	if raw == nil {
		return nil, nil
	}
	var out []float64
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fail("Radius array must be a list of numbers")
	}
	if len(out) > 65535 {
		return nil, fail("Too many radii")
	}
	for _, r := range out {
		if !finite(r) || r <= 0 {
			return nil, fail("Radii must be finite and positive")
		}
	}
	return out, nil
}

func parsePointStyles(raw json.RawMessage) ([]scene.PointStyleIn, error) {
	if raw == nil {
		return nil, nil
	}
	var wps []wirePointStyle
	if err := json.Unmarshal(raw, &wps); err != nil {
		return nil, fail("Point style array is malformed")
	}
	if len(wps) > 65535 {
		return nil, fail("Too many point styles")
	}
	out := make([]scene.PointStyleIn, len(wps))
	for i, w := range wps {
		if len(w.Shape) != 1 {
			return nil, fail("Point style shape must be a single character")
		}
		in := scene.PointStyleIn{Shape: scene.PointShape(w.Shape[0]), Size: w.Size, Stroke: w.Stroke}
		if w.Fill != nil {
			c, err := parseColor(w.Fill)
			if err != nil {
				return nil, err
			}
			in.Fill, in.HasFill = c, true
		}
		if w.Ink != nil {
			c, err := parseColor(w.Ink)
			if err != nil {
				return nil, err
			}
			in.Ink, in.HasInk = c, true
		}
		out[i] = in
	}
	return out, nil
}

func parseLineStyles(raw json.RawMessage) ([]scene.LineStyle, error) {
	if raw == nil {
		return nil, nil
	}
	var wls []wireLineStyle
	if err := json.Unmarshal(raw, &wls); err != nil {
		return nil, fail("Line style array is malformed")
	}
	if len(wls) > 65535 {
		return nil, fail("Too many line styles")
	}
	out := make([]scene.LineStyle, len(wls))
	for i, w := range wls {
		if w.Width <= 0 || !finite(w.Width) {
			return nil, fail("Line style width must be positive")
		}
		if w.Color > 0x7FFF {
			return nil, fail("Line style color must fit in 15 bits")
		}
		out[i] = scene.LineStyle{Width: w.Width, Color: hicolor.Packed(w.Color)}
	}
	return out, nil
}

func parseColor(raw json.RawMessage) (hicolor.Packed, error) {
	var v uint32
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, fail("Color must be an integer")
	}
	if v > 0xFFFF {
		return 0, fail("Color must fit in 16 bits")
	}
	return hicolor.Packed(v), nil
}

func toUint16(v float64) (uint16, error) {
	if !finite(v) || v < 0 || v > 65535 || v != math.Trunc(v) {
		return 0, fmt.Errorf("not an integer in [0,65535]")
	}
	return uint16(v), nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
