package scene

import (
	"encoding/json"

	"delilah/hicolor"
)

// WireObject is an alias of RawObject naming the wire 5-tuple that ToRaw
// rebuilds from a validated Object and that Store.Encode serializes, for
// spec.md §8 property 2's round-trip test.
type WireObject = RawObject

// ToRaw reconstructs the wire 5-tuple for an already-validated Object,
// the inverse of buildObject.
func (o Object) ToRaw() RawObject {
	switch o.Kind {
	case KindTriangle:
		e := uint16(o.Edges[0])<<10 | uint16(o.Edges[1])<<5 | uint16(o.Edges[2])
		return RawObject{A: o.VertexA, B: o.VertexB, C: o.VertexC, D: uint16(o.Fill), E: e}
	case KindSphere:
		return RawObject{A: o.VertexA, B: sentinel, C: o.RadiusIndex, D: uint16(o.Fill), E: o.StyleIndex}
	case KindLine:
		return RawObject{A: o.VertexA, B: o.VertexB, C: sentinel, D: 0, E: o.StyleIndex}
	default: // KindPoint
		return RawObject{A: o.VertexA, B: sentinel, C: sentinel, D: 0, E: o.StyleIndex}
	}
}

// PointStyleOut is the JSON-shaped form of a PointStyle, with fill/ink
// presence made explicit for the encoder (mirrors PointStyleIn).
type PointStyleOut struct {
	Shape   PointShape
	Size    float64
	Stroke  float64
	Fill    hicolor.Packed
	HasFill bool
	Ink     hicolor.Packed
	HasInk  bool
}

func (s PointStyle) toOut() PointStyleOut {
	out := PointStyleOut{Shape: s.Shape, Size: s.Size, Stroke: s.Stroke}
	if s.Shape.Fillable() {
		out.Fill = s.Fill
		out.HasFill = true
	}
	if s.Stroke > 0 {
		out.Ink = s.Ink
		out.HasInk = true
	}
	return out
}

// Vertices3 flattens the vertex table into spec.md §6's (X,Y,Z) triples.
func (s *Store) Vertices3() []float64 {
	out := make([]float64, 0, len(s.Vertices)*3)
	for _, v := range s.Vertices {
		out = append(out, v.X, v.Y, v.Z)
	}
	return out
}

// SceneInts flattens the object table into spec.md §6's quintuples.
func (s *Store) SceneInts() []uint16 {
	out := make([]uint16, 0, len(s.Objects)*5)
	for _, o := range s.Objects {
		r := o.ToRaw()
		out = append(out, r.A, r.B, r.C, r.D, r.E)
	}
	return out
}

// PointStyleOuts returns the point styles in their JSON-shaped form.
func (s *Store) PointStyleOuts() []PointStyleOut {
	out := make([]PointStyleOut, len(s.PointStyles))
	for i, ps := range s.PointStyles {
		out[i] = ps.toOut()
	}
	return out
}

type wirePointStyleOut struct {
	Shape  string  `json:"shape"`
	Size   float64 `json:"size"`
	Stroke float64 `json:"stroke"`
	Fill   *uint32 `json:"fill,omitempty"`
	Ink    *uint32 `json:"ink,omitempty"`
}

type wireLineStyleOut struct {
	Width float64 `json:"width"`
	Color uint32  `json:"color"`
}

type wireFileOut struct {
	Vertex []float64           `json:"vertex"`
	Scene  []uint16            `json:"scene"`
	Radius []float64           `json:"radius,omitempty"`
	PStyle []wirePointStyleOut `json:"pstyle,omitempty"`
	LStyle []wireLineStyleOut  `json:"lstyle,omitempty"`
}

// Encode serializes the store back into spec.md §6's JSON scene-file
// grammar, the inverse of sceneparser.Parse. Parsing the result with
// sceneparser.Parse reproduces an equivalent store (spec.md §8 property 2).
func (s *Store) Encode() ([]byte, error) {
	wf := wireFileOut{
		Vertex: s.Vertices3(),
		Scene:  s.SceneInts(),
	}
	if len(s.Radii) > 0 {
		wf.Radius = append([]float64(nil), s.Radii...)
	}
	for _, out := range s.PointStyleOuts() {
		wp := wirePointStyleOut{Shape: string(rune(out.Shape)), Size: out.Size, Stroke: out.Stroke}
		if out.HasFill {
			v := uint32(out.Fill)
			wp.Fill = &v
		}
		if out.HasInk {
			v := uint32(out.Ink)
			wp.Ink = &v
		}
		wf.PStyle = append(wf.PStyle, wp)
	}
	for _, ls := range s.LineStyles {
		wf.LStyle = append(wf.LStyle, wireLineStyleOut{Width: ls.Width, Color: uint32(ls.Color)})
	}
	return json.Marshal(wf)
}
