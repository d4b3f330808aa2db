// Package scene owns the validated, load-time-immutable tables that make up
// a loaded 3D scene, plus the per-frame scratch buffers sized to it.
//
// Scene objects reference vertices, radii, and styles by index, never by
// pointer — the same index-handle discipline sparkos/quarkgl/scene.go uses
// for its mesh table, and the one spec.md's design notes ask a port to
// keep rather than reifying an object graph.
package scene

import (
	"fmt"
	"math"

	"delilah/hicolor"
)

// Vec3 is a 3D point or vector.
type Vec3 struct {
	X, Y, Z float64
}

// Kind classifies a scene object. This is the tagged variant spec.md's
// design notes ask for in place of reading (b,c) sentinels everywhere.
type Kind uint8

const (
	KindPoint Kind = iota
	KindLine
	KindSphere
	KindTriangle
)

func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindLine:
		return "line"
	case KindSphere:
		return "sphere"
	case KindTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// sentinel is the wire "no value" marker for an index/style slot.
const sentinel = 0xFFFF

// maxTableLen is the maximum element count for any §3 table.
const maxTableLen = 65535

// maxEdgeLineStyle is the highest line-style index an edge selector can
// reach: a 5-bit selector s>0 chooses line style s-1, so s up to 31 reaches
// style index 30 — "the first 31 line styles" regardless of table length.
const maxEdgeLineStyle = 31

// RawObject is the wire 5-tuple described in spec.md §3/§6, before
// classification into a tagged Object.
type RawObject struct {
	A, B, C, D, E uint16
}

func (r RawObject) classify() Kind {
	switch {
	case r.B != sentinel && r.C != sentinel:
		return KindTriangle
	case r.B == sentinel && r.C != sentinel:
		return KindSphere
	case r.B != sentinel && r.C == sentinel:
		return KindLine
	default:
		return KindPoint
	}
}

// Object is a validated, kind-tagged scene primitive. Which fields are
// meaningful depends on Kind; see the accessor methods below.
type Object struct {
	Kind Kind

	VertexA, VertexB uint16 // triangle: 3rd vertex lives in a separate field; see VertexC
	VertexC          uint16 // triangle only
	RadiusIndex      uint16 // sphere only
	StyleIndex       uint16 // line: line-style index; sphere: line-style index or sentinel (no stroke);
	// point: point-style index
	Fill  hicolor.Packed // triangle fill; sphere fill (may be hicolor.Transparent)
	Edges [3]uint8       // triangle edge selectors (v1-v2, v2-v3, v3-v1); 0 = no stroke
}

// TriangleVerts returns the three vertex-table indices of a triangle.
func (o Object) TriangleVerts() (a, b, c int) {
	return int(o.VertexA), int(o.VertexB), int(o.VertexC)
}

// LineVerts returns the two vertex-table indices of a line.
func (o Object) LineVerts() (a, b int) {
	return int(o.VertexA), int(o.VertexB)
}

// SphereRefs returns the vertex-table index of the sphere's origin and the
// radius-table index of its radius.
func (o Object) SphereRefs() (vertex, radius int) {
	return int(o.VertexA), int(o.RadiusIndex)
}

// SphereStrokeStyle returns the sphere's line-style index and whether it
// has a stroke at all (false = fully transparent stroke).
func (o Object) SphereStrokeStyle() (styleIndex int, ok bool) {
	if o.StyleIndex == sentinel {
		return 0, false
	}
	return int(o.StyleIndex), true
}

// PointVert returns the vertex-table index of a point.
func (o Object) PointVert() int {
	return int(o.VertexA)
}

// PointStyleIndex returns the point-style table index of a point.
func (o Object) PointStyleIndex() int {
	return int(o.StyleIndex)
}

// LineStyleIndex returns the line-style table index of a line.
func (o Object) LineStyleIndex() int {
	return int(o.StyleIndex)
}

// PointShape enumerates the nine point-marker shapes spec.md §3/§4.3.4
// names, in the order its shape set is listed: c,s,m,u,d,l,r,p,x.
type PointShape byte

const (
	ShapeCircle   PointShape = 'c'
	ShapeSquare   PointShape = 's'
	ShapeDiamond  PointShape = 'm'
	ShapeTriUp    PointShape = 'u'
	ShapeTriDown  PointShape = 'd'
	ShapeTriLeft  PointShape = 'l'
	ShapeTriRight PointShape = 'r'
	ShapePlus     PointShape = 'p'
	ShapeCross    PointShape = 'x'
)

// Fillable reports whether a fill color applies to this shape.
func (s PointShape) Fillable() bool {
	switch s {
	case ShapeCircle, ShapeSquare, ShapeDiamond, ShapeTriUp, ShapeTriDown, ShapeTriLeft, ShapeTriRight:
		return true
	default:
		return false
	}
}

func (s PointShape) valid() bool {
	switch s {
	case ShapeCircle, ShapeSquare, ShapeDiamond, ShapeTriUp, ShapeTriDown, ShapeTriLeft, ShapeTriRight, ShapePlus, ShapeCross:
		return true
	default:
		return false
	}
}

// PointStyle is a validated point marker style. Fill is only meaningful
// when Shape.Fillable(); Ink is only meaningful when Stroke > 0.
type PointStyle struct {
	Shape  PointShape
	Size   float64
	Stroke float64
	Fill   hicolor.Packed
	Ink    hicolor.Packed
}

// PointStyleIn is the pre-validation form of a point style: it carries
// explicit presence flags for Fill/Ink so the loader can enforce spec.md
// §3's strict "fill/ink present iff the condition holds" invariant before
// folding them into the compact PointStyle the renderer reads per frame.
type PointStyleIn struct {
	Shape   PointShape
	Size    float64
	Stroke  float64
	Fill    hicolor.Packed
	HasFill bool
	Ink     hicolor.Packed
	HasInk  bool
}

// LineStyle is a validated line style.
type LineStyle struct {
	Width float64
	Color hicolor.Packed
}

// Store owns a loaded scene's validated tables and the transient buffers
// the Renderer reuses every frame. A Store's validated tables are not
// modified after construction (only its scratch buffers are rewritten each
// frame); loading a new scene replaces the Store wholesale rather than mutating it,
// per spec.md §5 ("load_scene atomically replaces all of them").
type Store struct {
	Vertices    []Vec3
	Radii       []float64
	Objects     []Object
	PointStyles []PointStyle
	LineStyles  []LineStyle

	// Transient buffers, preallocated here and reused by the Renderer every
	// frame — see spec.md §9 "scratch buffer sharing".
	CameraSpace    []Vec3
	ProjectedSpace []Vec3
	PaintKeys      []uint32
}

// NewStore validates raw tables per spec.md §3 and, on success, returns an
// immutable Store with its scratch buffers preallocated. On failure it
// returns the first violation encountered; later violations never overwrite
// an already-set error, matching spec.md §7.
func NewStore(vertices []Vec3, radii []float64, raws []RawObject, pointStylesIn []PointStyleIn, lineStyles []LineStyle) (*Store, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("Scene has no vertices")
	}
	if len(vertices) > maxTableLen {
		return nil, fmt.Errorf("Too many vertices")
	}
	if len(radii) > maxTableLen {
		return nil, fmt.Errorf("Too many radii")
	}
	if len(raws) == 0 {
		return nil, fmt.Errorf("Scene has no objects")
	}
	if len(raws) > maxTableLen {
		return nil, fmt.Errorf("Too many scene objects")
	}
	if len(pointStylesIn) > maxTableLen {
		return nil, fmt.Errorf("Too many point styles")
	}
	if len(lineStyles) > maxTableLen {
		return nil, fmt.Errorf("Too many line styles")
	}

	for _, v := range vertices {
		if !finite(v.X) || !finite(v.Y) || !finite(v.Z) {
			return nil, fmt.Errorf("Vertex coordinates must be finite")
		}
	}
	for _, r := range radii {
		if !finite(r) || r <= 0 {
			return nil, fmt.Errorf("Radii must be finite and positive")
		}
	}

	pointStyles := make([]PointStyle, len(pointStylesIn))
	for i, in := range pointStylesIn {
		if !in.Shape.valid() {
			return nil, fmt.Errorf("Unknown point style shape")
		}
		if in.Size <= 0 {
			return nil, fmt.Errorf("Point style size must be positive")
		}
		if in.Stroke < 0 {
			return nil, fmt.Errorf("Point style stroke must not be negative")
		}
		if in.Shape.Fillable() != in.HasFill {
			if in.HasFill {
				return nil, fmt.Errorf("Point style may not have fill for unfilled shapes")
			}
			return nil, fmt.Errorf("Point style missing required fill")
		}
		if (in.Stroke > 0) != in.HasInk {
			if in.HasInk {
				return nil, fmt.Errorf("Point style may not have ink without a stroke")
			}
			return nil, fmt.Errorf("Point style with a stroke must have ink")
		}
		pointStyles[i] = PointStyle{Shape: in.Shape, Size: in.Size, Stroke: in.Stroke, Fill: in.Fill, Ink: in.Ink}
	}
	for i, ls := range lineStyles {
		if ls.Width <= 0 {
			return nil, fmt.Errorf("Line style width must be positive")
		}
		if ls.Color > 0x7FFF {
			return nil, fmt.Errorf("Line style color must fit in 15 bits")
		}
		lineStyles[i] = ls
	}

	objects := make([]Object, len(raws))
	for i, raw := range raws {
		obj, err := buildObject(raw, len(vertices), len(radii), len(pointStyles), len(lineStyles))
		if err != nil {
			return nil, err
		}
		objects[i] = obj
	}

	return &Store{
		Vertices:       vertices,
		Radii:          radii,
		Objects:        objects,
		PointStyles:    pointStyles,
		LineStyles:     lineStyles,
		CameraSpace:    make([]Vec3, len(vertices)),
		ProjectedSpace: make([]Vec3, len(vertices)),
		PaintKeys:      make([]uint32, len(objects)),
	}, nil
}

func buildObject(r RawObject, numVerts, numRadii, numPointStyles, numLineStyles int) (Object, error) {
	kind := r.classify()
	switch kind {
	case KindTriangle:
		if err := checkVertexIndex(r.A, numVerts); err != nil {
			return Object{}, err
		}
		if err := checkVertexIndex(r.B, numVerts); err != nil {
			return Object{}, err
		}
		if err := checkVertexIndex(r.C, numVerts); err != nil {
			return Object{}, err
		}
		if r.D > 0x7FFF {
			return Object{}, fmt.Errorf("Triangle fill must fit in 15 bits")
		}
		if r.E > 0x7FFF {
			return Object{}, fmt.Errorf("Triangle edge style word must fit in 15 bits")
		}
		edges := [3]uint8{
			uint8(r.E>>10) & 0x1F,
			uint8(r.E>>5) & 0x1F,
			uint8(r.E) & 0x1F,
		}
		for _, sel := range edges {
			if sel == 0 {
				continue
			}
			idx := int(sel) - 1
			if idx >= maxEdgeLineStyle || idx >= numLineStyles {
				return Object{}, fmt.Errorf("Triangle edge selector references an out-of-range line style")
			}
		}
		return Object{
			Kind: KindTriangle, VertexA: r.A, VertexB: r.B, VertexC: r.C,
			Fill: hicolor.Packed(r.D), Edges: edges,
		}, nil

	case KindSphere:
		if err := checkVertexIndex(r.A, numVerts); err != nil {
			return Object{}, err
		}
		if err := checkRadiusIndex(r.C, numRadii); err != nil {
			return Object{}, err
		}
		if r.D != sentinel && r.D > 0x7FFF {
			return Object{}, fmt.Errorf("Sphere fill must fit in 15 bits or be transparent")
		}
		if r.E != sentinel {
			if int(r.E) >= numLineStyles {
				return Object{}, fmt.Errorf("Sphere references an out-of-range line style")
			}
		}
		if r.D == sentinel && r.E == sentinel {
			return Object{}, fmt.Errorf("Spheres may not be fully transparent")
		}
		return Object{
			Kind: KindSphere, VertexA: r.A, RadiusIndex: r.C,
			Fill: hicolor.Packed(r.D), StyleIndex: r.E,
		}, nil

	case KindLine:
		if err := checkVertexIndex(r.A, numVerts); err != nil {
			return Object{}, err
		}
		if err := checkVertexIndex(r.B, numVerts); err != nil {
			return Object{}, err
		}
		if int(r.E) >= numLineStyles {
			return Object{}, fmt.Errorf("Line references an out-of-range line style")
		}
		return Object{Kind: KindLine, VertexA: r.A, VertexB: r.B, StyleIndex: r.E}, nil

	default: // KindPoint
		if err := checkVertexIndex(r.A, numVerts); err != nil {
			return Object{}, err
		}
		if int(r.E) >= numPointStyles {
			return Object{}, fmt.Errorf("Point references an out-of-range point style")
		}
		return Object{Kind: KindPoint, VertexA: r.A, StyleIndex: r.E}, nil
	}
}

func checkVertexIndex(idx uint16, numVerts int) error {
	if int(idx) >= numVerts {
		return fmt.Errorf("Scene object references an out-of-range vertex")
	}
	return nil
}

func checkRadiusIndex(idx uint16, numRadii int) error {
	if int(idx) >= numRadii {
		return fmt.Errorf("Sphere references an out-of-range radius")
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
