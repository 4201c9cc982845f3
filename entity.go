package mechdraw

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
)

// Entity is one drawing primitive tagged with a layer name. Entities carry
// absolute coordinates in millimeters and are immutable once emitted;
// Translate returns a moved copy.
type Entity interface {
	Layer() string
	Bounds() ms2.Box
	Translate(offset ms2.Vec) Entity
}

// Line is a straight segment from A to B.
type Line struct {
	A, B ms2.Vec
	Lay  string
}

func (l Line) Layer() string { return l.Lay }

func (l Line) Bounds() ms2.Box {
	return ms2.Box{Min: l.A, Max: l.B}.Canon()
}

func (l Line) Translate(offset ms2.Vec) Entity {
	l.A = ms2.Add(l.A, offset)
	l.B = ms2.Add(l.B, offset)
	return l
}

// Arc is a circular arc swept counter-clockwise from Start to End.
// Angles are in degrees measured from the +X axis.
type Arc struct {
	Center     ms2.Vec
	Radius     float32
	Start, End float32
	Lay        string
}

func (a Arc) Layer() string { return a.Lay }

// PointAt returns the point on the arc at the absolute angle deg.
func (a Arc) PointAt(deg float32) ms2.Vec {
	s, c := math32.Sincos(deg * math32.Pi / 180)
	return ms2.Add(a.Center, ms2.Vec{X: c * a.Radius, Y: s * a.Radius})
}

// Sweep returns the swept angle in degrees, always positive.
func (a Arc) Sweep() float32 {
	sweep := a.End - a.Start
	for sweep < 0 {
		sweep += 360
	}
	return sweep
}

func (a Arc) Bounds() ms2.Box {
	bb := ms2.Box{Min: a.PointAt(a.Start), Max: a.PointAt(a.Start)}.Canon()
	bb = bb.IncludePoint(a.PointAt(a.End))
	// Include every quadrant extreme the sweep passes through.
	for q := float32(-360); q <= 720; q += 90 {
		if angleOnArc(q, a.Start, a.End) {
			bb = bb.IncludePoint(a.PointAt(q))
		}
	}
	return bb
}

func (a Arc) Translate(offset ms2.Vec) Entity {
	a.Center = ms2.Add(a.Center, offset)
	return a
}

// angleOnArc reports whether absolute angle deg lies on the CCW sweep from
// start to end.
func angleOnArc(deg, start, end float32) bool {
	rel := math32.Mod(deg-start, 360)
	if rel < 0 {
		rel += 360
	}
	sweep := end - start
	for sweep < 0 {
		sweep += 360
	}
	return rel <= sweep
}

// Circle is a full circle.
type Circle struct {
	Center ms2.Vec
	Radius float32
	Lay    string
}

func (c Circle) Layer() string { return c.Lay }

func (c Circle) Bounds() ms2.Box {
	return ms2.Box{
		Min: ms2.AddScalar(-c.Radius, c.Center),
		Max: ms2.AddScalar(c.Radius, c.Center),
	}
}

func (c Circle) Translate(offset ms2.Vec) Entity {
	c.Center = ms2.Add(c.Center, offset)
	return c
}

// Polyline is a vertex chain. Closed means an implicit closing edge from the
// last vertex back to the first; a polyline may instead close itself
// explicitly by repeating the first vertex at the end.
type Polyline struct {
	Verts  []ms2.Vec
	Closed bool
	Lay    string
}

func (p Polyline) Layer() string { return p.Lay }

func (p Polyline) Bounds() ms2.Box {
	if len(p.Verts) == 0 {
		return ms2.Box{}
	}
	bb := ms2.Box{Min: p.Verts[0], Max: p.Verts[0]}
	for _, v := range p.Verts[1:] {
		bb = bb.IncludePoint(v)
	}
	return bb
}

func (p Polyline) Translate(offset ms2.Vec) Entity {
	moved := make([]ms2.Vec, len(p.Verts))
	for i, v := range p.Verts {
		moved[i] = ms2.Add(v, offset)
	}
	p.Verts = moved
	return p
}

// IsClosed reports whether the polyline outlines a closed loop, either by
// declaration or by coincident endpoints within tol.
func (p Polyline) IsClosed(tol float32) bool {
	if len(p.Verts) < 3 {
		return false
	}
	if p.Closed {
		return true
	}
	return ms2.Norm(ms2.Sub(p.Verts[0], p.Verts[len(p.Verts)-1])) <= tol
}

// Annotation is a text note anchored at a drawing position. Annotations are
// not entities: the acceptance engine ignores them and exporters render them.
type Annotation struct {
	At     ms2.Vec
	Text   string
	Height float32
	Lay    string
}

// Drawing is an ordered entity sequence plus unit metadata. Entity order
// affects only rendering, never correctness.
type Drawing struct {
	Units       Unit
	Entities    []Entity
	Annotations []Annotation
}

// NewDrawing returns an empty millimeter drawing.
func NewDrawing() *Drawing {
	return &Drawing{Units: UnitMillimeter}
}

// Add appends entities to the drawing.
func (d *Drawing) Add(ents ...Entity) {
	d.Entities = append(d.Entities, ents...)
}

// Annotate appends a text annotation.
func (d *Drawing) Annotate(a Annotation) {
	d.Annotations = append(d.Annotations, a)
}

// Layers returns the sorted set of distinct layer names in use.
func (d *Drawing) Layers() []string {
	seen := make(map[string]bool)
	for _, e := range d.Entities {
		seen[e.Layer()] = true
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OnLayer returns the entities tagged with the given layer name, in order.
func (d *Drawing) OnLayer(name string) []Entity {
	var ents []Entity
	for _, e := range d.Entities {
		if e.Layer() == name {
			ents = append(ents, e)
		}
	}
	return ents
}

// Bounds returns the bounding box of all entities.
func (d *Drawing) Bounds() ms2.Box {
	if len(d.Entities) == 0 {
		return ms2.Box{}
	}
	bb := d.Entities[0].Bounds()
	for _, e := range d.Entities[1:] {
		bb = bb.Union(e.Bounds())
	}
	return bb
}
