package mechdraw

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
)

// Turtle is the stateful 2D path cursor every generator draws through. It
// owns a position, a heading in degrees (0 = +X axis, counter-clockwise
// positive), a pen state and a current layer, and records one entity per
// segment traced while the pen is down. A Turtle belongs to exactly one
// generation call: create, draw, Extract, discard.
//
// Errors accumulate instead of panicking so that generator code can chain
// operations and check once at Extract.
type Turtle struct {
	pos       ms2.Vec
	heading   float32
	penUp     bool
	layer     string
	ents      []Entity
	accumErrs []error
}

// NewTurtle returns a cursor at the origin heading +X with the pen down on
// the outline layer.
func NewTurtle() *Turtle {
	return &Turtle{layer: LayerOutline}
}

// Err returns the joined accumulated geometry errors, or nil.
func (t *Turtle) Err() error {
	if len(t.accumErrs) == 0 {
		return nil
	}
	return errors.Join(t.accumErrs...)
}

func (t *Turtle) geomErrorf(op, msg string, args ...any) {
	t.accumErrs = append(t.accumErrs, &GeometryError{Op: op, Reason: fmt.Sprintf(msg, args...)})
}

// Extract returns the recorded entities, or the accumulated error if any
// operation failed. No partial entity list is returned on error.
func (t *Turtle) Extract() ([]Entity, error) {
	if err := t.Err(); err != nil {
		return nil, err
	}
	return t.ents, nil
}

// Position returns the cursor position.
func (t *Turtle) Position() ms2.Vec { return t.pos }

// Heading returns the cursor heading in degrees.
func (t *Turtle) Heading() float32 { return t.heading }

// PenUp lifts the pen: subsequent motion repositions without drawing.
func (t *Turtle) PenUp() *Turtle {
	t.penUp = true
	return t
}

// PenDown lowers the pen.
func (t *Turtle) PenDown() *Turtle {
	t.penUp = false
	return t
}

// SetLayer switches the layer tag applied to subsequently drawn entities.
func (t *Turtle) SetLayer(name string) *Turtle {
	if name == "" {
		t.geomErrorf("SetLayer", "empty layer name")
		return t
	}
	t.layer = name
	return t
}

// MoveTo repositions the cursor to absolute coordinates without drawing.
func (t *Turtle) MoveTo(x, y float32) *Turtle {
	t.pos = ms2.Vec{X: x, Y: y}
	return t
}

// SetHeading sets the absolute heading in degrees.
func (t *Turtle) SetHeading(deg float32) *Turtle {
	t.heading = deg
	return t
}

// Turn rotates the heading by deg degrees, counter-clockwise positive.
func (t *Turtle) Turn(deg float32) *Turtle {
	t.heading += deg
	return t
}

func (t *Turtle) headingVec() ms2.Vec {
	s, c := math32.Sincos(t.heading * math32.Pi / 180)
	return ms2.Vec{X: c, Y: s}
}

// Forward advances the cursor along the heading, drawing a line if the pen
// is down. Negative distances move backwards.
func (t *Turtle) Forward(distance float32) *Turtle {
	next := ms2.Add(t.pos, ms2.Scale(distance, t.headingVec()))
	if !t.penUp && distance != 0 {
		t.ents = append(t.ents, Line{A: t.pos, B: next, Lay: t.layer})
	}
	t.pos = next
	return t
}

// Arc draws a circular arc tangent to the current heading. The arc center
// lies perpendicular to the heading at distance radius, on the left for a
// positive sweep and on the right for a negative one. The cursor ends on the
// far end of the arc with its heading rotated by sweepDeg. The radius must
// be positive and the sweep nonzero; out-of-range input fails, it is never
// clamped.
func (t *Turtle) Arc(radius, sweepDeg float32) *Turtle {
	if radius <= 0 || math32.IsNaN(radius) {
		t.geomErrorf("Arc", "non-positive radius %g", radius)
		return t
	}
	if sweepDeg == 0 || math32.IsNaN(sweepDeg) {
		t.geomErrorf("Arc", "zero sweep angle")
		return t
	}
	if math32.Abs(sweepDeg) > 360 {
		t.geomErrorf("Arc", "sweep %g exceeds full circle", sweepDeg)
		return t
	}
	side := float32(90)
	if sweepDeg < 0 {
		side = -90
	}
	s, c := math32.Sincos((t.heading + side) * math32.Pi / 180)
	center := ms2.Add(t.pos, ms2.Scale(radius, ms2.Vec{X: c, Y: s}))
	startAngle := t.heading - side // center -> entry point
	endAngle := startAngle + sweepDeg
	if !t.penUp {
		a := Arc{Center: center, Radius: radius, Start: startAngle, End: endAngle, Lay: t.layer}
		if sweepDeg < 0 {
			// Entity arcs always sweep counter-clockwise.
			a.Start, a.End = endAngle, startAngle
		}
		t.ents = append(t.ents, a)
	}
	es, ec := math32.Sincos(endAngle * math32.Pi / 180)
	t.pos = ms2.Add(center, ms2.Scale(radius, ms2.Vec{X: ec, Y: es}))
	t.heading += sweepDeg
	return t
}

// Circle draws a full circle centered on the cursor. The cursor does not
// move.
func (t *Turtle) Circle(radius float32) *Turtle {
	if radius <= 0 || math32.IsNaN(radius) {
		t.geomErrorf("Circle", "non-positive radius %g", radius)
		return t
	}
	if !t.penUp {
		t.ents = append(t.ents, Circle{Center: t.pos, Radius: radius, Lay: t.layer})
	}
	return t
}

// Rectangle draws an axis-aligned rectangle with its minimum corner at the
// cursor, as a single closed 4-vertex polyline. The cursor does not move.
func (t *Turtle) Rectangle(w, h float32) *Turtle {
	if w <= 0 || h <= 0 {
		t.geomErrorf("Rectangle", "non-positive dimensions %gx%g", w, h)
		return t
	}
	if !t.penUp {
		p := t.pos
		t.ents = append(t.ents, Polyline{
			Verts: []ms2.Vec{
				p,
				{X: p.X + w, Y: p.Y},
				{X: p.X + w, Y: p.Y + h},
				{X: p.X, Y: p.Y + h},
			},
			Closed: true,
			Lay:    t.layer,
		})
	}
	return t
}

// RegularPolygon draws a regular polygon centered on the cursor with the
// first vertex along the current heading at the given circumradius. The
// cursor does not move.
func (t *Turtle) RegularPolygon(sides int, circumradius float32) *Turtle {
	if sides < 3 {
		t.geomErrorf("RegularPolygon", "need at least 3 sides, got %d", sides)
		return t
	}
	if circumradius <= 0 || math32.IsNaN(circumradius) {
		t.geomErrorf("RegularPolygon", "non-positive circumradius %g", circumradius)
		return t
	}
	if t.penUp {
		return t
	}
	verts := make([]ms2.Vec, sides)
	step := 360 / float32(sides)
	for i := range verts {
		s, c := math32.Sincos((t.heading + step*float32(i)) * math32.Pi / 180)
		verts[i] = ms2.Add(t.pos, ms2.Scale(circumradius, ms2.Vec{X: c, Y: s}))
	}
	t.ents = append(t.ents, Polyline{Verts: verts, Closed: true, Lay: t.layer})
	return t
}

// Slot draws a rounded rectangular cutout (two semicircular caps joined by
// straight flanks) centered on the cursor along the current heading. Length
// is measured between cap centers; the total slot length is length+width.
// The cursor does not move.
func (t *Turtle) Slot(length, width float32) *Turtle {
	if width <= 0 {
		t.geomErrorf("Slot", "non-positive width %g", width)
		return t
	}
	if length <= width {
		t.geomErrorf("Slot", "length %g must exceed width %g", length, width)
		return t
	}
	if t.penUp {
		return t
	}
	halfLen := length / 2
	halfWidth := width / 2
	dir := t.headingVec()
	perp := ms2.Vec{X: -dir.Y, Y: dir.X}
	left := ms2.Add(t.pos, ms2.Scale(-halfLen, dir))
	right := ms2.Add(t.pos, ms2.Scale(halfLen, dir))
	t.ents = append(t.ents,
		Arc{Center: left, Radius: halfWidth, Start: t.heading + 90, End: t.heading + 270, Lay: t.layer},
		Line{
			A:   ms2.Add(left, ms2.Scale(halfWidth, perp)),
			B:   ms2.Add(right, ms2.Scale(halfWidth, perp)),
			Lay: t.layer,
		},
		Arc{Center: right, Radius: halfWidth, Start: t.heading - 90, End: t.heading + 90, Lay: t.layer},
		Line{
			A:   ms2.Add(left, ms2.Scale(-halfWidth, perp)),
			B:   ms2.Add(right, ms2.Scale(-halfWidth, perp)),
			Lay: t.layer,
		},
	)
	return t
}
