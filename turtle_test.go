package mechdraw

import (
	"errors"
	"reflect"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
)

func approxVec(t *testing.T, got, want ms2.Vec, tol float32, context string) {
	t.Helper()
	if math32.Abs(got.X-want.X) > tol || math32.Abs(got.Y-want.Y) > tol {
		t.Errorf("%s: got (%g, %g), want (%g, %g)", context, got.X, got.Y, want.X, want.Y)
	}
}

func TestRectangleClosure(t *testing.T) {
	const w, h = 120, 80
	tr := NewTurtle()
	tr.MoveTo(0, 0).Rectangle(w, h)
	ents, err := tr.Extract()
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 1 {
		t.Fatalf("want 1 entity, got %d", len(ents))
	}
	pl, ok := ents[0].(Polyline)
	if !ok {
		t.Fatalf("want Polyline, got %T", ents[0])
	}
	if len(pl.Verts) != 4 {
		t.Errorf("want 4 vertices, got %d", len(pl.Verts))
	}
	if !pl.IsClosed(0) {
		t.Error("rectangle polyline is not closed")
	}
	bb := pl.Bounds()
	sz := bb.Size()
	if sz.X != w || sz.Y != h {
		t.Errorf("bounding box %gx%g, want %gx%g", sz.X, sz.Y, float32(w), float32(h))
	}
}

func TestArcLeftTurn(t *testing.T) {
	tr := NewTurtle()
	tr.Arc(10, 90)
	if err := tr.Err(); err != nil {
		t.Fatal(err)
	}
	approxVec(t, tr.Position(), ms2.Vec{X: 10, Y: 10}, 1e-4, "end position")
	if got := tr.Heading(); got != 90 {
		t.Errorf("heading = %g, want 90", got)
	}
	ents, _ := tr.Extract()
	a := ents[0].(Arc)
	approxVec(t, a.Center, ms2.Vec{X: 0, Y: 10}, 1e-4, "center")
	if a.Start != -90 || a.End != 0 {
		t.Errorf("arc angles %g..%g, want -90..0", a.Start, a.End)
	}
	bb := a.Bounds()
	approxVec(t, bb.Min, ms2.Vec{X: 0, Y: 0}, 1e-4, "bounds min")
	approxVec(t, bb.Max, ms2.Vec{X: 10, Y: 10}, 1e-4, "bounds max")
}

func TestArcRightTurnStoredCCW(t *testing.T) {
	tr := NewTurtle()
	tr.Arc(10, -90)
	ents, err := tr.Extract()
	if err != nil {
		t.Fatal(err)
	}
	approxVec(t, tr.Position(), ms2.Vec{X: 10, Y: -10}, 1e-4, "end position")
	if got := tr.Heading(); got != -90 {
		t.Errorf("heading = %g, want -90", got)
	}
	a := ents[0].(Arc)
	// Stored counter-clockwise regardless of turn direction.
	if a.Start != 0 || a.End != 90 {
		t.Errorf("arc angles %g..%g, want 0..90", a.Start, a.End)
	}
	if s := a.Sweep(); s != 90 {
		t.Errorf("sweep = %g, want 90", s)
	}
}

func TestArcRejectsBadInput(t *testing.T) {
	for _, tc := range []struct {
		name          string
		radius, sweep float32
	}{
		{"zero radius", 0, 90},
		{"negative radius", -5, 90},
		{"zero sweep", 10, 0},
		{"oversweep", 10, 400},
	} {
		tr := NewTurtle()
		tr.Arc(tc.radius, tc.sweep)
		ents, err := tr.Extract()
		if err == nil {
			t.Errorf("%s: want error, got none", tc.name)
		}
		if ents != nil {
			t.Errorf("%s: want nil entities on error, got %d", tc.name, len(ents))
		}
		var gerr *GeometryError
		if !errors.As(err, &gerr) {
			t.Errorf("%s: want GeometryError, got %T", tc.name, err)
		}
	}
}

func TestErrorsAccumulate(t *testing.T) {
	tr := NewTurtle()
	tr.Arc(-1, 90).Circle(-2).SetLayer("")
	err := tr.Err()
	if err == nil {
		t.Fatal("want accumulated errors")
	}
	// All three failures must be reported, not just the first.
	for _, want := range []string{"Arc", "Circle", "SetLayer"} {
		var gerr *GeometryError
		found := false
		for _, e := range tr.accumErrs {
			if errors.As(e, &gerr) && gerr.Op == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing accumulated error for %s", want)
		}
	}
}

func TestPenUpDrawsNothing(t *testing.T) {
	tr := NewTurtle()
	tr.PenUp().Forward(50).Arc(10, 90).Circle(5).Rectangle(10, 10).Slot(20, 10)
	ents, err := tr.Extract()
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 0 {
		t.Errorf("pen-up drawing emitted %d entities", len(ents))
	}
	// Motion still happens with the pen up.
	if tr.Position() == (ms2.Vec{}) {
		t.Error("cursor did not move")
	}
}

func TestSlotEntities(t *testing.T) {
	tr := NewTurtle()
	tr.MoveTo(0, 0).Slot(20, 10)
	ents, err := tr.Extract()
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 4 {
		t.Fatalf("want 2 arcs + 2 lines, got %d entities", len(ents))
	}
	var arcs, lines int
	bb := ents[0].Bounds()
	for _, e := range ents {
		switch e.(type) {
		case Arc:
			arcs++
		case Line:
			lines++
		}
		bb = bb.Union(e.Bounds())
	}
	if arcs != 2 || lines != 2 {
		t.Errorf("got %d arcs and %d lines", arcs, lines)
	}
	approxVec(t, bb.Min, ms2.Vec{X: -15, Y: -5}, 1e-4, "slot bounds min")
	approxVec(t, bb.Max, ms2.Vec{X: 15, Y: 5}, 1e-4, "slot bounds max")
}

func TestRegularPolygonFirstVertexOnHeading(t *testing.T) {
	tr := NewTurtle()
	tr.SetHeading(90).RegularPolygon(6, 10)
	ents, err := tr.Extract()
	if err != nil {
		t.Fatal(err)
	}
	pl := ents[0].(Polyline)
	if len(pl.Verts) != 6 {
		t.Fatalf("want 6 vertices, got %d", len(pl.Verts))
	}
	approxVec(t, pl.Verts[0], ms2.Vec{X: 0, Y: 10}, 1e-4, "first vertex")
	for i, v := range pl.Verts {
		if d := ms2.Norm(v); math32.Abs(d-10) > 1e-4 {
			t.Errorf("vertex %d at distance %g from center, want 10", i, d)
		}
	}
}

func TestRunDeterministicReplay(t *testing.T) {
	prog := []Op{
		{Name: OpMoveTo, Args: []float32{5, 5}},
		{Name: OpSetHeading, Args: []float32{30}},
		{Name: OpForward, Args: []float32{40}},
		{Name: OpArc, Args: []float32{12, 120}},
		{Name: OpTurn, Args: []float32{-60}},
		{Name: OpForward, Args: []float32{10}},
		{Name: OpSetLayer, Str: LayerHole},
		{Name: OpCircle, Args: []float32{3}},
	}
	run := func() []Entity {
		tr := NewTurtle()
		if err := tr.Run(prog); err != nil {
			t.Fatal(err)
		}
		ents, err := tr.Extract()
		if err != nil {
			t.Fatal(err)
		}
		return ents
	}
	first, second := run(), run()
	if !reflect.DeepEqual(first, second) {
		t.Error("replaying the same program produced different entities")
	}
}

func TestRunRejectsMalformedPrograms(t *testing.T) {
	for _, tc := range []struct {
		name string
		prog []Op
	}{
		{"unknown op", []Op{{Name: "teleport", Args: []float32{1, 2}}}},
		{"bad arity", []Op{{Name: OpForward, Args: []float32{1, 2}}}},
		{"missing args", []Op{{Name: OpArc, Args: []float32{10}}}},
	} {
		tr := NewTurtle()
		if err := tr.Run(tc.prog); err == nil {
			t.Errorf("%s: want error, got none", tc.name)
		}
	}
}
