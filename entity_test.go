package mechdraw

import (
	"reflect"
	"testing"

	"github.com/soypat/geometry/ms2"
)

func TestArcBoundsIncludeQuadrantExtremes(t *testing.T) {
	// Upper semicircle from 0 to 180 degrees: the top extreme at 90 degrees
	// lies strictly between the endpoints.
	a := Arc{Center: ms2.Vec{X: 5, Y: 5}, Radius: 10, Start: 0, End: 180, Lay: LayerOutline}
	bb := a.Bounds()
	approxVec(t, bb.Min, ms2.Vec{X: -5, Y: 5}, 1e-4, "min")
	approxVec(t, bb.Max, ms2.Vec{X: 15, Y: 15}, 1e-4, "max")
}

func TestArcBoundsWrapAroundZero(t *testing.T) {
	// Sweep crossing the +X axis: from 270 back up to 90.
	a := Arc{Radius: 10, Start: 270, End: 90}
	bb := a.Bounds()
	approxVec(t, bb.Min, ms2.Vec{X: 0, Y: -10}, 1e-4, "min")
	approxVec(t, bb.Max, ms2.Vec{X: 10, Y: 10}, 1e-4, "max")
}

func TestPolylineIsClosed(t *testing.T) {
	square := []ms2.Vec{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	for _, tc := range []struct {
		name string
		pl   Polyline
		tol  float32
		want bool
	}{
		{"declared closed", Polyline{Verts: square, Closed: true}, 0, true},
		{"open chain", Polyline{Verts: square}, 1e-6, false},
		{"coincident endpoints", Polyline{Verts: append(append([]ms2.Vec{}, square...), ms2.Vec{X: 0, Y: 0})}, 1e-6, true},
		{"too few vertices", Polyline{Verts: square[:2], Closed: true}, 0, false},
	} {
		if got := tc.pl.IsClosed(tc.tol); got != tc.want {
			t.Errorf("%s: IsClosed = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDrawingLayersSortedAndFiltered(t *testing.T) {
	d := NewDrawing()
	d.Add(
		Circle{Radius: 5, Lay: LayerHole},
		Line{B: ms2.Vec{X: 10}, Lay: LayerOutline},
		Circle{Radius: 2, Lay: LayerHole},
	)
	want := []string{LayerHole, LayerOutline}
	if got := d.Layers(); !reflect.DeepEqual(got, want) {
		t.Errorf("Layers() = %v, want %v", got, want)
	}
	if got := len(d.OnLayer(LayerHole)); got != 2 {
		t.Errorf("OnLayer(hole) returned %d entities, want 2", got)
	}
	if got := len(d.OnLayer(LayerCenter)); got != 0 {
		t.Errorf("OnLayer(center) returned %d entities, want 0", got)
	}
}

func TestComposeTranslates(t *testing.T) {
	left := NewDrawing()
	left.Add(Circle{Radius: 5, Lay: LayerOutline})
	left.Annotate(Annotation{Text: "A", Height: 3, Lay: LayerCenter})
	right := NewDrawing()
	right.Add(Line{B: ms2.Vec{X: 10}, Lay: LayerOutline})

	out := Compose(
		Placement{Drawing: left, Offset: ms2.Vec{X: -20}},
		Placement{Drawing: right, Offset: ms2.Vec{X: 20, Y: 5}},
	)
	if len(out.Entities) != 2 {
		t.Fatalf("want 2 entities, got %d", len(out.Entities))
	}
	c := out.Entities[0].(Circle)
	approxVec(t, c.Center, ms2.Vec{X: -20}, 0, "translated circle center")
	l := out.Entities[1].(Line)
	approxVec(t, l.A, ms2.Vec{X: 20, Y: 5}, 0, "translated line start")
	approxVec(t, l.B, ms2.Vec{X: 30, Y: 5}, 0, "translated line end")
	if len(out.Annotations) != 1 {
		t.Fatalf("want 1 annotation, got %d", len(out.Annotations))
	}
	approxVec(t, out.Annotations[0].At, ms2.Vec{X: -20}, 0, "translated annotation")

	// Source drawings must be untouched.
	if got := left.Entities[0].(Circle).Center; got != (ms2.Vec{}) {
		t.Errorf("compose mutated source drawing: center moved to (%g, %g)", got.X, got.Y)
	}
}
