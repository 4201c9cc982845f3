package accept

import (
	"testing"

	"github.com/soypat/geometry/ms2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partforge/mechdraw"
	"github.com/partforge/mechdraw/forge/parts"
)

func resultOf(t *testing.T, rep Report, name string) Result {
	t.Helper()
	for _, r := range rep.Results {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("report has no %q check", name)
	return Result{}
}

func plateSpec(params mechdraw.Params) mechdraw.PartSpec {
	return mechdraw.PartSpec{Type: "plate", Parameters: params}
}

// platedrawing builds a minimal plate drawing by hand so individual checks
// can be broken deliberately.
func plateDrawing(length, width float32, holes ...mechdraw.Circle) *mechdraw.Drawing {
	d := mechdraw.NewDrawing()
	d.Add(mechdraw.Polyline{
		Verts: []ms2.Vec{
			{}, {X: length}, {X: length, Y: width}, {Y: width},
		},
		Closed: true,
		Lay:    mechdraw.LayerOutline,
	})
	for _, h := range holes {
		h.Lay = mechdraw.LayerHole
		d.Add(h)
	}
	return d
}

func TestGeneratedPlatePassesAllChecks(t *testing.T) {
	spec := plateSpec(mechdraw.Params{
		"length":        500,
		"width":         300,
		"hole_diameter": 12,
		"corner_offset": 25,
	})
	d, err := parts.Generate(spec.Type, spec.Parameters)
	require.NoError(t, err)

	rep := Validate(d, spec)
	assert.True(t, rep.Passed(), "report:\n%s", rep)
	require.Len(t, rep.Results, 6)
	wantOrder := []string{CheckUnits, CheckLayers, CheckClosure, CheckDimensions, CheckContainment, CheckClearance}
	for i, r := range rep.Results {
		assert.Equal(t, wantOrder[i], r.Name)
		assert.True(t, r.Passed, "%s: %s", r.Name, r.Message)
	}
}

func TestValidateIdempotent(t *testing.T) {
	spec := plateSpec(mechdraw.Params{"length": 100, "width": 60})
	d, err := parts.Generate(spec.Type, spec.Parameters)
	require.NoError(t, err)
	first := Validate(d, spec)
	second := Validate(d, spec)
	assert.Equal(t, first, second)
}

func TestUnitCheckRejectsUnitless(t *testing.T) {
	d := plateDrawing(100, 60)
	d.Units = mechdraw.UnitInvalid
	rep := Validate(d, plateSpec(mechdraw.Params{"length": 100, "width": 60}))
	assert.False(t, resultOf(t, rep, CheckUnits).Passed)
	// The remaining checks still ran.
	assert.True(t, resultOf(t, rep, CheckClosure).Passed)
	assert.False(t, rep.Passed())
}

func TestLayerCheckRequiresHoleLayer(t *testing.T) {
	// Parameters promise corner holes but the drawing has none.
	d := plateDrawing(100, 60)
	rep := Validate(d, plateSpec(mechdraw.Params{
		"length": 100, "width": 60, "hole_diameter": 8,
	}))
	res := resultOf(t, rep, CheckLayers)
	assert.False(t, res.Passed)
	assert.Contains(t, res.Message, mechdraw.LayerHole)
}

func TestClosureCheckFlagsOpenOutline(t *testing.T) {
	d := mechdraw.NewDrawing()
	d.Add(mechdraw.Polyline{
		Verts: []ms2.Vec{{}, {X: 100}, {X: 100, Y: 60}, {X: 0.5, Y: 60}},
		Lay:   mechdraw.LayerOutline,
	})
	rep := Validate(d, plateSpec(mechdraw.Params{"length": 100, "width": 60}))
	assert.False(t, resultOf(t, rep, CheckClosure).Passed)
}

func TestClosureCheckAcceptsCoincidentEndpoints(t *testing.T) {
	d := mechdraw.NewDrawing()
	d.Add(mechdraw.Polyline{
		Verts: []ms2.Vec{{}, {X: 100}, {X: 100, Y: 60}, {Y: 60}, {}},
		Lay:   mechdraw.LayerOutline,
	})
	rep := Validate(d, plateSpec(mechdraw.Params{"length": 100, "width": 60}))
	assert.True(t, resultOf(t, rep, CheckClosure).Passed)
}

func TestDimensionCheck(t *testing.T) {
	spec := plateSpec(mechdraw.Params{"length": 100, "width": 60})
	t.Run("within tolerance", func(t *testing.T) {
		rep := Validate(plateDrawing(100.5, 59.6), spec)
		assert.True(t, resultOf(t, rep, CheckDimensions).Passed)
	})
	t.Run("swapped axes accepted", func(t *testing.T) {
		rep := Validate(plateDrawing(60, 100), spec)
		assert.True(t, resultOf(t, rep, CheckDimensions).Passed)
	})
	t.Run("out of tolerance", func(t *testing.T) {
		rep := Validate(plateDrawing(103, 60), spec)
		res := resultOf(t, rep, CheckDimensions)
		assert.False(t, res.Passed)
		assert.Contains(t, res.Message, "100")
	})
}

func TestContainmentBoundaryIsExclusive(t *testing.T) {
	spec := plateSpec(mechdraw.Params{"length": 100, "width": 60})
	// Center-to-edge distance exactly equals the radius: must fail.
	d := plateDrawing(100, 60, mechdraw.Circle{Center: ms2.Vec{X: 15, Y: 30}, Radius: 15})
	rep := Validate(d, spec)
	assert.False(t, resultOf(t, rep, CheckContainment).Passed)

	// A hair further in passes.
	d = plateDrawing(100, 60, mechdraw.Circle{Center: ms2.Vec{X: 15.01, Y: 30}, Radius: 15})
	rep = Validate(d, spec)
	assert.True(t, resultOf(t, rep, CheckContainment).Passed)
}

func TestContainmentOversizedHole(t *testing.T) {
	// Diameter 30 placed 10 mm from the nearest edge: 10 < 15.
	d := plateDrawing(100, 60, mechdraw.Circle{Center: ms2.Vec{X: 10, Y: 30}, Radius: 15})
	rep := Validate(d, plateSpec(mechdraw.Params{"length": 100, "width": 60}))
	res := resultOf(t, rep, CheckContainment)
	assert.False(t, res.Passed)
	assert.Contains(t, res.Message, "hole 0")
}

func TestClearanceOverlapFails(t *testing.T) {
	spec := plateSpec(mechdraw.Params{"length": 100, "width": 60})
	// Two 20 mm holes 15 mm apart: 15 < 20.
	d := plateDrawing(100, 60,
		mechdraw.Circle{Center: ms2.Vec{X: 40, Y: 30}, Radius: 10},
		mechdraw.Circle{Center: ms2.Vec{X: 55, Y: 30}, Radius: 10},
	)
	rep := Validate(d, spec)
	res := resultOf(t, rep, CheckClearance)
	assert.False(t, res.Passed)
	assert.Contains(t, res.Message, "holes 0 and 1")
}

func TestClearanceConcentricCirclesPass(t *testing.T) {
	spec := plateSpec(mechdraw.Params{"length": 100, "width": 60})
	// A stepped feature shows as concentric circles sharing a center; they
	// are one hole, not a collision.
	d := plateDrawing(100, 60,
		mechdraw.Circle{Center: ms2.Vec{X: 50, Y: 30}, Radius: 6},
		mechdraw.Circle{Center: ms2.Vec{X: 50, Y: 30}, Radius: 3},
	)
	rep := Validate(d, spec)
	assert.True(t, resultOf(t, rep, CheckClearance).Passed)
}

func TestGeneratedCounterborePlatePasses(t *testing.T) {
	spec := plateSpec(mechdraw.Params{
		"length": 100,
		"width":  60,
		"counterbores": []any{
			map[string]any{"diameter": 12.0, "depth": 5.0, "x": 50.0, "y": 30.0},
		},
	})
	d, err := parts.Generate(spec.Type, spec.Parameters)
	require.NoError(t, err)
	rep := Validate(d, spec)
	assert.True(t, rep.Passed(), "report:\n%s", rep)
}

func TestSquatSpringPassesDimensionCheck(t *testing.T) {
	spec := mechdraw.PartSpec{Type: "spring", Parameters: mechdraw.Params{
		"wire_diameter": 2,
		"coil_diameter": 100,
		"free_length":   40,
		"coils":         4,
	}}
	d, err := parts.Generate(spec.Type, spec.Parameters)
	require.NoError(t, err)
	rep := Validate(d, spec)
	res := resultOf(t, rep, CheckDimensions)
	assert.True(t, res.Passed, res.Message)
}

func TestGeneratedPulleyPassesAllChecks(t *testing.T) {
	spec := mechdraw.PartSpec{Type: "pulley", Parameters: mechdraw.Params{
		"outer_diameter": 100,
		"bore_diameter":  20,
		"width":          30,
		"grooves":        2,
	}}
	d, err := parts.Generate(spec.Type, spec.Parameters)
	require.NoError(t, err)
	rep := Validate(d, spec)
	assert.True(t, rep.Passed(), "report:\n%s", rep)
}

func TestGeneratedCouplingPassesAllChecks(t *testing.T) {
	spec := mechdraw.PartSpec{Type: "coupling", Parameters: mechdraw.Params{
		"inner_diameter": 20,
		"outer_diameter": 50,
		"length":         40,
	}}
	d, err := parts.Generate(spec.Type, spec.Parameters)
	require.NoError(t, err)
	rep := Validate(d, spec)
	assert.True(t, rep.Passed(), "report:\n%s", rep)
}

func TestClearanceTangentHolesPass(t *testing.T) {
	spec := plateSpec(mechdraw.Params{"length": 100, "width": 60})
	// Center distance exactly the sum of radii: tangent, not overlapping.
	d := plateDrawing(100, 60,
		mechdraw.Circle{Center: ms2.Vec{X: 30, Y: 30}, Radius: 10},
		mechdraw.Circle{Center: ms2.Vec{X: 50, Y: 30}, Radius: 10},
	)
	rep := Validate(d, spec)
	assert.True(t, resultOf(t, rep, CheckClearance).Passed)
}

func TestReportStringListsEveryCheck(t *testing.T) {
	d := plateDrawing(100, 60)
	rep := Validate(d, plateSpec(mechdraw.Params{"length": 100, "width": 60}))
	s := rep.String()
	for _, name := range []string{CheckUnits, CheckLayers, CheckClosure, CheckDimensions, CheckContainment, CheckClearance} {
		assert.Contains(t, s, name)
	}
}
