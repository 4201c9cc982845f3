// Package accept checks finished drawings against drafting rules and the
// declared nominal dimensions of the part they depict.
//
// Validation never short-circuits: every check runs and reports its own
// outcome so a caller can fix all problems in one pass instead of
// rediscovering them one at a time.
package accept

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"

	"github.com/partforge/mechdraw"
)

// Check names in report order.
const (
	CheckUnits       = "units"
	CheckLayers      = "layers"
	CheckClosure     = "closure"
	CheckDimensions  = "dimensions"
	CheckContainment = "hole_containment"
	CheckClearance   = "hole_clearance"
)

// dimTol is the allowance on nominal outline dimensions, in millimeters.
const dimTol = 1.0

// Result is the outcome of a single check.
type Result struct {
	Name    string `json:"name"`
	Passed  bool   `json:"passed"`
	Message string `json:"message,omitempty"`
}

// Report collects every check's outcome in a fixed order.
type Report struct {
	Results []Result `json:"results"`
}

// Passed reports whether every check passed.
func (r Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// String renders the report one check per line, PASS or FAIL first.
func (r Report) String() string {
	var sb strings.Builder
	for _, res := range r.Results {
		verdict := "PASS"
		if !res.Passed {
			verdict = "FAIL"
		}
		fmt.Fprintf(&sb, "%s  %-18s", verdict, res.Name)
		if res.Message != "" {
			sb.WriteString("  " + res.Message)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Validate runs the full ordered check set against a drawing. The part spec
// supplies the declared type and nominal dimensions the drawing is checked
// against. Validation is pure: the same drawing and spec always yield the
// same report.
func Validate(d *mechdraw.Drawing, spec mechdraw.PartSpec) Report {
	var rep Report
	rep.Results = append(rep.Results,
		checkUnits(d),
		checkLayers(d, spec),
		checkClosure(d),
		checkDimensions(d, spec),
		checkContainment(d),
		checkClearance(d),
	)
	return rep
}

func checkUnits(d *mechdraw.Drawing) Result {
	if d.Units != mechdraw.UnitMillimeter {
		return Result{Name: CheckUnits, Message: fmt.Sprintf("drawing units are %s, want %s", d.Units, mechdraw.UnitMillimeter)}
	}
	return Result{Name: CheckUnits, Passed: true, Message: "units are millimeters"}
}

// requiredLayers names the layers a drawing of the given part type must
// populate. Conditional features only demand their layer when the parameters
// actually request them.
func requiredLayers(spec mechdraw.PartSpec) []string {
	p := spec.Parameters
	switch spec.Type {
	case "plate":
		layers := []string{mechdraw.LayerOutline}
		if p.FloatDefault("hole_diameter", 0) > 0 || p.Has("slots") ||
			p.Has("threaded_holes") || p.Has("counterbores") || p.Has("keyway") {
			layers = append(layers, mechdraw.LayerHole)
		}
		if p.Has("threaded_holes") {
			layers = append(layers, mechdraw.LayerThread)
		}
		return layers
	case "gear", "sprocket":
		layers := []string{mechdraw.LayerOutline, mechdraw.LayerCenter}
		if p.FloatDefault("bore_diameter", 0) > 0 {
			layers = append(layers, mechdraw.LayerHole)
		}
		return layers
	case "pulley", "coupling":
		return []string{mechdraw.LayerOutline, mechdraw.LayerHole, mechdraw.LayerCenter}
	case "retainer":
		return []string{mechdraw.LayerOutline, mechdraw.LayerCenter}
	case "flange", "bearing":
		return []string{mechdraw.LayerOutline, mechdraw.LayerHole, mechdraw.LayerCenter}
	case "spring", "shaft", "chassis_frame":
		return []string{mechdraw.LayerOutline, mechdraw.LayerCenter}
	case "bolt", "screw":
		return []string{mechdraw.LayerOutline, mechdraw.LayerThread, mechdraw.LayerCenter}
	case "nut":
		return []string{mechdraw.LayerOutline, mechdraw.LayerHole, mechdraw.LayerThread, mechdraw.LayerCenter}
	case "washer":
		return []string{mechdraw.LayerOutline, mechdraw.LayerHole}
	case "bracket":
		layers := []string{mechdraw.LayerOutline}
		if p.FloatDefault("hole_diameter", 0) > 0 {
			layers = append(layers, mechdraw.LayerHole)
		}
		return layers
	default:
		return []string{mechdraw.LayerOutline}
	}
}

func checkLayers(d *mechdraw.Drawing, spec mechdraw.PartSpec) Result {
	var missing []string
	for _, lay := range requiredLayers(spec) {
		if len(d.OnLayer(lay)) == 0 {
			missing = append(missing, lay)
		}
	}
	if len(missing) > 0 {
		return Result{Name: CheckLayers, Message: "missing or empty layers: " + strings.Join(missing, ", ")}
	}
	return Result{Name: CheckLayers, Passed: true, Message: "all required layers populated"}
}

// characteristicLength is the largest extent of the drawing, used to scale
// the closure tolerance. Degenerate drawings fall back to 1 mm.
func characteristicLength(d *mechdraw.Drawing) float32 {
	sz := d.Bounds().Size()
	l := math32.Max(sz.X, sz.Y)
	if l <= 0 || math32.IsNaN(l) {
		return 1
	}
	return l
}

func checkClosure(d *mechdraw.Drawing) Result {
	tol := 1e-6 * characteristicLength(d)
	var open int
	var first string
	for i, e := range d.OnLayer(mechdraw.LayerOutline) {
		pl, ok := e.(mechdraw.Polyline)
		if !ok {
			continue
		}
		if !pl.IsClosed(tol) {
			open++
			if first == "" {
				first = fmt.Sprintf("outline %d endpoints do not meet within %g", i, tol)
			}
		}
	}
	if open > 0 {
		return Result{Name: CheckClosure, Message: fmt.Sprintf("%d open outline(s): %s", open, first)}
	}
	return Result{Name: CheckClosure, Passed: true, Message: "all outlines closed"}
}

// nominalSize returns the declared footprint of the part, when its parameter
// family implies one. ok is false for types whose parameters do not pin the
// outline bounding box.
func nominalSize(spec mechdraw.PartSpec) (w, h float32, ok bool) {
	p := spec.Parameters
	switch spec.Type {
	case "plate", "chassis_frame":
		l, okL := p.Float("length")
		wd, okW := p.Float("width")
		return l, wd, okL && okW
	case "shaft":
		dia, okD := p.Float("diameter")
		l, okL := p.Float("length")
		return dia, l, okD && okL
	case "gear":
		m, okM := p.Float("module")
		teeth, okT := p.Float("teeth")
		tipDia := m * (teeth + 2)
		return tipDia, tipDia, okM && okT
	case "flange", "bearing", "washer":
		od, okO := p.Float("outer_diameter")
		return od, od, okO
	case "spring":
		coil, okC := p.Float("coil_diameter")
		free, okF := p.Float("free_length")
		return coil, free, okC && okF
	case "pulley":
		od, okO := p.Float("outer_diameter")
		wd, okW := p.Float("width")
		return od, wd, okO && okW
	case "coupling":
		od, okO := p.Float("outer_diameter")
		l, okL := p.Float("length")
		return od, l, okO && okL
	case "retainer":
		od, okO := p.Float("outer_diameter")
		th, okT := p.Float("thickness")
		return od, th, okO && okT
	}
	return 0, 0, false
}

func checkDimensions(d *mechdraw.Drawing, spec mechdraw.PartSpec) Result {
	nomW, nomH, ok := nominalSize(spec)
	if !ok {
		return Result{Name: CheckDimensions, Passed: true, Message: "no nominal dimensions declared"}
	}
	box, ok := outlineBounds(d)
	if !ok {
		return Result{Name: CheckDimensions, Message: "no outline entities to measure"}
	}
	sz := box.Size()
	straight := math32.Abs(sz.X-nomW) <= dimTol && math32.Abs(sz.Y-nomH) <= dimTol
	swapped := math32.Abs(sz.X-nomH) <= dimTol && math32.Abs(sz.Y-nomW) <= dimTol
	if !straight && !swapped {
		return Result{
			Name:    CheckDimensions,
			Message: fmt.Sprintf("outline is %.2f x %.2f, want %g x %g (±%g)", sz.X, sz.Y, nomW, nomH, dimTol),
		}
	}
	return Result{Name: CheckDimensions, Passed: true, Message: fmt.Sprintf("outline %.2f x %.2f within tolerance", sz.X, sz.Y)}
}

// outlineBounds is the joint bounding box of every outline-layer entity.
func outlineBounds(d *mechdraw.Drawing) (ms2.Box, bool) {
	ents := d.OnLayer(mechdraw.LayerOutline)
	if len(ents) == 0 {
		return ms2.Box{}, false
	}
	box := ents[0].Bounds()
	for _, e := range ents[1:] {
		box = box.Union(e.Bounds())
	}
	return box, true
}

// holeCircles lists every circle on the hole layer, in drawing order so
// failure messages index holes stably.
func holeCircles(d *mechdraw.Drawing) []mechdraw.Circle {
	var holes []mechdraw.Circle
	for _, e := range d.OnLayer(mechdraw.LayerHole) {
		if c, ok := e.(mechdraw.Circle); ok {
			holes = append(holes, c)
		}
	}
	return holes
}

func checkContainment(d *mechdraw.Drawing) Result {
	holes := holeCircles(d)
	if len(holes) == 0 {
		return Result{Name: CheckContainment, Passed: true, Message: "no holes"}
	}
	box, ok := outlineBounds(d)
	if !ok {
		return Result{Name: CheckContainment, Message: "holes present but no outline to contain them"}
	}
	var bad []string
	for i, h := range holes {
		// The center must clear every edge by more than the radius; a hole
		// tangent to the boundary fails.
		inside := h.Center.X-box.Min.X > h.Radius &&
			box.Max.X-h.Center.X > h.Radius &&
			h.Center.Y-box.Min.Y > h.Radius &&
			box.Max.Y-h.Center.Y > h.Radius
		if !inside {
			bad = append(bad, fmt.Sprintf("hole %d at (%g, %g) r=%g", i, h.Center.X, h.Center.Y, h.Radius))
		}
	}
	if len(bad) > 0 {
		return Result{Name: CheckContainment, Message: "holes breach the outline: " + strings.Join(bad, "; ")}
	}
	return Result{Name: CheckContainment, Passed: true, Message: fmt.Sprintf("%d hole(s) inside the outline", len(holes))}
}

func checkClearance(d *mechdraw.Drawing) Result {
	holes := holeCircles(d)
	var bad []string
	for i := 0; i < len(holes); i++ {
		for j := i + 1; j < len(holes); j++ {
			dist := ms2.Norm(ms2.Sub(holes[j].Center, holes[i].Center))
			if dist <= 1e-3 {
				// Concentric circles depict one stepped feature, such as a
				// counterbore's seat around its through hole, not two
				// colliding holes.
				continue
			}
			if dist < holes[i].Radius+holes[j].Radius {
				bad = append(bad, fmt.Sprintf("holes %d and %d overlap (distance %.3f < %g)", i, j, dist, holes[i].Radius+holes[j].Radius))
			}
		}
	}
	if len(bad) > 0 {
		return Result{Name: CheckClearance, Message: strings.Join(bad, "; ")}
	}
	return Result{Name: CheckClearance, Passed: true, Message: "no overlapping holes"}
}
