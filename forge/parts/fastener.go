package parts

import (
	"github.com/soypat/geometry/ms2"

	"github.com/partforge/mechdraw"
	"github.com/partforge/mechdraw/forge/stdparts"
)

func init() {
	Register("bolt", generateBolt)
	Register("screw", generateScrew)
	Register("nut", generateNut)
	Register("washer", generateWasher)
}

// resolveSize merges ISO fastener table dimensions for a "size" parameter
// such as "M10" under the caller's explicit fields.
func resolveSize(p mechdraw.Params) (mechdraw.Params, error) {
	code, ok := p.String("size")
	if !ok {
		return p, nil
	}
	resolved, err := stdparts.Resolve(stdparts.FamilyFastener, code)
	if err != nil {
		return nil, err
	}
	return stdparts.Merge(resolved, p), nil
}

// generateBolt draws a hex-head bolt in side view: shank up the +Y axis with
// the head on top, thread witness lines along the shank.
func generateBolt(p mechdraw.Params) (*mechdraw.Drawing, error) {
	const part = "bolt"
	p, err := resolveSize(p)
	if err != nil {
		return nil, err
	}
	dia, err := p.RequirePositive(part, "diameter")
	if err != nil {
		return nil, err
	}
	length, err := p.RequirePositive(part, "length")
	if err != nil {
		return nil, err
	}
	headHeight := p.FloatDefault("head_height", 0.7*dia)
	headWidth := p.FloatDefault("head_width", 1.8*dia)
	if headHeight <= 0 {
		return nil, paramErrorf(part, "head_height", "must be greater than 0, got %g", headHeight)
	}
	if headWidth <= dia {
		return nil, paramErrorf(part, "head_width", "head width %g must exceed shank diameter %g", headWidth, dia)
	}
	threadLen := p.FloatDefault("thread_length", 0.7*length)
	if threadLen <= 0 || threadLen > length {
		return nil, paramErrorf(part, "thread_length", "must be within (0, %g], got %g", length, threadLen)
	}

	r := dia / 2
	t := mechdraw.NewTurtle()
	t.MoveTo(-r, 0).Rectangle(dia, length)
	t.MoveTo(-headWidth/2, length).Rectangle(headWidth, headHeight)
	ents, err := t.Extract()
	if err != nil {
		return nil, err
	}

	d := mechdraw.NewDrawing()
	d.Add(ents...)
	d.Add(
		mechdraw.Line{A: ms2.Vec{X: -r * 0.9}, B: ms2.Vec{X: -r * 0.9, Y: threadLen}, Lay: mechdraw.LayerThread},
		mechdraw.Line{A: ms2.Vec{X: r * 0.9}, B: ms2.Vec{X: r * 0.9, Y: threadLen}, Lay: mechdraw.LayerThread},
		mechdraw.Line{A: ms2.Vec{Y: -2}, B: ms2.Vec{Y: length + headHeight + 2}, Lay: mechdraw.LayerCenter},
	)
	return d, nil
}

// generateScrew draws a pan-head screw in side view.
func generateScrew(p mechdraw.Params) (*mechdraw.Drawing, error) {
	const part = "screw"
	headDia, err := p.RequirePositive(part, "head_diameter")
	if err != nil {
		return nil, err
	}
	headHeight, err := p.RequirePositive(part, "head_height")
	if err != nil {
		return nil, err
	}
	bodyDia, err := p.RequirePositive(part, "body_diameter")
	if err != nil {
		return nil, err
	}
	bodyLen, err := p.RequirePositive(part, "body_length")
	if err != nil {
		return nil, err
	}
	if bodyDia >= headDia {
		return nil, paramErrorf(part, "body_diameter", "body diameter %g must be less than head diameter %g", bodyDia, headDia)
	}

	br := bodyDia / 2
	t := mechdraw.NewTurtle()
	t.MoveTo(-br, 0).Rectangle(bodyDia, bodyLen)
	t.MoveTo(-headDia/2, bodyLen).Rectangle(headDia, headHeight)
	ents, err := t.Extract()
	if err != nil {
		return nil, err
	}

	margin := 0.1 * bodyDia
	d := mechdraw.NewDrawing()
	d.Add(ents...)
	d.Add(
		mechdraw.Line{A: ms2.Vec{X: -br + margin}, B: ms2.Vec{X: -br + margin, Y: bodyLen}, Lay: mechdraw.LayerThread},
		mechdraw.Line{A: ms2.Vec{X: br - margin}, B: ms2.Vec{X: br - margin, Y: bodyLen}, Lay: mechdraw.LayerThread},
		mechdraw.Line{A: ms2.Vec{Y: -2}, B: ms2.Vec{Y: bodyLen + headHeight + 2}, Lay: mechdraw.LayerCenter},
	)
	return d, nil
}

// sqrt3 is used to convert a hexagon's across-flats width to its
// circumradius.
const sqrt3 = 1.7320508075688772935274463415058723669428052538103806280558069794

// generateNut draws a hex nut in front view: hexagon outline with the
// threaded bore.
func generateNut(p mechdraw.Params) (*mechdraw.Drawing, error) {
	const part = "nut"
	p, err := resolveSize(p)
	if err != nil {
		return nil, err
	}
	dia, err := p.RequirePositive(part, "diameter")
	if err != nil {
		return nil, err
	}
	acrossFlats := p.FloatDefault("head_width", 1.75*dia)
	if acrossFlats <= dia {
		return nil, paramErrorf(part, "head_width", "across-flats width %g must exceed thread diameter %g", acrossFlats, dia)
	}

	t := mechdraw.NewTurtle()
	t.SetHeading(30).RegularPolygon(6, acrossFlats/sqrt3)
	ents, err := t.Extract()
	if err != nil {
		return nil, err
	}

	d := mechdraw.NewDrawing()
	d.Add(ents...)
	d.Add(
		mechdraw.Circle{Radius: dia / 2, Lay: mechdraw.LayerHole},
		mechdraw.Circle{Radius: dia / 2 * 0.85, Lay: mechdraw.LayerThread},
		mechdraw.Line{A: ms2.Vec{X: -acrossFlats * 0.7}, B: ms2.Vec{X: acrossFlats * 0.7}, Lay: mechdraw.LayerCenter},
	)
	return d, nil
}

// generateWasher draws a flat washer in front view as two concentric
// circles.
func generateWasher(p mechdraw.Params) (*mechdraw.Drawing, error) {
	const part = "washer"
	p, err := resolveSize(p)
	if err != nil {
		return nil, err
	}
	// A resolved fastener size carries washer_* fields; explicit records
	// name the diameters directly.
	if !p.Has("inner_diameter") && p.Has("washer_inner") {
		p = p.Clone()
		p["inner_diameter"] = p["washer_inner"]
		p["outer_diameter"] = p["washer_outer"]
	}
	innerDia, err := p.RequirePositive(part, "inner_diameter")
	if err != nil {
		return nil, err
	}
	outerDia, err := p.RequirePositive(part, "outer_diameter")
	if err != nil {
		return nil, err
	}
	if outerDia <= innerDia {
		return nil, paramErrorf(part, "outer_diameter", "outer diameter %g must exceed inner diameter %g", outerDia, innerDia)
	}

	d := mechdraw.NewDrawing()
	d.Add(
		mechdraw.Circle{Radius: outerDia / 2, Lay: mechdraw.LayerOutline},
		mechdraw.Circle{Radius: innerDia / 2, Lay: mechdraw.LayerHole},
	)
	return d, nil
}
