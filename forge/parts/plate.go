package parts

import (
	"fmt"

	"github.com/soypat/geometry/ms2"

	"github.com/partforge/mechdraw"
)

func init() {
	Register("plate", generatePlate)
}

// platePlacement extracts an x/y placement from a feature sub-record.
// Placement must be given completely or not at all: a partially filled
// placement is rejected rather than guessed at.
func platePlacement(part, feature string, p mechdraw.Params, defX, defY float32) (float32, float32, error) {
	hasX, hasY := p.Has("x"), p.Has("y")
	if hasX != hasY {
		return 0, 0, paramErrorf(part, feature, "placement must supply both x and y or neither")
	}
	if !hasX {
		return defX, defY, nil
	}
	// The sub-record keys are plain "x"/"y"; the feature name only
	// qualifies the error.
	x, ok := p.Float("x")
	if !ok {
		return 0, 0, paramErrorf(part, feature+".x", "not a number: %v", p["x"])
	}
	y, ok := p.Float("y")
	if !ok {
		return 0, 0, paramErrorf(part, feature+".y", "not a number: %v", p["y"])
	}
	return x, y, nil
}

// subRecords decodes a list-valued parameter into per-feature records.
func subRecords(part, field string, p mechdraw.Params) ([]mechdraw.Params, error) {
	v, ok := p[field]
	if !ok {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, paramErrorf(part, field, "expected a list of records, got %T", v)
	}
	out := make([]mechdraw.Params, len(list))
	for i, item := range list {
		switch m := item.(type) {
		case map[string]any:
			out[i] = mechdraw.Params(m)
		case mechdraw.Params:
			out[i] = m
		default:
			return nil, paramErrorf(part, fmt.Sprintf("%s[%d]", field, i), "expected a record, got %T", item)
		}
	}
	return out, nil
}

func subRecord(part, field string, p mechdraw.Params) (mechdraw.Params, error) {
	v, ok := p[field]
	if !ok {
		return nil, nil
	}
	switch m := v.(type) {
	case map[string]any:
		return mechdraw.Params(m), nil
	case mechdraw.Params:
		return m, nil
	}
	return nil, paramErrorf(part, field, "expected a record, got %T", v)
}

func generatePlate(p mechdraw.Params) (*mechdraw.Drawing, error) {
	const part = "plate"
	length, err := p.RequirePositive(part, "length")
	if err != nil {
		return nil, err
	}
	width, err := p.RequirePositive(part, "width")
	if err != nil {
		return nil, err
	}
	holeDia := p.FloatDefault("hole_diameter", 0)
	cornerOffset := p.FloatDefault("corner_offset", 10)
	chamfer := p.FloatDefault("chamfer_size", 0)
	fillet := p.FloatDefault("fillet_radius", 0)

	if holeDia < 0 {
		return nil, paramErrorf(part, "hole_diameter", "must not be negative, got %g", holeDia)
	}
	if holeDia > 0 {
		r := holeDia / 2
		if cornerOffset <= 0 {
			return nil, paramErrorf(part, "corner_offset", "must be greater than 0 when holes are requested")
		}
		if cornerOffset+r > length || cornerOffset+r > width {
			return nil, paramErrorf(part, "corner_offset", "hole at offset %g with diameter %g leaves the plate", cornerOffset, holeDia)
		}
	}
	if chamfer > 0 && fillet > 0 {
		return nil, paramErrorf(part, "chamfer_size", "chamfer and fillet are mutually exclusive")
	}
	if chamfer > 0 && (2*chamfer >= length || 2*chamfer >= width) {
		return nil, paramErrorf(part, "chamfer_size", "chamfer %g too large for %gx%g plate", chamfer, length, width)
	}
	if fillet > 0 && (2*fillet >= length || 2*fillet >= width) {
		return nil, paramErrorf(part, "fillet_radius", "fillet %g too large for %gx%g plate", fillet, length, width)
	}

	slots, err := subRecords(part, "slots", p)
	if err != nil {
		return nil, err
	}
	for i, slot := range slots {
		field := fmt.Sprintf("slots[%d]", i)
		sl, ok := slot.Float("length")
		if !ok || sl <= 0 {
			return nil, paramErrorf(part, field+".length", "must be greater than 0")
		}
		sw, ok := slot.Float("width")
		if !ok || sw <= 0 {
			return nil, paramErrorf(part, field+".width", "must be greater than 0")
		}
		if sw >= sl {
			return nil, paramErrorf(part, field+".width", "slot width %g must be less than length %g", sw, sl)
		}
		x, y, err := platePlacement(part, field, slot, length/2, width/2)
		if err != nil {
			return nil, err
		}
		if x < 0 || x > length || y < 0 || y > width {
			return nil, paramErrorf(part, field, "slot center (%g, %g) outside the plate", x, y)
		}
	}
	threaded, err := subRecords(part, "threaded_holes", p)
	if err != nil {
		return nil, err
	}
	for i, th := range threaded {
		field := fmt.Sprintf("threaded_holes[%d]", i)
		dia, ok := th.Float("diameter")
		if !ok || dia <= 0 {
			return nil, paramErrorf(part, field+".diameter", "must be greater than 0")
		}
		if _, _, err := platePlacement(part, field, th, length/2, width/2); err != nil {
			return nil, err
		}
	}
	counterbores, err := subRecords(part, "counterbores", p)
	if err != nil {
		return nil, err
	}
	for i, cb := range counterbores {
		field := fmt.Sprintf("counterbores[%d]", i)
		dia, ok := cb.Float("diameter")
		if !ok || dia <= 0 {
			return nil, paramErrorf(part, field+".diameter", "must be greater than 0")
		}
		if depth, ok := cb.Float("depth"); !ok || depth <= 0 {
			return nil, paramErrorf(part, field+".depth", "must be greater than 0")
		}
		if through := cb.FloatDefault("through_diameter", dia/2); through >= dia {
			return nil, paramErrorf(part, field+".through_diameter", "through hole %g must be smaller than counterbore %g", through, dia)
		}
		if _, _, err := platePlacement(part, field, cb, length/2, width/2); err != nil {
			return nil, err
		}
	}
	keyway, err := subRecord(part, "keyway", p)
	if err != nil {
		return nil, err
	}
	if keyway != nil {
		kw, ok := keyway.Float("width")
		if !ok || kw <= 0 {
			return nil, paramErrorf(part, "keyway.width", "must be greater than 0")
		}
		kl, ok := keyway.Float("length")
		if !ok || kl <= 0 {
			return nil, paramErrorf(part, "keyway.length", "must be greater than 0")
		}
		if _, _, err := platePlacement(part, "keyway", keyway, length/2, 0); err != nil {
			return nil, err
		}
	}

	d := mechdraw.NewDrawing()
	t := mechdraw.NewTurtle()

	// Outline.
	switch {
	case chamfer > 0:
		c := chamfer
		d.Add(mechdraw.Polyline{
			Verts: []ms2.Vec{
				{X: c, Y: 0}, {X: length - c, Y: 0},
				{X: length, Y: c}, {X: length, Y: width - c},
				{X: length - c, Y: width}, {X: c, Y: width},
				{X: 0, Y: width - c}, {X: 0, Y: c},
			},
			Closed: true,
			Lay:    mechdraw.LayerOutline,
		})
	case fillet > 0:
		// Rounded rectangle traced with the cursor: straight flanks joined
		// by quarter-turn arcs.
		r := fillet
		t.MoveTo(r, 0).SetHeading(0)
		for i := 0; i < 2; i++ {
			t.Forward(length - 2*r).Arc(r, 90)
			t.Forward(width - 2*r).Arc(r, 90)
		}
	default:
		t.MoveTo(0, 0).Rectangle(length, width)
	}

	// Corner holes at equal offsets from each edge.
	if holeDia > 0 {
		r := holeDia / 2
		t.SetLayer(mechdraw.LayerHole)
		for _, c := range [4]ms2.Vec{
			{X: cornerOffset, Y: cornerOffset},
			{X: length - cornerOffset, Y: cornerOffset},
			{X: length - cornerOffset, Y: width - cornerOffset},
			{X: cornerOffset, Y: width - cornerOffset},
		} {
			t.MoveTo(c.X, c.Y).Circle(r)
		}
	}

	// Slots, possibly rotated.
	for i, slot := range slots {
		field := fmt.Sprintf("slots[%d]", i)
		sl, _ := slot.Float("length")
		sw, _ := slot.Float("width")
		x, y, _ := platePlacement(part, field, slot, length/2, width/2)
		angle := slot.FloatDefault("angle", 0)
		t.SetLayer(mechdraw.LayerHole).MoveTo(x, y).SetHeading(angle).Slot(sl, sw)
	}

	// Threaded holes: bore circle plus dashed minor-diameter circle and a
	// center cross.
	for i, th := range threaded {
		field := fmt.Sprintf("threaded_holes[%d]", i)
		dia, _ := th.Float("diameter")
		x, y, _ := platePlacement(part, field, th, length/2, width/2)
		center := ms2.Vec{X: x, Y: y}
		d.Add(
			mechdraw.Circle{Center: center, Radius: dia / 2, Lay: mechdraw.LayerHole},
			// Thread minor diameter is drawn at 85% of nominal.
			mechdraw.Circle{Center: center, Radius: dia / 2 * 0.85, Lay: mechdraw.LayerThread},
			mechdraw.Line{A: ms2.Vec{X: x - dia, Y: y}, B: ms2.Vec{X: x + dia, Y: y}, Lay: mechdraw.LayerCenter},
			mechdraw.Line{A: ms2.Vec{X: x, Y: y - dia}, B: ms2.Vec{X: x, Y: y + dia}, Lay: mechdraw.LayerCenter},
		)
	}

	// Counterbores: concentric circles with a depth note.
	for i, cb := range counterbores {
		field := fmt.Sprintf("counterbores[%d]", i)
		dia, _ := cb.Float("diameter")
		depth, _ := cb.Float("depth")
		through := cb.FloatDefault("through_diameter", dia/2)
		x, y, _ := platePlacement(part, field, cb, length/2, width/2)
		center := ms2.Vec{X: x, Y: y}
		d.Add(
			mechdraw.Circle{Center: center, Radius: dia / 2, Lay: mechdraw.LayerHole},
			mechdraw.Circle{Center: center, Radius: through / 2, Lay: mechdraw.LayerHole},
		)
		d.Annotate(mechdraw.Annotation{
			At:     ms2.Vec{X: x + dia/2 + 2, Y: y},
			Text:   fmt.Sprintf("depth %g", depth),
			Height: minf(dia/2, 3),
			Lay:    mechdraw.LayerCenter,
		})
	}

	// Keyway: open rectangle cut into an edge.
	if keyway != nil {
		kw, _ := keyway.Float("width")
		kl, _ := keyway.Float("length")
		x, y, _ := platePlacement(part, "keyway", keyway, length/2, 0)
		orientation, _ := keyway.String("orientation")
		var verts []ms2.Vec
		if orientation == "vertical" {
			verts = []ms2.Vec{
				{X: x, Y: y - kl/2}, {X: x + kw, Y: y - kl/2},
				{X: x + kw, Y: y + kl/2}, {X: x, Y: y + kl/2},
			}
		} else {
			verts = []ms2.Vec{
				{X: x - kl/2, Y: y}, {X: x + kl/2, Y: y},
				{X: x + kl/2, Y: y + kw}, {X: x - kl/2, Y: y + kw},
			}
		}
		d.Add(mechdraw.Polyline{Verts: verts, Closed: true, Lay: mechdraw.LayerHole})
	}

	ents, err := t.Extract()
	if err != nil {
		return nil, err
	}
	d.Add(ents...)
	return d, nil
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
