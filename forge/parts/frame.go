package parts

import (
	"github.com/soypat/geometry/ms2"

	"github.com/partforge/mechdraw"
)

func init() {
	Register("chassis_frame", generateChassisFrame)
	Register("bracket", generateBracket)
}

// generateChassisFrame draws a ladder frame in top view: two longitudinal
// rails joined by evenly spaced cross members. With n members the spacing is
// length/(n-1) so the end members sit flush with the rail ends; a single
// member is centered.
func generateChassisFrame(p mechdraw.Params) (*mechdraw.Drawing, error) {
	const part = "chassis_frame"
	length, err := p.RequirePositive(part, "length")
	if err != nil {
		return nil, err
	}
	width, err := p.RequirePositive(part, "width")
	if err != nil {
		return nil, err
	}
	railW, err := p.RequirePositive(part, "rail_width")
	if err != nil {
		return nil, err
	}
	if 2*railW >= width {
		return nil, paramErrorf(part, "rail_width", "rails of width %g leave no interior in a %g wide frame", railW, width)
	}
	members, err := optionalInt(part, "cross_members", p, 2)
	if err != nil {
		return nil, err
	}
	if members < 1 {
		return nil, paramErrorf(part, "cross_members", "need at least 1 cross member, got %d", members)
	}
	memberW := p.FloatDefault("cross_member_width", railW)
	if memberW <= 0 || memberW > length {
		return nil, paramErrorf(part, "cross_member_width", "must be within (0, %g], got %g", length, memberW)
	}

	t := mechdraw.NewTurtle()
	// Rails run along +X, frame spans [0,length] x [0,width].
	t.MoveTo(0, 0).Rectangle(length, railW)
	t.MoveTo(0, width-railW).Rectangle(length, railW)

	innerH := width - 2*railW
	if members == 1 {
		t.MoveTo((length-memberW)/2, railW).Rectangle(memberW, innerH)
	} else {
		spacing := length / float32(members-1)
		for i := 0; i < members; i++ {
			x := float32(i)*spacing - memberW/2
			// Clamp the end members inside the rails.
			if x < 0 {
				x = 0
			}
			if x+memberW > length {
				x = length - memberW
			}
			t.MoveTo(x, railW).Rectangle(memberW, innerH)
		}
	}
	ents, err := t.Extract()
	if err != nil {
		return nil, err
	}

	d := mechdraw.NewDrawing()
	d.Add(ents...)
	d.Add(mechdraw.Line{
		A:   ms2.Vec{X: -5, Y: width / 2},
		B:   ms2.Vec{X: length + 5, Y: width / 2},
		Lay: mechdraw.LayerCenter,
	})
	return d, nil
}

// generateBracket draws an L bracket in side view with mounting holes in
// both legs.
func generateBracket(p mechdraw.Params) (*mechdraw.Drawing, error) {
	const part = "bracket"
	length, err := p.RequirePositive(part, "length") // horizontal leg
	if err != nil {
		return nil, err
	}
	height, err := p.RequirePositive(part, "height") // vertical leg
	if err != nil {
		return nil, err
	}
	thick, err := p.RequirePositive(part, "thickness")
	if err != nil {
		return nil, err
	}
	if thick >= length || thick >= height {
		return nil, paramErrorf(part, "thickness", "thickness %g must be less than both legs (%g x %g)", thick, length, height)
	}
	holeDia := p.FloatDefault("hole_diameter", 0)
	if holeDia < 0 {
		return nil, paramErrorf(part, "hole_diameter", "must not be negative, got %g", holeDia)
	}
	if holeDia > 0 && (holeDia >= thick) {
		return nil, paramErrorf(part, "hole_diameter", "hole %g does not fit a %g thick leg", holeDia, thick)
	}

	// L profile, corner at origin, traced counterclockwise.
	d := mechdraw.NewDrawing()
	d.Add(mechdraw.Polyline{
		Verts: []ms2.Vec{
			{},
			{X: length},
			{X: length, Y: thick},
			{X: thick, Y: thick},
			{X: thick, Y: height},
			{Y: height},
		},
		Closed: true,
		Lay:    mechdraw.LayerOutline,
	})

	if holeDia > 0 {
		r := holeDia / 2
		// One hole near the end of each leg plus one near the corner.
		inset := 2 * holeDia
		if inset > length-thick {
			inset = (length - thick) / 2
		}
		d.Add(
			mechdraw.Circle{Center: ms2.Vec{X: length - inset, Y: thick / 2}, Radius: r, Lay: mechdraw.LayerHole},
			mechdraw.Circle{Center: ms2.Vec{X: thick / 2, Y: height - inset}, Radius: r, Lay: mechdraw.LayerHole},
			mechdraw.Circle{Center: ms2.Vec{X: thick / 2, Y: thick / 2}, Radius: r, Lay: mechdraw.LayerHole},
		)
	}
	return d, nil
}
