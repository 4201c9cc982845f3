package parts

import (
	"github.com/soypat/geometry/ms2"

	"github.com/partforge/mechdraw"
)

func init() {
	Register("coupling", generateCoupling)
}

// generateCoupling draws a rigid shaft coupling in side view: the sleeve
// outline with the bore running through it as a hole-layer channel.
func generateCoupling(p mechdraw.Params) (*mechdraw.Drawing, error) {
	const part = "coupling"
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
	length, err := p.RequirePositive(part, "length")
	if err != nil {
		return nil, err
	}

	innerR := innerDia / 2
	outerR := outerDia / 2

	t := mechdraw.NewTurtle()
	t.MoveTo(-outerR, 0).Rectangle(outerDia, length)
	ents, err := t.Extract()
	if err != nil {
		return nil, err
	}

	d := mechdraw.NewDrawing()
	d.Add(ents...)
	d.Add(
		mechdraw.Polyline{
			Verts: []ms2.Vec{
				{X: -innerR, Y: 0}, {X: innerR, Y: 0},
				{X: innerR, Y: length}, {X: -innerR, Y: length},
			},
			Closed: true,
			Lay:    mechdraw.LayerHole,
		},
		mechdraw.Line{A: ms2.Vec{Y: -5}, B: ms2.Vec{Y: length + 5}, Lay: mechdraw.LayerCenter},
	)
	return d, nil
}
