package parts

import (
	"github.com/soypat/geometry/ms2"

	"github.com/partforge/mechdraw"
)

func init() {
	Register("retainer", generateRetainer)
}

// generateRetainer draws a retaining washer in cross section: the cut plane
// through the ring shows one rectangle either side of the axis.
func generateRetainer(p mechdraw.Params) (*mechdraw.Drawing, error) {
	const part = "retainer"
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
	thick, err := p.RequirePositive(part, "thickness")
	if err != nil {
		return nil, err
	}

	innerR := innerDia / 2
	outerR := outerDia / 2
	wall := outerR - innerR

	t := mechdraw.NewTurtle()
	t.MoveTo(innerR, 0).Rectangle(wall, thick)
	t.MoveTo(-outerR, 0).Rectangle(wall, thick)
	ents, err := t.Extract()
	if err != nil {
		return nil, err
	}

	d := mechdraw.NewDrawing()
	d.Add(ents...)
	d.Add(mechdraw.Line{A: ms2.Vec{Y: -2}, B: ms2.Vec{Y: thick + 2}, Lay: mechdraw.LayerCenter})
	return d, nil
}
