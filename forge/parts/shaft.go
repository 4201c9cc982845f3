package parts

import (
	"github.com/soypat/geometry/ms2"

	"github.com/partforge/mechdraw"
)

func init() {
	Register("shaft", generateShaft)
}

// generateShaft draws a plain shaft in side view.
func generateShaft(p mechdraw.Params) (*mechdraw.Drawing, error) {
	const part = "shaft"
	dia, err := p.RequirePositive(part, "diameter")
	if err != nil {
		return nil, err
	}
	length, err := p.RequirePositive(part, "length")
	if err != nil {
		return nil, err
	}

	t := mechdraw.NewTurtle()
	t.MoveTo(-dia/2, 0).Rectangle(dia, length)
	ents, err := t.Extract()
	if err != nil {
		return nil, err
	}

	d := mechdraw.NewDrawing()
	d.Add(ents...)
	d.Add(mechdraw.Line{A: ms2.Vec{Y: -5}, B: ms2.Vec{Y: length + 5}, Lay: mechdraw.LayerCenter})
	return d, nil
}
