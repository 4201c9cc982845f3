package parts

import (
	"github.com/soypat/geometry/ms2"

	"github.com/partforge/mechdraw"
)

func init() {
	Register("pulley", generatePulley)
}

// V-groove proportions shared by every pulley size.
const (
	grooveDepth = 8.0
	grooveWidth = 10.0
)

// generatePulley draws a V-belt pulley in side view. The rim outline carries
// one flat-bottomed V notch per groove on each side; the bore shows as a
// rectangular channel through the full width.
func generatePulley(p mechdraw.Params) (*mechdraw.Drawing, error) {
	const part = "pulley"
	outerDia, err := p.RequirePositive(part, "outer_diameter")
	if err != nil {
		return nil, err
	}
	boreDia, err := p.RequirePositive(part, "bore_diameter")
	if err != nil {
		return nil, err
	}
	if outerDia <= boreDia {
		return nil, paramErrorf(part, "outer_diameter", "outer diameter %g must exceed bore diameter %g", outerDia, boreDia)
	}
	width, err := p.RequirePositive(part, "width")
	if err != nil {
		return nil, err
	}
	grooves, err := optionalInt(part, "grooves", p, 1)
	if err != nil {
		return nil, err
	}
	if grooves < 1 {
		return nil, paramErrorf(part, "grooves", "need at least 1 groove, got %d", grooves)
	}
	if float32(grooves)*grooveWidth >= width {
		return nil, paramErrorf(part, "grooves", "%d grooves of width %g do not fit a %g wide rim", grooves, float32(grooveWidth), width)
	}
	outerR := outerDia / 2
	boreR := boreDia / 2
	if outerR-grooveDepth <= boreR {
		return nil, paramErrorf(part, "outer_diameter", "groove depth %g cuts into the %g bore", float32(grooveDepth), boreDia)
	}

	// Rim outline traced counterclockwise: up the left edge notching each
	// groove, across the top, back down the right edge mirroring them.
	verts := []ms2.Vec{{X: -outerR, Y: 0}}
	for i := 0; i < grooves; i++ {
		baseY := grooveBase(width, grooves, i)
		verts = append(verts,
			ms2.Vec{X: -outerR, Y: baseY},
			ms2.Vec{X: -(outerR - grooveDepth), Y: baseY + grooveWidth/3},
			ms2.Vec{X: -(outerR - grooveDepth), Y: baseY + grooveWidth*2.0/3},
			ms2.Vec{X: -outerR, Y: baseY + grooveWidth},
		)
	}
	verts = append(verts, ms2.Vec{X: -outerR, Y: width}, ms2.Vec{X: outerR, Y: width})
	for i := grooves - 1; i >= 0; i-- {
		baseY := grooveBase(width, grooves, i)
		verts = append(verts,
			ms2.Vec{X: outerR, Y: baseY + grooveWidth},
			ms2.Vec{X: outerR - grooveDepth, Y: baseY + grooveWidth*2.0/3},
			ms2.Vec{X: outerR - grooveDepth, Y: baseY + grooveWidth/3},
			ms2.Vec{X: outerR, Y: baseY},
		)
	}
	verts = append(verts, ms2.Vec{X: outerR, Y: 0})

	d := mechdraw.NewDrawing()
	d.Add(
		mechdraw.Polyline{Verts: verts, Closed: true, Lay: mechdraw.LayerOutline},
		mechdraw.Polyline{
			Verts: []ms2.Vec{
				{X: -boreR, Y: 0}, {X: boreR, Y: 0},
				{X: boreR, Y: width}, {X: -boreR, Y: width},
			},
			Closed: true,
			Lay:    mechdraw.LayerHole,
		},
		mechdraw.Line{A: ms2.Vec{Y: -5}, B: ms2.Vec{Y: width + 5}, Lay: mechdraw.LayerCenter},
	)
	return d, nil
}

// grooveBase is the lower edge of groove i, with the groove band centered on
// the rim width.
func grooveBase(width float32, grooves, i int) float32 {
	return (width-float32(grooves)*grooveWidth)/2 + float32(i)*grooveWidth
}
