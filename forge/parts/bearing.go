package parts

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"

	"github.com/partforge/mechdraw"
	"github.com/partforge/mechdraw/forge/stdparts"
)

func init() {
	Register("bearing", generateBearing)
}

// generateBearing draws a deep-groove ball bearing in front view: outer
// ring, bore, and the rolling elements as a polar array on the cage circle.
// A standard designation such as "6204" fills in any dimensions the caller
// left out; explicit parameters always win.
func generateBearing(p mechdraw.Params) (*mechdraw.Drawing, error) {
	const part = "bearing"
	if code, ok := p.String("designation"); ok {
		resolved, err := stdparts.Resolve(stdparts.FamilyBearing, code)
		if err != nil {
			return nil, err
		}
		p = stdparts.Merge(resolved, p)
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
	if _, err := p.RequirePositive(part, "width"); err != nil {
		return nil, err
	}
	balls, err := optionalInt(part, "ball_count", p, 8)
	if err != nil {
		return nil, err
	}
	if balls < 3 {
		return nil, paramErrorf(part, "ball_count", "need at least 3 balls, got %d", balls)
	}

	innerR := innerDia / 2
	outerR := outerDia / 2
	cageR := (innerR + outerR) / 2
	ballR := (outerR - innerR) / 4

	d := mechdraw.NewDrawing()
	d.Add(
		mechdraw.Circle{Radius: outerR, Lay: mechdraw.LayerOutline},
		// Ring race edges.
		mechdraw.Circle{Radius: cageR + ballR, Lay: mechdraw.LayerOutline},
		mechdraw.Circle{Radius: cageR - ballR, Lay: mechdraw.LayerOutline},
		mechdraw.Circle{Radius: innerR, Lay: mechdraw.LayerHole},
		mechdraw.Circle{Radius: cageR, Lay: mechdraw.LayerCenter},
	)
	// Rolling elements at equal spacing from the +X reference.
	step := 360 / float32(balls)
	for i := 0; i < balls; i++ {
		s, c := math32.Sincos(float32(i) * step * math32.Pi / 180)
		d.Add(mechdraw.Circle{
			Center: ms2.Vec{X: cageR * c, Y: cageR * s},
			Radius: ballR,
			Lay:    mechdraw.LayerOutline,
		})
	}
	d.Add(
		mechdraw.Line{A: ms2.Vec{X: -outerR * 1.1}, B: ms2.Vec{X: outerR * 1.1}, Lay: mechdraw.LayerCenter},
		mechdraw.Line{A: ms2.Vec{Y: -outerR * 1.1}, B: ms2.Vec{Y: outerR * 1.1}, Lay: mechdraw.LayerCenter},
	)
	return d, nil
}
