package parts

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"

	"github.com/partforge/mechdraw"
)

func init() {
	Register("flange", generateFlange)
}

func generateFlange(p mechdraw.Params) (*mechdraw.Drawing, error) {
	const part = "flange"
	outerDia, err := p.RequirePositive(part, "outer_diameter")
	if err != nil {
		return nil, err
	}
	innerDia, err := p.RequirePositive(part, "inner_diameter")
	if err != nil {
		return nil, err
	}
	if outerDia <= innerDia {
		return nil, paramErrorf(part, "outer_diameter", "outer diameter %g must exceed inner diameter %g", outerDia, innerDia)
	}
	boltCircleDia, err := p.RequirePositive(part, "bolt_circle_diameter")
	if err != nil {
		return nil, err
	}
	if boltCircleDia <= innerDia || boltCircleDia >= outerDia {
		return nil, paramErrorf(part, "bolt_circle_diameter", "bolt circle %g must lie between inner %g and outer %g diameter", boltCircleDia, innerDia, outerDia)
	}
	boltCount, err := p.RequireInt(part, "bolt_count")
	if err != nil {
		return nil, err
	}
	if boltCount < 3 {
		return nil, paramErrorf(part, "bolt_count", "need at least 3 bolt holes, got %d", boltCount)
	}
	boltSize, err := p.RequirePositive(part, "bolt_size")
	if err != nil {
		return nil, err
	}
	boltR := boltSize / 2
	bcR := boltCircleDia / 2
	// Neighboring holes on the bolt circle must not touch.
	halfStepRad := math32.Pi / float32(boltCount)
	if 2*bcR*math32.Sin(halfStepRad) <= boltSize {
		return nil, paramErrorf(part, "bolt_count", "%d holes of diameter %g overlap on a %g bolt circle", boltCount, boltSize, boltCircleDia)
	}

	d := mechdraw.NewDrawing()
	d.Add(
		mechdraw.Circle{Radius: outerDia / 2, Lay: mechdraw.LayerOutline},
		mechdraw.Circle{Radius: innerDia / 2, Lay: mechdraw.LayerHole},
		mechdraw.Circle{Radius: bcR, Lay: mechdraw.LayerCenter},
	)
	// Bolt holes at equal angular spacing, first hole on the +X axis so
	// that assemblies mate reproducibly.
	step := 360 / float32(boltCount)
	for i := 0; i < boltCount; i++ {
		s, c := math32.Sincos(float32(i) * step * math32.Pi / 180)
		d.Add(mechdraw.Circle{
			Center: ms2.Vec{X: bcR * c, Y: bcR * s},
			Radius: boltR,
			Lay:    mechdraw.LayerHole,
		})
	}
	outerR := outerDia / 2
	d.Add(
		mechdraw.Line{A: ms2.Vec{X: -outerR * 1.1}, B: ms2.Vec{X: outerR * 1.1}, Lay: mechdraw.LayerCenter},
		mechdraw.Line{A: ms2.Vec{Y: -outerR * 1.1}, B: ms2.Vec{Y: outerR * 1.1}, Lay: mechdraw.LayerCenter},
	)
	return d, nil
}
