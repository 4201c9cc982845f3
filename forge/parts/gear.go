package parts

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"

	"github.com/partforge/mechdraw"
)

func init() {
	Register("gear", generateGear)
}

// generateGear draws a spur gear in front view. Teeth are approximated as
// trapezoids: a true involute buys nothing for a drawing at this scale. One
// tooth profile is computed in local coordinates and rotated into place
// teeth times at 360/teeth spacing.
func generateGear(p mechdraw.Params) (*mechdraw.Drawing, error) {
	const part = "gear"
	module, err := p.RequirePositive(part, "module")
	if err != nil {
		return nil, err
	}
	teeth, err := p.RequireInt(part, "teeth")
	if err != nil {
		return nil, err
	}
	if teeth < 4 {
		return nil, paramErrorf(part, "teeth", "must be at least 4, got %d", teeth)
	}
	pressureAngle := p.FloatDefault("pressure_angle", 20)
	if pressureAngle < 14.5 || pressureAngle > 25 {
		return nil, paramErrorf(part, "pressure_angle", "must be within [14.5, 25] degrees, got %g", pressureAngle)
	}

	pitchDia := module * float32(teeth)
	addendum := module
	dedendum := 1.25 * module
	pitchR := pitchDia / 2
	tipR := pitchR + addendum
	rootR := pitchR - dedendum
	if rootR <= 0 {
		return nil, paramErrorf(part, "teeth", "root circle vanishes for module %g with %d teeth", module, teeth)
	}

	boreDia := p.FloatDefault("bore_diameter", 0)
	if boreDia < 0 {
		return nil, paramErrorf(part, "bore_diameter", "must not be negative, got %g", boreDia)
	}
	if boreDia >= 2*rootR {
		return nil, paramErrorf(part, "bore_diameter", "bore %g reaches the root circle (diameter %g)", boreDia, 2*rootR)
	}
	hubDia := p.FloatDefault("hub_diameter", 0)
	if hubDia > 0 && (hubDia <= boreDia || hubDia >= 2*rootR) {
		return nil, paramErrorf(part, "hub_diameter", "hub %g must lie between bore and root circle", hubDia)
	}

	// Flank taper from the pressure angle: the tooth narrows above the
	// pitch circle and widens below it.
	step := 360 / float32(teeth)
	halfPitch := step / 4 // half tooth thickness angle at the pitch circle
	tanPA := math32.Tan(pressureAngle * math32.Pi / 180)
	taperTip := tanPA * addendum / pitchR * 180 / math32.Pi
	taperRoot := tanPA * dedendum / pitchR * 180 / math32.Pi
	tipHalf := halfPitch - taperTip
	rootHalf := halfPitch + taperRoot
	if tipHalf <= 0 {
		return nil, paramErrorf(part, "teeth", "tooth tip degenerates for module %g, %d teeth, pressure angle %g", module, teeth, pressureAngle)
	}
	if rootHalf >= step/2 {
		return nil, paramErrorf(part, "teeth", "adjacent tooth roots overlap for module %g with %d teeth", module, teeth)
	}

	polar := func(r, deg float32) ms2.Vec {
		s, c := math32.Sincos(deg * math32.Pi / 180)
		return ms2.Vec{X: r * c, Y: r * s}
	}
	profile := []ms2.Vec{
		polar(rootR, -rootHalf),
		polar(tipR, -tipHalf),
		polar(tipR, tipHalf),
		polar(rootR, rootHalf),
	}

	d := mechdraw.NewDrawing()
	for i := 0; i < teeth; i++ {
		rot := ms2.RotationMat2(float32(i) * step * math32.Pi / 180)
		verts := make([]ms2.Vec, len(profile))
		for j, v := range profile {
			verts[j] = ms2.MulMatVec(rot, v)
		}
		d.Add(mechdraw.Polyline{Verts: verts, Closed: true, Lay: mechdraw.LayerOutline})
	}

	// Addendum and dedendum reference circles bound the tooth band.
	d.Add(
		mechdraw.Circle{Radius: tipR, Lay: mechdraw.LayerOutline},
		mechdraw.Circle{Radius: rootR, Lay: mechdraw.LayerOutline},
		mechdraw.Circle{Radius: pitchR, Lay: mechdraw.LayerCenter},
	)
	if hubDia > 0 {
		d.Add(mechdraw.Circle{Radius: hubDia / 2, Lay: mechdraw.LayerOutline})
	}
	if boreDia > 0 {
		d.Add(mechdraw.Circle{Radius: boreDia / 2, Lay: mechdraw.LayerHole})
	}
	return d, nil
}
