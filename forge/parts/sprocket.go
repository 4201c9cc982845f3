package parts

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"

	"github.com/partforge/mechdraw"
)

func init() {
	Register("sprocket", generateSprocket)
}

// generateSprocket draws a roller-chain sprocket in front view. The pitch
// diameter follows the chain geometry, pitch / sin(pi/teeth); the tooth form
// is simplified to alternating root and tip vertices, which is enough for a
// drawing at this scale.
func generateSprocket(p mechdraw.Params) (*mechdraw.Drawing, error) {
	const part = "sprocket"
	teeth, err := p.RequireInt(part, "teeth")
	if err != nil {
		return nil, err
	}
	if teeth < 6 {
		return nil, paramErrorf(part, "teeth", "need at least 6 teeth, got %d", teeth)
	}
	pitch, err := p.RequirePositive(part, "pitch")
	if err != nil {
		return nil, err
	}
	rollerDia := p.FloatDefault("roller_diameter", 8)
	if rollerDia <= 0 {
		return nil, paramErrorf(part, "roller_diameter", "must be greater than 0, got %g", rollerDia)
	}

	pitchR := pitch / math32.Sin(math32.Pi/float32(teeth)) / 2
	tipR := pitchR + rollerDia
	rootR := pitchR - rollerDia
	if rootR <= 0 {
		return nil, paramErrorf(part, "roller_diameter", "roller %g swallows the root circle (pitch diameter %g)", rollerDia, 2*pitchR)
	}
	boreDia := p.FloatDefault("bore_diameter", 0)
	if boreDia < 0 {
		return nil, paramErrorf(part, "bore_diameter", "must not be negative, got %g", boreDia)
	}
	if boreDia >= 2*rootR {
		return nil, paramErrorf(part, "bore_diameter", "bore %g reaches the root circle (diameter %g)", boreDia, 2*rootR)
	}

	// One root vertex and one tip vertex per tooth, the tip leading the root
	// by half a tooth step.
	step := 360 / float32(teeth)
	verts := make([]ms2.Vec, 0, 2*teeth)
	for i := 0; i < teeth; i++ {
		base := float32(i) * step
		s, c := math32.Sincos(base * math32.Pi / 180)
		verts = append(verts, ms2.Vec{X: rootR * c, Y: rootR * s})
		s, c = math32.Sincos((base + step/2) * math32.Pi / 180)
		verts = append(verts, ms2.Vec{X: tipR * c, Y: tipR * s})
	}

	d := mechdraw.NewDrawing()
	d.Add(
		mechdraw.Polyline{Verts: verts, Closed: true, Lay: mechdraw.LayerOutline},
		mechdraw.Circle{Radius: pitchR, Lay: mechdraw.LayerCenter},
	)
	if boreDia > 0 {
		d.Add(mechdraw.Circle{Radius: boreDia / 2, Lay: mechdraw.LayerHole})
	}
	return d, nil
}
