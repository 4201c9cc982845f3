package parts

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"

	"github.com/partforge/mechdraw"
)

func init() {
	Register("snap_ring", generateSnapRing)
}

// snapRingGap is the angular opening of the ring in degrees.
const snapRingGap = 20

// generateSnapRing draws an external snap ring in front view: a C-shaped arc
// on the wire centerline with a straight ear at each side of the gap.
func generateSnapRing(p mechdraw.Params) (*mechdraw.Drawing, error) {
	const part = "snap_ring"
	innerDia, err := p.RequirePositive(part, "inner_diameter")
	if err != nil {
		return nil, err
	}
	wireDia, err := p.RequirePositive(part, "wire_diameter")
	if err != nil {
		return nil, err
	}

	meanR := innerDia/2 + wireDia/2
	earLen := 2 * wireDia
	s, c := math32.Sincos(snapRingGap / 2 * math32.Pi / 180)
	upper := ms2.Vec{X: meanR * c, Y: meanR * s}
	lower := ms2.Vec{X: meanR * c, Y: -meanR * s}

	d := mechdraw.NewDrawing()
	d.Add(
		mechdraw.Arc{Radius: meanR, Start: snapRingGap / 2, End: 360 - snapRingGap/2, Lay: mechdraw.LayerOutline},
		mechdraw.Line{A: upper, B: ms2.Vec{X: upper.X + earLen, Y: upper.Y}, Lay: mechdraw.LayerOutline},
		mechdraw.Line{A: lower, B: ms2.Vec{X: lower.X + earLen, Y: lower.Y}, Lay: mechdraw.LayerOutline},
	)
	return d, nil
}
