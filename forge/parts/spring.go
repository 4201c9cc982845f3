package parts

import (
	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"

	"github.com/partforge/mechdraw"
)

func init() {
	Register("spring", generateSpring)
}

// coilBulge is the preferred sweep angle of each projected half-turn arc.
// Squat springs use a shallower sweep so the arcs stay inside the free
// length, see coilSweep.
const coilBulge = 32

// coilSweep returns the arc sweep in degrees for a half-turn chord spanning
// the coil diameter and half a pitch. The sagitta of the arc is
// (chord/2)*tan(sweep/4); capping the sweep at 4*atan(pitch/chord) keeps the
// sagitta at or below pitch/2, so no arc leaves the band between the ground
// end faces.
func coilSweep(coilDia, pitch float32) float32 {
	chord := math32.Hypot(coilDia, pitch/2)
	maxSweep := 4 * math32.Atan(pitch/chord) * 180 / math32.Pi
	if maxSweep < coilBulge {
		return maxSweep
	}
	return coilBulge
}

// generateSpring draws a compression spring in side view. The helix is
// projected onto the plane as alternating shallow arcs, one pair per coil,
// climbing the free length at pitch = free_length / coils.
func generateSpring(p mechdraw.Params) (*mechdraw.Drawing, error) {
	const part = "spring"
	wireDia, err := p.RequirePositive(part, "wire_diameter")
	if err != nil {
		return nil, err
	}
	coilDia, err := p.RequirePositive(part, "coil_diameter")
	if err != nil {
		return nil, err
	}
	freeLen, err := p.RequirePositive(part, "free_length")
	if err != nil {
		return nil, err
	}
	coils, err := optionalInt(part, "coils", p, 8)
	if err != nil {
		return nil, err
	}
	if coils < 2 {
		return nil, paramErrorf(part, "coils", "need at least 2 coils, got %d", coils)
	}
	if coilDia <= wireDia {
		return nil, paramErrorf(part, "coil_diameter", "coil diameter %g must exceed wire diameter %g", coilDia, wireDia)
	}
	if freeLen <= float32(coils)*wireDia {
		return nil, paramErrorf(part, "free_length", "free length %g shorter than solid height %g", freeLen, float32(coils)*wireDia)
	}

	coilR := coilDia / 2
	pitch := freeLen / float32(coils)

	sweep := coilSweep(coilDia, pitch)

	t := mechdraw.NewTurtle()
	for i := 0; i < coils; i++ {
		y := float32(i) * pitch
		// The rising half-turn bulges up, the returning one down, so both
		// stay between this coil's start and the next.
		arcBetween(t, ms2.Vec{X: -coilR, Y: y}, ms2.Vec{X: coilR, Y: y + pitch/2}, -sweep)
		arcBetween(t, ms2.Vec{X: coilR, Y: y + pitch/2}, ms2.Vec{X: -coilR, Y: y + pitch}, -sweep)
	}
	ents, err := t.Extract()
	if err != nil {
		return nil, err
	}

	d := mechdraw.NewDrawing()
	d.Add(ents...)
	// Ground end faces.
	d.Add(
		mechdraw.Line{A: ms2.Vec{X: -coilR, Y: 0}, B: ms2.Vec{X: coilR, Y: 0}, Lay: mechdraw.LayerOutline},
		mechdraw.Line{A: ms2.Vec{X: -coilR, Y: freeLen}, B: ms2.Vec{X: coilR, Y: freeLen}, Lay: mechdraw.LayerOutline},
		mechdraw.Line{A: ms2.Vec{X: 0, Y: -2}, B: ms2.Vec{X: 0, Y: freeLen + 2}, Lay: mechdraw.LayerCenter},
	)
	return d, nil
}

// arcBetween draws a circular arc from a to b bulging according to the sign
// of sweepDeg. The chord and sweep fix the radius: chord = 2r sin(sweep/2),
// and the chord direction bisects the entry and exit headings.
func arcBetween(t *mechdraw.Turtle, a, b ms2.Vec, sweepDeg float32) {
	chord := ms2.Sub(b, a)
	chordLen := ms2.Norm(chord)
	dirDeg := math32.Atan2(chord.Y, chord.X) * 180 / math32.Pi
	halfSweep := sweepDeg / 2 * math32.Pi / 180
	r := chordLen / (2 * math32.Abs(math32.Sin(halfSweep)))
	t.MoveTo(a.X, a.Y).SetHeading(dirDeg - sweepDeg/2).Arc(r, sweepDeg)
}
