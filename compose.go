package mechdraw

import "github.com/soypat/geometry/ms2"

// Placement positions a finished drawing inside a shared coordinate space.
type Placement struct {
	Drawing *Drawing
	Offset  ms2.Vec
}

// Compose merges already-generated drawings into one by translating each
// placement's entities by its offset. The source drawings are read only;
// composition introduces no new sharing concerns and the result can be
// validated like any single-part drawing.
func Compose(placements ...Placement) *Drawing {
	out := NewDrawing()
	for _, pl := range placements {
		if pl.Drawing == nil {
			continue
		}
		for _, e := range pl.Drawing.Entities {
			out.Add(e.Translate(pl.Offset))
		}
		for _, a := range pl.Drawing.Annotations {
			a.At = ms2.Add(a.At, pl.Offset)
			out.Annotate(a)
		}
	}
	return out
}
