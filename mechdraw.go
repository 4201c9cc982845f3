// Package mechdraw implements a stateful 2D path-drawing engine and the
// entity model shared by all parametric part generators. Drawings are plain
// ordered entity lists in millimeters; part families live under forge/parts,
// engineering acceptance checks under accept and file output under export.
package mechdraw

import "fmt"

// Unit is the drawing length unit. Only millimeters are supported; the field
// exists so that consumers can verify unit metadata instead of assuming it.
type Unit uint8

const (
	UnitInvalid Unit = iota
	UnitMillimeter
)

func (u Unit) String() string {
	switch u {
	case UnitMillimeter:
		return "mm"
	default:
		return "invalid"
	}
}

// Conventional layer names shared by generators and the acceptance engine.
// Layer names are part of the generator contract: acceptance keys on them.
const (
	LayerOutline = "outline"
	LayerHole    = "hole"
	LayerThread  = "thread"
	LayerCenter  = "center"
)

// ParamError reports a part parameter that is missing, of the wrong type or
// outside its physically valid range. It is always raised before any
// geometry is emitted.
type ParamError struct {
	Part   string
	Field  string
	Reason string
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: parameter %q: %s", e.Part, e.Field, e.Reason)
}

// GeometryError reports an invalid argument reaching the path engine, such
// as a non-positive radius. For validated generator input it indicates a
// generator bug rather than bad user data.
type GeometryError struct {
	Op     string
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry: %s: %s", e.Op, e.Reason)
}
