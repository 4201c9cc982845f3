// Package export serializes drawings to interchange formats: DXF for CAD
// tools, PNG for quick visual review, and an extruded STL for 3D preview of
// flat parts.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/partforge/mechdraw"
)

// layerColors maps layer names to AutoCAD color indices. Unlisted layers
// default to white.
var layerColors = map[string]int{
	mechdraw.LayerOutline: 7, // white
	mechdraw.LayerHole:    2, // yellow
	mechdraw.LayerThread:  3, // green
	mechdraw.LayerCenter:  1, // red
}

// dxfWriter emits DXF group code/value pairs, capturing the first write
// error so callers check once at the end.
type dxfWriter struct {
	w   io.Writer
	err error
}

func (dw *dxfWriter) pair(code int, value any) {
	if dw.err != nil {
		return
	}
	switch v := value.(type) {
	case float32:
		_, dw.err = fmt.Fprintf(dw.w, "%d\n%g\n", code, v)
	default:
		_, dw.err = fmt.Fprintf(dw.w, "%d\n%v\n", code, v)
	}
}

// WriteDXF serializes the drawing as an R12 ASCII DXF. Units are declared in
// the header and every entity carries its layer; geometry is written as
// native LINE, ARC, CIRCLE, POLYLINE and TEXT records so any DXF consumer
// can read it without extension dictionaries.
func WriteDXF(w io.Writer, d *mechdraw.Drawing) error {
	dw := &dxfWriter{w: w}

	// HEADER: version and units.
	dw.pair(0, "SECTION")
	dw.pair(2, "HEADER")
	dw.pair(9, "$ACADVER")
	dw.pair(1, "AC1009")
	dw.pair(9, "$INSUNITS")
	dw.pair(70, dxfUnits(d.Units))
	dw.pair(0, "ENDSEC")

	// TABLES: one LAYER record per populated layer.
	dw.pair(0, "SECTION")
	dw.pair(2, "TABLES")
	dw.pair(0, "TABLE")
	dw.pair(2, "LAYER")
	layers := d.Layers()
	dw.pair(70, len(layers))
	for _, name := range layers {
		color := layerColors[name]
		if color == 0 {
			color = 7
		}
		dw.pair(0, "LAYER")
		dw.pair(2, name)
		dw.pair(70, 0)
		dw.pair(62, color)
		dw.pair(6, "CONTINUOUS")
	}
	dw.pair(0, "ENDTAB")
	dw.pair(0, "ENDSEC")

	dw.pair(0, "SECTION")
	dw.pair(2, "ENTITIES")
	for _, e := range d.Entities {
		writeEntity(dw, e)
	}
	for _, a := range d.Annotations {
		dw.pair(0, "TEXT")
		dw.pair(8, a.Lay)
		dw.pair(10, a.At.X)
		dw.pair(20, a.At.Y)
		dw.pair(40, a.Height)
		dw.pair(1, sanitizeText(a.Text))
	}
	dw.pair(0, "ENDSEC")
	dw.pair(0, "EOF")
	return dw.err
}

func dxfUnits(u mechdraw.Unit) int {
	if u == mechdraw.UnitMillimeter {
		return 4
	}
	return 0 // unitless
}

func writeEntity(dw *dxfWriter, e mechdraw.Entity) {
	switch ent := e.(type) {
	case mechdraw.Line:
		dw.pair(0, "LINE")
		dw.pair(8, ent.Lay)
		dw.pair(10, ent.A.X)
		dw.pair(20, ent.A.Y)
		dw.pair(11, ent.B.X)
		dw.pair(21, ent.B.Y)
	case mechdraw.Arc:
		dw.pair(0, "ARC")
		dw.pair(8, ent.Lay)
		dw.pair(10, ent.Center.X)
		dw.pair(20, ent.Center.Y)
		dw.pair(40, ent.Radius)
		dw.pair(50, ent.Start)
		dw.pair(51, ent.End)
	case mechdraw.Circle:
		dw.pair(0, "CIRCLE")
		dw.pair(8, ent.Lay)
		dw.pair(10, ent.Center.X)
		dw.pair(20, ent.Center.Y)
		dw.pair(40, ent.Radius)
	case mechdraw.Polyline:
		dw.pair(0, "POLYLINE")
		dw.pair(8, ent.Lay)
		dw.pair(66, 1)
		if ent.Closed {
			dw.pair(70, 1)
		} else {
			dw.pair(70, 0)
		}
		for _, v := range ent.Verts {
			dw.pair(0, "VERTEX")
			dw.pair(8, ent.Lay)
			dw.pair(10, v.X)
			dw.pair(20, v.Y)
		}
		dw.pair(0, "SEQEND")
	}
}

// sanitizeText strips newlines, which would corrupt the group-coded stream.
func sanitizeText(s string) string {
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(s)
}
