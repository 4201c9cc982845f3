package export

import (
	"bytes"
	"encoding/binary"
	"image/png"
	"strings"
	"testing"

	"github.com/soypat/geometry/ms2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partforge/mechdraw"
)

func sampleDrawing() *mechdraw.Drawing {
	d := mechdraw.NewDrawing()
	d.Add(
		mechdraw.Polyline{
			Verts:  []ms2.Vec{{}, {X: 100}, {X: 100, Y: 60}, {Y: 60}},
			Closed: true,
			Lay:    mechdraw.LayerOutline,
		},
		mechdraw.Circle{Center: ms2.Vec{X: 50, Y: 30}, Radius: 10, Lay: mechdraw.LayerHole},
		mechdraw.Arc{Center: ms2.Vec{X: 20, Y: 20}, Radius: 5, Start: 0, End: 90, Lay: mechdraw.LayerOutline},
		mechdraw.Line{A: ms2.Vec{X: 40, Y: 30}, B: ms2.Vec{X: 60, Y: 30}, Lay: mechdraw.LayerCenter},
	)
	d.Annotate(mechdraw.Annotation{At: ms2.Vec{X: 5, Y: 5}, Text: "M6 thread", Height: 3, Lay: mechdraw.LayerCenter})
	return d
}

func TestWriteDXFStructure(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDXF(&buf, sampleDrawing()))
	out := buf.String()

	// Millimeter units declared in the header.
	assert.Contains(t, out, "$INSUNITS")
	assert.Contains(t, out, "AC1009")

	// One LAYER table record per populated layer.
	for _, lay := range []string{mechdraw.LayerOutline, mechdraw.LayerHole, mechdraw.LayerCenter} {
		assert.Contains(t, out, lay)
	}

	// Native entity records for each primitive.
	for _, rec := range []string{"POLYLINE", "VERTEX", "SEQEND", "CIRCLE", "ARC", "LINE", "TEXT"} {
		assert.Contains(t, out, rec)
	}
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "EOF"))
}

func TestWriteDXFClosedPolylineFlag(t *testing.T) {
	closed := mechdraw.Polyline{
		Verts:  []ms2.Vec{{}, {X: 10}, {X: 10, Y: 10}},
		Closed: true,
		Lay:    mechdraw.LayerOutline,
	}
	render := func(pl mechdraw.Polyline) string {
		d := mechdraw.NewDrawing()
		d.Add(pl, mechdraw.Line{B: ms2.Vec{X: 5}, Lay: mechdraw.LayerCenter})
		var buf bytes.Buffer
		require.NoError(t, WriteDXF(&buf, d))
		return buf.String()
	}
	// Group 70 value 1 marks the closed polyline; the open variant writes 0.
	assert.Contains(t, render(closed), "70\n1\n")
	open := closed
	open.Closed = false
	assert.NotContains(t, render(open), "70\n1\n")
}

func TestWritePNGDecodes(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, sampleDrawing(), PNGOptions{WidthPx: 400}))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Greater(t, img.Bounds().Dy(), 0)
}

func TestWriteSTLTriangleCount(t *testing.T) {
	d := mechdraw.NewDrawing()
	d.Add(mechdraw.Polyline{
		Verts:  []ms2.Vec{{}, {X: 10}, {X: 10, Y: 10}, {Y: 10}},
		Closed: true,
		Lay:    mechdraw.LayerOutline,
	})
	var buf bytes.Buffer
	require.NoError(t, WriteSTL(&buf, d, 5))
	raw := buf.Bytes()
	require.Greater(t, len(raw), 84)
	count := binary.LittleEndian.Uint32(raw[80:84])
	// A square prism: 2 triangles per cap and 2 per side wall.
	assert.Equal(t, uint32(2*2+4*2), count)
	// 50 bytes per triangle after the 84 byte preamble.
	assert.Equal(t, int(84+50*count), len(raw))
}

func TestWriteSTLRejectsOpenDrawing(t *testing.T) {
	d := mechdraw.NewDrawing()
	d.Add(mechdraw.Line{B: ms2.Vec{X: 10}, Lay: mechdraw.LayerOutline})
	var buf bytes.Buffer
	assert.Error(t, WriteSTL(&buf, d, 5))
	assert.Error(t, WriteSTL(&buf, sampleDrawing(), 0))
}
