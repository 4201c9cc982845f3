package export

import (
	"bufio"
	"encoding/binary"
	"errors"
	"io"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"

	"github.com/partforge/mechdraw"
)

// circleFacets is the polygon count used when a circle becomes a 3D loop.
const circleFacets = 64

type vec3 struct {
	X, Y, Z float32
}

type triangle [3]vec3

// WriteSTL extrudes the drawing's closed outlines to the given thickness and
// writes a binary STL. It is a preview mesh for flat parts: each closed
// outline loop becomes its own prism and hole layers are not subtracted.
func WriteSTL(w io.Writer, d *mechdraw.Drawing, thickness float32) error {
	if thickness <= 0 {
		return errors.New("stl: thickness must be greater than 0")
	}
	loops := outlineLoops(d)
	if len(loops) == 0 {
		return errors.New("stl: drawing has no closed outlines to extrude")
	}
	var tris []triangle
	for _, loop := range loops {
		tris = append(tris, extrudeLoop(loop, thickness)...)
	}
	return writeBinarySTL(w, tris)
}

// outlineLoops collects closed vertex loops from the outline layer. Circles
// are approximated as regular polygons.
func outlineLoops(d *mechdraw.Drawing) [][]ms2.Vec {
	var loops [][]ms2.Vec
	for _, e := range d.OnLayer(mechdraw.LayerOutline) {
		switch ent := e.(type) {
		case mechdraw.Polyline:
			if !ent.IsClosed(1e-5) {
				continue
			}
			loop := append([]ms2.Vec(nil), ent.Verts...)
			// Drop a duplicated closing vertex.
			if len(loop) > 1 && ms2.Norm(ms2.Sub(loop[0], loop[len(loop)-1])) < 1e-5 {
				loop = loop[:len(loop)-1]
			}
			if len(loop) >= 3 {
				loops = append(loops, loop)
			}
		case mechdraw.Circle:
			loop := make([]ms2.Vec, circleFacets)
			for i := range loop {
				s, c := math32.Sincos(2 * math32.Pi * float32(i) / circleFacets)
				loop[i] = ms2.Add(ent.Center, ms2.Vec{X: ent.Radius * c, Y: ent.Radius * s})
			}
			loops = append(loops, loop)
		}
	}
	return loops
}

// extrudeLoop builds the prism of a single closed loop: bottom cap at z=0,
// top cap at z=thickness, and a quad wall per edge.
func extrudeLoop(loop []ms2.Vec, thickness float32) []triangle {
	if signedArea(loop) < 0 {
		reversed := make([]ms2.Vec, len(loop))
		for i, v := range loop {
			reversed[len(loop)-1-i] = v
		}
		loop = reversed
	}
	cap2d := triangulate(loop)
	tris := make([]triangle, 0, 2*len(cap2d)+2*len(loop))
	for _, t := range cap2d {
		// Bottom cap faces -Z, so wind it clockwise seen from above.
		tris = append(tris, triangle{
			{t[0].X, t[0].Y, 0},
			{t[2].X, t[2].Y, 0},
			{t[1].X, t[1].Y, 0},
		})
		tris = append(tris, triangle{
			{t[0].X, t[0].Y, thickness},
			{t[1].X, t[1].Y, thickness},
			{t[2].X, t[2].Y, thickness},
		})
	}
	for i := range loop {
		a := loop[i]
		b := loop[(i+1)%len(loop)]
		a0 := vec3{a.X, a.Y, 0}
		b0 := vec3{b.X, b.Y, 0}
		a1 := vec3{a.X, a.Y, thickness}
		b1 := vec3{b.X, b.Y, thickness}
		tris = append(tris, triangle{a0, b0, b1}, triangle{a0, b1, a1})
	}
	return tris
}

func signedArea(loop []ms2.Vec) float32 {
	var area float32
	for i := range loop {
		a := loop[i]
		b := loop[(i+1)%len(loop)]
		area += a.X*b.Y - b.X*a.Y
	}
	return area / 2
}

// triangulate ear-clips a simple counterclockwise polygon.
func triangulate(loop []ms2.Vec) [][3]ms2.Vec {
	idx := make([]int, len(loop))
	for i := range idx {
		idx[i] = i
	}
	var tris [][3]ms2.Vec
	guard := 0
	for len(idx) > 3 && guard < len(loop)*len(loop) {
		guard++
		clipped := false
		for i := 0; i < len(idx); i++ {
			prev := idx[(i+len(idx)-1)%len(idx)]
			cur := idx[i]
			next := idx[(i+1)%len(idx)]
			if !isEar(loop, idx, prev, cur, next) {
				continue
			}
			tris = append(tris, [3]ms2.Vec{loop[prev], loop[cur], loop[next]})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			// Degenerate input; emit a fan so the mesh stays watertight
			// enough for preview.
			break
		}
	}
	if len(idx) >= 3 {
		for i := 1; i < len(idx)-1; i++ {
			tris = append(tris, [3]ms2.Vec{loop[idx[0]], loop[idx[i]], loop[idx[i+1]]})
		}
	}
	return tris
}

func isEar(loop []ms2.Vec, idx []int, prev, cur, next int) bool {
	a, b, c := loop[prev], loop[cur], loop[next]
	if cross2(ms2.Sub(b, a), ms2.Sub(c, b)) <= 0 {
		return false // reflex corner
	}
	for _, j := range idx {
		if j == prev || j == cur || j == next {
			continue
		}
		if pointInTriangle(loop[j], a, b, c) {
			return false
		}
	}
	return true
}

func cross2(a, b ms2.Vec) float32 {
	return a.X*b.Y - a.Y*b.X
}

func pointInTriangle(p, a, b, c ms2.Vec) bool {
	d1 := cross2(ms2.Sub(b, a), ms2.Sub(p, a))
	d2 := cross2(ms2.Sub(c, b), ms2.Sub(p, b))
	d3 := cross2(ms2.Sub(a, c), ms2.Sub(p, c))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func writeBinarySTL(w io.Writer, tris []triangle) error {
	bw := bufio.NewWriter(w)
	var header [80]byte
	copy(header[:], "mechdraw extruded preview")
	if _, err := bw.Write(header[:]); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(tris))); err != nil {
		return err
	}
	for _, t := range tris {
		n := normalOf(t)
		if err := binary.Write(bw, binary.LittleEndian, n); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, t); err != nil {
			return err
		}
		if err := binary.Write(bw, binary.LittleEndian, uint16(0)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func normalOf(t triangle) vec3 {
	ux, uy, uz := t[1].X-t[0].X, t[1].Y-t[0].Y, t[1].Z-t[0].Z
	vx, vy, vz := t[2].X-t[0].X, t[2].Y-t[0].Y, t[2].Z-t[0].Z
	nx := uy*vz - uz*vy
	ny := uz*vx - ux*vz
	nz := ux*vy - uy*vx
	l := math32.Sqrt(nx*nx + ny*ny + nz*nz)
	if l == 0 {
		return vec3{}
	}
	return vec3{nx / l, ny / l, nz / l}
}
