package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/chewxy/math32"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/soypat/geometry/ms2"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/vector"

	"github.com/partforge/mechdraw"
)

// PNGOptions controls raster output. Zero values pick reasonable defaults.
type PNGOptions struct {
	// WidthPx is the output image width. Height follows from the drawing's
	// aspect ratio. Default 1024.
	WidthPx int
	// MarginPx is empty border around the drawing. Default 32.
	MarginPx int
	// StrokePx is the entity stroke width. Default 2.
	StrokePx float32
}

func (o *PNGOptions) defaults() {
	if o.WidthPx <= 0 {
		o.WidthPx = 1024
	}
	if o.MarginPx <= 0 {
		o.MarginPx = 32
	}
	if o.StrokePx <= 0 {
		o.StrokePx = 2
	}
}

// pngPalette renders layers in the conventional CAD colors on a dark field.
var pngPalette = map[string]color.RGBA{
	mechdraw.LayerOutline: {R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff},
	mechdraw.LayerHole:    {R: 0xe6, G: 0xd4, B: 0x2a, A: 0xff},
	mechdraw.LayerThread:  {R: 0x44, G: 0xcc, B: 0x66, A: 0xff},
	mechdraw.LayerCenter:  {R: 0xdd, G: 0x44, B: 0x44, A: 0xff},
}

// WritePNG rasterizes the drawing for visual review. Entities are stroked in
// per-layer colors and annotations are drawn with an embedded regular font.
func WritePNG(w io.Writer, d *mechdraw.Drawing, opt PNGOptions) error {
	opt.defaults()
	box := d.Bounds()
	sz := box.Size()
	if sz.X <= 0 {
		sz.X = 1
	}
	if sz.Y <= 0 {
		sz.Y = 1
	}
	innerW := float32(opt.WidthPx - 2*opt.MarginPx)
	scale := innerW / sz.X
	heightPx := int(sz.Y*scale) + 2*opt.MarginPx

	// Drawing Y points up, raster Y points down.
	toPx := func(p ms2.Vec) (x, y float32) {
		x = (p.X-box.Min.X)*scale + float32(opt.MarginPx)
		y = float32(heightPx) - ((p.Y-box.Min.Y)*scale + float32(opt.MarginPx))
		return x, y
	}

	dst := image.NewRGBA(image.Rect(0, 0, opt.WidthPx, heightPx))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.RGBA{R: 0x14, G: 0x14, B: 0x18, A: 0xff}), image.Point{}, draw.Src)

	for _, lay := range d.Layers() {
		col, ok := pngPalette[lay]
		if !ok {
			col = pngPalette[mechdraw.LayerOutline]
		}
		r := vector.NewRasterizer(opt.WidthPx, heightPx)
		for _, e := range d.OnLayer(lay) {
			for _, seg := range flatten(e) {
				ax, ay := toPx(seg[0])
				bx, by := toPx(seg[1])
				strokeSegment(r, ax, ay, bx, by, opt.StrokePx/2)
			}
		}
		r.Draw(dst, dst.Bounds(), image.NewUniform(col), image.Point{})
	}

	if len(d.Annotations) > 0 {
		if err := drawAnnotations(dst, d, toPx, scale); err != nil {
			return err
		}
	}
	return png.Encode(w, dst)
}

// flatten reduces an entity to straight segments in drawing coordinates.
func flatten(e mechdraw.Entity) [][2]ms2.Vec {
	switch ent := e.(type) {
	case mechdraw.Line:
		return [][2]ms2.Vec{{ent.A, ent.B}}
	case mechdraw.Arc:
		return flattenArc(ent.Center, ent.Radius, ent.Start, ent.Sweep())
	case mechdraw.Circle:
		return flattenArc(ent.Center, ent.Radius, 0, 360)
	case mechdraw.Polyline:
		var segs [][2]ms2.Vec
		for i := 1; i < len(ent.Verts); i++ {
			segs = append(segs, [2]ms2.Vec{ent.Verts[i-1], ent.Verts[i]})
		}
		if ent.Closed && len(ent.Verts) > 2 {
			segs = append(segs, [2]ms2.Vec{ent.Verts[len(ent.Verts)-1], ent.Verts[0]})
		}
		return segs
	}
	return nil
}

func flattenArc(center ms2.Vec, radius, startDeg, sweepDeg float32) [][2]ms2.Vec {
	// 5 degree steps keep circles visually round at typical sizes.
	n := int(math32.Abs(sweepDeg)/5) + 1
	segs := make([][2]ms2.Vec, 0, n)
	prev := arcPoint(center, radius, startDeg)
	for i := 1; i <= n; i++ {
		p := arcPoint(center, radius, startDeg+sweepDeg*float32(i)/float32(n))
		segs = append(segs, [2]ms2.Vec{prev, p})
		prev = p
	}
	return segs
}

func arcPoint(center ms2.Vec, radius, deg float32) ms2.Vec {
	s, c := math32.Sincos(deg * math32.Pi / 180)
	return ms2.Add(center, ms2.Vec{X: radius * c, Y: radius * s})
}

// strokeSegment rasterizes one segment as a filled quad of the given
// half-width.
func strokeSegment(r *vector.Rasterizer, ax, ay, bx, by, hw float32) {
	dx, dy := bx-ax, by-ay
	l := math32.Hypot(dx, dy)
	if l == 0 {
		return
	}
	// Unit normal.
	nx, ny := -dy/l*hw, dx/l*hw
	r.MoveTo(ax+nx, ay+ny)
	r.LineTo(bx+nx, by+ny)
	r.LineTo(bx-nx, by-ny)
	r.LineTo(ax-nx, ay-ny)
	r.ClosePath()
}

func drawAnnotations(dst *image.RGBA, d *mechdraw.Drawing, toPx func(ms2.Vec) (float32, float32), scale float32) error {
	fnt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return err
	}
	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(fnt)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}))
	for _, a := range d.Annotations {
		sizePx := float64(a.Height * scale)
		if sizePx < 8 {
			sizePx = 8
		}
		ctx.SetFontSize(sizePx)
		x, y := toPx(a.At)
		if _, err := ctx.DrawString(a.Text, freetype.Pt(int(x), int(y))); err != nil {
			return err
		}
	}
	return nil
}
