package render

import (
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"

	"github.com/PaulBatchelor/sdf2d"
	"github.com/PaulBatchelor/sdf2d/sdfvm"
)

// Canvas couples a framebuffer with its resolution and exposes the shape
// drawing operations. Shapes are positioned in pixel coordinates; each
// operation rasterizes only the region covering the shape.
type Canvas struct {
	Buf []ms3.Vec
	Res ms2.Vec
	// Feather overrides the anti-aliasing band width. Zero selects
	// [DefaultFeather].
	Feather float32
}

// NewCanvas allocates a canvas of the given pixel dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Buf: make([]ms3.Vec, width*height),
		Res: ms2.Vec{X: float32(width), Y: float32(height)},
	}
}

// Fill sets every pixel of the canvas to clr.
func (c *Canvas) Fill(clr ms3.Vec) error {
	fill := ShaderFunc(func(frag *ms3.Vec, st ms2.Vec, ctx *Context) error {
		*frag = clr
		return nil
	})
	return Draw(c.Buf, c.Res, RegionOf(0, 0, c.Res.X, c.Res.Y), fill, nil)
}

// Gridlines overlays lines of color clr dividing the canvas into divs
// cells horizontally.
func (c *Canvas) Gridlines(clr ms3.Vec, divs int) {
	w := int(c.Res.X)
	h := int(c.Res.Y)
	size := w / divs
	for y := 0; y < h; y += size {
		for x := 0; x < w; x++ {
			c.Buf[y*w+x] = clr
		}
	}
	for x := 0; x < w; x += size {
		for y := 0; y < h; y++ {
			c.Buf[y*w+x] = clr
		}
	}
}

func (c *Canvas) drawShape(region Region, s *DistanceShader) error {
	s.Feather = c.Feather
	return Draw(c.Buf, c.Res, region, s, nil)
}

// squareAround returns the square region of half-extent r centered on
// (cx,cy).
func squareAround(cx, cy, r float32) Region {
	return RegionOf(cx-r, cy-r, 2*r, 2*r)
}

// Circle draws a filled circle of radius r in pixels centered at (cx,cy).
func (c *Canvas) Circle(cx, cy, r float32, clr ms3.Vec) error {
	return c.drawShape(squareAround(cx, cy, r), &DistanceShader{
		Distance: func(p ms2.Vec) float32 { return sdf2d.Circle(p, 1) },
		Color:    clr,
	})
}

// Heart draws a heart filling the region (x,y,w,h).
func (c *Canvas) Heart(x, y, w, h float32, clr ms3.Vec) error {
	return c.drawShape(RegionOf(x, y, w, h), &DistanceShader{
		Distance: sdf2d.Heart,
		Color:    clr,
		Remap:    sdf2d.HeartCenter,
	})
}

// Box draws a filled rectangle spanning most of the region (x,y,w,h).
func (c *Canvas) Box(x, y, w, h float32, clr ms3.Vec) error {
	b := ms2.Vec{X: 0.9 * w / h, Y: 0.9}
	return c.drawShape(RegionOf(x, y, w, h), &DistanceShader{
		Distance: func(p ms2.Vec) float32 { return sdf2d.Box(p, b) },
		Color:    clr,
	})
}

// RoundedBox draws a filled rectangle with corner radius r in normalized
// units spanning most of the region (x,y,w,h).
func (c *Canvas) RoundedBox(x, y, w, h, r float32, clr ms3.Vec) error {
	b := ms2.Vec{X: 0.9 * w / h, Y: 0.9}
	radius := [4]float32{r, r, r, r}
	return c.drawShape(RegionOf(x, y, w, h), &DistanceShader{
		Distance: func(p ms2.Vec) float32 { return sdf2d.RoundedBox(p, b, radius) },
		Color:    clr,
	})
}

// Rhombus draws a rhombus of half-extent r pixels centered at (cx,cy).
func (c *Canvas) Rhombus(cx, cy, r float32, clr ms3.Vec) error {
	b := ms2.Vec{X: 0.9, Y: 0.9}
	return c.drawShape(squareAround(cx, cy, r), &DistanceShader{
		Distance: func(p ms2.Vec) float32 { return sdf2d.Rhombus(p, b) },
		Color:    clr,
	})
}

// TriangleEquilateral draws an equilateral triangle of half-extent r pixels
// centered at (cx,cy), apex up.
func (c *Canvas) TriangleEquilateral(cx, cy, r float32, clr ms3.Vec) error {
	// Scale the canonical triangle so the apex reaches the region edge.
	const s = sqrt3 / 2
	return c.drawShape(squareAround(cx, cy, r), &DistanceShader{
		Distance: func(p ms2.Vec) float32 {
			return s * sdf2d.EquilateralTriangle(ms2.Scale(1/s, p))
		},
		Color: clr,
		FlipY: true,
	})
}

// Pentagon draws a regular pentagon of half-extent r pixels centered at
// (cx,cy).
func (c *Canvas) Pentagon(cx, cy, r float32, clr ms3.Vec) error {
	return c.drawShape(squareAround(cx, cy, r), &DistanceShader{
		Distance: func(p ms2.Vec) float32 { return sdf2d.Pentagon(p, 0.9) },
		Color:    clr,
	})
}

// Hexagon draws a regular hexagon of half-extent r pixels centered at
// (cx,cy).
func (c *Canvas) Hexagon(cx, cy, r float32, clr ms3.Vec) error {
	return c.drawShape(squareAround(cx, cy, r), &DistanceShader{
		Distance: func(p ms2.Vec) float32 { return sdf2d.Hexagon(p, 0.9) },
		Color:    clr,
	})
}

// Octogon draws a regular octagon of half-extent r pixels centered at
// (cx,cy).
func (c *Canvas) Octogon(cx, cy, r float32, clr ms3.Vec) error {
	return c.drawShape(squareAround(cx, cy, r), &DistanceShader{
		Distance: func(p ms2.Vec) float32 { return sdf2d.Octogon(p, 0.9) },
		Color:    clr,
	})
}

// Hexagram draws a six-pointed star of half-extent r pixels centered at
// (cx,cy).
func (c *Canvas) Hexagram(cx, cy, r float32, clr ms3.Vec) error {
	return c.drawShape(squareAround(cx, cy, r), &DistanceShader{
		Distance: func(p ms2.Vec) float32 { return sdf2d.Hexagram(p, 0.5) },
		Color:    clr,
	})
}

// Star5 draws a five-pointed star of half-extent r pixels centered at
// (cx,cy) with inner radius factor rf in (0,1), a point up.
func (c *Canvas) Star5(cx, cy, r, rf float32, clr ms3.Vec) error {
	return c.drawShape(squareAround(cx, cy, r), &DistanceShader{
		Distance: func(p ms2.Vec) float32 { return sdf2d.Star5(p, 0.9, rf) },
		Color:    clr,
		FlipY:    true,
	})
}

// RoundedX draws an X of half-extent r pixels centered at (cx,cy) with arm
// thickness in normalized units.
func (c *Canvas) RoundedX(cx, cy, r, thickness float32, clr ms3.Vec) error {
	return c.drawShape(squareAround(cx, cy, r), &DistanceShader{
		Distance: func(p ms2.Vec) float32 { return sdf2d.RoundedX(p, 1.2, thickness) },
		Color:    clr,
		FlipY:    true,
	})
}

// Vesica draws a vesica of half-extent r pixels centered at (cx,cy).
func (c *Canvas) Vesica(cx, cy, r float32, clr ms3.Vec) error {
	return c.drawShape(squareAround(cx, cy, r), &DistanceShader{
		Distance: func(p ms2.Vec) float32 { return sdf2d.Vesica(p, 0.9, 0.45) },
		Color:    clr,
	})
}

// Egg draws an egg of half-extent r pixels centered at (cx,cy), tip up.
func (c *Canvas) Egg(cx, cy, r float32, clr ms3.Vec) error {
	return c.drawShape(squareAround(cx, cy, r), &DistanceShader{
		Distance: func(p ms2.Vec) float32 { return sdf2d.Egg(p, 0.6, 0.2) },
		Color:    clr,
		FlipY:    true,
	})
}

// Polygon runs a bytecode fragment program over the region (x,y,w,h) with
// the given register file. The program sees normalized coordinates with y
// growing upward and the current pixel color as its ambient color.
func (c *Canvas) Polygon(x, y, w, h float32, prog *sdfvm.Program, regs []sdfvm.Value) error {
	shader := &VMShader{Program: prog, Registers: regs, FlipY: true}
	return Draw(c.Buf, c.Res, RegionOf(x, y, w, h), shader, nil)
}

const sqrt3 = 1.7320508075688772935274463415058723669428052538103806280558069794
