package render

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms1"
	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"

	"github.com/PaulBatchelor/sdf2d"
	"github.com/PaulBatchelor/sdf2d/sdfvm"
)

// FeatherAlpha maps an inside-positive distance d to a blend factor: 1 inside
// the shape and on its boundary, ramping smoothly down to 0 across a band of
// the given width just outside the boundary, 0 beyond it. The factor is used
// to blend linear RGB values; no gamma correction is applied.
func FeatherAlpha(d, feather float32) float32 {
	var alpha float32
	if d > 0 {
		alpha = 1
	}
	alpha += sdf2d.SmoothStep(feather, 0, math32.Abs(d))
	return ms1.Clamp(alpha, 0, 1)
}

// DistanceShader renders a signed distance function with analytic
// anti-aliased edges, blending Color over the existing pixel.
type DistanceShader struct {
	// Distance is the field to render, negative inside.
	Distance func(p ms2.Vec) float32
	// Color is the foreground blended by the feathered coverage.
	Color ms3.Vec
	// Feather is the anti-aliasing band width in shape-space units.
	// Zero selects [DefaultFeather].
	Feather float32
	// FlipY mirrors the normalized y axis before evaluation, required by
	// shapes whose canonical orientation opposes image row order.
	FlipY bool
	// Remap overrides the pixel-to-shape-space mapping. Defaults to
	// [sdf2d.Normalize] over the region size.
	Remap func(pos, res ms2.Vec) ms2.Vec
}

func (s *DistanceShader) Clone() Shader { return s }

func (s *DistanceShader) Shade(frag *ms3.Vec, st ms2.Vec, ctx *Context) error {
	res := ctx.Region.Size()
	var p ms2.Vec
	if s.Remap != nil {
		p = s.Remap(st, res)
	} else {
		p = sdf2d.Normalize(st, res)
	}
	if s.FlipY {
		p.Y = -p.Y
	}
	feather := s.Feather
	if feather == 0 {
		feather = DefaultFeather
	}
	d := -s.Distance(p)
	alpha := FeatherAlpha(d, feather)
	*frag = ms3.InterpElem(*frag, s.Color, ms3.Vec{X: alpha, Y: alpha, Z: alpha})
	return nil
}

// VMShader renders by executing a bytecode fragment program. The program
// and register values are shared read-only across workers; each worker
// clone owns a private virtual machine.
//
// Per pixel the shader normalizes the pixel coordinate over the region,
// sets it as the ambient point, sets the current pixel color as the ambient
// color, executes the program and writes back the vec3 it leaves on the
// stack. On a program error the pixel is left unchanged.
type VMShader struct {
	Program   *sdfvm.Program
	Registers []sdfvm.Value
	// FlipY mirrors the normalized y axis so that program shape space has
	// y growing upward.
	FlipY bool

	vm       sdfvm.VM
	setupErr error
}

func (s *VMShader) Clone() Shader {
	c := &VMShader{Program: s.Program, Registers: s.Registers, FlipY: s.FlipY}
	c.setupErr = c.vm.SetRegisters(s.Registers)
	return c
}

func (s *VMShader) Shade(frag *ms3.Vec, st ms2.Vec, ctx *Context) error {
	if s.setupErr != nil {
		return s.setupErr
	}
	p := sdf2d.Normalize(st, ctx.Region.Size())
	if s.FlipY {
		p.Y = -p.Y
	}
	s.vm.SetPoint(p)
	s.vm.SetColor(*frag)
	if err := s.vm.Execute(s.Program.Bytes()); err != nil {
		return err
	}
	col, err := s.vm.PopVec3()
	if err != nil {
		return err
	}
	*frag = col
	return nil
}
