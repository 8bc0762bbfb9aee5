package render

import (
	"errors"
	"sync"

	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
)

// maxWorkers is the number of worker goroutines spawned per draw call.
// Rows interleave across workers by y modulo maxWorkers so that writes to
// the framebuffer are disjoint.
const maxWorkers = 8

// Draw renders region into buf with the row stride equal to the image
// width. See [DrawStride].
func Draw(buf []ms3.Vec, res ms2.Vec, region Region, shader Shader, userData any) error {
	return DrawStride(buf, res, region, shader, userData, int(res.X))
}

// DrawStride renders region into buf, invoking shader once for every pixel
// (x,y) of the region. The pixel slot is buf[y*stride + x]; slots falling
// outside buf are skipped, which clips regions that overhang the top or
// bottom of the buffer. Only the total length is checked: an x outside
// [0, stride) is not clipped and lands in a neighbouring row.
//
// The call blocks until all workers join. The first error of each worker is
// collected; because programs are static per frame a single shader error
// means every pixel fails the same way, so callers treat any returned error
// as fatal for the frame.
func DrawStride(buf []ms3.Vec, res ms2.Vec, region Region, shader Shader, userData any, stride int) error {
	ctx := Context{Resolution: res, Region: &region, UserData: userData}
	logger().Debug("draw",
		"region", [4]float32{region.X, region.Y, region.W, region.H},
		"stride", stride, "workers", maxWorkers)

	var wg sync.WaitGroup
	errs := make([]error, maxWorkers)
	for t := 0; t < maxWorkers; t++ {
		worker := shader.Clone()
		wg.Add(1)
		go func(t int, worker Shader) {
			defer wg.Done()
			errs[t] = drawRows(buf, &ctx, worker, t, stride)
		}(t, worker)
	}
	wg.Wait()
	err := errors.Join(errs...)
	if err != nil {
		logger().Debug("draw failed", "err", err)
	}
	return err
}

// drawRows walks rows y = region.Y+off, region.Y+off+maxWorkers, ... and
// shades every pixel of each row. Scanning continues past shader errors so
// that the rest of the frame is still produced; the first error is
// returned after the sweep.
func drawRows(buf []ms3.Vec, ctx *Context, shader Shader, off, stride int) error {
	reg := ctx.Region
	xstart := int(reg.X)
	xend := int(reg.X + reg.W)
	ystart := int(reg.Y) + off
	yend := int(reg.Y + reg.H)

	var firstErr error
	for y := ystart; y < yend; y += maxWorkers {
		for x := xstart; x < xend; x++ {
			pos := y*stride + x
			if pos < 0 || pos >= len(buf) {
				continue
			}
			st := ms2.Vec{X: float32(x) - reg.X, Y: float32(y) - reg.Y}
			err := shader.Shade(&buf[pos], st, ctx)
			if err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
