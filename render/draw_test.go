package render

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"
)

// countShader counts writes per pixel slot to verify coverage and
// disjointness of the row partition.
type countShader struct {
	counts []int32
	stride int
}

func (s *countShader) Clone() Shader { return s }

func (s *countShader) Shade(frag *ms3.Vec, st ms2.Vec, ctx *Context) error {
	x := int(st.X + ctx.Region.X)
	y := int(st.Y + ctx.Region.Y)
	atomic.AddInt32(&s.counts[y*s.stride+x], 1)
	*frag = ms3.Vec{X: 1}
	return nil
}

func TestDrawCoverageAndDisjointness(t *testing.T) {
	const W, H = 64, 48
	buf := make([]ms3.Vec, W*H)
	sh := &countShader{counts: make([]int32, W*H), stride: W}
	err := Draw(buf, ms2.Vec{X: W, Y: H}, RegionOf(0, 0, W, H), sh, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i, n := range sh.counts {
		if n != 1 {
			t.Fatalf("pixel %d written %d times, want exactly once", i, n)
		}
	}
}

func TestDrawSubRegion(t *testing.T) {
	const W, H = 32, 32
	buf := make([]ms3.Vec, W*H)
	sh := &countShader{counts: make([]int32, W*H), stride: W}
	region := RegionOf(8, 4, 16, 20)
	if err := Draw(buf, ms2.Vec{X: W, Y: H}, region, sh, nil); err != nil {
		t.Fatal(err)
	}
	for y := 0; y < H; y++ {
		for x := 0; x < W; x++ {
			inside := x >= 8 && x < 24 && y >= 4 && y < 24
			n := sh.counts[y*W+x]
			if inside && n != 1 {
				t.Fatalf("region pixel (%d,%d) written %d times", x, y, n)
			}
			if !inside && n != 0 {
				t.Fatalf("pixel (%d,%d) outside region written %d times", x, y, n)
			}
		}
	}
}

func TestDrawStridePadding(t *testing.T) {
	const W, H, pad = 16, 8, 5
	const stride = W + pad
	buf := make([]ms3.Vec, stride*H)
	red := ms3.Vec{X: 1}
	sh := ShaderFunc(func(frag *ms3.Vec, st ms2.Vec, ctx *Context) error {
		*frag = red
		return nil
	})
	err := DrawStride(buf, ms2.Vec{X: W, Y: H}, RegionOf(0, 0, W, H), sh, nil, stride)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < H; y++ {
		for x := 0; x < stride; x++ {
			got := buf[y*stride+x]
			if x < W && got != red {
				t.Fatalf("pixel (%d,%d) = %v, want red", x, y, got)
			}
			if x >= W && got != (ms3.Vec{}) {
				t.Fatalf("padding column (%d,%d) touched: %v", x, y, got)
			}
		}
	}
}

func TestDrawClipsToBuffer(t *testing.T) {
	const W, H = 16, 16
	buf := make([]ms3.Vec, W*H)
	sh := ShaderFunc(func(frag *ms3.Vec, st ms2.Vec, ctx *Context) error {
		*frag = ms3.Vec{X: 1}
		return nil
	})
	// Region hangs past the bottom of the buffer: overhang is skipped,
	// nothing panics.
	err := Draw(buf, ms2.Vec{X: W, Y: H}, RegionOf(0, 8, W, 16), sh, nil)
	if err != nil {
		t.Fatal(err)
	}
	for y := 8; y < H; y++ {
		for x := 0; x < W; x++ {
			if buf[y*W+x] != (ms3.Vec{X: 1}) {
				t.Fatalf("pixel (%d,%d) not drawn", x, y)
			}
		}
	}
}

func TestDrawSurfacesShaderError(t *testing.T) {
	const W, H = 16, 16
	buf := make([]ms3.Vec, W*H)
	errShade := errors.New("bad program")
	sh := ShaderFunc(func(frag *ms3.Vec, st ms2.Vec, ctx *Context) error {
		return errShade
	})
	err := Draw(buf, ms2.Vec{X: W, Y: H}, RegionOf(0, 0, W, H), sh, nil)
	if !errors.Is(err, errShade) {
		t.Fatalf("draw error = %v, want %v", err, errShade)
	}
	for i, c := range buf {
		if c != (ms3.Vec{}) {
			t.Fatalf("pixel %d modified by failing shader: %v", i, c)
		}
	}
}

// cloneCounter checks every worker receives its own shader instance.
type cloneCounter struct {
	clones int32
}

func (s *cloneCounter) Clone() Shader {
	atomic.AddInt32(&s.clones, 1)
	return &cloneCounter{}
}

func (s *cloneCounter) Shade(frag *ms3.Vec, st ms2.Vec, ctx *Context) error { return nil }

func TestDrawClonesPerWorker(t *testing.T) {
	const W, H = 8, 8
	buf := make([]ms3.Vec, W*H)
	sh := &cloneCounter{}
	if err := Draw(buf, ms2.Vec{X: W, Y: H}, RegionOf(0, 0, W, H), sh, nil); err != nil {
		t.Fatal(err)
	}
	if n := atomic.LoadInt32(&sh.clones); n != maxWorkers {
		t.Errorf("shader cloned %d times, want %d", n, maxWorkers)
	}
}
