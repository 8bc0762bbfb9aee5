package render

import (
	"bytes"
	"testing"

	"github.com/soypat/glgl/math/ms2"
	"github.com/soypat/glgl/math/ms3"

	"github.com/PaulBatchelor/sdf2d/sdfvm"
)

func vec2(x, y float32) ms2.Vec { return ms2.Vec{X: x, Y: y} }

var white = ms3.Vec{X: 1, Y: 1, Z: 1}

func newWhiteCanvas(t *testing.T) *Canvas {
	t.Helper()
	c := NewCanvas(512, 512)
	if err := c.Fill(white); err != nil {
		t.Fatal(err)
	}
	return c
}

func (c *Canvas) at(x, y int) ms3.Vec {
	return c.Buf[y*int(c.Res.X)+x]
}

func TestFillExact(t *testing.T) {
	c := NewCanvas(512, 512)
	clr := RGBColor(186, 225, 255)
	if err := c.Fill(clr); err != nil {
		t.Fatal(err)
	}
	for i, got := range c.Buf {
		if got != clr {
			t.Fatalf("pixel %d = %v, want fill color %v exactly", i, got, clr)
		}
	}
}

func TestHeartScenario(t *testing.T) {
	c := newWhiteCanvas(t)
	pink := RGBColor(255, 192, 203)
	if err := c.Heart(0, 0, 128, 128, pink); err != nil {
		t.Fatal(err)
	}
	got := c.at(64, 64)
	const lsb5 = 5.0 / 255
	if absDiff(got.X, pink.X) > lsb5 || absDiff(got.Y, pink.Y) > lsb5 || absDiff(got.Z, pink.Z) > lsb5 {
		t.Errorf("heart center pixel = %v, want pink %v within 5 LSB", got, pink)
	}
	if c.at(0, 0) != white {
		t.Errorf("heart region corner = %v, want white", c.at(0, 0))
	}
	if c.at(300, 300) != white {
		t.Errorf("pixel outside heart region = %v, want white", c.at(300, 300))
	}
}

func TestCircleScenario(t *testing.T) {
	c := newWhiteCanvas(t)
	black := ms3.Vec{}
	if err := c.Circle(192, 64, 48, black); err != nil {
		t.Fatal(err)
	}
	if got := c.at(192, 64); got != black {
		t.Errorf("circle center = %v, want foreground", got)
	}
	// Topmost circle pixel lies on the zero-set: covered by the feather band.
	if got := c.at(192, 16); got == white {
		t.Error("boundary pixel untouched")
	} else if cov := 1 - got.X; cov < 0.4 {
		t.Errorf("boundary pixel coverage %g, want at least mid-transition", cov)
	}
	// One pixel outside the draw region stays background.
	if got := c.at(192, 14); got != white {
		t.Errorf("pixel above region = %v, want white", got)
	}
}

func TestRoundedBoxScenario(t *testing.T) {
	c := newWhiteCanvas(t)
	blue := RGBColor(186, 225, 255)
	if err := c.RoundedBox(288, 16, 96, 96, 0.5, blue); err != nil {
		t.Fatal(err)
	}
	if got := c.at(336, 64); got != blue {
		t.Errorf("rounded box center = %v, want foreground", got)
	}
	// The rounded corner pulls away from the region corner.
	if got := c.at(288, 16); got != white {
		t.Errorf("region corner = %v, want background", got)
	}
}

func TestTriangleScenario(t *testing.T) {
	c := newWhiteCanvas(t)
	green := RGBColor(186, 255, 201)
	if err := c.TriangleEquilateral(192, 192, 64, green); err != nil {
		t.Fatal(err)
	}
	if got := c.at(192, 128); got != green {
		t.Errorf("apex pixel = %v, want foreground", got)
	}
	// Region corners are outside the triangle.
	if got := c.at(129, 129); got != white {
		t.Errorf("region corner = %v, want background", got)
	}
	if got := c.at(400, 400); got != white {
		t.Errorf("pixel outside bounding box = %v, want background", got)
	}
}

func polygonScene(t *testing.T, c *Canvas) {
	t.Helper()
	var prog sdfvm.Program
	prog.Point()
	for i := 0; i < 4; i++ {
		prog.Register(i)
	}
	prog.Poly4()
	prog.Register(4).Roundness()
	prog.Point().Register(6).Circle()
	prog.Register(5).Lerp()
	prog.Scalar(-1).Mul()
	prog.GTZ()
	prog.Color()
	prog.Vec3(ms3.Vec{})
	prog.Lerp3()

	regs := []sdfvm.Value{
		sdfvm.Vec2(vec2(-0.5, 0.5)),
		sdfvm.Vec2(vec2(-0.1, -0.5)),
		sdfvm.Vec2(vec2(0.1, -0.5)),
		sdfvm.Vec2(vec2(0.5, 0.5)),
		sdfvm.Scalar(0.1),
		sdfvm.Scalar(0.1),
		sdfvm.Scalar(0.7),
	}
	if err := c.Polygon(0, 0, c.Res.X, c.Res.Y, &prog, regs); err != nil {
		t.Fatal(err)
	}
}

func TestVMPolygonScenario(t *testing.T) {
	c := newWhiteCanvas(t)
	polygonScene(t, c)
	if got := c.at(256, 256); got != (ms3.Vec{}) {
		t.Errorf("polygon center = %v, want black", got)
	}
	for _, corner := range [][2]int{{0, 0}, {511, 0}, {0, 511}, {511, 511}} {
		if got := c.at(corner[0], corner[1]); got != white {
			t.Errorf("corner %v = %v, want white", corner, got)
		}
	}
}

func TestGridlines(t *testing.T) {
	c := newWhiteCanvas(t)
	black := ms3.Vec{}
	c.Gridlines(black, 4)
	if got := c.at(0, 0); got != black {
		t.Errorf("gridline origin = %v, want black", got)
	}
	if got := c.at(128, 300); got != black {
		t.Errorf("vertical gridline = %v, want black", got)
	}
	if got := c.at(70, 70); got != white {
		t.Errorf("cell interior = %v, want white", got)
	}
}

func TestWritePPM(t *testing.T) {
	c := NewCanvas(4, 2)
	if err := c.Fill(white); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := c.WritePPM(&buf); err != nil {
		t.Fatal(err)
	}
	wantHeader := "P6\n4 2\n255\n"
	if !bytes.HasPrefix(buf.Bytes(), []byte(wantHeader)) {
		t.Fatalf("ppm header = %q, want prefix %q", buf.Bytes()[:len(wantHeader)], wantHeader)
	}
	body := buf.Bytes()[len(wantHeader):]
	if len(body) != 3*4*2 {
		t.Fatalf("ppm payload length = %d, want %d", len(body), 3*4*2)
	}
	for i, b := range body {
		if b != 255 {
			t.Fatalf("ppm byte %d = %d, want 255", i, b)
		}
	}
}

func TestWritePNGAndBMP(t *testing.T) {
	c := NewCanvas(8, 8)
	if err := c.Fill(RGBColor(255, 179, 186)); err != nil {
		t.Fatal(err)
	}
	var png bytes.Buffer
	if err := c.WritePNG(&png); err != nil {
		t.Fatal(err)
	}
	if png.Len() == 0 {
		t.Error("empty png output")
	}
	var bmp bytes.Buffer
	if err := c.WriteBMP(&bmp); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(bmp.Bytes(), []byte("BM")) {
		t.Error("bmp output missing magic")
	}
}

func absDiff(a, b float32) float32 {
	if a > b {
		return a - b
	}
	return b - a
}
