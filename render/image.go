package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"golang.org/x/image/bmp"
)

// mkcolor converts a linear [0,1] channel to its 8-bit value.
func mkcolor(x float32) uint8 {
	v := math32.Floor(x * 255)
	if v <= 0 {
		return 0
	} else if v >= 255 {
		return 255
	}
	return uint8(v)
}

// Image converts a framebuffer to an 8-bit RGBA image.
func Image(buf []ms3.Vec, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := buf[y*width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: mkcolor(c.X),
				G: mkcolor(c.Y),
				B: mkcolor(c.Z),
				A: 255,
			})
		}
	}
	return img
}

// WritePPM writes the framebuffer as a binary P6 PPM.
func WritePPM(w io.Writer, buf []ms3.Vec, width, height int) error {
	_, err := fmt.Fprintf(w, "P6\n%d %d\n%d\n", width, height, 255)
	if err != nil {
		return err
	}
	ibuf := make([]uint8, 3*width*height)
	for pos, c := range buf[:width*height] {
		ibuf[3*pos] = mkcolor(c.X)
		ibuf[3*pos+1] = mkcolor(c.Y)
		ibuf[3*pos+2] = mkcolor(c.Z)
	}
	_, err = w.Write(ibuf)
	return err
}

// WritePNG writes the framebuffer as a PNG.
func WritePNG(w io.Writer, buf []ms3.Vec, width, height int) error {
	return png.Encode(w, Image(buf, width, height))
}

// WriteBMP writes the framebuffer as a BMP.
func WriteBMP(w io.Writer, buf []ms3.Vec, width, height int) error {
	return bmp.Encode(w, Image(buf, width, height))
}

// Image converts the canvas framebuffer to an 8-bit RGBA image.
func (c *Canvas) Image() *image.RGBA {
	return Image(c.Buf, int(c.Res.X), int(c.Res.Y))
}

// WritePPM writes the canvas as a binary P6 PPM.
func (c *Canvas) WritePPM(w io.Writer) error {
	return WritePPM(w, c.Buf, int(c.Res.X), int(c.Res.Y))
}

// WritePNG writes the canvas as a PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return WritePNG(w, c.Buf, int(c.Res.X), int(c.Res.Y))
}

// WriteBMP writes the canvas as a BMP.
func (c *Canvas) WriteBMP(w io.Writer) error {
	return WriteBMP(w, c.Buf, int(c.Res.X), int(c.Res.Y))
}
