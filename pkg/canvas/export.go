package canvas

import (
	"image"
	"image/png"
	"os"
)

// RGBA encodes the pixel buffer as a size×size×4 RGBA8888 byte slice,
// row-major, suitable for ebiten.Image.WritePixels.
func (c *Canvas) RGBA() []byte {
	out := make([]byte, c.size*c.size*4)
	for i, col := range c.pix {
		r, g, b, a := col.rgba()
		out[i*4+0] = r
		out[i*4+1] = g
		out[i*4+2] = b
		out[i*4+3] = a
	}
	return out
}

// Image returns the canvas as an *image.RGBA sharing no state with the
// canvas buffer.
func (c *Canvas) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    c.RGBA(),
		Stride: c.size * 4,
		Rect:   image.Rect(0, 0, c.size, c.size),
	}
}

// SavePNG encodes the canvas as a PNG and writes it to filename.
func (c *Canvas) SavePNG(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, c.Image())
}
