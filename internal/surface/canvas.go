package surface

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
)

// Canvas is a Surface backed by an in-memory RGBA image.
type Canvas struct {
	img *image.RGBA
	dc  *gg.Context
}

// NewCanvas returns a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Canvas{img: img, dc: gg.NewContextForRGBA(img)}
}

// FillRect implements Surface.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(x, y, w, h)
	c.dc.Fill()
}

// DrawImage implements Surface. The source is resampled to the target size
// before compositing with a uniform alpha mask.
func (c *Canvas) DrawImage(src image.Image, x, y, w, h, alpha float64) {
	if src == nil || w <= 0 || h <= 0 || alpha <= 0 {
		return
	}
	dr := image.Rect(int(math.Round(x)), int(math.Round(y)),
		int(math.Round(x+w)), int(math.Round(y+h)))

	scaled := image.NewRGBA(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	if alpha > 1 {
		alpha = 1
	}
	mask := image.NewUniform(color.Alpha{A: uint8(alpha*255 + 0.5)})
	xdraw.DrawMask(c.img, dr, scaled, image.Point{}, mask, image.Point{}, xdraw.Over)
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole canvas with col, replacing existing pixels.
func (c *Canvas) Clear(col color.Color) {
	xdraw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, xdraw.Src)
}

// WritePNG encodes the canvas as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
