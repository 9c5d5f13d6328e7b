package surface

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRecorder(t *testing.T) {
	var r Recorder
	img := solid(2, 2, color.White)

	r.FillRect(0, 0, 10, 10, color.Black)
	r.DrawImage(img, 5, 5, 10, 10, 0.7)

	ops := r.Ops()
	require.Len(t, ops, 2)
	assert.Equal(t, OpFill, ops[0].Kind)
	assert.Equal(t, color.Black, ops[0].Color)
	assert.Equal(t, OpImage, ops[1].Kind)
	assert.Equal(t, 0.7, ops[1].Alpha)
	assert.Same(t, img, ops[1].Image)
	assert.Len(t, r.Images(), 1)

	r.Reset()
	assert.Empty(t, r.Ops())
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(16, 16)
	c.FillRect(0, 0, 8, 8, color.RGBA{255, 0, 0, 255})

	assert.Equal(t, color.RGBA{255, 0, 0, 255}, c.Image().RGBAAt(3, 3))
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(12, 12), "outside stays transparent")
}

func TestCanvasDrawImageScalesAndBlends(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(color.RGBA{0, 0, 0, 255})

	src := solid(4, 4, color.RGBA{255, 255, 255, 255})
	c.DrawImage(src, 0, 0, 10, 10, 1)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c.Image().RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, c.Image().RGBAAt(15, 15))

	c.DrawImage(src, 10, 10, 10, 10, 0.5)
	px := c.Image().RGBAAt(15, 15)
	assert.InDelta(t, 128, int(px.R), 2, "half opacity blends over black")
	assert.Equal(t, uint8(255), px.A)
}

func TestCanvasDrawImageIgnoresEmpty(t *testing.T) {
	c := NewCanvas(4, 4)
	c.DrawImage(nil, 0, 0, 4, 4, 1)
	c.DrawImage(solid(1, 1, color.White), 0, 0, 4, 4, 0)
	assert.Equal(t, color.RGBA{}, c.Image().RGBAAt(1, 1))
}

func TestCanvasWritePNG(t *testing.T) {
	c := NewCanvas(8, 8)
	c.Clear(color.RGBA{10, 20, 30, 255})

	var buf bytes.Buffer
	require.NoError(t, c.WritePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
	r, g, b, _ := img.At(4, 4).RGBA()
	assert.Equal(t, []uint32{10, 20, 30}, []uint32{r >> 8, g >> 8, b >> 8})
}
