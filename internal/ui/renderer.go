package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Renderer is the ebiten implementation of surface.Surface. Callers draw in
// logical board pixels; the renderer multiplies by the HiDPI scale.
type Renderer struct {
	target *ebiten.Image
	scale  float64
	images map[image.Image]*ebiten.Image
}

// NewRenderer creates a renderer with an empty texture cache.
func NewRenderer() *Renderer {
	return &Renderer{scale: 1, images: make(map[image.Image]*ebiten.Image)}
}

// Begin directs subsequent drawing at target.
func (r *Renderer) Begin(target *ebiten.Image, scale float64) {
	if scale < 1 {
		scale = 1
	}
	r.target = target
	r.scale = scale
}

// FillRect implements surface.Surface.
func (r *Renderer) FillRect(x, y, w, h float64, c color.Color) {
	if r.target == nil {
		return
	}
	s := r.scale
	vector.DrawFilledRect(r.target, float32(x*s), float32(y*s), float32(w*s), float32(h*s), c, false)
}

// DrawImage implements surface.Surface.
func (r *Renderer) DrawImage(img image.Image, x, y, w, h, alpha float64) {
	if r.target == nil || img == nil {
		return
	}
	tex := r.texture(img)
	b := tex.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w*r.scale/float64(b.Dx()), h*r.scale/float64(b.Dy()))
	op.GeoM.Translate(x*r.scale, y*r.scale)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	r.target.DrawImage(tex, op)
}

// Forget releases every cached texture. Call it when the sprite set changes.
func (r *Renderer) Forget() {
	for k, tex := range r.images {
		tex.Deallocate()
		delete(r.images, k)
	}
}

func (r *Renderer) texture(img image.Image) *ebiten.Image {
	if tex, ok := r.images[img]; ok {
		return tex
	}
	tex := ebiten.NewImageFromImage(img)
	r.images[img] = tex
	return tex
}
