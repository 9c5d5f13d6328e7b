// Package surface defines the drawing capabilities the board controller needs
// and provides recording and raster implementations of them.
package surface

import (
	"image"
	"image/color"
)

// Surface is a pixel-addressable drawing target.
type Surface interface {
	// FillRect fills the rectangle with c, blending by c's alpha.
	FillRect(x, y, w, h float64, c color.Color)
	// DrawImage draws img scaled into the rectangle with the given opacity (0-1).
	DrawImage(img image.Image, x, y, w, h, alpha float64)
}

// OpKind identifies a recorded drawing operation.
type OpKind int

const (
	OpFill OpKind = iota
	OpImage
)

// Op is one recorded drawing call.
type Op struct {
	Kind  OpKind
	X, Y  float64
	W, H  float64
	Color color.Color
	Image image.Image
	Alpha float64
}

// Recorder is a Surface that records every call.
type Recorder struct {
	ops []Op
}

// FillRect implements Surface.
func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpFill, X: x, Y: y, W: w, H: h, Color: c})
}

// DrawImage implements Surface.
func (r *Recorder) DrawImage(img image.Image, x, y, w, h, alpha float64) {
	r.ops = append(r.ops, Op{Kind: OpImage, X: x, Y: y, W: w, H: h, Image: img, Alpha: alpha})
}

// Ops returns a copy of the recorded operations.
func (r *Recorder) Ops() []Op {
	return append([]Op(nil), r.ops...)
}

// Images returns only the image operations.
func (r *Recorder) Images() []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == OpImage {
			out = append(out, op)
		}
	}
	return out
}

// Reset discards recorded operations.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}
