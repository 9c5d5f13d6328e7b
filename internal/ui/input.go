package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputHandler samples mouse and keyboard state once per frame.
type InputHandler struct {
	x, y             float64 // Logical coordinates (unscaled)
	lastX, lastY     float64
	leftPressed      bool
	leftJustPressed  bool
	leftJustReleased bool
	resetPressed     bool
}

// NewInputHandler creates a new input handler.
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update samples input. scale converts layout pixels to logical pixels.
func (ih *InputHandler) Update(scale float64) {
	if scale < 1.0 {
		scale = 1.0
	}
	rawX, rawY := ebiten.CursorPosition()
	ih.lastX, ih.lastY = ih.x, ih.y
	ih.x = float64(rawX) / scale
	ih.y = float64(rawY) / scale

	ih.leftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	ih.leftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	ih.leftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	ih.resetPressed = inpututil.IsKeyJustPressed(ebiten.KeyR)
}

// Position returns the pointer in logical coordinates.
func (ih *InputHandler) Position() (float64, float64) {
	return ih.x, ih.y
}

// Moved reports whether the pointer moved since the previous frame.
func (ih *InputHandler) Moved() bool {
	return ih.x != ih.lastX || ih.y != ih.lastY
}

// IsLeftJustPressed returns true if the left mouse button was just pressed.
func (ih *InputHandler) IsLeftJustPressed() bool {
	return ih.leftJustPressed
}

// IsLeftJustReleased returns true if the left mouse button was just released.
func (ih *InputHandler) IsLeftJustReleased() bool {
	return ih.leftJustReleased
}

// IsLeftPressed returns true if the left mouse button is currently pressed.
func (ih *InputHandler) IsLeftPressed() bool {
	return ih.leftPressed
}

// ResetPressed reports the reset shortcut (R).
func (ih *InputHandler) ResetPressed() bool {
	return ih.resetPressed
}
