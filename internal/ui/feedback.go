package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/hailam/chessboard/internal/rules"
)

// ToastType selects the toast colors.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastError
	ToastSuccess
)

const toastFade = 200 * time.Millisecond

// Toast is a short message shown over the board.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager keeps the most recent toasts.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{maxStack: 3}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: time.Now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Clear drops every toast.
func (tm *ToastManager) Clear() {
	tm.toasts = nil
}

// Update removes expired toasts.
func (tm *ToastManager) Update(now time.Time) {
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Draw renders the toasts centered over a board of boardSize logical pixels.
func (tm *ToastManager) Draw(screen *ebiten.Image, boardSize, scale float64) {
	face := regularFace(scale)
	if face == nil {
		return
	}

	now := time.Now()
	y := 50.0 * scale
	for _, t := range tm.toasts {
		elapsed := now.Sub(t.StartTime)
		alpha := 1.0
		if elapsed < toastFade {
			alpha = float64(elapsed) / float64(toastFade)
		} else if rest := t.Duration - elapsed; rest < toastFade {
			alpha = float64(rest) / float64(toastFade)
		}

		bg := toastColor(t.Type)
		bg.A = uint8(220 * alpha)
		fg := color.RGBA{255, 255, 255, uint8(255 * alpha)}
		if t.Type == ToastWarning {
			fg = color.RGBA{40, 30, 0, uint8(255 * alpha)}
		}

		w, h := MeasureText(t.Message, face)
		padding := 12.0 * scale
		boxW, boxH := w+padding*2, h+padding*2
		x := boardSize*scale/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bg, false)
		op := &text.DrawOptions{}
		op.GeoM.Translate(x+padding, y+padding)
		op.ColorScale.ScaleWithColor(fg)
		text.Draw(screen, t.Message, face, op)

		y += boxH + 8*scale
	}
}

func toastColor(t ToastType) color.RGBA {
	switch t {
	case ToastWarning:
		return color.RGBA{180, 140, 20, 255}
	case ToastError:
		return color.RGBA{180, 50, 50, 255}
	case ToastSuccess:
		return color.RGBA{50, 150, 50, 255}
	}
	return color.RGBA{50, 100, 150, 255}
}

// FeedbackManager turns board events into toasts and sounds.
type FeedbackManager struct {
	toasts *ToastManager
	audio  *AudioManager
}

// NewFeedbackManager creates the toast stack and audio cues.
func NewFeedbackManager(soundEnabled bool) *FeedbackManager {
	return &FeedbackManager{
		toasts: NewToastManager(),
		audio:  NewAudioManager(soundEnabled),
	}
}

// Update expires toasts.
func (fm *FeedbackManager) Update(now time.Time) {
	fm.toasts.Update(now)
}

// Draw renders the toasts.
func (fm *FeedbackManager) Draw(screen *ebiten.Image, boardSize, scale float64) {
	fm.toasts.Draw(screen, boardSize, scale)
}

// Audio returns the audio manager.
func (fm *FeedbackManager) Audio() *AudioManager {
	return fm.audio
}

// OnMove plays the cue for an accepted move.
func (fm *FeedbackManager) OnMove(m rules.Move) {
	switch {
	case m.Check:
		fm.audio.Play(SoundCheck)
	case m.IsCapture():
		fm.audio.Play(SoundCapture)
	case m.Castle:
		fm.audio.Play(SoundCastle)
	default:
		fm.audio.Play(SoundMove)
	}
}

// OnInvalidMove signals a rejected drop.
func (fm *FeedbackManager) OnInvalidMove() {
	fm.audio.Play(SoundInvalid)
}

// OnGameOver shows the final status.
func (fm *FeedbackManager) OnGameOver(status string) {
	fm.toasts.Show(status, ToastSuccess, 4*time.Second)
	fm.audio.Play(SoundGameEnd)
}

// OnReset clears stale messages.
func (fm *FeedbackManager) OnReset() {
	fm.toasts.Clear()
}

// OnError shows a failure that the user should know about.
func (fm *FeedbackManager) OnError(msg string) {
	fm.toasts.Show(msg, ToastError, 3*time.Second)
}

// OnWarning shows a degraded-mode notice.
func (fm *FeedbackManager) OnWarning(msg string) {
	fm.toasts.Show(msg, ToastWarning, 3*time.Second)
}

// OnInfo shows a short informational message.
func (fm *FeedbackManager) OnInfo(msg string) {
	fm.toasts.Show(msg, ToastInfo, 1500*time.Millisecond)
}
