package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Panel dimensions
const (
	PanelWidth     = 280
	PanelPadding   = 20
	ButtonHeight   = 40
	ButtonSpacing  = 10
	SectionSpacing = 28
	SectionLabelH  = 20
	MinPanelHeight = 480
)

// panelPalette is the set of colors for one panel mode.
type panelPalette struct {
	bg            color.RGBA
	button        color.RGBA
	buttonHover   color.RGBA
	buttonPressed color.RGBA
	border        color.RGBA
	accent        color.RGBA
	accentHover   color.RGBA
	accentPressed color.RGBA
	text          color.RGBA
	textSecondary color.RGBA
	textMuted     color.RGBA
	divider       color.RGBA
	gameOver      color.RGBA
}

var darkPalette = panelPalette{
	bg:            color.RGBA{38, 40, 45, 255},
	button:        color.RGBA{50, 54, 60, 255},
	buttonHover:   color.RGBA{65, 70, 78, 255},
	buttonPressed: color.RGBA{40, 44, 50, 255},
	border:        color.RGBA{70, 75, 82, 255},
	accent:        color.RGBA{76, 175, 120, 255},
	accentHover:   color.RGBA{96, 195, 140, 255},
	accentPressed: color.RGBA{56, 155, 100, 255},
	text:          color.RGBA{240, 240, 245, 255},
	textSecondary: color.RGBA{160, 165, 175, 255},
	textMuted:     color.RGBA{120, 125, 135, 255},
	divider:       color.RGBA{60, 65, 72, 255},
	gameOver:      color.RGBA{255, 200, 80, 255},
}

var lightPalette = panelPalette{
	bg:            color.RGBA{243, 244, 246, 255},
	button:        color.RGBA{255, 255, 255, 255},
	buttonHover:   color.RGBA{229, 231, 235, 255},
	buttonPressed: color.RGBA{209, 213, 219, 255},
	border:        color.RGBA{209, 213, 219, 255},
	accent:        color.RGBA{56, 155, 100, 255},
	accentHover:   color.RGBA{76, 175, 120, 255},
	accentPressed: color.RGBA{36, 135, 80, 255},
	text:          color.RGBA{17, 24, 39, 255},
	textSecondary: color.RGBA{75, 85, 99, 255},
	textMuted:     color.RGBA{107, 114, 128, 255},
	divider:       color.RGBA{209, 213, 219, 255},
	gameOver:      color.RGBA{180, 83, 9, 255},
}

// Button represents a clickable UI element in logical coordinates.
type Button struct {
	X, Y, W, H float64
	Label      func() string
	OnClick    func()
	Primary    bool
	hovered    bool
	pressed    bool
}

func (b *Button) contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Panel is the side panel with the status line and board controls.
type Panel struct {
	game    *Game
	x       float64
	height  float64
	buttons []*Button
}

// NewPanel creates the panel to the right of a board of boardSize pixels.
func NewPanel(g *Game, boardSize float64) *Panel {
	p := &Panel{game: g, x: boardSize, height: max(boardSize, MinPanelHeight)}
	p.createButtons()
	return p
}

func (p *Panel) createButtons() {
	x := p.x + PanelPadding
	w := float64(PanelWidth - PanelPadding*2)
	y := float64(PanelPadding + 8)

	add := func(primary bool, label func() string, onClick func()) {
		p.buttons = append(p.buttons, &Button{
			X: x, Y: y, W: w, H: ButtonHeight,
			Label: label, OnClick: onClick, Primary: primary,
		})
		y += ButtonHeight + ButtonSpacing
	}

	add(true, func() string { return "Reset Board" }, p.game.ResetAction)
	add(false, func() string { return "Theme: " + p.game.ThemeName() }, p.game.NextThemeAction)
	add(false, func() string {
		if p.game.SpritesLoading() {
			return "Pieces: loading..."
		}
		return "Pieces: " + p.game.PieceStyle()
	}, p.game.NextStyleAction)
	add(false, func() string {
		if p.game.DarkMode() {
			return "Light Panel"
		}
		return "Dark Panel"
	}, p.game.ToggleDarkModeAction)
	add(false, func() string {
		if p.game.SoundEnabled() {
			return "Sound: On"
		}
		return "Sound: Off"
	}, p.game.ToggleSoundAction)
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	mx, my := input.Position()
	for _, btn := range p.buttons {
		btn.hovered = btn.contains(mx, my)
		btn.pressed = btn.hovered && input.IsLeftPressed()
	}
	if !input.IsLeftJustPressed() {
		return false
	}
	for _, btn := range p.buttons {
		if btn.hovered {
			btn.OnClick()
			return true
		}
	}
	return mx >= p.x
}

// Height returns the panel height in logical pixels.
func (p *Panel) Height() float64 {
	return p.height
}

// AnyButtonHovered returns true if any button in the panel is hovered.
func (p *Panel) AnyButtonHovered() bool {
	for _, btn := range p.buttons {
		if btn.hovered {
			return true
		}
	}
	return false
}

func (p *Panel) palette() panelPalette {
	if p.game.DarkMode() {
		return darkPalette
	}
	return lightPalette
}

// Draw renders the panel at the given HiDPI scale.
func (p *Panel) Draw(screen *ebiten.Image, scale float64) {
	pal := p.palette()
	s := float32(scale)
	vector.DrawFilledRect(screen, float32(p.x)*s, 0, PanelWidth*s, float32(p.height)*s, pal.bg, false)

	for _, btn := range p.buttons {
		p.drawButton(screen, btn, pal, scale)
	}

	last := p.buttons[len(p.buttons)-1]
	y := last.Y + last.H + SectionSpacing
	x := p.x + PanelPadding
	vector.DrawFilledRect(screen, float32(x)*s, float32(y-10)*s, float32(PanelWidth-PanelPadding*2)*s, s, pal.divider, false)

	p.drawText(screen, "Status", x, y, pal.textMuted, scale)
	statusColor := pal.text
	if p.game.GameOver() {
		statusColor = pal.gameOver
	}
	p.drawTextFace(screen, boldFace(scale), p.game.Status(), x, y+SectionLabelH, statusColor, scale)

	y += SectionLabelH*2 + SectionSpacing/2
	p.drawText(screen, "Last move", x, y, pal.textMuted, scale)
	p.drawText(screen, p.game.LastMoveText(), x, y+SectionLabelH, pal.textSecondary, scale)

	y += SectionLabelH*2 + SectionSpacing/2
	moves, illegal := p.game.SessionCounts()
	p.drawText(screen, "This session", x, y, pal.textMuted, scale)
	p.drawText(screen, fmt.Sprintf("%d moves, %d rejected", moves, illegal), x, y+SectionLabelH, pal.textSecondary, scale)

	p.drawText(screen, "Drag to move. R resets.", x, p.height-PanelPadding-SectionLabelH, pal.textMuted, scale)
}

func (p *Panel) drawButton(screen *ebiten.Image, btn *Button, pal panelPalette, scale float64) {
	bg, border, fg := pal.button, pal.border, pal.textSecondary
	if btn.Primary {
		bg, border, fg = pal.accent, pal.accentPressed, color.RGBA{240, 240, 245, 255}
		if btn.pressed {
			bg = pal.accentPressed
		} else if btn.hovered {
			bg = pal.accentHover
		}
	} else {
		if btn.pressed {
			bg = pal.buttonPressed
		} else if btn.hovered {
			bg = pal.buttonHover
			border = pal.accent
		}
	}

	s := float32(scale)
	x, y, w, h := float32(btn.X)*s, float32(btn.Y)*s, float32(btn.W)*s, float32(btn.H)*s
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, s, border, false)
	p.drawTextCentered(screen, btn.Label(), btn.X+btn.W/2, btn.Y+btn.H/2, fg, scale)
}

func (p *Panel) drawText(screen *ebiten.Image, s string, x, y float64, c color.Color, scale float64) {
	p.drawTextFace(screen, regularFace(scale), s, x, y, c, scale)
}

func (p *Panel) drawTextFace(screen *ebiten.Image, face *text.GoTextFace, s string, x, y float64, c color.Color, scale float64) {
	if face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x*scale, y*scale)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func (p *Panel) drawTextCentered(screen *ebiten.Image, s string, cx, cy float64, c color.Color, scale float64) {
	face := regularFace(scale)
	if face == nil {
		return
	}
	w, h := MeasureText(s, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx*scale-w/2, cy*scale-h/2)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
