// Package ui hosts the board controller in an Ebitengine window.
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"github.com/hailam/chessboard/internal/assets"
	"github.com/hailam/chessboard/internal/config"
	"github.com/hailam/chessboard/internal/controller"
	"github.com/hailam/chessboard/internal/rules"
	"github.com/hailam/chessboard/internal/storage"
	"github.com/hailam/chessboard/internal/theme"
)

// Options wires the host to its collaborators.
type Options struct {
	Config config.Config
	Themes *theme.Registry
	// Engine defaults to a fresh standard game.
	Engine rules.Engine
	// Storage is optional; without it preferences and stats are not kept.
	Storage *storage.Storage
	Logger  *zap.Logger
	// FirstLaunch shows a short hint on how to move pieces.
	FirstLaunch bool
}

// Game implements ebiten.Game.
type Game struct {
	cfg    config.Config
	logger *zap.Logger

	themes   *theme.Registry
	ctrl     *controller.Controller
	sprites  *SpriteManager
	renderer *Renderer
	input    *InputHandler
	panel    *Panel
	feedback *FeedbackManager

	storage *storage.Storage
	prefs   *storage.Preferences
	session storage.Session
	started time.Time

	style    string
	darkMode bool
	ready    bool

	boardLayer  *ebiten.Image
	dirty       bool
	scale       float64
	spriteScale float64
}

// NewGame creates the host and starts loading the configured piece style.
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	themes := opts.Themes
	if themes == nil {
		themes = theme.NewRegistry()
	}
	engine := opts.Engine
	if engine == nil {
		engine = rules.NewGame()
	}

	g := &Game{
		cfg:      opts.Config,
		logger:   logger.Named("ui"),
		themes:   themes,
		renderer: NewRenderer(),
		input:    NewInputHandler(),
		storage:  opts.Storage,
		started:  time.Now(),
		style:    opts.Config.PieceStyle,
		darkMode: opts.Config.DarkMode,
		dirty:    true,
		scale:    1,
	}
	g.sprites = NewSpriteManager(assets.NewLoader(logger), g.logger)
	g.feedback = NewFeedbackManager(opts.Config.Sound)
	g.prefs = &storage.Preferences{
		Theme:        opts.Config.Theme,
		PieceStyle:   opts.Config.PieceStyle,
		DarkMode:     opts.Config.DarkMode,
		SoundEnabled: opts.Config.Sound,
	}

	th, err := themes.Get(opts.Config.Theme)
	if err != nil {
		g.logger.Warn("unknown theme, using default", zap.String("theme", opts.Config.Theme))
		th = themes.Lookup(opts.Config.Theme)
	}

	g.ctrl = controller.New(engine, controller.Options{
		SquareSize: g.cfg.SquareSize(),
		Theme:      th,
		Logger:     logger,
		OnRedraw:   func() { g.dirty = true },
		OnMove:     g.onMove,
		OnReject:   g.onReject,
	})
	g.panel = NewPanel(g, g.boardSize())

	if g.storage == nil {
		g.feedback.OnWarning("Settings will not be saved")
	}
	if opts.FirstLaunch {
		g.feedback.OnInfo("Drag a piece to move it")
	}

	g.sprites.Request(g.style, g.cfg.SquareSize(), g.scale)
	g.spriteScale = g.scale
	return g
}

func (g *Game) boardSize() float64 {
	return float64(g.cfg.BoardSize)
}

// Update handles one frame of input and state.
func (g *Game) Update() error {
	now := time.Now()
	g.input.Update(g.scale)
	g.feedback.Update(now)
	g.ctrl.Update(now)
	g.pollSprites()

	if g.panel.HandleInput(g.input) {
		g.updateCursor()
		return nil
	}

	// Pointer events wait for the first sprite set.
	if !g.ready {
		g.updateCursor()
		return nil
	}

	if g.input.ResetPressed() && !g.ctrl.Dragging() {
		g.ResetAction()
	}
	g.handleBoardInput()
	g.updateCursor()
	return nil
}

// handleBoardInput forwards pointer gestures to the controller. Presses are
// clipped to the board; moves and releases are not, so a drop outside the
// board is rejected like any other illegal move.
func (g *Game) handleBoardInput() {
	x, y := g.input.Position()
	size := g.boardSize()

	if g.input.IsLeftJustPressed() && x < size && y < size {
		g.ctrl.PointerDown(x, y)
	}
	if !g.ctrl.Dragging() {
		return
	}
	if g.input.Moved() {
		g.ctrl.PointerMove(x, y)
	}
	if g.input.IsLeftJustReleased() {
		g.ctrl.PointerUp(x, y)
	}
}

// pollSprites picks up a finished sprite load.
func (g *Game) pollSprites() {
	res, ok := g.sprites.Poll()
	if !ok {
		if !g.sprites.Loading() && g.spriteScale != g.scale {
			g.sprites.Request(g.style, g.cfg.SquareSize(), g.scale)
			g.spriteScale = g.scale
		}
		return
	}
	if res.err != nil {
		g.logger.Warn("piece load failed", zap.String("style", res.style), zap.Error(res.err))
		g.feedback.OnError("Could not load pieces: " + res.style)
		if cur := g.sprites.Current(); cur != nil {
			g.style = cur.Style
		}
		return
	}

	g.logger.Info("pieces ready", zap.String("style", res.style), zap.Int("size", res.set.Size))
	g.renderer.Forget()
	g.style = res.style
	g.ctrl.SetSprites(res.set)
	g.ready = true
}

func (g *Game) updateCursor() {
	x, y := g.input.Position()
	switch {
	case g.panel.AnyButtonHovered():
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	case g.ctrl.Dragging():
		ebiten.SetCursorShape(ebiten.CursorShapeMove)
	case g.ready && x < g.boardSize() && y < g.boardSize():
		ebiten.SetCursorShape(ebiten.CursorShapeCrosshair)
	default:
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// Draw renders the board layer, toasts and panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.panel.palette().bg)

	side := int(g.boardSize() * g.scale)
	if g.boardLayer == nil || g.boardLayer.Bounds().Dx() != side {
		if g.boardLayer != nil {
			g.boardLayer.Deallocate()
		}
		g.boardLayer = ebiten.NewImage(side, side)
		g.dirty = true
	}
	if g.dirty {
		g.boardLayer.Clear()
		g.renderer.Begin(g.boardLayer, g.scale)
		g.ctrl.Redraw(g.renderer)
		g.dirty = false
	}
	screen.DrawImage(g.boardLayer, nil)

	if !g.ready {
		g.drawLoading(screen)
	}
	g.feedback.Draw(screen, g.boardSize(), g.scale)
	g.panel.Draw(screen, g.scale)
}

func (g *Game) drawLoading(screen *ebiten.Image) {
	face := boldFace(g.scale)
	if face == nil {
		return
	}
	msg := "Loading pieces..."
	w, h := MeasureText(msg, face)
	op := &text.DrawOptions{}
	op.GeoM.Translate(g.boardSize()*g.scale/2-w/2, g.boardSize()*g.scale/2-h/2)
	op.ColorScale.ScaleWithColor(color.RGBA{40, 40, 40, 255})
	text.Draw(screen, msg, face, op)
}

// Layout returns the logical screen size multiplied by the device scale
// factor for crisp rendering on HiDPI displays.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	if scale < 1.0 {
		scale = 1.0
	}
	if scale != g.scale {
		g.scale = scale
		g.dirty = true
	}
	w, h := g.WindowSize()
	return int(float64(w) * g.scale), int(float64(h) * g.scale)
}

// WindowSize returns the logical window size.
func (g *Game) WindowSize() (int, int) {
	return int(g.boardSize()) + PanelWidth, int(g.panel.Height())
}

func (g *Game) onMove(m rules.Move) {
	g.session.Moves++
	if m.IsCapture() {
		g.session.Captures++
	}
	g.feedback.OnMove(m)
	if g.GameOver() {
		g.logger.Info("game over", zap.String("status", g.ctrl.Status()))
		g.feedback.OnGameOver(g.ctrl.Status())
	}
}

func (g *Game) onReject(req rules.MoveRequest, err error) {
	g.logger.Debug("drop rejected", zap.Stringer("from", req.From), zap.Stringer("to", req.To), zap.Error(err))
	g.session.Illegal++
	g.feedback.OnInvalidMove()
}

// ResetAction restarts the game.
func (g *Game) ResetAction() {
	g.ctrl.Reset()
	g.session.Resets++
	g.feedback.OnReset()
}

// NextThemeAction cycles the board theme.
func (g *Game) NextThemeAction() {
	th := g.themes.Next(g.ctrl.Theme().Name)
	g.ctrl.SetTheme(th)
	g.prefs.Theme = th.Name
	g.savePreferences()
}

// NextStyleAction starts loading the next piece style. Ignored while a load
// is running.
func (g *Game) NextStyleAction() {
	next := assets.NextStyle(g.style)
	if !g.sprites.Request(next, g.cfg.SquareSize(), g.scale) {
		return
	}
	g.spriteScale = g.scale
	g.ready = false
	g.prefs.PieceStyle = next
	g.savePreferences()
}

// ToggleDarkModeAction switches the panel palette.
func (g *Game) ToggleDarkModeAction() {
	g.darkMode = !g.darkMode
	g.prefs.DarkMode = g.darkMode
	g.savePreferences()
}

// ToggleSoundAction switches audio cues on or off.
func (g *Game) ToggleSoundAction() {
	audio := g.feedback.Audio()
	audio.SetEnabled(!audio.IsEnabled())
	g.prefs.SoundEnabled = audio.IsEnabled()
	g.savePreferences()
	if audio.IsEnabled() {
		g.feedback.OnInfo("Sound on")
	}
}

// ThemeName returns the active theme name.
func (g *Game) ThemeName() string {
	return g.ctrl.Theme().Name
}

// PieceStyle returns the active piece style.
func (g *Game) PieceStyle() string {
	return g.style
}

// SpritesLoading reports whether a piece set is being loaded.
func (g *Game) SpritesLoading() bool {
	return g.sprites.Loading()
}

// DarkMode reports whether the panel uses the dark palette.
func (g *Game) DarkMode() bool {
	return g.darkMode
}

// SoundEnabled reports whether audio cues play.
func (g *Game) SoundEnabled() bool {
	return g.feedback.Audio().IsEnabled()
}

// Status returns the game status line.
func (g *Game) Status() string {
	return g.ctrl.Status()
}

// GameOver reports checkmate or a draw.
func (g *Game) GameOver() bool {
	e := g.ctrl.Engine()
	return e.IsCheckmate() || e.IsDraw()
}

// LastMoveText describes the last accepted move.
func (g *Game) LastMoveText() string {
	lm, ok := g.ctrl.LastMove()
	if !ok {
		return "none"
	}
	return lm.From.String() + " - " + lm.To.String()
}

// SessionCounts returns the accepted and rejected drops this session.
func (g *Game) SessionCounts() (moves, illegal int) {
	return g.session.Moves, g.session.Illegal
}

func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		g.logger.Warn("save preferences failed", zap.Error(err))
	}
}

// Close records the session and releases storage.
func (g *Game) Close() error {
	if g.storage == nil {
		return nil
	}
	g.session.Duration = time.Since(g.started)
	if err := g.storage.RecordSession(g.session); err != nil {
		g.logger.Warn("record session failed", zap.Error(err))
	}
	g.savePreferences()
	return g.storage.Close()
}
