// Package controller turns pointer gestures over a chessboard into move
// attempts against a rules engine, and draws the board from its state.
//
// A Controller is single-threaded: the host calls it from one loop.
package controller

import (
	"errors"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/rules"
	"github.com/hailam/chessboard/internal/theme"
)

const (
	// DefaultSquareSize is used when Options.SquareSize is unset.
	DefaultSquareSize = 80.0
	// DefaultInvalidCue is how long the invalid-move frame stays up.
	DefaultInvalidCue = 300 * time.Millisecond
	// DragAlpha is the opacity of the piece following the pointer.
	DragAlpha = 0.7
)

// Sprites supplies a bitmap per piece code ("wp", "bk", ...). A nil result
// means the piece is not drawn.
type Sprites interface {
	Sprite(code string) image.Image
}

// DragState describes a piece being carried by the pointer.
type DragState struct {
	Piece  board.Piece
	Origin board.Square
	X, Y   float64
}

// LastMove is the origin and destination of the last accepted move.
type LastMove struct {
	From, To board.Square
}

// Outcome is the result of a pointer release.
type Outcome int

const (
	// NoAttempt means the release happened without an active drag.
	NoAttempt Outcome = iota
	Accepted
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	default:
		return "none"
	}
}

// Options configures a Controller. Zero values select defaults.
type Options struct {
	SquareSize         float64
	Theme              theme.Theme
	Sprites            Sprites
	Logger             *zap.Logger
	InvalidCueDuration time.Duration
	// Now is the clock used to arm the invalid cue.
	Now func() time.Time

	// OnRedraw is called whenever the drawn state changes.
	OnRedraw func()
	// OnMove is called after the engine accepts a move.
	OnMove func(rules.Move)
	// OnReject is called after the engine rejects a move.
	OnReject func(rules.MoveRequest, error)
}

// Controller owns the drag state machine over one rules engine.
type Controller struct {
	engine  rules.Engine
	geom    Geometry
	theme   theme.Theme
	sprites Sprites
	logger  *zap.Logger
	now     func() time.Time
	cue     time.Duration

	onRedraw func()
	onMove   func(rules.Move)
	onReject func(rules.MoveRequest, error)

	drag         *DragState
	highlights   []board.Square
	lastMove     *LastMove
	invalidUntil time.Time
}

// New creates a controller over engine.
func New(engine rules.Engine, opts Options) *Controller {
	c := &Controller{
		engine:   engine,
		geom:     Geometry{SquareSize: opts.SquareSize},
		theme:    opts.Theme,
		sprites:  opts.Sprites,
		logger:   opts.Logger,
		now:      opts.Now,
		cue:      opts.InvalidCueDuration,
		onRedraw: opts.OnRedraw,
		onMove:   opts.OnMove,
		onReject: opts.OnReject,
	}
	if c.geom.SquareSize <= 0 {
		c.geom.SquareSize = DefaultSquareSize
	}
	if c.theme.Name == "" {
		c.theme = theme.Default()
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	c.logger = c.logger.Named("controller")
	if c.now == nil {
		c.now = time.Now
	}
	if c.cue <= 0 {
		c.cue = DefaultInvalidCue
	}
	return c
}

// Engine returns the rules engine the controller drives.
func (c *Controller) Engine() rules.Engine {
	return c.engine
}

// Geometry returns the current board geometry.
func (c *Controller) Geometry() Geometry {
	return c.geom
}

// PointerDown starts a drag when the pointer lands on a piece of the side to
// move. It reports whether a drag began. Presses during an active drag are
// ignored.
func (c *Controller) PointerDown(x, y float64) bool {
	if c.drag != nil {
		return false
	}
	sq := c.geom.PixelToSquare(x, y)
	if !sq.IsValid() {
		return false
	}
	p := c.engine.Get(sq)
	if p == board.NoPiece || p.Color() != c.engine.Turn() {
		return false
	}

	c.drag = &DragState{Piece: p, Origin: sq, X: x, Y: y}
	c.highlights = destinations(c.engine.Moves(sq))
	c.logger.Debug("drag started",
		zap.Stringer("piece", p),
		zap.Stringer("from", sq),
		zap.Int("targets", len(c.highlights)))
	c.redraw()
	return true
}

// PointerMove updates the drag position. Only X and Y change.
func (c *Controller) PointerMove(x, y float64) {
	if c.drag == nil {
		return
	}
	c.drag.X, c.drag.Y = x, y
	c.redraw()
}

// PointerUp ends the drag by submitting a move from the drag origin to the
// square under the pointer. The drag and highlights are cleared whatever the
// engine decides.
func (c *Controller) PointerUp(x, y float64) Outcome {
	if c.drag == nil {
		return NoAttempt
	}
	drag := *c.drag
	c.drag = nil
	c.highlights = nil
	defer c.redraw()

	req := rules.MoveRequest{
		From:      drag.Origin,
		To:        c.geom.PixelToSquare(x, y),
		Promotion: board.Queen,
	}
	mv, err := c.engine.Move(req)
	if err != nil {
		if !errors.Is(err, rules.ErrIllegalMove) {
			c.logger.Warn("engine error on move", zap.Error(err))
		}
		c.invalidUntil = c.now().Add(c.cue)
		c.logger.Debug("move rejected",
			zap.Stringer("from", req.From),
			zap.Stringer("to", req.To),
			zap.Error(err))
		if c.onReject != nil {
			c.onReject(req, err)
		}
		return Rejected
	}

	c.lastMove = &LastMove{From: mv.From, To: mv.To}
	c.logger.Debug("move accepted",
		zap.Stringer("piece", mv.Piece),
		zap.Stringer("from", mv.From),
		zap.Stringer("to", mv.To),
		zap.Bool("capture", mv.IsCapture()))
	if c.onMove != nil {
		c.onMove(*mv)
	}
	return Accepted
}

// Reset restarts the game and clears all transient board state. Theme and
// sprites are kept.
func (c *Controller) Reset() {
	c.engine.Reset()
	c.drag = nil
	c.highlights = nil
	c.lastMove = nil
	c.invalidUntil = time.Time{}
	c.logger.Debug("board reset")
	c.redraw()
}

// Update expires the invalid-move cue once its deadline has passed. Hosts
// call it once per frame.
func (c *Controller) Update(now time.Time) {
	if c.invalidUntil.IsZero() || now.Before(c.invalidUntil) {
		return
	}
	c.invalidUntil = time.Time{}
	c.redraw()
}

// SetTheme replaces the color scheme.
func (c *Controller) SetTheme(t theme.Theme) {
	c.theme = t
	c.redraw()
}

// Theme returns the current color scheme.
func (c *Controller) Theme() theme.Theme {
	return c.theme
}

// SetSprites replaces the piece bitmaps.
func (c *Controller) SetSprites(s Sprites) {
	c.sprites = s
	c.redraw()
}

// SetSquareSize changes the square size in pixels. Non-positive sizes are
// ignored.
func (c *Controller) SetSquareSize(size float64) {
	if size <= 0 || size == c.geom.SquareSize {
		return
	}
	c.geom.SquareSize = size
	c.redraw()
}

// Dragging reports whether a drag is active.
func (c *Controller) Dragging() bool {
	return c.drag != nil
}

// Drag returns a copy of the active drag.
func (c *Controller) Drag() (DragState, bool) {
	if c.drag == nil {
		return DragState{}, false
	}
	return *c.drag, true
}

// Highlights returns the legal destinations of the dragged piece.
func (c *Controller) Highlights() []board.Square {
	return append([]board.Square(nil), c.highlights...)
}

// LastMove returns the last accepted move, if any.
func (c *Controller) LastMove() (LastMove, bool) {
	if c.lastMove == nil {
		return LastMove{}, false
	}
	return *c.lastMove, true
}

// InvalidActive reports whether the invalid-move cue is showing.
func (c *Controller) InvalidActive() bool {
	return !c.invalidUntil.IsZero()
}

func (c *Controller) redraw() {
	if c.onRedraw != nil {
		c.onRedraw()
	}
}

// destinations returns the distinct target squares of moves in engine order.
// The four promotion choices share one square.
func destinations(moves []rules.Move) []board.Square {
	var seen [board.NoSquare]bool
	out := make([]board.Square, 0, len(moves))
	for _, m := range moves {
		if !m.To.IsValid() || seen[m.To] {
			continue
		}
		seen[m.To] = true
		out = append(out, m.To)
	}
	return out
}
