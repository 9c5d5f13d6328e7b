// Package snapshot renders a board position to PNG without opening a window.
// Moves and the selection are replayed as pointer gestures through the same
// controller the interactive board uses.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/hailam/chessboard/internal/assets"
	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/controller"
	"github.com/hailam/chessboard/internal/rules"
	"github.com/hailam/chessboard/internal/surface"
	"github.com/hailam/chessboard/internal/theme"
)

// ErrNothingToSelect is returned when the selected square does not hold a
// piece of the side to move.
var ErrNothingToSelect = errors.New("no movable piece on selected square")

// Options describes one snapshot.
type Options struct {
	// FEN is the starting position; empty means the standard start.
	FEN string
	// Moves are played in order, in coordinate form ("e2e4", "e7e8q").
	Moves []string
	// Select picks up the piece on this square so its targets are shown.
	Select string
	Theme  theme.Theme
	Style  string
	// Size is the board side in pixels.
	Size   int
	Loader *assets.Loader
	Logger *zap.Logger
}

// Render draws the position described by opts and writes it as PNG to w.
func Render(ctx context.Context, w io.Writer, opts Options) error {
	if opts.Size < 8 {
		return fmt.Errorf("board size %d too small", opts.Size)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Loader == nil {
		opts.Loader = assets.NewLoader(opts.Logger)
	}
	if opts.Style == "" {
		opts.Style = assets.DefaultStyle
	}

	game := rules.NewGame()
	if opts.FEN != "" {
		var err error
		if game, err = rules.NewGameFromFEN(opts.FEN); err != nil {
			return err
		}
	}

	square := opts.Size / 8
	sprites, err := opts.Loader.Load(ctx, opts.Style, square)
	if err != nil {
		return fmt.Errorf("load pieces: %w", err)
	}

	var rejectErr error
	ctrl := controller.New(game, controller.Options{
		SquareSize: float64(square),
		Theme:      opts.Theme,
		Sprites:    sprites,
		Logger:     opts.Logger,
		OnReject:   func(_ rules.MoveRequest, err error) { rejectErr = err },
	})
	geom := ctrl.Geometry()

	for i, text := range opts.Moves {
		from, to, err := ParseMove(text)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		fx, fy := geom.SquareCenter(from)
		tx, ty := geom.SquareCenter(to)
		if !ctrl.PointerDown(fx, fy) {
			return fmt.Errorf("move %d (%s): %w", i+1, text, rules.ErrIllegalMove)
		}
		ctrl.PointerMove(tx, ty)
		if ctrl.PointerUp(tx, ty) != controller.Accepted {
			return fmt.Errorf("move %d (%s): %w", i+1, text, rejectErr)
		}
	}

	if opts.Select != "" {
		sq, err := board.ParseSquare(opts.Select)
		if err != nil {
			return err
		}
		x, y := geom.SquareCenter(sq)
		if !ctrl.PointerDown(x, y) {
			return fmt.Errorf("%s: %w", sq, ErrNothingToSelect)
		}
	}

	canvas := surface.NewCanvas(square*8, square*8)
	ctrl.Redraw(canvas)
	opts.Logger.Debug("snapshot rendered",
		zap.Int("moves", len(opts.Moves)),
		zap.String("status", ctrl.Status()))
	return canvas.WritePNG(w)
}

// ParseMove parses a coordinate move such as "g1f3". Promotion suffixes are
// accepted only for the queen, the piece a drag always promotes to.
func ParseMove(s string) (from, to board.Square, err error) {
	if len(s) != 4 && len(s) != 5 {
		return board.NoSquare, board.NoSquare, fmt.Errorf("invalid move %q", s)
	}
	if from, err = board.ParseSquare(s[0:2]); err != nil {
		return board.NoSquare, board.NoSquare, err
	}
	if to, err = board.ParseSquare(s[2:4]); err != nil {
		return board.NoSquare, board.NoSquare, err
	}
	if len(s) == 5 && s[4] != 'q' {
		return board.NoSquare, board.NoSquare, fmt.Errorf("move %q: only queen promotion can be dragged", s)
	}
	return from, to, nil
}
