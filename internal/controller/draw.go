package controller

import (
	"math"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/surface"
)

// Redraw paints the whole board onto s. Output depends only on the engine
// position and the controller state, so identical state draws identically.
//
// Layers, bottom to top: base squares, highlight tint, last-move tint,
// resting pieces, the dragged piece, the invalid-move frame.
func (c *Controller) Redraw(s surface.Surface) {
	size := c.geom.SquareSize

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			s.FillRect(float64(col)*size, float64(row)*size, size, size, c.theme.SquareColor(row, col))
		}
	}

	for _, sq := range c.highlights {
		x, y, w, h := c.geom.SquareRect(sq)
		s.FillRect(x, y, w, h, c.theme.Highlight)
	}

	if c.lastMove != nil {
		for _, sq := range []board.Square{c.lastMove.From, c.lastMove.To} {
			x, y, w, h := c.geom.SquareRect(sq)
			s.FillRect(x, y, w, h, c.theme.LastMove)
		}
	}

	if c.sprites != nil {
		grid := c.engine.Board()
		for row := 0; row < 8; row++ {
			for col := 0; col < 8; col++ {
				p := grid[row][col]
				if p == board.NoPiece {
					continue
				}
				if c.drag != nil && board.NewSquare(col, 7-row) == c.drag.Origin {
					continue
				}
				img := c.sprites.Sprite(p.Code())
				if img == nil {
					continue
				}
				s.DrawImage(img, float64(col)*size, float64(row)*size, size, size, 1)
			}
		}

		if c.drag != nil {
			if img := c.sprites.Sprite(c.drag.Piece.Code()); img != nil {
				s.DrawImage(img, c.drag.X-size/2, c.drag.Y-size/2, size, size, DragAlpha)
			}
		}
	}

	if c.InvalidActive() {
		c.drawFrame(s)
	}
}

func (c *Controller) drawFrame(s surface.Surface) {
	full := c.geom.BoardSize()
	b := math.Max(3, math.Round(c.geom.SquareSize*0.06))
	col := c.theme.Invalid
	s.FillRect(0, 0, full, b, col)
	s.FillRect(0, full-b, full, b, col)
	s.FillRect(0, b, b, full-2*b, col)
	s.FillRect(full-b, b, b, full-2*b, col)
}
