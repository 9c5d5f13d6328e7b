package controller

import "github.com/hailam/chessboard/internal/board"

// Status returns the one-line game status shown next to the board.
func (c *Controller) Status() string {
	turn := c.engine.Turn()
	switch {
	case c.engine.IsCheckmate():
		return "Checkmate! " + turn.Other().String() + " wins."
	case c.engine.IsDraw():
		return "Draw!"
	}
	s := turn.String() + "'s turn to move."
	if c.engine.IsCheck() {
		s += " (in Check)"
	}
	return s
}

// SideToMove returns the color whose turn it is.
func (c *Controller) SideToMove() board.Color {
	return c.engine.Turn()
}
