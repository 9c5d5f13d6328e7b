// Package rules defines the rules-engine contract consumed by the board
// controller and adapts github.com/notnil/chess to it.
package rules

import (
	"errors"

	"github.com/hailam/chessboard/internal/board"
)

// ErrIllegalMove is returned by Engine.Move when the request does not match a
// legal move in the current position. It is an ordinary outcome, not a fault.
var ErrIllegalMove = errors.New("illegal move")

// MoveRequest asks the engine to play From->To. Promotion is only consulted
// when the matching move is a promotion; NoPieceType means queen.
type MoveRequest struct {
	From      board.Square
	To        board.Square
	Promotion board.PieceType
}

// Move is a verbose move record.
type Move struct {
	From      board.Square
	To        board.Square
	Piece     board.Piece
	Captured  board.Piece
	Promotion board.PieceType
	Check     bool
	Castle    bool
}

// IsCapture reports whether the move removed an enemy piece.
func (m Move) IsCapture() bool {
	return m.Captured != board.NoPiece
}

// Engine is the authoritative game state: legality, turn order and terminal
// state detection all live behind it.
type Engine interface {
	// Board returns the position as [row][col], row 0 = rank 8, col 0 = file a.
	Board() [8][8]board.Piece
	Turn() board.Color
	Get(sq board.Square) board.Piece
	// Moves returns the legal moves of the piece on sq.
	Moves(sq board.Square) []Move
	// Move plays the request or returns an error wrapping ErrIllegalMove.
	Move(req MoveRequest) (*Move, error)
	Reset()
	IsCheck() bool
	IsCheckmate() bool
	IsDraw() bool
}
