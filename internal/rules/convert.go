package rules

import (
	"github.com/notnil/chess"

	"github.com/hailam/chessboard/internal/board"
)

// Both libraries index squares a1=0 .. h8=63.
func toChessSquare(sq board.Square) chess.Square {
	return chess.Square(sq)
}

func fromChessSquare(sq chess.Square) board.Square {
	if sq < chess.A1 || sq > chess.H8 {
		return board.NoSquare
	}
	return board.Square(sq)
}

func fromChessColor(c chess.Color) board.Color {
	switch c {
	case chess.White:
		return board.White
	case chess.Black:
		return board.Black
	default:
		return board.NoColor
	}
}

func fromChessPieceType(pt chess.PieceType) board.PieceType {
	switch pt {
	case chess.Pawn:
		return board.Pawn
	case chess.Knight:
		return board.Knight
	case chess.Bishop:
		return board.Bishop
	case chess.Rook:
		return board.Rook
	case chess.Queen:
		return board.Queen
	case chess.King:
		return board.King
	default:
		return board.NoPieceType
	}
}

func toChessPieceType(pt board.PieceType) chess.PieceType {
	switch pt {
	case board.Pawn:
		return chess.Pawn
	case board.Knight:
		return chess.Knight
	case board.Bishop:
		return chess.Bishop
	case board.Rook:
		return chess.Rook
	case board.Queen:
		return chess.Queen
	case board.King:
		return chess.King
	default:
		return chess.NoPieceType
	}
}

func fromChessPiece(p chess.Piece) board.Piece {
	if p == chess.NoPiece {
		return board.NoPiece
	}
	return board.NewPiece(fromChessPieceType(p.Type()), fromChessColor(p.Color()))
}
