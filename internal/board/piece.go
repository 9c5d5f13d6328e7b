package board

import "fmt"

// Color is the color of a piece or of the side to move.
type Color uint8

const (
	White Color = iota
	Black
	NoColor Color = 2
)

// Other returns the opposite color.
func (c Color) Other() Color {
	return c ^ 1
}

// Code returns the single-letter code used in piece identifiers ("w" or "b").
func (c Color) Code() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return "-"
	}
}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "NoColor"
	}
}

// PieceType is the kind of a chess piece.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType PieceType = 6
)

// Char returns the lowercase letter for the piece type.
func (pt PieceType) Char() byte {
	if pt >= NoPieceType {
		return ' '
	}
	return "pnbrqk"[pt]
}

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// PieceTypes lists every real piece type.
var PieceTypes = [...]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// Piece combines a type and a color: pieceType + color*6.
type Piece uint8

// NoPiece marks an empty square.
const NoPiece Piece = 12

// NewPiece creates a Piece from a type and a color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt >= NoPieceType || c >= NoColor {
		return NoPiece
	}
	return Piece(pt) + Piece(c)*6
}

// Type returns the piece type.
func (p Piece) Type() PieceType {
	if p >= NoPiece {
		return NoPieceType
	}
	return PieceType(p % 6)
}

// Color returns the piece color.
func (p Piece) Color() Color {
	if p >= NoPiece {
		return NoColor
	}
	return Color(p / 6)
}

// Code returns the two-character piece identifier: color letter then
// lowercase type letter, e.g. "wp" or "bk". Empty for NoPiece.
func (p Piece) Code() string {
	if p >= NoPiece {
		return ""
	}
	return p.Color().Code() + string(p.Type().Char())
}

// String implements fmt.Stringer.
func (p Piece) String() string {
	if p >= NoPiece {
		return "-"
	}
	return p.Code()
}

// ParsePiece parses a two-character piece identifier.
func ParsePiece(code string) (Piece, error) {
	if len(code) != 2 {
		return NoPiece, fmt.Errorf("invalid piece code: %q", code)
	}
	var c Color
	switch code[0] {
	case 'w':
		c = White
	case 'b':
		c = Black
	default:
		return NoPiece, fmt.Errorf("invalid piece color in %q", code)
	}
	for _, pt := range PieceTypes {
		if pt.Char() == code[1] {
			return NewPiece(pt, c), nil
		}
	}
	return NoPiece, fmt.Errorf("invalid piece type in %q", code)
}

// AllPieces returns the twelve real pieces, white first.
func AllPieces() []Piece {
	out := make([]Piece, 0, 12)
	for _, c := range []Color{White, Black} {
		for _, pt := range PieceTypes {
			out = append(out, NewPiece(pt, c))
		}
	}
	return out
}
