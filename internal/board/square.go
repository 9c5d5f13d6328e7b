// Package board defines the square and piece vocabulary shared by the
// controller, the rules adapter, and the renderers.
package board

import "fmt"

// Square is a board square, 0-63, little-endian rank-file: a1=0, h1=7, a8=56, h8=63.
type Square uint8

const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 0, 1, 2, 3, 4, 5, 6, 7
	A2, B2, C2, D2, E2, F2, G2, H2 Square = 8, 9, 10, 11, 12, 13, 14, 15
	A3, B3, C3, D3, E3, F3, G3, H3 Square = 16, 17, 18, 19, 20, 21, 22, 23
	A4, B4, C4, D4, E4, F4, G4, H4 Square = 24, 25, 26, 27, 28, 29, 30, 31
	A5, B5, C5, D5, E5, F5, G5, H5 Square = 32, 33, 34, 35, 36, 37, 38, 39
	A6, B6, C6, D6, E6, F6, G6, H6 Square = 40, 41, 42, 43, 44, 45, 46, 47
	A7, B7, C7, D7, E7, F7, G7, H7 Square = 48, 49, 50, 51, 52, 53, 54, 55
	A8, B8, C8, D8, E8, F8, G8, H8 Square = 56, 57, 58, 59, 60, 61, 62, 63

	// NoSquare is returned for coordinates that are off the board.
	NoSquare Square = 64
)

// Files lists the file letters in column order.
const Files = "abcdefgh"

// NewSquare builds a square from a 0-indexed file and rank.
// Out-of-range input yields NoSquare.
func NewSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(rank*8 + file)
}

// File returns the 0-indexed file (0=a).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the 0-indexed rank (0=rank 1).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// String returns the algebraic name ("e4"), or "-" for NoSquare.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{Files[sq.File()], byte('1' + sq.Rank())})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	sq := NewSquare(int(s[0])-'a', int(s[1])-'1')
	if !sq.IsValid() {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	return sq, nil
}

// AllSquares returns a1..h8 in index order.
func AllSquares() []Square {
	out := make([]Square, 0, 64)
	for sq := A1; sq <= H8; sq++ {
		out = append(out, sq)
	}
	return out
}
