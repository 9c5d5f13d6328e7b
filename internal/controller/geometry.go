package controller

import (
	"math"

	"github.com/hailam/chessboard/internal/board"
)

// Geometry maps between board pixels and squares. Row 0 is rank 8, column 0
// is file a; the board occupies [0, 8*SquareSize) on both axes.
type Geometry struct {
	SquareSize float64
}

// BoardSize returns the side length of the board in pixels.
func (g Geometry) BoardSize() float64 {
	return 8 * g.SquareSize
}

// PixelToSquare returns the square under (x, y), or board.NoSquare when the
// point is off the board.
func (g Geometry) PixelToSquare(x, y float64) board.Square {
	size := g.BoardSize()
	if g.SquareSize <= 0 || x < 0 || y < 0 || x >= size || y >= size {
		return board.NoSquare
	}
	col := min(int(math.Floor(x/g.SquareSize)), 7)
	row := min(int(math.Floor(y/g.SquareSize)), 7)
	return board.NewSquare(col, 7-row)
}

// SquareToPixelOrigin returns the grid cell of sq: col is the file index and
// row counts down from rank 8.
func (g Geometry) SquareToPixelOrigin(sq board.Square) (col, row int) {
	return sq.File(), 7 - sq.Rank()
}

// SquareRect returns the pixel rectangle covered by sq.
func (g Geometry) SquareRect(sq board.Square) (x, y, w, h float64) {
	col, row := g.SquareToPixelOrigin(sq)
	return float64(col) * g.SquareSize, float64(row) * g.SquareSize, g.SquareSize, g.SquareSize
}

// SquareCenter returns the pixel center of sq.
func (g Geometry) SquareCenter(sq board.Square) (x, y float64) {
	col, row := g.SquareToPixelOrigin(sq)
	return (float64(col) + 0.5) * g.SquareSize, (float64(row) + 0.5) * g.SquareSize
}
