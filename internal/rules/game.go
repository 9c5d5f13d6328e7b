package rules

import (
	"fmt"

	"github.com/notnil/chess"

	"github.com/hailam/chessboard/internal/board"
)

// Game implements Engine on top of notnil/chess.
type Game struct {
	game  *chess.Game
	start func(*chess.Game)
}

// NewGame returns a game in the standard starting position.
func NewGame() *Game {
	return &Game{game: chess.NewGame()}
}

// NewGameFromFEN returns a game starting from fen. Reset returns to that
// position rather than the standard one.
func NewGameFromFEN(fen string) (*Game, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse fen: %w", err)
	}
	return &Game{game: chess.NewGame(opt), start: opt}, nil
}

// Board implements Engine.
func (g *Game) Board() [8][8]board.Piece {
	var grid [8][8]board.Piece
	b := g.game.Position().Board()
	for sq := board.A1; sq <= board.H8; sq++ {
		grid[7-sq.Rank()][sq.File()] = fromChessPiece(b.Piece(toChessSquare(sq)))
	}
	return grid
}

// Turn implements Engine.
func (g *Game) Turn() board.Color {
	return fromChessColor(g.game.Position().Turn())
}

// Get implements Engine.
func (g *Game) Get(sq board.Square) board.Piece {
	if !sq.IsValid() {
		return board.NoPiece
	}
	return fromChessPiece(g.game.Position().Board().Piece(toChessSquare(sq)))
}

// Moves implements Engine.
func (g *Game) Moves(sq board.Square) []Move {
	if !sq.IsValid() || g.game.Outcome() != chess.NoOutcome {
		return nil
	}
	from := toChessSquare(sq)
	var out []Move
	for _, m := range g.game.ValidMoves() {
		if m.S1() == from {
			out = append(out, g.describe(m))
		}
	}
	return out
}

// Move implements Engine.
func (g *Game) Move(req MoveRequest) (*Move, error) {
	if !req.From.IsValid() || !req.To.IsValid() || req.From == req.To {
		return nil, fmt.Errorf("%w: %v-%v", ErrIllegalMove, req.From, req.To)
	}
	if g.game.Outcome() != chess.NoOutcome {
		return nil, fmt.Errorf("%w: game is over (%s)", ErrIllegalMove, g.game.Method())
	}

	promo := req.Promotion
	if promo == board.NoPieceType {
		promo = board.Queen
	}

	from, to := toChessSquare(req.From), toChessSquare(req.To)
	var match *chess.Move
	for _, m := range g.game.ValidMoves() {
		if m.S1() != from || m.S2() != to {
			continue
		}
		if m.Promo() == chess.NoPieceType || m.Promo() == toChessPieceType(promo) {
			match = m
			break
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %v-%v", ErrIllegalMove, req.From, req.To)
	}

	rec := g.describe(match)
	if err := g.game.Move(match); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	return &rec, nil
}

// Reset implements Engine.
func (g *Game) Reset() {
	if g.start != nil {
		g.game = chess.NewGame(g.start)
		return
	}
	g.game = chess.NewGame()
}

// IsCheck implements Engine. Check is read from the tag of the last move
// played, so a position loaded from FEN reports check only once mated.
func (g *Game) IsCheck() bool {
	if g.IsCheckmate() {
		return true
	}
	moves := g.game.Moves()
	if len(moves) == 0 {
		return false
	}
	return moves[len(moves)-1].HasTag(chess.Check)
}

// IsCheckmate implements Engine.
func (g *Game) IsCheckmate() bool {
	return g.game.Method() == chess.Checkmate
}

// IsDraw implements Engine. Draws that need a claim (threefold repetition,
// fifty-move rule) count as soon as they become claimable.
func (g *Game) IsDraw() bool {
	if g.game.Outcome() == chess.Draw {
		return true
	}
	for _, m := range g.game.EligibleDraws() {
		if m == chess.ThreefoldRepetition || m == chess.FiftyMoveRule {
			return true
		}
	}
	return false
}

// FEN returns the current position in FEN.
func (g *Game) FEN() string {
	return g.game.FEN()
}

// Outcome returns the PGN result token: "1-0", "0-1", "1/2-1/2" or "*".
func (g *Game) Outcome() string {
	return string(g.game.Outcome())
}

// describe builds the verbose record for m in the current position.
func (g *Game) describe(m *chess.Move) Move {
	b := g.game.Position().Board()
	piece := fromChessPiece(b.Piece(m.S1()))
	captured := fromChessPiece(b.Piece(m.S2()))
	if m.HasTag(chess.EnPassant) {
		captured = board.NewPiece(board.Pawn, piece.Color().Other())
	}
	return Move{
		From:      fromChessSquare(m.S1()),
		To:        fromChessSquare(m.S2()),
		Piece:     piece,
		Captured:  captured,
		Promotion: fromChessPieceType(m.Promo()),
		Check:     m.HasTag(chess.Check),
		Castle:    m.HasTag(chess.KingSideCastle) || m.HasTag(chess.QueenSideCastle),
	}
}

var _ Engine = (*Game)(nil)
