package board

import "testing"

func TestSquareString(t *testing.T) {
	tests := []struct {
		sq   Square
		want string
	}{
		{A1, "a1"},
		{H1, "h1"},
		{E2, "e2"},
		{E4, "e4"},
		{A8, "a8"},
		{H8, "h8"},
		{NoSquare, "-"},
	}
	for _, tc := range tests {
		if got := tc.sq.String(); got != tc.want {
			t.Errorf("Square(%d).String() = %q, want %q", tc.sq, got, tc.want)
		}
	}
}

func TestParseSquareRoundTrip(t *testing.T) {
	for _, sq := range AllSquares() {
		got, err := ParseSquare(sq.String())
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", sq.String(), err)
		}
		if got != sq {
			t.Errorf("ParseSquare(%q) = %v, want %v", sq.String(), got, sq)
		}
	}
}

func TestParseSquareInvalid(t *testing.T) {
	for _, s := range []string{"", "e", "e9", "i1", "e0", "e44", "E4"} {
		if _, err := ParseSquare(s); err == nil {
			t.Errorf("ParseSquare(%q) expected error", s)
		}
	}
}

func TestNewSquareOutOfRange(t *testing.T) {
	cases := [][2]int{{-1, 0}, {8, 0}, {0, -1}, {0, 8}}
	for _, c := range cases {
		if sq := NewSquare(c[0], c[1]); sq != NoSquare {
			t.Errorf("NewSquare(%d, %d) = %v, want NoSquare", c[0], c[1], sq)
		}
	}
}

func TestPieceCode(t *testing.T) {
	tests := []struct {
		p    Piece
		want string
	}{
		{NewPiece(Pawn, White), "wp"},
		{NewPiece(Knight, White), "wn"},
		{NewPiece(King, Black), "bk"},
		{NewPiece(Queen, Black), "bq"},
		{NoPiece, ""},
	}
	for _, tc := range tests {
		if got := tc.p.Code(); got != tc.want {
			t.Errorf("Code() = %q, want %q", got, tc.want)
		}
	}
}

func TestParsePiece(t *testing.T) {
	for _, p := range AllPieces() {
		got, err := ParsePiece(p.Code())
		if err != nil {
			t.Fatalf("ParsePiece(%q): %v", p.Code(), err)
		}
		if got != p {
			t.Errorf("ParsePiece(%q) = %v, want %v", p.Code(), got, p)
		}
	}
	for _, bad := range []string{"", "w", "xp", "wx", "wpp"} {
		if _, err := ParsePiece(bad); err == nil {
			t.Errorf("ParsePiece(%q) expected error", bad)
		}
	}
}

func TestPieceAccessors(t *testing.T) {
	p := NewPiece(Rook, Black)
	if p.Type() != Rook || p.Color() != Black {
		t.Errorf("got %v/%v, want Rook/Black", p.Type(), p.Color())
	}
	if NoPiece.Color() != NoColor || NoPiece.Type() != NoPieceType {
		t.Error("NoPiece should have no color and no type")
	}
	if White.Other() != Black || Black.Other() != White {
		t.Error("Other() should swap colors")
	}
	if len(AllPieces()) != 12 {
		t.Errorf("AllPieces() len = %d, want 12", len(AllPieces()))
	}
}
