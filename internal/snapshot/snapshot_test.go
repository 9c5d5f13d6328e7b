package snapshot

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/chessboard/internal/assets"
	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/rules"
	"github.com/hailam/chessboard/internal/theme"
)

func render(t *testing.T, opts Options) image.Image {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(context.Background(), &buf, opts))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	return img
}

func nrgbaAt(img image.Image, pt image.Point) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(pt.X, pt.Y)).(color.NRGBA)
}

// corner returns a pixel just inside the top-left corner of sq on a board
// with 20px squares, away from any piece ink.
func corner(sq board.Square) image.Point {
	return image.Pt(sq.File()*20+1, (7-sq.Rank())*20+1)
}

func TestRenderStartPosition(t *testing.T) {
	th := theme.Default()
	img := render(t, Options{Size: 160, Theme: th})
	assert.Equal(t, image.Rect(0, 0, 160, 160), img.Bounds())

	assert.Equal(t, th.Light, nrgbaAt(img, corner(board.A8)))
	assert.Equal(t, th.Dark, nrgbaAt(img, corner(board.A1)))
	assert.Equal(t, th.Light, nrgbaAt(img, corner(board.E4)))
}

func TestRenderMovesTintLastMove(t *testing.T) {
	th := theme.Default()
	loader := assets.NewLoader(nil)
	img := render(t, Options{Size: 160, Theme: th, Moves: []string{"e2e4"}, Loader: loader})

	assert.NotEqual(t, th.Light, nrgbaAt(img, corner(board.E4)), "destination tinted")
	assert.NotEqual(t, th.Light, nrgbaAt(img, corner(board.E2)), "origin tinted")
	assert.Equal(t, th.Dark, nrgbaAt(img, corner(board.D4)))
	assert.True(t, loader.Cached(assets.DefaultStyle, 20), "sprites come from the shared loader")
}

func TestRenderSelectionShowsTargets(t *testing.T) {
	th := theme.Default()
	img := render(t, Options{Size: 160, Theme: th, Select: "g1", Style: "flat"})

	assert.NotEqual(t, th.Light, nrgbaAt(img, corner(board.F3)))
	assert.NotEqual(t, th.Light, nrgbaAt(img, corner(board.H3)))
	assert.Equal(t, th.Dark, nrgbaAt(img, corner(board.G3)))
}

func TestRenderFromFEN(t *testing.T) {
	img := render(t, Options{
		Size:  240,
		FEN:   "8/P7/8/8/8/8/8/k6K w - - 0 1",
		Moves: []string{"a7a8q"},
	})
	assert.Equal(t, image.Rect(0, 0, 240, 240), img.Bounds())
}

func TestRenderErrors(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer

	err := Render(ctx, &buf, Options{Size: 160, Moves: []string{"e2e5"}})
	assert.ErrorIs(t, err, rules.ErrIllegalMove)

	err = Render(ctx, &buf, Options{Size: 160, Moves: []string{"e7e5"}})
	assert.ErrorIs(t, err, rules.ErrIllegalMove, "black cannot move first")

	err = Render(ctx, &buf, Options{Size: 160, Select: "e7"})
	assert.ErrorIs(t, err, ErrNothingToSelect)

	err = Render(ctx, &buf, Options{Size: 160, Style: "neon"})
	assert.ErrorIs(t, err, assets.ErrUnknownStyle)

	assert.Error(t, Render(ctx, &buf, Options{Size: 160, FEN: "not a fen"}))
	assert.Error(t, Render(ctx, &buf, Options{Size: 4}))
	assert.Error(t, Render(ctx, &buf, Options{Size: 160, Select: "z9"}))
	assert.Zero(t, buf.Len(), "nothing written on failure")
}

func TestParseMove(t *testing.T) {
	from, to, err := ParseMove("g1f3")
	require.NoError(t, err)
	assert.Equal(t, board.G1, from)
	assert.Equal(t, board.F3, to)

	_, to, err = ParseMove("e7e8q")
	require.NoError(t, err)
	assert.Equal(t, board.E8, to)

	for _, bad := range []string{"", "e2", "e2e9", "i2e4", "e7e8n", "e2e4xx"} {
		_, _, err := ParseMove(bad)
		assert.Error(t, err, bad)
	}
}
