package assets

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hailam/chessboard/internal/board"
)

func opaquePixels(t *testing.T, set *Set, code string) int {
	t.Helper()
	img := set.Sprite(code)
	require.NotNil(t, img, code)
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0 {
				n++
			}
		}
	}
	return n
}

func TestLoadRendersAllPieces(t *testing.T) {
	for _, style := range Styles() {
		t.Run(style, func(t *testing.T) {
			set, err := NewLoader(nil).Load(context.Background(), style, 48)
			require.NoError(t, err)
			assert.Equal(t, style, set.Style)

			for _, p := range board.AllPieces() {
				img := set.Piece(p)
				require.NotNil(t, img, p.Code())
				assert.Equal(t, 48, img.Bounds().Dx())
				assert.Equal(t, 48, img.Bounds().Dy())
				assert.Greater(t, opaquePixels(t, set, p.Code()), 100, "%s has visible ink", p.Code())
			}
		})
	}
}

func TestSpriteUnknownCode(t *testing.T) {
	set, err := NewLoader(nil).Load(context.Background(), DefaultStyle, 16)
	require.NoError(t, err)
	assert.Nil(t, set.Sprite("xx"))
	assert.Nil(t, set.Sprite(""))
	assert.Nil(t, set.Piece(board.NoPiece))

	var empty *Set
	assert.Nil(t, empty.Sprite("wk"))
}

func TestLoadUnknownStyle(t *testing.T) {
	_, err := NewLoader(nil).Load(context.Background(), "neon", 32)
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestLoadInvalidSize(t *testing.T) {
	_, err := NewLoader(nil).Load(context.Background(), DefaultStyle, 0)
	assert.Error(t, err)
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := NewLoader(nil)
	_, err := l.Load(ctx, DefaultStyle, 32)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, l.Cached(DefaultStyle, 32), "failed loads are not cached")
}

func TestLoadCaches(t *testing.T) {
	l := NewLoader(nil)
	ctx := context.Background()

	a, err := l.Load(ctx, "flat", 24)
	require.NoError(t, err)
	assert.True(t, l.Cached("flat", 24))
	assert.False(t, l.Cached("flat", 32))

	b, err := l.Load(ctx, "flat", 24)
	require.NoError(t, err)
	assert.Same(t, a, b)

	c, err := l.Load(ctx, "flat", 32)
	require.NoError(t, err)
	assert.NotSame(t, a, c)
}

func TestLoadConcurrent(t *testing.T) {
	l := NewLoader(nil)
	var wg sync.WaitGroup
	sets := make([]*Set, 8)
	for i := range sets {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			set, err := l.Load(context.Background(), "outline", 20)
			if err == nil {
				sets[i] = set
			}
		}()
	}
	wg.Wait()
	for _, s := range sets {
		assert.Same(t, sets[0], s, "every caller sees the cached set")
	}
}

func brightness(t *testing.T, set *Set, code string) uint64 {
	t.Helper()
	img := set.Sprite(code)
	require.NotNil(t, img, code)
	var sum uint64
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			sum += uint64(r + g + bl)
		}
	}
	return sum
}

func TestWhiteBrighterThanBlack(t *testing.T) {
	set, err := NewLoader(nil).Load(context.Background(), DefaultStyle, 32)
	require.NoError(t, err)
	for _, pt := range board.PieceTypes {
		w := board.NewPiece(pt, board.White).Code()
		b := board.NewPiece(pt, board.Black).Code()
		assert.Greater(t, brightness(t, set, w), brightness(t, set, b), pt.String())
	}
}

func TestStyleCycle(t *testing.T) {
	assert.Equal(t, []string{"classic", "outline", "flat"}, Styles())
	assert.Equal(t, "outline", NextStyle("classic"))
	assert.Equal(t, "classic", NextStyle("flat"))
	assert.Equal(t, "classic", NextStyle("bogus"))

	st, err := LookupStyle("outline")
	require.NoError(t, err)
	assert.Equal(t, st.Black, st.Palette(board.Black))
	assert.Equal(t, st.White, st.Palette(board.White))
}
