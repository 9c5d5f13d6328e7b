package assets

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"image"
	"sync"
	"text/template"
	"time"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hailam/chessboard/internal/board"
)

//go:embed pieces/*.svg
var pieceFS embed.FS

var pieceTemplates = template.Must(template.ParseFS(pieceFS, "pieces/*.svg"))

// Set is a complete set of rendered pieces for one style and size.
type Set struct {
	Style   string
	Size    int
	sprites [board.NoPiece]*image.RGBA
}

// Piece returns the bitmap for p, or nil.
func (s *Set) Piece(p board.Piece) image.Image {
	if s == nil || p >= board.NoPiece || s.sprites[p] == nil {
		return nil
	}
	return s.sprites[p]
}

// Sprite returns the bitmap for a piece code such as "wk", or nil for an
// unknown code.
func (s *Set) Sprite(code string) image.Image {
	p, err := board.ParsePiece(code)
	if err != nil {
		return nil
	}
	return s.Piece(p)
}

type cacheKey struct {
	style string
	size  int
}

// Loader renders piece sets and caches them per (style, size). It is safe
// for concurrent use.
type Loader struct {
	logger *zap.Logger

	mu    sync.Mutex
	cache map[cacheKey]*Set
}

// NewLoader creates a loader. A nil logger disables logging.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		logger: logger.Named("assets"),
		cache:  make(map[cacheKey]*Set),
	}
}

// Load returns the piece set for style rendered at size pixels, rendering
// all twelve pieces concurrently on a cache miss.
func (l *Loader) Load(ctx context.Context, style string, size int) (*Set, error) {
	st, err := LookupStyle(style)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, fmt.Errorf("invalid sprite size %d", size)
	}

	key := cacheKey{style: style, size: size}
	l.mu.Lock()
	if set, ok := l.cache[key]; ok {
		l.mu.Unlock()
		return set, nil
	}
	l.mu.Unlock()

	start := time.Now()
	set := &Set{Style: style, Size: size}
	g, ctx := errgroup.WithContext(ctx)
	for _, p := range board.AllPieces() {
		p := p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := renderPiece(p, st.Palette(p.Color()), size)
			if err != nil {
				return fmt.Errorf("render %s (%s): %w", p.Code(), style, err)
			}
			set.sprites[p] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if cached, ok := l.cache[key]; ok {
		return cached, nil
	}
	l.cache[key] = set
	l.logger.Debug("piece set rendered",
		zap.String("style", style),
		zap.Int("size", size),
		zap.Duration("took", time.Since(start)))
	return set, nil
}

// Cached reports whether a set for (style, size) is already rendered.
func (l *Loader) Cached(style string, size int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.cache[cacheKey{style: style, size: size}]
	return ok
}

// renderPiece fills the piece template with pal and rasterises it into a
// size x size RGBA image.
func renderPiece(p board.Piece, pal Palette, size int) (*image.RGBA, error) {
	var svg bytes.Buffer
	name := string(p.Type().Char()) + ".svg"
	if err := pieceTemplates.ExecuteTemplate(&svg, name, pal); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}

	icon, err := oksvg.ReadIconStream(&svg)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}
