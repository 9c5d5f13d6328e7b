package ui

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/hailam/chessboard/internal/assets"
)

// spriteResult is delivered once per load request.
type spriteResult struct {
	set   *assets.Set
	style string
	err   error
}

// SpriteManager loads piece sets off the UI goroutine. At most one load is in
// flight; the result is picked up by Poll from the Update loop.
type SpriteManager struct {
	loader  *assets.Loader
	logger  *zap.Logger
	results chan spriteResult
	pending bool

	current *assets.Set
}

// NewSpriteManager wraps loader.
func NewSpriteManager(loader *assets.Loader, logger *zap.Logger) *SpriteManager {
	return &SpriteManager{
		loader:  loader,
		logger:  logger,
		results: make(chan spriteResult, 1),
	}
}

// Request starts loading style for squares of squareSize logical pixels at
// the given HiDPI scale. It returns false when a load is already running.
func (sm *SpriteManager) Request(style string, squareSize, scale float64) bool {
	if sm.pending {
		return false
	}
	sm.pending = true
	size := int(math.Round(squareSize * math.Max(scale, 1)))
	sm.logger.Debug("loading pieces", zap.String("style", style), zap.Int("size", size))

	go func() {
		set, err := sm.loader.Load(context.Background(), style, size)
		sm.results <- spriteResult{set: set, style: style, err: err}
	}()
	return true
}

// Poll returns a finished load, if any.
func (sm *SpriteManager) Poll() (spriteResult, bool) {
	if !sm.pending {
		return spriteResult{}, false
	}
	select {
	case res := <-sm.results:
		sm.pending = false
		if res.err == nil {
			sm.current = res.set
		}
		return res, true
	default:
		return spriteResult{}, false
	}
}

// Loading reports whether a load is in flight.
func (sm *SpriteManager) Loading() bool {
	return sm.pending
}

// Current returns the last successfully loaded set, or nil.
func (sm *SpriteManager) Current() *assets.Set {
	return sm.current
}
