// Package theme holds the board color lookup tables.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"sync"
)

// DefaultName is the theme used when none (or an unknown one) is selected.
const DefaultName = "default"

// ErrUnknownTheme is returned by Registry.Get for names it does not hold.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme defines the board color scheme. Tints are drawn over the base squares,
// so they normally carry alpha.
type Theme struct {
	Name      string
	Light     color.NRGBA
	Dark      color.NRGBA
	Highlight color.NRGBA
	LastMove  color.NRGBA
	Invalid   color.NRGBA
}

// SquareColor returns the base color for a board cell: light when
// (row+col) is even, dark otherwise.
func (t Theme) SquareColor(row, col int) color.NRGBA {
	if (row+col)%2 == 0 {
		return t.Light
	}
	return t.Dark
}

var invalidTint = color.NRGBA{220, 38, 38, 200}

func builtins() []Theme {
	return []Theme{
		{
			Name:      DefaultName,
			Light:     color.NRGBA{0xf0, 0xd9, 0xb5, 0xff},
			Dark:      color.NRGBA{0xb5, 0x88, 0x63, 0xff},
			Highlight: color.NRGBA{255, 255, 0, alpha(0.4)},
			LastMove:  color.NRGBA{50, 200, 255, alpha(0.4)},
			Invalid:   invalidTint,
		},
		{
			Name:      "blue",
			Light:     color.NRGBA{0xdb, 0xea, 0xfe, 0xff},
			Dark:      color.NRGBA{0x25, 0x63, 0xeb, 0xff},
			Highlight: color.NRGBA{16, 185, 129, alpha(0.4)},
			LastMove:  color.NRGBA{59, 130, 246, alpha(0.4)},
			Invalid:   invalidTint,
		},
		{
			Name:      "green",
			Light:     color.NRGBA{0xcf, 0xe8, 0xcf, 0xff},
			Dark:      color.NRGBA{0x2c, 0x6b, 0x2c, 0xff},
			Highlight: color.NRGBA{74, 222, 128, alpha(0.4)},
			LastMove:  color.NRGBA{34, 197, 94, alpha(0.4)},
			Invalid:   invalidTint,
		},
		{
			Name:      "light",
			Light:     color.NRGBA{0xf9, 0xfa, 0xfb, 0xff},
			Dark:      color.NRGBA{0xe5, 0xe7, 0xeb, 0xff},
			Highlight: color.NRGBA{253, 186, 116, alpha(0.5)},
			LastMove:  color.NRGBA{251, 191, 36, alpha(0.4)},
			Invalid:   invalidTint,
		},
	}
}

func alpha(a float64) uint8 {
	return uint8(a*255 + 0.5)
}

// Registry is an ordered set of named themes.
type Registry struct {
	mu     sync.RWMutex
	names  []string
	themes map[string]Theme
}

// NewRegistry returns a registry holding the built-in themes.
func NewRegistry() *Registry {
	r := &Registry{themes: make(map[string]Theme)}
	for _, t := range builtins() {
		r.Add(t)
	}
	return r
}

// Add inserts or replaces a theme. New names are appended to the cycle order.
func (r *Registry) Add(t Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.themes[t.Name]; !ok {
		r.names = append(r.names, t.Name)
	}
	r.themes[t.Name] = t
}

// Get returns the named theme.
func (r *Registry) Get(name string) (Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return t, nil
}

// Lookup returns the named theme, falling back to the default theme.
func (r *Registry) Lookup(name string) Theme {
	if t, err := r.Get(name); err == nil {
		return t
	}
	t, _ := r.Get(DefaultName)
	return t
}

// Names returns theme names in cycle order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.names...)
}

// Next returns the theme after name in cycle order, wrapping around.
// Unknown names yield the first theme.
func (r *Registry) Next(name string) Theme {
	names := r.Names()
	next := names[0]
	for i, n := range names {
		if n == name {
			next = names[(i+1)%len(names)]
			break
		}
	}
	return r.Lookup(next)
}

// Default returns the built-in default theme.
func Default() Theme {
	return builtins()[0]
}
