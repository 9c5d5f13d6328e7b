// Package assets rasterises the piece artwork into bitmaps for the board.
//
// Every piece type has one SVG template; a style supplies the palette that is
// filled into the templates before rendering.
package assets

import (
	"errors"
	"fmt"

	"github.com/hailam/chessboard/internal/board"
)

// DefaultStyle is used when no style is configured.
const DefaultStyle = "classic"

// ErrUnknownStyle is returned for a style name that is not registered.
var ErrUnknownStyle = errors.New("unknown piece style")

// Palette holds the template values for one side.
type Palette struct {
	Fill        string
	Stroke      string
	Detail      string
	StrokeWidth float64
}

// Style is a named pair of palettes.
type Style struct {
	Name  string
	White Palette
	Black Palette
}

// Palette returns the palette for the given side.
func (s Style) Palette(c board.Color) Palette {
	if c == board.Black {
		return s.Black
	}
	return s.White
}

var styles = []Style{
	{
		Name:  "classic",
		White: Palette{Fill: "#ffffff", Stroke: "#000000", Detail: "#000000", StrokeWidth: 1.5},
		Black: Palette{Fill: "#000000", Stroke: "#000000", Detail: "#ffffff", StrokeWidth: 1.5},
	},
	{
		Name:  "outline",
		White: Palette{Fill: "#ffffff", Stroke: "#1f2937", Detail: "#1f2937", StrokeWidth: 2.5},
		Black: Palette{Fill: "#9ca3af", Stroke: "#111827", Detail: "#111827", StrokeWidth: 2.5},
	},
	{
		Name:  "flat",
		White: Palette{Fill: "#f5f5f4", Stroke: "none", Detail: "#a8a29e", StrokeWidth: 1},
		Black: Palette{Fill: "#292524", Stroke: "none", Detail: "#78716c", StrokeWidth: 1},
	},
}

// Styles returns the registered style names in cycle order.
func Styles() []string {
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = s.Name
	}
	return names
}

// LookupStyle returns the named style.
func LookupStyle(name string) (Style, error) {
	for _, s := range styles {
		if s.Name == name {
			return s, nil
		}
	}
	return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// NextStyle returns the style after name, wrapping around. Unknown names
// restart the cycle.
func NextStyle(name string) string {
	for i, s := range styles {
		if s.Name == name {
			return styles[(i+1)%len(styles)].Name
		}
	}
	return styles[0].Name
}
