package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinThemes(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{"default", "blue", "green", "light"}, r.Names())

	def, err := r.Get("default")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0xf0, 0xd9, 0xb5, 0xff}, def.Light)
	assert.Equal(t, color.NRGBA{0xb5, 0x88, 0x63, 0xff}, def.Dark)
	assert.Equal(t, color.NRGBA{255, 255, 0, 102}, def.Highlight)

	light, err := r.Get("light")
	require.NoError(t, err)
	assert.Equal(t, uint8(128), light.Highlight.A, "light theme highlight is 0.5 alpha")
}

func TestLookupFallsBackToDefault(t *testing.T) {
	r := NewRegistry()
	_, err := r.Get("mahogany")
	assert.ErrorIs(t, err, ErrUnknownTheme)
	assert.Equal(t, DefaultName, r.Lookup("mahogany").Name)
	assert.Equal(t, "green", r.Lookup("green").Name)
}

func TestNextCycles(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, "blue", r.Next("default").Name)
	assert.Equal(t, "default", r.Next("light").Name, "wraps around")
	assert.Equal(t, "default", r.Next("nope").Name)
}

func TestSquareColorAlternates(t *testing.T) {
	th := Default()
	assert.Equal(t, th.Light, th.SquareColor(0, 0), "a8 is light")
	assert.Equal(t, th.Dark, th.SquareColor(0, 1))
	assert.Equal(t, th.Dark, th.SquareColor(7, 0), "a1 is dark")
	assert.Equal(t, th.Light, th.SquareColor(7, 7), "h1 is light")
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#f0d9b5", color.NRGBA{0xf0, 0xd9, 0xb5, 0xff}},
		{"#FFF", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"#11223344", color.NRGBA{0x11, 0x22, 0x33, 0x44}},
		{"rgb(1, 2, 3)", color.NRGBA{1, 2, 3, 255}},
		{"rgba(255, 255, 0, 0.4)", color.NRGBA{255, 255, 0, 102}},
		{" rgba(16,185,129,0) ", color.NRGBA{16, 185, 129, 0}},
	}
	for _, tc := range tests {
		got, err := ParseColor(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "red", "#12", "#zzzzzz", "rgb(1,2)", "rgba(1,2,3,2)", "rgb(300,0,0)"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestLoadYAML(t *testing.T) {
	r := NewRegistry()
	doc := `
themes:
  walnut:
    light: "#f0d9b5"
    dark: "#7b5230"
    highlight: "rgba(255,255,0,0.25)"
  blue:
    dark: "#000080"
`
	require.NoError(t, r.LoadYAML(strings.NewReader(doc)))

	assert.Equal(t, []string{"default", "blue", "green", "light", "walnut"}, r.Names())

	w, err := r.Get("walnut")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0x7b, 0x52, 0x30, 0xff}, w.Dark)
	assert.Equal(t, uint8(64), w.Highlight.A)
	assert.Equal(t, Default().LastMove, w.LastMove, "unset fields inherit the default")

	b, err := r.Get("blue")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 0x80, 0xff}, b.Dark, "existing theme overridden")
}

func TestLoadYAMLErrors(t *testing.T) {
	r := NewRegistry()
	err := r.LoadYAML(strings.NewReader("themes:\n  bad:\n    light: \"purple\"\n"))
	assert.Error(t, err)
	_, getErr := r.Get("bad")
	assert.ErrorIs(t, getErr, ErrUnknownTheme, "a failing document adds nothing")

	assert.NoError(t, r.LoadYAML(strings.NewReader("")), "empty document is fine")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("themes:\n  ink:\n    dark: \"#222\"\n"), 0o644))

	r := NewRegistry()
	require.NoError(t, r.LoadFile(path))
	ink, err := r.Get("ink")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0x22, 0x22, 0x22, 0xff}, ink.Dark)

	assert.Error(t, r.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")))
}
