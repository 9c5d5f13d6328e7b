package theme

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// fileTheme is the YAML shape of one theme. Missing fields inherit from the
// default theme.
type fileTheme struct {
	Light     string `yaml:"light"`
	Dark      string `yaml:"dark"`
	Highlight string `yaml:"highlight"`
	LastMove  string `yaml:"lastmove"`
	Invalid   string `yaml:"invalid"`
}

type themeFile struct {
	Themes map[string]fileTheme `yaml:"themes"`
}

// LoadFile reads extra themes from a YAML file into r.
func (r *Registry) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open themes file: %w", err)
	}
	defer f.Close()
	if err := r.LoadYAML(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// LoadYAML adds or replaces themes from a document of the form
//
//	themes:
//	  walnut:
//	    light: "#f0d9b5"
//	    dark: "#7b5230"
//	    highlight: "rgba(255,255,0,0.4)"
//
// Themes are applied in name order so the cycle order is deterministic.
func (r *Registry) LoadYAML(rd io.Reader) error {
	var doc themeFile
	if err := yaml.NewDecoder(rd).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("decode themes: %w", err)
	}

	names := make([]string, 0, len(doc.Themes))
	for name := range doc.Themes {
		names = append(names, name)
	}
	sort.Strings(names)

	parsed := make([]Theme, 0, len(names))
	for _, name := range names {
		t, err := doc.Themes[name].toTheme(name)
		if err != nil {
			return fmt.Errorf("theme %q: %w", name, err)
		}
		parsed = append(parsed, t)
	}
	for _, t := range parsed {
		r.Add(t)
	}
	return nil
}

func (ft fileTheme) toTheme(name string) (Theme, error) {
	if strings.TrimSpace(name) == "" {
		return Theme{}, fmt.Errorf("empty theme name")
	}
	t := Default()
	t.Name = name
	fields := []struct {
		key string
		raw string
		dst *color.NRGBA
	}{
		{"light", ft.Light, &t.Light},
		{"dark", ft.Dark, &t.Dark},
		{"highlight", ft.Highlight, &t.Highlight},
		{"lastmove", ft.LastMove, &t.LastMove},
		{"invalid", ft.Invalid, &t.Invalid},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.raw) == "" {
			continue
		}
		c, err := ParseColor(f.raw)
		if err != nil {
			return Theme{}, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = c
	}
	return t, nil
}

// ParseColor parses CSS-style colors: #rgb, #rrggbb, #rrggbbaa, rgb(r,g,b)
// and rgba(r,g,b,a) with a in [0,1].
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgba("):len(s)-1], 4)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseFunc(s[len("rgb("):len(s)-1], 3)
	}
	return color.NRGBA{}, fmt.Errorf("unsupported color %q", s)
}

func parseHex(h string) (color.NRGBA, error) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("bad hex color %q", h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad hex color %q: %w", h, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func parseFunc(args string, n int) (color.NRGBA, error) {
	parts := strings.Split(args, ",")
	if len(parts) != n {
		return color.NRGBA{}, fmt.Errorf("want %d components, got %d", n, len(parts))
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return color.NRGBA{}, fmt.Errorf("bad component %q", parts[i])
		}
		rgb[i] = uint8(v)
	}
	a := uint8(255)
	if n == 4 {
		f, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || f < 0 || f > 1 {
			return color.NRGBA{}, fmt.Errorf("bad alpha %q", parts[3])
		}
		a = alpha(f)
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: a}, nil
}
