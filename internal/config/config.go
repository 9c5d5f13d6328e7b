// Package config holds the application settings and their sources.
//
// Precedence, lowest first: Default, a .env file, CHESSBOARD_* environment
// variables, command-line flags. The .env file never overrides variables
// already present in the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hailam/chessboard/internal/assets"
	"github.com/hailam/chessboard/internal/logx"
	"github.com/hailam/chessboard/internal/storage"
	"github.com/hailam/chessboard/internal/theme"
)

// Flag names shared by the command line and ApplyPreferences.
const (
	FlagBoardSize  = "board-size"
	FlagTheme      = "theme"
	FlagPieceStyle = "piece-style"
	FlagThemesFile = "themes-file"
	FlagDataDir    = "data-dir"
	FlagLogLevel   = "log-level"
	FlagLogFormat  = "log-format"
	FlagSound      = "sound"
	FlagDarkMode   = "dark-mode"
)

// Environment variable names.
const (
	EnvBoardSize  = "CHESSBOARD_BOARD_SIZE"
	EnvTheme      = "CHESSBOARD_THEME"
	EnvPieceStyle = "CHESSBOARD_PIECE_STYLE"
	EnvThemesFile = "CHESSBOARD_THEMES_FILE"
	EnvDataDir    = "CHESSBOARD_DATA_DIR"
	EnvLogLevel   = "CHESSBOARD_LOG_LEVEL"
	EnvLogFormat  = "CHESSBOARD_LOG_FORMAT"
	EnvSound      = "CHESSBOARD_SOUND"
	EnvDarkMode   = "CHESSBOARD_DARK_MODE"
)

// MinBoardSize is the smallest accepted board side in pixels.
const MinBoardSize = 160

// Config is the resolved application configuration.
type Config struct {
	BoardSize  int
	Theme      string
	PieceStyle string
	ThemesFile string
	DataDir    string
	LogLevel   string
	LogFormat  string
	Sound      bool
	DarkMode   bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BoardSize:  640,
		Theme:      theme.DefaultName,
		PieceStyle: assets.DefaultStyle,
		LogLevel:   "info",
		LogFormat:  logx.FormatConsole,
		Sound:      true,
		DarkMode:   true,
	}
}

// SquareSize returns the side of one square in pixels.
func (c Config) SquareSize() float64 {
	return float64(c.BoardSize) / 8
}

// Validate checks that the configuration can be used.
func (c Config) Validate() error {
	var errs []error
	if c.BoardSize < MinBoardSize || c.BoardSize%8 != 0 {
		errs = append(errs, fmt.Errorf("board size %d: must be a multiple of 8 and at least %d", c.BoardSize, MinBoardSize))
	}
	if _, err := assets.LookupStyle(c.PieceStyle); err != nil {
		errs = append(errs, err)
	}
	if _, err := logx.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case logx.FormatConsole, logx.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}
	if strings.TrimSpace(c.Theme) == "" {
		errs = append(errs, errors.New("theme must not be empty"))
	}
	return errors.Join(errs...)
}

// ApplyPreferences copies stored preferences into c for every setting the
// user did not give explicitly. explicit reports whether a flag, by name, was
// set on the command line or through its environment variable. A stored piece
// style that no longer exists is ignored.
func (c *Config) ApplyPreferences(p *storage.Preferences, explicit func(flag string) bool) {
	if p == nil {
		return
	}
	if explicit == nil {
		explicit = func(string) bool { return false }
	}
	if !explicit(FlagTheme) && p.Theme != "" {
		c.Theme = p.Theme
	}
	if !explicit(FlagPieceStyle) {
		if _, err := assets.LookupStyle(p.PieceStyle); err == nil {
			c.PieceStyle = p.PieceStyle
		}
	}
	if !explicit(FlagSound) {
		c.Sound = p.SoundEnabled
	}
	if !explicit(FlagDarkMode) {
		c.DarkMode = p.DarkMode
	}
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding existing values. With no paths it reads
// ./.env. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}
