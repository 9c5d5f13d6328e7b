// Chessboard - a drag-and-drop chess board built with Ebitengine
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/hailam/chessboard/internal/config"
)

func main() {
	// The .env file has to be in the environment before flags read their
	// sources.
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "chessboard: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:   "chessboard",
		Usage:  "drag-and-drop chess board",
		Flags:  commonFlags(),
		Action: runPlay,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "open the board window",
				Flags:  commonFlags(),
				Action: runPlay,
			},
			{
				Name:  "snapshot",
				Usage: "render a position to PNG",
				Flags: append(commonFlags(),
					&cli.StringFlag{Name: "fen", Usage: "starting position, default is the standard start"},
					&cli.StringSliceFlag{Name: "moves", Aliases: []string{"m"}, Usage: "moves to play, e.g. e2e4"},
					&cli.StringFlag{Name: "select", Usage: "square whose piece is picked up"},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "board.png", Usage: "output file, - for stdout"},
				),
				Action: runSnapshot,
			},
			{
				Name:   "stats",
				Usage:  "print stored play statistics",
				Flags:  commonFlags(),
				Action: runStats,
			},
		},
	}
}

func commonFlags() []cli.Flag {
	def := config.Default()
	return []cli.Flag{
		&cli.IntFlag{
			Name:    config.FlagBoardSize,
			Value:   int64(def.BoardSize),
			Usage:   "board side in pixels, a multiple of 8",
			Sources: cli.EnvVars(config.EnvBoardSize),
		},
		&cli.StringFlag{
			Name:    config.FlagTheme,
			Value:   def.Theme,
			Usage:   "board color theme",
			Sources: cli.EnvVars(config.EnvTheme),
		},
		&cli.StringFlag{
			Name:    config.FlagPieceStyle,
			Value:   def.PieceStyle,
			Usage:   "piece sprite style",
			Sources: cli.EnvVars(config.EnvPieceStyle),
		},
		&cli.StringFlag{
			Name:    config.FlagThemesFile,
			Usage:   "YAML file with extra themes",
			Sources: cli.EnvVars(config.EnvThemesFile),
		},
		&cli.StringFlag{
			Name:    config.FlagDataDir,
			Usage:   "directory for preferences and stats",
			Sources: cli.EnvVars(config.EnvDataDir),
		},
		&cli.StringFlag{
			Name:    config.FlagLogLevel,
			Value:   def.LogLevel,
			Usage:   "debug, info, warn or error",
			Sources: cli.EnvVars(config.EnvLogLevel),
		},
		&cli.StringFlag{
			Name:    config.FlagLogFormat,
			Value:   def.LogFormat,
			Usage:   "console or json",
			Sources: cli.EnvVars(config.EnvLogFormat),
		},
		&cli.BoolFlag{
			Name:    config.FlagSound,
			Value:   def.Sound,
			Usage:   "play move sounds",
			Sources: cli.EnvVars(config.EnvSound),
		},
		&cli.BoolFlag{
			Name:    config.FlagDarkMode,
			Value:   def.DarkMode,
			Usage:   "dark side panel",
			Sources: cli.EnvVars(config.EnvDarkMode),
		},
	}
}

// configFrom reads the resolved flag values.
func configFrom(cmd *cli.Command) config.Config {
	return config.Config{
		BoardSize:  int(cmd.Int(config.FlagBoardSize)),
		Theme:      cmd.String(config.FlagTheme),
		PieceStyle: cmd.String(config.FlagPieceStyle),
		ThemesFile: cmd.String(config.FlagThemesFile),
		DataDir:    cmd.String(config.FlagDataDir),
		LogLevel:   cmd.String(config.FlagLogLevel),
		LogFormat:  cmd.String(config.FlagLogFormat),
		Sound:      cmd.Bool(config.FlagSound),
		DarkMode:   cmd.Bool(config.FlagDarkMode),
	}
}

func syncLogger(logger *zap.Logger) {
	// Sync fails on terminals; nothing useful to do about it.
	_ = logger.Sync()
}
