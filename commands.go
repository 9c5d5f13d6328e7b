package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/hailam/chessboard/internal/config"
	"github.com/hailam/chessboard/internal/logx"
	"github.com/hailam/chessboard/internal/snapshot"
	"github.com/hailam/chessboard/internal/storage"
	"github.com/hailam/chessboard/internal/theme"
	"github.com/hailam/chessboard/internal/ui"
)

// env is what every command starts from.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	themes *theme.Registry
}

func setup(cmd *cli.Command) (*env, error) {
	cfg := configFrom(cmd)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger, err := logx.New(logx.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return nil, err
	}

	themes := theme.NewRegistry()
	if cfg.ThemesFile != "" {
		if err := themes.LoadFile(cfg.ThemesFile); err != nil {
			syncLogger(logger)
			return nil, err
		}
		logger.Debug("themes loaded", zap.String("file", cfg.ThemesFile), zap.Strings("themes", themes.Names()))
	}
	return &env{cfg: cfg, logger: logger, themes: themes}, nil
}

// checkTheme rejects an unknown theme given by the user and replaces one that
// only came from stored preferences.
func (e *env) checkTheme(explicit bool) error {
	if _, err := e.themes.Get(e.cfg.Theme); err != nil {
		if explicit {
			return err
		}
		e.logger.Warn("stored theme not available", zap.String("theme", e.cfg.Theme))
		e.cfg.Theme = theme.DefaultName
	}
	return nil
}

func runPlay(ctx context.Context, cmd *cli.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer syncLogger(e.logger)

	store, err := storage.NewStorage(e.cfg.DataDir, e.logger)
	if err != nil {
		// The board works without persistence.
		e.logger.Warn("storage unavailable", zap.Error(err))
	}

	firstLaunch := false
	if store != nil {
		prefs, err := store.LoadPreferences()
		if err != nil {
			e.logger.Warn("load preferences failed", zap.Error(err))
		} else {
			e.cfg.ApplyPreferences(prefs, cmd.IsSet)
		}
		if firstLaunch, err = store.IsFirstLaunch(); err != nil {
			e.logger.Warn("first launch check failed", zap.Error(err))
		}
	}
	if err := e.checkTheme(cmd.IsSet(config.FlagTheme)); err != nil {
		return err
	}

	game := ui.NewGame(ui.Options{
		Config:      e.cfg,
		Themes:      e.themes,
		Storage:     store,
		Logger:      e.logger,
		FirstLaunch: firstLaunch,
	})
	if firstLaunch {
		if err := store.MarkFirstLaunchComplete(); err != nil {
			e.logger.Warn("mark first launch failed", zap.Error(err))
		}
	}

	w, h := game.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Chessboard")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	e.logger.Info("starting board",
		zap.Int("board_size", e.cfg.BoardSize),
		zap.String("theme", e.cfg.Theme),
		zap.String("pieces", e.cfg.PieceStyle))

	runErr := ebiten.RunGame(game)
	if err := game.Close(); err != nil {
		e.logger.Warn("close storage failed", zap.Error(err))
	}
	return runErr
}

func runSnapshot(ctx context.Context, cmd *cli.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer syncLogger(e.logger)
	if err := e.checkTheme(true); err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	out := cmd.String("out")
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	err = snapshot.Render(ctx, w, snapshot.Options{
		FEN:    cmd.String("fen"),
		Moves:  cmd.StringSlice("moves"),
		Select: cmd.String("select"),
		Theme:  e.themes.Lookup(e.cfg.Theme),
		Style:  e.cfg.PieceStyle,
		Size:   e.cfg.BoardSize,
		Logger: e.logger,
	})
	if err != nil {
		return err
	}
	e.logger.Info("snapshot written", zap.String("out", out))
	return nil
}

func runStats(ctx context.Context, cmd *cli.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer syncLogger(e.logger)

	store, err := storage.NewStorage(e.cfg.DataDir, e.logger)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.LoadStats()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.Root().Writer, "sessions:      %d\n", stats.Sessions)
	fmt.Fprintf(cmd.Root().Writer, "moves played:  %d\n", stats.MovesPlayed)
	fmt.Fprintf(cmd.Root().Writer, "captures:      %d\n", stats.Captures)
	fmt.Fprintf(cmd.Root().Writer, "rejected:      %d (%.1f%%)\n", stats.IllegalAttempts, stats.IllegalRate())
	fmt.Fprintf(cmd.Root().Writer, "resets:        %d\n", stats.Resets)
	fmt.Fprintf(cmd.Root().Writer, "time played:   %s\n", stats.TotalPlayTime.Round(time.Second))
	return nil
}
