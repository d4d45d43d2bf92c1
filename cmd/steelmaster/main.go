package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dowk233/steelMaster/internal/insight"
	"github.com/dowk233/steelMaster/internal/scheduler"
	"github.com/dowk233/steelMaster/internal/stats"
	"github.com/dowk233/steelMaster/internal/storage"
	"github.com/dowk233/steelMaster/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "steelmaster failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := update.LoadRuntimeConfig(update.ConfigFilePath())
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg.LogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	store, err := storage.OpenSQLite(cfg.DBPath, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	state, err := store.Load(context.Background())
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	todayID := stats.DayOfYear(time.Now())

	var gateway update.InsightGateway
	var refresh *scheduler.Engine
	if cfg.InsightEnabled {
		gateway = insight.NewClient(insight.Config{
			BaseURL: cfg.InsightBaseURL,
			Model:   cfg.InsightModel,
			APIKey:  update.InsightAPIKey(),
		}, insight.WithLogger(logger))

		refresh, err = scheduler.NewEngine(time.Duration(cfg.InsightRefreshMinutes)*time.Minute, cfg.RefreshBuffer)
		if err != nil {
			return fmt.Errorf("refresh engine: %w", err)
		}
		refresh.Start()
		defer refresh.Stop()
	}

	model := update.NewModel(state, todayID, store, gateway, refresh, logger)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	logger.Info("session ended", "dropped_refreshes", droppedCount(refresh))
	return nil
}

// openLogger writes structured logs to a file. The TUI owns stdout, so the
// log never goes there.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelInfo}))
	return logger, func() { _ = f.Close() }, nil
}

func droppedCount(refresh *scheduler.Engine) uint64 {
	if refresh == nil {
		return 0
	}
	return refresh.Dropped()
}
