package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"solutiontech-chat/internal/config"
	"solutiontech-chat/internal/metrics"
	"solutiontech-chat/internal/upload"
)

type App struct {
	Config    *config.Config
	Logger    *slog.Logger
	FileStore *upload.FileStore
	Metrics   *metrics.Metrics

	StartedAt time.Time
	logSink   io.Closer
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	logger, logSink := newLogger(cfg.Log)
	slog.SetDefault(logger)

	fileStore, err := upload.NewFileStore(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		return nil, err
	}

	return &App{
		Config:    cfg,
		Logger:    logger,
		FileStore: fileStore,
		Metrics:   metrics.New("solutiontech_chat"),
		StartedAt: time.Now(),
		logSink:   logSink,
	}, nil
}

func (a *App) Close() error {
	if a.logSink != nil {
		return a.logSink.Close()
	}
	return nil
}

func newLogger(cfg config.LogConfig) (*slog.Logger, io.Closer) {
	var out io.Writer = os.Stdout
	var sink io.Closer
	if cfg.File != "" {
		rotating := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		out = rotating
		sink = rotating
	}

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), sink
}
