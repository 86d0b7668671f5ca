package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alejandrodnm/botmonitor/config"
	"github.com/alejandrodnm/botmonitor/internal/adapters/botapi"
	"github.com/alejandrodnm/botmonitor/internal/adapters/render"
	"github.com/alejandrodnm/botmonitor/internal/adapters/storage"
	"github.com/alejandrodnm/botmonitor/internal/monitor"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	once := flag.Bool("once", false, "run one refresh cycle and exit")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	logFormat := flag.String("format", "", "log format: text|json (overrides config)")
	report := flag.Bool("report", false, "print recorded cycles from the storage DSN and exit")
	showConfig := flag.Bool("show-config", false, "print the bot's config document and exit")
	setConfig := flag.String("set-config", "", "POST a config document from the given JSON file ('-' for stdin)")
	prompts := flag.Bool("prompts", false, "list prompt files and exit")
	promptShow := flag.String("prompt-show", "", "print the content of a prompt file and exit")
	promptSave := flag.String("prompt-save", "", "save a prompt file with content read from stdin")
	promptActivate := flag.String("prompt-activate", "", "activate a prompt file and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}

	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *logFormat != "" {
		cfg.Log.Format = *logFormat
	}
	setupLogger(cfg.Log)

	client := botapi.NewClient(cfg.API.BaseURL)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Flujos one-shot de la frontera de settings.
	switch {
	case *showConfig:
		runShowConfig(ctx, client)
		return
	case *setConfig != "":
		runSetConfig(ctx, client, *setConfig)
		return
	case *prompts:
		runPromptList(ctx, client)
		return
	case *promptShow != "":
		runPromptShow(ctx, client, *promptShow)
		return
	case *promptSave != "":
		runPromptSave(ctx, client, *promptSave)
		return
	case *promptActivate != "":
		runPromptActivate(ctx, client, *promptActivate)
		return
	}

	store, err := storage.NewSQLiteStorage(cfg.Storage.DSN)
	if err != nil {
		slog.Error("failed to open storage", "err", err, "dsn", cfg.Storage.DSN)
		os.Exit(1)
	}
	defer store.Close()

	if *report {
		runReport(ctx, store)
		return
	}

	slog.Info("botmonitor starting",
		"config", *configPath,
		"api", cfg.API.BaseURL,
		"interval", cfg.Interval(),
		"once", *once,
	)

	m := monitor.New(monitor.Config{
		Interval:      cfg.Interval(),
		PriceInterval: cfg.PriceInterval(),
	}, client, render.NewConsole(), render.NewChart(), store)

	if *once {
		m.RunOnce(ctx)
		return
	}

	if err := m.Run(ctx); err != nil {
		slog.Error("monitor exited with error", "err", err)
		os.Exit(1)
	}

	slog.Info("botmonitor stopped cleanly")
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
