package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/nats-io/nats.go"
	"github.com/urfave/cli/v3"

	"github.com/mashrafi141/my-judge-webapp2/internal/app"
	"github.com/mashrafi141/my-judge-webapp2/internal/editor"
	"github.com/mashrafi141/my-judge-webapp2/internal/environment"
	"github.com/mashrafi141/my-judge-webapp2/internal/notify"
	"github.com/mashrafi141/my-judge-webapp2/internal/notify/natsnotify"
	"github.com/mashrafi141/my-judge-webapp2/internal/notify/sqsnotify"
	"github.com/mashrafi141/my-judge-webapp2/internal/notify/termnotify"
	"github.com/mashrafi141/my-judge-webapp2/internal/present"
	"github.com/mashrafi141/my-judge-webapp2/internal/xdg"
)

// buildApp assembles the application from config plus flag overrides.
// The returned cleanup closes any event sink connections.
func buildApp(ctx context.Context, cmd *cli.Command) (*app.App, func(), error) {
	cfg, err := environment.ReadConfig(cmd.String("config"))
	if err != nil {
		return nil, nil, err
	}
	if v := cmd.String("server"); v != "" {
		cfg.ServerURL = v
	}
	if v := cmd.String("user"); v != "" {
		cfg.UserID = v
	}
	if v := cmd.String("lang"); v != "" {
		cfg.Language = v
	}

	logger := newLogger(cmd.Bool("verbose"))

	// The theme is needed before app.New so the terminal sink can be part
	// of the fanout handed to the lifecycle controller.
	prefs, err := xdg.OpenPrefs(xdg.NewXDGDirs(), app.Name)
	if err != nil {
		return nil, nil, err
	}

	notifiers := notify.Fanout{termnotify.New(os.Stdout, prefs.Theme())}
	cleanup := func() {}

	if cfg.NatsURL != "" && cfg.NatsSubject != "" {
		nc, err := nats.Connect(cfg.NatsURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to nats: %w", err)
		}
		notifiers = append(notifiers, natsnotify.New(nc, cfg.NatsSubject, logger))
		cleanup = func() { nc.Close() }
	}
	if cfg.SqsQueueURL != "" {
		sn, err := sqsnotify.New(ctx, cfg.SqsQueueURL, logger)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to set up sqs sink: %w", err)
		}
		notifiers = append(notifiers, sn)
	}

	a, err := app.New(cfg, notifiers, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return a, cleanup, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}))
}

// loadSource reads the positional source file into the session, deriving
// the language from the --lang flag or the file extension.
func loadSource(a *app.App, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return fmt.Errorf("missing source file argument")
	}
	path := cmd.Args().First()

	lang := editor.Language(cmd.String("lang"))
	if !lang.Valid() {
		lang = langFromExt(path)
	}
	if lang.Valid() {
		a.Session.SetLanguage(lang)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	a.Session.SetText(string(data))
	return nil
}

func langFromExt(path string) editor.Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cpp", ".cc", ".cxx":
		return editor.LangCpp
	case ".c":
		return editor.LangC
	case ".py":
		return editor.LangPy
	case ".js", ".mjs":
		return editor.LangJS
	}
	return ""
}

func newRenderer(a *app.App) *present.Renderer {
	return present.NewRenderer(os.Stdout, a.Prefs.Theme())
}

func intArg(cmd *cli.Command, idx int, name string) (int, error) {
	if cmd.Args().Len() <= idx {
		return 0, fmt.Errorf("missing %s argument", name)
	}
	v, err := strconv.Atoi(cmd.Args().Get(idx))
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", name, err)
	}
	return v, nil
}
