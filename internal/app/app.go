// Package app wires the client components together: judge API client,
// problem catalog, editor session, lifecycle controller and the local
// preference store.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mashrafi141/my-judge-webapp2/api"
	"github.com/mashrafi141/my-judge-webapp2/internal/catalog"
	"github.com/mashrafi141/my-judge-webapp2/internal/editor"
	"github.com/mashrafi141/my-judge-webapp2/internal/environment"
	"github.com/mashrafi141/my-judge-webapp2/internal/judge"
	"github.com/mashrafi141/my-judge-webapp2/internal/lifecycle"
	"github.com/mashrafi141/my-judge-webapp2/internal/notify"
	"github.com/mashrafi141/my-judge-webapp2/internal/present"
	"github.com/mashrafi141/my-judge-webapp2/internal/reqbuild"
	"github.com/mashrafi141/my-judge-webapp2/internal/session"
	"github.com/mashrafi141/my-judge-webapp2/internal/xdg"
)

// Name is the application name used for XDG state and cache paths.
const Name = "judgecli"

type App struct {
	cfg    *environment.Config
	logger *slog.Logger

	Client    *judge.Client
	Catalog   *catalog.Loader
	Session   *session.Session
	Lifecycle *lifecycle.Controller
	Prefs     *xdg.Prefs
}

// New assembles an App from the effective configuration. The notifier
// receives every job lifecycle transition.
func New(cfg *environment.Config, notifier notify.Notifier, logger *slog.Logger) (*App, error) {
	client := judge.New(cfg.ServerURL, cfg.UserID, judge.WithLogger(logger))

	dirs := xdg.NewXDGDirs()
	prefs, err := xdg.OpenPrefs(dirs, Name)
	if err != nil {
		return nil, fmt.Errorf("failed to open preference store: %w", err)
	}

	loaderOpts := []catalog.Option{catalog.WithLogger(logger)}
	cacheDir := dirs.AppCacheDir(Name)
	if err := dirs.EnsureDir(cacheDir); err != nil {
		logger.Warn("catalog cache disabled", "error", err)
	} else {
		cache, err := catalog.NewCache(cacheDir)
		if err != nil {
			logger.Warn("catalog cache disabled", "error", err)
		} else {
			loaderOpts = append(loaderOpts, catalog.WithCache(cache))
		}
	}

	lang := editor.Language(cfg.Language)
	if !lang.Valid() {
		lang = editor.LangCpp
	}

	return &App{
		cfg:     cfg,
		logger:  logger,
		Client:  client,
		Catalog: catalog.NewLoader(client, loaderOpts...),
		Session: session.New(editor.NewBuffer(), lang),
		Lifecycle: lifecycle.NewController(client, notifier,
			lifecycle.WithPollInterval(cfg.PollInterval),
			lifecycle.WithJobTimeout(cfg.JobTimeout),
			lifecycle.WithLogger(logger)),
		Prefs: prefs,
	}, nil
}

// Bootstrap loads the catalog and warms the profile concurrently, then
// selects the first problem when none is selected yet. The profile fetch
// is best-effort; only a catalog failure is fatal.
func (a *App) Bootstrap(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if _, err := a.Catalog.Load(ctx); err != nil {
			// A stale catalog restored from cache still lets work proceed.
			if a.Catalog.Len() == 0 {
				return err
			}
			a.logger.Warn("using stale catalog", "error", err)
		}
		return nil
	})
	g.Go(func() error {
		if _, err := a.Client.Profile(ctx); err != nil {
			a.logger.Warn("profile unavailable", "error", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if a.Session.Selected() == nil {
		if first, ok := a.Catalog.First(); ok {
			a.Session.Select(first)
		}
	}
	return nil
}

// SelectProblem points the session at the catalog entry with the given
// identifier.
func (a *App) SelectProblem(id int) error {
	p, ok := a.Catalog.Get(id)
	if !ok {
		return fmt.Errorf("no problem with id %d in catalog", id)
	}
	a.Session.Select(p)
	return nil
}

// Run executes the session buffer against the session stdin and returns
// the rendered outcome. A transport failure still yields a presentable
// failure so the caller always has something to show.
func (a *App) Run(ctx context.Context) (present.Presentation, error) {
	req, err := reqbuild.BuildRun(a.Session)
	if err != nil {
		return present.Presentation{}, err
	}
	resp, err := a.Client.Run(ctx, api.RunRequest{
		Language: string(req.Language),
		Code:     req.Code,
		Stdin:    req.Stdin,
	})
	if err != nil {
		return present.FromFailure(err.Error()), nil
	}
	return present.FromRun(resp), nil
}

// Submit sends the session buffer for judging and hands the job to the
// lifecycle controller.
func (a *App) Submit(ctx context.Context) (*lifecycle.Ticket, error) {
	req, err := reqbuild.BuildSubmit(a.Session)
	if err != nil {
		return nil, err
	}
	return a.Lifecycle.Submit(ctx, req)
}
