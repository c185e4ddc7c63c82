package landing

import (
	"bytes"
	"context"
	"fmt"
	iofs "io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	g "maragu.dev/gomponents"

	httpadapter "github.com/3-lines-studio/vibe-landing/internal/adapters/http"
	"github.com/3-lines-studio/vibe-landing/internal/adapters/render"
	"github.com/3-lines-studio/vibe-landing/internal/core"
	"github.com/3-lines-studio/vibe-landing/internal/page"
	"github.com/3-lines-studio/vibe-landing/internal/static"
	"github.com/3-lines-studio/vibe-landing/internal/usecase"
)

const healthPath = "/healthz"

type Manifest = core.Manifest

type Route struct {
	Pattern     string
	Title       string
	Description string
	Render      func() g.Node
}

type RouteOption func(*Route)

func Page(pattern, title string, body func() g.Node, opts ...RouteOption) Route {
	r := Route{
		Pattern: pattern,
		Title:   title,
		Render:  body,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func WithDescription(description string) RouteOption {
	return func(r *Route) {
		r.Description = description
	}
}

type Options struct {
	Dev     bool
	Version string
	Logger  *slog.Logger
	// Assets is served under /static/. Nil means the embedded stylesheet
	// and favicon.
	Assets iofs.FS
	// Renderer overrides the document renderer.
	Renderer usecase.Renderer
}

type App struct {
	opts    Options
	mode    core.Mode
	logger  *slog.Logger
	assets  iofs.FS
	pages   []usecase.Page
	service *usecase.PageService
}

// New validates the routes and, outside dev mode, renders every page once
// so requests are served from memory.
func New(opts Options, routes ...Route) (*App, error) {
	if len(routes) == 0 {
		return nil, fmt.Errorf("%w: at least one route is required", core.ErrInvalidRoute)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	assets := opts.Assets
	if assets == nil {
		assets = static.FS
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = render.NewDocumentRenderer()
	}

	pages := make([]usecase.Page, 0, len(routes))
	seen := make(map[string]bool, len(routes))
	for _, r := range routes {
		if err := core.ValidateRoutePath(r.Pattern); err != nil {
			return nil, err
		}
		key := core.NormalizePath(r.Pattern)
		if key == healthPath {
			return nil, fmt.Errorf("%w: %s is reserved", core.ErrInvalidRoute, healthPath)
		}
		if seen[key] {
			return nil, fmt.Errorf("%w: %s", core.ErrDuplicateRoute, key)
		}
		seen[key] = true

		if r.Render == nil {
			return nil, fmt.Errorf("%w: %s has no render function", core.ErrInvalidRoute, key)
		}

		pages = append(pages, usecase.Page{
			Config: core.PageConfig{
				Pattern:     key,
				Title:       r.Title,
				Description: r.Description,
			},
			Body: r.Render,
		})
	}

	app := &App{
		opts:    opts,
		mode:    core.ModeFromDev(opts.Dev),
		logger:  logger,
		assets:  assets,
		pages:   pages,
		service: usecase.NewPageService(renderer, opts.Dev),
	}

	if err := app.service.Warm(context.Background(), pages); err != nil {
		return nil, fmt.Errorf("failed to prerender pages: %w", err)
	}

	return app, nil
}

// Default is the app serving the landing page at /.
func Default(opts Options) (*App, error) {
	return New(opts, Page("/", page.DefaultTitle, page.Render, WithDescription(page.DefaultDescription)))
}

func (a *App) Mode() core.Mode {
	return a.mode
}

func (a *App) Handler() http.Handler {
	isDev := a.opts.Dev

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Recoverer)
	r.Use(httpadapter.RequestLogging(a.logger))

	for _, p := range a.pages {
		r.Handle(p.Config.Pattern, httpadapter.NewPageHandler(a.service, p, isDev, a.logger))
	}

	r.Handle(core.StaticPrefix+"*", http.StripPrefix(
		core.StaticPrefix[:len(core.StaticPrefix)-1],
		httpadapter.NewAssetHandler(a.assets, isDev),
	))
	health := httpadapter.HealthHandler(a.opts.Version, a.mode)
	r.Method(http.MethodGet, healthPath, health)
	r.Method(http.MethodHead, healthPath, health)

	r.NotFound(httpadapter.NotFoundHandler(isDev).ServeHTTP)
	r.MethodNotAllowed(httpadapter.MethodNotAllowedHandler(isDev).ServeHTTP)

	return r
}

// RenderPage returns a copy of the full document for the route at pattern.
func (a *App) RenderPage(ctx context.Context, pattern string) ([]byte, error) {
	key := core.NormalizePath(pattern)
	for _, p := range a.pages {
		if p.Config.Pattern == key {
			rendered, err := a.service.Render(ctx, p)
			if err != nil {
				return nil, err
			}
			return bytes.Clone(rendered.HTML), nil
		}
	}
	return nil, fmt.Errorf("%w: no route for %s", core.ErrInvalidRoute, key)
}
