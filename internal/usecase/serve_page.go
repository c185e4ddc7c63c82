package usecase

import (
	"context"
	"fmt"

	"github.com/3-lines-studio/vibe-landing/internal/core"
)

type ServePageInput struct {
	Page        Page
	Method      string
	IfNoneMatch string
}

type ServePageOutput struct {
	Action core.PageAction
	Page   core.RenderedPage
	Error  error
}

// PageService renders pages on demand. Outside dev mode each page is
// rendered once and served from memory afterwards.
type PageService struct {
	renderer Renderer
	isDev    bool
	cache    *renderCache
}

func NewPageService(renderer Renderer, isDev bool) *PageService {
	return &PageService{
		renderer: renderer,
		isDev:    isDev,
		cache:    newRenderCache(),
	}
}

// Warm renders every page up front so the first request is not slower
// than the rest. It is a no-op in dev mode.
func (s *PageService) Warm(ctx context.Context, pages []Page) error {
	if s.isDev {
		return nil
	}
	for _, p := range pages {
		if _, err := s.Render(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (s *PageService) Render(ctx context.Context, p Page) (core.RenderedPage, error) {
	key := core.NormalizePath(p.Config.Pattern)

	if !s.isDev {
		if cached, ok := s.cache.get(key); ok {
			return cached, nil
		}
	}

	if s.renderer == nil {
		return core.RenderedPage{}, fmt.Errorf("renderer not available")
	}
	if p.Body == nil {
		return core.RenderedPage{}, fmt.Errorf("page %s has no body", key)
	}

	html, err := s.renderer.Render(ctx, p)
	if err != nil {
		return core.RenderedPage{}, err
	}

	rendered := core.RenderedPage{
		Path: key,
		HTML: html,
		ETag: core.ETag(html),
	}
	if !s.isDev {
		s.cache.set(key, rendered)
	}
	return rendered, nil
}

func (s *PageService) ServePage(ctx context.Context, input ServePageInput) ServePageOutput {
	if core.DecidePageAction(core.PageRequest{Method: input.Method}) == core.ActionMethodNotAllowed {
		return ServePageOutput{Action: core.ActionMethodNotAllowed}
	}

	rendered, err := s.Render(ctx, input.Page)
	if err != nil {
		return ServePageOutput{
			Action: core.ActionRender,
			Error:  err,
		}
	}

	action := core.DecidePageAction(core.PageRequest{
		Method:      input.Method,
		IfNoneMatch: input.IfNoneMatch,
		ETag:        rendered.ETag,
	})

	return ServePageOutput{
		Action: action,
		Page:   rendered,
	}
}
