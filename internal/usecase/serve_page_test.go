package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/3-lines-studio/vibe-landing/internal/core"
)

func homePage() Page {
	return Page{
		Config: core.PageConfig{Pattern: "/", Title: "Home"},
		Body:   textBody("home"),
	}
}

func TestPageServiceCachesInProd(t *testing.T) {
	renderer := &fakeRenderer{}
	svc := NewPageService(renderer, false)

	first, err := svc.Render(context.Background(), homePage())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	second, err := svc.Render(context.Background(), homePage())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if renderer.callCount() != 1 {
		t.Errorf("Expected 1 render call, got %d", renderer.callCount())
	}
	if first.ETag != second.ETag || first.ETag == "" {
		t.Errorf("Expected stable non-empty ETag, got %q and %q", first.ETag, second.ETag)
	}
}

func TestPageServiceRendersEveryTimeInDev(t *testing.T) {
	renderer := &fakeRenderer{}
	svc := NewPageService(renderer, true)

	for i := 0; i < 3; i++ {
		if _, err := svc.Render(context.Background(), homePage()); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
	}

	if renderer.callCount() != 3 {
		t.Errorf("Expected 3 render calls, got %d", renderer.callCount())
	}
	if svc.cache.len() != 0 {
		t.Errorf("Expected empty cache in dev mode, got %d entries", svc.cache.len())
	}
}

func TestPageServiceWarm(t *testing.T) {
	renderer := &fakeRenderer{}
	svc := NewPageService(renderer, false)

	pages := []Page{
		homePage(),
		{Config: core.PageConfig{Pattern: "/about"}, Body: textBody("about")},
	}
	if err := svc.Warm(context.Background(), pages); err != nil {
		t.Fatalf("Warm() error = %v", err)
	}
	if svc.cache.len() != 2 {
		t.Errorf("Expected 2 cached pages, got %d", svc.cache.len())
	}

	devSvc := NewPageService(renderer, true)
	if err := devSvc.Warm(context.Background(), pages); err != nil {
		t.Fatalf("Warm() in dev error = %v", err)
	}
	if renderer.callCount() != 2 {
		t.Errorf("Expected dev warm to skip rendering, got %d calls", renderer.callCount())
	}
}

func TestPageServiceRenderErrors(t *testing.T) {
	t.Run("renderer error is returned and not cached", func(t *testing.T) {
		renderer := &fakeRenderer{err: errRenderFailed}
		svc := NewPageService(renderer, false)

		if _, err := svc.Render(context.Background(), homePage()); !errors.Is(err, errRenderFailed) {
			t.Fatalf("Expected errRenderFailed, got %v", err)
		}
		if svc.cache.len() != 0 {
			t.Error("Expected failed render not to be cached")
		}
	})

	t.Run("nil renderer", func(t *testing.T) {
		svc := NewPageService(nil, false)
		if _, err := svc.Render(context.Background(), homePage()); err == nil {
			t.Error("Expected error without renderer")
		}
	})

	t.Run("nil body", func(t *testing.T) {
		svc := NewPageService(&fakeRenderer{}, false)
		if _, err := svc.Render(context.Background(), Page{Config: core.PageConfig{Pattern: "/"}}); err == nil {
			t.Error("Expected error for page without body")
		}
	})
}

func TestServePageActions(t *testing.T) {
	renderer := &fakeRenderer{html: "<p>same</p>"}
	svc := NewPageService(renderer, false)
	etag := core.ETag([]byte("<p>same</p>"))

	tests := []struct {
		name        string
		method      string
		ifNoneMatch string
		want        core.PageAction
	}{
		{"get", http.MethodGet, "", core.ActionRender},
		{"head", http.MethodHead, "", core.ActionRenderHead},
		{"conditional", http.MethodGet, etag, core.ActionNotModified},
		{"stale conditional", http.MethodGet, `"0"`, core.ActionRender},
		{"post", http.MethodPost, "", core.ActionMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := svc.ServePage(context.Background(), ServePageInput{
				Page:        homePage(),
				Method:      tt.method,
				IfNoneMatch: tt.ifNoneMatch,
			})
			if out.Error != nil {
				t.Fatalf("ServePage() error = %v", out.Error)
			}
			if out.Action != tt.want {
				t.Errorf("Action = %s, want %s", out.Action, tt.want)
			}
			if tt.want != core.ActionMethodNotAllowed && out.Page.ETag != etag {
				t.Errorf("ETag = %s, want %s", out.Page.ETag, etag)
			}
		})
	}
}

func TestServePageError(t *testing.T) {
	svc := NewPageService(&fakeRenderer{err: errRenderFailed}, true)

	out := svc.ServePage(context.Background(), ServePageInput{Page: homePage(), Method: http.MethodGet})
	if !errors.Is(out.Error, errRenderFailed) {
		t.Errorf("Expected errRenderFailed, got %v", out.Error)
	}
}
