package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
)

func testAssets() fstest.MapFS {
	return fstest.MapFS{
		"landing.css":   {Data: []byte("body{margin:0}")},
		"img/logo.svg":  {Data: []byte("<svg/>")},
		"img/README.md": {Data: []byte("x")},
	}
}

func TestAssetHandlerServesFiles(t *testing.T) {
	handler := NewAssetHandler(testAssets(), false)

	tests := []struct {
		path       string
		wantStatus int
		wantType   string
		wantBody   string
	}{
		{"/landing.css", http.StatusOK, "text/css; charset=utf-8", "body{margin:0}"},
		{"/img/logo.svg", http.StatusOK, "image/svg+xml", "<svg/>"},
		{"/img", http.StatusNotFound, "", ""},
		{"/", http.StatusNotFound, "", ""},
		{"/missing.js", http.StatusNotFound, "", ""},
		{"/../landing.css", http.StatusOK, "text/css; charset=utf-8", "body{margin:0}"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.URL.Path = tt.path
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("Expected %d, got %d", tt.wantStatus, rec.Code)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}
			if got := rec.Header().Get("Content-Type"); got != tt.wantType {
				t.Errorf("Expected content type %s, got %s", tt.wantType, got)
			}
			if rec.Body.String() != tt.wantBody {
				t.Errorf("Expected body %q, got %q", tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestAssetHandlerConditionalGet(t *testing.T) {
	handler := NewAssetHandler(testAssets(), false)

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/landing.css", nil))
	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatal("Expected ETag header")
	}

	req := httptest.NewRequest(http.MethodGet, "/landing.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotModified {
		t.Errorf("Expected 304, got %d", rec.Code)
	}
}

func TestAssetHandlerMethods(t *testing.T) {
	handler := NewAssetHandler(testAssets(), true)

	head := httptest.NewRecorder()
	handler.ServeHTTP(head, httptest.NewRequest(http.MethodHead, "/landing.css", nil))
	if head.Code != http.StatusOK || head.Body.Len() != 0 {
		t.Errorf("Expected bodiless 200 for HEAD, got %d with %d bytes", head.Code, head.Body.Len())
	}

	post := httptest.NewRecorder()
	handler.ServeHTTP(post, httptest.NewRequest(http.MethodPost, "/landing.css", nil))
	if post.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405 for POST, got %d", post.Code)
	}
}

func TestAssetHandlerNilFS(t *testing.T) {
	handler := NewAssetHandler(nil, false)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/landing.css", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}
