package http

import (
	"net/http"

	"github.com/3-lines-studio/vibe-landing/internal/core"
	"github.com/3-lines-studio/vibe-landing/internal/page"
	"github.com/a-h/templ"
)

// ServeError writes the error page. err is only shown in dev mode.
func ServeError(w http.ResponseWriter, req *http.Request, status int, err error, isDev bool) {
	data := core.ErrorData{
		Status: status,
		IsDev:  isDev,
	}
	if err != nil {
		data.Message = err.Error()
	}

	w.Header().Set("Cache-Control", "no-store")
	templ.Handler(page.Component(page.ErrorPage(data)), templ.WithStatus(status)).ServeHTTP(w, req)
}

func NotFoundHandler(isDev bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ServeError(w, req, http.StatusNotFound, nil, isDev)
	})
}

func MethodNotAllowedHandler(isDev bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ServeError(w, req, http.StatusMethodNotAllowed, nil, isDev)
	})
}
