package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/3-lines-studio/vibe-landing/internal/core"
	"github.com/3-lines-studio/vibe-landing/internal/usecase"
)

const (
	cacheControlDev  = "no-cache"
	cacheControlProd = "public, max-age=300"
)

type PageHandler struct {
	service *usecase.PageService
	page    usecase.Page
	isDev   bool
	logger  *slog.Logger
}

func NewPageHandler(service *usecase.PageService, p usecase.Page, isDev bool, logger *slog.Logger) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PageHandler{
		service: service,
		page:    p,
		isDev:   isDev,
		logger:  logger,
	}
}

func (h *PageHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	output := h.service.ServePage(req.Context(), usecase.ServePageInput{
		Page:        h.page,
		Method:      req.Method,
		IfNoneMatch: req.Header.Get("If-None-Match"),
	})

	if output.Error != nil {
		h.logger.Error("page render failed",
			"route", h.page.Config.Pattern,
			"error", output.Error,
		)
		ServeError(w, req, http.StatusInternalServerError, output.Error, h.isDev)
		return
	}

	switch output.Action {
	case core.ActionMethodNotAllowed:
		w.Header().Set("Allow", "GET, HEAD")
		ServeError(w, req, http.StatusMethodNotAllowed, nil, h.isDev)

	case core.ActionNotModified:
		h.setCacheHeaders(w, output.Page)
		w.WriteHeader(http.StatusNotModified)

	case core.ActionRenderHead:
		h.setCacheHeaders(w, output.Page)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Length", strconv.Itoa(len(output.Page.HTML)))
		w.WriteHeader(http.StatusOK)

	default:
		h.setCacheHeaders(w, output.Page)
		h.serveHTML(w, output.Page.HTML)
	}
}

func (h *PageHandler) setCacheHeaders(w http.ResponseWriter, page core.RenderedPage) {
	w.Header().Set("ETag", page.ETag)
	if h.isDev {
		w.Header().Set("Cache-Control", cacheControlDev)
	} else {
		w.Header().Set("Cache-Control", cacheControlProd)
	}
}

func (h *PageHandler) serveHTML(w http.ResponseWriter, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(html)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(html); err != nil {
		h.logger.Warn("page write failed", "route", h.page.Config.Pattern, "error", err)
	}
}
