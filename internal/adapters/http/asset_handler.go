package http

import (
	iofs "io/fs"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/3-lines-studio/vibe-landing/internal/core"
)

type AssetHandler struct {
	assetsFS iofs.FS
	isDev    bool
}

// NewAssetHandler serves files from assetsFS. Request paths are resolved
// relative to the FS root, so mount it behind http.StripPrefix.
func NewAssetHandler(assetsFS iofs.FS, isDev bool) http.Handler {
	return &AssetHandler{
		assetsFS: assetsFS,
		isDev:    isDev,
	}
}

func (h *AssetHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		ServeError(w, req, http.StatusMethodNotAllowed, nil, h.isDev)
		return
	}

	name := strings.TrimPrefix(path.Clean("/"+req.URL.Path), "/")
	if name == "" || h.assetsFS == nil {
		ServeError(w, req, http.StatusNotFound, nil, h.isDev)
		return
	}

	info, err := iofs.Stat(h.assetsFS, name)
	if err != nil || info.IsDir() {
		ServeError(w, req, http.StatusNotFound, nil, h.isDev)
		return
	}

	data, err := iofs.ReadFile(h.assetsFS, name)
	if err != nil {
		ServeError(w, req, http.StatusNotFound, nil, h.isDev)
		return
	}

	etag := core.ETag(data)
	w.Header().Set("ETag", etag)
	if h.isDev {
		w.Header().Set("Cache-Control", cacheControlDev)
	} else {
		w.Header().Set("Cache-Control", cacheControlProd)
	}

	if core.MatchETag(req.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", core.GetContentType(name))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if req.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(data)
}
