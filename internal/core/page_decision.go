package core

import (
	"net/http"
	"strings"
)

type PageAction int

const (
	ActionRender PageAction = iota
	ActionRenderHead
	ActionNotModified
	ActionMethodNotAllowed
)

func (a PageAction) String() string {
	switch a {
	case ActionRender:
		return "render"
	case ActionRenderHead:
		return "render-head"
	case ActionNotModified:
		return "not-modified"
	case ActionMethodNotAllowed:
		return "method-not-allowed"
	default:
		return "unknown"
	}
}

type PageRequest struct {
	Method      string
	IfNoneMatch string
	ETag        string
}

func DecidePageAction(req PageRequest) PageAction {
	switch req.Method {
	case http.MethodGet, http.MethodHead, "":
	default:
		return ActionMethodNotAllowed
	}

	if req.ETag != "" && MatchETag(req.IfNoneMatch, req.ETag) {
		return ActionNotModified
	}

	if req.Method == http.MethodHead {
		return ActionRenderHead
	}
	return ActionRender
}

// MatchETag reports whether an If-None-Match header value matches etag,
// using weak comparison.
func MatchETag(header, etag string) bool {
	header = strings.TrimSpace(header)
	if header == "" {
		return false
	}
	if header == "*" {
		return true
	}
	want := strings.TrimPrefix(etag, "W/")
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimPrefix(strings.TrimSpace(candidate), "W/")
		if candidate == want {
			return true
		}
	}
	return false
}
