package core

import (
	"fmt"
	"path"
	"strings"
)

func NormalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != "/" && strings.HasSuffix(p, "/") {
		p = strings.TrimSuffix(p, "/")
	}
	return p
}

func ValidateRoutePath(p string) error {
	if p == "" {
		return fmt.Errorf("%w: path cannot be empty", ErrInvalidRoute)
	}

	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("%w: path must start with /", ErrInvalidRoute)
	}

	if strings.Contains(p, "?") {
		return fmt.Errorf("%w: path cannot contain query string", ErrInvalidRoute)
	}

	if strings.Contains(p, "#") {
		return fmt.Errorf("%w: path cannot contain fragment", ErrInvalidRoute)
	}

	if strings.Contains(p, "..") {
		return fmt.Errorf("%w: path cannot contain parent directory references", ErrInvalidRoute)
	}

	if strings.ContainsAny(p, "*{}") {
		return fmt.Errorf("%w: path cannot contain wildcards or parameters", ErrInvalidRoute)
	}

	if strings.HasPrefix(NormalizePath(p), StaticPrefix) {
		return fmt.Errorf("%w: %s is reserved for assets", ErrInvalidRoute, StaticPrefix)
	}

	return nil
}

const StaticPrefix = "/static/"

// ExportFilePath maps a route to the slash-separated file it is written to,
// relative to the export root.
func ExportFilePath(routePath string) string {
	p := NormalizePath(routePath)
	if p == "/" {
		return "index.html"
	}
	return path.Join(strings.TrimPrefix(p, "/"), "index.html")
}

func AssetFilePath(name string) string {
	return path.Join(strings.Trim(StaticPrefix, "/"), strings.TrimPrefix(name, "/"))
}
