// Package static holds the stylesheet and icon served under /static/.
package static

import "embed"

//go:embed landing.css favicon.svg
var FS embed.FS
