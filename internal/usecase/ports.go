package usecase

import (
	"context"

	"github.com/3-lines-studio/vibe-landing/internal/adapters/fs"
	"github.com/3-lines-studio/vibe-landing/internal/core"
	g "maragu.dev/gomponents"
)

// Page pairs a route's metadata with the function producing its body.
type Page struct {
	Config core.PageConfig
	Body   func() g.Node
}

type Renderer interface {
	Render(ctx context.Context, page Page) ([]byte, error)
}

// Progress is told about every file an export writes.
type Progress interface {
	PrintFile(path string)
}

type FileSystem = fs.FileSystem
