package landing

import (
	"context"

	"github.com/3-lines-studio/vibe-landing/internal/adapters/fs"
	"github.com/3-lines-studio/vibe-landing/internal/usecase"
)

// Progress receives one call per written file during Export.
type Progress = usecase.Progress

type ExportOption func(*exportConfig)

type exportConfig struct {
	progress Progress
}

func WithProgress(p Progress) ExportOption {
	return func(c *exportConfig) {
		c.progress = p
	}
}

// Export prerenders every route into dir along with the static assets and
// a manifest.json describing them.
func (a *App) Export(ctx context.Context, dir string, opts ...ExportOption) (*Manifest, error) {
	var cfg exportConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	svc := usecase.NewExportService(a.service, fs.NewOSFileSystem(), cfg.progress)
	out := svc.Export(ctx, usecase.ExportInput{
		Pages:  a.pages,
		OutDir: dir,
		Assets: a.assets,
	})
	if out.Error != nil {
		return nil, out.Error
	}

	a.logger.Info("export complete",
		"dir", dir,
		"pages", len(out.Manifest.Pages),
		"assets", len(out.Manifest.Assets),
	)
	return out.Manifest, nil
}
