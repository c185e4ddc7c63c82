package usecase

import (
	"context"
	"fmt"
	iofs "io/fs"
	"path/filepath"

	"github.com/3-lines-studio/vibe-landing/internal/core"
)

const manifestFile = "manifest.json"

type ExportInput struct {
	Pages  []Page
	OutDir string
	Assets iofs.FS
}

type ExportOutput struct {
	Manifest *core.Manifest
	Files    []string
	Error    error
}

type ExportService struct {
	pages  *PageService
	fs     FileSystem
	output Progress
}

func NewExportService(pages *PageService, fs FileSystem, output Progress) *ExportService {
	return &ExportService{
		pages:  pages,
		fs:     fs,
		output: output,
	}
}

func (s *ExportService) Export(ctx context.Context, input ExportInput) ExportOutput {
	if input.OutDir == "" {
		return ExportOutput{Error: core.ErrOutputDirRequired}
	}

	if err := s.fs.MkdirAll(input.OutDir, 0755); err != nil {
		return ExportOutput{Error: fmt.Errorf("failed to create output directory %s: %w", input.OutDir, err)}
	}

	manifest := core.NewManifest()
	var files []string
	seen := make(map[string]bool)

	for _, p := range input.Pages {
		if err := ctx.Err(); err != nil {
			return ExportOutput{Error: err}
		}

		routePath := core.NormalizePath(p.Config.Pattern)
		if seen[routePath] {
			return ExportOutput{Error: fmt.Errorf("%w: %s", core.ErrDuplicateRoute, routePath)}
		}
		seen[routePath] = true

		rendered, err := s.pages.Render(ctx, p)
		if err != nil {
			return ExportOutput{Error: fmt.Errorf("failed to render %s: %w", routePath, err)}
		}

		rel := core.ExportFilePath(routePath)
		if err := s.write(input.OutDir, rel, rendered.HTML); err != nil {
			return ExportOutput{Error: err}
		}
		files = append(files, rel)

		manifest.Pages = append(manifest.Pages, core.ManifestPage{
			Path: routePath,
			File: rel,
			Hash: core.HashContent(rendered.HTML),
		})
	}

	if input.Assets != nil {
		err := iofs.WalkDir(input.Assets, ".", func(name string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			data, err := iofs.ReadFile(input.Assets, name)
			if err != nil {
				return fmt.Errorf("failed to read asset %s: %w", name, err)
			}

			rel := core.AssetFilePath(name)
			if err := s.write(input.OutDir, rel, data); err != nil {
				return err
			}
			files = append(files, rel)

			manifest.Assets = append(manifest.Assets, core.ManifestAsset{
				Path:        "/" + rel,
				File:        rel,
				Hash:        core.HashContent(data),
				ContentType: core.GetContentType(name),
			})
			return nil
		})
		if err != nil {
			return ExportOutput{Error: err}
		}
	}

	manifest.Sort()
	data, err := manifest.Encode()
	if err != nil {
		return ExportOutput{Error: fmt.Errorf("failed to encode manifest: %w", err)}
	}
	if err := s.write(input.OutDir, manifestFile, data); err != nil {
		return ExportOutput{Error: err}
	}
	files = append(files, manifestFile)

	return ExportOutput{
		Manifest: manifest,
		Files:    files,
	}
}

func (s *ExportService) write(outDir, rel string, data []byte) error {
	dest := filepath.Join(outDir, filepath.FromSlash(rel))

	if err := s.fs.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", rel, err)
	}
	if err := s.fs.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}

	if s.output != nil {
		s.output.PrintFile(rel)
	}
	return nil
}
