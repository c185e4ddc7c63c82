package cli

import (
	"fmt"
	"time"

	"github.com/3-lines-studio/vibe-landing/internal/core"
)

// ExportReport summarizes an export run once it has finished.
type ExportReport struct {
	out       *Output
	startTime time.Time
	outputDir string
	manifest  *core.Manifest
	err       error
}

func NewExportReport(out *Output, outputDir string) *ExportReport {
	return &ExportReport{
		out:       out,
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *ExportReport) Finish(manifest *core.Manifest, err error) {
	r.manifest = manifest
	r.err = err
}

func (r *ExportReport) Failed() bool {
	return r.err != nil
}

func (r *ExportReport) Render() {
	r.render(time.Since(r.startTime))
}

func (r *ExportReport) render(duration time.Duration) {
	// The cause itself is printed once by the command's error handler.
	if r.err != nil {
		r.out.PrintError("Export failed after %s", formatDuration(duration))
		return
	}

	pages, assets := 0, 0
	if r.manifest != nil {
		pages = len(r.manifest.Pages)
		assets = len(r.manifest.Assets)
	}

	r.out.PrintSuccess("%s exported", plural(pages, "page"))
	r.out.PrintSuccess("%s copied", plural(assets, "asset"))
	r.out.PrintSuccess("Export complete in %s", formatDuration(duration))

	if r.outputDir != "" {
		r.out.PrintDone("\n  " + r.out.Gray("Output: "+r.outputDir))
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}
