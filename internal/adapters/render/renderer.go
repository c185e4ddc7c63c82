package render

import (
	"context"
	"fmt"

	"github.com/3-lines-studio/vibe-landing/internal/page"
	"github.com/3-lines-studio/vibe-landing/internal/usecase"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/3-lines-studio/vibe-landing/internal/adapters/render"

// DocumentRenderer turns a page body into a complete HTML document.
type DocumentRenderer struct {
	tracer trace.Tracer
}

func NewDocumentRenderer() *DocumentRenderer {
	return &DocumentRenderer{
		tracer: otel.Tracer(tracerName),
	}
}

func NewDocumentRendererWithTracer(tracer trace.Tracer) *DocumentRenderer {
	return &DocumentRenderer{tracer: tracer}
}

func (r *DocumentRenderer) Render(ctx context.Context, p usecase.Page) ([]byte, error) {
	_, span := r.tracer.Start(ctx, "landing.render",
		trace.WithAttributes(attribute.String("landing.route", p.Config.Pattern)),
	)
	defer span.End()

	if p.Body == nil {
		err := fmt.Errorf("page %s has no body", p.Config.Pattern)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	doc := page.Document(page.DocumentProps{
		Title:       p.Config.Title,
		Description: p.Config.Description,
		Body:        p.Body(),
	})

	html, err := page.RenderBytes(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("failed to render %s: %w", p.Config.Pattern, err)
	}

	span.SetAttributes(attribute.Int("landing.bytes", len(html)))
	return html, nil
}
