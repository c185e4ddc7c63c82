package page

import (
	"strconv"

	"github.com/3-lines-studio/vibe-landing/internal/core"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Inner markup of the Lucide icons used on the page (ISC licensed, 24x24 grid).
var lucidePaths = map[core.Glyph]string{
	core.GlyphRocket: `<path d="M4.5 16.5c-1.5 1.26-2 5-2 5s3.74-.5 5-2c.71-.84.7-2.13-.09-2.91a2.18 2.18 0 0 0-2.91-.09z"/>` +
		`<path d="m12 15-3-3a22 22 0 0 1 2-3.95A12.88 12.88 0 0 1 22 2c0 2.72-.78 7.5-6 11a22.35 22.35 0 0 1-4 2z"/>` +
		`<path d="M9 12H4s.55-3.03 2-4c1.62-1.08 5 0 5 0"/>` +
		`<path d="M12 15v5s3.03-.55 4-2c1.08-1.62 0-5 0-5"/>`,
	core.GlyphTerminal: `<polyline points="4 17 10 11 4 5"/>` +
		`<line x1="12" x2="20" y1="19" y2="19"/>`,
	core.GlyphPaintbrush: `<path d="m14.622 17.897-10.68-2.913"/>` +
		`<path d="M18.376 2.622a1 1 0 1 1 3.002 3.002L17.36 9.643a.5.5 0 0 0 0 .707l.944.944a2.41 2.41 0 0 1 0 3.408l-.944.944a.5.5 0 0 1-.707 0L8.354 7.348a.5.5 0 0 1 0-.707l.944-.944a2.41 2.41 0 0 1 3.408 0l.944.944a.5.5 0 0 0 .707 0z"/>` +
		`<path d="M9 8c-1.804 2.71-3.97 3.46-6.583 3.948a.507.507 0 0 0-.302.819l7.32 8.883a1 1 0 0 0 1.185.204C12.735 20.405 16 16.792 16 15"/>`,
	core.GlyphDatabase: `<ellipse cx="12" cy="5" rx="9" ry="3"/>` +
		`<path d="M3 5V19A9 3 0 0 0 21 19V5"/>` +
		`<path d="M3 12A9 3 0 0 0 21 12"/>`,
	core.GlyphGlobe: `<circle cx="12" cy="12" r="10"/>` +
		`<path d="M12 2a14.5 14.5 0 0 0 0 20 14.5 14.5 0 0 0 0-20"/>` +
		`<path d="M2 12h20"/>`,
	core.GlyphSparkle: `<path d="M9.937 15.5A2 2 0 0 0 8.5 14.063l-6.135-1.582a.5.5 0 0 1 0-.962L8.5 9.936A2 2 0 0 0 9.937 8.5l1.582-6.135a.5.5 0 0 1 .963 0L14.063 8.5A2 2 0 0 0 15.5 9.937l6.135 1.581a.5.5 0 0 1 0 .964L15.5 14.063a2 2 0 0 0-1.437 1.437l-1.582 6.135a.5.5 0 0 1-.963 0z"/>`,
}

// HasGlyph reports whether the glyph has its own icon rather than the fallback.
func HasGlyph(glyph core.Glyph) bool {
	_, ok := lucidePaths[glyph]
	return ok
}

// Icon renders glyph as an inline SVG. Unknown glyphs fall back to sparkle.
func Icon(glyph core.Glyph, size int, class string) g.Node {
	inner, ok := lucidePaths[glyph]
	if !ok {
		glyph = core.GlyphSparkle
		inner = lucidePaths[glyph]
	}
	px := strconv.Itoa(size)

	return SVG(
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		Width(px),
		Height(px),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		Aria("hidden", "true"),
		Data("glyph", string(glyph)),
		Class(joinClasses("lucide lucide-"+string(glyph), class)),
		g.Raw(inner),
	)
}
