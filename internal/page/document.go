package page

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

const (
	DefaultLang        = "ja"
	StylesheetHref     = "/static/landing.css"
	FaviconHref        = "/static/favicon.svg"
	DefaultTitle       = "Vibe Coding Template"
	DefaultDescription = "Claude Code で Web アプリを一緒に作りましょう"
)

type DocumentProps struct {
	Title       string
	Description string
	Lang        string
	Body        g.Node
}

// Document wraps a page body in the shared HTML5 shell.
func Document(props DocumentProps) g.Node {
	if props.Title == "" {
		props.Title = DefaultTitle
	}
	if props.Lang == "" {
		props.Lang = DefaultLang
	}

	return c.HTML5(c.HTML5Props{
		Title:       props.Title,
		Description: props.Description,
		Language:    props.Lang,
		Head: []g.Node{
			Link(Rel("icon"), Type("image/svg+xml"), Href(FaviconHref)),
			Link(Rel("stylesheet"), Href(StylesheetHref)),
		},
		Body: []g.Node{
			Class("bg-background text-foreground antialiased"),
			props.Body,
		},
	})
}
