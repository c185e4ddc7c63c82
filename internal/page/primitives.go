package page

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Card(children ...g.Node) g.Node {
	return Div(
		Data("slot", "card"),
		Class("card rounded-xl border bg-card text-card-foreground shadow-sm"),
		g.Group(children),
	)
}

func CardHeader(children ...g.Node) g.Node {
	return Div(
		Data("slot", "card-header"),
		Class("card-header flex flex-col gap-1.5 px-6 pt-6"),
		g.Group(children),
	)
}

func CardTitle(class string, children ...g.Node) g.Node {
	return Div(
		Data("slot", "card-title"),
		Class(joinClasses("card-title leading-none font-semibold", class)),
		g.Group(children),
	)
}

func CardContent(class string, children ...g.Node) g.Node {
	return Div(
		Data("slot", "card-content"),
		Class(joinClasses("card-content px-6 pb-6", class)),
		g.Group(children),
	)
}

type BadgeVariant string

const (
	BadgeDefault   BadgeVariant = "default"
	BadgeSecondary BadgeVariant = "secondary"
	BadgeOutline   BadgeVariant = "outline"
)

func Badge(variant BadgeVariant, text string) g.Node {
	if variant == "" {
		variant = BadgeDefault
	}
	return Span(
		Data("slot", "badge"),
		Data("variant", string(variant)),
		Class("badge badge-"+string(variant)+" inline-flex items-center rounded-md px-2 py-0.5 text-xs font-medium"),
		g.Text(text),
	)
}

func joinClasses(base, extra string) string {
	if extra == "" {
		return base
	}
	return base + " " + extra
}
