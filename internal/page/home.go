package page

import (
	"github.com/3-lines-studio/vibe-landing/internal/core"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Render builds the landing page body from the built-in content.
func Render() g.Node {
	return Home(core.DefaultContent())
}

// Home lays out the hero, the onboarding panel, the feature cards and the
// command tags, in that order.
func Home(content core.Content) g.Node {
	return Div(
		Class("flex min-h-screen items-center justify-center bg-background p-6"),
		Main(
			Data("slot", "page"),
			Class("w-full max-w-2xl space-y-8"),
			heroBlock(content.Hero),
			instructionsPanel(content.Instructions),
			featureRow(content.Features),
			tagRow(content.Tags),
		),
	)
}

func heroBlock(hero core.Hero) g.Node {
	return Header(
		Data("slot", "hero"),
		Class("space-y-4 text-center"),
		Div(
			Class("flex items-center justify-center gap-2"),
			Icon(hero.Glyph, 32, "text-primary"),
			H1(Class("text-3xl font-semibold text-foreground"), g.Text(hero.Heading)),
		),
		P(Data("slot", "subtitle"), Class("text-muted-foreground"), g.Text(hero.Subtitle)),
	)
}

func instructionsPanel(in core.Instructions) g.Node {
	return Section(
		Data("slot", "instructions"),
		Card(
			CardHeader(
				CardTitle("flex items-center gap-2 text-lg",
					Icon(in.Glyph, 20, ""),
					g.Text(in.Title),
				),
			),
			CardContent("space-y-4",
				Pre(
					Data("slot", "command-block"),
					Class("rounded-lg bg-muted p-4 font-mono text-sm"),
					Span(Class("block text-muted-foreground"), g.Text(in.LeadComment)),
					Span(Data("slot", "command"), Class("block text-foreground font-semibold"), g.Text(in.Command)),
					Span(Class("block text-muted-foreground"), g.Text(in.TrailComment)),
				),
				P(Data("slot", "explanation"), Class("text-sm text-muted-foreground"), g.Text(in.Explanation)),
			),
		),
	)
}

func featureRow(features []core.Feature) g.Node {
	return Section(
		Data("slot", "features"),
		Class("grid gap-4 sm:grid-cols-3"),
		g.Map(features, featureCard),
	)
}

func featureCard(f core.Feature) g.Node {
	return Card(
		CardContent("flex flex-col items-center gap-2 p-6 text-center",
			Icon(f.Glyph, 24, "text-primary"),
			P(Data("slot", "feature-title"), Class("text-sm font-semibold"), g.Text(f.Title)),
			P(Data("slot", "feature-caption"), Class("text-xs text-muted-foreground"), g.Text(f.Caption)),
		),
	)
}

func tagRow(tags []string) g.Node {
	return Section(
		Data("slot", "tags"),
		Class("flex flex-wrap justify-center gap-2"),
		g.Map(tags, func(tag string) g.Node {
			return Badge(BadgeSecondary, tag)
		}),
	)
}
