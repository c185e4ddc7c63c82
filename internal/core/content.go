package core

type Glyph string

const (
	GlyphRocket     Glyph = "rocket"
	GlyphTerminal   Glyph = "terminal"
	GlyphPaintbrush Glyph = "paintbrush"
	GlyphDatabase   Glyph = "database"
	GlyphGlobe      Glyph = "globe"
	GlyphSparkle    Glyph = "sparkle"
)

type Hero struct {
	Glyph    Glyph
	Heading  string
	Subtitle string
}

// Instructions is the onboarding panel. The preformatted block is always
// LeadComment, Command, TrailComment in that order.
type Instructions struct {
	Glyph        Glyph
	Title        string
	LeadComment  string
	Command      string
	TrailComment string
	Explanation  string
}

func (i Instructions) Lines() []string {
	return []string{i.LeadComment, i.Command, i.TrailComment}
}

type Feature struct {
	Glyph   Glyph
	Title   string
	Caption string
}

type Content struct {
	Hero         Hero
	Instructions Instructions
	Features     []Feature
	Tags         []string
}

const (
	FeatureCount = 3
	TagCount     = 5
)

var hero = Hero{
	Glyph:    GlyphRocket,
	Heading:  "Vibe Coding Template",
	Subtitle: "Claude Code で Web アプリを一緒に作りましょう",
}

var instructions = Instructions{
	Glyph:        GlyphTerminal,
	Title:        "はじめかた",
	LeadComment:  "# Claude Code を起動して",
	Command:      "/start",
	TrailComment: "# と入力してください",
	Explanation:  "対話形式でプロジェクトのセットアップを進めます。何を作りたいか聞かれるので、自由に答えてください。",
}

var features = [FeatureCount]Feature{
	{Glyph: GlyphPaintbrush, Title: "デザインシステム", Caption: "shadcn/ui で統一感のある UI"},
	{Glyph: GlyphDatabase, Title: "Firebase", Caption: "認証・データベース・ストレージ"},
	{Glyph: GlyphGlobe, Title: "Vercel", Caption: "ワンクリックでデプロイ"},
}

var tags = [TagCount]string{
	"/start",
	"/firebase-setup",
	"/design-check",
	"/deploy",
	"/fix",
}

// DefaultContent returns a fresh copy of the landing page literals.
func DefaultContent() Content {
	fs := features
	ts := tags
	return Content{
		Hero:         hero,
		Instructions: instructions,
		Features:     fs[:],
		Tags:         ts[:],
	}
}
