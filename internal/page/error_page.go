package page

import (
	"net/http"
	"strconv"

	"github.com/3-lines-studio/vibe-landing/internal/core"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ErrorPage shows the status text; the message is only revealed in dev mode.
func ErrorPage(data core.ErrorData) g.Node {
	status := data.Status
	if status == 0 {
		status = http.StatusInternalServerError
	}
	text := http.StatusText(status)
	if text == "" {
		text = "Error"
	}

	return Document(DocumentProps{
		Title: text,
		Lang:  "en",
		Body: Div(
			Class("flex min-h-screen items-center justify-center bg-background p-6"),
			Main(
				Data("slot", "error"),
				Data("status", strconv.Itoa(status)),
				Class("w-full max-w-2xl space-y-4"),
				H1(Class("text-3xl font-semibold text-destructive"), g.Text(text)),
				g.If(data.IsDev && data.Message != "",
					Pre(Class("rounded-lg bg-muted p-4 font-mono text-sm"), g.Text(data.Message)),
				),
				g.If(!data.IsDev || data.Message == "",
					P(Class("text-muted-foreground"), g.Text(errorHint(status))),
				),
			),
		),
	})
}

func errorHint(status int) string {
	if status == http.StatusNotFound {
		return "The page you are looking for does not exist."
	}
	return "An error occurred while processing your request."
}
