package components

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter() g.Node {
	return Footer(
		Class("border-t border-stone-800 bg-stone-900 py-10 text-sm text-stone-400"),
		Div(
			Class("mx-auto flex max-w-5xl flex-col items-center gap-4 px-6 md:flex-row md:justify-between"),
			P(g.Text(fmt.Sprintf("© %d %s. All rights reserved.", time.Now().Year(), CourseName))),
			Div(
				Class("flex gap-6"),
				A(Href("/terms"), Class("hover:text-stone-200"), g.Text("Terms")),
				A(Href("/privacy"), Class("hover:text-stone-200"), g.Text("Privacy")),
				A(Href("mailto:hello@theovia.com"), Class("hover:text-stone-200"), g.Text("hello@theovia.com")),
			),
		),
	)
}
