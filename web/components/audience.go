package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func AudienceSection(v PageView) g.Node {
	return revealSection(v, "audience",
		Section(
			Class("bg-stone-900 py-20 text-stone-50"),
			Div(
				Class("mx-auto max-w-3xl px-6"),
				H2(
					Class("text-center text-3xl font-bold md:text-4xl"),
					g.Text("Who this course is for"),
				),
				Ul(
					Class("mt-10 space-y-4"),
					g.Group(g.Map(Audience, func(item string) g.Node {
						return Li(
							Class("flex items-start gap-3"),
							Span(
								Class("iconify mt-1 size-5 shrink-0 text-amber-400"),
								Data("icon", "lucide:check-circle"),
								g.Attr("role", "img"),
								g.Attr("aria-label", "Included"),
							),
							g.Text(item),
						)
					})),
				),
			),
		),
	)
}
