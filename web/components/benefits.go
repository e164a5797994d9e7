package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func BenefitsSection(v PageView) g.Node {
	return revealSection(v, "benefits",
		Section(
			Class("bg-white py-20"),
			Div(
				Class("mx-auto max-w-5xl px-6"),
				H2(
					Class("text-center text-3xl font-bold md:text-4xl"),
					g.Text("What you get inside "+CourseName),
				),
				Div(
					Class("mt-12 grid gap-8 sm:grid-cols-2 lg:grid-cols-3"),
					g.Group(g.Map(Benefits, func(b Benefit) g.Node {
						return Div(
							Class("rounded-xl p-6 transition hover:bg-stone-50"),
							Span(
								Class("iconify size-8 text-amber-500"),
								Data("icon", b.Icon),
								g.Attr("role", "img"),
								g.Attr("aria-label", b.Title),
							),
							P(Class("mt-4 text-lg font-semibold"), g.Text(b.Title)),
							P(Class("mt-2 text-stone-600"), g.Text(b.Text)),
						)
					})),
				),
			),
		),
	)
}
