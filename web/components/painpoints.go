package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PainPointsSection(v PageView) g.Node {
	return revealSection(v, "painpoints",
		Section(
			Class("mx-auto max-w-4xl px-6 py-20"),
			H2(
				Class("text-center text-3xl font-bold md:text-4xl"),
				g.Text("Does any of this sound familiar?"),
			),
			Div(
				Class("mt-12 grid gap-6 md:grid-cols-2"),
				g.Group(g.Map(PainPoints, func(p PainPoint) g.Node {
					return Div(
						Class("rounded-xl border border-stone-200 bg-white p-6 shadow-sm"),
						P(Class("font-semibold"), g.Text(p.Title)),
						P(Class("mt-2 text-stone-600"), g.Text(p.Text)),
					)
				})),
			),
		),
	)
}
