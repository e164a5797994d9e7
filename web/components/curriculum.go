package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func CurriculumSection(v PageView) g.Node {
	return revealSection(v, "curriculum",
		Section(
			Class("mx-auto max-w-5xl px-6 py-20"),
			H2(
				Class("text-center text-3xl font-bold md:text-4xl"),
				g.Text("The curriculum"),
			),
			P(
				Class("mx-auto mt-4 max-w-2xl text-center text-stone-600"),
				g.Text("Six modules, 42 lessons, roughly eight weeks at a gentle pace. Each module builds on the one before it."),
			),
			Div(
				Class("mt-12 grid gap-6 md:grid-cols-2"),
				g.Group(g.Map(Curriculum, func(m Module) g.Node {
					return Div(
						Class("rounded-xl border border-stone-200 bg-white p-6 shadow-sm"),
						Div(
							Class("flex items-baseline justify-between"),
							P(
								Class("text-sm font-semibold tracking-wide text-amber-600"),
								g.Text(fmt.Sprintf("MODULE %d", m.Number)),
							),
							P(
								Class("text-sm text-stone-500"),
								g.Text(fmt.Sprintf("%d lessons · %s", m.Lessons, m.Length)),
							),
						),
						P(Class("mt-2 text-xl font-semibold"), g.Text(m.Title)),
						P(Class("mt-2 text-stone-600"), g.Text(m.Text)),
					)
				})),
			),
		),
	)
}
