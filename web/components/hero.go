package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero(v PageView) g.Node {
	return revealSection(v, "hero",
		Header(
			Class("bg-gradient-to-b from-stone-900 to-stone-800 text-stone-50"),
			Div(
				Class("mx-auto max-w-4xl px-6 py-24 text-center md:py-32"),
				P(
					Class("text-sm font-semibold tracking-widest text-amber-400"),
					g.Text("ONLINE COURSE · SELF-PACED"),
				),
				H1(
					Class("mt-4 text-4xl font-extrabold leading-tight md:text-6xl"),
					g.Text("Understand What You Believe —"),
					Br(),
					Span(Class("text-amber-400"), g.Text("and Why")),
				),
				P(
					Class("mx-auto mt-6 max-w-2xl text-lg text-stone-300"),
					g.Text(CourseTitle+" walks you from scattered verses to a coherent faith: six modules of doctrine, history and practice, taught for people without a seminary shelf."),
				),
				Div(
					Class("mt-10 flex justify-center gap-4"),
					A(
						Href("#pricing"),
						Class("rounded-full bg-amber-400 px-8 py-3 font-semibold text-stone-900 transition hover:bg-amber-300"),
						g.Text("Enroll Today"),
					),
					A(
						Href("#curriculum"),
						Class("rounded-full border border-stone-500 px-8 py-3 font-semibold text-stone-200 transition hover:border-stone-300"),
						g.Text("See the Curriculum"),
					),
				),
			),
		),
	)
}
