package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func CTASection(v PageView) g.Node {
	return revealSection(v, "cta",
		Section(
			Class("bg-gradient-to-b from-stone-800 to-stone-900 py-20 text-center text-stone-50"),
			Div(
				Class("mx-auto max-w-2xl px-6"),
				H2(
					Class("text-3xl font-bold md:text-4xl"),
					g.Text("Start studying today"),
				),
				P(
					Class("mt-4 text-stone-300"),
					g.Text("Eight weeks from now you can have a faith you understand from the ground up. The launch price holds only while the clock above is running."),
				),
				A(
					Href(CheckoutURL),
					Rel("noopener noreferrer"),
					Class("mt-8 inline-block rounded-full bg-amber-400 px-10 py-4 text-lg font-semibold text-stone-900 transition hover:bg-amber-300"),
					g.Text("Enroll in "+CourseTitle),
				),
			),
		),
	)
}
