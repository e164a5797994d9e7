package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func GuaranteeSection(v PageView) g.Node {
	return revealSection(v, "guarantee",
		Section(
			Class("bg-white py-20"),
			Div(
				Class("mx-auto max-w-3xl px-6 text-center"),
				Span(
					Class("iconify size-12 text-amber-500"),
					Data("icon", "lucide:shield-check"),
					g.Attr("role", "img"),
					g.Attr("aria-label", "Guarantee"),
				),
				H2(
					Class("mt-4 text-3xl font-bold md:text-4xl"),
					g.Text("Try the whole course, risk-free"),
				),
				P(
					Class("mx-auto mt-4 max-w-xl text-stone-600"),
					g.Text("Take 30 days. Watch every lesson if you like. If the course doesn't deepen how you read, think and believe, one email gets you a full refund — no questions, no forms."),
				),
			),
		),
	)
}
