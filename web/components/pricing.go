package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PricingSection(v PageView) g.Node {
	return revealSection(v, "pricing",
		Section(
			Class("mx-auto max-w-3xl px-6 py-20"),
			Div(
				Class("rounded-2xl border-2 border-amber-400 bg-white p-8 text-center shadow-lg md:p-12"),
				P(
					Class("text-sm font-semibold tracking-widest text-amber-600"),
					g.Text("LAUNCH OFFER"),
				),
				Div(
					Class("mt-4 flex items-baseline justify-center gap-3"),
					Span(Class("text-2xl text-stone-400 line-through"), g.Text(PriceFull)),
					Span(Class("text-5xl font-extrabold"), g.Text(PriceOffer)),
				),
				P(Class("mt-2 text-stone-500"), g.Text(PriceNote)),
				Div(
					Class("mt-8"),
					P(Class("text-sm font-semibold text-stone-600"), g.Text("Offer ends in")),
					P(
						ID("countdown"),
						Class("mt-1 font-mono text-4xl font-bold tabular-nums text-stone-900"),
						g.Text(v.Countdown),
					),
				),
				Ul(
					Class("mx-auto mt-8 max-w-md space-y-2 text-left"),
					g.Group(g.Map(Included, func(item string) g.Node {
						return Li(
							Class("flex items-start gap-2 text-stone-700"),
							Span(
								Class("iconify mt-1 size-4 shrink-0 text-amber-500"),
								Data("icon", "lucide:check"),
								g.Attr("role", "img"),
								g.Attr("aria-label", "Included"),
							),
							g.Text(item),
						)
					})),
				),
				A(
					Href(CheckoutURL),
					Rel("noopener noreferrer"),
					Class("mt-10 inline-block rounded-full bg-amber-400 px-10 py-4 text-lg font-semibold text-stone-900 transition hover:bg-amber-300"),
					g.Text("Enroll Now for "+PriceOffer),
				),
				P(
					Class("mt-3 text-sm text-stone-500"),
					g.Text("Secure checkout · 30-day money-back guarantee"),
				),
			),
		),
	)
}
