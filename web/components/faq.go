package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func FAQSection(v PageView) g.Node {
	items := make([]g.Node, len(FAQ))
	for i, qa := range FAQ {
		items[i] = faqItem(i, qa, v.faqOpen(i))
	}

	return revealSection(v, "faq",
		Section(
			Class("mx-auto max-w-3xl px-6 py-20"),
			H2(
				Class("text-center text-3xl font-bold md:text-4xl"),
				g.Text("Frequently asked questions"),
			),
			Div(Class("mt-10 space-y-3"), g.Group(items)),
		),
	)
}

// faqItem posts its toggle back to the server and is re-rendered in the
// new state, so the accordion works with scripting disabled. Items are
// independent: any number may be open at once.
func faqItem(idx int, qa QA, open bool) g.Node {
	class := "faq-item rounded-xl border border-stone-200 bg-white"
	icon := "lucide:plus"
	if open {
		class += " is-open"
		icon = "lucide:minus"
	}

	return Div(
		ID(fmt.Sprintf("faq-%d", idx)),
		Class(class),
		Form(
			Method("post"),
			Action(fmt.Sprintf("/faq/%d/toggle", idx)),
			Button(
				Type("submit"),
				Class("flex w-full items-center justify-between gap-4 px-6 py-4 text-left font-semibold"),
				g.Text(qa.Question),
				Span(
					Class("iconify size-5 shrink-0 text-stone-400"),
					Data("icon", icon),
					g.Attr("role", "img"),
					g.Attr("aria-label", "Toggle answer"),
				),
			),
		),
		Div(Class("faq-answer px-6 pb-5 text-stone-600"), g.Text(qa.Answer)),
	)
}
