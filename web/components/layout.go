package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
}

func Layout(cfg PageConfig, children ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("description"), Content(cfg.Description)),
				TitleEl(g.Text(cfg.Title)),
				Script(Src("https://cdn.tailwindcss.com")),
				StyleEl(g.Raw(pageCSS)),
			),
			Body(
				Class("bg-stone-50 text-stone-900 antialiased"),
				g.Group(children),
				Script(g.Raw(pageJS)),
			),
		),
	)
}

// revealSection wraps a section so it slides in the first time it
// scrolls into view. Sections this visitor has already seen render
// settled from the start.
func revealSection(v PageView, name string, section g.Node) g.Node {
	class := "section-reveal"
	if v.revealed(name) {
		class += " is-revealed"
	}
	return Div(ID(name), Class(class), Data("reveal", name), section)
}

const pageCSS = `
.section-reveal { opacity: 0; transform: translateY(24px); transition: opacity .7s ease, transform .7s ease; }
.section-reveal.is-revealed { opacity: 1; transform: none; }
.faq-answer { display: none; }
.faq-item.is-open .faq-answer { display: block; }
`

// Entrance animations report back over the visibility beacon, and the
// countdown subscribes to the promo stream. Both paths degrade: without
// IntersectionObserver everything renders visible, without EventSource
// the countdown keeps its server-rendered value.
const pageJS = `
(function () {
  var sections = document.querySelectorAll('[data-reveal]');
  if (!('IntersectionObserver' in window)) {
    sections.forEach(function (el) { el.classList.add('is-revealed'); });
  } else {
    var io = new IntersectionObserver(function (entries) {
      entries.forEach(function (entry) {
        if (entry.intersectionRatio > 0) {
          entry.target.classList.add('is-revealed');
          io.unobserve(entry.target);
          if (navigator.sendBeacon) {
            navigator.sendBeacon('/api/visibility/' + entry.target.dataset.reveal);
          }
        }
      });
    });
    sections.forEach(function (el) {
      if (!el.classList.contains('is-revealed')) { io.observe(el); }
    });
  }
  var countdown = document.getElementById('countdown');
  if (countdown && window.EventSource) {
    new EventSource('/api/promo/countdown').onmessage = function (ev) {
      countdown.textContent = ev.data;
    };
  }
})();
`
