package landing

import (
	"net/http"

	"TheoVia/internal/countdown"
	"TheoVia/internal/visitor"
	"TheoVia/web/components"
	"github.com/a-h/templ"
)

// Handler renders the funnel page for the visitor's current state. The
// countdown always renders at the offer constant; the live value comes
// over the promo stream once the page is up.
func Handler(w http.ResponseWriter, r *http.Request, state *visitor.State) {
	sections := components.SectionNames()
	revealed := make(map[string]bool, len(sections))
	for _, section := range sections {
		revealed[section] = state.Revealed(section)
	}

	view := components.PageView{
		Countdown: countdown.NewPromo().String(),
		Revealed:  revealed,
		FAQOpen:   state.FAQ().Snapshot(),
	}

	templ.Handler(components.Landing(view)).ServeHTTP(w, r)
}
